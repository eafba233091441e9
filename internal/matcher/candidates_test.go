package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wardrecon/boundary-engine/internal/geomath"
	"github.com/wardrecon/boundary-engine/internal/streetnet"
)

// TestScoreCandidatesPrefersAltNameMatch covers spec §4.4.3 step 2: name_sim
// is the max over a candidate's canonical name and each alt-name, so a
// query that only matches the alt-name should still score near 1.0 rather
// than being scored against the (unrelated) canonical name alone.
func TestScoreCandidatesPrefersAltNameMatch(t *testing.T) {
	net := mustNetwork(t, []streetnet.ProviderSegment{
		{
			ID:       "mlk",
			Name:     "Martin Luther King Boulevard",
			AltNames: []string{"Rural Route 4"},
			Geometry: []geomath.Position{{Lon: -95.0, Lat: 30.0}, {Lon: -94.99, Lat: 30.0}},
		},
	})

	seg, ok := net.Segment(0)
	require.True(t, ok)

	scores := scoreCandidates("Rural Route 4", []streetnet.StreetSegment{seg}, nil, "", DefaultMatcherConfig())
	require.Len(t, scores, 1)
	assert.GreaterOrEqual(t, scores[0].nameSim, 0.95)
}

// TestFindCandidatesNearPointFallbackMatchesAltName covers the near-point
// fallback path in findCandidates, which also needs to consider alt-names
// when the legal text's feature name doesn't hit the core-name index.
// "Rural Rot 4" is two edits from the alt-name "Rural Route 4": its
// similarity (1 - 2/13 ≈ 0.846) is under FindByName's 0.85 cutoff but over
// MinNameSimilarity, so only the near-point fallback can find it.
func TestFindCandidatesNearPointFallbackMatchesAltName(t *testing.T) {
	net := mustNetwork(t, []streetnet.ProviderSegment{
		{
			ID:       "mlk",
			Name:     "Martin Luther King Boulevard",
			AltNames: []string{"Rural Route 4"},
			Geometry: []geomath.Position{{Lon: -95.0, Lat: 30.0}, {Lon: -94.99, Lat: 30.0}},
		},
	})

	ref := geomath.Position{Lon: -94.995, Lat: 30.0}
	cfg := DefaultMatcherConfig()
	candidates := findCandidates(net, "Rural Rot 4", &ref, cfg)
	require.Len(t, candidates, 1)
	assert.Equal(t, "mlk", candidates[0].ID)
}
