package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wardrecon/boundary-engine/internal/geomath"
	"github.com/wardrecon/boundary-engine/internal/legaldesc"
	"github.com/wardrecon/boundary-engine/internal/streetnet"
)

func mustNetwork(t *testing.T, providers []streetnet.ProviderSegment) *streetnet.StreetNetwork {
	t.Helper()
	net, err := streetnet.FromProvider(providers)
	require.NoError(t, err)
	return net
}

// TestResolveIntersectionCrossing is spec scenario S1: a perpendicular
// crossing should resolve exactly.
func TestResolveIntersectionCrossing(t *testing.T) {
	net := mustNetwork(t, []streetnet.ProviderSegment{
		{ID: "main", Name: "Main Street", Geometry: []geomath.Position{{Lon: -95.0, Lat: 30.0}, {Lon: -94.99, Lat: 30.0}}},
		{ID: "oak", Name: "Oak Avenue", Geometry: []geomath.Position{{Lon: -94.995, Lat: 29.995}, {Lon: -94.995, Lat: 30.005}}},
	})

	seg := legaldesc.BoundarySegmentDescription{
		ReferenceType: legaldesc.ReferenceCoordinate,
		FeatureName:   "intersection:Main Street:Oak Avenue",
	}

	result := MatchSegment(seg, net, nil, DefaultMatcherConfig())
	require.Equal(t, QualityExact, result.Quality)
	require.Len(t, result.Coordinates, 1)
	assert.InDelta(t, -94.995, result.Coordinates[0].Lon, 1e-3)
	assert.InDelta(t, 30.0, result.Coordinates[0].Lat, 1e-3)
	assert.Contains(t, result.Diagnostics.Reason, "crossing")
}

// TestResolveIntersectionNearMiss is spec scenario S2: a dangling endpoint
// ~55m short of Main should still resolve, non-failed.
func TestResolveIntersectionNearMiss(t *testing.T) {
	net := mustNetwork(t, []streetnet.ProviderSegment{
		{ID: "main", Name: "Main Street", Geometry: []geomath.Position{{Lon: -95.0, Lat: 30.0}, {Lon: -94.99, Lat: 30.0}}},
		{ID: "oak", Name: "Oak Avenue", Geometry: []geomath.Position{{Lon: -94.995, Lat: 29.99}, {Lon: -94.995, Lat: 29.9995}}},
	})

	seg := legaldesc.BoundarySegmentDescription{
		ReferenceType: legaldesc.ReferenceCoordinate,
		FeatureName:   "intersection:Main Street:Oak Avenue",
	}

	result := MatchSegment(seg, net, nil, DefaultMatcherConfig())
	require.NotEqual(t, QualityFailed, result.Quality)
	require.Len(t, result.Coordinates, 1)
	assert.InDelta(t, -94.995, result.Coordinates[0].Lon, 1e-4)
	assert.InDelta(t, 29.99975, result.Coordinates[0].Lat, 1e-4)
}

func TestResolveIntersectionUnknownStreetFails(t *testing.T) {
	net := mustNetwork(t, []streetnet.ProviderSegment{
		{ID: "main", Name: "Main Street", Geometry: []geomath.Position{{Lon: -95.0, Lat: 30.0}, {Lon: -94.99, Lat: 30.0}}},
	})

	seg := legaldesc.BoundarySegmentDescription{
		ReferenceType: legaldesc.ReferenceCoordinate,
		FeatureName:   "intersection:Main Street:Nonexistent Road",
	}

	result := MatchSegment(seg, net, nil, DefaultMatcherConfig())
	assert.Equal(t, QualityFailed, result.Quality)
	assert.Empty(t, result.Coordinates)
}

// degPerMeterLon approximates degrees-longitude-per-meter at 30N, used only
// to lay out synthetic fixtures at realistic metric spacing.
const degPerMeterLon30N = 1.0 / (111320 * 0.8660254)

// buildWatsonCluster returns 3 contiguous "Watson Road" segments with small
// (20m) gaps between them, starting at (lon, 30.0).
func buildWatsonCluster(clusterIdx int, lon float64) []streetnet.ProviderSegment {
	const segLen = 300 * degPerMeterLon30N
	const gap = 20 * degPerMeterLon30N

	mk := func(n int, start, end float64) streetnet.ProviderSegment {
		return streetnet.ProviderSegment{
			ID:   clusterID(clusterIdx, n),
			Name: "Watson Road",
			Geometry: []geomath.Position{
				{Lon: start, Lat: 30.0},
				{Lon: end, Lat: 30.0},
			},
		}
	}

	k0start := lon
	k0end := k0start + segLen
	k1start := k0end + gap
	k1end := k1start + segLen
	k2start := k1end + gap
	k2end := k2start + segLen

	return []streetnet.ProviderSegment{
		mk(0, k0start, k0end),
		mk(1, k1start, k1end),
		mk(2, k2start, k2end),
	}
}

func clusterID(cluster, n int) string {
	return "watson-" + string(rune('a'+cluster)) + "-" + string(rune('0'+n))
}

// TestContiguousChainSelectsOneCluster is spec scenario S3: among ten
// 3-segment clusters of the same street name plus isolated stragglers, the
// matcher must pick exactly the 3-segment cluster nearest the reference
// point.
func TestContiguousChainSelectsOneCluster(t *testing.T) {
	const clusterSpacing = 5000 * degPerMeterLon30N
	baseLon := -95.0

	var providers []streetnet.ProviderSegment
	for c := 0; c < 10; c++ {
		providers = append(providers, buildWatsonCluster(c, baseLon+float64(c)*clusterSpacing)...)
	}
	for i := 0; i < 9; i++ {
		providers = append(providers, streetnet.ProviderSegment{
			ID:   "straggler-" + string(rune('a'+i)),
			Name: "Watson Road",
			Geometry: []geomath.Position{
				{Lon: baseLon + float64(i)*0.1, Lat: 31.0 + float64(i)*0.01},
				{Lon: baseLon + float64(i)*0.1 + 0.002, Lat: 31.0 + float64(i)*0.01},
			},
		})
	}

	net := mustNetwork(t, providers)

	refPoint := geomath.Position{Lon: baseLon + 3*clusterSpacing, Lat: 30.0}

	seg := legaldesc.BoundarySegmentDescription{
		ReferenceType: legaldesc.ReferenceStreetCenterline,
		FeatureName:   "Watson Road",
	}

	result := MatchSegment(seg, net, &refPoint, DefaultMatcherConfig())
	require.NotEqual(t, QualityFailed, result.Quality)
	require.Len(t, result.Diagnostics.MatchedSegmentIDs, 3)
	for _, id := range result.Diagnostics.MatchedSegmentIDs {
		assert.Contains(t, id, "watson-"+string(rune('a'+3)))
	}

	start := result.Coordinates[0]
	assert.Less(t, geomath.Haversine(refPoint, start), 300.0)
}

func TestChainLengthNeverExceedsFiftyOrCandidateCount(t *testing.T) {
	scores := make([]candidateScore, 0, 60)
	lon := -95.0
	for i := 0; i < 60; i++ {
		lon += 0.0001
		scores = append(scores, candidateScore{
			id:       "s" + string(rune('a'+i%26)),
			geometry: []geomath.Position{{Lon: lon, Lat: 30.0}, {Lon: lon + 0.0001, Lat: 30.0}},
			total:    1.0,
		})
	}
	ref := geomath.Position{Lon: -95.0, Lat: 30.0}
	chain := selectContiguousChain(scores, &ref, DefaultMatcherConfig())
	assert.LessOrEqual(t, len(chain), 50)
}

func TestClassifyQualityThresholds(t *testing.T) {
	cases := []struct {
		name    string
		score   candidateScore
		minSim  float64
		want    MatchQuality
	}{
		{"exact", candidateScore{nameSim: 0.97, distanceScore: 0.9}, 0.75, QualityExact},
		{"fuzzy", candidateScore{nameSim: 0.8, distanceScore: 0.6}, 0.75, QualityFuzzy},
		{"partial", candidateScore{nameSim: 0.8, distanceScore: 0.2}, 0.75, QualityPartial},
		{"failed", candidateScore{nameSim: 0.5, distanceScore: 0.9}, 0.75, QualityFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, classifyQuality(tc.score, tc.minSim))
		})
	}
}

func TestMatchSegmentMunicipalBoundaryIsPartial(t *testing.T) {
	net := mustNetwork(t, []streetnet.ProviderSegment{
		{ID: "main", Name: "Main Street", Geometry: []geomath.Position{{Lon: -95.0, Lat: 30.0}, {Lon: -94.99, Lat: 30.0}}},
	})
	seg := legaldesc.BoundarySegmentDescription{ReferenceType: legaldesc.ReferenceMunicipalBoundary, FeatureName: "city limits"}

	result := MatchSegment(seg, net, nil, DefaultMatcherConfig())
	assert.Equal(t, QualityPartial, result.Quality)
	assert.Empty(t, result.Coordinates)
}

// TestMatchWardDescriptionClosesRectangle mirrors spec scenario S4 at the
// matcher layer: four named streets forming a unit rectangle traversed CCW
// should match and close into a ring whose first and last vertices coincide
// (each shared junction vertex appears once per segment that ends there).
func TestMatchWardDescriptionClosesRectangle(t *testing.T) {
	net := mustNetwork(t, []streetnet.ProviderSegment{
		{ID: "south", Name: "South Street", Geometry: []geomath.Position{{Lon: -95.0, Lat: 30.0}, {Lon: -94.99, Lat: 30.0}}},
		{ID: "east", Name: "East Avenue", Geometry: []geomath.Position{{Lon: -94.99, Lat: 30.0}, {Lon: -94.99, Lat: 30.01}}},
		{ID: "north", Name: "North Street", Geometry: []geomath.Position{{Lon: -94.99, Lat: 30.01}, {Lon: -95.0, Lat: 30.01}}},
		{ID: "west", Name: "West Avenue", Geometry: []geomath.Position{{Lon: -95.0, Lat: 30.01}, {Lon: -95.0, Lat: 30.0}}},
	})

	ward := legaldesc.WardLegalDescription{
		WardID: "ward-1",
		Segments: []legaldesc.BoundarySegmentDescription{
			{Index: 0, ReferenceType: legaldesc.ReferenceStreetCenterline, FeatureName: "South Street"},
			{Index: 1, ReferenceType: legaldesc.ReferenceStreetCenterline, FeatureName: "East Avenue"},
			{Index: 2, ReferenceType: legaldesc.ReferenceStreetCenterline, FeatureName: "North Street"},
			{Index: 3, ReferenceType: legaldesc.ReferenceStreetCenterline, FeatureName: "West Avenue"},
		},
	}

	result := MatchWardDescription(ward, net, DefaultMatcherConfig())
	require.Empty(t, result.FailedSegments)
	require.True(t, result.RingClosed)
	assert.True(t, result.GeometryValid)
	assert.Equal(t, result.Polygon[0], result.Polygon[len(result.Polygon)-1])
	assert.Equal(t, 1.0, result.MatchRate)
}

func TestMatchWardDescriptionRecordsFailedSegments(t *testing.T) {
	net := mustNetwork(t, []streetnet.ProviderSegment{
		{ID: "south", Name: "South Street", Geometry: []geomath.Position{{Lon: -95.0, Lat: 30.0}, {Lon: -94.99, Lat: 30.0}}},
	})

	ward := legaldesc.WardLegalDescription{
		WardID: "ward-2",
		Segments: []legaldesc.BoundarySegmentDescription{
			{Index: 0, ReferenceType: legaldesc.ReferenceStreetCenterline, FeatureName: "South Street"},
			{Index: 1, ReferenceType: legaldesc.ReferenceStreetCenterline, FeatureName: "Missing Road"},
		},
	}

	result := MatchWardDescription(ward, net, DefaultMatcherConfig())
	assert.Equal(t, []int{1}, result.FailedSegments)
	assert.False(t, result.RingClosed)
}

// TestMatchWardDescriptionRecordsGapAbortAsFailedSegment covers §4.4.7's
// gap-abort path: every segment individually matches, but the ring has an
// internal junction gap exceeding MaxSegmentGapM. That junction's segment
// index must land in FailedSegments rather than being silently dropped.
func TestMatchWardDescriptionRecordsGapAbortAsFailedSegment(t *testing.T) {
	net := mustNetwork(t, []streetnet.ProviderSegment{
		{ID: "south", Name: "South Street", Geometry: []geomath.Position{{Lon: -95.0, Lat: 30.0}, {Lon: -94.99, Lat: 30.0}}},
		{ID: "far", Name: "Far Avenue", Geometry: []geomath.Position{{Lon: -93.0, Lat: 35.0}, {Lon: -93.0, Lat: 35.01}}},
	})

	ward := legaldesc.WardLegalDescription{
		WardID: "ward-3",
		Segments: []legaldesc.BoundarySegmentDescription{
			{Index: 0, ReferenceType: legaldesc.ReferenceStreetCenterline, FeatureName: "South Street"},
			{Index: 1, ReferenceType: legaldesc.ReferenceStreetCenterline, FeatureName: "Far Avenue"},
		},
	}

	result := MatchWardDescription(ward, net, DefaultMatcherConfig())
	require.Equal(t, 2, result.Matched)
	assert.Equal(t, []int{1}, result.FailedSegments)
	assert.False(t, result.RingClosed)
	assert.Nil(t, result.Polygon)
}
