// Package streetnet holds a queryable in-memory model of a street network:
// named segments with polyline geometry, indexed for name lookup and
// spatial proximity queries (spec.md §4.3). Acquiring the underlying
// TIGER/Line or OSM data is out of scope for this package; see
// internal/streetnet/shpload for one optional ingestion adapter.
package streetnet

import (
	"github.com/wardrecon/boundary-engine/internal/geomath"
	"github.com/wardrecon/boundary-engine/internal/streetname"
)

// StreetSegment is one named, geometrically continuous stretch of street
// centerline (or edge-of-pavement) geometry.
type StreetSegment struct {
	ID           string
	Name         string
	Normalized   streetname.NormalizedStreetName
	AltNames     []string
	AltNormalized []streetname.NormalizedStreetName
	StreetType   string
	HighwayClass string
	Geometry     []geomath.Position
	BBox         geomath.BBox
	CityFIPS     string
}

// BestNameSimilarity returns the greatest similarity between query and
// either the segment's canonical name or any of its alt-names, per
// §4.4.3 step 2 ("name_sim is the max over the candidate's canonical name
// and each alt-name").
func (s StreetSegment) BestNameSimilarity(query streetname.NormalizedStreetName) float64 {
	best := streetname.Similarity(query, s.Normalized)
	for _, alt := range s.AltNormalized {
		if sim := streetname.Similarity(query, alt); sim > best {
			best = sim
		}
	}
	return best
}

// ProviderSegment is the flat shape produced by an acquisition adapter
// (shapefile loader, OSM extract, hand-built fixture) before it is indexed
// into a StreetNetwork.
type ProviderSegment struct {
	ID           string
	Name         string
	AltNames     []string
	StreetType   string
	HighwayClass string
	Geometry     []geomath.Position
	CityFIPS     string
}

// StreetNetwork is an immutable, queryable collection of StreetSegments for
// one city or county. Construct with FromProvider; the zero value is not
// usable.
type StreetNetwork struct {
	segments []StreetSegment
	byCore   map[string][]int
	grid     *grid
}

// Len returns the number of indexed segments.
func (n *StreetNetwork) Len() int {
	if n == nil {
		return 0
	}
	return len(n.segments)
}

// Segment returns the segment at the given index, or false if out of range.
func (n *StreetNetwork) Segment(i int) (StreetSegment, bool) {
	if n == nil || i < 0 || i >= len(n.segments) {
		return StreetSegment{}, false
	}
	return n.segments[i], true
}
