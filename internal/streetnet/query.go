package streetnet

import (
	"sort"

	"github.com/rotisserie/eris"
	"github.com/wardrecon/boundary-engine/internal/geomath"
	"github.com/wardrecon/boundary-engine/internal/streetname"
)

// Query is the read surface the matcher consumes, kept as an interface so
// tests can supply fixtures without building a full StreetNetwork.
type Query interface {
	FindByName(name string) []StreetSegment
	FindInBBox(bbox geomath.BBox) []StreetSegment
	FindNearPoint(p geomath.Position, radiusMeters float64) []StreetSegment
}

var _ Query = (*StreetNetwork)(nil)

// FromProvider indexes a flat list of provider segments into a queryable
// StreetNetwork using the default grid cell size. It normalizes each
// segment's name once at construction time so repeated lookups never
// re-run the normalizer.
func FromProvider(raw []ProviderSegment) (*StreetNetwork, error) {
	return FromProviderWithCellSize(raw, defaultCellSizeDeg)
}

// FromProviderWithCellSize is FromProvider with a caller-supplied grid cell
// size in degrees, letting deployments tune the index for denser or
// sparser street networks than the ~500m default.
func FromProviderWithCellSize(raw []ProviderSegment, cellSizeDeg float64) (*StreetNetwork, error) {
	if cellSizeDeg <= 0 {
		cellSizeDeg = defaultCellSizeDeg
	}
	if len(raw) == 0 {
		return nil, eris.New("streetnet: provider returned zero segments")
	}

	segments := make([]StreetSegment, 0, len(raw))
	byCore := make(map[string][]int)

	for _, r := range raw {
		if len(r.Geometry) < 2 {
			continue
		}
		norm := streetname.Normalize(r.Name)
		altNorm := make([]streetname.NormalizedStreetName, len(r.AltNames))
		for i, alt := range r.AltNames {
			altNorm[i] = streetname.Normalize(alt)
		}
		seg := StreetSegment{
			ID:            r.ID,
			Name:          r.Name,
			Normalized:    norm,
			AltNames:      r.AltNames,
			AltNormalized: altNorm,
			StreetType:    r.StreetType,
			HighwayClass:  r.HighwayClass,
			Geometry:      r.Geometry,
			BBox:          geomath.BBoxOf(r.Geometry),
			CityFIPS:      r.CityFIPS,
		}
		idx := len(segments)
		segments = append(segments, seg)

		seenCores := make(map[string]bool, 1+len(altNorm))
		if norm.CoreName != "" {
			byCore[norm.CoreName] = append(byCore[norm.CoreName], idx)
			seenCores[norm.CoreName] = true
		}
		for _, alt := range altNorm {
			if alt.CoreName == "" || seenCores[alt.CoreName] {
				continue
			}
			byCore[alt.CoreName] = append(byCore[alt.CoreName], idx)
			seenCores[alt.CoreName] = true
		}
	}

	if len(segments) == 0 {
		return nil, eris.New("streetnet: no segment had usable geometry")
	}

	return &StreetNetwork{
		segments: segments,
		byCore:   byCore,
		grid:     buildGrid(segments, cellSizeDeg),
	}, nil
}

// FindByName returns segments whose normalized name is equivalent to name,
// ranked by descending similarity. Core-name candidates are checked first;
// if none share a core name, every indexed segment is scored as a fallback
// so near-miss spellings in legal text still resolve.
func (n *StreetNetwork) FindByName(name string) []StreetSegment {
	if n == nil {
		return nil
	}
	query := streetname.Normalize(name)

	type scored struct {
		seg   StreetSegment
		score float64
	}

	var hits []scored
	if idxs, ok := n.byCore[query.CoreName]; ok && query.CoreName != "" {
		for _, i := range idxs {
			s := n.segments[i]
			hits = append(hits, scored{s, s.BestNameSimilarity(query)})
		}
	}

	if len(hits) == 0 {
		for _, s := range n.segments {
			sim := s.BestNameSimilarity(query)
			if sim >= streetname.DefaultEquivalenceThreshold {
				hits = append(hits, scored{s, sim})
			}
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })

	out := make([]StreetSegment, len(hits))
	for i, h := range hits {
		out[i] = h.seg
	}
	return out
}

// FindInBBox returns every segment whose bounding box overlaps bbox.
func (n *StreetNetwork) FindInBBox(bbox geomath.BBox) []StreetSegment {
	if n == nil {
		return nil
	}
	var out []StreetSegment
	for _, i := range n.grid.candidates(bbox) {
		if n.segments[i].BBox.Overlaps(bbox) {
			out = append(out, n.segments[i])
		}
	}
	return out
}

// FindNearPoint returns segments passing within radiusMeters of p, sorted
// by ascending distance.
func (n *StreetNetwork) FindNearPoint(p geomath.Position, radiusMeters float64) []StreetSegment {
	if n == nil {
		return nil
	}
	radiusDeg := geomath.MetersToDegrees(radiusMeters)
	search := geomath.BBox{
		MinLon: p.Lon - radiusDeg,
		MaxLon: p.Lon + radiusDeg,
		MinLat: p.Lat - radiusDeg,
		MaxLat: p.Lat + radiusDeg,
	}

	type scored struct {
		seg  StreetSegment
		dist float64
	}

	var hits []scored
	for _, i := range n.grid.candidates(search) {
		s := n.segments[i]
		_, dist, ok := geomath.ClosestPointOnPolyline(p, s.Geometry)
		if !ok {
			continue
		}
		if dist <= radiusMeters {
			hits = append(hits, scored{s, dist})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].dist < hits[j].dist })

	out := make([]StreetSegment, len(hits))
	for i, h := range hits {
		out[i] = h.seg
	}
	return out
}
