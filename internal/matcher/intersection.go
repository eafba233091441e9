package matcher

import (
	"strings"

	"github.com/wardrecon/boundary-engine/internal/geomath"
	"github.com/wardrecon/boundary-engine/internal/streetnet"
)

type intersectionKind string

const (
	intersectionCrossing intersectionKind = "crossing"
	intersectionNearMiss intersectionKind = "near-miss"
	intersectionEndpoint intersectionKind = "endpoint"
)

type intersectionCandidate struct {
	kind     intersectionKind
	point    geomath.Position
	distance float64
	s1, s2   streetnet.StreetSegment
}

// resolveIntersection implements spec.md §4.4.2: find the single point
// where two named streets meet, tolerating OSM-style data defects (near
// misses, dangling endpoints instead of a true crossing).
func resolveIntersection(q streetnet.Query, name1, name2 string, refPoint *geomath.Position, cfg MatcherConfig) SegmentMatchResult {
	s1Candidates := q.FindByName(name1)
	s2Candidates := q.FindByName(name2)

	if len(s1Candidates) == 0 || len(s2Candidates) == 0 {
		return SegmentMatchResult{
			Quality: QualityFailed,
			Diagnostics: MatchDiagnostics{
				Reason: "no street found matching one or both of the intersection names: " + name1 + ", " + name2,
			},
		}
	}

	var best *intersectionCandidate
	minDistSeen := cfg.MaxSnapDistanceM

	for _, s1 := range s1Candidates {
		for _, s2 := range s2Candidates {
			if cand := bestIntersectionBetween(s1, s2, &minDistSeen, cfg); cand != nil {
				if cand.kind == intersectionCrossing {
					best = cand
					goto selected
				}
				if best == nil || isBetterIntersection(*cand, *best, refPoint) {
					best = cand
				}
			}
		}
	}

selected:
	if best == nil {
		return SegmentMatchResult{
			Quality: QualityFailed,
			Diagnostics: MatchDiagnostics{
				Reason:            "streets " + name1 + " and " + name2 + " do not meet within snap distance",
				AlternativesTried: len(s1Candidates) * len(s2Candidates),
			},
		}
	}

	quality := QualityExact
	dist := 0.0
	if best.kind != intersectionCrossing {
		quality = QualityFuzzy
		dist = best.distance
	}

	return SegmentMatchResult{
		Quality:     quality,
		Coordinates: []geomath.Position{best.point},
		Diagnostics: MatchDiagnostics{
			Reason:           strings.Join([]string{"matched via", string(best.kind)}, " "),
			ClosestDistanceM: dist,
			MatchedSegmentIDs: []string{best.s1.ID, best.s2.ID},
		},
	}
}

// bestIntersectionBetween runs the vertex-pair and segment-pair scan
// described in §4.4.2 between one candidate pair of named streets.
func bestIntersectionBetween(s1, s2 streetnet.StreetSegment, minDistSeen *float64, cfg MatcherConfig) *intersectionCandidate {
	var found *intersectionCandidate

	for i := 0; i+1 < len(s1.Geometry); i++ {
		p1, p2 := s1.Geometry[i], s1.Geometry[i+1]
		for j := 0; j+1 < len(s2.Geometry); j++ {
			p3, p4 := s2.Geometry[j], s2.Geometry[j+1]

			t1, t2, point, ok := geomath.LineIntersection(p1, p2, p3, p4)
			if !ok {
				continue // parallel: no intersection point to measure against
			}

			if t1 >= 0 && t1 <= 1 && t2 >= 0 && t2 <= 1 && geomath.Haversine(point, p1) <= 10*cfg.MaxSnapDistanceM {
				return &intersectionCandidate{kind: intersectionCrossing, point: point, distance: 0, s1: s1, s2: s2}
			}

			closest1, _ := geomath.ClosestPointOnSegment(point, p1, p2)
			closest2, _ := geomath.ClosestPointOnSegment(point, p3, p4)
			d := geomath.Haversine(closest1, closest2)
			if d < *minDistSeen && d < cfg.MaxSnapDistanceM {
				*minDistSeen = d
				mid := midpoint(closest1, closest2)
				found = &intersectionCandidate{kind: intersectionNearMiss, point: mid, distance: d, s1: s1, s2: s2}
			}
		}
	}

	for _, v1 := range s1.Geometry {
		for _, v2 := range s2.Geometry {
			d := geomath.Haversine(v1, v2)
			if d < *minDistSeen && d < cfg.MaxSnapDistanceM {
				*minDistSeen = d
				mid := midpoint(v1, v2)
				found = &intersectionCandidate{kind: intersectionEndpoint, point: mid, distance: d, s1: s1, s2: s2}
			}
		}
	}

	return found
}

func midpoint(a, b geomath.Position) geomath.Position {
	return geomath.Position{Lon: (a.Lon + b.Lon) / 2, Lat: (a.Lat + b.Lat) / 2}
}

// isBetterIntersection implements the §4.4.2 step-3 tie-break: prefer the
// candidate closest to refPoint when one is supplied, else the smaller
// distance.
func isBetterIntersection(cand, current intersectionCandidate, refPoint *geomath.Position) bool {
	if refPoint != nil {
		return geomath.Haversine(cand.point, *refPoint) < geomath.Haversine(current.point, *refPoint)
	}
	return cand.distance < current.distance
}
