package matcher

import (
	"sort"
	"strconv"
	"strings"

	"github.com/wardrecon/boundary-engine/internal/geomath"
	"github.com/wardrecon/boundary-engine/internal/legaldesc"
	"github.com/wardrecon/boundary-engine/internal/streetname"
	"github.com/wardrecon/boundary-engine/internal/streetnet"
)

// MatchSegment dispatches one boundary segment description to the
// appropriate matching strategy per §4.4.1 and returns a total result.
func MatchSegment(seg legaldesc.BoundarySegmentDescription, q streetnet.Query, refPoint *geomath.Position, cfg MatcherConfig) SegmentMatchResult {
	result := matchSegment(seg, q, refPoint, cfg)
	result.SegmentIndex = seg.Index
	return result
}

func matchSegment(seg legaldesc.BoundarySegmentDescription, q streetnet.Query, refPoint *geomath.Position, cfg MatcherConfig) SegmentMatchResult {
	switch {
	case seg.ReferenceType == legaldesc.ReferenceMunicipalBoundary:
		return SegmentMatchResult{
			Quality: QualityPartial,
			Diagnostics: MatchDiagnostics{
				Reason: "municipal_boundary segments require an external municipal boundary collaborator to supply coordinates",
			},
		}

	case seg.ReferenceType == legaldesc.ReferenceCoordinate && strings.HasPrefix(seg.FeatureName, "intersection:"):
		s1, s2, ok := splitIntersectionName(seg.FeatureName)
		if !ok {
			return SegmentMatchResult{
				Quality:     QualityFailed,
				Diagnostics: MatchDiagnostics{Reason: "malformed intersection feature name: " + seg.FeatureName},
			}
		}
		return resolveIntersection(q, s1, s2, refPoint, cfg)

	default:
		return matchStreetChain(seg.FeatureName, seg.Direction, q, refPoint, cfg)
	}
}

func splitIntersectionName(featureName string) (string, string, bool) {
	rest := strings.TrimPrefix(featureName, "intersection:")
	parts := strings.SplitN(rest, ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// matchStreetChain runs §4.4.3 through §4.4.6: find and score candidates,
// select a contiguous chain anchored near the reference point, merge their
// geometry, and classify the result quality.
func matchStreetChain(featureName string, direction streetname.CardinalDirection, q streetnet.Query, refPoint *geomath.Position, cfg MatcherConfig) SegmentMatchResult {
	candidates := findCandidates(q, featureName, refPoint, cfg)
	if len(candidates) == 0 {
		return SegmentMatchResult{
			Quality:     QualityFailed,
			Diagnostics: MatchDiagnostics{Reason: "no street found matching " + featureName},
		}
	}

	scores := scoreCandidates(featureName, candidates, refPoint, direction, cfg)
	valid := filterByNameSimilarity(scores, cfg.MinNameSimilarity)
	if len(valid) == 0 {
		return SegmentMatchResult{
			Quality: QualityFailed,
			Diagnostics: MatchDiagnostics{
				Reason:            "no candidate for " + featureName + " met the minimum name-similarity threshold",
				AlternativesTried: len(scores),
			},
		}
	}

	sort.SliceStable(valid, func(i, j int) bool { return valid[i].total > valid[j].total })

	chain := selectContiguousChain(valid, refPoint, cfg)
	coords := mergeChainCoordinates(chain, refPoint)

	best := valid[0]
	quality := classifyQuality(best, cfg.MinNameSimilarity)
	if quality == QualityFailed {
		return SegmentMatchResult{
			Quality: QualityFailed,
			Diagnostics: MatchDiagnostics{
				Reason:           "best match for " + featureName + " scored below quality thresholds",
				NameSimilarity:   best.nameSim,
				ClosestDistanceM: best.closestDistanceM,
			},
		}
	}

	ids := make([]string, len(chain))
	for i, c := range chain {
		ids[i] = c.id
	}

	return SegmentMatchResult{
		Quality:     quality,
		Coordinates: coords,
		Diagnostics: MatchDiagnostics{
			Reason:            "matched " + strconv.Itoa(len(chain)) + " contiguous segment(s) for " + featureName,
			NameSimilarity:    best.nameSim,
			ClosestDistanceM:  best.closestDistanceM,
			AlternativesTried: len(scores),
			MatchedSegmentIDs: ids,
		},
	}
}

// MatchWardDescription implements §4.4.7: match every segment of a ward's
// legal description in order, carrying the last successful match's final
// vertex forward as the next segment's reference point, then assemble a
// closed ring if every segment succeeded.
func MatchWardDescription(ward legaldesc.WardLegalDescription, q streetnet.Query, cfg MatcherConfig) WardMatchResult {
	result := WardMatchResult{
		WardID: ward.WardID,
		Total:  len(ward.Segments),
	}

	var lastPoint *geomath.Position
	var ring []geomath.Position
	var ringSegIndex []int

	for _, seg := range ward.Segments {
		segResult := MatchSegment(seg, q, lastPoint, cfg)
		result.SegmentResults = append(result.SegmentResults, segResult)

		if segResult.Quality == QualityFailed {
			result.FailedSegments = append(result.FailedSegments, seg.Index)
			continue
		}

		result.Matched++
		if len(segResult.Coordinates) > 0 {
			lp := segResult.Coordinates[len(segResult.Coordinates)-1]
			lastPoint = &lp
			ring = append(ring, segResult.Coordinates...)
			for range segResult.Coordinates {
				ringSegIndex = append(ringSegIndex, seg.Index)
			}
		}
	}

	if len(result.FailedSegments) == 0 && len(ring) > 0 {
		assembled, gapAt, ok := assembleRing(ring, ringSegIndex, cfg.MaxSegmentGapM)
		if ok {
			result.Polygon = assembled
			result.RingClosed = true
			result.GeometryValid = len(assembled) >= 4
		} else if gapAt >= 0 {
			result.FailedSegments = append(result.FailedSegments, ringSegIndex[gapAt])
		}
	}

	if result.Total > 0 {
		result.MatchRate = float64(result.Matched) / float64(result.Total)
	}

	return result
}

// assembleRing concatenates a matched ward's coordinates into a closed
// ring. segIndex[i] is the segment that contributed points[i]; only the
// junctions between segments and the closing edge are gap-checked. On a gap
// abort it returns the ring index of the first point after the offending
// junction (or, for the closing edge, of the last point), so the caller can
// attribute the failure to the originating segment per §4.4.7.
func assembleRing(points []geomath.Position, segIndex []int, maxGapM float64) ([]geomath.Position, int, bool) {
	if len(points) < 3 {
		return nil, -1, false
	}

	out := []geomath.Position{points[0]}
	for i := 1; i < len(points); i++ {
		if segIndex[i] != segIndex[i-1] && geomath.Haversine(points[i-1], points[i]) > maxGapM {
			return nil, i, false
		}
		out = append(out, points[i])
	}

	if geomath.Haversine(out[len(out)-1], out[0]) > maxGapM {
		return nil, len(out) - 1, false
	}
	return geomath.CloseRing(out), -1, true
}
