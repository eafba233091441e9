// Package polygon assembles matched boundary-segment geometry into closed,
// validated exterior rings (spec.md §4.5): gap detection and auto-fill
// logging, ring closure, winding-order enforcement, optional Douglas-Peucker
// simplification, area computation, and self-intersection detection.
package polygon

import (
	"fmt"

	"github.com/wardrecon/boundary-engine/internal/geomath"
)

// RepairKind is the closed set of repair actions the builder may log.
type RepairKind string

const (
	RepairGapFilled        RepairKind = "gap_filled"
	RepairRingClosed       RepairKind = "ring_closed"
	RepairWindingReversed  RepairKind = "winding_reversed"
	RepairSimplified       RepairKind = "simplified"
)

// Repair is one entry in a build's ordered repair log.
type Repair struct {
	Kind   RepairKind
	Detail string
}

// Validation is the structural validity record attached to a successful
// build.
type Validation struct {
	IsClosed             bool
	IsCounterClockwise   bool
	HasValidArea         bool
	AreaM2               float64
	HasSelfIntersections bool
	VertexCount          int
}

// BuilderConfig tunes every stage of the polygon-assembly pipeline.
type BuilderConfig struct {
	MaxAutoFillGapM        float64
	MinRingAreaM2          float64
	SimplifyToleranceM     float64
	EnforceWindingOrder    bool
	RemoveSelfIntersections bool
}

// DefaultBuilderConfig returns the spec-documented defaults.
func DefaultBuilderConfig() BuilderConfig {
	return BuilderConfig{
		MaxAutoFillGapM:         200,
		MinRingAreaM2:           1000,
		SimplifyToleranceM:      0,
		EnforceWindingOrder:     true,
		RemoveSelfIntersections: true,
	}
}

// BuildResult is the total output of BuildPolygonFromMatches.
type BuildResult struct {
	Success       bool
	FailureReason string
	Ring          []geomath.Position
	Validation    Validation
	Repairs       []Repair
}

const selfIntersectionEpsilon = 1e-10

// BuildPolygonFromMatches runs the §4.5 pipeline over the coordinate lists
// from a set of successful segment matches, in traversal order.
func BuildPolygonFromMatches(matchedCoords [][]geomath.Position, cfg BuilderConfig) BuildResult {
	var repairs []Repair

	merged, reason := concatenateWithGapCheck(matchedCoords, cfg.MaxAutoFillGapM, &repairs)
	if reason != "" {
		return BuildResult{FailureReason: reason, Repairs: repairs}
	}

	if len(merged) < 3 {
		return BuildResult{FailureReason: "fewer than 3 points after concatenation", Repairs: repairs}
	}

	closingGap := geomath.Haversine(merged[0], merged[len(merged)-1])
	if closingGap > cfg.MaxAutoFillGapM {
		return BuildResult{FailureReason: "closing gap exceeds max auto-fill gap", Repairs: repairs}
	}
	if closingGap > 1 {
		repairs = append(repairs, Repair{Kind: RepairRingClosed, Detail: "closing gap filled"})
	}
	ring := geomath.CloseRing(merged)

	if cfg.EnforceWindingOrder {
		if geomath.SignedRingArea(ring) < 0 {
			ring = geomath.CloseRing(geomath.ReverseRing(ring[:len(ring)-1]))
			repairs = append(repairs, Repair{Kind: RepairWindingReversed, Detail: "ring was clockwise, reversed to CCW"})
		}
	}

	if cfg.SimplifyToleranceM > 0 {
		before := len(ring)
		tolDeg := geomath.MetersToDegrees(cfg.SimplifyToleranceM)
		simplified := geomath.DouglasPeucker(ring[:len(ring)-1], tolDeg)
		ring = geomath.CloseRing(simplified)
		repairs = append(repairs, Repair{Kind: RepairSimplified, Detail: vertexDelta(before, len(ring))})
	}

	areaM2 := geomath.AreaM2(ring)
	if areaM2 < cfg.MinRingAreaM2 {
		return BuildResult{FailureReason: "ring area below minimum", Repairs: repairs}
	}

	hasSelfIntersections := ringSelfIntersects(ring)
	if hasSelfIntersections && cfg.RemoveSelfIntersections {
		return BuildResult{
			FailureReason: "polygon has self-intersections",
			Repairs:       repairs,
			Validation: Validation{
				IsClosed:             true,
				IsCounterClockwise:   geomath.SignedRingArea(ring) > 0,
				HasValidArea:         true,
				AreaM2:               areaM2,
				HasSelfIntersections: true,
				VertexCount:          len(ring),
			},
		}
	}

	return BuildResult{
		Success: true,
		Ring:    ring,
		Repairs: repairs,
		Validation: Validation{
			IsClosed:             true,
			IsCounterClockwise:   geomath.SignedRingArea(ring) > 0,
			HasValidArea:         true,
			AreaM2:               areaM2,
			HasSelfIntersections: hasSelfIntersections,
			VertexCount:          len(ring),
		},
	}
}

// coincidentVertexEpsilonM is the distance below which two consecutive
// segments' shared junction vertex is treated as the same point rather
// than concatenated twice.
const coincidentVertexEpsilonM = 1e-6

func concatenateWithGapCheck(segments [][]geomath.Position, maxGapM float64, repairs *[]Repair) ([]geomath.Position, string) {
	var merged []geomath.Position
	for _, seg := range segments {
		next := seg
		if len(merged) > 0 && len(seg) > 0 {
			gap := geomath.Haversine(merged[len(merged)-1], seg[0])
			if gap > maxGapM {
				return nil, "gap between segments exceeds max auto-fill gap"
			}
			if gap > 1 {
				*repairs = append(*repairs, Repair{Kind: RepairGapFilled, Detail: "gap filled between consecutive segments"})
			}
			if gap < coincidentVertexEpsilonM {
				next = seg[1:]
			}
		}
		merged = append(merged, next...)
	}
	return merged, ""
}

// ringSelfIntersects implements §4.5 step 6: test every non-adjacent edge
// pair for a true interior crossing.
func ringSelfIntersects(ring []geomath.Position) bool {
	n := len(ring) - 1 // ring is closed: last == first
	if n < 4 {
		return false
	}
	for i := 0; i < n; i++ {
		a1, a2 := ring[i], ring[i+1]
		for j := i + 1; j < n; j++ {
			if isAdjacentEdge(i, j, n) {
				continue
			}
			b1, b2 := ring[j], ring[j+1]
			t1, t2, _, ok := geomath.LineIntersection(a1, a2, b1, b2)
			if ok && t1 > selfIntersectionEpsilon && t1 < 1-selfIntersectionEpsilon &&
				t2 > selfIntersectionEpsilon && t2 < 1-selfIntersectionEpsilon {
				return true
			}
		}
	}
	return false
}

func isAdjacentEdge(i, j, n int) bool {
	return i == j || (i+1)%n == j || (j+1)%n == i
}

func vertexDelta(before, after int) string {
	return fmt.Sprintf("vertices %d -> %d", before, after)
}
