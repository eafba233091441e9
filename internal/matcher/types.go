// Package matcher resolves a parsed boundary segment description to actual
// street-network geometry: geometric intersection solving, contiguous-chain
// selection among duplicate-named street segments, and ward-level
// assembly into a closed ring (spec.md §4.4). Every exported entry point is
// a total function — failures are reported in a result value's diagnostics,
// never via panic or error return, except where an invalid caller-supplied
// Query or config makes the call meaningless.
package matcher

import (
	"github.com/wardrecon/boundary-engine/internal/geomath"
)

// MatchQuality is the closed set of outcomes for a single segment match.
type MatchQuality string

const (
	QualityExact   MatchQuality = "exact"
	QualityFuzzy   MatchQuality = "fuzzy"
	QualityPartial MatchQuality = "partial"
	QualityFailed  MatchQuality = "failed"
)

// MatcherConfig tunes every stage of the matching pipeline.
type MatcherConfig struct {
	MinNameSimilarity         float64
	MaxSnapDistanceM          float64
	PreferDirectionalContinuity bool
	MaxSegmentGapM            float64
}

// DefaultMatcherConfig returns the spec-documented defaults.
func DefaultMatcherConfig() MatcherConfig {
	return MatcherConfig{
		MinNameSimilarity:           0.75,
		MaxSnapDistanceM:            100,
		PreferDirectionalContinuity: true,
		MaxSegmentGapM:              200,
	}
}

// connectionToleranceM bounds how close a candidate's nearest endpoint must
// be to the current chain's free end during §4.4.4's walk.
const connectionToleranceM = 50

// maxChainIterations bounds the contiguous-chain walk regardless of input
// size (spec.md §5, invariant 7).
const maxChainIterations = 50

// MatchDiagnostics carries the human-triageable detail behind a match
// outcome: why it succeeded or failed, and what else was considered.
type MatchDiagnostics struct {
	Reason             string
	NameSimilarity     float64
	ClosestDistanceM   float64
	AlternativesTried  int
	MatchedSegmentIDs  []string
}

// SegmentMatchResult is the total output of matching one boundary segment
// description against a street network.
type SegmentMatchResult struct {
	SegmentIndex int
	Quality      MatchQuality
	Coordinates  []geomath.Position
	Diagnostics  MatchDiagnostics
}

// WardMatchResult is the total output of matching every segment of a ward's
// legal description, plus (if every segment succeeded and the ring closes)
// the assembled polygon coordinates.
type WardMatchResult struct {
	WardID         string
	SegmentResults []SegmentMatchResult
	FailedSegments []int
	Polygon        []geomath.Position
	Matched        int
	Total          int
	MatchRate      float64
	RingClosed     bool
	GeometryValid  bool
}

// candidateScore is an internal scoring record produced by §4.4.3 and
// consumed by §4.4.4/§4.4.6.
type candidateScore struct {
	id               string
	name             string
	geometry         []geomath.Position
	nameSim          float64
	distanceScore    float64
	directionScore   float64
	closestDistanceM float64
	total            float64
}

func (c candidateScore) start() geomath.Position { return c.geometry[0] }
func (c candidateScore) end() geomath.Position   { return c.geometry[len(c.geometry)-1] }
