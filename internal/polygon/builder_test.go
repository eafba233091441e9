package polygon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wardrecon/boundary-engine/internal/geomath"
)

func rectangleSides() [][]geomath.Position {
	return [][]geomath.Position{
		{{Lon: -95.0, Lat: 30.0}, {Lon: -94.99, Lat: 30.0}},
		{{Lon: -94.99, Lat: 30.0}, {Lon: -94.99, Lat: 30.01}},
		{{Lon: -94.99, Lat: 30.01}, {Lon: -95.0, Lat: 30.01}},
		{{Lon: -95.0, Lat: 30.01}, {Lon: -95.0, Lat: 30.0}},
	}
}

// TestBuildRectangleSucceeds is spec scenario S4.
func TestBuildRectangleSucceeds(t *testing.T) {
	result := BuildPolygonFromMatches(rectangleSides(), DefaultBuilderConfig())
	require.True(t, result.Success)
	assert.True(t, result.Validation.IsClosed)
	assert.True(t, result.Validation.IsCounterClockwise)
	assert.Len(t, result.Ring, 5)
	assert.Greater(t, result.Validation.AreaM2, DefaultBuilderConfig().MinRingAreaM2)
}

// TestBuildGapTooLargeFails is spec scenario S5.
func TestBuildGapTooLargeFails(t *testing.T) {
	segments := [][]geomath.Position{
		{{Lon: 0, Lat: 0}, {Lon: 0, Lat: 1}},
		{{Lon: 10, Lat: 10}, {Lon: 10, Lat: 11}},
	}
	result := BuildPolygonFromMatches(segments, DefaultBuilderConfig())
	assert.False(t, result.Success)
	assert.Contains(t, result.FailureReason, "exceeds max")
}

func TestBuildReversesClockwiseWinding(t *testing.T) {
	sides := rectangleSides()
	reversedOrder := make([][]geomath.Position, len(sides))
	for i, s := range sides {
		rev := make([]geomath.Position, len(s))
		for j, p := range s {
			rev[len(s)-1-j] = p
		}
		reversedOrder[len(sides)-1-i] = rev
	}

	result := BuildPolygonFromMatches(reversedOrder, DefaultBuilderConfig())
	require.True(t, result.Success)
	assert.True(t, result.Validation.IsCounterClockwise)
	assert.Greater(t, geomath.SignedRingArea(result.Ring), 0.0)
}

func TestBuildDetectsSelfIntersection(t *testing.T) {
	// A small bowtie: crosses itself between opposite corners.
	segments := [][]geomath.Position{
		{{Lon: -95.0, Lat: 30.0}, {Lon: -94.999, Lat: 30.001}},
		{{Lon: -94.999, Lat: 30.001}, {Lon: -94.999, Lat: 30.0}},
		{{Lon: -94.999, Lat: 30.0}, {Lon: -95.0, Lat: 30.001}},
		{{Lon: -95.0, Lat: 30.001}, {Lon: -95.0, Lat: 30.0}},
	}
	cfg := DefaultBuilderConfig()
	cfg.MinRingAreaM2 = 0
	result := BuildPolygonFromMatches(segments, cfg)
	assert.False(t, result.Success)
	assert.Contains(t, result.FailureReason, "self-intersections")
}

func TestBuildBelowMinAreaFails(t *testing.T) {
	tiny := [][]geomath.Position{
		{{Lon: -95.0, Lat: 30.0}, {Lon: -94.99999, Lat: 30.0}},
		{{Lon: -94.99999, Lat: 30.0}, {Lon: -94.99999, Lat: 30.00001}},
		{{Lon: -94.99999, Lat: 30.00001}, {Lon: -95.0, Lat: 30.00001}},
		{{Lon: -95.0, Lat: 30.00001}, {Lon: -95.0, Lat: 30.0}},
	}
	result := BuildPolygonFromMatches(tiny, DefaultBuilderConfig())
	assert.False(t, result.Success)
	assert.Contains(t, result.FailureReason, "area")
}

func TestCombineWardPolygonsPartitions(t *testing.T) {
	ok := WardPolygonResult{BuildResult: BuildResult{Success: true}, WardID: "1"}
	fail := WardPolygonResult{BuildResult: BuildResult{Success: false}, WardID: "2"}

	combined := CombineWardPolygons([]WardPolygonResult{ok, fail})
	assert.Equal(t, 1, combined.SuccessCount())
	assert.Equal(t, 1, combined.FailureCount())
}

func TestCloseRingIsIdempotentThroughBuilder(t *testing.T) {
	ring := append(append([]geomath.Position{}, rectangleSides()[0]...), rectangleSides()[1]...)
	once := geomath.CloseRing(ring)
	twice := geomath.CloseRing(once)
	assert.Equal(t, once, twice)
}
