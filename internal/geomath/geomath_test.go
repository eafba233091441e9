package geomath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineZeroDistance(t *testing.T) {
	p := Position{Lon: -95.0, Lat: 30.0}
	assert.InDelta(t, 0, Haversine(p, p), 1e-9)
}

func TestHaversineKnownDistance(t *testing.T) {
	// Roughly 1 degree of longitude at the equator is ~111.2km.
	a := Position{Lon: 0, Lat: 0}
	b := Position{Lon: 1, Lat: 0}
	d := Haversine(a, b)
	assert.InDelta(t, 111195.0, d, 500)
}

func TestHaversineSymmetric(t *testing.T) {
	a := Position{Lon: -95.0, Lat: 30.0}
	b := Position{Lon: -94.99, Lat: 30.01}
	assert.InDelta(t, Haversine(a, b), Haversine(b, a), 1e-9)
}

func TestSignedRingAreaSignFlipsOnReverse(t *testing.T) {
	ring := []Position{
		{Lon: -95.0, Lat: 30.0},
		{Lon: -94.99, Lat: 30.0},
		{Lon: -94.99, Lat: 30.01},
		{Lon: -95.0, Lat: 30.01},
	}
	area := SignedRingArea(ring)
	reversed := ReverseRing(ring)
	areaRev := SignedRingArea(reversed)
	assert.InDelta(t, -area, areaRev, 1e-12)
	assert.NotZero(t, area)
}

func TestCloseRingIdempotent(t *testing.T) {
	ring := []Position{
		{Lon: 0, Lat: 0}, {Lon: 1, Lat: 0}, {Lon: 1, Lat: 1}, {Lon: 0, Lat: 1},
	}
	once := CloseRing(ring)
	twice := CloseRing(once)
	assert.Equal(t, once, twice)
	assert.Equal(t, once[0], once[len(once)-1])
}

func TestClosestPointOnSegmentClampsToEndpoints(t *testing.T) {
	a := Position{Lon: 0, Lat: 0}
	b := Position{Lon: 1, Lat: 0}
	p := Position{Lon: -1, Lat: 0.5}
	closest, _ := ClosestPointOnSegment(p, a, b)
	assert.Equal(t, a, closest)

	p2 := Position{Lon: 2, Lat: 0.5}
	closest2, _ := ClosestPointOnSegment(p2, a, b)
	assert.Equal(t, b, closest2)
}

func TestLineIntersectionPerpendicularCross(t *testing.T) {
	main1 := Position{Lon: -95.0, Lat: 30.0}
	main2 := Position{Lon: -94.99, Lat: 30.0}
	oak1 := Position{Lon: -94.995, Lat: 29.995}
	oak2 := Position{Lon: -94.995, Lat: 30.005}

	t1, t2, point, ok := LineIntersection(main1, main2, oak1, oak2)
	if assert.True(t, ok) {
		assert.InDelta(t, 0.5, t1, 1e-6)
		assert.InDelta(t, 0.5, t2, 1e-6)
		assert.InDelta(t, -94.995, point.Lon, 1e-6)
		assert.InDelta(t, 30.0, point.Lat, 1e-6)
	}
}

func TestLineIntersectionParallelNotOK(t *testing.T) {
	_, _, _, ok := LineIntersection(
		Position{Lon: 0, Lat: 0}, Position{Lon: 1, Lat: 0},
		Position{Lon: 0, Lat: 1}, Position{Lon: 1, Lat: 1},
	)
	assert.False(t, ok)
}

func TestDouglasPeuckerKeepsEndpoints(t *testing.T) {
	ring := []Position{
		{Lon: 0, Lat: 0}, {Lon: 0.5, Lat: 0.0001}, {Lon: 1, Lat: 0},
	}
	simplified := DouglasPeucker(ring, MetersToDegrees(1000))
	assert.Equal(t, ring[0], simplified[0])
	assert.Equal(t, ring[len(ring)-1], simplified[len(simplified)-1])
	assert.Len(t, simplified, 2)
}

func TestDouglasPeuckerKeepsSignificantDeviation(t *testing.T) {
	ring := []Position{
		{Lon: 0, Lat: 0}, {Lon: 0.5, Lat: 1.0}, {Lon: 1, Lat: 0},
	}
	simplified := DouglasPeucker(ring, MetersToDegrees(1000))
	assert.Len(t, simplified, 3)
}

func TestCentroidOfSquareIsCenter(t *testing.T) {
	ring := []Position{
		{Lon: 0, Lat: 0}, {Lon: 2, Lat: 0}, {Lon: 2, Lat: 2}, {Lon: 0, Lat: 2},
	}
	c := Centroid(ring)
	assert.InDelta(t, 1.0, c.Lon, 1e-9)
	assert.InDelta(t, 1.0, c.Lat, 1e-9)
}

func TestAreaM2Positive(t *testing.T) {
	ring := []Position{
		{Lon: -95.0, Lat: 30.0},
		{Lon: -94.99, Lat: 30.0},
		{Lon: -94.99, Lat: 30.01},
		{Lon: -95.0, Lat: 30.01},
	}
	area := AreaM2(ring)
	assert.Greater(t, area, 0.0)
}

func TestBearingCardinal(t *testing.T) {
	a := Position{Lon: 0, Lat: 0}
	north := Position{Lon: 0, Lat: 1}
	b := Bearing(a, north)
	assert.InDelta(t, 0, math.Mod(b+360, 360), 1.0)
}
