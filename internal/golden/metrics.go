package golden

import (
	"math"

	"github.com/wardrecon/boundary-engine/internal/geomath"
)

// hausdorffDistanceM implements spec.md §4.6's vertex-to-vertex Hausdorff
// distance: the max of the two one-sided nearest-point distances.
func hausdorffDistanceM(r1, r2 []geomath.Position) float64 {
	return math.Max(directedHausdorff(r1, r2), directedHausdorff(r2, r1))
}

func directedHausdorff(from, to []geomath.Position) float64 {
	if len(from) == 0 || len(to) == 0 {
		return 0
	}
	maxMin := 0.0
	for _, p := range from {
		minD := math.MaxFloat64
		for _, q := range to {
			d := geomath.Haversine(p, q)
			if d < minD {
				minD = d
			}
		}
		if minD > maxMin {
			maxMin = minD
		}
	}
	return maxMin
}

// areaDifferenceRatio is |A_actual - A_expected| / A_expected.
func areaDifferenceRatio(actual, expected []geomath.Position) float64 {
	expectedArea := geomath.AreaM2(expected)
	if expectedArea == 0 {
		return 0
	}
	return math.Abs(geomath.AreaM2(actual)-expectedArea) / expectedArea
}

// centroidDistanceM is the haversine distance between two rings' shoelace
// centroids.
func centroidDistanceM(actual, expected []geomath.Position) float64 {
	return geomath.Haversine(geomath.Centroid(actual), geomath.Centroid(expected))
}

const ioUGridResolution = 50

// intersectionOverUnion implements spec.md §4.6's grid-sampling IoU
// approximation: a 50x50 cell grid over the union bounding box, sampling
// each cell center against both rings.
func intersectionOverUnion(r1, r2 []geomath.Position) float64 {
	bbox := geomath.BBoxOf(append(append([]geomath.Position{}, r1...), r2...))
	if bbox.MaxLon <= bbox.MinLon || bbox.MaxLat <= bbox.MinLat {
		return 0
	}

	lonStep := (bbox.MaxLon - bbox.MinLon) / ioUGridResolution
	latStep := (bbox.MaxLat - bbox.MinLat) / ioUGridResolution

	var in1Only, in2Only, inBoth int
	for i := 0; i < ioUGridResolution; i++ {
		lon := bbox.MinLon + (float64(i)+0.5)*lonStep
		for j := 0; j < ioUGridResolution; j++ {
			lat := bbox.MinLat + (float64(j)+0.5)*latStep
			p := geomath.Position{Lon: lon, Lat: lat}
			in1 := pointInRing(p, r1)
			in2 := pointInRing(p, r2)
			switch {
			case in1 && in2:
				inBoth++
			case in1:
				in1Only++
			case in2:
				in2Only++
			}
		}
	}

	denom := in1Only + in2Only + inBoth
	if denom == 0 {
		return 0
	}
	return float64(inBoth) / float64(denom)
}

// pointInRing is a standard ray-casting point-in-polygon test over a closed
// ring (first == last).
func pointInRing(p geomath.Position, ring []geomath.Position) bool {
	if len(ring) < 4 {
		return false
	}
	inside := false
	n := len(ring) - 1
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := ring[i], ring[j]
		if (pi.Lat > p.Lat) != (pj.Lat > p.Lat) {
			lonAtLat := pi.Lon + (p.Lat-pi.Lat)*(pj.Lon-pi.Lon)/(pj.Lat-pi.Lat)
			if p.Lon < lonAtLat {
				inside = !inside
			}
		}
	}
	return inside
}
