// Package geomath provides the small set of WGS84 lon/lat primitives shared
// by the matcher, polygon builder, and golden-vector validator: haversine
// distance, signed ring area, centroids, Douglas-Peucker simplification, and
// 2-D parametric line intersection. No projection or CRS handling is done;
// all distances are haversine over a spherical-earth approximation, adequate
// within a municipal bounding box and explicitly not for continental scales.
package geomath

import "math"

// earthRadiusM is the mean radius used by the haversine formula.
const earthRadiusM = 6371000.0

// Position is a WGS84 (lon, lat) coordinate pair.
type Position struct {
	Lon float64
	Lat float64
}

// BBox is an axis-aligned geographic bounding box.
type BBox struct {
	MinLon, MinLat, MaxLon, MaxLat float64
}

// Overlaps reports whether two bounding boxes intersect.
func (b BBox) Overlaps(o BBox) bool {
	return b.MinLon <= o.MaxLon && o.MinLon <= b.MaxLon &&
		b.MinLat <= o.MaxLat && o.MinLat <= b.MaxLat
}

// Contains reports whether p lies within the bounding box (inclusive).
func (b BBox) Contains(p Position) bool {
	return p.Lon >= b.MinLon && p.Lon <= b.MaxLon && p.Lat >= b.MinLat && p.Lat <= b.MaxLat
}

// BBoxOf computes the enclosing bounding box of a point list.
func BBoxOf(points []Position) BBox {
	if len(points) == 0 {
		return BBox{}
	}
	b := BBox{MinLon: points[0].Lon, MaxLon: points[0].Lon, MinLat: points[0].Lat, MaxLat: points[0].Lat}
	for _, p := range points[1:] {
		b.MinLon = math.Min(b.MinLon, p.Lon)
		b.MaxLon = math.Max(b.MaxLon, p.Lon)
		b.MinLat = math.Min(b.MinLat, p.Lat)
		b.MaxLat = math.Max(b.MaxLat, p.Lat)
	}
	return b
}

// Haversine returns the great-circle distance between a and b in meters.
func Haversine(a, b Position) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusM * c
}

// MetersToDegrees converts a meter distance to an approximate degree
// offset using the 111,000 m/degree convention used throughout the spec
// for radius-to-bbox and tolerance conversions.
func MetersToDegrees(m float64) float64 {
	return m / 111000.0
}

// ClosestPointOnSegment returns the closest point on segment a->b to p, and
// the haversine distance from p to that point.
func ClosestPointOnSegment(p, a, b Position) (Position, float64) {
	dx := b.Lon - a.Lon
	dy := b.Lat - a.Lat
	if dx == 0 && dy == 0 {
		return a, Haversine(p, a)
	}
	t := ((p.Lon-a.Lon)*dx + (p.Lat-a.Lat)*dy) / (dx*dx + dy*dy)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	closest := Position{Lon: a.Lon + t*dx, Lat: a.Lat + t*dy}
	return closest, Haversine(p, closest)
}

// ClosestPointOnPolyline returns the closest point on a multi-vertex
// polyline to p, and the haversine distance to it. A one-point line yields
// that point; returns false only if line is empty.
func ClosestPointOnPolyline(p Position, line []Position) (Position, float64, bool) {
	if len(line) < 2 {
		if len(line) == 1 {
			return line[0], Haversine(p, line[0]), true
		}
		return Position{}, 0, false
	}
	best, bestDist := ClosestPointOnSegment(p, line[0], line[1])
	for i := 1; i < len(line)-1; i++ {
		cand, dist := ClosestPointOnSegment(p, line[i], line[i+1])
		if dist < bestDist {
			best, bestDist = cand, dist
		}
	}
	return best, bestDist, true
}

// SignedRingArea computes the signed shoelace area of a ring in degree^2
// units (lon/lat ordering, not closed-twice). Positive means
// counter-clockwise under standard lon(x)/lat(y) axis orientation, matching
// the RFC 7946 exterior-ring convention.
func SignedRingArea(ring []Position) float64 {
	if len(ring) < 3 {
		return 0
	}
	sum := 0.0
	n := len(ring)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += ring[i].Lon*ring[j].Lat - ring[j].Lon*ring[i].Lat
	}
	return sum / 2
}

// MeanLatitude returns the arithmetic mean latitude of a ring's vertices.
func MeanLatitude(ring []Position) float64 {
	if len(ring) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range ring {
		sum += p.Lat
	}
	return sum / float64(len(ring))
}

// AreaM2 approximates the ring's area in square meters using per-polygon
// mean-latitude scaling, acceptable within a municipal bounding box and not
// valid at continental scale.
func AreaM2(ring []Position) float64 {
	signed := SignedRingArea(ring)
	meanLat := MeanLatitude(ring) * math.Pi / 180
	return math.Abs(signed) * 111000 * (111000 * math.Cos(meanLat))
}

// Centroid computes the shoelace centroid of a (possibly unclosed) ring.
// Falls back to the arithmetic mean of vertices for degenerate rings whose
// signed area is ~0 (collinear points).
func Centroid(ring []Position) Position {
	area := SignedRingArea(ring)
	if len(ring) < 3 || math.Abs(area) < 1e-15 {
		var sumLon, sumLat float64
		for _, p := range ring {
			sumLon += p.Lon
			sumLat += p.Lat
		}
		n := float64(len(ring))
		if n == 0 {
			return Position{}
		}
		return Position{Lon: sumLon / n, Lat: sumLat / n}
	}
	n := len(ring)
	var cx, cy float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := ring[i].Lon*ring[j].Lat - ring[j].Lon*ring[i].Lat
		cx += (ring[i].Lon + ring[j].Lon) * cross
		cy += (ring[i].Lat + ring[j].Lat) * cross
	}
	factor := 1 / (6 * area)
	return Position{Lon: cx * factor, Lat: cy * factor}
}

// ReverseRing returns a new ring with vertex order reversed.
func ReverseRing(ring []Position) []Position {
	out := make([]Position, len(ring))
	for i, p := range ring {
		out[len(ring)-1-i] = p
	}
	return out
}

// CloseRing appends the first vertex to the end if the ring is not already
// closed. Idempotent: CloseRing(CloseRing(r)) == CloseRing(r).
func CloseRing(ring []Position) []Position {
	if len(ring) == 0 {
		return ring
	}
	first, last := ring[0], ring[len(ring)-1]
	if first == last {
		out := make([]Position, len(ring))
		copy(out, ring)
		return out
	}
	out := make([]Position, len(ring)+1)
	copy(out, ring)
	out[len(ring)] = first
	return out
}

// LineIntersection solves the parametric 2-D intersection of segments
// p1->p2 and p3->p4. ok is false when the segments are parallel (|denom| <
// 1e-10). t1, t2 are the parametric positions along each segment; the
// caller decides whether they fall within [0,1] (a true crossing) or must
// be clamped (a near-miss / endpoint probe).
func LineIntersection(p1, p2, p3, p4 Position) (t1, t2 float64, point Position, ok bool) {
	d1x, d1y := p2.Lon-p1.Lon, p2.Lat-p1.Lat
	d2x, d2y := p4.Lon-p3.Lon, p4.Lat-p3.Lat

	denom := d1x*d2y - d1y*d2x
	if math.Abs(denom) < 1e-10 {
		return 0, 0, Position{}, false
	}

	t1 = ((p3.Lon-p1.Lon)*d2y - (p3.Lat-p1.Lat)*d2x) / denom
	t2 = ((p3.Lon-p1.Lon)*d1y - (p3.Lat-p1.Lat)*d1x) / denom

	point = Position{Lon: p1.Lon + t1*d1x, Lat: p1.Lat + t1*d1y}
	return t1, t2, point, true
}

// DouglasPeucker simplifies a polyline, keeping points that deviate from
// the chord by more than toleranceDeg (already converted from meters by the
// caller via MetersToDegrees). Endpoints are always kept.
func DouglasPeucker(points []Position, toleranceDeg float64) []Position {
	if len(points) < 3 || toleranceDeg <= 0 {
		return points
	}
	keep := make([]bool, len(points))
	keep[0] = true
	keep[len(points)-1] = true
	douglasPeuckerRange(points, 0, len(points)-1, toleranceDeg, keep)

	out := make([]Position, 0, len(points))
	for i, k := range keep {
		if k {
			out = append(out, points[i])
		}
	}
	return out
}

func douglasPeuckerRange(points []Position, start, end int, tol float64, keep []bool) {
	if end <= start+1 {
		return
	}
	maxDist := -1.0
	maxIdx := -1
	a, b := points[start], points[end]
	for i := start + 1; i < end; i++ {
		_, dist := perpendicularDistanceDeg(points[i], a, b)
		if dist > maxDist {
			maxDist = dist
			maxIdx = i
		}
	}
	if maxDist > tol && maxIdx != -1 {
		keep[maxIdx] = true
		douglasPeuckerRange(points, start, maxIdx, tol, keep)
		douglasPeuckerRange(points, maxIdx, end, tol, keep)
	}
}

// perpendicularDistanceDeg returns the perpendicular distance (in degrees)
// from p to the line through a-b, and the closest point.
func perpendicularDistanceDeg(p, a, b Position) (Position, float64) {
	dx := b.Lon - a.Lon
	dy := b.Lat - a.Lat
	if dx == 0 && dy == 0 {
		return a, math.Hypot(p.Lon-a.Lon, p.Lat-a.Lat)
	}
	t := ((p.Lon-a.Lon)*dx + (p.Lat-a.Lat)*dy) / (dx*dx + dy*dy)
	closest := Position{Lon: a.Lon + t*dx, Lat: a.Lat + t*dy}
	return closest, math.Hypot(p.Lon-closest.Lon, p.Lat-closest.Lat)
}

// Bearing returns the initial compass bearing in degrees [0,360) from a to b.
func Bearing(a, b Position) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)
	theta := math.Atan2(y, x)
	deg := theta*180/math.Pi + 360
	return math.Mod(deg, 360)
}
