package matcher

import (
	"math"

	"github.com/wardrecon/boundary-engine/internal/geomath"
	"github.com/wardrecon/boundary-engine/internal/streetname"
	"github.com/wardrecon/boundary-engine/internal/streetnet"
)

// directionWedges gives the center bearing for each cardinal direction, in
// degrees clockwise from north. Cardinal directions (N/S/E/W) get a 90°
// wedge; diagonals (NE/NW/SE/SW) get a tighter 45° wedge, per §4.4.3.
var directionWedges = map[streetname.CardinalDirection]struct {
	center    float64
	halfWidth float64
}{
	streetname.North:     {0, 45},
	streetname.East:      {90, 45},
	streetname.South:     {180, 45},
	streetname.West:      {270, 45},
	streetname.Northeast: {45, 22.5},
	streetname.Southeast: {135, 22.5},
	streetname.Southwest: {225, 22.5},
	streetname.Northwest: {315, 22.5},
}

// findCandidates implements §4.4.3 step 1: look up by name, falling back to
// a near-point radius search when the name yields nothing and a reference
// point is available.
func findCandidates(q streetnet.Query, featureName string, refPoint *geomath.Position, cfg MatcherConfig) []streetnet.StreetSegment {
	hits := q.FindByName(featureName)
	if len(hits) > 0 {
		return hits
	}
	if refPoint == nil {
		return nil
	}

	near := q.FindNearPoint(*refPoint, 2*cfg.MaxSnapDistanceM)
	query := streetname.Normalize(featureName)
	var filtered []streetnet.StreetSegment
	for _, s := range near {
		if s.BestNameSimilarity(query) >= cfg.MinNameSimilarity {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// scoreCandidates implements §4.4.3 step 2: a weighted score per candidate
// combining name similarity, proximity to the reference point, and
// directional continuity with the requested cardinal direction.
func scoreCandidates(featureName string, candidates []streetnet.StreetSegment, refPoint *geomath.Position, direction streetname.CardinalDirection, cfg MatcherConfig) []candidateScore {
	query := streetname.Normalize(featureName)

	scores := make([]candidateScore, 0, len(candidates))
	for _, c := range candidates {
		nameSim := c.BestNameSimilarity(query)

		distanceScore := 1.0
		closestDist := 0.0
		if refPoint != nil {
			_, d, ok := geomath.ClosestPointOnPolyline(*refPoint, c.Geometry)
			if ok {
				closestDist = d
				distanceScore = math.Max(0, 1-d/cfg.MaxSnapDistanceM)
			}
		}

		directionScore := scoreDirection(c, direction)

		scores = append(scores, candidateScore{
			id:               c.ID,
			name:             c.Name,
			geometry:         c.Geometry,
			nameSim:          nameSim,
			distanceScore:    distanceScore,
			directionScore:   directionScore,
			closestDistanceM: closestDist,
			total:            0.5*nameSim + 0.3*distanceScore + 0.2*directionScore,
		})
	}
	return scores
}

func scoreDirection(seg streetnet.StreetSegment, direction streetname.CardinalDirection) float64 {
	if direction == "" || len(seg.Geometry) < 2 {
		return 1.0
	}
	wedge, ok := directionWedges[direction]
	if !ok {
		return 1.0
	}

	bearing := geomath.Bearing(seg.Geometry[0], seg.Geometry[len(seg.Geometry)-1])
	diff := angularDistance(bearing, wedge.center)
	if diff <= wedge.halfWidth {
		return 1.0
	}
	return 0.5
}

func angularDistance(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// filterByNameSimilarity implements §4.4.3 step 3.
func filterByNameSimilarity(scores []candidateScore, minSim float64) []candidateScore {
	var out []candidateScore
	for _, s := range scores {
		if s.nameSim >= minSim {
			out = append(out, s)
		}
	}
	return out
}
