package matcher

import (
	"github.com/wardrecon/boundary-engine/internal/geomath"
)

const chainTailSnapM = 10

// mergeChainCoordinates implements §4.4.5: orient the first segment toward
// the reference point, then orient and splice each subsequent segment onto
// the growing chain tail, dropping a duplicate vertex when the join is
// tight.
func mergeChainCoordinates(chain []candidateScore, refPoint *geomath.Position) []geomath.Position {
	if len(chain) == 0 {
		return nil
	}

	first := append([]geomath.Position(nil), chain[0].geometry...)
	if refPoint != nil {
		if geomath.Haversine(*refPoint, first[len(first)-1]) < geomath.Haversine(*refPoint, first[0]) {
			first = reversed(first)
		}
	}

	out := append([]geomath.Position(nil), first...)

	for _, c := range chain[1:] {
		tail := out[len(out)-1]
		geom := c.geometry

		dStart := geomath.Haversine(tail, geom[0])
		dEnd := geomath.Haversine(tail, geom[len(geom)-1])

		oriented := geom
		startDist := dStart
		if dEnd < dStart {
			oriented = reversed(geom)
			startDist = dEnd
		}

		if startDist <= chainTailSnapM {
			out = append(out, oriented[1:]...)
		} else {
			out = append(out, oriented...)
		}
	}

	return out
}

func reversed(p []geomath.Position) []geomath.Position {
	out := make([]geomath.Position, len(p))
	for i, v := range p {
		out[len(p)-1-i] = v
	}
	return out
}
