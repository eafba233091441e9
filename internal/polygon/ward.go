package polygon

import "github.com/wardrecon/boundary-engine/internal/geomath"

// WardPolygonResult tags a BuildResult with the ward/city identifiers the
// spec requires on every emitted polygon Feature's properties.
type WardPolygonResult struct {
	BuildResult
	WardID   string
	WardName string
	CityFIPS string
	CityName string
	State    string
}

// BuildWardPolygon runs BuildPolygonFromMatches and attaches ward/city
// identifying properties to the result.
func BuildWardPolygon(wardID, wardName, cityFIPS, cityName, state string, matchedCoords [][]geomath.Position, cfg BuilderConfig) WardPolygonResult {
	return WardPolygonResult{
		BuildResult: BuildPolygonFromMatches(matchedCoords, cfg),
		WardID:      wardID,
		WardName:    wardName,
		CityFIPS:    cityFIPS,
		CityName:    cityName,
		State:       state,
	}
}

// CombineResult aggregates per-ward builds into one city-level summary.
type CombineResult struct {
	Succeeded []WardPolygonResult
	Failed    []WardPolygonResult
}

// SuccessCount and FailureCount report aggregate counts for diagnostics.
func (c CombineResult) SuccessCount() int { return len(c.Succeeded) }
func (c CombineResult) FailureCount() int { return len(c.Failed) }

// CombineWardPolygons partitions a set of per-ward builds into succeeded
// and failed groups, ready for FeatureCollection assembly by
// internal/geojson.
func CombineWardPolygons(results []WardPolygonResult) CombineResult {
	var out CombineResult
	for _, r := range results {
		if r.Success {
			out.Succeeded = append(out.Succeeded, r)
		} else {
			out.Failed = append(out.Failed, r)
		}
	}
	return out
}
