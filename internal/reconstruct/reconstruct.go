// Package reconstruct wires the parser's output through the matcher and
// polygon builder (spec.md's data flow: Parser → Matcher → Builder →
// Polygon) and, at the city level, fans the per-ward work out across
// goroutines since each ward's reconstruction is a pure function of its own
// legal description plus a read-only street network (spec.md §5).
package reconstruct

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/wardrecon/boundary-engine/internal/geomath"
	"github.com/wardrecon/boundary-engine/internal/legaldesc"
	"github.com/wardrecon/boundary-engine/internal/matcher"
	"github.com/wardrecon/boundary-engine/internal/polygon"
	"github.com/wardrecon/boundary-engine/internal/streetnet"
)

// ReconstructResult is one ward's full pipeline output: the matcher's
// per-segment diagnostics plus the builder's validated (or failed) ring.
type ReconstructResult struct {
	WardID  string
	Match   matcher.WardMatchResult
	Polygon polygon.WardPolygonResult
	Success bool
}

// ReconstructWard runs one ward's legal description through the matcher and
// polygon builder. A ward with any failed segment is not passed to the
// builder: its matcher diagnostics are returned as-is with Success false.
func ReconstructWard(ward legaldesc.WardLegalDescription, q streetnet.Query, mcfg matcher.MatcherConfig, bcfg polygon.BuilderConfig) (ReconstructResult, error) {
	matchResult := matcher.MatchWardDescription(ward, q, mcfg)

	result := ReconstructResult{
		WardID: ward.WardID,
		Match:  matchResult,
	}

	if len(matchResult.FailedSegments) > 0 {
		return result, nil
	}

	coords := make([][]geomath.Position, 0, len(matchResult.SegmentResults))
	for _, seg := range matchResult.SegmentResults {
		if len(seg.Coordinates) > 0 {
			coords = append(coords, seg.Coordinates)
		}
	}

	result.Polygon = polygon.BuildWardPolygon(ward.WardID, ward.WardName, ward.CityFIPS, ward.CityName, ward.State, coords, bcfg)
	result.Success = result.Polygon.Success
	return result, nil
}

// ReconstructCity runs ReconstructWard over every ward in a city, fanning
// out across goroutines bounded by GOMAXPROCS since the shared Query is
// read-only after construction. Results preserve the input ward order.
func ReconstructCity(ctx context.Context, wards []legaldesc.WardLegalDescription, q streetnet.Query, mcfg matcher.MatcherConfig, bcfg polygon.BuilderConfig) ([]ReconstructResult, error) {
	results := make([]ReconstructResult, len(wards))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, ward := range wards {
		i, ward := i, ward
		g.Go(func() error {
			select {
			case <-gCtx.Done():
				return gCtx.Err()
			default:
			}
			r, err := ReconstructWard(ward, q, mcfg, bcfg)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
