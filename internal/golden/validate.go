package golden

import (
	"fmt"

	"github.com/rotisserie/eris"

	"github.com/wardrecon/boundary-engine/internal/geomath"
)

// ErrUnverifiedPrecision is returned by ValidateCityAgainstGolden when
// GoldenVectorConfig.RequireVerified is set and the golden vector's
// metadata marks it PrecisionApproximate.
var ErrUnverifiedPrecision = eris.New("golden vector precision_level is approximate and RequireVerified is set")

// ValidateWardAgainstGolden compares one reconstructed ring against its
// golden reference ring and returns the full metric set plus a pass/fail
// verdict (spec.md §4.6).
func ValidateWardAgainstGolden(actual, expected []geomath.Position, wardID string, cfg GoldenVectorConfig) WardValidationResult {
	result := WardValidationResult{
		WardID:              wardID,
		HausdorffDistanceM:  hausdorffDistanceM(actual, expected),
		AreaDifferenceRatio: areaDifferenceRatio(actual, expected),
		CentroidDistanceM:   centroidDistanceM(actual, expected),
		IoU:                 intersectionOverUnion(actual, expected),
	}

	if result.HausdorffDistanceM > cfg.MaxHausdorffDistanceM {
		result.FailReasons = append(result.FailReasons, fmt.Sprintf(
			"hausdorff distance %.1fm exceeds max %.1fm", result.HausdorffDistanceM, cfg.MaxHausdorffDistanceM))
		if cfg.FailFast {
			result.Passed = false
			return result
		}
	}
	if result.AreaDifferenceRatio > cfg.MaxAreaDifferenceRatio {
		result.FailReasons = append(result.FailReasons, fmt.Sprintf(
			"area difference ratio %.3f exceeds max %.3f", result.AreaDifferenceRatio, cfg.MaxAreaDifferenceRatio))
		if cfg.FailFast {
			result.Passed = false
			return result
		}
	}
	if result.CentroidDistanceM > cfg.MaxCentroidDistanceM {
		result.FailReasons = append(result.FailReasons, fmt.Sprintf(
			"centroid distance %.1fm exceeds max %.1fm", result.CentroidDistanceM, cfg.MaxCentroidDistanceM))
		if cfg.FailFast {
			result.Passed = false
			return result
		}
	}
	if result.IoU < cfg.MinOverlapRatio {
		result.FailReasons = append(result.FailReasons, fmt.Sprintf(
			"IoU %.3f below min overlap ratio %.3f", result.IoU, cfg.MinOverlapRatio))
		if cfg.FailFast {
			result.Passed = false
			return result
		}
	}

	result.Passed = len(result.FailReasons) == 0
	return result
}

// ValidateCityAgainstGolden takes a ward_id -> actual ring map built by the
// caller from the reconstruction output and runs the per-ward validator
// against every expected polygon in the golden vector.
func ValidateCityAgainstGolden(actualByWardID map[string][]geomath.Position, gv GoldenVector, cfg GoldenVectorConfig) (CityValidationResult, error) {
	if cfg.RequireVerified && gv.Metadata.PrecisionLevel == PrecisionApproximate {
		return CityValidationResult{}, ErrUnverifiedPrecision
	}

	summary := CityValidationResult{
		CityFIPS: gv.CityFIPS,
		Total:    len(gv.ExpectedPolygons),
	}

	var ioUSum, hausdorffMax float64
	for _, expected := range gv.ExpectedPolygons {
		actual, ok := actualByWardID[expected.WardID]
		if !ok {
			summary.Wards = append(summary.Wards, WardValidationResult{
				WardID:      expected.WardID,
				Passed:      false,
				FailReasons: []string{fmt.Sprintf("ward %s not found", expected.WardID)},
			})
			if cfg.FailFast {
				break
			}
			continue
		}

		wardResult := ValidateWardAgainstGolden(actual, expected.Ring, expected.WardID, cfg)
		summary.Wards = append(summary.Wards, wardResult)
		if wardResult.Passed {
			summary.PassedWards++
		}
		ioUSum += wardResult.IoU
		if wardResult.HausdorffDistanceM > hausdorffMax {
			hausdorffMax = wardResult.HausdorffDistanceM
		}
		if cfg.FailFast && !wardResult.Passed {
			break
		}
	}

	if len(summary.Wards) > 0 {
		summary.AverageIoU = ioUSum / float64(len(summary.Wards))
	}
	summary.MaxHausdorff = hausdorffMax
	summary.Passed = summary.PassedWards == summary.Total

	return summary, nil
}
