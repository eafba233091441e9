package golden

import "fmt"

const (
	ioUDropRegressionThreshold        = 0.05
	hausdorffIncreaseRegressionFactor = 1.5
)

// DetectRegressions compares a previous and current CityValidationResult
// (spec.md §4.6): overall pass->fail and fail->pass transitions, plus
// per-ward transitions and two metric-only regression rules that fire even
// when a ward is still passing.
func DetectRegressions(previous, current CityValidationResult) []RegressionReport {
	var reports []RegressionReport

	switch {
	case previous.Passed && !current.Passed:
		reports = append(reports, RegressionReport{
			Kind:   "overall_regression",
			Detail: "city validation regressed from passing to failing",
		})
	case !previous.Passed && current.Passed:
		reports = append(reports, RegressionReport{
			Kind:   "overall_improvement",
			Detail: "city validation improved from failing to passing",
		})
	}

	prevByWard := make(map[string]WardValidationResult, len(previous.Wards))
	for _, w := range previous.Wards {
		prevByWard[w.WardID] = w
	}

	for _, curr := range current.Wards {
		prev, ok := prevByWard[curr.WardID]
		if !ok {
			continue
		}

		switch {
		case prev.Passed && !curr.Passed:
			reports = append(reports, RegressionReport{
				WardID: curr.WardID,
				Kind:   "ward_regression",
				Detail: fmt.Sprintf("ward %s regressed from passing to failing", curr.WardID),
			})
		case !prev.Passed && curr.Passed:
			reports = append(reports, RegressionReport{
				WardID: curr.WardID,
				Kind:   "ward_improvement",
				Detail: fmt.Sprintf("ward %s improved from failing to passing", curr.WardID),
			})
		}

		if prev.IoU-curr.IoU > ioUDropRegressionThreshold {
			reports = append(reports, RegressionReport{
				WardID: curr.WardID,
				Kind:   "metric_regression",
				Detail: fmt.Sprintf("IoU degraded from %.1f%% to %.1f%%", prev.IoU*100, curr.IoU*100),
			})
		}

		if prev.HausdorffDistanceM > 0 && curr.HausdorffDistanceM > prev.HausdorffDistanceM*hausdorffIncreaseRegressionFactor {
			reports = append(reports, RegressionReport{
				WardID: curr.WardID,
				Kind:   "metric_regression",
				Detail: fmt.Sprintf("hausdorff distance increased from %.1fm to %.1fm", prev.HausdorffDistanceM, curr.HausdorffDistanceM),
			})
		}
	}

	return reports
}
