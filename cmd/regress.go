package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wardrecon/boundary-engine/internal/golden"
)

var (
	regressPreviousFile string
	regressCurrentFile  string
)

var regressCmd = &cobra.Command{
	Use:   "regress",
	Short: "Compare two validation results and report regressions",
	RunE:  runRegress,
}

func init() {
	regressCmd.Flags().StringVar(&regressPreviousFile, "previous", "", "path to a prior CityValidationResult JSON file")
	regressCmd.Flags().StringVar(&regressCurrentFile, "current", "", "path to the current CityValidationResult JSON file")
	_ = regressCmd.MarkFlagRequired("previous")
	_ = regressCmd.MarkFlagRequired("current")
	rootCmd.AddCommand(regressCmd)
}

func runRegress(cmd *cobra.Command, args []string) error {
	previous, err := loadCityValidationResult(regressPreviousFile)
	if err != nil {
		return fmt.Errorf("load previous result: %w", err)
	}

	current, err := loadCityValidationResult(regressCurrentFile)
	if err != nil {
		return fmt.Errorf("load current result: %w", err)
	}

	reports := golden.DetectRegressions(previous, current)

	data, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal regression reports: %w", err)
	}
	fmt.Println(string(data))

	regressions := 0
	for _, r := range reports {
		if strings.HasSuffix(r.Kind, "_regression") {
			regressions++
		}
	}

	zap.L().Info("regression check complete", zap.Int("regressions_found", regressions))

	if regressions > 0 {
		return eris.New("regress: regressions detected between previous and current validation results")
	}
	return nil
}

func loadCityValidationResult(path string) (golden.CityValidationResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return golden.CityValidationResult{}, eris.Wrap(err, "read city validation result file")
	}
	var result golden.CityValidationResult
	if err := json.Unmarshal(data, &result); err != nil {
		return golden.CityValidationResult{}, eris.Wrap(err, "unmarshal city validation result")
	}
	return result, nil
}
