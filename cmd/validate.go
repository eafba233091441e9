package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wardrecon/boundary-engine/internal/geojson"
	"github.com/wardrecon/boundary-engine/internal/geomath"
	"github.com/wardrecon/boundary-engine/internal/golden"
)

var (
	validateGoldenFile       string
	validateReconstructedFile string
	validateOutFile          string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a reconstructed city against a golden vector",
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateGoldenFile, "golden", "", "path to the golden-vector JSON document")
	validateCmd.Flags().StringVar(&validateReconstructedFile, "reconstructed", "", "path to the reconstructed FeatureCollection")
	validateCmd.Flags().StringVar(&validateOutFile, "out", "", "optional path to write the validation result JSON (default: stdout)")
	_ = validateCmd.MarkFlagRequired("golden")
	_ = validateCmd.MarkFlagRequired("reconstructed")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	goldenData, err := os.ReadFile(validateGoldenFile)
	if err != nil {
		return eris.Wrap(err, "read golden vector file")
	}
	gv, _, err := golden.LoadGoldenVector(goldenData)
	if err != nil {
		return fmt.Errorf("load golden vector: %w", err)
	}

	reconstructedData, err := os.ReadFile(validateReconstructedFile)
	if err != nil {
		return eris.Wrap(err, "read reconstructed file")
	}
	rings, props, err := geojson.DecodeFeatureCollection(reconstructedData)
	if err != nil {
		return fmt.Errorf("decode reconstructed feature collection: %w", err)
	}

	byWard := make(map[string][]geomath.Position, len(rings))
	for i, ring := range rings {
		byWard[props[i].WardID] = ring
	}

	result, err := golden.ValidateCityAgainstGolden(byWard, gv, cfg.ToGoldenVectorConfig())
	if err != nil {
		return fmt.Errorf("validate city: %w", err)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal validation result: %w", err)
	}

	if validateOutFile != "" {
		if err := os.WriteFile(validateOutFile, data, 0o644); err != nil {
			return fmt.Errorf("write validation result: %w", err)
		}
	} else {
		fmt.Println(string(data))
	}

	zap.L().Info("validation complete",
		zap.String("city_fips", result.CityFIPS),
		zap.Int("passed_wards", result.PassedWards),
		zap.Int("total_wards", result.Total),
		zap.Bool("passed", result.Passed))

	if !result.Passed {
		return eris.New("validate: city failed golden-vector validation")
	}
	return nil
}
