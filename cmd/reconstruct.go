package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wardrecon/boundary-engine/internal/geojson"
	"github.com/wardrecon/boundary-engine/internal/geomath"
	"github.com/wardrecon/boundary-engine/internal/legaldesc"
	"github.com/wardrecon/boundary-engine/internal/reconstruct"
	"github.com/wardrecon/boundary-engine/internal/streetnet"
	"github.com/wardrecon/boundary-engine/internal/streetnet/shpload"
)

var (
	reconstructLegalDescFile string
	reconstructStreetNetFile string
	reconstructOutFile       string
)

var reconstructCmd = &cobra.Command{
	Use:   "reconstruct",
	Short: "Reconstruct ward boundary polygons from legal descriptions",
	RunE:  runReconstruct,
}

func init() {
	reconstructCmd.Flags().StringVar(&reconstructLegalDescFile, "legal-description", "", "path to a JSON array of ward legal descriptions")
	reconstructCmd.Flags().StringVar(&reconstructStreetNetFile, "street-network", "", "path to a TIGER/Line street shapefile")
	reconstructCmd.Flags().StringVar(&reconstructOutFile, "out", "", "path to write the reconstructed FeatureCollection")
	_ = reconstructCmd.MarkFlagRequired("legal-description")
	_ = reconstructCmd.MarkFlagRequired("street-network")
	_ = reconstructCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(reconstructCmd)
}

func runReconstruct(cmd *cobra.Command, args []string) error {
	wards, err := loadLegalDescriptions(reconstructLegalDescFile)
	if err != nil {
		return err
	}

	providerSegments, err := shpload.Load(reconstructStreetNetFile, cfg.StreetNetwork.CityFIPS)
	if err != nil {
		return fmt.Errorf("load street network: %w", err)
	}

	net, err := streetnet.FromProviderWithCellSize(providerSegments, cfg.StreetNetwork.CellSizeDeg)
	if err != nil {
		return fmt.Errorf("index street network: %w", err)
	}

	results, err := reconstruct.ReconstructCity(context.Background(), wards, net, cfg.ToMatcherConfig(), cfg.ToBuilderConfig())
	if err != nil {
		return fmt.Errorf("reconstruct city: %w", err)
	}

	return writeReconstructionOutput(results, reconstructOutFile)
}

func loadLegalDescriptions(path string) ([]legaldesc.WardLegalDescription, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "read legal description file")
	}
	var wards []legaldesc.WardLegalDescription
	if err := json.Unmarshal(data, &wards); err != nil {
		return nil, eris.Wrap(err, "unmarshal legal description file")
	}
	return wards, nil
}

// writeReconstructionOutput encodes every ward that built successfully into
// a FeatureCollection and writes it to outPath. Wards that failed are logged
// with their failure reason but do not abort the run: a partial city output
// is still useful for the remaining wards.
func writeReconstructionOutput(results []reconstruct.ReconstructResult, outPath string) error {
	var rings [][]geomath.Position
	var props []geojson.WardProperties

	for _, r := range results {
		if !r.Success {
			zap.L().Warn("ward reconstruction failed",
				zap.String("ward_id", r.WardID),
				zap.String("failure_reason", r.Polygon.FailureReason))
			continue
		}
		rings = append(rings, r.Polygon.Ring)
		props = append(props, geojson.WardProperties{
			WardID:   r.Polygon.WardID,
			WardName: r.Polygon.WardName,
			CityFIPS: r.Polygon.CityFIPS,
			CityName: r.Polygon.CityName,
			State:    r.Polygon.State,
		})
	}

	if len(rings) == 0 {
		return eris.New("reconstruct: no ward produced a valid polygon")
	}

	fc, err := geojson.EncodeWardFeatureCollection(rings, props)
	if err != nil {
		return fmt.Errorf("encode feature collection: %w", err)
	}

	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal feature collection: %w", err)
	}

	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}

	zap.L().Info("reconstruction complete",
		zap.Int("wards_succeeded", len(rings)),
		zap.Int("wards_total", len(results)))
	return nil
}
