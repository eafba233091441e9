package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wardrecon/boundary-engine/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "wardrecon",
	Short: "Ward boundary reconstruction engine",
	Long:  "Converts natural-language legal descriptions of ward/district boundaries into validated, tessellating GeoJSON polygons, checked against golden vectors.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		mode, _ := cmd.Flags().GetString("mode")
		if mode == "" {
			mode = cmd.Name()
		}
		if mode == "regress" {
			// regress reuses validate's config requirements: no street
			// network is touched, only two prior JSON results.
			mode = "validate"
		}

		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := cfg.Validate(mode); err != nil {
			return fmt.Errorf("validate config: %w", err)
		}

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().String("mode", "", "config validation mode override (reconstruct, validate, serve)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
