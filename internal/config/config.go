package config

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Normalizer    NormalizerConfig    `yaml:"normalizer" mapstructure:"normalizer"`
	Matcher       MatcherConfig       `yaml:"matcher" mapstructure:"matcher"`
	PolygonBuilder PolygonBuilderConfig `yaml:"polygon_builder" mapstructure:"polygon_builder"`
	GoldenVector  GoldenVectorConfig  `yaml:"golden_vector" mapstructure:"golden_vector"`
	StreetNetwork StreetNetworkConfig `yaml:"street_network" mapstructure:"street_network"`
	Server        ServerConfig        `yaml:"server" mapstructure:"server"`
	Log           LogConfig           `yaml:"log" mapstructure:"log"`
}

// NormalizerConfig holds the street-name equivalence threshold. It is loaded
// and range-checked, but no adapter passes it to internal/streetname, whose
// lookups use streetname.DefaultEquivalenceThreshold.
type NormalizerConfig struct {
	EquivalenceThreshold float64 `yaml:"equivalence_threshold" mapstructure:"equivalence_threshold"`
}

// MatcherConfig tunes internal/matcher.
type MatcherConfig struct {
	MinNameSimilarity           float64 `yaml:"min_name_similarity" mapstructure:"min_name_similarity"`
	MaxSnapDistanceM            float64 `yaml:"max_snap_distance_m" mapstructure:"max_snap_distance_m"`
	PreferDirectionalContinuity bool    `yaml:"prefer_directional_continuity" mapstructure:"prefer_directional_continuity"`
	MaxSegmentGapM              float64 `yaml:"max_segment_gap_m" mapstructure:"max_segment_gap_m"`
}

// PolygonBuilderConfig tunes internal/polygon.
type PolygonBuilderConfig struct {
	MaxAutoFillGapM         float64 `yaml:"max_auto_fill_gap_m" mapstructure:"max_auto_fill_gap_m"`
	MinRingAreaM2           float64 `yaml:"min_ring_area_m2" mapstructure:"min_ring_area_m2"`
	SimplifyToleranceM      float64 `yaml:"simplify_tolerance_m" mapstructure:"simplify_tolerance_m"`
	EnforceWindingOrder     bool    `yaml:"enforce_winding_order" mapstructure:"enforce_winding_order"`
	RemoveSelfIntersections bool    `yaml:"remove_self_intersections" mapstructure:"remove_self_intersections"`
}

// GoldenVectorConfig tunes internal/golden.
type GoldenVectorConfig struct {
	MaxHausdorffDistanceM  float64 `yaml:"max_hausdorff_distance_m" mapstructure:"max_hausdorff_distance_m"`
	MaxAreaDifferenceRatio float64 `yaml:"max_area_difference_ratio" mapstructure:"max_area_difference_ratio"`
	MaxCentroidDistanceM   float64 `yaml:"max_centroid_distance_m" mapstructure:"max_centroid_distance_m"`
	MinOverlapRatio        float64 `yaml:"min_overlap_ratio" mapstructure:"min_overlap_ratio"`
	FailFast               bool    `yaml:"fail_fast" mapstructure:"fail_fast"`
	RequireVerified        bool    `yaml:"require_verified" mapstructure:"require_verified"`
}

// StreetNetworkConfig configures how the street network index is built and
// (optionally) loaded from a TIGER/Line shapefile.
type StreetNetworkConfig struct {
	ShapefilePath string  `yaml:"shapefile_path" mapstructure:"shapefile_path"`
	CityFIPS      string  `yaml:"city_fips" mapstructure:"city_fips"`
	CellSizeDeg   float64 `yaml:"cell_size_deg" mapstructure:"cell_size_deg"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Validate checks required configuration fields based on run mode.
// Supported modes: "reconstruct", "validate", "serve".
func (c *Config) Validate(mode string) error {
	var errs []string

	switch mode {
	case "reconstruct":
		if c.StreetNetwork.ShapefilePath == "" {
			errs = append(errs, "street_network.shapefile_path is required")
		}
	case "validate":
		// no mode-specific required fields beyond common validations
	case "serve":
		if c.Server.Port <= 0 {
			errs = append(errs, "server.port must be > 0")
		}
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	if c.Normalizer.EquivalenceThreshold < 0 || c.Normalizer.EquivalenceThreshold > 1 {
		errs = append(errs, "normalizer.equivalence_threshold must be between 0.0 and 1.0")
	}
	if c.Matcher.MinNameSimilarity < 0 || c.Matcher.MinNameSimilarity > 1 {
		errs = append(errs, "matcher.min_name_similarity must be between 0.0 and 1.0")
	}
	if c.GoldenVector.MinOverlapRatio < 0 || c.GoldenVector.MinOverlapRatio > 1 {
		errs = append(errs, "golden_vector.min_overlap_ratio must be between 0.0 and 1.0")
	}
	if c.GoldenVector.MaxAreaDifferenceRatio < 0 {
		errs = append(errs, "golden_vector.max_area_difference_ratio must be >= 0")
	}

	if len(errs) > 0 {
		return eris.New(fmt.Sprintf("config: validation failed: %s", strings.Join(errs, "; ")))
	}
	return nil
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("WARDRECON")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("normalizer.equivalence_threshold", 0.85)
	v.SetDefault("matcher.min_name_similarity", 0.75)
	v.SetDefault("matcher.max_snap_distance_m", 100.0)
	v.SetDefault("matcher.prefer_directional_continuity", true)
	v.SetDefault("matcher.max_segment_gap_m", 200.0)
	v.SetDefault("polygon_builder.max_auto_fill_gap_m", 200.0)
	v.SetDefault("polygon_builder.min_ring_area_m2", 1000.0)
	v.SetDefault("polygon_builder.simplify_tolerance_m", 0.0)
	v.SetDefault("polygon_builder.enforce_winding_order", true)
	v.SetDefault("polygon_builder.remove_self_intersections", true)
	v.SetDefault("golden_vector.max_hausdorff_distance_m", 50.0)
	v.SetDefault("golden_vector.max_area_difference_ratio", 0.05)
	v.SetDefault("golden_vector.max_centroid_distance_m", 100.0)
	v.SetDefault("golden_vector.min_overlap_ratio", 0.90)
	v.SetDefault("golden_vector.fail_fast", false)
	v.SetDefault("golden_vector.require_verified", false)
	v.SetDefault("street_network.cell_size_deg", 0.005)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
