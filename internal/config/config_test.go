package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.InDelta(t, 0.85, cfg.Normalizer.EquivalenceThreshold, 0.001)
	assert.InDelta(t, 0.75, cfg.Matcher.MinNameSimilarity, 0.001)
	assert.InDelta(t, 100.0, cfg.Matcher.MaxSnapDistanceM, 0.001)
	assert.True(t, cfg.Matcher.PreferDirectionalContinuity)
	assert.InDelta(t, 200.0, cfg.PolygonBuilder.MaxAutoFillGapM, 0.001)
	assert.InDelta(t, 1000.0, cfg.PolygonBuilder.MinRingAreaM2, 0.001)
	assert.True(t, cfg.PolygonBuilder.EnforceWindingOrder)
	assert.InDelta(t, 50.0, cfg.GoldenVector.MaxHausdorffDistanceM, 0.001)
	assert.InDelta(t, 0.90, cfg.GoldenVector.MinOverlapRatio, 0.001)
	assert.False(t, cfg.GoldenVector.RequireVerified)
	assert.InDelta(t, 0.005, cfg.StreetNetwork.CellSizeDeg, 0.0001)
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	yaml := `
log:
  level: debug
  format: console
server:
  port: 9090
matcher:
  min_name_similarity: 0.9
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.InDelta(t, 0.9, cfg.Matcher.MinNameSimilarity, 0.001)
	// Defaults still apply for unset values
	assert.InDelta(t, 1000.0, cfg.PolygonBuilder.MinRingAreaM2, 0.001)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	yaml := `
log:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	t.Setenv("WARDRECON_LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	t.Setenv("WARDRECON_SERVER_PORT", "3000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Server.Port)
}

func TestInitLoggerConsole(t *testing.T) {
	err := InitLogger(LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerJSON(t *testing.T) {
	err := InitLogger(LogConfig{Level: "info", Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerInvalidLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "invalid", Format: "json"})
	assert.Error(t, err)
}

func validDefaults() *Config {
	cfg := &Config{}
	cfg.Normalizer.EquivalenceThreshold = 0.85
	cfg.Matcher.MinNameSimilarity = 0.75
	cfg.GoldenVector.MinOverlapRatio = 0.90
	cfg.Server.Port = 8080
	cfg.StreetNetwork.ShapefilePath = "/tmp/streets.shp"
	return cfg
}

func TestValidateReconstruct_AllPresent(t *testing.T) {
	cfg := validDefaults()
	assert.NoError(t, cfg.Validate("reconstruct"))
}

func TestValidateReconstruct_MissingShapefile(t *testing.T) {
	cfg := validDefaults()
	cfg.StreetNetwork.ShapefilePath = ""

	err := cfg.Validate("reconstruct")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "street_network.shapefile_path is required")
}

func TestValidateValidate_NoRequiredFields(t *testing.T) {
	cfg := validDefaults()
	cfg.StreetNetwork.ShapefilePath = ""
	assert.NoError(t, cfg.Validate("validate"))
}

func TestValidateServe_ValidPort(t *testing.T) {
	cfg := validDefaults()
	cfg.Server.Port = 9090
	assert.NoError(t, cfg.Validate("serve"))
}

func TestValidateServe_InvalidPort(t *testing.T) {
	cfg := validDefaults()
	cfg.Server.Port = 0

	err := cfg.Validate("serve")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "server.port must be > 0")
}

func TestValidateUnknownMode(t *testing.T) {
	cfg := validDefaults()
	err := cfg.Validate("unknown")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mode")
}

func TestValidateThresholdBounds(t *testing.T) {
	cfg := validDefaults()

	cfg.Normalizer.EquivalenceThreshold = 1.5
	err := cfg.Validate("serve")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "normalizer.equivalence_threshold")

	cfg.Normalizer.EquivalenceThreshold = 0.85
	cfg.GoldenVector.MaxAreaDifferenceRatio = -0.1
	err = cfg.Validate("serve")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "max_area_difference_ratio")
}

func TestToMatcherConfigAdapts(t *testing.T) {
	cfg := validDefaults()
	cfg.Matcher.MaxSnapDistanceM = 123
	mc := cfg.ToMatcherConfig()
	assert.InDelta(t, 123, mc.MaxSnapDistanceM, 0.001)
}

func TestToBuilderConfigAdapts(t *testing.T) {
	cfg := validDefaults()
	cfg.PolygonBuilder.MinRingAreaM2 = 555
	bc := cfg.ToBuilderConfig()
	assert.InDelta(t, 555, bc.MinRingAreaM2, 0.001)
}

func TestToGoldenVectorConfigAdapts(t *testing.T) {
	cfg := validDefaults()
	cfg.GoldenVector.MinOverlapRatio = 0.5
	gc := cfg.ToGoldenVectorConfig()
	assert.InDelta(t, 0.5, gc.MinOverlapRatio, 0.001)
}
