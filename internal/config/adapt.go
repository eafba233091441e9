package config

import (
	"github.com/wardrecon/boundary-engine/internal/golden"
	"github.com/wardrecon/boundary-engine/internal/matcher"
	"github.com/wardrecon/boundary-engine/internal/polygon"
)

// ToMatcherConfig adapts the loaded configuration into the matcher
// package's own config type.
func (c *Config) ToMatcherConfig() matcher.MatcherConfig {
	return matcher.MatcherConfig{
		MinNameSimilarity:           c.Matcher.MinNameSimilarity,
		MaxSnapDistanceM:            c.Matcher.MaxSnapDistanceM,
		PreferDirectionalContinuity: c.Matcher.PreferDirectionalContinuity,
		MaxSegmentGapM:              c.Matcher.MaxSegmentGapM,
	}
}

// ToBuilderConfig adapts the loaded configuration into the polygon
// package's own config type.
func (c *Config) ToBuilderConfig() polygon.BuilderConfig {
	return polygon.BuilderConfig{
		MaxAutoFillGapM:         c.PolygonBuilder.MaxAutoFillGapM,
		MinRingAreaM2:           c.PolygonBuilder.MinRingAreaM2,
		SimplifyToleranceM:      c.PolygonBuilder.SimplifyToleranceM,
		EnforceWindingOrder:     c.PolygonBuilder.EnforceWindingOrder,
		RemoveSelfIntersections: c.PolygonBuilder.RemoveSelfIntersections,
	}
}

// ToGoldenVectorConfig adapts the loaded configuration into the golden
// package's own config type.
func (c *Config) ToGoldenVectorConfig() golden.GoldenVectorConfig {
	return golden.GoldenVectorConfig{
		MaxHausdorffDistanceM:  c.GoldenVector.MaxHausdorffDistanceM,
		MaxAreaDifferenceRatio: c.GoldenVector.MaxAreaDifferenceRatio,
		MaxCentroidDistanceM:   c.GoldenVector.MaxCentroidDistanceM,
		MinOverlapRatio:        c.GoldenVector.MinOverlapRatio,
		FailFast:               c.GoldenVector.FailFast,
		RequireVerified:        c.GoldenVector.RequireVerified,
	}
}
