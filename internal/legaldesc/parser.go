package legaldesc

import (
	"strings"

	"github.com/wardrecon/boundary-engine/internal/streetname"
)

// ParseDiagnostics summarizes confidence-tier counts and warnings for a
// parsed description.
type ParseDiagnostics struct {
	Total   int
	High    int
	Medium  int
	Low     int
	Warnings []string
}

// ParseResult is the total (never-throwing) output of Parse.
type ParseResult struct {
	Success     bool
	Segments    []BoundarySegmentDescription
	Diagnostics ParseDiagnostics
}

// Parse tokenizes a free-form legal description into an ordered list of
// BoundarySegmentDescription values, per spec.md §4.2. It never returns an
// error: even pathological input yields a single low-confidence segment.
func Parse(text string) ParseResult {
	raw := splitSegments(text)
	raw = applyStartingPointMarker(raw)

	segments := make([]BoundarySegmentDescription, 0, len(raw))
	for i, r := range raw {
		cr := classifySegment(r)
		direction, _ := streetname.DetectDirectionPhrase(r)
		from, to := scanFromTo(r)

		segments = append(segments, BoundarySegmentDescription{
			Index:           i,
			ReferenceType:   cr.ReferenceType,
			FeatureName:     cr.FeatureName,
			Direction:       direction,
			From:            from,
			To:              to,
			RawText:         r,
			ParseConfidence: cr.Confidence,
		})
	}

	diag := buildDiagnostics(segments)

	return ParseResult{
		Success:     len(segments) >= 1,
		Segments:    segments,
		Diagnostics: diag,
	}
}

func buildDiagnostics(segments []BoundarySegmentDescription) ParseDiagnostics {
	diag := ParseDiagnostics{Total: len(segments)}
	for _, s := range segments {
		switch s.ParseConfidence {
		case ConfidenceHigh:
			diag.High++
		case ConfidenceMedium:
			diag.Medium++
		case ConfidenceLow:
			diag.Low++
		}
	}

	if len(segments) >= 2 {
		first := streetname.Normalize(segments[0].FeatureName)
		last := segments[len(segments)-1]
		lastNorm := streetname.Normalize(last.FeatureName)
		if streetname.Similarity(first, lastNorm) < 0.85 && last.To == "" {
			diag.Warnings = append(diag.Warnings, "ring may not close: first and last segment feature names do not match and no closing 'to' clause was found")
		}
	}

	if diag.Total > 0 && diag.Low*2 > diag.Total {
		diag.Warnings = append(diag.Warnings, "manual review recommended: more than half of segments are low-confidence")
	}

	return diag
}

// ValidationFlag describes one issue found by ValidateParsedSegments.
type ValidationFlag struct {
	Kind    string
	Detail  string
	Index   int
}

const (
	FlagTooFewSegments     = "too_few_segments"
	FlagConsecutiveDuplicate = "consecutive_duplicate"
	FlagEmptyFeatureName   = "empty_feature_name"
	FlagLowConfidence      = "low_confidence"
)

// ValidateParsedSegments flags structural issues in a parsed segment list:
// fewer than 3 segments, consecutive duplicates by normalized name, empty
// feature names, and low-confidence segments (with a truncated raw-text
// preview for manual triage).
func ValidateParsedSegments(segments []BoundarySegmentDescription) []ValidationFlag {
	var flags []ValidationFlag

	if len(segments) < 3 {
		flags = append(flags, ValidationFlag{Kind: FlagTooFewSegments, Detail: "a closed ring needs at least 3 segments"})
	}

	var prevNorm string
	for i, s := range segments {
		if s.FeatureName == "" {
			flags = append(flags, ValidationFlag{Kind: FlagEmptyFeatureName, Index: i, Detail: "segment has no feature name"})
		}

		norm := streetname.Normalize(s.FeatureName).Normalized
		if i > 0 && norm != "" && norm == prevNorm {
			flags = append(flags, ValidationFlag{Kind: FlagConsecutiveDuplicate, Index: i, Detail: "duplicates previous segment's feature name"})
		}
		prevNorm = norm

		if s.ParseConfidence == ConfidenceLow {
			flags = append(flags, ValidationFlag{Kind: FlagLowConfidence, Index: i, Detail: truncatePreview(s.RawText, 60)})
		}
	}

	return flags
}

func truncatePreview(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
