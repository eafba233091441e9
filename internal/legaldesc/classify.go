package legaldesc

import (
	"regexp"
	"strings"

	"github.com/wardrecon/boundary-engine/internal/streetname"
)

var (
	intersectionPhraseRe = regexp.MustCompile(`(?i)intersection\s+of\s+([A-Za-z0-9.'\- ]+?)\s+and\s+([A-Za-z0-9.'\- ]+?)(?:[,;.]|$)`)
	municipalBoundaryRe  = regexp.MustCompile(`(?i)\b(city\s+limits|municipal\s+boundary|corporate\s+limits)\b`)
	naturalFeatureRe     = regexp.MustCompile(`(?i)\b([A-Z][A-Za-z']*(?:\s+[A-Z][A-Za-z']*)*\s+(River|Creek|Stream|Branch|Bayou|Run|Brook))\b`)
	railroadRe           = regexp.MustCompile(`(?i)\b([A-Z][A-Za-z&' ]*?\s+)?(Railroad|Railway|Rail\s+Line|Tracks?)\b`)
	highwayRe            = regexp.MustCompile(`(?i)\b(I-\d+|US-\d+|Interstate\s+\d+|State\s+Route\s+\d+)\b`)
	alongOnFollowingRe   = regexp.MustCompile(`(?i)\b(?:along|on|following)\s+([A-Z][A-Za-z0-9.'\- ]*?)(?:\s+to\b.*|[,;.]|$)`)
	fromClauseRe         = regexp.MustCompile(`(?i)\bfrom\s+([A-Za-z0-9.,'\- ]+?)\s+to\b`)
	toClauseRe           = regexp.MustCompile(`(?i)\bto\s+(?:the\s+)?([A-Za-z0-9.,'\- ]+?)(?:[,;.]|$)`)
)

// classifyResult is the output of dispatching a single raw segment through
// the fixed-precedence classifier table (spec.md §4.2).
type classifyResult struct {
	ReferenceType ReferenceType
	FeatureName   string
	Confidence    ParseConfidence
}

// classifySegment applies classifiers 1-8 in precedence order; the first to
// fire wins.
func classifySegment(raw string) classifyResult {
	text := raw
	isStartingPoint := strings.HasPrefix(text, "STARTING_POINT:")
	if isStartingPoint {
		text = strings.TrimPrefix(text, "STARTING_POINT:")
	}

	// 1. STARTING_POINT: prefix with intersection phrase.
	if isStartingPoint {
		if m := intersectionPhraseRe.FindStringSubmatch(text); m != nil {
			s1 := strings.TrimSpace(m[1])
			s2 := strings.TrimSpace(m[2])
			return classifyResult{
				ReferenceType: ReferenceCoordinate,
				FeatureName:   "intersection:" + s1 + ":" + s2,
				Confidence:    ConfidenceHigh,
			}
		}
	}

	// 2. Municipal boundary phrase.
	if municipalBoundaryRe.MatchString(text) {
		return classifyResult{ReferenceType: ReferenceMunicipalBoundary, FeatureName: "city limits", Confidence: ConfidenceHigh}
	}

	// 3. Natural feature.
	if m := naturalFeatureRe.FindStringSubmatch(text); m != nil {
		return classifyResult{ReferenceType: ReferenceNaturalFeature, FeatureName: strings.TrimSpace(m[1]), Confidence: ConfidenceHigh}
	}

	// 4. Railroad.
	if m := railroadRe.FindStringSubmatch(text); m != nil {
		name := strings.TrimSpace(strings.Join(m[1:], " "))
		if name == "" {
			name = strings.TrimSpace(m[0])
		}
		return classifyResult{ReferenceType: ReferenceRailroad, FeatureName: name, Confidence: ConfidenceHigh}
	}

	// 5. Highway designation.
	if m := highwayRe.FindStringSubmatch(text); m != nil {
		return classifyResult{ReferenceType: ReferenceHighway, FeatureName: m[1], Confidence: ConfidenceHigh}
	}

	// 6. along/on/following <X> [to ...].
	if m := alongOnFollowingRe.FindStringSubmatch(text); m != nil {
		name := strings.TrimSpace(m[1])
		if name != "" {
			return classifyResult{ReferenceType: ReferenceStreetCenterline, FeatureName: name, Confidence: ConfidenceHigh}
		}
	}

	// 7. Street candidates via the §4.1 extractor, first candidate.
	if candidates := streetname.ExtractCandidates(text); len(candidates) > 0 {
		return classifyResult{ReferenceType: ReferenceStreetCenterline, FeatureName: candidates[0], Confidence: ConfidenceMedium}
	}

	// 8. Raw text fallback.
	return classifyResult{ReferenceType: ReferenceStreetCenterline, FeatureName: strings.TrimSpace(text), Confidence: ConfidenceLow}
}

// scanFromTo extracts "from <P>" / "to <Q>" clauses from raw segment text.
func scanFromTo(text string) (from, to string) {
	if m := fromClauseRe.FindStringSubmatch(text); m != nil {
		from = strings.TrimSpace(m[1])
	}
	if m := toClauseRe.FindStringSubmatch(text); m != nil {
		to = strings.TrimSpace(m[1])
	}
	return from, to
}
