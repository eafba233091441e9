package streetname

import "regexp"

// The extractor's regex battery. Go's regexp package is stateless across
// calls (no persistent "lastIndex" the way JS's /g flag has), so unlike the
// original implementation this extractor needs no explicit state reset
// between probes — each FindAllStringSubmatch call starts fresh.
var (
	alongToFromRe = regexp.MustCompile(`(?i)\balong\s+([A-Z][A-Za-z0-9.\- ]*?)\s+(?:to|from)\b`)
	onStreetRe    = regexp.MustCompile(`(?i)\bon\s+([A-Z][A-Za-z0-9.\- ]*?)(?:\s+(?:to|from|thence)\b|[,;.]|$)`)
	dirOnStreetRe = regexp.MustCompile(`(?i)\b(?:northerly|southerly|easterly|westerly|north|south|east|west|ne|nw|se|sw)\s+on\s+([A-Z][A-Za-z0-9.\- ]*?)(?:[,;.]|$)`)
	intersectOfRe = regexp.MustCompile(`(?i)\bintersection\s+of\s+([A-Z][A-Za-z0-9.\- ]+?)\s+and\s+([A-Z][A-Za-z0-9.\- ]+?)(?:[,;.]|$)`)
	genericNameRe = regexp.MustCompile(`\b([A-Z][a-zA-Z]*(?:\s+[A-Z][a-zA-Z]*)*\s+(?:Street|Avenue|Boulevard|Drive|Lane|Road|Court|Place|Way|Circle|Trail|Parkway|Terrace|Highway|Loop|Crescent|Square|Heights|Crossing))\b`)
)

// ExtractCandidates lifts candidate street-name strings out of free text,
// returning a deduplicated, order-preserving list in the precedence order
// the patterns are probed: along-to/from, on, directional-on,
// intersection-of, then the generic capitalized-words-plus-type form.
func ExtractCandidates(text string) []string {
	seen := make(map[string]bool)
	var out []string

	add := func(raw string) {
		name := cleanCandidate(raw)
		if name == "" {
			return
		}
		key := Normalize(name).Normalized
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		out = append(out, name)
	}

	for _, m := range alongToFromRe.FindAllStringSubmatch(text, -1) {
		add(m[1])
	}
	for _, m := range onStreetRe.FindAllStringSubmatch(text, -1) {
		add(m[1])
	}
	for _, m := range dirOnStreetRe.FindAllStringSubmatch(text, -1) {
		add(m[1])
	}
	for _, m := range intersectOfRe.FindAllStringSubmatch(text, -1) {
		add(m[1])
		add(m[2])
	}
	for _, m := range genericNameRe.FindAllStringSubmatch(text, -1) {
		add(m[1])
	}

	return out
}

func cleanCandidate(raw string) string {
	runes := []rune(raw)
	start, end := 0, len(runes)
	for start < end && runes[start] == ' ' {
		start++
	}
	for end > start && runes[end-1] == ' ' {
		end--
	}
	return string(runes[start:end])
}
