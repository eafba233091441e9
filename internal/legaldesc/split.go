package legaldesc

import (
	"regexp"
	"strings"
)

var (
	thenceRe       = regexp.MustCompile(`(?i)\bthence\b`)
	numberedListRe = regexp.MustCompile(`(?m)(?:^|\s)(?:\d+[.)\]]|\([a-z]\)|\(\d+\))\s*`)
	andThenRe      = regexp.MustCompile(`(?i)\b(?:and\s+)?then\b`)
	commaDirRe     = regexp.MustCompile(`(?i),\s*((?:north|south|east|west|ne|nw|se|sw|northerly|southerly|easterly|westerly|along|following|to\s+the)\b)`)
	splitMarkRe    = regexp.MustCompile(`\x00`)
	startingPointRe = regexp.MustCompile(`(?i)^(?:ward\s+\d+:\s*)?beginning\s+at\s+(?:the\s+)?intersection`)
)

// splitSegments applies the first splitting rule (in spec.md §4.2 order)
// that yields at least two segments, falling back to treating the whole
// text as one segment.
func splitSegments(text string) []string {
	if parts := splitAndTrim(thenceRe, text); len(parts) >= 2 {
		return parts
	}
	if parts := splitAndTrim(regexp.MustCompile(`;`), text); len(parts) >= 2 {
		return parts
	}
	if parts := splitNumbered(text); len(parts) >= 2 {
		return parts
	}
	if parts := splitAndTrim(andThenRe, text); len(parts) >= 2 {
		return parts
	}
	// RE2 has no lookahead, so each comma+direction boundary is marked
	// (keeping the direction word) and the text is split on the mark.
	if parts := splitAndTrim(splitMarkRe, commaDirRe.ReplaceAllString(text, "\x00${1}")); len(parts) >= 2 {
		return parts
	}
	return []string{strings.TrimSpace(text)}
}

func splitAndTrim(re *regexp.Regexp, text string) []string {
	raw := re.Split(text, -1)
	var out []string
	for _, r := range raw {
		r = strings.TrimSpace(r)
		r = strings.Trim(r, ".,;")
		r = strings.TrimSpace(r)
		if r != "" {
			out = append(out, r)
		}
	}
	return out
}

func splitNumbered(text string) []string {
	locs := numberedListRe.FindAllStringIndex(text, -1)
	if len(locs) < 2 {
		return nil
	}
	var out []string
	for i, loc := range locs {
		start := loc[1]
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		seg := strings.TrimSpace(text[start:end])
		seg = strings.Trim(seg, ".,;")
		seg = strings.TrimSpace(seg)
		if seg != "" {
			out = append(out, seg)
		}
	}
	return out
}

// applyStartingPointMarker prefixes the first of >=2 segments with the
// literal STARTING_POINT: marker when it opens with a "Beginning at the
// intersection" phrase, preserved verbatim through classification.
func applyStartingPointMarker(segments []string) []string {
	if len(segments) < 2 {
		return segments
	}
	if startingPointRe.MatchString(segments[0]) {
		out := make([]string, len(segments))
		copy(out, segments)
		out[0] = "STARTING_POINT:" + out[0]
		return out
	}
	return segments
}
