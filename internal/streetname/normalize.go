package streetname

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// diacriticFold strips combining marks after NFKD decomposition, so
// "Ñuñoa" and "Nunoa" normalize to the same core name. Applied ahead of
// the rest of the pipeline since every later step assumes plain ASCII
// letters.
var diacriticFold = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func stripDiacritics(s string) string {
	out, _, err := transform.String(diacriticFold, s)
	if err != nil {
		return s
	}
	return out
}

// NormalizedStreetName is the canonical, tokenized form of a street name
// plus the role each extracted qualifier plays, per spec.md §4.1.
type NormalizedStreetName struct {
	Original        string
	Normalized      string
	CoreName        string
	Tokens          []string
	DirectionPrefix string
	DirectionSuffix string
	StreetType      string
}

var whitespaceRe = regexp.MustCompile(`\s+`)

var ordinalRe = regexp.MustCompile(`\b(1st|2nd|3rd|4th|5th|6th|7th|8th|9th|10th|11th|12th)\b`)

// Normalize runs the deterministic 11-step canonicalization pipeline from
// spec.md §4.1 over a raw street name string.
func Normalize(raw string) NormalizedStreetName {
	// Step 0: fold diacritics (alt_names may carry accented forms).
	s := stripDiacritics(raw)

	// Step 1: lowercase, collapse whitespace, trim.
	s = strings.ToLower(s)
	s = whitespaceRe.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)

	// Step 2: strip punctuation except intra-token hyphens.
	s = stripPunctuation(s)
	s = whitespaceRe.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)

	// Step 3: expand ordinals.
	s = ordinalRe.ReplaceAllStringFunc(s, func(m string) string {
		return ordinalExpansions[m]
	})

	// Step 4: tokenize.
	tokens := strings.Fields(s)
	if len(tokens) == 0 {
		return NormalizedStreetName{Original: raw}
	}

	var directionPrefix, directionSuffix, streetType string

	// Step 5: direction prefix.
	if d, ok := ParseDirectionToken(tokens[0]); ok {
		directionPrefix = ExpandDirectionWord(d)
		tokens[0] = directionPrefix
	}

	// Step 6: direction suffix (skip re-matching the token just claimed as
	// the prefix when there's only one token).
	if len(tokens) >= 2 || directionPrefix == "" {
		lastIdx := len(tokens) - 1
		if d, ok := ParseDirectionToken(tokens[lastIdx]); ok {
			directionSuffix = ExpandDirectionWord(d)
			tokens[lastIdx] = directionSuffix
		}
	}

	// Step 7: street type at type_index.
	typeIndex := len(tokens) - 1
	if directionSuffix != "" {
		typeIndex = len(tokens) - 2
	}
	if typeIndex >= 0 && typeIndex < len(tokens) {
		if full, ok := lookupStreetType(tokens[typeIndex]); ok {
			streetType = full
			tokens[typeIndex] = full
		}
	}

	// Step 8: honorific/acronym expansion, left-to-right.
	tokens = expandHonorifics(tokens)

	// Step 9: drop stop-words (keep at least one token).
	tokens = removeStopWords(tokens)

	// Step 10/11: core_name and normalized.
	coreName := removeFirstOccurrences(tokens, directionPrefix, directionSuffix, streetType)
	normalized := strings.Join(tokens, " ")

	return NormalizedStreetName{
		Original:        raw,
		Normalized:      normalized,
		CoreName:        strings.Join(coreName, " "),
		Tokens:          tokens,
		DirectionPrefix: directionPrefix,
		DirectionSuffix: directionSuffix,
		StreetType:      streetType,
	}
}

// stripPunctuation keeps letters, digits, spaces, and intra-token hyphens
// (a hyphen flanked by alphanumerics on both sides); every other rune is
// replaced with a space.
func stripPunctuation(s string) string {
	runes := []rune(s)
	out := make([]rune, len(runes))
	for i, r := range runes {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ' ':
			out[i] = r
		case r == '-' && i > 0 && i < len(runes)-1 && isAlnum(runes[i-1]) && isAlnum(runes[i+1]):
			out[i] = r
		default:
			out[i] = ' '
		}
	}
	return string(out)
}

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}

// removeFirstOccurrences returns a copy of tokens with the first occurrence
// of each non-empty value removed, in the order given.
func removeFirstOccurrences(tokens []string, values ...string) []string {
	out := make([]string, len(tokens))
	copy(out, tokens)
	for _, v := range values {
		if v == "" {
			continue
		}
		for i, tok := range out {
			if tok == v {
				out = append(out[:i], out[i+1:]...)
				break
			}
		}
	}
	return out
}
