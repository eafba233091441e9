package streetname

import "strings"

// CardinalDirection is the closed set of directional qualifiers that can
// prefix or suffix a street name, or be attached to a boundary segment.
type CardinalDirection string

const (
	North     CardinalDirection = "N"
	South     CardinalDirection = "S"
	East      CardinalDirection = "E"
	West      CardinalDirection = "W"
	Northeast CardinalDirection = "NE"
	Northwest CardinalDirection = "NW"
	Southeast CardinalDirection = "SE"
	Southwest CardinalDirection = "SW"
)

// directionWords maps every abbreviation and full-word spelling to its
// canonical CardinalDirection. "no"/"so" are the USPS Pub 28 abbreviations
// for north/south that appear in older ordinance text.
var directionWords = map[string]CardinalDirection{
	"n": North, "no": North, "north": North,
	"s": South, "so": South, "south": South,
	"e": East, "east": East,
	"w": West, "west": West,
	"ne": Northeast, "northeast": Northeast,
	"nw": Northwest, "northwest": Northwest,
	"se": Southeast, "southeast": Southeast,
	"sw": Southwest, "southwest": Southwest,
}

// fullDirectionWord maps a CardinalDirection to its canonical lowercase
// expansion, used when rewriting a direction token during normalization.
var fullDirectionWord = map[CardinalDirection]string{
	North: "north", South: "south", East: "east", West: "west",
	Northeast: "northeast", Northwest: "northwest",
	Southeast: "southeast", Southwest: "southwest",
}

// ParseDirectionToken recognizes a single token as a direction abbreviation
// or full word. Matching is case-insensitive; the caller is expected to
// have already lowercased the token.
func ParseDirectionToken(tok string) (CardinalDirection, bool) {
	d, ok := directionWords[tok]
	return d, ok
}

// ExpandDirectionWord returns the canonical lowercase full word for a
// CardinalDirection (e.g. Northeast -> "northeast").
func ExpandDirectionWord(d CardinalDirection) string {
	return fullDirectionWord[d]
}

// erlySuffixWords maps the "*erly" travel-direction form used in legal
// descriptions ("northerly", "southeasterly") back to a CardinalDirection.
var erlySuffixWords = map[string]CardinalDirection{
	"northerly": North, "southerly": South, "easterly": East, "westerly": West,
	"northeasterly": Northeast, "northwesterly": Northwest,
	"southeasterly": Southeast, "southwesterly": Southwest,
}

// DetectDirectionPhrase scans free text for a cardinal direction expressed
// as a bare direction word, an "*erly" travel form, or "in a <direction>
// direction". The first "*erly" form wins wherever it appears; failing that,
// the first bare direction word or abbreviation of two or more letters is
// returned (single letters such as "n" are ignored).
func DetectDirectionPhrase(text string) (CardinalDirection, bool) {
	lower := strings.ToLower(text)
	words := strings.FieldsFunc(lower, func(r rune) bool {
		return !(r >= 'a' && r <= 'z')
	})
	for _, w := range words {
		if d, ok := erlySuffixWords[w]; ok {
			return d, true
		}
	}
	for _, w := range words {
		if d, ok := directionWords[w]; ok && len(w) > 1 {
			return d, true
		}
	}
	return "", false
}
