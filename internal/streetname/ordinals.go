package streetname

// ordinalExpansions is the fixed 1st..12th -> word table used by
// canonicalization step 3. Legal descriptions reference numbered streets
// ("12th Street") far more often than higher ordinals, so the table is
// capped per spec rather than generated.
var ordinalExpansions = map[string]string{
	"1st":  "first",
	"2nd":  "second",
	"3rd":  "third",
	"4th":  "fourth",
	"5th":  "fifth",
	"6th":  "sixth",
	"7th":  "seventh",
	"8th":  "eighth",
	"9th":  "ninth",
	"10th": "tenth",
	"11th": "eleventh",
	"12th": "twelfth",
}

// expandOrdinals rewrites every "<N>th"-style token in tokens to its word form.
func expandOrdinals(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		if word, ok := ordinalExpansions[tok]; ok {
			out[i] = word
		} else {
			out[i] = tok
		}
	}
	return out
}
