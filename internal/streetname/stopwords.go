package streetname

// stopWords are dropped in canonicalization step 9, but only when doing so
// would not empty the token list entirely (spec.md §4.1: "keep at least one
// token").
var stopWords = map[string]bool{
	"the": true,
	"of":  true,
	"and": true,
	"at":  true,
	"to":  true,
	"in":  true,
	"on":  true,
	"a":   true,
	"an":  true,
}

// removeStopWords drops stop words from tokens, unless doing so would leave
// nothing behind.
func removeStopWords(tokens []string) []string {
	if len(tokens) <= 1 {
		return tokens
	}
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !stopWords[tok] {
			out = append(out, tok)
		}
	}
	if len(out) == 0 {
		return tokens
	}
	return out
}
