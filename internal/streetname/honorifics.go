package streetname

// honorificExpansions maps a single lowercase token to the sequence of
// tokens it expands to. Expansion can grow the token list (one token -> many
// tokens), so expandHonorifics walks the *input* left-to-right and appends
// replacements rather than rescanning already-produced output.
var honorificExpansions = map[string][]string{
	"mlk":    {"martin", "luther", "king"},
	"jfk":    {"john", "f", "kennedy"},
	"fdr":    {"franklin", "d", "roosevelt"},
	"lbj":    {"lyndon", "b", "johnson"},
	"us":     {"us", "highway"},
	"sr":     {"state", "route"},
	"co":     {"county"},
	"cr":     {"county", "road"},
	"hwy":    {"highway"},
	"ste":    {"saint"},
	"st.":    {"saint"},
	"ft":     {"fort"},
	"mt":     {"mount"},
	"dr.":    {"doctor"},
	"rev":    {"reverend"},
	"gen":    {"general"},
}

// expandHonorifics applies the honorific/acronym substitution table
// left-to-right over tokens, in canonicalization step 8.
func expandHonorifics(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if repl, ok := honorificExpansions[tok]; ok {
			out = append(out, repl...)
			continue
		}
		out = append(out, tok)
	}
	return out
}
