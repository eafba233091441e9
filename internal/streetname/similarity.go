package streetname

import (
	"github.com/agnivade/levenshtein"
)

// DefaultEquivalenceThreshold is the similarity cutoff used by Equivalent
// when the caller doesn't supply one.
const DefaultEquivalenceThreshold = 0.85

// Similarity computes sim(a, b) in [0,1] per spec.md §4.1: exact normalized
// match is 1.0, a shared non-empty core name is 0.95, otherwise a
// Levenshtein-ratio fallback. Two empty normalized strings are defined as
// fully similar (1.0) rather than dividing by zero.
func Similarity(a, b NormalizedStreetName) float64 {
	if a.Normalized == b.Normalized {
		return 1.0
	}
	if a.CoreName != "" && a.CoreName == b.CoreName {
		return 0.95
	}

	maxLen := len(a.Normalized)
	if len(b.Normalized) > maxLen {
		maxLen = len(b.Normalized)
	}
	if maxLen == 0 {
		return 1.0
	}

	dist := levenshtein.ComputeDistance(a.Normalized, b.Normalized)
	sim := 1 - float64(dist)/float64(maxLen)
	if sim < 0 {
		sim = 0
	}
	return sim
}

// Equivalent reports whether a and b are the same street name within
// threshold, per spec.md's equiv(a,b) predicate.
func Equivalent(a, b NormalizedStreetName, threshold float64) bool {
	return Similarity(a, b) >= threshold
}
