package matcher

// classifyQuality implements §4.4.6's final quality classification given
// the best-scored candidate among those that passed the name-similarity
// filter.
func classifyQuality(b candidateScore, minNameSim float64) MatchQuality {
	switch {
	case b.nameSim >= 0.95 && b.distanceScore >= 0.8:
		return QualityExact
	case b.nameSim >= minNameSim && b.distanceScore >= 0.5:
		return QualityFuzzy
	case b.nameSim >= minNameSim:
		return QualityPartial
	default:
		return QualityFailed
	}
}
