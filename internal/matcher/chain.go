package matcher

import (
	"github.com/wardrecon/boundary-engine/internal/geomath"
)

// selectContiguousChain implements §4.4.4: pick a single contiguous chain
// of candidates beginning near the reference point via a bounded greedy
// nearest-neighbor walk. valid must be non-empty; valid[0] is assumed to be
// the best-scored candidate per §4.4.3, used as the single-element fallback.
func selectContiguousChain(valid []candidateScore, refPoint *geomath.Position, cfg MatcherConfig) []candidateScore {
	if refPoint == nil || len(valid) == 1 {
		return []candidateScore{valid[0]}
	}

	seedIdx := -1
	seedDist := 0.0
	seedUsesStart := true
	for i, c := range valid {
		dStart := geomath.Haversine(*refPoint, c.start())
		dEnd := geomath.Haversine(*refPoint, c.end())
		best, usesStart := dStart, true
		if dEnd < dStart {
			best, usesStart = dEnd, false
		}
		if seedIdx == -1 || best < seedDist {
			seedIdx = i
			seedDist = best
			seedUsesStart = usesStart
		}
	}

	if seedDist > cfg.MaxSnapDistanceM {
		return []candidateScore{valid[0]}
	}

	used := make([]bool, len(valid))
	used[seedIdx] = true
	chain := []candidateScore{valid[seedIdx]}

	freeEnd := valid[seedIdx].start()
	if seedUsesStart {
		freeEnd = valid[seedIdx].end()
	}

	// Chain length (seed included) is bounded at min(|candidates|, 50), per
	// the contiguous-chain-termination invariant.
	maxChainLen := len(valid)
	if maxChainLen > maxChainIterations {
		maxChainLen = maxChainIterations
	}

	for len(chain) < maxChainLen {
		nextIdx := -1
		nextDist := 0.0
		nextUsesStart := true

		for j, c := range valid {
			if used[j] {
				continue
			}
			dStart := geomath.Haversine(freeEnd, c.start())
			dEnd := geomath.Haversine(freeEnd, c.end())
			best, usesStart := dStart, true
			if dEnd < dStart {
				best, usesStart = dEnd, false
			}
			if best <= connectionToleranceM && (nextIdx == -1 || best < nextDist) {
				nextIdx = j
				nextDist = best
				nextUsesStart = usesStart
			}
		}

		if nextIdx == -1 {
			break
		}

		used[nextIdx] = true
		chain = append(chain, valid[nextIdx])
		if nextUsesStart {
			freeEnd = valid[nextIdx].end()
		} else {
			freeEnd = valid[nextIdx].start()
		}
	}

	return chain
}
