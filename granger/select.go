package granger

import "math"

// SelectOptimalLags picks, per criterion, the lag with the minimum
// unrestricted-model criterion value among the lags flagged significant by
// the causality tests. Ties break toward the smallest lag (parsimony), and
// non-finite criterion values are skipped. When no lag is significant the
// selection for every criterion is reported as not found; that is a valid
// analytical outcome, not an error.
//
// diffOrder is the total differencing order applied before testing; the
// adjusted lag expresses the selection in original-series time units:
// adjusted = raw + diffOrder.
func SelectOptimalLags(tests []LagTestRecord, criteria []CriterionRecord, diffOrder int) []OptimalLag {
	byLag := make(map[int]CriterionRecord, len(criteria))
	for _, c := range criteria {
		byLag[c.Lag] = c
	}

	out := make([]OptimalLag, 0, len(CriterionNames))
	for _, name := range CriterionNames {
		best := OptimalLag{Criterion: name}
		bestVal := math.Inf(1)

		for _, t := range tests {
			if !t.Estimable || !t.Significant {
				continue
			}
			c, ok := byLag[t.Lag]
			if !ok || !c.Estimable {
				continue
			}
			v := c.Unrestricted.Value(name)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			// Strict comparison over lag-ascending records keeps the
			// smallest lag on ties.
			if v < bestVal {
				bestVal = v
				best.Found = true
				best.Lag = t.Lag
				best.AdjustedLag = t.Lag + diffOrder
			}
		}
		out = append(out, best)
	}
	return out
}
