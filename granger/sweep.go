package granger

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/grangerlab/grangerscope/timeseries"
)

// TestCausality tests, for each lag 1..maxLag, whether the past values of
// x add predictive power for y beyond y's own past. A lag is significant
// when both the F-test and the Chi-square test p-values fall below the
// significance level. Lags whose models cannot be estimated are recorded
// as not estimable; the sweep never aborts because of them.
func TestCausality(pair *timeseries.Pair, maxLag int, significance float64) []LagTestRecord {
	tests, _ := sweepLags(pair, maxLag, significance, 1)
	return tests
}

// FitCriteria fits the restricted/unrestricted model pair at each lag
// 1..maxLag and computes AIC, BIC, HQIC and FPE for both variants. The
// fits are the same ones TestCausality compares, so the two tables are
// always consistent.
func FitCriteria(pair *timeseries.Pair, maxLag int) []CriterionRecord {
	_, criteria := sweepLags(pair, maxLag, 0.05, 1)
	return criteria
}

// sweepLags evaluates every lag once, producing both the causality test
// records and the criterion records from a single estimation per lag.
// Lags are mutually independent, so they are distributed over a bounded
// worker pool; each worker writes only its own lag's slot and the merged
// tables are identical for any worker count.
func sweepLags(pair *timeseries.Pair, maxLag int, significance float64, workers int) ([]LagTestRecord, []CriterionRecord) {
	tests := make([]LagTestRecord, maxLag)
	criteria := make([]CriterionRecord, maxLag)

	if workers < 1 {
		workers = 1
	}
	if workers > maxLag {
		workers = maxLag
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for lag := range jobs {
				tests[lag-1], criteria[lag-1] = evaluateLag(pair, lag, significance)
			}
		}()
	}

	for lag := 1; lag <= maxLag; lag++ {
		jobs <- lag
	}
	close(jobs)
	wg.Wait()

	return tests, criteria
}

// evaluateLag fits both models at one lag and derives the test statistics
// and criteria. A failed fit yields not-estimable records.
func evaluateLag(pair *timeseries.Pair, lag int, significance float64) (LagTestRecord, CriterionRecord) {
	fit, err := fitLagModels(pair.X.Values, pair.Y.Values, lag)
	if err != nil {
		return LagTestRecord{Lag: lag}, CriterionRecord{Lag: lag}
	}

	T := float64(fit.unrestricted.NObs)
	q := float64(lag) // number of restrictions: the excluded x lags
	dof := T - float64(fit.unrestricted.NParams)

	// In theory RSS_restricted >= RSS_unrestricted, but floating point can
	// produce a tiny negative difference.
	num := fit.restricted.RSS - fit.unrestricted.RSS
	if num < 0 {
		num = 0
	}
	den := fit.unrestricted.RSS / dof

	var fStat, fP, chi2Stat, chi2P float64
	if den <= 0 || num == 0 {
		// No evidence that the extra lags matter.
		fStat, fP = 0, 1
		chi2Stat, chi2P = 0, 1
	} else {
		fStat = (num / q) / den
		if fStat <= 0 || math.IsNaN(fStat) || math.IsInf(fStat, 0) {
			fStat, fP = 0, 1
		} else {
			fDist := distuv.F{D1: q, D2: dof}
			fP = 1 - fDist.CDF(fStat)
		}

		chi2Stat = T * num / fit.unrestricted.RSS
		chi2Dist := distuv.ChiSquared{K: q}
		chi2P = 1 - chi2Dist.CDF(chi2Stat)
	}

	fP = clampP(fP)
	chi2P = clampP(chi2P)

	test := LagTestRecord{
		Lag:           lag,
		FStatistic:    fStat,
		FPValue:       fP,
		Chi2Statistic: chi2Stat,
		Chi2PValue:    chi2P,
		Significant:   fP < significance && chi2P < significance,
		Estimable:     true,
	}
	crit := CriterionRecord{
		Lag:                lag,
		Estimable:          true,
		RestrictedParams:   fit.restricted.NParams,
		UnrestrictedParams: fit.unrestricted.NParams,
		Restricted:         criteriaFor(fit.restricted),
		Unrestricted:       criteriaFor(fit.unrestricted),
	}
	return test, crit
}

func clampP(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
