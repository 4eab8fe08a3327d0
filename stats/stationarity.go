package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/grangerlab/grangerscope/timeseries"
)

// ADFResult represents the result of an Augmented Dickey-Fuller test.
type ADFResult struct {
	Statistic float64
	PValue    float64
	Lags      int
	NObs      int
}

// ADF performs the Augmented Dickey-Fuller test for a unit root, with a
// constant term and no trend. The null hypothesis is that the series has a
// unit root (is non-stationary); a p-value below the significance level
// rejects the null in favor of stationarity.
//
// maxLag <= 0 selects the default lag order floor((n-1)^(1/3)).
func ADF(s *timeseries.Series, maxLag int) (*ADFResult, error) {
	n := s.Len()
	if n < 12 {
		return nil, fmt.Errorf("adf: need at least 12 observations, got %d", n)
	}

	if maxLag <= 0 {
		maxLag = int(math.Floor(math.Pow(float64(n-1), 1.0/3.0)))
	}
	if maxLag >= n-1 {
		maxLag = n - 2
	}

	diff := s.Diff()

	// Regression: delta_y_t = alpha + beta*y_{t-1} + sum(gamma_i * delta_y_{t-i}) + eps.
	// Unit root corresponds to beta = 0; the test statistic is beta's t-ratio.
	nObs := n - maxLag - 1
	if nObs < 10 {
		return nil, fmt.Errorf("adf: only %d usable observations after %d lags", nObs, maxLag)
	}

	m := 2 + maxLag
	X := mat.NewDense(nObs, m, nil)
	y := make([]float64, nObs)

	for i := 0; i < nObs; i++ {
		t := i + maxLag
		y[i] = diff.Values[t]

		X.Set(i, 0, 1.0)            // constant
		X.Set(i, 1, s.Values[t])    // lagged level
		for j := 1; j <= maxLag; j++ {
			X.Set(i, 1+j, diff.Values[t-j]) // lagged differences
		}
	}

	fit, err := FitOLS(X, y)
	if err != nil {
		return nil, fmt.Errorf("adf: %w", err)
	}
	if fit.StdErr == nil || fit.StdErr[1] == 0 {
		return nil, fmt.Errorf("adf: singular regression, no standard error for the level term")
	}

	tStat := fit.Coeffs[1] / fit.StdErr[1]

	return &ADFResult{
		Statistic: tStat,
		PValue:    mackinnonPValue(tStat),
		Lags:      maxLag,
		NObs:      nObs,
	}, nil
}

// KPSSResult represents the result of a KPSS test.
type KPSSResult struct {
	Statistic float64
	PValue    float64
	Lags      int
}

// KPSS performs the Kwiatkowski-Phillips-Schmidt-Shin test for level
// stationarity. The null hypothesis is that the series is stationary; a
// p-value below the significance level rejects the null in favor of a
// unit root.
//
// nlags <= 0 selects the default lag order ceil(12*(n/100)^0.25).
func KPSS(s *timeseries.Series, nlags int) (*KPSSResult, error) {
	n := s.Len()
	if n < 12 {
		return nil, fmt.Errorf("kpss: need at least 12 observations, got %d", n)
	}

	if nlags <= 0 {
		nlags = int(math.Ceil(12 * math.Pow(float64(n)/100, 0.25)))
	}
	if nlags >= n {
		nlags = n - 1
	}

	// Demean (level-stationarity variant).
	mean := s.Mean()
	residuals := make([]float64, n)
	for i, v := range s.Values {
		residuals[i] = v - mean
	}

	// Partial sums of the demeaned series.
	cumSum := make([]float64, n)
	cumSum[0] = residuals[0]
	for i := 1; i < n; i++ {
		cumSum[i] = cumSum[i-1] + residuals[i]
	}

	// Long-run variance: Newey-West with Bartlett weights.
	s2 := 0.0
	for _, r := range residuals {
		s2 += r * r
	}
	s2 /= float64(n)

	for l := 1; l <= nlags; l++ {
		cov := 0.0
		for i := l; i < n; i++ {
			cov += residuals[i] * residuals[i-l]
		}
		cov /= float64(n)
		weight := 1.0 - float64(l)/float64(nlags+1)
		s2 += 2 * weight * cov
	}
	if s2 <= 0 {
		s2 = 1e-10
	}

	etaSq := 0.0
	for _, cs := range cumSum {
		etaSq += cs * cs
	}
	stat := etaSq / (float64(n) * float64(n) * s2)

	return &KPSSResult{
		Statistic: stat,
		PValue:    kpssPValue(stat),
		Lags:      nlags,
	}, nil
}

// adfPTable holds MacKinnon (1994) asymptotic critical values for the
// constant-only regression, ascending in both columns.
var adfPTable = [...]struct{ stat, p float64 }{
	{-3.96, 0.001},
	{-3.43, 0.01},
	{-2.86, 0.05},
	{-2.57, 0.10},
	{-1.94, 0.25},
	{-1.62, 0.50},
}

// mackinnonPValue approximates the ADF p-value for the constant-only
// regression by piecewise-linear interpolation of the MacKinnon table.
// The p-value is strictly monotone in the statistic, so a statistic past
// a critical value maps strictly past that level's p-value.
func mackinnonPValue(stat float64) float64 {
	if stat <= adfPTable[0].stat {
		return adfPTable[0].p
	}
	for i := 1; i < len(adfPTable); i++ {
		hi := adfPTable[i]
		if stat <= hi.stat {
			lo := adfPTable[i-1]
			frac := (stat - lo.stat) / (hi.stat - lo.stat)
			return lo.p + frac*(hi.p-lo.p)
		}
	}
	last := adfPTable[len(adfPTable)-1]
	return math.Min(last.p+(stat-last.stat)*0.25, 0.99)
}

// kpssPTable holds the KPSS critical values for the level-stationarity
// variant, statistic descending as the p-value ascends.
var kpssPTable = [...]struct{ stat, p float64 }{
	{0.739, 0.01},
	{0.574, 0.025},
	{0.463, 0.05},
	{0.347, 0.10},
}

// kpssPValue approximates the KPSS p-value for the level-stationarity
// variant by piecewise-linear interpolation of its critical value table.
func kpssPValue(stat float64) float64 {
	if stat >= kpssPTable[0].stat {
		return kpssPTable[0].p
	}
	for i := 1; i < len(kpssPTable); i++ {
		lo := kpssPTable[i]
		if stat >= lo.stat {
			hi := kpssPTable[i-1]
			frac := (hi.stat - stat) / (hi.stat - lo.stat)
			return hi.p + frac*(lo.p-hi.p)
		}
	}
	last := kpssPTable[len(kpssPTable)-1]
	return math.Min(last.p+(last.stat-stat)*0.5, 0.99)
}
