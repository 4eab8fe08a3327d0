package granger

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/grangerlab/grangerscope/stats"
)

// lagFit holds the restricted and unrestricted fits at one lag. Both the
// causality test and the criterion table read off the same pair, so each
// lag is estimated exactly once.
type lagFit struct {
	lag          int
	restricted   *stats.OLS
	unrestricted *stats.OLS
}

// fitLagModels fits, at the given lag L, the restricted autoregression of
// y on a constant plus its own lags 1..L, and the unrestricted one adding
// the lags 1..L of x. Both use the common estimation window: the first L
// observations lack full lag history and are excluded.
func fitLagModels(x, y []float64, lag int) (*lagFit, error) {
	n := len(y)
	T := n - lag
	kRestricted := lag + 1
	kUnrestricted := 2*lag + 1

	if T-kUnrestricted < 1 {
		return nil, &ModelFitError{
			Lag: lag,
			Err: fmt.Errorf("insufficient residual degrees of freedom: %d observations, %d parameters", T, kUnrestricted),
		}
	}

	resp := make([]float64, T)
	XR := mat.NewDense(T, kRestricted, nil)
	XU := mat.NewDense(T, kUnrestricted, nil)

	for t := 0; t < T; t++ {
		resp[t] = y[t+lag]

		XR.Set(t, 0, 1.0)
		XU.Set(t, 0, 1.0)
		for j := 1; j <= lag; j++ {
			XR.Set(t, j, y[t+lag-j])
			XU.Set(t, j, y[t+lag-j])
			XU.Set(t, lag+j, x[t+lag-j])
		}
	}

	restricted, err := stats.FitOLS(XR, resp)
	if err != nil {
		return nil, &ModelFitError{Lag: lag, Err: err}
	}
	unrestricted, err := stats.FitOLS(XU, resp)
	if err != nil {
		return nil, &ModelFitError{Lag: lag, Err: err}
	}

	return &lagFit{lag: lag, restricted: restricted, unrestricted: unrestricted}, nil
}

// criteriaFor computes the four information criteria of a fitted model
// under the Gaussian residual assumption.
func criteriaFor(f *stats.OLS) CriterionSet {
	T := float64(f.NObs)
	k := float64(f.NParams)
	ll := f.LogLikelihood()

	fpe := math.Inf(1)
	if T > k {
		fpe = ((T + k) / (T - k)) * (f.RSS / T)
	}

	return CriterionSet{
		AIC:  2*k - 2*ll,
		BIC:  k*math.Log(T) - 2*ll,
		HQIC: 2*k*math.Log(math.Log(T)) - 2*ll,
		FPE:  fpe,
	}
}
