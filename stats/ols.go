package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// OLS holds a fitted least-squares regression of a single response on a
// design matrix.
type OLS struct {
	// Coeffs are the fitted coefficients, in design-matrix column order.
	Coeffs []float64
	// StdErr are the coefficient standard errors. Nil when X'X is singular
	// and the fit fell back to the pseudoinverse.
	StdErr []float64
	// Residuals are observed minus fitted values.
	Residuals []float64
	// RSS is the residual sum of squares.
	RSS float64
	// NObs is the number of observations used in the fit.
	NObs int
	// NParams is the number of estimated coefficients.
	NParams int
}

// FitOLS regresses y on the columns of X. It solves the normal equations
// when X'X is invertible and falls back to a minimum-norm SVD solution
// otherwise, so a rank-deficient design still yields coefficients.
func FitOLS(X *mat.Dense, y []float64) (*OLS, error) {
	n, m := X.Dims()
	if n == 0 || m == 0 {
		return nil, fmt.Errorf("empty design matrix")
	}
	if len(y) != n {
		return nil, fmt.Errorf("response length %d does not match %d design rows", len(y), n)
	}

	yVec := mat.NewVecDense(n, y)
	beta := mat.NewVecDense(m, nil)

	// First try: normal equations beta = (X'X)^(-1) X'y
	var xtx mat.Dense
	xtx.Mul(X.T(), X)

	var xtxInv mat.Dense
	invErr := xtxInv.Inverse(&xtx)

	var stdErr []float64
	if invErr == nil {
		var xty mat.VecDense
		xty.MulVec(X.T(), yVec)
		beta.MulVec(&xtxInv, &xty)
	} else {
		// Fallback: X'X is singular or badly conditioned.
		// Minimize ||y - X beta|| with the minimum-norm SVD solution.
		var svd mat.SVD
		if ok := svd.Factorize(X, mat.SVDThin); !ok {
			return nil, fmt.Errorf("least squares failed: X'X singular and SVD factorization failed: %v", invErr)
		}
		rank := svd.Rank(1e-12)
		if rank == 0 {
			// Numerically all-zero design: minimum-norm solution is beta = 0,
			// which beta already holds.
		} else {
			yMat := mat.NewDense(n, 1, nil)
			for i := 0; i < n; i++ {
				yMat.Set(i, 0, y[i])
			}
			var b mat.Dense
			svd.SolveTo(&b, yMat, rank)
			for i := 0; i < m; i++ {
				beta.SetVec(i, b.At(i, 0))
			}
		}
	}

	// Residuals and RSS
	var fitted mat.VecDense
	fitted.MulVec(X, beta)

	residuals := make([]float64, n)
	rss := 0.0
	for i := 0; i < n; i++ {
		r := y[i] - fitted.AtVec(i)
		residuals[i] = r
		rss += r * r
	}

	// Standard errors need (X'X)^(-1) and positive residual degrees of freedom.
	if invErr == nil && n > m {
		s2 := rss / float64(n-m)
		stdErr = make([]float64, m)
		for i := 0; i < m; i++ {
			stdErr[i] = math.Sqrt(s2 * xtxInv.At(i, i))
		}
	}

	coeffs := make([]float64, m)
	for i := 0; i < m; i++ {
		coeffs[i] = beta.AtVec(i)
	}

	return &OLS{
		Coeffs:    coeffs,
		StdErr:    stdErr,
		Residuals: residuals,
		RSS:       rss,
		NObs:      n,
		NParams:   m,
	}, nil
}

// Sigma2 returns the maximum-likelihood residual variance RSS/T.
func (f *OLS) Sigma2() float64 {
	if f.NObs == 0 {
		return math.NaN()
	}
	return f.RSS / float64(f.NObs)
}

// LogLikelihood returns the maximized Gaussian log-likelihood of the fit.
func (f *OLS) LogLikelihood() float64 {
	T := float64(f.NObs)
	sigma2 := f.Sigma2()
	if sigma2 <= 0 {
		return math.Inf(1) // perfect fit
	}
	return -T / 2 * (math.Log(2*math.Pi) + math.Log(sigma2) + 1)
}
