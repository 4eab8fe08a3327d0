package stats

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestFitOLSExact(t *testing.T) {
	// y = 2 + 3x with no noise: coefficients recovered exactly.
	n := 20
	X := mat.NewDense(n, 2, nil)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		x := float64(i)
		X.Set(i, 0, 1)
		X.Set(i, 1, x)
		y[i] = 2 + 3*x
	}

	fit, err := FitOLS(X, y)
	if err != nil {
		t.Fatalf("FitOLS returned error: %v", err)
	}

	if !almostEqual(fit.Coeffs[0], 2, 1e-8) || !almostEqual(fit.Coeffs[1], 3, 1e-8) {
		t.Errorf("coefficients = %v, want [2 3]", fit.Coeffs)
	}
	if fit.RSS > 1e-12 {
		t.Errorf("RSS = %v, want ~0", fit.RSS)
	}
	if fit.NObs != n || fit.NParams != 2 {
		t.Errorf("NObs=%d NParams=%d, want %d 2", fit.NObs, fit.NParams, n)
	}
}

func TestFitOLSNoisy(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	n := 500
	X := mat.NewDense(n, 2, nil)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		x := rng.NormFloat64()
		X.Set(i, 0, 1)
		X.Set(i, 1, x)
		y[i] = 1 - 2*x + 0.1*rng.NormFloat64()
	}

	fit, err := FitOLS(X, y)
	if err != nil {
		t.Fatalf("FitOLS returned error: %v", err)
	}

	if !almostEqual(fit.Coeffs[0], 1, 0.05) || !almostEqual(fit.Coeffs[1], -2, 0.05) {
		t.Errorf("coefficients = %v, want approx [1 -2]", fit.Coeffs)
	}
	if fit.StdErr == nil {
		t.Fatal("expected standard errors for a full-rank design")
	}
	if fit.StdErr[1] <= 0 || fit.StdErr[1] > 0.05 {
		t.Errorf("slope standard error = %v, want small positive", fit.StdErr[1])
	}
	if len(fit.Residuals) != n {
		t.Errorf("got %d residuals, want %d", len(fit.Residuals), n)
	}
}

func TestFitOLSSingularDesign(t *testing.T) {
	// Two identical columns: X'X is singular, the SVD fallback must still
	// produce a fit.
	n := 30
	X := mat.NewDense(n, 3, nil)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		x := float64(i)
		X.Set(i, 0, 1)
		X.Set(i, 1, x)
		X.Set(i, 2, x) // duplicate
		y[i] = 5 + 2*x
	}

	fit, err := FitOLS(X, y)
	if err != nil {
		t.Fatalf("FitOLS returned error on singular design: %v", err)
	}
	if fit.StdErr != nil {
		t.Error("expected nil standard errors on the pseudoinverse path")
	}
	// The fit itself is still exact even though the split between the two
	// duplicate columns is arbitrary.
	if fit.RSS > 1e-8 {
		t.Errorf("RSS = %v, want ~0", fit.RSS)
	}
}

func TestFitOLSDimensionMismatch(t *testing.T) {
	X := mat.NewDense(3, 1, []float64{1, 1, 1})
	if _, err := FitOLS(X, []float64{1, 2}); err == nil {
		t.Error("expected error for mismatched response length")
	}
}

func TestLogLikelihoodOrdering(t *testing.T) {
	// A tighter fit has a higher likelihood at the same sample size.
	loose := &OLS{RSS: 100, NObs: 50, NParams: 2}
	tight := &OLS{RSS: 10, NObs: 50, NParams: 2}

	if tight.LogLikelihood() <= loose.LogLikelihood() {
		t.Errorf("loglik(tight)=%v should exceed loglik(loose)=%v",
			tight.LogLikelihood(), loose.LogLikelihood())
	}
}
