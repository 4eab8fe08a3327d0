package granger

import "fmt"

// InvalidLagError reports a requested maximum lag too large for the sample.
// It aborts an analysis before any fitting happens.
type InvalidLagError struct {
	MaxLag int
	Length int
}

func (e *InvalidLagError) Error() string {
	return fmt.Sprintf("max lag %d is too large for %d observations", e.MaxLag, e.Length)
}

// NonStationaryError reports a series that stayed non-stationary after the
// differencing cap was reached. Downstream tests assume stationarity, so
// this is fatal.
type NonStationaryError struct {
	Series     string
	Iterations int
	ADFPValue  float64
	KPSSPValue float64
}

func (e *NonStationaryError) Error() string {
	return fmt.Sprintf("series %q still non-stationary after %d differencing passes (ADF p=%.4f, KPSS p=%.4f)",
		e.Series, e.Iterations, e.ADFPValue, e.KPSSPValue)
}

// AlignmentError reports that synchronization left too few observations for
// the requested maximum lag.
type AlignmentError struct {
	Length int
	MaxLag int
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("synchronized length %d is insufficient for max lag %d", e.Length, e.MaxLag)
}

// ModelFitError reports a failed model fit at a specific lag. It is not
// fatal to a sweep: the lag is recorded as not estimable and the remaining
// lags are still evaluated.
type ModelFitError struct {
	Lag int
	Err error
}

func (e *ModelFitError) Error() string {
	return fmt.Sprintf("model fit at lag %d: %v", e.Lag, e.Err)
}

func (e *ModelFitError) Unwrap() error { return e.Err }
