// Package stats provides the numerical building blocks of the analysis
// pipeline: ordinary least squares fitting and the two stationarity tests
// (ADF and KPSS) used to decide whether a series needs differencing.
//
// The two tests have opposite null hypotheses and are meant to be read
// together:
//
//	// H0: series has a unit root (non-stationary)
//	adf, err := stats.ADF(series, 0)
//
//	// H0: series is stationary
//	kpss, err := stats.KPSS(series, 0)
//
// A series counts as stationary only when ADF rejects its null and KPSS
// fails to reject its own.
package stats
