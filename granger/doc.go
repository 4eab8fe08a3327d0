// Package granger implements the bivariate Granger-causality pipeline:
// stationarity enforcement by differencing, synchronization of the two
// series at a common differencing order, per-lag causality testing,
// information-criterion scoring of the competing autoregressions, and
// selection of the best-supported lag.
//
// The orchestrator drives the whole sequence:
//
//	result, err := granger.Run(pair, 5, granger.DefaultOptions())
//
// Each stage is also usable on its own; all of them are pure functions of
// their inputs and the returned structures are never mutated afterwards.
package granger
