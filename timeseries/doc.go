// Package timeseries provides the series-pair data structures the analysis
// pipeline operates on.
//
// A Series is a named sequence of float64 observations; a Pair is two
// index-aligned Series of equal length. Differencing is the only
// transformation the pipeline needs:
//
//	diff := series.Diff()   // first difference, one observation shorter
//	d2 := series.DiffN(2)   // applied twice
//
// Pairs can be loaded from CSV files with a header row naming the two
// columns of interest:
//
//	pair, err := timeseries.LoadPairCSV("data.csv", "x", "y")
package timeseries
