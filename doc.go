// Package grangerscope automates bivariate Granger-causality analysis on a
// pair of aligned time series.
//
// The pipeline enforces stationarity by differencing (ADF + KPSS agreement),
// keeps both series synchronized at a common differencing order, tests
// whether one series' past values add predictive power for the other at
// every lag up to a requested maximum, fits the matching restricted and
// unrestricted autoregressions to score each lag with four information
// criteria, and finally selects the best-supported lag per criterion among
// the significant ones.
//
// # Quick start
//
//	pair, err := timeseries.LoadPairCSV("data.csv", "x", "y")
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := granger.Run(pair, 5, granger.DefaultOptions())
//	if err != nil {
//		log.Fatal(err)
//	}
//	report.Write(os.Stdout, result)
//
// # Packages
//
//   - timeseries: series pair data structures, differencing, CSV loading
//   - stats: OLS fitting and the ADF/KPSS stationarity tests
//   - granger: the analysis pipeline and its result structures
//   - report: fixed-width text report and CSV export
//   - plot: p-value and criterion charts
package grangerscope
