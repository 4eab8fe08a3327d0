package granger

import (
	"fmt"

	"github.com/grangerlab/grangerscope/stats"
	"github.com/grangerlab/grangerscope/timeseries"
)

// AssessAndDifference enforces stationarity on a single series. It runs the
// ADF test (null: unit root) and the KPSS test (null: stationary) on the
// current series and classifies it as stationary only when both agree:
// ADF p-value below the significance level and KPSS p-value above it.
// A non-stationary series is first-differenced and retested, up to
// Options.MaxDiffIterations passes; exceeding the cap fails with
// NonStationaryError.
//
// The returned record carries the p-values of the last test pair run, so
// they describe the returned (transformed) series, not the input.
func AssessAndDifference(s *timeseries.Series, opts Options) (*timeseries.Series, StationarityRecord, error) {
	opts = opts.withDefaults()
	alpha := opts.SignificanceLevel

	current := s
	order := 0
	for {
		adf, err := stats.ADF(current, 0)
		if err != nil {
			return nil, StationarityRecord{}, fmt.Errorf("stationarity check for %q: %w", s.Name, err)
		}
		kpss, err := stats.KPSS(current, 0)
		if err != nil {
			return nil, StationarityRecord{}, fmt.Errorf("stationarity check for %q: %w", s.Name, err)
		}

		rec := StationarityRecord{
			Series:            s.Name,
			ADFPValue:         adf.PValue,
			KPSSPValue:        kpss.PValue,
			Stationary:        adf.PValue < alpha && kpss.PValue > alpha,
			DifferencingOrder: order,
		}
		if rec.Stationary {
			return current, rec, nil
		}
		if order >= opts.MaxDiffIterations {
			return nil, StationarityRecord{}, &NonStationaryError{
				Series:     s.Name,
				Iterations: order,
				ADFPValue:  adf.PValue,
				KPSSPValue: kpss.PValue,
			}
		}

		current = current.Diff()
		order++
	}
}
