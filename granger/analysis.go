package granger

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/grangerlab/grangerscope/timeseries"
)

// ValidateLag checks that maxLag leaves the unrestricted model at maxLag
// strictly positive residual degrees of freedom:
// length - 2*maxLag - slack > 0. It rejects non-positive lags outright.
func ValidateLag(length, maxLag, slack int) error {
	if maxLag <= 0 {
		return &InvalidLagError{MaxLag: maxLag, Length: length}
	}
	if slack < 1 {
		slack = 1
	}
	if length-2*maxLag-slack <= 0 {
		return &InvalidLagError{MaxLag: maxLag, Length: length}
	}
	return nil
}

// Run executes the full analysis pipeline on a pair of aligned series:
// lag validation, per-series stationarity enforcement, synchronization,
// the per-lag causality and criterion sweep, and optimal-lag selection.
//
// Fatal errors (InvalidLagError, NonStationaryError, AlignmentError) abort
// with no partial result. Per-lag estimation failures are absorbed into
// the result as not-estimable records. Run holds no state across calls;
// identical inputs produce identical results.
func Run(pair *timeseries.Pair, maxLag int, opts Options) (*AnalysisResult, error) {
	if pair == nil || pair.X == nil || pair.Y == nil {
		return nil, fmt.Errorf("series pair not provided")
	}
	opts = opts.withDefaults()
	log := opts.logger()

	if err := ValidateLag(pair.Len(), maxLag, opts.ValidationSlack); err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"observations": pair.Len(),
		"max_lag":      maxLag,
		"significance": opts.SignificanceLevel,
	}).Debug("starting granger analysis")

	xSeries, xRec, err := AssessAndDifference(pair.X, opts)
	if err != nil {
		return nil, err
	}
	ySeries, yRec, err := AssessAndDifference(pair.Y, opts)
	if err != nil {
		return nil, err
	}
	if xRec.Series == "" {
		xRec.Series = "x"
	}
	if yRec.Series == "" {
		yRec.Series = "y"
	}

	log.WithFields(logrus.Fields{
		"x_order": xRec.DifferencingOrder,
		"y_order": yRec.DifferencingOrder,
	}).Debug("stationarity enforced")

	sync, order, err := Synchronize(xSeries, ySeries,
		xRec.DifferencingOrder, yRec.DifferencingOrder, maxLag)
	if err != nil {
		return nil, err
	}

	tests, criteria := sweepLags(sync, maxLag, opts.SignificanceLevel, opts.Workers)
	optimal := SelectOptimalLags(tests, criteria, order)

	log.WithFields(logrus.Fields{
		"effective_length":   sync.Len(),
		"differencing_order": order,
	}).Debug("granger analysis complete")

	return &AnalysisResult{
		X:                 xRec,
		Y:                 yRec,
		DifferencingOrder: order,
		EffectiveLength:   sync.Len(),
		MaxLag:            maxLag,
		SignificanceLevel: opts.SignificanceLevel,
		LagTests:          tests,
		Criteria:          criteria,
		OptimalLags:       optimal,
	}, nil
}
