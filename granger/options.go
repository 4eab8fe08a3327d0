package granger

import (
	"io"
	"runtime"

	"github.com/sirupsen/logrus"
)

// Options configures an analysis run. The zero value of any field falls
// back to its default.
type Options struct {
	// SignificanceLevel is the threshold both Granger p-values must fall
	// below for a lag to count as significant, and the level used by the
	// stationarity classification. Default 0.05.
	SignificanceLevel float64

	// MaxDiffIterations caps the differencing loop; exceeding it fails the
	// run with NonStationaryError. Default 5.
	MaxDiffIterations int

	// Workers bounds the number of goroutines fitting lag models
	// concurrently. Default runtime.NumCPU(). Results do not depend on the
	// worker count.
	Workers int

	// ValidationSlack is the minimum residual degrees of freedom required
	// by ValidateLag. Default 1.
	ValidationSlack int

	// Logger receives stage-level progress at debug level. Nil keeps the
	// library silent.
	Logger *logrus.Logger
}

// DefaultOptions returns the standard configuration.
func DefaultOptions() Options {
	return Options{
		SignificanceLevel: 0.05,
		MaxDiffIterations: 5,
		Workers:           runtime.NumCPU(),
		ValidationSlack:   1,
	}
}

func (o Options) withDefaults() Options {
	if o.SignificanceLevel <= 0 || o.SignificanceLevel >= 1 {
		o.SignificanceLevel = 0.05
	}
	if o.MaxDiffIterations <= 0 {
		o.MaxDiffIterations = 5
	}
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	if o.ValidationSlack <= 0 {
		o.ValidationSlack = 1
	}
	return o
}

var nopLogger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

func (o Options) logger() *logrus.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return nopLogger
}
