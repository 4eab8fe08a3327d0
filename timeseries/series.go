package timeseries

import (
	"fmt"
	"math"
)

// Series represents a single time series: a named, index-ordered sequence
// of observations with no missing values.
type Series struct {
	Name   string
	Values []float64
}

// New creates a series from values.
func New(values []float64) *Series {
	return &Series{Values: values}
}

// NewNamed creates a named series from values.
func NewNamed(name string, values []float64) *Series {
	return &Series{Name: name, Values: values}
}

// Len returns the number of observations.
func (s *Series) Len() int {
	return len(s.Values)
}

// Mean calculates the arithmetic mean of the series.
func (s *Series) Mean() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range s.Values {
		sum += v
	}
	return sum / float64(len(s.Values))
}

// Variance calculates the sample variance of the series.
func (s *Series) Variance() float64 {
	if len(s.Values) < 2 {
		return 0
	}
	mean := s.Mean()
	sumSq := 0.0
	for _, v := range s.Values {
		diff := v - mean
		sumSq += diff * diff
	}
	return sumSq / float64(len(s.Values)-1)
}

// Std calculates the sample standard deviation of the series.
func (s *Series) Std() float64 {
	return math.Sqrt(s.Variance())
}

// Diff returns the first difference of the series. The result is one
// observation shorter: the first observation has no predecessor.
func (s *Series) Diff() *Series {
	if len(s.Values) < 2 {
		return &Series{Name: s.Name}
	}
	diffed := make([]float64, len(s.Values)-1)
	for i := 1; i < len(s.Values); i++ {
		diffed[i-1] = s.Values[i] - s.Values[i-1]
	}
	return &Series{Name: s.Name, Values: diffed}
}

// DiffN applies first differencing n times.
func (s *Series) DiffN(n int) *Series {
	out := s
	for i := 0; i < n; i++ {
		out = out.Diff()
	}
	return out
}

// Copy returns a deep copy of the series.
func (s *Series) Copy() *Series {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)
	return &Series{Name: s.Name, Values: values}
}

// Pair holds two index-aligned series of equal length.
type Pair struct {
	X *Series
	Y *Series
}

// NewPair creates a pair from two series of equal length.
func NewPair(x, y *Series) (*Pair, error) {
	if x == nil || y == nil {
		return nil, fmt.Errorf("both series must be provided")
	}
	if x.Len() != y.Len() {
		return nil, fmt.Errorf("series lengths differ: %s has %d, %s has %d",
			x.Name, x.Len(), y.Name, y.Len())
	}
	return &Pair{X: x, Y: y}, nil
}

// Len returns the common length of the pair.
func (p *Pair) Len() int {
	return p.X.Len()
}
