package granger

import (
	"fmt"

	"github.com/grangerlab/grangerscope/timeseries"
)

// Synchronize brings two independently differenced series to a common
// differencing order and equal length. The lesser-differenced series is
// differenced further until both orders match; since each pass drops
// exactly one leading observation, matching orders leave the indices
// paired. Any residual length difference is trimmed from the front.
//
// Returns the synchronized pair and the common order. Fails with
// AlignmentError when the resulting length cannot support the requested
// maximum lag.
func Synchronize(x, y *timeseries.Series, xOrder, yOrder, maxLag int) (*timeseries.Pair, int, error) {
	order := xOrder
	if yOrder > order {
		order = yOrder
	}

	x = x.DiffN(order - xOrder)
	y = y.DiffN(order - yOrder)

	// Equal orders imply equal lengths when the inputs started aligned;
	// trim leading observations if the caller handed us uneven series.
	if x.Len() > y.Len() {
		x = timeseries.NewNamed(x.Name, x.Values[x.Len()-y.Len():])
	} else if y.Len() > x.Len() {
		y = timeseries.NewNamed(y.Name, y.Values[y.Len()-x.Len():])
	}

	if x.Len()-2*maxLag-1 <= 0 {
		return nil, 0, &AlignmentError{Length: x.Len(), MaxLag: maxLag}
	}

	pair, err := timeseries.NewPair(x, y)
	if err != nil {
		return nil, 0, fmt.Errorf("synchronize: %w", err)
	}
	return pair, order, nil
}
