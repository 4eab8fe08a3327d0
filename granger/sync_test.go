package granger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynchronizeEqualOrders(t *testing.T) {
	x := noiseSeries("x", 100, 21)
	y := noiseSeries("y", 100, 22)

	pair, order, err := Synchronize(x, y, 0, 0, 5)
	require.NoError(t, err)

	assert.Equal(t, 0, order)
	assert.Equal(t, 100, pair.Len())
}

func TestSynchronizeUnequalOrders(t *testing.T) {
	// x was differenced once (99 obs), y not at all (100 obs): y catches up.
	x := noiseSeries("x", 100, 23).Diff()
	y := noiseSeries("y", 100, 24)

	pair, order, err := Synchronize(x, y, 1, 0, 5)
	require.NoError(t, err)

	assert.Equal(t, 1, order)
	assert.Equal(t, pair.X.Len(), pair.Y.Len())
	assert.Equal(t, 99, pair.Len())
}

func TestSynchronizeBothCatchUp(t *testing.T) {
	x := noiseSeries("x", 80, 25)
	y := noiseSeries("y", 80, 26).DiffN(2)

	pair, order, err := Synchronize(x, y, 0, 2, 4)
	require.NoError(t, err)

	assert.Equal(t, 2, order)
	assert.Equal(t, 78, pair.Len())
}

func TestSynchronizeInsufficientLength(t *testing.T) {
	x := noiseSeries("x", 20, 27)
	y := noiseSeries("y", 20, 28)

	_, _, err := Synchronize(x, y, 0, 0, 10)
	require.Error(t, err)

	var alignErr *AlignmentError
	require.ErrorAs(t, err, &alignErr)
	assert.Equal(t, 20, alignErr.Length)
	assert.Equal(t, 10, alignErr.MaxLag)
}
