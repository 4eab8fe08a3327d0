package granger

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func critSet(v float64) CriterionSet {
	return CriterionSet{AIC: v, BIC: v, HQIC: v, FPE: v}
}

func findOptimal(t *testing.T, out []OptimalLag, criterion string) OptimalLag {
	t.Helper()
	for _, o := range out {
		if o.Criterion == criterion {
			return o
		}
	}
	t.Fatalf("criterion %q missing from selection", criterion)
	return OptimalLag{}
}

func TestSelectOptimalLagsPicksMinimum(t *testing.T) {
	tests := []LagTestRecord{
		{Lag: 1, Significant: true, Estimable: true},
		{Lag: 2, Significant: true, Estimable: true},
		{Lag: 3, Significant: true, Estimable: true},
	}
	criteria := []CriterionRecord{
		{Lag: 1, Estimable: true, Unrestricted: critSet(30)},
		{Lag: 2, Estimable: true, Unrestricted: critSet(10)},
		{Lag: 3, Estimable: true, Unrestricted: critSet(20)},
	}

	out := SelectOptimalLags(tests, criteria, 0)
	require.Len(t, out, len(CriterionNames))

	for _, name := range CriterionNames {
		o := findOptimal(t, out, name)
		assert.True(t, o.Found)
		assert.Equal(t, 2, o.Lag)
		assert.Equal(t, 2, o.AdjustedLag)
	}
}

func TestSelectOptimalLagsSkipsInsignificant(t *testing.T) {
	tests := []LagTestRecord{
		{Lag: 1, Significant: false, Estimable: true},
		{Lag: 2, Significant: true, Estimable: true},
	}
	criteria := []CriterionRecord{
		{Lag: 1, Estimable: true, Unrestricted: critSet(1)}, // better, but not significant
		{Lag: 2, Estimable: true, Unrestricted: critSet(5)},
	}

	out := SelectOptimalLags(tests, criteria, 0)
	o := findOptimal(t, out, CriterionAIC)
	assert.True(t, o.Found)
	assert.Equal(t, 2, o.Lag)
}

func TestSelectOptimalLagsTieBreaksToSmallestLag(t *testing.T) {
	tests := []LagTestRecord{
		{Lag: 1, Significant: true, Estimable: true},
		{Lag: 2, Significant: true, Estimable: true},
	}
	criteria := []CriterionRecord{
		{Lag: 1, Estimable: true, Unrestricted: critSet(7)},
		{Lag: 2, Estimable: true, Unrestricted: critSet(7)},
	}

	out := SelectOptimalLags(tests, criteria, 0)
	o := findOptimal(t, out, CriterionBIC)
	assert.Equal(t, 1, o.Lag)
}

func TestSelectOptimalLagsSkipsNonFinite(t *testing.T) {
	tests := []LagTestRecord{
		{Lag: 1, Significant: true, Estimable: true},
		{Lag: 2, Significant: true, Estimable: true},
	}
	criteria := []CriterionRecord{
		{Lag: 1, Estimable: true, Unrestricted: critSet(math.Inf(-1))},
		{Lag: 2, Estimable: true, Unrestricted: critSet(4)},
	}
	criteria[0].Unrestricted.FPE = math.NaN()

	out := SelectOptimalLags(tests, criteria, 0)
	for _, name := range CriterionNames {
		o := findOptimal(t, out, name)
		assert.True(t, o.Found)
		assert.Equal(t, 2, o.Lag, "criterion %s", name)
	}
}

func TestSelectOptimalLagsNoneSignificant(t *testing.T) {
	tests := []LagTestRecord{
		{Lag: 1, Significant: false, Estimable: true},
		{Lag: 2, Significant: false, Estimable: false},
	}
	criteria := []CriterionRecord{
		{Lag: 1, Estimable: true, Unrestricted: critSet(1)},
		{Lag: 2},
	}

	out := SelectOptimalLags(tests, criteria, 0)
	require.Len(t, out, len(CriterionNames))
	for _, o := range out {
		assert.False(t, o.Found, "criterion %s", o.Criterion)
	}
}

func TestSelectOptimalLagsAdjustsForDifferencing(t *testing.T) {
	tests := []LagTestRecord{{Lag: 3, Significant: true, Estimable: true}}
	criteria := []CriterionRecord{{Lag: 3, Estimable: true, Unrestricted: critSet(2)}}

	out := SelectOptimalLags(tests, criteria, 2)
	o := findOptimal(t, out, CriterionHQIC)
	assert.Equal(t, 3, o.Lag)
	assert.Equal(t, 5, o.AdjustedLag)
}
