package plot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grangerlab/grangerscope/granger"
)

func sampleResult() *granger.AnalysisResult {
	return &granger.AnalysisResult{
		SignificanceLevel: 0.05,
		MaxLag:            3,
		LagTests: []granger.LagTestRecord{
			{Lag: 1, FPValue: 0.001, Chi2PValue: 0.002, Significant: true, Estimable: true},
			{Lag: 2, FPValue: 0.20, Chi2PValue: 0.18, Estimable: true},
			{Lag: 3},
		},
		Criteria: []granger.CriterionRecord{
			{Lag: 1, Estimable: true,
				Restricted:   granger.CriterionSet{AIC: 120, BIC: 126, HQIC: 122, FPE: 1.4},
				Unrestricted: granger.CriterionSet{AIC: 95, BIC: 104, HQIC: 99, FPE: 1.1}},
			{Lag: 2, Estimable: true,
				Restricted:   granger.CriterionSet{AIC: 118, BIC: 127, HQIC: 121, FPE: 1.3},
				Unrestricted: granger.CriterionSet{AIC: 97, BIC: 112, HQIC: 103, FPE: 1.2}},
			{Lag: 3},
		},
	}
}

func requirePNG(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestSavePValueCurves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pvalues.png")
	require.NoError(t, SavePValueCurves(sampleResult(), path))
	requirePNG(t, path)
}

func TestSaveCriterionCurves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "criteria.png")
	require.NoError(t, SaveCriterionCurves(sampleResult(), path))
	requirePNG(t, path)
}

func TestSaveFPEComparison(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fpe.png")
	require.NoError(t, SaveFPEComparison(sampleResult(), path))
	requirePNG(t, path)
}

func TestSaveWithNothingEstimable(t *testing.T) {
	res := sampleResult()
	for i := range res.LagTests {
		res.LagTests[i].Estimable = false
	}
	for i := range res.Criteria {
		res.Criteria[i].Estimable = false
	}

	dir := t.TempDir()
	assert.Error(t, SavePValueCurves(res, filepath.Join(dir, "a.png")))
	assert.Error(t, SaveCriterionCurves(res, filepath.Join(dir, "b.png")))
	assert.Error(t, SaveFPEComparison(res, filepath.Join(dir, "c.png")))
}
