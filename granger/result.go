package granger

// Criterion names, in the fixed order selections are reported in.
const (
	CriterionAIC  = "AIC"
	CriterionBIC  = "BIC"
	CriterionHQIC = "HQIC"
	CriterionFPE  = "FPE"
)

// CriterionNames lists the four information criteria in reporting order.
var CriterionNames = []string{CriterionAIC, CriterionBIC, CriterionHQIC, CriterionFPE}

// StationarityRecord is the diagnostic outcome of stationarity enforcement
// for one series. The p-values reflect the last ADF/KPSS pair run, i.e. the
// tests on the final (possibly differenced) series.
type StationarityRecord struct {
	Series            string
	ADFPValue         float64
	KPSSPValue        float64
	Stationary        bool
	DifferencingOrder int
}

// LagTestRecord is the Granger causality test outcome at one lag.
// Estimable is false when the models at this lag could not be fitted
// (degrees-of-freedom exhaustion or a singular design); such a record
// carries no statistics and is never significant.
type LagTestRecord struct {
	Lag           int
	FStatistic    float64
	FPValue       float64
	Chi2Statistic float64
	Chi2PValue    float64
	Significant   bool
	Estimable     bool
}

// CriterionSet holds the four information criteria of one fitted model.
type CriterionSet struct {
	AIC  float64
	BIC  float64
	HQIC float64
	FPE  float64
}

// Value returns the criterion with the given name.
func (c CriterionSet) Value(name string) float64 {
	switch name {
	case CriterionAIC:
		return c.AIC
	case CriterionBIC:
		return c.BIC
	case CriterionHQIC:
		return c.HQIC
	case CriterionFPE:
		return c.FPE
	}
	panic("unknown criterion " + name)
}

// CriterionRecord holds the information criteria of the restricted and
// unrestricted models at one lag. The unrestricted model always carries
// strictly more parameters than the restricted one.
type CriterionRecord struct {
	Lag                int
	Estimable          bool
	RestrictedParams   int
	UnrestrictedParams int
	Restricted         CriterionSet
	Unrestricted       CriterionSet
}

// OptimalLag is the selection outcome for one criterion. Found is false
// when no significant, estimable lag existed to choose from; Lag and
// AdjustedLag are meaningless in that case.
type OptimalLag struct {
	Criterion   string
	Found       bool
	Lag         int
	AdjustedLag int
}

// AnalysisResult aggregates everything one analysis run produced. It is
// immutable once returned and safe to share with reporting and plotting
// consumers.
type AnalysisResult struct {
	X StationarityRecord
	Y StationarityRecord

	// DifferencingOrder is the common order both series were brought to.
	DifferencingOrder int
	// EffectiveLength is the post-synchronization sample size.
	EffectiveLength int

	MaxLag            int
	SignificanceLevel float64

	LagTests    []LagTestRecord
	Criteria    []CriterionRecord
	OptimalLags []OptimalLag
}
