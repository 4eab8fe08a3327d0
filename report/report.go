// Package report renders an AnalysisResult as a fixed-width text report
// and exports its tables to CSV. It never recomputes anything: every value
// comes straight out of the result structure.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/grangerlab/grangerscope/granger"
)

// Write renders the full report: the stationarity table, the differencing
// summary, the Granger table of significant lags, and the optimal-lag
// table. Tables are fixed-width and lag-ascending.
func Write(w io.Writer, res *granger.AnalysisResult) {
	fmt.Fprintln(w, "GRANGER CAUSALITY AND OPTIMAL LAG ANALYSIS")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Stationarity Tests (ADF and KPSS)")
	fmt.Fprintf(w, "%-10s | %-12s | %-12s | %s\n", "Series", "ADF p-value", "KPSS p-value", "Classification")
	fmt.Fprintln(w, "--------------------------------------------------------")
	for _, rec := range []granger.StationarityRecord{res.X, res.Y} {
		label := "Non-stationary"
		if rec.Stationary {
			label = "Stationary"
		}
		fmt.Fprintf(w, "%-10s | %12.6f | %12.6f | %s\n",
			rec.Series, rec.ADFPValue, rec.KPSSPValue, label)
	}
	fmt.Fprintln(w)

	if res.DifferencingOrder > 0 {
		fmt.Fprintf(w, "Differencing passes applied to reach stationarity: %d\n", res.DifferencingOrder)
	} else {
		fmt.Fprintln(w, "Both series were already stationary, no differencing needed.")
	}
	fmt.Fprintln(w)

	significant := significantTests(res)
	if len(significant) == 0 {
		fmt.Fprintln(w, "No lag reached significance in the Granger test.")
	} else {
		fmt.Fprintln(w, "Granger Test Results (Significant Lags)")
		fmt.Fprintf(w, "%-5s | %-12s | %s\n", "Lag", "F p-value", "Chi2 p-value")
		fmt.Fprintln(w, "------------------------------------")
		for _, t := range significant {
			fmt.Fprintf(w, "%-5d | %12.6f | %12.6f\n", t.Lag, t.FPValue, t.Chi2PValue)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Optimal Lags by Information Criterion (Significant Lags Only)")
	fmt.Fprintf(w, "%-10s | %-11s | %s\n", "Criterion", "Optimal Lag", "Adjusted Lag")
	fmt.Fprintln(w, "----------------------------------------")
	for _, sel := range res.OptimalLags {
		if !sel.Found {
			fmt.Fprintf(w, "%-10s | %-11s | %s\n", sel.Criterion, "-", "no significant lag")
			continue
		}
		fmt.Fprintf(w, "%-10s | %-11d | %d\n", sel.Criterion, sel.Lag, sel.AdjustedLag)
	}
}

func significantTests(res *granger.AnalysisResult) []granger.LagTestRecord {
	var out []granger.LagTestRecord
	for _, t := range res.LagTests {
		if t.Estimable && t.Significant {
			out = append(out, t)
		}
	}
	return out
}

// WriteGrangerCSV writes every lag's test record to a CSV file, including
// the not-estimable ones so "could not be tested" stays distinguishable
// from "tested, not significant".
func WriteGrangerCSV(path string, res *granger.AnalysisResult) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Lag", "FStatistic", "FPValue", "Chi2Statistic", "Chi2PValue", "Significant", "Estimable"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, t := range res.LagTests {
		record := []string{
			fmt.Sprintf("%d", t.Lag),
			fmt.Sprintf("%f", t.FStatistic),
			fmt.Sprintf("%f", t.FPValue),
			fmt.Sprintf("%f", t.Chi2Statistic),
			fmt.Sprintf("%f", t.Chi2PValue),
			fmt.Sprintf("%t", t.Significant),
			fmt.Sprintf("%t", t.Estimable),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return nil
}

// WriteCriteriaCSV writes the criterion table to a CSV file in long
// format, one row per lag and model variant.
func WriteCriteriaCSV(path string, res *granger.AnalysisResult) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Lag", "Model", "Params", "AIC", "BIC", "HQIC", "FPE", "Estimable"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, c := range res.Criteria {
		rows := []struct {
			model  string
			params int
			set    granger.CriterionSet
		}{
			{"restricted", c.RestrictedParams, c.Restricted},
			{"unrestricted", c.UnrestrictedParams, c.Unrestricted},
		}
		for _, r := range rows {
			record := []string{
				fmt.Sprintf("%d", c.Lag),
				r.model,
				fmt.Sprintf("%d", r.params),
				fmt.Sprintf("%f", r.set.AIC),
				fmt.Sprintf("%f", r.set.BIC),
				fmt.Sprintf("%f", r.set.HQIC),
				fmt.Sprintf("%f", r.set.FPE),
				fmt.Sprintf("%t", c.Estimable),
			}
			if err := writer.Write(record); err != nil {
				return err
			}
		}
	}

	return nil
}
