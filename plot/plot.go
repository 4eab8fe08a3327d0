// Package plot renders the per-lag curves of an AnalysisResult as PNG
// charts: the Granger p-values against the significance line, the
// information-criterion curves, and the restricted-vs-unrestricted FPE
// comparison. Not-estimable lags are simply absent from the curves.
package plot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/grangerlab/grangerscope/granger"
)

// SavePValueCurves plots the F-test and Chi-square p-values per lag along
// with the significance threshold, and saves the chart as a PNG.
func SavePValueCurves(res *granger.AnalysisResult, path string) error {
	p := plot.New()
	p.Title.Text = "Granger Test P-Values"
	p.X.Label.Text = "Lag"
	p.Y.Label.Text = "P-value"

	var fPts, chi2Pts plotter.XYs
	for _, t := range res.LagTests {
		if !t.Estimable {
			continue
		}
		fPts = append(fPts, plotter.XY{X: float64(t.Lag), Y: t.FPValue})
		chi2Pts = append(chi2Pts, plotter.XY{X: float64(t.Lag), Y: t.Chi2PValue})
	}
	if len(fPts) == 0 {
		return fmt.Errorf("no estimable lags to plot")
	}

	threshold := plotter.XYs{
		{X: float64(res.LagTests[0].Lag), Y: res.SignificanceLevel},
		{X: float64(res.LagTests[len(res.LagTests)-1].Lag), Y: res.SignificanceLevel},
	}

	if err := addLine(p, "F-test p-value", fPts, 0); err != nil {
		return err
	}
	if err := addLine(p, "Chi2 p-value", chi2Pts, 1); err != nil {
		return err
	}
	if err := addDashedLine(p, "significance", threshold, 2); err != nil {
		return err
	}

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}

// SaveCriterionCurves plots AIC, BIC and HQIC of the unrestricted model
// per lag, and saves the chart as a PNG.
func SaveCriterionCurves(res *granger.AnalysisResult, path string) error {
	p := plot.New()
	p.Title.Text = "Information Criteria (Unrestricted Model)"
	p.X.Label.Text = "Lag"
	p.Y.Label.Text = "Criterion"

	names := []string{granger.CriterionAIC, granger.CriterionBIC, granger.CriterionHQIC}
	for i, name := range names {
		var pts plotter.XYs
		for _, c := range res.Criteria {
			if !c.Estimable {
				continue
			}
			pts = append(pts, plotter.XY{X: float64(c.Lag), Y: c.Unrestricted.Value(name)})
		}
		if len(pts) == 0 {
			return fmt.Errorf("no estimable lags to plot")
		}
		if err := addLine(p, name, pts, i); err != nil {
			return err
		}
	}

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}

// SaveFPEComparison plots the FPE of the restricted and unrestricted
// models per lag, and saves the chart as a PNG.
func SaveFPEComparison(res *granger.AnalysisResult, path string) error {
	p := plot.New()
	p.Title.Text = "FPE: Restricted vs Unrestricted"
	p.X.Label.Text = "Lag"
	p.Y.Label.Text = "FPE"

	var restricted, unrestricted plotter.XYs
	for _, c := range res.Criteria {
		if !c.Estimable {
			continue
		}
		restricted = append(restricted, plotter.XY{X: float64(c.Lag), Y: c.Restricted.FPE})
		unrestricted = append(unrestricted, plotter.XY{X: float64(c.Lag), Y: c.Unrestricted.FPE})
	}
	if len(restricted) == 0 {
		return fmt.Errorf("no estimable lags to plot")
	}

	if err := addLine(p, "restricted", restricted, 0); err != nil {
		return err
	}
	if err := addLine(p, "unrestricted", unrestricted, 1); err != nil {
		return err
	}

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}

func addLine(p *plot.Plot, name string, pts plotter.XYs, colorIdx int) error {
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("line %s: %w", name, err)
	}
	line.Color = plotutil.Color(colorIdx)
	p.Add(line)
	p.Legend.Add(name, line)
	return nil
}

func addDashedLine(p *plot.Plot, name string, pts plotter.XYs, colorIdx int) error {
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("line %s: %w", name, err)
	}
	line.Color = plotutil.Color(colorIdx)
	line.Dashes = plotutil.Dashes(1)
	p.Add(line)
	p.Legend.Add(name, line)
	return nil
}
