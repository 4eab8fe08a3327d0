// Command grangerscope runs the full bivariate Granger-causality analysis
// on two columns of a CSV file, prints the text report, and writes the
// Granger/criterion tables plus charts next to it.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/grangerlab/grangerscope/granger"
	"github.com/grangerlab/grangerscope/plot"
	"github.com/grangerlab/grangerscope/report"
	"github.com/grangerlab/grangerscope/timeseries"
)

func main() {
	var (
		inputPath  = flag.String("input", "", "CSV file with the two series (required)")
		maxLag     = flag.Int("maxlag", 5, "maximum lag to test")
		configPath = flag.String("config", "", "optional YAML config file")
	)
	flag.Parse()

	log := logrus.New()

	if *inputPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: grangerscope -input data.csv [-maxlag N] [-config file.yaml]")
		os.Exit(2)
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithError(err).Fatal("invalid log level")
	}
	log.SetLevel(level)

	pair, err := timeseries.LoadPairCSV(*inputPath, cfg.XColumn, cfg.YColumn)
	if err != nil {
		log.WithError(err).Fatal("failed to load series pair")
	}
	log.WithFields(logrus.Fields{
		"observations": pair.Len(),
		"x":            cfg.XColumn,
		"y":            cfg.YColumn,
	}).Info("loaded series pair")

	opts := granger.Options{
		SignificanceLevel: cfg.SignificanceLevel,
		MaxDiffIterations: cfg.MaxDiffIterations,
		Workers:           cfg.Workers,
		Logger:            log,
	}

	result, err := granger.Run(pair, *maxLag, opts)
	if err != nil {
		log.WithError(err).Fatal("analysis failed")
	}

	report.Write(os.Stdout, result)

	grangerCSV := filepath.Join(cfg.OutputDir, "granger_results.csv")
	if err := report.WriteGrangerCSV(grangerCSV, result); err != nil {
		log.WithError(err).Fatal("failed to write granger CSV")
	}
	criteriaCSV := filepath.Join(cfg.OutputDir, "criterion_results.csv")
	if err := report.WriteCriteriaCSV(criteriaCSV, result); err != nil {
		log.WithError(err).Fatal("failed to write criterion CSV")
	}
	log.WithFields(logrus.Fields{
		"granger":  grangerCSV,
		"criteria": criteriaCSV,
	}).Info("tables written")

	if cfg.Plots {
		charts := []struct {
			name string
			save func(*granger.AnalysisResult, string) error
		}{
			{"pvalues.png", plot.SavePValueCurves},
			{"criteria.png", plot.SaveCriterionCurves},
			{"fpe.png", plot.SaveFPEComparison},
		}
		for _, c := range charts {
			path := filepath.Join(cfg.OutputDir, c.name)
			if err := c.save(result, path); err != nil {
				log.WithError(err).WithField("chart", c.name).Fatal("failed to render chart")
			}
			log.WithField("chart", path).Info("chart written")
		}
	}
}
