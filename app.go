// Package cukejunit turns Cucumber-style test results into JUnit-compatible
// XML reports. It consumes the results the execution engine produced; it does
// not run any tests itself.
package cukejunit

import (
	"fmt"
	"os"

	"github.com/google/uuid"

	"cukejunit/cuke"
	"cukejunit/reporting"
)

// App wires the report builder and sinks together for one run.
type App struct {
	cfg     *Config
	builder *reporting.ReportBuilder
	sinks   []reporting.Sink
}

// New creates the application. When no sinks are given, the default set is
// used: the JUnit file sink plus, if configured, the console summary.
func New(cfg *Config, sinks ...reporting.Sink) *App {
	if len(sinks) == 0 {
		sinks = append(sinks, reporting.NewJUnitSink(cfg.OutputDir, cfg.Log))
		if cfg.Summary {
			sinks = append(sinks, reporting.NewTextSummarySink(os.Stdout))
		}
	}
	return &App{
		cfg:     cfg,
		builder: reporting.NewReportBuilder(cfg.SearchRoots...),
		sinks:   sinks,
	}
}

// Run loads every results file, builds one report per feature in order, and
// feeds each report to the sinks. It returns a TestFailureError when any
// feature had failures or errors, and a RuntimeError for operational
// problems; both map onto process exit codes in cmd.
func (a *App) Run() error {
	runID := uuid.New().String()
	a.cfg.Log.Info("Generating JUnit reports",
		"run_id", runID,
		"results_files", len(a.cfg.ResultsFiles),
		"output_dir", a.cfg.OutputDir)

	var features, problems int
	for _, path := range a.cfg.ResultsFiles {
		loaded, err := cuke.LoadFile(path)
		if err != nil {
			return NewRuntimeError(err)
		}
		a.cfg.Log.Debug("Loaded results file", "path", path, "features", len(loaded))

		for _, feature := range loaded {
			report, err := a.builder.Process(feature)
			if err != nil {
				return NewRuntimeError(err)
			}
			for _, sink := range a.sinks {
				if err := sink.Consume(report); err != nil {
					return NewRuntimeError(err)
				}
			}
			features++
			if report.HasProblems() {
				problems++
			}
		}
	}

	for _, sink := range a.sinks {
		if err := sink.Complete(); err != nil {
			return NewRuntimeError(err)
		}
	}

	a.cfg.Log.Info("Reports written", "run_id", runID, "features", features, "with_problems", problems)
	if problems > 0 {
		return NewTestFailureError(fmt.Sprintf("%d of %d features had failures or errors", problems, features))
	}
	return nil
}
