package reporting

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Sink consumes completed feature reports. Consume is called once per
// feature, in execution order; Complete is called once after the last
// feature.
type Sink interface {
	Consume(report *FeatureReport) error
	Complete() error
}

// JUnitSink writes one TESTS-{classname}.xml file per feature into the
// output directory, creating the directory (and missing ancestors) on first
// use.
type JUnitSink struct {
	outputDir string
	logger    *log.Logger
}

// NewJUnitSink creates a JUnit file sink for the given output directory.
func NewJUnitSink(outputDir string, logger *log.Logger) *JUnitSink {
	if logger == nil {
		logger = log.Default()
	}
	return &JUnitSink{outputDir: outputDir, logger: logger}
}

// Consume renders the report and writes it to disk. I/O errors propagate to
// the caller; there is no retry.
func (s *JUnitSink) Consume(report *FeatureReport) error {
	content, err := NewTestSuite(report).Render()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", s.outputDir, err)
	}

	path := filepath.Join(s.outputDir, ReportFilename(report.Classname))
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write report file %s: %w", path, err)
	}

	s.logger.Debug("Wrote JUnit report",
		"path", path,
		"tests", report.Tests,
		"failures", report.Failures,
		"errors", report.Errors,
		"skipped", report.Skipped)
	return nil
}

// Complete implements Sink; the JUnit sink has no end-of-run work.
func (s *JUnitSink) Complete() error {
	return nil
}

// ReportFilename returns the report file name for a feature classname.
func ReportFilename(classname string) string {
	return fmt.Sprintf("TESTS-%s.xml", classname)
}
