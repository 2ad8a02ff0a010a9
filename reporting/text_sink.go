package reporting

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// TextSummarySink collects feature reports and prints a summary table once
// the run completes.
type TextSummarySink struct {
	out     io.Writer
	reports []*FeatureReport
}

// NewTextSummarySink creates a summary sink writing to out.
func NewTextSummarySink(out io.Writer) *TextSummarySink {
	return &TextSummarySink{out: out}
}

// Consume collects the report for the end-of-run summary.
func (s *TextSummarySink) Consume(report *FeatureReport) error {
	s.reports = append(s.reports, report)
	return nil
}

// Complete renders the summary table.
func (s *TextSummarySink) Complete() error {
	t := table.NewWriter()
	t.SetOutputMirror(s.out)
	t.SetTitle("Feature Results")

	t.AppendHeader(table.Row{
		"Feature", "Tests", "Failures", "Errors", "Skipped", "Status",
	})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Feature", WidthMax: 50, WidthMaxEnforcer: text.WrapSoft},
		{Name: "Tests", Align: text.AlignRight},
		{Name: "Failures", Align: text.AlignRight},
		{Name: "Errors", Align: text.AlignRight},
		{Name: "Skipped", Align: text.AlignRight},
	})

	var tests, failures, errors, skipped int
	for _, report := range s.reports {
		t.AppendRow(table.Row{
			report.Feature.DisplayName(),
			report.Tests,
			report.Failures,
			report.Errors,
			report.Skipped,
			summaryStatus(report),
		})
		tests += report.Tests
		failures += report.Failures
		errors += report.Errors
		skipped += report.Skipped
	}
	t.AppendFooter(table.Row{"TOTAL", tests, failures, errors, skipped, ""})

	t.Render()
	return nil
}

func summaryStatus(report *FeatureReport) string {
	if report.HasProblems() {
		return "FAIL"
	}
	return "PASS"
}
