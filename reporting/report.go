package reporting

import (
	"fmt"
	"strings"

	"cukejunit/types"
)

// messageLimit caps the failure/error message attribute; the full text is
// preserved in the CDATA body.
const messageLimit = 80

// unknownExceptionType is the type attribute used when a failed step carries
// no exception object.
const unknownExceptionType = "unknown"

// FeatureReport collects the JUnit report data for one feature: the ordered
// testcase elements plus the aggregate counters that end up on the testsuite.
// It is created fresh per feature and discarded after serialization.
type FeatureReport struct {
	Feature   *types.Feature
	Classname string
	TestCases []TestCase

	Tests    int
	Errors   int
	Failures int
	Skipped  int
}

// HasProblems reports whether the feature had any failures or errors.
func (r *FeatureReport) HasProblems() bool {
	return r.Errors > 0 || r.Failures > 0
}

// ReportBuilder transforms a feature's result tree into a FeatureReport,
// applying the failure/error/skipped classification rules.
type ReportBuilder struct {
	searchRoots []string
}

// NewReportBuilder creates a report builder. The search roots are used only
// to shorten feature paths into classnames.
func NewReportBuilder(searchRoots ...string) *ReportBuilder {
	return &ReportBuilder{searchRoots: searchRoots}
}

// Process walks every reportable scenario of the feature, in execution order,
// and produces the completed report. Scenario outlines contribute their
// expanded scenarios; the outline itself is never reported.
func (b *ReportBuilder) Process(feature *types.Feature) (*FeatureReport, error) {
	report := &FeatureReport{
		Feature:   feature,
		Classname: DeriveClassname(feature.Path, b.searchRoots),
	}
	for _, scenario := range feature.ReportableScenarios() {
		if err := b.processScenario(scenario, report); err != nil {
			return nil, err
		}
	}
	return report, nil
}

// processScenario appends one testcase for the scenario and updates the
// report counters.
//
// Failed scenarios are classified by their first failed step: a violated
// expectation (or a failure with no recorded exception) counts as a failure,
// any other exception counts as an error. Skipped and untested scenarios both
// count as skipped; if one contains an undefined step it additionally counts
// as a failure so CI surfaces the missing step definition.
func (b *ReportBuilder) processScenario(scenario *types.Scenario, report *FeatureReport) error {
	report.Tests++

	testcase := TestCase{
		Classname: fmt.Sprintf("%s.%s", report.Classname, report.Feature.DisplayName()),
		Name:      scenario.Name,
		Status:    string(scenario.Status),
		Time:      formatSeconds(scenario.Duration),
	}

	switch {
	case scenario.Status == types.StatusFailed:
		step := FindStepWithStatus(types.StatusFailed, scenario.Steps)
		if step == nil {
			// A correctly functioning engine always records the failed step.
			return fmt.Errorf("invariant violation: scenario %q of feature %q is failed but has no failed step",
				scenario.Name, report.Feature.DisplayName())
		}
		detail := &FailureDetail{
			Type:    exceptionType(step.Exception),
			Message: truncateMessage(step.Exception.String()),
			Body: cdataText(fmt.Sprintf("Step: %s.\nLocation: %s\n%s",
				step.Name, step.Location, step.ErrorMessage)),
		}
		if step.Exception == nil || step.Exception.Assertion {
			report.Failures++
			testcase.Failure = detail
		} else {
			report.Errors++
			testcase.Error = detail
		}

	case scenario.Status.CountsAsSkipped():
		report.Skipped++
		if step := FindStepWithStatus(types.StatusUndefined, scenario.Steps); step != nil {
			report.Failures++
			testcase.Failure = &FailureDetail{
				Type:    "undefined",
				Message: fmt.Sprintf("Undefined Step: %s", step.Name),
			}
		} else {
			testcase.Skipped = &SkippedMarker{}
		}
	}

	out := DescribeScenario(scenario)
	if scenario.Stdout != "" {
		out += fmt.Sprintf("\nCaptured stdout:\n%s\n", scenario.Stdout)
	}
	testcase.SystemOut = &Output{Content: cdataText(out)}

	if scenario.Stderr != "" {
		testcase.SystemErr = &Output{
			Content: cdataText(fmt.Sprintf("\nCaptured stderr:\n%s\n", scenario.Stderr)),
		}
	}

	report.TestCases = append(report.TestCases, testcase)
	return nil
}

// FindStepWithStatus returns the first step with the given status, or nil.
// It works on any step list; callers decide whether background steps are
// included.
func FindStepWithStatus(status types.Status, steps []*types.Step) *types.Step {
	for _, step := range steps {
		if step.Status == status {
			return step
		}
	}
	return nil
}

// DescribeScenario renders the scenario's steps as the text block placed in
// the testcase's system-out section. Step tables and multiline arguments are
// not included.
func DescribeScenario(scenario *types.Scenario) string {
	var sb strings.Builder
	sb.WriteString("Steps:\n")
	for _, step := range scenario.Steps {
		fmt.Fprintf(&sb, "%12s %s ... %s\n", step.Keyword, step.Name, step.Status)
	}
	return sb.String()
}

func exceptionType(exc *types.Exception) string {
	if exc == nil {
		return unknownExceptionType
	}
	return exc.Type
}

// truncateMessage shortens a message to the attribute limit, marking the cut
// with an ellipsis. The untruncated text stays available in the CDATA body.
func truncateMessage(message string) string {
	if len(message) > messageLimit {
		return message[:messageLimit] + "..."
	}
	return message
}
