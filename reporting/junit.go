package reporting

import (
	"encoding/xml"
	"fmt"
	"math"
	"strconv"

	"github.com/acarl005/stripansi"
)

// TestSuite is the root element of a JUnit report: one testsuite per feature,
// one testcase per (expanded) scenario.
type TestSuite struct {
	XMLName  xml.Name `xml:"testsuite"`
	Name     string   `xml:"name,attr"`
	Tests    int      `xml:"tests,attr"`
	Errors   int      `xml:"errors,attr"`
	Failures int      `xml:"failures,attr"`
	Skipped  int      `xml:"skipped,attr"`
	Time     string   `xml:"time,attr"`

	TestCases []TestCase `xml:"testcase"`
}

// TestCase is one JUnit testcase element. Failure and Error are mutually
// exclusive; at most one is set. Field order fixes the child element order
// in the serialized document.
type TestCase struct {
	XMLName   xml.Name `xml:"testcase"`
	Classname string   `xml:"classname,attr"`
	Name      string   `xml:"name,attr"`
	Status    string   `xml:"status,attr"`
	Time      string   `xml:"time,attr"`

	Failure   *FailureDetail `xml:"failure,omitempty"`
	Error     *FailureDetail `xml:"error,omitempty"`
	Skipped   *SkippedMarker `xml:"skipped,omitempty"`
	SystemOut *Output        `xml:"system-out,omitempty"`
	SystemErr *Output        `xml:"system-err,omitempty"`
}

// FailureDetail carries the classified failure or error of a testcase. Body
// is emitted as a CDATA block; an empty body (undefined steps) emits none.
type FailureDetail struct {
	Type    string `xml:"type,attr"`
	Message string `xml:"message,attr"`
	Body    string `xml:",cdata"`
}

// SkippedMarker is the empty element attached to skipped scenarios that have
// no undefined step.
type SkippedMarker struct{}

// Output wraps captured text for a system-out or system-err element. Content
// is emitted verbatim inside a CDATA section, never entity-escaped. The one
// sequence CDATA cannot hold literally is the "]]>" terminator; the
// serializer splits it across two CDATA sections so the document stays
// well-formed and the decoded text round-trips.
type Output struct {
	Content string `xml:",cdata"`
}

// NewTestSuite assembles the serializable testsuite element from a completed
// feature report.
func NewTestSuite(report *FeatureReport) TestSuite {
	return TestSuite{
		Name:      fmt.Sprintf("%s.%s", report.Classname, report.Feature.DisplayName()),
		Tests:     report.Tests,
		Errors:    report.Errors,
		Failures:  report.Failures,
		Skipped:   report.Skipped,
		Time:      formatSeconds(report.Feature.Duration),
		TestCases: report.TestCases,
	}
}

// Render serializes the testsuite as a UTF-8 XML document with declaration
// header.
func (s TestSuite) Render() ([]byte, error) {
	body, err := xml.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize testsuite %s: %w", s.Name, err)
	}
	out := make([]byte, 0, len(xml.Header)+len(body)+1)
	out = append(out, xml.Header...)
	out = append(out, body...)
	out = append(out, '\n')
	return out, nil
}

// cdataText prepares captured text for a CDATA section. Terminal escape
// sequences are meaningless in an XML report and get stripped here.
func cdataText(text string) string {
	return stripansi.Strip(text)
}

// formatSeconds renders a duration in seconds rounded to 6 decimal digits,
// without trailing zeros.
func formatSeconds(seconds float64) string {
	rounded := math.Round(seconds*1e6) / 1e6
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
