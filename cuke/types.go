// Package cuke decodes Cucumber JSON result documents, the wire format BDD
// execution engines emit, into the result model consumed by the report
// builder.
package cuke

// Feature mirrors one feature entry of a Cucumber JSON results document.
type Feature struct {
	URI      string    `json:"uri"`
	ID       string    `json:"id"`
	Keyword  string    `json:"keyword"`
	Name     string    `json:"name"`
	Elements []Element `json:"elements"`
}

// Element is a scenario-level entry. Scenario outlines appear pre-expanded,
// one element per example row.
type Element struct {
	Keyword string `json:"keyword"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Line    int    `json:"line"`
	Steps   []Step `json:"steps"`
}

// Step carries one step execution record.
type Step struct {
	Keyword string `json:"keyword"`
	Name    string `json:"name"`
	Line    int    `json:"line"`
	Match   Match  `json:"match"`
	Result  Result `json:"result"`
}

// Match points at the step definition that matched, as "file:line".
type Match struct {
	Location string `json:"location"`
}

// Result contains the step outcome. Duration is in nanoseconds.
type Result struct {
	Status       string `json:"status"`
	Duration     int64  `json:"duration"`
	ErrorMessage string `json:"error_message"`
}
