package types

import "fmt"

// Location identifies where a step is defined in its source file
type Location struct {
	File string
	Line int
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// Exception describes the error that caused a step to fail.
// Assertion distinguishes a violated expectation from an unexpected
// runtime fault; reports classify the former as a failure and the
// latter as an error.
type Exception struct {
	Type      string
	Message   string
	Assertion bool
}

func (e *Exception) String() string {
	if e == nil {
		return ""
	}
	return e.Message
}

// Step captures the outcome of a single step execution.
// Exception is nil unless the step failed with a recorded exception;
// ErrorMessage holds the engine's full failure text either way.
type Step struct {
	Keyword      string
	Name         string
	Status       Status
	Exception    *Exception
	ErrorMessage string
	Location     Location
}

// Scenario captures the outcome of one concrete scenario: its ordered steps,
// overall status, duration in seconds, and any captured output streams.
// Scenarios are produced by the execution engine and are read-only here.
type Scenario struct {
	Name     string
	Status   Status
	Duration float64
	Steps    []*Step
	Stdout   string
	Stderr   string
}

// Scenarios implements ScenarioContainer; a plain scenario reports itself.
func (s *Scenario) Scenarios() []*Scenario {
	return []*Scenario{s}
}

// ScenarioOutline is a templated scenario expanded at execution time into one
// concrete scenario per example row. The outline itself is never reported,
// only its expansions.
type ScenarioOutline struct {
	Name     string
	Expanded []*Scenario
}

// Scenarios implements ScenarioContainer, yielding the expansions in
// generation order.
func (o *ScenarioOutline) Scenarios() []*Scenario {
	return o.Expanded
}

// ScenarioContainer is the iteration contract shared by Scenario and
// ScenarioOutline: both yield the concrete scenarios a report covers.
type ScenarioContainer interface {
	Scenarios() []*Scenario
}

// Feature is a named, ordered collection of scenarios and scenario outlines
// sourced from one file. Duration is the aggregate execution time in seconds.
type Feature struct {
	Name     string
	Path     string
	Duration float64
	Elements []ScenarioContainer
}

// ReportableScenarios returns every concrete scenario of the feature in
// execution order, expanding outlines in place.
func (f *Feature) ReportableScenarios() []*Scenario {
	var scenarios []*Scenario
	for _, element := range f.Elements {
		scenarios = append(scenarios, element.Scenarios()...)
	}
	return scenarios
}

// DisplayName returns the feature name, falling back to the source path for
// unnamed features.
func (f *Feature) DisplayName() string {
	if f.Name != "" {
		return f.Name
	}
	return f.Path
}
