package cuke

import (
	"strconv"
	"strings"

	"cukejunit/types"
)

// Convert maps decoded Cucumber JSON features onto the report model.
//
// The wire format carries no exception objects, only error_message text, so
// converted failures have a nil Exception and classify as failures rather
// than errors. Background elements are skipped; their steps are already
// reflected in each scenario's outcome by the engine.
func Convert(features []Feature) []*types.Feature {
	converted := make([]*types.Feature, 0, len(features))
	for _, cf := range features {
		converted = append(converted, convertFeature(cf))
	}
	return converted
}

func convertFeature(cf Feature) *types.Feature {
	feature := &types.Feature{
		Name: cf.Name,
		Path: cf.URI,
	}
	for _, element := range cf.Elements {
		if element.Type != "" && element.Type != "scenario" {
			continue
		}
		scenario := convertElement(cf.URI, element)
		feature.Duration += scenario.Duration
		feature.Elements = append(feature.Elements, scenario)
	}
	return feature
}

func convertElement(uri string, element Element) *types.Scenario {
	scenario := &types.Scenario{Name: element.Name}
	for _, cs := range element.Steps {
		step := &types.Step{
			Keyword:      strings.TrimSpace(cs.Keyword),
			Name:         cs.Name,
			Status:       stepStatus(cs.Result.Status),
			ErrorMessage: cs.Result.ErrorMessage,
			Location:     stepLocation(uri, cs),
		}
		scenario.Duration += float64(cs.Result.Duration) / 1e9
		scenario.Steps = append(scenario.Steps, step)
	}
	scenario.Status = scenarioStatus(scenario.Steps)
	return scenario
}

func stepStatus(status string) types.Status {
	switch status {
	case "passed":
		return types.StatusPassed
	case "failed":
		return types.StatusFailed
	case "skipped":
		return types.StatusSkipped
	case "undefined", "pending", "ambiguous":
		return types.StatusUndefined
	default:
		return types.StatusUntested
	}
}

// scenarioStatus derives the scenario outcome from its steps: any failed
// step fails the scenario; otherwise any step that did not pass leaves it
// skipped.
func scenarioStatus(steps []*types.Step) types.Status {
	if len(steps) == 0 {
		return types.StatusUntested
	}
	status := types.StatusPassed
	for _, step := range steps {
		switch step.Status {
		case types.StatusFailed:
			return types.StatusFailed
		case types.StatusPassed:
		default:
			status = types.StatusSkipped
		}
	}
	return status
}

// stepLocation parses the match location ("file:line"), falling back to the
// step's own position in the feature file when no definition matched.
func stepLocation(uri string, cs Step) types.Location {
	loc := cs.Match.Location
	if i := strings.LastIndex(loc, ":"); i > 0 {
		if line, err := strconv.Atoi(loc[i+1:]); err == nil {
			return types.Location{File: loc[:i], Line: line}
		}
	}
	if loc != "" {
		return types.Location{File: loc}
	}
	return types.Location{File: uri, Line: cs.Line}
}
