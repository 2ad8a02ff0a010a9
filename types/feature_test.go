package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportableScenariosExpandsOutlinesInOrder(t *testing.T) {
	first := &Scenario{Name: "first"}
	rowA := &Scenario{Name: "outline row A"}
	rowB := &Scenario{Name: "outline row B"}
	last := &Scenario{Name: "last"}

	feature := &Feature{
		Name: "ordering",
		Path: "features/ordering.feature",
		Elements: []ScenarioContainer{
			first,
			&ScenarioOutline{Name: "outline", Expanded: []*Scenario{rowA, rowB}},
			last,
		},
	}

	scenarios := feature.ReportableScenarios()
	assert.Len(t, scenarios, 4)
	assert.Equal(t, []*Scenario{first, rowA, rowB, last}, scenarios)
}

func TestReportableScenariosEmptyFeature(t *testing.T) {
	feature := &Feature{Name: "empty"}
	assert.Empty(t, feature.ReportableScenarios())
}

func TestStatusCountsAsSkipped(t *testing.T) {
	testCases := []struct {
		status   Status
		expected bool
	}{
		{StatusPassed, false},
		{StatusFailed, false},
		{StatusSkipped, true},
		{StatusUntested, true},
		{StatusUndefined, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.status), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.CountsAsSkipped())
		})
	}
}

func TestFeatureDisplayName(t *testing.T) {
	named := &Feature{Name: "Login", Path: "features/login.feature"}
	assert.Equal(t, "Login", named.DisplayName())

	unnamed := &Feature{Path: "features/login.feature"}
	assert.Equal(t, "features/login.feature", unnamed.DisplayName())
}

func TestLocationString(t *testing.T) {
	loc := Location{File: "features/steps/login.go", Line: 42}
	assert.Equal(t, "features/steps/login.go:42", loc.String())
}
