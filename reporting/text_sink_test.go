package reporting

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cukejunit/types"
)

func TestTextSummarySinkRendersTable(t *testing.T) {
	passing := buildReport(t, &types.Feature{
		Name: "Login",
		Path: "features/login.feature",
		Elements: []types.ScenarioContainer{
			&types.Scenario{Name: "works", Status: types.StatusPassed},
			&types.Scenario{Name: "tolerated", Status: types.StatusSkipped},
		},
	}, "features")

	failing := buildReport(t, &types.Feature{
		Name: "Checkout",
		Path: "features/checkout.feature",
		Elements: []types.ScenarioContainer{
			&types.Scenario{
				Name:   "pays",
				Status: types.StatusFailed,
				Steps: []*types.Step{{
					Keyword: "Then", Name: "payment settles", Status: types.StatusFailed,
					Exception: &types.Exception{Type: "AssertionError", Assertion: true},
				}},
			},
		},
	}, "features")

	var buf bytes.Buffer
	sink := NewTextSummarySink(&buf)
	require.NoError(t, sink.Consume(passing))
	require.NoError(t, sink.Consume(failing))
	require.NoError(t, sink.Complete())

	out := buf.String()
	assert.Contains(t, out, "Feature Results")
	assert.Contains(t, out, "Login")
	assert.Contains(t, out, "Checkout")
	assert.Contains(t, out, "PASS")
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "TOTAL")
}

func TestTextSummarySinkEmptyRun(t *testing.T) {
	var buf bytes.Buffer
	sink := NewTextSummarySink(&buf)
	require.NoError(t, sink.Complete())
	assert.Contains(t, buf.String(), "TOTAL")
}
