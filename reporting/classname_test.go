package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveClassname(t *testing.T) {
	testCases := []struct {
		name        string
		featurePath string
		searchRoots []string
		expected    string
	}{
		{
			name:        "path relative to search root",
			featurePath: "features/a/b.feature",
			searchRoots: []string{"features"},
			expected:    "a.b",
		},
		{
			name:        "first matching root wins",
			featurePath: "acceptance/auth/login.feature",
			searchRoots: []string{"features", "acceptance"},
			expected:    "auth.login",
		},
		{
			name:        "no matching root falls back to base name",
			featurePath: "somewhere/else/login.feature",
			searchRoots: []string{"features"},
			expected:    "login",
		},
		{
			name:        "no roots configured",
			featurePath: "features/a/b.feature",
			expected:    "b",
		},
		{
			name:        "windows separators become dots",
			featurePath: `features\a\b.feature`,
			searchRoots: []string{"features"},
			expected:    "a.b",
		},
		{
			name:        "only the last extension is stripped",
			featurePath: "features/v1.2/login.feature",
			searchRoots: []string{"features"},
			expected:    "v1.2.login",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, DeriveClassname(tc.featurePath, tc.searchRoots))
		})
	}
}
