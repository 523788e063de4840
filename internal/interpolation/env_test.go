package interpolation

import (
	"testing"

	"github.com/liatrio/liatrio-demo-api/internal/config/errz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapLookup(vars map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestExpandWith(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		input       string
		envVars     map[string]string
		expected    string
		expectError bool
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "no references",
			input:    "environment = \"staging\"",
			expected: "environment = \"staging\"",
		},
		{
			name:     "single variable",
			input:    "port = ${PORT}",
			envVars:  map[string]string{"PORT": "9090"},
			expected: "port = 9090",
		},
		{
			name:     "default used when unset",
			input:    "host = \"${HOST:0.0.0.0}\"",
			expected: "host = \"0.0.0.0\"",
		},
		{
			name:     "set value wins over default",
			input:    "host = \"${HOST:0.0.0.0}\"",
			envVars:  map[string]string{"HOST": "127.0.0.1"},
			expected: "host = \"127.0.0.1\"",
		},
		{
			name:     "empty default",
			input:    "[${SUFFIX:}]",
			expected: "[]",
		},
		{
			name:     "set but empty value wins",
			input:    "[${SUFFIX:fallback}]",
			envVars:  map[string]string{"SUFFIX": ""},
			expected: "[]",
		},
		{
			name:     "multiple variables",
			input:    "${A}/${B}/${C}",
			envVars:  map[string]string{"A": "a", "B": "b", "C": "c"},
			expected: "a/b/c",
		},
		{
			name:        "missing variable kept in place",
			input:       "environment = \"${DEPLOY_ENV}\"",
			expected:    "environment = \"${DEPLOY_ENV}\"",
			expectError: true,
		},
		{
			name:        "mixed defined and missing",
			input:       "${DEFINED}/${MISSING}",
			envVars:     map[string]string{"DEFINED": "value"},
			expected:    "value/${MISSING}",
			expectError: true,
		},
		{
			name:     "bare dollar is not a reference",
			input:    "$PORT",
			expected: "$PORT",
		},
		{
			name:     "leading digit is not a reference",
			input:    "${1PORT}",
			expected: "${1PORT}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result, err := ExpandWith(tt.input, mapLookup(tt.envVars))
			if tt.expectError {
				require.Error(t, err)
				assert.ErrorIs(t, err, errz.ErrMissingEnvVar)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestExpandWith_ReportsEveryMissingVariable(t *testing.T) {
	t.Parallel()
	_, err := ExpandWith("${ONE}-${TWO}", mapLookup(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ONE")
	assert.Contains(t, err.Error(), "TWO")
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("LIATRIO_INTERPOLATION_TEST", "from-env")

	result, err := ExpandEnvVars("value=${LIATRIO_INTERPOLATION_TEST}")
	require.NoError(t, err)
	assert.Equal(t, "value=from-env", result)
}
