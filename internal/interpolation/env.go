// Package interpolation expands environment variable references in configuration text.
package interpolation

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/liatrio/liatrio-demo-api/internal/config/errz"
)

// Pattern for ${VAR_NAME} and ${VAR_NAME:default} syntax - captures colon explicitly
var envVarWithDefaultPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(:)?([^}]*)\}`)

// LookupFunc resolves a variable name, reporting whether it was set.
// os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// ExpandEnvVars expands references against the process environment. See ExpandWith.
func ExpandEnvVars(input string) (string, error) {
	return ExpandWith(input, os.LookupEnv)
}

// ExpandWith expands variable references in the format:
//
//	${VAR_NAME}
//	${VAR_NAME:default_value}
//
// A set variable always wins, even when empty. An unset variable falls back to
// the default when a colon is present; otherwise the reference is left in place
// and an error wrapping errz.ErrMissingEnvVar is returned for it. All missing
// variables are reported together.
func ExpandWith(input string, lookup LookupFunc) (string, error) {
	if input == "" {
		return "", nil
	}
	if lookup == nil {
		lookup = os.LookupEnv
	}

	var missingVars []error
	result := envVarWithDefaultPattern.ReplaceAllStringFunc(input, func(match string) string {
		// [full_match, varName, colon, defaultValue]
		submatches := envVarWithDefaultPattern.FindStringSubmatch(match)
		varName := submatches[1]
		hasDefault := submatches[2] == ":"

		if value, ok := lookup(varName); ok {
			return value
		}
		if hasDefault {
			return submatches[3]
		}

		missingVars = append(missingVars, fmt.Errorf("%w: %s", errz.ErrMissingEnvVar, varName))
		return match
	})

	return result, errors.Join(missingVars...)
}
