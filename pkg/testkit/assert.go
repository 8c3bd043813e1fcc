package testkit

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertStatusCode reports a mismatch together with the response body.
func AssertStatusCode(t *testing.T, label string, want int, rec *httptest.ResponseRecorder) bool {
	t.Helper()
	return assert.Equal(t, want, rec.Code, "[%s] status code mismatch\nbody: %s", label, rec.Body.String())
}

// AssertJSONSubset checks that every value named in expected appears in
// actual. An empty expected body always passes.
func AssertJSONSubset(t *testing.T, label string, expected, actual []byte) bool {
	t.Helper()
	if len(expected) == 0 {
		return true
	}

	var exp, act any
	if err := json.Unmarshal(expected, &exp); err != nil {
		t.Errorf("[%s] expected body is not valid JSON: %v", label, err)
		return false
	}
	if err := json.Unmarshal(actual, &act); err != nil {
		t.Errorf("[%s] response is not valid JSON: %v\nbody: %s", label, err, actual)
		return false
	}

	diffs := DiffJSON("", exp, act)
	if len(diffs) > 0 {
		t.Errorf("[%s] response body mismatch:\n%s\nbody: %s", label, strings.Join(diffs, "\n"), actual)
		return false
	}
	return true
}

// DiffJSON lists the places where actual does not contain expected. Objects
// compare only the expected keys; arrays must match in length.
func DiffJSON(path string, expected, actual any) []string {
	var diffs []string
	switch exp := expected.(type) {
	case map[string]any:
		act, ok := actual.(map[string]any)
		if !ok {
			return append(diffs, fmt.Sprintf("  %s: expected object, got %T", keyPath(path), actual))
		}
		for k, ev := range exp {
			p := keyPath(path) + "." + k
			av, exists := act[k]
			if !exists {
				diffs = append(diffs, fmt.Sprintf("  %s: missing in actual", p))
				continue
			}
			diffs = append(diffs, DiffJSON(p, ev, av)...)
		}
	case []any:
		act, ok := actual.([]any)
		if !ok {
			return append(diffs, fmt.Sprintf("  %s: expected array, got %T", keyPath(path), actual))
		}
		if len(exp) != len(act) {
			diffs = append(diffs, fmt.Sprintf("  %s: array length expected=%d actual=%d", keyPath(path), len(exp), len(act)))
		}
		for i := 0; i < len(exp) && i < len(act); i++ {
			diffs = append(diffs, DiffJSON(fmt.Sprintf("%s[%d]", keyPath(path), i), exp[i], act[i])...)
		}
	default:
		if fmt.Sprintf("%v", expected) != fmt.Sprintf("%v", actual) {
			diffs = append(diffs, fmt.Sprintf("  %s:\n    - %v\n    + %v", keyPath(path), expected, actual))
		}
	}
	return diffs
}

func keyPath(path string) string {
	if path == "" {
		return "root"
	}
	return strings.TrimPrefix(path, ".")
}
