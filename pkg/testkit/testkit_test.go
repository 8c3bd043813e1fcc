package testkit_test

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/storefront/pkg/testkit"
)

func echoHandler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /login", func(w http.ResponseWriter, _ *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "session_token", Value: "ada"})
	})
	mux.HandleFunc("GET /me", func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie("session_token")
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "ok",
			"data":    map[string]any{"user": c.Value, "tags": []string{"a", "b"}, "id": 1},
		})
	})
	mux.HandleFunc("POST /echo", func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		_, _ = w.Write([]byte(`{"data":` + string(raw) + `}`))
	})
	return mux
}

func TestRunDirCarriesCookiesBetweenSteps(t *testing.T) {
	testkit.RunDir(t, "testdata", echoHandler)
}

func TestDiffJSONComparesOnlyExpectedKeys(t *testing.T) {
	var exp, act any
	require.NoError(t, json.Unmarshal([]byte(`{"a":1,"b":{"c":[1,2]}}`), &exp))
	require.NoError(t, json.Unmarshal([]byte(`{"a":1,"b":{"c":[1,2],"d":true},"e":"x"}`), &act))
	assert.Empty(t, testkit.DiffJSON("", exp, act))

	require.NoError(t, json.Unmarshal([]byte(`{"a":2,"b":{"c":[1]}}`), &act))
	diffs := testkit.DiffJSON("", exp, act)
	assert.Len(t, diffs, 2)
}

func TestLoadScenarioRejectsIncompleteSteps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"bad","steps":[{"requestUrl":"/x"}]}`), 0o644))

	_, err := testkit.LoadScenario(path)
	assert.ErrorContains(t, err, "expectedCode")

	require.NoError(t, os.WriteFile(path, []byte(`{"name":"empty","steps":[]}`), 0o644))
	_, err = testkit.LoadScenario(path)
	assert.ErrorContains(t, err, "no steps")
}
