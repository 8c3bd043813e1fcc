package testkit

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
)

// Run executes one scenario file against the handler built by newHandler.
func Run(t *testing.T, path string, newHandler func(t *testing.T) http.Handler) {
	t.Helper()

	s, err := LoadScenario(path)
	if err != nil {
		t.Fatal(err)
	}
	t.Run(s.Name, func(t *testing.T) {
		runScenario(t, newHandler(t), s)
	})
}

// RunDir runs every *.json scenario in dir, each with a fresh handler.
func RunDir(t *testing.T, dir string, newHandler func(t *testing.T) http.Handler) {
	t.Helper()

	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil || len(paths) == 0 {
		t.Fatalf("testkit: no scenario files found in %q", dir)
	}
	for _, path := range paths {
		Run(t, path, newHandler)
	}
}

func runScenario(t *testing.T, handler http.Handler, s *Scenario) {
	t.Helper()
	jar := map[string]*http.Cookie{}

	for i, st := range s.Steps {
		label := st.Name
		if label == "" {
			label = fmt.Sprintf("step %d: %s %s", i, st.RequestMethod, st.RequestURL)
		}

		body, err := s.body(st)
		if err != nil {
			t.Fatalf("[%s] read body: %v", label, err)
		}
		var r io.Reader
		if body != nil {
			r = bytes.NewReader(body)
		}

		method := strings.ToUpper(st.RequestMethod)
		if method == "" {
			method = http.MethodGet
		}
		req := httptest.NewRequest(method, st.RequestURL, r)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		for k, v := range st.Headers {
			req.Header.Set(k, v)
		}
		for _, c := range jar {
			req.AddCookie(c)
		}

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		for _, c := range rec.Result().Cookies() {
			if c.MaxAge < 0 {
				delete(jar, c.Name)
				continue
			}
			jar[c.Name] = c
		}

		if !AssertStatusCode(t, label, st.ExpectedCode, rec) {
			return
		}
		AssertJSONSubset(t, label, st.ExpectedBody, rec.Body.Bytes())
	}
}
