// Package testkit runs JSON-described API scenarios against an http.Handler.
//
// A scenario file lists steps that share one handler and one cookie jar, so
// a step can log in and later steps reuse the session:
//
//	{
//	  "name": "brand lifecycle",
//	  "steps": [
//	    {"requestMethod": "POST", "requestUrl": "/brand", "body": {"title": "Acme"},
//	     "expectedCode": 201, "expectedBody": {"data": {"title": "Acme"}}}
//	  ]
//	}
//
// expectedBody is matched as a subset: only the keys it names are compared.
//
//	func TestScenarios(t *testing.T) {
//	    testkit.RunDir(t, "testdata", func(t *testing.T) http.Handler { return newHandler(t) })
//	}
package testkit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Scenario is one JSON file.
type Scenario struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Steps       []Step `json:"steps"`

	path string
}

// Step is a single request and its expectations.
type Step struct {
	Name          string            `json:"name"`
	RequestMethod string            `json:"requestMethod"`
	RequestURL    string            `json:"requestUrl"`
	Headers       map[string]string `json:"headers"`
	Body          json.RawMessage   `json:"body"`

	// RequestFileName is a body file relative to the scenario, used when
	// Body is empty.
	RequestFileName string `json:"requestFileName"`

	ExpectedCode int             `json:"expectedCode"`
	ExpectedBody json.RawMessage `json:"expectedBody"`
}

// LoadScenario reads and checks a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("testkit: resolve path %q: %w", path, err)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("testkit: read %q: %w", abs, err)
	}

	var s Scenario
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("testkit: parse %q: %w", abs, err)
	}
	s.path = abs
	if s.Name == "" {
		s.Name = filepath.Base(abs)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("testkit: %q has no steps", abs)
	}
	for i, st := range s.Steps {
		if st.RequestURL == "" {
			return nil, fmt.Errorf("testkit: %q step %d: requestUrl is required", abs, i)
		}
		if st.ExpectedCode == 0 {
			return nil, fmt.Errorf("testkit: %q step %d: expectedCode is required", abs, i)
		}
	}
	return &s, nil
}

// body returns the request body for step i.
func (s *Scenario) body(st Step) ([]byte, error) {
	if len(st.Body) > 0 {
		return st.Body, nil
	}
	if st.RequestFileName == "" {
		return nil, nil
	}
	return os.ReadFile(filepath.Join(filepath.Dir(s.path), st.RequestFileName))
}
