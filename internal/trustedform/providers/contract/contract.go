// Package contract provides shared test harnesses every adapter runs against.
package contract

import (
	"net/http"
	"strings"
	"testing"

	"trustedform/internal/trustedform/lead"
	"trustedform/internal/trustedform/payload"
	"trustedform/internal/trustedform/providers"
)

// ResponseTest feeds a canned API response through an adapter
type ResponseTest struct {
	Name            string
	Vars            *lead.Vars
	Status          int
	Header          http.Header
	Body            string
	ExpectedOutcome string
	ValidateFunc    func(appended payload.Appended) error
}

// ContractSuite is a collection of response tests for one adapter
type ContractSuite struct {
	Adapter providers.Adapter
	Tests   []ResponseTest
}

// Run executes all contract tests in the suite
func (s *ContractSuite) Run(t *testing.T) {
	for _, test := range s.Tests {
		t.Run(test.Name, func(t *testing.T) {
			appended := s.Adapter.Response(test.Vars, &providers.Response{
				Status: test.Status,
				Header: test.Header,
				Body:   []byte(test.Body),
			})

			// Every result carries an outcome from the shared taxonomy
			outcome, _ := payload.OutcomeOf(appended)
			switch outcome {
			case providers.OutcomeSuccess, providers.OutcomeFailure, providers.OutcomeError:
			default:
				t.Fatalf("outcome %q is not part of the taxonomy", outcome)
			}
			if test.ExpectedOutcome != "" && outcome != test.ExpectedOutcome {
				t.Errorf("expected outcome %s, got %s", test.ExpectedOutcome, outcome)
			}

			if test.ValidateFunc != nil {
				if err := test.ValidateFunc(appended); err != nil {
					t.Errorf("custom validation failed: %v", err)
				}
			}
		})
	}
}

// CapabilityTest validates that adapter capabilities are correctly declared
type CapabilityTest struct {
	Adapter providers.Adapter
}

// Run executes a capability test
func (ct *CapabilityTest) Run(t *testing.T) {
	caps := ct.Adapter.Capabilities()

	if ct.Adapter.ID() == "" {
		t.Error("id not set")
	}
	if caps.Protocol == "" {
		t.Error("protocol not set")
	}
	if caps.Version == "" {
		t.Error("version not set")
	}
	if len(caps.RequestVariables) == 0 {
		t.Error("no request variables declared")
	}

	// The outcome and reason fields are part of every adapter's contract
	names := map[string]bool{}
	for _, v := range caps.ResponseVariables {
		if v.Description == "" {
			t.Errorf("response variable %s has no description", v.Name)
		}
		names[strings.TrimPrefix(v.Name, ct.Adapter.ID()+".")] = true
	}
	for _, required := range []string{"outcome", "reason"} {
		if !names[required] && !names["data_service."+required] {
			t.Errorf("response variable %s not declared", required)
		}
	}

	t.Logf("Adapter %s capabilities:", ct.Adapter.ID())
	t.Logf("  Protocol: %s", caps.Protocol)
	t.Logf("  Version: %s", caps.Version)
	t.Logf("  Request variables: %d", len(caps.RequestVariables))
	t.Logf("  Response variables: %d", len(caps.ResponseVariables))
}

// ErrorContractTest validates that a failed exchange maps to an error outcome
type ErrorContractTest struct {
	Name    string
	Adapter providers.Adapter
	Vars    *lead.Vars
	Err     error
}

// Run executes an error contract test
func (ect *ErrorContractTest) Run(t *testing.T) {
	var appended payload.Appended
	if tr, ok := ect.Adapter.(providers.TransportResponder); ok {
		appended = tr.TransportError(ect.Vars, ect.Err)
	} else {
		appended = providers.TransportFailure(ect.Err)
	}

	outcome, reason := payload.OutcomeOf(appended)
	if outcome != providers.OutcomeError {
		t.Errorf("expected outcome error, got %q", outcome)
	}
	if reason == "" {
		t.Error("expected a reason for the failed exchange")
	}
}
