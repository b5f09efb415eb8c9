package dataservice

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trustedform/internal/trustedform/lead"
	"trustedform/internal/trustedform/payload"
	"trustedform/internal/trustedform/providers"
	"trustedform/internal/trustedform/providers/contract"
)

func baseVars() *lead.Vars {
	return &lead.Vars{
		Lead: lead.Lead{
			Email:              "test@activeprospect.com",
			Phone1:             "5122981234",
			TrustedFormCertURL: "https://cert.trustedform.com/533c80270218239ec3000012",
		},
		TrustedForm: lead.Options{
			ScanRequiredText: lead.Texts("some disclosure text", "other disclosure text"),
		},
	}
}

func peekResponse() map[string]any {
	return map[string]any{
		"age": 44,
		"fingerprints": map[string]any{
			"matching":     []any{"test@activeprospect.com"},
			"non_matching": []any{"5122981234"},
		},
		"masked": true,
		"scans": map[string]any{
			"found":     []any{"some disclosure text", "some disclosure text"},
			"not_found": []any{"other disclosure text"},
		},
		"warnings": []any{"some warning"},
		"cert": map[string]any{
			"cert_id":          "533c80270218239ec3000012",
			"browser":          "Chrome 84.0.4147",
			"device":           "Linux",
			"operating_system": "Linux",
			"created_at":       "2020-10-19T14:01:44Z",
			"event_duration":   38,
			"expires_at":       "2020-10-22T14:01:44Z",
			"framed":           true,
			"geo": map[string]any{
				"lat":          45.8696,
				"lon":          -119.688,
				"city":         "Boardman",
				"state":        "OR",
				"postal_code":  "97818",
				"country_code": "US",
				"time_zone":    "America/Los_Angeles",
			},
			"ip":              "52.35.61.232",
			"page_url":        "https://activeprospect.com/example",
			"parent_page_url": "https://activeprospect.com",
			"user_agent":      "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/84.0.4147.135 Safari/537.36",
			"wpm":             50,
			"kpm":             112,
		},
	}
}

func respond(t *testing.T, status int, body any) payload.Appended {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	return New(ID, "123456").Response(baseVars(), &providers.Response{Status: status, Body: raw})
}

func TestRequest(t *testing.T) {
	req, err := New(ID, "123456").Request(baseVars())
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "https://cert.trustedform.com/533c80270218239ec3000012/peek", req.URL)
	assert.Equal(t, "application/x-www-form-urlencoded", req.Header.Get("Content-Type"))
	assert.Equal(t, "Bearer 123456", req.Header.Get("Authorization"))
	assert.Equal(t,
		"scan%5B%5D=some+disclosure+text&scan%5B%5D=other+disclosure+text&phone_1=5122981234&email=test%40activeprospect.com",
		string(req.Body))
}

func TestRequestForbiddenText(t *testing.T) {
	vars := baseVars()
	vars.TrustedForm.ScanRequiredText = nil
	vars.TrustedForm.ScanForbiddenText = lead.Text("casino")

	req, err := New(ID, "123456").Request(vars)
	require.NoError(t, err)
	assert.Equal(t, "scan%5B%5D%21=casino&phone_1=5122981234&email=test%40activeprospect.com", string(req.Body))
}

func TestRequestPrefersLeadToken(t *testing.T) {
	vars := baseVars()
	vars.Token = "per-lead"

	req, err := New(ID, "123456").Request(vars)
	require.NoError(t, err)
	assert.Equal(t, "Bearer per-lead", req.Header.Get("Authorization"))
	assert.Equal(t, "per-lead", vars.Token, "the lead's token is never rewritten")
}

func TestRequestWithoutToken(t *testing.T) {
	_, err := New(ID, "").Request(baseVars())
	assert.Error(t, err)
}

func TestResponseSuccess(t *testing.T) {
	got := respond(t, http.StatusCreated, peekResponse())

	want := payload.Appended{
		ResultKey: payload.Appended{
			"outcome":                   "success",
			"age":                       float64(44),
			"browser":                   "Chrome 84.0.4147",
			"created_at":                "2020-10-19T14:01:44Z",
			"device":                    "Linux",
			"event_duration":            float64(38),
			"expires_at":                "2020-10-22T14:01:44Z",
			"framed":                    true,
			"city":                      "Boardman",
			"country_code":              "US",
			"lat":                       45.8696,
			"lon":                       -119.688,
			"postal_code":               "97818",
			"state":                     "OR",
			"time_zone":                 "America/Los_Angeles",
			"ip":                        "52.35.61.232",
			"wpm":                       float64(50),
			"kpm":                       float64(112),
			"page_url":                  "https://activeprospect.com/example",
			"operating_system":          "Linux",
			"parent_page_url":           "https://activeprospect.com",
			"cert_id":                   "533c80270218239ec3000012",
			"user_agent":                "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/84.0.4147.135 Safari/537.36",
			"fingerprints_matching":     []any{"test@activeprospect.com"},
			"fingerprints_non_matching": []any{"5122981234"},
			"masked":                    true,
			"scans_found":               []string{"some disclosure text"},
			"scans_not_found":           []string{"other disclosure text"},
			"warnings":                  []any{"some warning"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func TestResponseWithoutScans(t *testing.T) {
	body := peekResponse()
	delete(body, "scans")

	got := respond(t, http.StatusCreated, body)[ResultKey].(payload.Appended)
	assert.Equal(t, []string{}, got["scans_found"])
	assert.Equal(t, []string{}, got["scans_not_found"])
}

func TestResponseErrors(t *testing.T) {
	t.Run("client error reports the detail", func(t *testing.T) {
		got := respond(t, http.StatusNotFound, map[string]any{"errors": map[string]any{"detail": "cert not found"}})
		assert.Equal(t, payload.Appended{ResultKey: payload.Appended{"outcome": "failure", "reason": "cert not found"}}, got)
	})

	t.Run("server error is unknown", func(t *testing.T) {
		got := respond(t, http.StatusBadGateway, map[string]any{})
		assert.Equal(t, payload.Appended{ResultKey: payload.Appended{"outcome": "error", "reason": "unknown error (502)"}}, got)
	})

	t.Run("unparseable body", func(t *testing.T) {
		got := New(ID, "123456").Response(baseVars(), &providers.Response{Status: http.StatusInternalServerError, Body: []byte("internal server error")})
		assert.Equal(t, payload.Appended{ResultKey: payload.Appended{"outcome": "error", "reason": providers.ParseFailureReason}}, got)
	})
}

func TestAliases(t *testing.T) {
	for _, id := range []string{ID, DecisionServicePing, DecisionServicePost} {
		p := New(id, "123456")
		assert.Equal(t, id, p.ID())
		(&contract.CapabilityTest{Adapter: p}).Run(t)
	}
}

func TestContract(t *testing.T) {
	raw, err := json.Marshal(peekResponse())
	require.NoError(t, err)

	suite := &contract.ContractSuite{
		Adapter: New(ID, "123456"),
		Tests: []contract.ResponseTest{
			{Name: "success", Vars: baseVars(), Status: http.StatusCreated, Body: string(raw), ExpectedOutcome: providers.OutcomeSuccess},
			{Name: "not found", Vars: baseVars(), Status: http.StatusNotFound, Body: `{"errors":{"detail":"cert not found"}}`, ExpectedOutcome: providers.OutcomeFailure},
			{Name: "outage", Vars: baseVars(), Status: http.StatusServiceUnavailable, Body: `{}`, ExpectedOutcome: providers.OutcomeError},
		},
	}
	suite.Run(t)

	(&contract.ErrorContractTest{Name: "timeout", Adapter: New(ID, "123456"), Vars: baseVars(), Err: errors.New("i/o timeout")}).Run(t)
}
