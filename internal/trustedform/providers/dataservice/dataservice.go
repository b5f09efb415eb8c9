// Package dataservice implements the TrustedForm data service "peek", which
// reads certificate data without claiming the certificate.
package dataservice

import (
	"fmt"
	"net/http"

	"trustedform/internal/trustedform/certurl"
	"trustedform/internal/trustedform/lead"
	"trustedform/internal/trustedform/payload"
	"trustedform/internal/trustedform/providers"
)

// Module ids served by the peek adapter. The decision service ids are aliases
// kept for flows created before the product was renamed.
const (
	ID                  = "data_service"
	DecisionServicePing = "decision_service_ping"
	DecisionServicePost = "decision_service_post"
)

// ResultKey nests every appended field.
const ResultKey = "data_service"

// Provider peeks at a certificate with a bearer token.
type Provider struct {
	id    string
	token string
}

// New creates a peek adapter registered under id. token is used when the
// lead does not carry its own.
func New(id, token string) *Provider {
	return &Provider{id: id, token: token}
}

func (p *Provider) ID() string { return p.id }

func (p *Provider) Capabilities() providers.Capabilities {
	return providers.Capabilities{
		Protocol:          providers.ProtocolForm,
		Version:           "peek",
		Name:              "TrustedForm Data Service",
		RequestVariables:  RequestVariables,
		ResponseVariables: responseVariables,
		EnvVariables:      []string{"TRUSTEDFORM_DATA_SERVICE_TOKEN"},
	}
}

func (p *Provider) Validate(vars *lead.Vars) string {
	return certurl.Validate(vars.Lead.TrustedFormCertURL)
}

func (p *Provider) Request(vars *lead.Vars) (*providers.Request, error) {
	return PeekRequest(vars, p.token, false)
}

func (p *Provider) Response(_ *lead.Vars, res *providers.Response) payload.Appended {
	event, err := payload.Parse(res.Body)
	if err != nil {
		return nest(payload.Outcome(providers.OutcomeError, providers.ParseFailureReason))
	}

	switch {
	case res.Status == http.StatusCreated:
		result := payload.Appended{payload.KeyOutcome: providers.OutcomeSuccess}
		result.Merge(MapEvent(event)).
			Copy("masked", event.Get("masked"))
		return nest(result)
	case res.Status >= 400 && res.Status < 500:
		return nest(Failure(event))
	default:
		return nest(UnknownError(res.Status))
	}
}

// TransportError nests the failed exchange under the product key.
func (p *Provider) TransportError(_ *lead.Vars, err error) payload.Appended {
	return nest(providers.TransportFailure(err))
}

// Token resolves the bearer token for a lead.
func Token(vars *lead.Vars, configured string) string {
	if vars.Token != "" {
		return vars.Token
	}
	return configured
}

// PeekRequest builds the form POST to <cert>/peek. The insights product sends
// the scan delimiter too.
func PeekRequest(vars *lead.Vars, configuredToken string, withDelimiter bool) (*providers.Request, error) {
	token := Token(vars, configuredToken)
	if token == "" {
		return nil, fmt.Errorf("no data service token configured")
	}

	var form payload.Form
	form.AddAll("scan[]", vars.Required()).
		AddAll("scan[]!", vars.Forbidden())
	if withDelimiter {
		form.Add("scan_delimiter", vars.ScanDelimiter())
	}
	form.Add("phone_1", vars.Lead.Phone1).
		Add("phone_2", vars.Lead.Phone2).
		Add("phone_3", vars.Lead.Phone3).
		Add("email", vars.Lead.Email)

	header := http.Header{}
	header.Set("Content-Type", "application/x-www-form-urlencoded")
	header.Set("Authorization", providers.BearerAuth(token))

	return &providers.Request{
		Method: http.MethodPost,
		URL:    certurl.Format(vars.Lead.TrustedFormCertURL) + "/peek",
		Header: header,
		Body:   []byte(form.Encode()),
	}, nil
}

func nest(result payload.Appended) payload.Appended {
	return payload.Appended{ResultKey: result}
}
