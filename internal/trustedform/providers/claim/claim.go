// Package claim implements the legacy TrustedForm certificate claim.
package claim

import (
	"net/http"

	"trustedform/internal/trustedform/certurl"
	"trustedform/internal/trustedform/endpoints"
	"trustedform/internal/trustedform/lead"
	"trustedform/internal/trustedform/payload"
	"trustedform/internal/trustedform/providers"
)

// ID is the module id of the claim adapter.
const ID = "claim"

// Provider claims a certificate for the account and reports what it recorded.
type Provider struct {
	endpoints endpoints.Endpoints
}

// New creates a claim adapter for the given environment.
func New(ep endpoints.Endpoints) *Provider {
	return &Provider{endpoints: ep}
}

func (p *Provider) ID() string { return ID }

func (p *Provider) Capabilities() providers.Capabilities {
	return providers.Capabilities{
		Protocol:          providers.ProtocolForm,
		Version:           "2.0",
		Name:              "TrustedForm Claim",
		RequestVariables:  requestVariables,
		ResponseVariables: responseVariables,
	}
}

func (p *Provider) Validate(vars *lead.Vars) string {
	return certurl.Validate(vars.Lead.TrustedFormCertURL)
}

func (p *Provider) Request(vars *lead.Vars) (*providers.Request, error) {
	reference := vars.TrustedForm.CustomReference
	if reference == "" {
		reference = endpoints.EventURL(p.endpoints.ClaimReferenceHost, vars.Lead.ID)
	}

	var form payload.Form
	form.AddAll("scan[]", vars.Required()).
		AddAll("scan![]", vars.Forbidden()).
		Add("reference", reference).
		Add("vendor", vars.Vendor()).
		Add("email", vars.Lead.Email).
		Add("phone_1", vars.Lead.Phone1).
		Add("phone_2", vars.Lead.Phone2).
		Add("phone_3", vars.Lead.Phone3)

	header := providers.FormHeader()
	header.Set("Authorization", providers.BasicAuth(vars.APIKey()))

	return &providers.Request{
		Method: http.MethodPost,
		URL:    certurl.Format(vars.Lead.TrustedFormCertURL),
		Header: header,
		Body:   []byte(form.Encode()),
	}, nil
}

func (p *Provider) Response(vars *lead.Vars, res *providers.Response) payload.Appended {
	event, err := payload.Parse(res.Body)
	if err != nil {
		event = payload.Doc{}
	}
	return parseResponse(vars, res.Status, res.Header, event)
}
