// Package consent implements the v3 consent claim and its "plus data" variant,
// which also reports the certificate's insight data.
package consent

import (
	"net/http"

	"trustedform/internal/trustedform/certurl"
	"trustedform/internal/trustedform/endpoints"
	"trustedform/internal/trustedform/lead"
	"trustedform/internal/trustedform/payload"
	"trustedform/internal/trustedform/providers"
)

// Module ids.
const (
	ID         = "consent"
	PlusDataID = "consent_plus_data"
)

const apiVersion = "3.0"

// Provider claims a certificate through the consent API.
type Provider struct {
	endpoints endpoints.Endpoints
	plusData  bool
}

// New creates the consent adapter.
func New(ep endpoints.Endpoints) *Provider {
	return &Provider{endpoints: ep}
}

// NewPlusData creates the consent adapter that also appends certificate data.
func NewPlusData(ep endpoints.Endpoints) *Provider {
	return &Provider{endpoints: ep, plusData: true}
}

func (p *Provider) ID() string {
	if p.plusData {
		return PlusDataID
	}
	return ID
}

func (p *Provider) Capabilities() providers.Capabilities {
	caps := providers.Capabilities{
		Protocol:          providers.ProtocolForm,
		Version:           apiVersion,
		Name:              "TrustedForm Consent",
		RequestVariables:  requestVariables,
		ResponseVariables: responseVariables,
	}
	if p.plusData {
		caps.Name = "TrustedForm Consent + Data"
		caps.ResponseVariables = append(append([]providers.Variable{}, responseVariables...), plusDataVariables...)
	}
	return caps
}

func (p *Provider) Validate(vars *lead.Vars) string {
	return certurl.Validate(vars.Lead.TrustedFormCertURL)
}

func (p *Provider) Request(vars *lead.Vars) (*providers.Request, error) {
	reference := vars.TrustedForm.CustomReference
	if reference == "" {
		reference = endpoints.EventURL(p.endpoints.LeadConduitHost, vars.Lead.ID)
	}

	var form payload.Form
	form.AddAll("scan[]", vars.Required()).
		AddAll("scan![]", vars.Forbidden()).
		Add("reference", reference).
		Add("vendor", vars.Vendor()).
		Add("scan_delimiter", vars.ScanDelimiter()).
		Add("email", vars.Lead.Email).
		Add("phone_1", vars.Lead.Phone1).
		Add("phone_2", vars.Lead.Phone2).
		Add("phone_3", vars.Lead.Phone3)

	header := providers.FormHeader()
	header.Set("Authorization", providers.BasicAuth(vars.APIKey()))
	header.Set("api-version", apiVersion)

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
	return ParseResponse(res.Status, event, vars, p.plusData)
}
