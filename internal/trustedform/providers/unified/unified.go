// Package unified implements the TrustedForm v4 API, which combines Retain,
// Insights and Verify in one JSON request.
package unified

import (
	"encoding/json"
	"fmt"
	"net/http"

	"trustedform/internal/trustedform/certurl"
	"trustedform/internal/trustedform/endpoints"
	"trustedform/internal/trustedform/lead"
	"trustedform/internal/trustedform/payload"
	"trustedform/internal/trustedform/providers"
)

const (
	ID         = "trustedform"
	apiVersion = "4.0"
)

// Validation reasons, checked in this order after the certificate URL.
const (
	MessageNoProduct      = "a TrustedForm product must be selected"
	MessageRetainContact  = "an email address or phone number is required to use TrustedForm Retain"
	MessageNoInsightsProp = "no properties selected for TrustedForm Insights"
)

// Provider talks to the v4 API.
type Provider struct {
	endpoints endpoints.Endpoints
}

func New(ep endpoints.Endpoints) *Provider {
	return &Provider{endpoints: ep}
}

func (p *Provider) ID() string { return ID }

func (p *Provider) Capabilities() providers.Capabilities {
	return providers.Capabilities{
		Protocol:          providers.ProtocolJSON,
		Version:           apiVersion,
		Name:              "TrustedForm",
		RequestVariables:  requestVariables,
		ResponseVariables: responseVariables,
	}
}

func (p *Provider) Validate(vars *lead.Vars) string {
	if msg := certurl.Validate(vars.Lead.TrustedFormCertURL); msg != "" {
		return msg
	}
	tf := vars.TrustedForm
	if !tf.Retain.Enabled() && !tf.Insights.Enabled() && !tf.Verify.Enabled() {
		return MessageNoProduct
	}
	if tf.Retain.Enabled() && !vars.HasContact() {
		return MessageRetainContact
	}
	if tf.Insights.Enabled() && len(SelectedProperties(vars.Insights)) == 0 && !vars.Insights.Enabled(PageScan) {
		return MessageNoInsightsProp
	}
	return ""
}

type requestBody struct {
	MatchLead *matchLead    `json:"match_lead,omitempty"`
	Retain    *retain       `json:"retain,omitempty"`
	Insights  *insightsBody `json:"insights,omitempty"`
	Verify    *verify       `json:"verify,omitempty"`
}

type matchLead struct {
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type retain struct {
	Reference string `json:"reference,omitempty"`
	Vendor    string `json:"vendor,omitempty"`
}

type insightsBody struct {
	Properties []string `json:"properties"`
	Scans      *scans   `json:"scans,omitempty"`
}

type scans struct {
	Required  *lead.TextList `json:"required,omitempty"`
	Forbidden *lead.TextList `json:"forbidden,omitempty"`
	Delimiter string         `json:"delimiter"`
}

type verify struct {
	AdvertiserName string `json:"advertiser_name,omitempty"`
}

func (p *Provider) Request(vars *lead.Vars) (*providers.Request, error) {
	tf := vars.TrustedForm
	var body requestBody

	if tf.Retain.Enabled() && vars.HasContact() {
		body.MatchLead = &matchLead{Email: vars.Lead.Email, Phone: vars.Lead.Phone1}
		reference := tf.CustomReference
		if reference == "" {
			reference = endpoints.EventURL(p.endpoints.LeadConduitHost, vars.Lead.ID)
		}
		body.Retain = &retain{Reference: reference, Vendor: vars.Vendor()}
	}

	if tf.Insights.Enabled() {
		body.Insights = &insightsBody{Properties: SelectedProperties(vars.Insights)}
		if vars.Insights.Enabled(PageScan) {
			body.Insights.Scans = &scans{
				Required:  setOrNil(tf.ScanRequiredText),
				Forbidden: setOrNil(tf.ScanForbiddenText),
				Delimiter: vars.ScanDelimiter(),
			}
		}
	}

	if tf.Verify.Enabled() {
		body.Verify = &verify{AdvertiserName: tf.AdvertiserName}
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode v4 request: %w", err)
	}

	header := providers.JSONHeader()
	header.Set("api-version", apiVersion)
	header.Set("Authorization", providers.BasicAuth(vars.APIKey()))

	return &providers.Request{
		Method: http.MethodPost,
		URL:    certurl.Format(vars.Lead.TrustedFormCertURL),
		Header: header,
		Body:   raw,
	}, nil
}

func setOrNil(t *lead.TextList) *lead.TextList {
	if !t.IsSet() {
		return nil
	}
	return t
}

func (p *Provider) Response(vars *lead.Vars, res *providers.Response) payload.Appended {
	if res.Status >= http.StatusInternalServerError {
		return payload.Outcome(providers.OutcomeError, providers.ParseFailureReason)
	}
	parsed, err := payload.Parse(res.Body)
	if err != nil {
		return payload.Outcome(providers.OutcomeError, providers.ParseFailureReason)
	}
	if res.Status != http.StatusOK {
		return parseError(res.Status, parsed)
	}
	return parseResponse(vars, parsed)
}
