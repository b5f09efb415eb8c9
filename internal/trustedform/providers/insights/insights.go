// Package insights implements the TrustedForm Insights peek, a billable data
// service read that appends certificate data to the lead.
package insights

import (
	"net/http"

	"trustedform/internal/trustedform/certurl"
	"trustedform/internal/trustedform/lead"
	"trustedform/internal/trustedform/payload"
	"trustedform/internal/trustedform/providers"
	"trustedform/internal/trustedform/providers/dataservice"
)

const ID = "insights"

// MissingTokenMessage is the validation reason when no token is available.
const MissingTokenMessage = "Missing TrustedForm Data Service token"

// Provider reads certificate insights with a bearer token.
type Provider struct {
	token string
}

func New(token string) *Provider {
	return &Provider{token: token}
}

func (p *Provider) ID() string { return ID }

func (p *Provider) Capabilities() providers.Capabilities {
	return providers.Capabilities{
		Protocol:          providers.ProtocolForm,
		Version:           "peek",
		Name:              "TrustedForm Insights",
		RequestVariables:  requestVariables,
		ResponseVariables: responseVariables,
		EnvVariables:      []string{"TRUSTEDFORM_DATA_SERVICE_TOKEN"},
	}
}

// Validate requires a token and accepts ping URLs without the full
// certificate check.
func (p *Provider) Validate(vars *lead.Vars) string {
	if dataservice.Token(vars, p.token) == "" {
		return MissingTokenMessage
	}
	if certurl.IsPing(vars.Lead.TrustedFormCertURL) {
		return ""
	}
	return certurl.Validate(vars.Lead.TrustedFormCertURL)
}

func (p *Provider) Request(vars *lead.Vars) (*providers.Request, error) {
	return dataservice.PeekRequest(vars, p.token, true)
}

func (p *Provider) Response(_ *lead.Vars, res *providers.Response) payload.Appended {
	event, err := payload.Parse(res.Body)
	if err != nil {
		return notBillable(payload.Outcome(providers.OutcomeError, providers.ParseFailureReason))
	}

	switch {
	case res.Status == http.StatusCreated:
		return parseSuccess(event)
	case res.Status >= 400 && res.Status < 500:
		return notBillable(dataservice.Failure(event))
	default:
		return notBillable(dataservice.UnknownError(res.Status))
	}
}

func (p *Provider) TransportError(_ *lead.Vars, err error) payload.Appended {
	return notBillable(providers.TransportFailure(err))
}

func parseSuccess(event payload.Doc) payload.Appended {
	cert := event.Get("cert")
	consentedAt := cert.Get("consented_at")

	out := payload.Appended{
		payload.KeyOutcome: providers.OutcomeSuccess,
		"billable":         1,
		"has_consented":    consentedAt.Truthy(),
	}
	out.Merge(dataservice.MapEvent(event)).
		Copy("form_input_method", cert.Get("form_input_method")).
		Copy("domain", cert.Get("domain")).
		Copy("is_masked", event.Get("masked"))
	if consentedAt.Truthy() {
		out["consented_at"] = consentedAt.Value()
	}
	return out
}

func notBillable(a payload.Appended) payload.Appended {
	return a.Set("billable", 0)
}
