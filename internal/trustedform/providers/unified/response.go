package unified

import (
	"trustedform/internal/trustedform/fields"
	"trustedform/internal/trustedform/lead"
	"trustedform/internal/trustedform/payload"
	"trustedform/internal/trustedform/providers"
)

type mapping struct {
	key  string
	path string
}

var matchLeadFields = []mapping{
	{"matched_email", "match_lead.email"},
	{"matched_phone", "match_lead.phone"},
	{"successful_match", "match_lead.result.success"},
	{"email_fingerprint_matched", "match_lead.result.email_match"},
	{"phone_fingerprint_matched", "match_lead.result.phone_match"},
}

var retainFields = []mapping{
	{"reference_code", "retain.reference"},
	{"vendor", "retain.vendor"},
	{"previously_retained", "retain.results.previously_retained"},
	{"masked_cert_url", "retain.results.masked_cert_url"},
	{"share_url", "retain.results.share_url"},
}

var scanFields = []mapping{
	{"scans_result", "insights.scans.result.success"},
	{"required_scans_found", "insights.scans.result.required.found"},
	{"required_scans_not_found", "insights.scans.result.required.not_found"},
	{"forbidden_scans_found", "insights.scans.result.forbidden.found"},
	{"forbidden_scans_not_found", "insights.scans.result.forbidden.not_found"},
}

// propertyFields are relative to insights.properties.
var propertyFields = []mapping{
	{"age_in_seconds", "age_seconds"},
	{"city", "approx_ip_geo.city"},
	{"country_code", "approx_ip_geo.country_code"},
	{"latitude", "approx_ip_geo.lat"},
	{"longitude", "approx_ip_geo.lon"},
	{"postal_code", "approx_ip_geo.postal_code"},
	{"state", "approx_ip_geo.state"},
	{"time_zone", "approx_ip_geo.time_zone"},
	{"browser_full", "browser.full"},
	{"user_agent", "browser.user_agent"},
	{"created_at", "created_at"},
	{"domain", "domain"},
	{"time_on_page_in_seconds", "seconds_on_page"},
	{"kpm", "form_input_kpm"},
	{"form_input_method", "form_input_method"},
	{"wpm", "form_input_wpm"},
	{"ip", "ip"},
	{"is_framed", "is_framed"},
	{"is_masked", "is_masked"},
	{"sensitive_hidden_content_elements", "num_sensitive_content_elements"},
	{"sensitive_hidden_form_elements", "num_sensitive_form_elements"},
	{"os_full", "os.full"},
	{"is_mobile", "os.is_mobile"},
	{"os_name", "os.name"},
	{"page_url", "page_url"},
	{"parent_page_url", "parent_page_url"},
	{"bot_detected", "bot_detected"},
}

// verifyResultFields are relative to verify.result.
var verifyResultFields = []string{
	"form_submitted",
	"language_approved",
	"success",
	"min_font_size_px_satisfied",
	"min_contrast_ratio_satisfied",
}

func parseResponse(vars *lead.Vars, parsed payload.Doc) payload.Appended {
	appended := payload.Appended{}
	appended.Copy(payload.KeyOutcome, parsed.Get("outcome")).
		Copy(payload.KeyReason, parsed.Get("reason"))

	for _, group := range [][]mapping{matchLeadFields, retainFields, scanFields} {
		for _, m := range group {
			appended.Copy(m.key, parsed.Get(m.path))
		}
	}

	props := parsed.Get("insights.properties")
	for _, m := range propertyFields {
		appended.Copy(m.key, props.Get(m.path))
	}
	appended.Copy("expires_at", parsed.Get("retain.results.expires_at").Or(props.Get("expires_at")))

	result := parsed.Get("verify.result")
	appended.Copy("one_to_one", result.Get("one_to_one"))
	if hasVerifyData(parsed) {
		appended["verify"] = parseVerify(parsed.Get("verify"))
	}

	if vars.Insights.Enabled(PageScan) {
		scans := parsed.Get("insights.scans")
		required, _ := scans.Get("result.required.found").Strings()
		forbidden, _ := scans.Get("result.forbidden.found").Strings()
		appended["amount_required_matched"] = fields.CountRequiredMatched(scans.Get("required").StringList(), required)
		appended["amount_forbidden_matched"] = fields.CountRequiredMatched(scans.Get("forbidden").StringList(), forbidden)
	}
	return appended
}

func hasVerifyData(parsed payload.Doc) bool {
	return parsed.Get("verify.languages").Truthy() ||
		parsed.Get("verify.result.language_approved").Truthy() ||
		parsed.Get("verify.result.success").Truthy() ||
		parsed.Get("verify.result.one_to_one").Truthy()
}

// parseVerify flattens the consent languages to their text. one_to_one is
// appended at the top level instead.
func parseVerify(v payload.Doc) payload.Appended {
	out := payload.Appended{}
	if languages := v.Get("languages"); languages.Exists() {
		texts := []string{}
		for _, l := range languages.Array() {
			texts = append(texts, l.Get("text").String())
		}
		out["languages"] = texts
	}
	result := v.Get("result")
	for _, key := range verifyResultFields {
		out.Copy(key, result.Get(key))
	}
	return out
}

// parseError maps a non-200 response below 500. The API reports its own
// outcome and reason; a body without one is treated as an error.
func parseError(status int, parsed payload.Doc) payload.Appended {
	if !parsed.Get("outcome").Truthy() {
		message := parsed.Get("errors.detail").Or(parsed.Get("message")).String()
		if message == "" {
			message = providers.ParseFailureReason
		}
		return payload.Outcome(providers.OutcomeError, providers.ErrorReason(message, status))
	}
	appended := payload.Appended{}
	return appended.Copy(payload.KeyOutcome, parsed.Get("outcome")).
		Copy(payload.KeyReason, parsed.Get("reason"))
}
