package consent

import (
	"net/http"

	"trustedform/internal/trustedform/fields"
	"trustedform/internal/trustedform/lead"
	"trustedform/internal/trustedform/payload"
	"trustedform/internal/trustedform/providers"
)

// ParseResponse maps a consent API response. Certificate data is only
// appended when plusData is set.
func ParseResponse(status int, event payload.Doc, vars *lead.Vars, plusData bool) payload.Appended {
	if status != http.StatusCreated {
		return parseError(status, event)
	}

	appended := payload.Appended{
		"outcome": providers.OutcomeSuccess,
		"reason":  nil,
	}
	if o := event.Get("outcome"); o.Truthy() {
		appended["outcome"] = o.Value()
	}
	if r := event.Get("reason"); r.Truthy() {
		appended["reason"] = r.Value()
	}
	appended.Copy("is_masked", event.Get("is_masked").OrPresent(event.Get("masked"))).
		Copy("masked_cert_url", event.Get("masked_cert_url")).
		Copy("warnings", event.Get("warnings"))

	matching, _ := event.Get("fingerprints.matching").Strings()
	nonMatching, _ := event.Get("fingerprints.non_matching").Strings()
	appended.Merge(fields.EvalFingerprint(vars.Lead, matching, nonMatching))

	for key, path := range map[string]string{
		"forbidden_scans_found":     "scans.forbidden_found",
		"forbidden_scans_not_found": "scans.forbidden_not_found",
		"required_scans_found":      "scans.required_found",
		"required_scans_not_found":  "scans.required_not_found",
	} {
		if d := event.Get(path); d.Truthy() {
			appended[key] = d.Value()
		}
	}

	if vars.TrustedForm.ScanRequiredText.IsSet() {
		found, _ := event.Get("scans.required_found").Strings()
		appended["num_required_matched"] = fields.CountRequiredMatched(vars.Required(), found)
	}

	cert := event.Get("cert")
	if plusData && cert.Object() && len(cert.Value().(map[string]any)) > 0 {
		appended.Merge(parseCertData(cert))
	}
	return appended
}

// parseCertData maps the certificate details returned to consent + data claims.
// Missing values are reported as null.
func parseCertData(cert payload.Doc) payload.Appended {
	data := payload.Appended{}
	data.CopyOrNull("age_in_seconds", cert.Get("age_seconds")).
		CopyOrNull("city", cert.Get("approx_ip_geo.city")).
		CopyOrNull("country_code", cert.Get("approx_ip_geo.country_code")).
		CopyOrNull("latitude", cert.Get("approx_ip_geo.lat")).
		CopyOrNull("longitude", cert.Get("approx_ip_geo.lon")).
		CopyOrNull("postal_code", cert.Get("approx_ip_geo.postal_code")).
		CopyOrNull("state", cert.Get("approx_ip_geo.state")).
		CopyOrNull("time_zone", cert.Get("approx_ip_geo.time_zone")).
		CopyOrNull("browser", cert.Get("browser.full")).
		CopyOrNull("is_mobile", cert.Get("is_mobile").OrPresent(cert.Get("mobile"))).
		CopyOrNull("os", cert.Get("operating_system.full")).
		CopyOrNull("token", cert.Get("cert_id")).
		CopyOrNull("created_at", cert.Get("created_at")).
		CopyOrNull("expires_at", cert.Get("expires_at")).
		CopyOrNull("form_input_method", cert.Get("form_input_method")).
		CopyOrNull("is_framed", cert.Get("is_framed").OrPresent(cert.Get("framed"))).
		CopyOrNull("ip", cert.Get("ip")).
		CopyOrNull("kpm", cert.Get("kpm")).
		CopyOrNull("wpm", cert.Get("wpm")).
		CopyOrNull("page_url", cert.Get("page_url")).
		CopyOrNull("parent_page_url", cert.Get("parent_page_url")).
		CopyOrNull("domain", cert.Get("domain"))

	data["time_on_page_in_seconds"] = nil
	if ms, ok := cert.Get("event_duration_ms").Float(); ok && ms == float64(int64(ms)) {
		data["time_on_page_in_seconds"] = ms / 1000
	}
	return data
}

func parseError(status int, event payload.Doc) payload.Appended {
	message := event.Get("errors.detail").String()
	appended := payload.Appended{}

	if message == "Unauthorized" || event.Get("outcome").String() == providers.OutcomeFailure {
		appended["outcome"] = providers.OutcomeFailure
	} else {
		appended["outcome"] = providers.OutcomeError
		if status == http.StatusGone {
			message = providers.ExpiredMessage
		} else if m := event.Get("message"); m.Truthy() {
			message = m.String()
		}
	}

	if message != "" {
		appended["reason"] = providers.ErrorReason(message, status)
	} else {
		appended.Copy("reason", event.Get("reason"))
	}
	return appended
}
