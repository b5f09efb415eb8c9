package claim

import (
	"net/http"
	"net/url"
	"slices"

	"trustedform/internal/trustedform/fields"
	"trustedform/internal/trustedform/lead"
	"trustedform/internal/trustedform/payload"
	"trustedform/internal/trustedform/providers"
)

// Warnings TrustedForm attaches to a claim whose snapshot scan did not pass.
const (
	warningRequiredMissing = "string not found in snapshot"
	warningForbiddenFound  = "string found in snapshot"
	warningScanFailed      = "snapshot scan failed"
)

func parseResponse(vars *lead.Vars, status int, header http.Header, event payload.Doc) payload.Appended {
	cert := event.Get("cert")
	if status != http.StatusCreated || !cert.Truthy() {
		return parseError(status, event)
	}

	hosted := cert.Get("parent_location").Or(cert.Get("location"))
	found := providers.UniqueStrings(event.Get("scans.found"))
	notFound := providers.UniqueStrings(event.Get("scans.not_found"))

	location := payload.Appended{}
	location.Copy("city", cert.Get("geo.city")).
		Copy("country_code", cert.Get("geo.country_code")).
		Copy("latitude", cert.Get("geo.lat")).
		Copy("longitude", cert.Get("geo.lon")).
		Copy("postal_code", cert.Get("geo.postal_code")).
		Copy("state", cert.Get("geo.state")).
		Copy("time_zone", cert.Get("geo.time_zone"))

	website := payload.Appended{}
	website.Copy("location", cert.Get("location")).
		Copy("parent_location", cert.Get("parent_location"))

	scans := payload.Appended{"found": found, "not_found": notFound}

	appended := payload.Appended{
		"outcome":  providers.OutcomeSuccess,
		"reason":   nil,
		"location": location,
		"website":  website,
		"scans":    scans,
		"domain":   hostname(hosted),
	}
	appended.Copy("user_agent", cert.Get("user_agent")).
		Copy("browser", cert.Get("browser")).
		Copy("os", cert.Get("operating_system")).
		Copy("ip", cert.Get("ip")).
		Copy("token", cert.Get("token").Or(cert.Get("cert_id"))).
		Copy("snapshot_url", cert.Get("snapshot_url")).
		Copy("masked_cert_url", event.Get("masked_cert_url")).
		Copy("is_masked", event.Get("masked")).
		Copy("expires_at", event.Get("expires_at")).
		Copy("share_url", event.Get("share_url")).
		Copy("url", hosted).
		Copy("created_at", cert.Get("created_at")).
		Copy("warnings", event.Get("warnings"))

	if age, ok := fields.AgeInSeconds(event.Get("created_at").String(), cert.Get("created_at").String(), cert.Get("event_duration").Value()); ok {
		appended["age_in_seconds"] = age
	} else {
		appended["age_in_seconds"] = nil
	}
	if top, ok := fields.TimeOnPageInSeconds(cert.Get("event_duration").Value()); ok {
		appended["time_on_page_in_seconds"] = top
	} else {
		appended["time_on_page_in_seconds"] = nil
	}

	if runtime := header.Get("X-Runtime"); runtime != "" {
		appended["duration"] = runtime
	}

	matching, _ := event.Get("fingerprints.matching").Strings()
	nonMatching, _ := event.Get("fingerprints.non_matching").Strings()
	appended.Merge(fields.EvalFingerprint(vars.Lead, matching, nonMatching))

	required := vars.TrustedForm.ScanRequiredText
	if required.IsSet() {
		scans["num_required_matched"] = fields.CountRequiredMatched(required.Values(), found)
	}

	warnings, _ := event.Get("warnings").Strings()
	var reason string
	if slices.Contains(warnings, warningRequiredMissing) {
		appended["outcome"] = providers.OutcomeFailure
		reason = "Required scan text not found in TrustedForm snapshot (missing " +
			fields.FormatScanReason(required, notFound) + ")"
	}
	if slices.Contains(warnings, warningForbiddenFound) {
		appended["outcome"] = providers.OutcomeFailure
		if reason != "" {
			reason += "; "
		}
		reason += "Forbidden scan text found in TrustedForm snapshot (found " +
			fields.FormatScanReason(vars.TrustedForm.ScanForbiddenText, found) + ")"
	}
	if slices.Contains(warnings, warningScanFailed) && required.IsSet() {
		appended["outcome"] = providers.OutcomeFailure
		reason = warningScanFailed
	}
	if reason != "" {
		appended["reason"] = reason
	}

	return appended
}

func parseError(status int, event payload.Doc) payload.Appended {
	var message string
	if status == http.StatusGone {
		message = providers.ExpiredMessage
	} else if event.Get("message").Truthy() {
		message = event.Get("message").String()
	}
	appended := payload.Appended{"outcome": providers.OutcomeError}
	if message != "" {
		appended["reason"] = providers.ErrorReason(message, status)
	}
	return appended
}

// hostname returns the host of the page that hosted the form, without port.
func hostname(d payload.Doc) any {
	if !d.Truthy() {
		return nil
	}
	u, err := url.Parse(d.String())
	if err != nil || u.Hostname() == "" {
		return nil
	}
	return u.Hostname()
}
