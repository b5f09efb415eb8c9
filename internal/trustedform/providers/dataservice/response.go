package dataservice

import (
	"fmt"

	"trustedform/internal/trustedform/payload"
	"trustedform/internal/trustedform/providers"
)

// MapEvent maps the certificate fields shared by every peek product. Fields
// missing from the response are left out.
func MapEvent(event payload.Doc) payload.Appended {
	cert := event.Get("cert")

	out := payload.Appended{}
	out.Copy("age", event.Get("age")).
		Copy("browser", cert.Get("browser")).
		Copy("created_at", cert.Get("created_at")).
		Copy("device", cert.Get("device")).
		Copy("event_duration", cert.Get("event_duration")).
		Copy("expires_at", cert.Get("expires_at")).
		Copy("framed", cert.Get("framed"))

	for _, key := range []string{"city", "country_code", "lat", "lon", "postal_code", "state", "time_zone"} {
		out.Copy(key, cert.Get("geo."+key))
	}

	out.Copy("ip", cert.Get("ip")).
		Copy("wpm", cert.Get("wpm")).
		Copy("kpm", cert.Get("kpm")).
		Copy("page_url", cert.Get("page_url")).
		Copy("operating_system", cert.Get("operating_system")).
		Copy("parent_page_url", cert.Get("parent_page_url")).
		Copy("cert_id", cert.Get("cert_id")).
		Copy("user_agent", cert.Get("user_agent")).
		Copy("fingerprints_matching", event.Get("fingerprints.matching")).
		Copy("fingerprints_non_matching", event.Get("fingerprints.non_matching")).
		Copy("warnings", event.Get("warnings"))

	out["scans_found"] = scans(event.Get("scans.found"))
	out["scans_not_found"] = scans(event.Get("scans.not_found"))
	return out
}

func scans(d payload.Doc) []string {
	if !d.Truthy() {
		return []string{}
	}
	return providers.UniqueStrings(d)
}

// Failure maps a 4xx peek response.
func Failure(event payload.Doc) payload.Appended {
	out := payload.Appended{payload.KeyOutcome: providers.OutcomeFailure}
	return out.CopyOrNull(payload.KeyReason, event.Get("errors.detail"))
}

// UnknownError maps any other non-201 peek response.
func UnknownError(status int) payload.Appended {
	return payload.Outcome(providers.OutcomeError, fmt.Sprintf("unknown error (%d)", status))
}
