package providers

import (
	"encoding/base64"
	"fmt"
	"net/http"

	"trustedform/internal/trustedform/payload"
	tfstrings "trustedform/pkg/platform/strings"
)

// ExpiredMessage explains a 410 from the claim endpoints.
const ExpiredMessage = "The TrustedForm certificate already passed the 72-hour origination timeframe and can no longer be claimed."

// ParseFailureReason is reported when a response body is not usable JSON.
const ParseFailureReason = "unable to parse response"

// BasicAuth builds the Authorization value TrustedForm expects: user "X",
// password the API key.
func BasicAuth(apiKey string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte("X:"+apiKey))
}

// BearerAuth builds a bearer Authorization value.
func BearerAuth(token string) string {
	return "Bearer " + token
}

// FormHeader returns headers for a form-encoded POST.
func FormHeader() http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/x-www-form-urlencoded")
	h.Set("Accept", "application/json")
	return h
}

// JSONHeader returns headers for a JSON POST.
func JSONHeader() http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	return h
}

// ErrorReason formats an API error message with its status code.
func ErrorReason(message string, status int) string {
	return fmt.Sprintf("TrustedForm error - %s (%d)", message, status)
}

// UniqueStrings returns the de-duplicated strings of an array value, or an
// empty list when the value is missing.
func UniqueStrings(d payload.Doc) []string {
	values, _ := d.Strings()
	return tfstrings.Dedupe(values)
}

// TransportFailure is the default result for an exchange that failed before a
// response arrived.
func TransportFailure(err error) payload.Appended {
	return payload.Outcome(OutcomeError, err.Error())
}
