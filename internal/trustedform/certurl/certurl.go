// Package certurl normalizes and validates TrustedForm certificate URLs.
package certurl

import (
	"regexp"
	"strings"
)

// Validation messages surfaced as the adapter's skip reason.
const (
	MessageBlank   = "TrustedForm cert URL must not be blank"
	MessageInvalid = "TrustedForm cert URL must be valid"
)

// Cert ids are 24-40 hex characters. Facebook lead ads issue "0."-prefixed tokens.
var certPattern = regexp.MustCompile(`(?i)^https?://cert\.(?:staging\.)?trustedform(?:-dev)?\.com/(?:[0-9a-f]{24,40}|0\.[A-Za-z0-9_.\-]+)$`)

var pingPrefixes = []string{
	"https://ping.trustedform.com",
	"https://ping.staging.trustedform.com",
}

// Format trims the URL and upgrades plain http to https.
func Format(raw string) string {
	u := strings.TrimSpace(raw)
	if len(u) >= len("http://") && strings.EqualFold(u[:len("http://")], "http://") {
		return "https://" + u[len("http://"):]
	}
	return u
}

// Validate returns an empty string for a usable cert URL, otherwise the reason
// it cannot be used.
func Validate(raw string) string {
	u := strings.TrimSpace(raw)
	if u == "" {
		return MessageBlank
	}
	if !certPattern.MatchString(u) {
		return MessageInvalid
	}
	return ""
}

// IsPing reports whether the URL is a TrustedForm ping URL, which the data
// services accept in place of a certificate.
func IsPing(raw string) bool {
	u := strings.TrimSpace(raw)
	for _, p := range pingPrefixes {
		if strings.HasPrefix(u, p) {
			return true
		}
	}
	return false
}
