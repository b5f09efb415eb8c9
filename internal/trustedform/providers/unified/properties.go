package unified

import "trustedform/internal/trustedform/lead"

// PageScan is the insights selection that turns on required/forbidden scans.
const PageScan = "page_scan"

// InsightsProperty links an operator-facing insights selection to the
// property name the v4 API expects.
type InsightsProperty struct {
	Mapping     string `json:"name" yaml:"name"`
	Property    string `json:"property" yaml:"property"`
	Description string `json:"description" yaml:"description"`
}

// InsightsProperties is ordered the way properties are sent.
var InsightsProperties = []InsightsProperty{
	{Mapping: "age", Property: "age_seconds", Description: "Number of seconds since the last user interaction with the certificate"},
	{Mapping: "location", Property: "approx_ip_geo", Description: "Approximate location based on the consumer's public IP address"},
	{Mapping: "browser", Property: "browser", Description: "Browser parsed from the user-agent"},
	{Mapping: "created_timestamp", Property: "created_at", Description: "When the TrustedForm script was loaded"},
	{Mapping: "domain", Property: "domain", Description: "The domain displayed to the consumer during the page visit"},
	{Mapping: "expiration_timestamp", Property: "expires_at", Description: "When the certificate will no longer be available"},
	{Mapping: "form_input_kpm", Property: "form_input_kpm", Description: "Keystrokes per minute of form input"},
	{Mapping: "form_input_method", Property: "form_input_method", Description: "How the consumer filled out the form: autofill, paste or typing"},
	{Mapping: "form_input_wpm", Property: "form_input_wpm", Description: "Approximate words per minute of form input"},
	{Mapping: "ip_address", Property: "ip", Description: "The consumer's public IP address"},
	{Mapping: "framed", Property: "is_framed", Description: "Whether the form was displayed within an iframe"},
	{Mapping: "masked", Property: "is_masked", Description: "Whether the certificate hides source information and the session replay"},
	{Mapping: "sensitive_content", Property: "num_sensitive_content_elements", Description: "Count of content elements hidden from the session replay"},
	{Mapping: "sensitive_form_fields", Property: "num_sensitive_form_elements", Description: "Count of form elements hidden from the session replay"},
	{Mapping: "operating_system", Property: "os", Description: "Operating system parsed from the user-agent"},
	{Mapping: "page_url", Property: "page_url", Description: "The URL of the page hosting TrustedForm Certify"},
	{Mapping: "parent_page_url", Property: "parent_page_url", Description: "The parent URL of the page hosting TrustedForm Certify, if framed"},
	{Mapping: "time_on_page", Property: "seconds_on_page", Description: "Seconds between the script loading and the most recent event"},
	{Mapping: "bot_detected", Property: "bot_detected", Description: "Whether automated form filling was detected"},
}

// SelectedProperties returns the API property names of the enabled selections.
func SelectedProperties(sel lead.InsightsSelection) []string {
	var out []string
	for _, p := range InsightsProperties {
		if sel.Enabled(p.Mapping) {
			out = append(out, p.Property)
		}
	}
	return out
}
