package insights

import (
	"slices"

	"trustedform/internal/trustedform/providers"
	"trustedform/internal/trustedform/providers/dataservice"
)

// requestVariables adds the scan delimiter after the scan texts.
var requestVariables = slices.Insert(slices.Clone(dataservice.RequestVariables), 3, providers.Variable{
	Name: "trustedform.scan_delimiter", Type: providers.TypeString,
	Description: "The character used to surround an asterisk and identify it as a wildcard (default: |)",
})

var responseVariables = []providers.Variable{
	{Name: "outcome", Type: providers.TypeString, Description: "Integration outcome (success, failure, or error)"},
	{Name: "reason", Type: providers.TypeString, Description: "in case of failure, the reason for failure"},
	{Name: "billable", Type: providers.TypeNumber, Description: "If the event is billable, the billable count for the event, else 0"},
	{Name: "age", Type: providers.TypeNumber, Description: "Number of seconds since the last user interaction with the certificate"},
	{Name: "browser", Type: providers.TypeString, Description: "Human friendly version of user-agent"},
	{Name: "consented_at", Type: providers.TypeTime, Description: "Time the user checked the consent language checkbox, in UTC ISO8601 format"},
	{Name: "created_at", Type: providers.TypeTime, Description: "Time the user loaded the form, in UTC ISO8601 format"},
	{Name: "device", Type: providers.TypeString, Description: "Mobile device type, if applicable"},
	{Name: "domain", Type: providers.TypeString, Description: "Domain of the page on which the consumer filled out the form"},
	{Name: "event_duration", Type: providers.TypeNumber, Description: "The amount of time, in seconds, that the consumer spent on the page filling out the form"},
	{Name: "expires_at", Type: providers.TypeTime, Description: "Timestamp indicating when the claim period for the TrustedForm certificate expires"},
	{Name: "form_input_method", Type: providers.TypeArray, Description: "The input method or methods the consumer used to fill out the form: autofill, paste, typing"},
	{Name: "framed", Type: providers.TypeBoolean, Description: "Whether or not the page_url was in an iframe"},
	{Name: "has_consented", Type: providers.TypeBoolean, Description: "Whether or not the user checked the consent language checkbox"},
	{Name: "city", Type: providers.TypeString, Description: "City name"},
	{Name: "country_code", Type: providers.TypeString, Description: "Country code"},
	{Name: "lat", Type: providers.TypeNumber, Description: "Latitude"},
	{Name: "lon", Type: providers.TypeNumber, Description: "Longitude"},
	{Name: "postal_code", Type: providers.TypeString, Description: "Mailing address postal code"},
	{Name: "state", Type: providers.TypeString, Description: "State or province name"},
	{Name: "time_zone", Type: providers.TypeString, Description: "Time zone name"},
	{Name: "ip", Type: providers.TypeString, Description: "The IP address of the consumer"},
	{Name: "wpm", Type: providers.TypeNumber, Description: "The consumer’s typing speed on the form, in words per minute"},
	{Name: "kpm", Type: providers.TypeNumber, Description: "The consumer’s typing speed on the form, in keystrokes per minute"},
	{Name: "page_url", Type: providers.TypeURL, Description: "The URL of the page on which the consumer filled out the form"},
	{Name: "operating_system", Type: providers.TypeString, Description: "The operating system for the device from which the consumer filled out the form"},
	{Name: "parent_page_url", Type: providers.TypeURL, Description: "The URL of the page on which the consumer filled out the form. The value will be “null” unless framed=true"},
	{Name: "cert_id", Type: providers.TypeString, Description: "The TrustedForm certificate ID"},
	{Name: "user_agent", Type: providers.TypeString, Description: "The browser and operating system for the device on which the consumer filled out the form"},
	{Name: "fingerprints_matching", Type: providers.TypeArray, Description: "Matching fingerprints that were found on the TrustedForm certificate"},
	{Name: "fingerprints_non_matching", Type: providers.TypeArray, Description: "Non-matching fingerprints that were found on the TrustedForm certificate"},
	{Name: "is_masked", Type: providers.TypeBoolean, Description: "Whether or not the TrustedForm certificate is masked"},
	{Name: "scans_found", Type: providers.TypeArray, Description: "Language that was found through the use of page scanning"},
	{Name: "scans_not_found", Type: providers.TypeArray, Description: "Language that was not found through the use of page scanning"},
	{Name: "warnings", Type: providers.TypeArray, Description: "Any warnings present about the content of the form, specific to page scanning and fingerprinting"},
}
