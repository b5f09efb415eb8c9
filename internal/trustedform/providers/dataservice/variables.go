package dataservice

import "trustedform/internal/trustedform/providers"

// RequestVariables are shared with the insights product.
var RequestVariables = []providers.Variable{
	{Name: "lead.trustedform_cert_url", Type: providers.TypeString, Required: true, Description: "TrustedForm Certificate URL"},
	{Name: "trustedform.scan_required_text", Type: providers.TypeArray, Description: "Required text to search snapshot for"},
	{Name: "trustedform.scan_forbidden_text", Type: providers.TypeArray, Description: "Forbidden text to search snapshot for"},
	{Name: "trustedform.vendor", Type: providers.TypeString, Description: "Lead vendor name sent to TrustedForm, defaults to the lead source name"},
	{Name: "lead.email", Type: providers.TypeString, Description: `Lead email that will be fingerprinted, defaults to the lead's "Email" field`},
	{Name: "lead.phone_1", Type: providers.TypeString, Description: `Lead phone 1 that will be fingerprinted, defaults to the lead's "Phone 1" field`},
	{Name: "lead.phone_2", Type: providers.TypeString, Description: `Lead phone 2 that will be fingerprinted, defaults to the lead's "Phone 2" field`},
	{Name: "lead.phone_3", Type: providers.TypeString, Description: `Lead phone 3 that will be fingerprinted, defaults to the lead's "Phone 3" field`},
}

var responseVariables = []providers.Variable{
	{Name: "data_service.outcome", Type: providers.TypeString, Description: "Integration outcome (success, failure, or error)"},
	{Name: "data_service.reason", Type: providers.TypeString, Description: "in case of failure, the reason for failure"},
	{Name: "data_service.age", Type: providers.TypeNumber, Description: "Number of seconds since the certificate was created"},
	{Name: "data_service.browser", Type: providers.TypeString, Description: "Human friendly version of user-agent"},
	{Name: "data_service.created_at", Type: providers.TypeTime, Description: "Time the user loaded the form in UTC ISO8601 format"},
	{Name: "data_service.device", Type: providers.TypeString, Description: "Mobile device type, if applicable"},
	{Name: "data_service.event_duration", Type: providers.TypeNumber, Description: "The amount of time, in seconds, that the consumer spent on the page filling out the form"},
	{Name: "data_service.expires_at", Type: providers.TypeTime, Description: "Timestamp indicating when the claim period for the TrustedForm certificate expires"},
	{Name: "data_service.framed", Type: providers.TypeBoolean, Description: "Whether or not the page_url was in an iframe"},
	{Name: "data_service.city", Type: providers.TypeString, Description: "City name"},
	{Name: "data_service.country_code", Type: providers.TypeString, Description: "Country code"},
	{Name: "data_service.lat", Type: providers.TypeNumber, Description: "Latitude"},
	{Name: "data_service.lon", Type: providers.TypeNumber, Description: "Longitude"},
	{Name: "data_service.postal_code", Type: providers.TypeString, Description: "Mailing address postal code"},
	{Name: "data_service.state", Type: providers.TypeString, Description: "State or province name"},
	{Name: "data_service.time_zone", Type: providers.TypeString, Description: "Time zone name"},
	{Name: "data_service.ip", Type: providers.TypeString, Description: "The IP address of the consumer"},
	{Name: "data_service.wpm", Type: providers.TypeNumber, Description: "The consumer’s typing speed on the form, in words per minute"},
	{Name: "data_service.kpm", Type: providers.TypeNumber, Description: "The consumer’s typing speed on the form, in keystrokes per minute"},
	{Name: "data_service.page_url", Type: providers.TypeURL, Description: "The URL of the page on which the consumer filled out the form"},
	{Name: "data_service.operating_system", Type: providers.TypeString, Description: "The operating system for the device from which the consumer filled out the form"},
	{Name: "data_service.parent_page_url", Type: providers.TypeURL, Description: "The URL of the page on which the consumer filled out the form. The value will be “null” unless framed=true"},
	{Name: "data_service.cert_id", Type: providers.TypeString, Description: "The TrustedForm certificate ID"},
	{Name: "data_service.user_agent", Type: providers.TypeString, Description: "The browser and operating system for the device on which the consumer filled out the form"},
	{Name: "data_service.fingerprints_matching", Type: providers.TypeArray, Description: "Matching fingerprints that were found on the TrustedForm certificate"},
	{Name: "data_service.fingerprints_non_matching", Type: providers.TypeArray, Description: "Non-matching fingerprints that were found on the TrustedForm certificate"},
	{Name: "data_service.masked", Type: providers.TypeBoolean, Description: "Whether or not the TrustedForm certificate is masked"},
	{Name: "data_service.scans_found", Type: providers.TypeArray, Description: "Language that was found through the use of page scanning"},
	{Name: "data_service.scans_not_found", Type: providers.TypeArray, Description: "Language that was not found through the use of page scanning"},
	{Name: "data_service.warnings", Type: providers.TypeArray, Description: "Any warnings present about the content of the form, specific to page scanning and fingerprinting"},
}
