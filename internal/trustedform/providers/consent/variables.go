package consent

import "trustedform/internal/trustedform/providers"

var requestVariables = []providers.Variable{
	{Name: "lead.trustedform_cert_url", Type: providers.TypeString, Required: true, Description: "TrustedForm Certificate URL"},
	{Name: "trustedform.scan_required_text", Type: providers.TypeArray, Description: "Required text to search snapshot for"},
	{Name: "trustedform.scan_forbidden_text", Type: providers.TypeArray, Description: "Forbidden text to search snapshot for"},
	{Name: "trustedform.vendor", Type: providers.TypeString, Description: "Lead vendor name sent to TrustedForm, defaults to the lead source name"},
	{Name: "trustedform.api_key", Type: providers.TypeCredential, Description: "Optional TrustedForm API key. Used for claiming certs that belong to another account"},
	{Name: "trustedform.custom_reference", Type: providers.TypeString, Description: "Optional reference, defaults to the lead's url"},
	{Name: "trustedform.scan_delimiter", Type: providers.TypeString, Description: "The character used to surround an asterisk and identify it as a wildcard (default: |)"},
	{Name: "lead.email", Type: providers.TypeString, Description: `Lead email that will be fingerprinted, defaults to the lead's "Email" field`},
	{Name: "lead.phone_1", Type: providers.TypeString, Description: `Lead phone 1 that will be fingerprinted, defaults to the lead's "Phone 1" field`},
	{Name: "lead.phone_2", Type: providers.TypeString, Description: `Lead phone 2 that will be fingerprinted, defaults to the lead's "Phone 2" field`},
	{Name: "lead.phone_3", Type: providers.TypeString, Description: `Lead phone 3 that will be fingerprinted, defaults to the lead's "Phone 3" field`},
}

var responseVariables = []providers.Variable{
	{Name: "outcome", Type: providers.TypeString, Description: "certificate claim result"},
	{Name: "reason", Type: providers.TypeString, Description: "in case of failure, the reason for failure"},
	{Name: "masked_cert_url", Type: providers.TypeString, Description: "The certificate url that masks the lead source url and snapshot"},
	{Name: "is_masked", Type: providers.TypeBoolean, Description: "Whether the cert is masked"},
	{Name: "required_scans_found", Type: providers.TypeArray, Description: "List of required scan terms found"},
	{Name: "required_scans_not_found", Type: providers.TypeArray, Description: "List of required scan terms not found"},
	{Name: "num_required_matched", Type: providers.TypeString, Description: "How many of the required strings were scanned? (all, some, none)"},
	{Name: "forbidden_scans_found", Type: providers.TypeArray, Description: "List of forbidden scan terms found"},
	{Name: "forbidden_scans_not_found", Type: providers.TypeArray, Description: "List of forbidden scan terms not found"},
	{Name: "fingerprints_summary", Type: providers.TypeString, Description: "Summary of fingerprint matching, one of All Matched, Some Matched, None Matched, or No Fingerprinting Data"},
	{Name: "email_fingerprint_matched", Type: providers.TypeBoolean, Description: "True if the fingerprint of the email matched"},
	{Name: "phone_1_fingerprint_matched", Type: providers.TypeBoolean, Description: "True if the fingerprint of phone_1 matched"},
	{Name: "phone_2_fingerprint_matched", Type: providers.TypeBoolean, Description: "True if the fingerprint of phone_2 matched"},
	{Name: "phone_3_fingerprint_matched", Type: providers.TypeBoolean, Description: "True if the fingerprint of phone_3 matched"},
	{Name: "warnings", Type: providers.TypeArray, Description: "Any warnings returned by the claim"},
}

var plusDataVariables = []providers.Variable{
	{Name: "age_in_seconds", Type: providers.TypeNumber, Description: "Number of seconds since the last user interaction with the certificate"},
	{Name: "city", Type: providers.TypeString, Description: "City name based on IP address"},
	{Name: "country_code", Type: providers.TypeString, Description: "Country based on IP address"},
	{Name: "latitude", Type: providers.TypeNumber, Description: "Latitude based on IP address"},
	{Name: "longitude", Type: providers.TypeNumber, Description: "Longitude based on IP address"},
	{Name: "postal_code", Type: providers.TypeString, Description: "Mailing address postal code based on IP address"},
	{Name: "state", Type: providers.TypeString, Description: "State or province name based on IP address"},
	{Name: "time_zone", Type: providers.TypeString, Description: "Time zone name based on IP address"},
	{Name: "browser", Type: providers.TypeString, Description: "Human friendly version of user-agent"},
	{Name: "is_mobile", Type: providers.TypeBoolean, Description: "True if the user device is a mobile device"},
	{Name: "os", Type: providers.TypeString, Description: "Human friendly version of the users operating system"},
	{Name: "token", Type: providers.TypeString, Description: "The TrustedForm certificate token"},
	{Name: "time_on_page_in_seconds", Type: providers.TypeNumber, Description: "Number of seconds the consumer spent filling out the offer form"},
	{Name: "created_at", Type: providers.TypeTime, Description: "Time the user loaded the form in UTC ISO8601 format"},
	{Name: "expires_at", Type: providers.TypeTime, Description: "Time the cert would have expired if not claimed"},
	{Name: "form_input_method", Type: providers.TypeArray, Description: "The input method or methods the consumer used to fill out the form: autofill, paste, typing"},
	{Name: "is_framed", Type: providers.TypeBoolean, Description: "True if the page_url was in an iframe"},
	{Name: "ip", Type: providers.TypeString, Description: "Consumer's IP address"},
	{Name: "kpm", Type: providers.TypeNumber, Description: "Consumer's typing speed on the form, in keystrokes per minute"},
	{Name: "wpm", Type: providers.TypeNumber, Description: "Consumer's typing speed on the form, in words per minute"},
	{Name: "page_url", Type: providers.TypeString, Description: "The URL of the page hosting the TrustedForm script"},
	{Name: "parent_page_url", Type: providers.TypeString, Description: "The parent frame URL when the page is framed"},
	{Name: "domain", Type: providers.TypeString, Description: "Domain of the page hosting the TrustedForm script"},
}
