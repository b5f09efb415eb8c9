package unified

import (
	"strings"

	"trustedform/internal/trustedform/providers"
)

var requestVariables = func() []providers.Variable {
	vars := []providers.Variable{
		{Name: "lead.trustedform_cert_url", Type: providers.TypeURL, Required: true, Description: "TrustedForm Certificate URL"},
		{Name: "lead.email", Type: providers.TypeString, Description: `The email of the consumer you believe was recorded in the certificate; defaults to the lead's "Email" field.`},
		{Name: "lead.phone_1", Type: providers.TypeString, Description: `The phone number of the consumer you believe was recorded in the certificate; defaults to the lead's "Phone 1" field.`},
		{Name: "trustedform.api_key", Type: providers.TypeCredential, Description: "Optional TrustedForm API key. Used for claiming certs that belong to another account"},
		{Name: "trustedform.retain", Type: providers.TypeBoolean, Required: true, Description: "If true, a request to the Retain product will be made"},
		{Name: "trustedform.custom_reference", Type: providers.TypeString, Description: "Any text that may help you identify the lead associated with the certificate, such as a unique lead identifier or URL pointing to the lead in another system; defaults to the lead's url."},
		{Name: "trustedform.vendor", Type: providers.TypeString, Description: "The name of the company that provided the lead associated with the certificate; defaults to the lead source's name."},
		{Name: "trustedform.insights", Type: providers.TypeBoolean, Required: true, Description: "If true, a request to the Insights product will be made"},
	}
	for _, p := range InsightsProperties {
		vars = append(vars, providers.Variable{
			Name:        "insights." + p.Mapping,
			Type:        providers.TypeBoolean,
			Description: "Request TrustedForm Insights " + strings.ReplaceAll(p.Mapping, "_", " ") + " data?",
		})
	}
	return append(vars,
		providers.Variable{Name: "insights.page_scan", Type: providers.TypeBoolean, Description: "Request TrustedForm Insights page scan data?"},
		providers.Variable{Name: "trustedform.scan_required_text", Type: providers.TypeArray, Description: "A list of required text to scan for. TrustedForm will then perform a case and whitespace insensitive search for the string."},
		providers.Variable{Name: "trustedform.scan_forbidden_text", Type: providers.TypeArray, Description: "A list of forbidden text to scan for. TrustedForm will then perform a case and whitespace insensitive search for the string."},
		providers.Variable{Name: "trustedform.scan_delimiter", Type: providers.TypeString, Description: "Use this parameter to designate a delimiter when wrapping wildcards or template variables; defaults to |."},
		providers.Variable{Name: "trustedform.verify", Type: providers.TypeBoolean, Required: true, Description: "If true, a request to the Verify product will be made"},
		providers.Variable{Name: "trustedform.advertiser_name", Type: providers.TypeString, Description: "The name of the legal entity for an advertiser that will be used to determine if they were given consent in a one to one manner. Matching ignores case, redundant white space and non ascii characters."},
	)
}()

var responseVariables = []providers.Variable{
	{Name: "outcome", Type: providers.TypeString, Description: `The outcome of the request. "success" is returned if all results resulted in success, "failure" if any result is unsuccessful, and "error" if an error occurs during any operation.`},
	{Name: "reason", Type: providers.TypeString, Description: "Provides an explanation for failure or error."},
	{Name: "matched_email", Type: providers.TypeString, Description: "The email or hashed value provided in the request, believed to be that of the consumer recorded in the certificate."},
	{Name: "matched_phone", Type: providers.TypeString, Description: "The phone number or hashed value provided in the request, believed to be that of the consumer recorded in the certificate."},
	{Name: "successful_match", Type: providers.TypeBoolean, Description: "A boolean indicating if any matches were found during the lead matching operation. A null value indicates that lead matching was not performed."},
	{Name: "email_fingerprint_matched", Type: providers.TypeBoolean, Description: "A boolean indicating if any email matches were found during the lead matching operation. A null value indicates that no emails were provided."},
	{Name: "phone_fingerprint_matched", Type: providers.TypeBoolean, Description: "A boolean indicating if any phone matches were found during the lead matching operation. A null value indicates that no phone numbers were provided."},
	{Name: "reference_code", Type: providers.TypeString, Description: "The parameter provided in the request, intended to be a reference to help you identify the lead associated with the certificate."},
	{Name: "vendor", Type: providers.TypeString, Description: "The parameter provided in the request, intended to be the name of the company that provided the lead associated with the certificate."},
	{Name: "previously_retained", Type: providers.TypeBoolean, Description: "A boolean indicating whether your account had already retained this certificate."},
	{Name: "expires_at", Type: providers.TypeTime, Description: "The UTC ISO8601 formatted date and time when this certificate will no longer be available for API requests."},
	{Name: "masked_cert_url", Type: providers.TypeURL, Description: "The certificate url that masks the lead source url and snapshot"},
	{Name: "share_url", Type: providers.TypeURL, Description: "The expiring share URL of the certificate"},
	{Name: "scans_result", Type: providers.TypeBoolean, Description: "A boolean indicating if all required text was found and none of the forbidden text was found."},
	{Name: "required_scans_found", Type: providers.TypeArray, Description: "A list of required scan terms that were found in the recorded content."},
	{Name: "required_scans_not_found", Type: providers.TypeArray, Description: "A list of required scan terms that were not found in the recorded content."},
	{Name: "forbidden_scans_found", Type: providers.TypeArray, Description: "A list of forbidden scan terms that were found in the recorded content."},
	{Name: "forbidden_scans_not_found", Type: providers.TypeArray, Description: "A list of forbidden scan terms that were not found in the recorded content."},
	{Name: "amount_required_matched", Type: providers.TypeString, Description: "How many of the required strings were matched? (all, some, none)"},
	{Name: "amount_forbidden_matched", Type: providers.TypeString, Description: "How many of the forbidden strings were scanned? (all, some, none)"},
	{Name: "age_in_seconds", Type: providers.TypeNumber, Description: "Number of seconds since the last user interaction with the certificate."},
	{Name: "city", Type: providers.TypeString, Description: "City name based on consumer's public IP address"},
	{Name: "country_code", Type: providers.TypeString, Description: "Country code based on consumer's public IP address"},
	{Name: "latitude", Type: providers.TypeNumber, Description: "Latitude based on consumer's public IP address"},
	{Name: "longitude", Type: providers.TypeNumber, Description: "Longitude based on consumer's public IP address"},
	{Name: "postal_code", Type: providers.TypeString, Description: "Mailing address postal code based on consumer's public IP address"},
	{Name: "state", Type: providers.TypeString, Description: "State/Province or Political Subdivision abbreviation based on consumer's public IP address"},
	{Name: "time_zone", Type: providers.TypeString, Description: "Timezone name based on consumer's public IP address"},
	{Name: "browser_full", Type: providers.TypeString, Description: "A human-friendly version of the browser parsed from the user-agent"},
	{Name: "user_agent", Type: providers.TypeString, Description: "The consumer's browser user-agent"},
	{Name: "created_at", Type: providers.TypeTime, Description: "The UTC ISO8601 formatted date and time when the TrustedForm script was loaded"},
	{Name: "domain", Type: providers.TypeString, Description: "The domain displayed to the consumer during the page visit"},
	{Name: "time_on_page_in_seconds", Type: providers.TypeNumber, Description: "The time in seconds between when the script was loaded and when the most recent event was received"},
	{Name: "kpm", Type: providers.TypeNumber, Description: "The average number of keystrokes per minute based on the consumer’s rate of form input."},
	{Name: "form_input_method", Type: providers.TypeArray, Description: `The detected input method(s) the consumer used to fill out the form: "autofill", "paste" or "typing".`},
	{Name: "wpm", Type: providers.TypeNumber, Description: "The approximate number of words per minute calculated by using the form_input_kpm and assuming five characters represent a word."},
	{Name: "ip", Type: providers.TypeString, Description: "The consumer's public IP address"},
	{Name: "is_framed", Type: providers.TypeBoolean, Description: "A boolean indicating if the form was displayed within an iframe"},
	{Name: "is_masked", Type: providers.TypeBoolean, Description: "A boolean indicating if the certificate is masked and does not show source information nor a session replay"},
	{Name: "sensitive_hidden_content_elements", Type: providers.TypeNumber, Description: "Count of how many content elements (e.g. img, div) are marked sensitive and hidden from the session replay"},
	{Name: "sensitive_hidden_form_elements", Type: providers.TypeNumber, Description: "Count of how many form elements (e.g. input, textarea) are marked sensitive and hidden from the session replay"},
	{Name: "os_full", Type: providers.TypeString, Description: "A human-friendly version of the operating system information parsed from the user-agent"},
	{Name: "is_mobile", Type: providers.TypeBoolean, Description: "A boolean indicating that the form was filled out on a mobile device or tablet, based on user-agent"},
	{Name: "os_name", Type: providers.TypeString, Description: "Operating system name"},
	{Name: "page_url", Type: providers.TypeString, Description: "The URL of the page hosting TrustedForm Certify."},
	{Name: "parent_page_url", Type: providers.TypeString, Description: "The parent URL of the page hosting TrustedForm Certify, if framed."},
	{Name: "bot_detected", Type: providers.TypeBoolean, Description: "A boolean indicating if automated form filling was detected."},
	{Name: "one_to_one", Type: providers.TypeBoolean, Description: "A boolean indicating if the cert structure satisfied the requirements for 1:1 consent."},
	{Name: "verify.languages", Type: providers.TypeArray, Description: "A list of the consent languages detected within the certificate"},
	{Name: "verify.language_approved", Type: providers.TypeBoolean, Description: "A boolean indicating if any of the consent languages found have been approved in your account's consent language manager."},
	{Name: "verify.form_submitted", Type: providers.TypeBoolean, Description: "A boolean indicating whether the form was successfully submitted by the consumer."},
	{Name: "verify.success", Type: providers.TypeBoolean, Description: "A boolean indicating if any of the consent languages found meet the success criteria defined for your account."},
	{Name: "verify.min_font_size_px_satisfied", Type: providers.TypeBoolean, Description: "A boolean indicating if the consent language met the minimum font size."},
	{Name: "verify.min_contrast_ratio_satisfied", Type: providers.TypeBoolean, Description: "A boolean indicating if the consent language met the minimum contrast ratio."},
}
