package claim

import "trustedform/internal/trustedform/providers"

var requestVariables = []providers.Variable{
	{Name: "lead.trustedform_cert_url", Type: providers.TypeString, Required: true, Description: "TrustedForm Certificate URL"},
	{Name: "trustedform.scan_required_text", Type: providers.TypeArray, Description: "Required text to search snapshot for"},
	{Name: "trustedform.scan_forbidden_text", Type: providers.TypeArray, Description: "Forbidden text to search snapshot for"},
	{Name: "trustedform.vendor", Type: providers.TypeString, Description: "Lead vendor name sent to TrustedForm, defaults to the lead source name"},
	{Name: "trustedform.api_key", Type: providers.TypeCredential, Description: "Optional TrustedForm API key. Used for claiming certs that belong to another account"},
	{Name: "trustedform.custom_reference", Type: providers.TypeString, Description: "Optional reference, defaults to the lead's url"},
	{Name: "lead.email", Type: providers.TypeString, Description: `Lead email that will be fingerprinted, defaults to the lead's "Email" field`},
	{Name: "lead.phone_1", Type: providers.TypeString, Description: `Lead phone 1 that will be fingerprinted, defaults to the lead's "Phone 1" field`},
	{Name: "lead.phone_2", Type: providers.TypeString, Description: `Lead phone 2 that will be fingerprinted, defaults to the lead's "Phone 2" field`},
	{Name: "lead.phone_3", Type: providers.TypeString, Description: `Lead phone 3 that will be fingerprinted, defaults to the lead's "Phone 3" field`},
}

var responseVariables = []providers.Variable{
	{Name: "outcome", Type: providers.TypeString, Description: "certificate claim result"},
	{Name: "reason", Type: providers.TypeString, Description: "in case of failure, the reason for failure"},
	{Name: "user_agent", Type: providers.TypeString, Description: "Consumer browsers user-agent"},
	{Name: "browser", Type: providers.TypeString, Description: "Human friendly version of user-agent"},
	{Name: "os", Type: providers.TypeString, Description: "Human friendly version of the users operating system"},
	{Name: "ip", Type: providers.TypeString, Description: "Consumers IP address"},
	{Name: "token", Type: providers.TypeString, Description: "The TrustedForm certificate token"},
	{Name: "location.city", Type: providers.TypeString, Description: "City name"},
	{Name: "location.country_code", Type: providers.TypeString, Description: "Country code"},
	{Name: "location.latitude", Type: providers.TypeNumber, Description: "Latitude"},
	{Name: "location.longitude", Type: providers.TypeNumber, Description: "Longitude"},
	{Name: "location.postal_code", Type: providers.TypeString, Description: "Mailing address postal code"},
	{Name: "location.state", Type: providers.TypeString, Description: "State or province name"},
	{Name: "location.time_zone", Type: providers.TypeString, Description: "Time zone name"},
	{Name: "snapshot_url", Type: providers.TypeString, Description: "URL of the snapshot of the offer page as seen by the user"},
	{Name: "masked_cert_url", Type: providers.TypeString, Description: "The certificate url that masks the lead source url and snapshot"},
	{Name: "url", Type: providers.TypeString, Description: "Parent frames URL if the page is framed, or location of the page hosting the javascript"},
	{Name: "website.location", Type: providers.TypeString, Description: "The URL of the page hosting the TrustedForm script"},
	{Name: "website.parent_location", Type: providers.TypeString, Description: "The parent frame URL when the page is framed"},
	{Name: "domain", Type: providers.TypeString, Description: "Domain of the url"},
	{Name: "age_in_seconds", Type: providers.TypeNumber, Description: "Number of seconds since the certificate was created"},
	{Name: "time_on_page_in_seconds", Type: providers.TypeNumber, Description: "Number of seconds the consumer spent filling out the offer form"},
	{Name: "created_at", Type: providers.TypeTime, Description: "Time the user loaded the form in UTC ISO8601 format"},
	{Name: "is_masked", Type: providers.TypeBoolean, Description: "Whether the cert being claimed is masked"},
	{Name: "expires_at", Type: providers.TypeTime, Description: "Time the cert would have expired if not claimed"},
	{Name: "share_url", Type: providers.TypeURL, Description: "The expiring share URL of the certificate"},
	{Name: "scans.found", Type: providers.TypeArray, Description: "Forbidden scan terms found in the claim"},
	{Name: "scans.not_found", Type: providers.TypeArray, Description: "Required scan terms not found in the claim"},
	{Name: "scans.num_required_matched", Type: providers.TypeString, Description: "How many of the required strings were scanned? (all, some, none)"},
	{Name: "duration", Type: providers.TypeNumber, Description: "The number of seconds the API call took, according to TrustedForm"},
	{Name: "fingerprints_summary", Type: providers.TypeString, Description: "Summary of fingerprint matching, one of All Matched, Some Matched, None Matched, or No Fingerprinting Data"},
	{Name: "email_fingerprint_matched", Type: providers.TypeBoolean, Description: "True if the fingerprint of the email matched"},
	{Name: "phone_1_fingerprint_matched", Type: providers.TypeBoolean, Description: "True if the fingerprint of phone_1 matched"},
	{Name: "phone_2_fingerprint_matched", Type: providers.TypeBoolean, Description: "True if the fingerprint of phone_2 matched"},
	{Name: "phone_3_fingerprint_matched", Type: providers.TypeBoolean, Description: "True if the fingerprint of phone_3 matched"},
	{Name: "warnings", Type: providers.TypeArray, Description: "Any warnings returned by the claim"},
}
