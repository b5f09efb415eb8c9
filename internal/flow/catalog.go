package flow

import "trustedform/internal/trustedform/providers/unified"

// Field documents one selectable insights property or data service field.
type Field struct {
	Name        string `json:"name" yaml:"name"`
	Label       string `json:"label,omitempty" yaml:"label,omitempty"`
	Description string `json:"description" yaml:"description"`
	Use         string `json:"use,omitempty" yaml:"use,omitempty"`
}

var insightsDocs = map[string]Field{
	"age":                   {Label: "Age", Description: "The amount of time, in seconds, since the TrustedForm certificate was created. Serves as an approximation of lead age."},
	"location":              {Label: "Location", Description: "The city, state, postal code, country, timezone, latitude and longitude of the consumer's location during the lead event based on IP address."},
	"browser":               {Label: "Browser", Description: "The name and version of the browser used during the lead event."},
	"created_timestamp":     {Label: "Created Timestamp", Description: "Timestamp of the creation of the TrustedForm certificate, in ISO 8601 format."},
	"domain":                {Label: "Domain", Description: "The name of the website the lead event took place on."},
	"expiration_timestamp":  {Label: "Expiration Timestamp", Description: "A timestamp indicating when this certificate will no longer be available for API requests."},
	"form_input_kpm":        {Label: "Form Input KPM", Description: "The consumer's typing speed on the form, in keystrokes per minute."},
	"form_input_method":     {Label: "Form Input Method", Description: "A list of ways the consumer input their data onto the form including one or more of the following: typing, paste, autofill."},
	"form_input_wpm":        {Label: "Form Input WPM", Description: "The consumer's approximate typing speed on the form, in words per minute. This is calculated by using the Form Input KPM and assuming five characters represent a word."},
	"ip_address":            {Label: "IP Address", Description: "The public IP address of the consumer during the lead event."},
	"framed":                {Label: "Framed", Description: "Whether or not the lead event took place inside of an iframe."},
	"masked":                {Label: "Masked", Description: "Whether or not the TrustedForm certificate is masked."},
	"sensitive_content":     {Label: "Sensitive Content", Description: "Count of how many content elements (e.g. input, textarea) are marked sensitive and hidden from the session replay."},
	"sensitive_form_fields": {Label: "Sensitive Form Fields", Description: "Count of how many form fields (e.g. input, textarea) are marked sensitive and hidden from the session replay."},
	"operating_system":      {Label: "Operating System", Description: "The name and version of the operating system for the device used during the lead event."},
	"page_url":              {Label: "Page URL", Description: "The URL of the page where the lead event took place."},
	"parent_page_url":       {Label: "Parent Page URL", Description: "The URL displayed in the consumer's browser if the Page URL was displayed in an iframe."},
	"time_on_page":          {Label: "Time On Page", Description: "The amount of time, in seconds, that the consumer spent on the page during the lead event."},
	"bot_detected":          {Label: "Bot Detected", Description: "Whether automated form filling was detected during the lead event."},
	unified.PageScan:        {Label: "Page Scan", Description: "Results indicating whether specified text was found on the web page that created the certificate."},
}

// InsightsCatalog lists the v4 insights selections in send order, with page
// scanning last.
var InsightsCatalog = buildInsightsCatalog()

func buildInsightsCatalog() []Field {
	out := make([]Field, 0, len(unified.InsightsProperties)+1)
	for _, p := range unified.InsightsProperties {
		f := insightsDocs[p.Mapping]
		f.Name = p.Mapping
		if f.Description == "" {
			f.Description = p.Description
		}
		out = append(out, f)
	}
	scan := insightsDocs[unified.PageScan]
	scan.Name = unified.PageScan
	return append(out, scan)
}

// DataServiceCatalog documents the fields the data service appends and what
// buyers typically use them for.
var DataServiceCatalog = []Field{
	{Name: "age", Description: "The amount of time, in seconds, since the TrustedForm certificate was created. Serves as an approximation of lead age.", Use: "Only accept leads that meet their minimum requirement for lead age."},
	{Name: "browser", Description: "The browser name and version", Use: "Use browser type information to infer attributes about a consumer, and accept or reject a lead accordingly."},
	{Name: "created_at", Description: "Timestamp of the creation of the TrustedForm certificate, in ISO 8601 format.", Use: "Only accept leads that are less than x hours old, to maximize the likelihood of conversion."},
	{Name: "device", Description: "Mobile device type, if applicable.", Use: "Infer attributes about a consumer, and accept or reject a lead accordingly."},
	{Name: "event_duration", Description: "The amount of time, in seconds, that the consumer spent on the page filling out the form.", Use: "Longer time on page might indicate a more thoughtful conversion event. Some buyers may choose to reject leads where a minimum duration was not met."},
	{Name: "expires_at", Description: "Timestamp indicating when the claim period for the TrustedForm certificate expires.", Use: "Reject leads where the TrustedForm certificate has expired and can no longer be claimed for protection against TCPA complaints."},
	{Name: "framed", Description: "Whether or not the page_url was in an iframe."},
	{Name: "city", Description: "The city that the consumer was located in when they filled out the form, based on IP address.", Use: "Accept leads within a specific geographic area."},
	{Name: "country_code", Description: "The country that the consumer was located in when they filled out the form, based on IP address.", Use: "Accept leads within a specific geographic area."},
	{Name: "lat", Description: "The location (latitude) of the consumer when they filled out the form, based on IP address.", Use: "Accept leads within a specific geographic area."},
	{Name: "lon", Description: "The location (longitude) of the consumer when they filled out the form, based on IP address.", Use: "Accept leads within a specific geographic area."},
	{Name: "postal_code", Description: "The postal code that the consumer was located in when they filled out the form, based on IP address.", Use: "Accept leads within a specific geographic area."},
	{Name: "state", Description: "The state that the consumer was in when they filled out the form, based on IP address.", Use: "Accept leads within a specific geographic area."},
	{Name: "time_zone", Description: "The time zone that the consumer was in when they filled out the form, based on IP address.", Use: "Accept leads within a specific geographic area."},
	{Name: "ip", Description: "The IP address of the consumer."},
	{Name: "wpm", Description: "The consumer's typing speed on the form, in words per minute.", Use: "Use typing speed information to infer attributes about a consumer. A buyer might reject leads that don't fall within a desired range."},
	{Name: "kpm", Description: "The consumer's typing speed on the form, in keystrokes per minute.", Use: "A kpm that is greater than wpm indicates the use of the delete key and/or spacebar. This might suggest a lower likelihood of bot activity and a lower probability that a lead is fraudulent."},
	{Name: "page_url", Description: "The URL of the page on which the consumer filled out the form.", Use: "Track leads back to their original source regardless of where they were purchased."},
	{Name: "operating_system", Description: "The operating system for the device from which the consumer filled out the form.", Use: "Infer attributes about a consumer, and accept or reject a lead accordingly."},
	{Name: "parent_page_url", Description: "The URL of the page on which the consumer filled out the form. The value will be null unless framed=true."},
	{Name: "cert_id", Description: "The TrustedForm certificate ID."},
	{Name: "user_agent", Description: "The browser and operating system for the device on which the consumer filled out the form.", Use: "Infer attributes about a consumer, and accept or reject a lead accordingly."},
	{Name: "fingerprints_matching", Description: "Matching fingerprints that were found on the TrustedForm certificate.", Use: "Accept a lead where there is a fingerprint match."},
	{Name: "fingerprints_non_matching", Description: "Non-matching fingerprints that were found on the TrustedForm certificate.", Use: "Reject a lead where there is not a fingerprint match."},
	{Name: "masked", Description: "Whether or not the TrustedForm certificate is masked.", Use: "Route leads with masked certificates to a different system."},
	{Name: "scans_found", Description: "Language that was found through the use of page scanning.", Use: "Accept leads where desired language was found on the page through the use of page scanning."},
	{Name: "scans_not_found", Description: "Language that was not found through the use of page scanning.", Use: "Reject leads where page scanning indicates that desired language was not found on the page."},
	{Name: "warnings", Description: "Any warnings present about the content of the form, specific to page scanning and fingerprinting.", Use: "Reject leads where warnings are present."},
}
