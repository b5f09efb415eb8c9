// Package lead holds the normalized lead variables the TrustedForm adapters read.
package lead

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Vars is the variable set a pipeline hands to an outbound adapter.
type Vars struct {
	Lead           Lead              `json:"lead"`
	TrustedForm    Options           `json:"trustedform"`
	Insights       InsightsSelection `json:"insights,omitempty"`
	Source         Source            `json:"source"`
	ActiveProspect Account           `json:"activeprospect"`
	// Token overrides the configured data service bearer token.
	Token string `json:"token,omitempty"`
}

// Lead carries the contact fields and the certificate to act on.
type Lead struct {
	ID                 string `json:"id,omitempty"`
	TrustedFormCertURL string `json:"trustedform_cert_url,omitempty"`
	Email              string `json:"email,omitempty"`
	Phone1             string `json:"phone_1,omitempty"`
	Phone2             string `json:"phone_2,omitempty"`
	Phone3             string `json:"phone_3,omitempty"`
}

// Options are the trustedform.* integration settings.
type Options struct {
	APIKey            string    `json:"api_key,omitempty"`
	Vendor            string    `json:"vendor,omitempty"`
	CustomReference   string    `json:"custom_reference,omitempty"`
	ScanRequiredText  *TextList `json:"scan_required_text,omitempty"`
	ScanForbiddenText *TextList `json:"scan_forbidden_text,omitempty"`
	ScanDelimiter     string    `json:"scan_delimiter,omitempty"`
	Retain            Flag      `json:"retain,omitempty"`
	Insights          Flag      `json:"insights,omitempty"`
	Verify            Flag      `json:"verify,omitempty"`
	AdvertiserName    string    `json:"advertiser_name,omitempty"`
}

// Source describes the lead's origin.
type Source struct {
	Name string `json:"name,omitempty"`
}

// Account holds account-level credentials.
type Account struct {
	APIKey string `json:"api_key,omitempty"`
}

// DefaultScanDelimiter marks wildcards and template variables inside a scan text.
const DefaultScanDelimiter = "|"

// APIKey resolves the key used for Basic auth, preferring the integration setting.
func (v *Vars) APIKey() string {
	if v.TrustedForm.APIKey != "" {
		return v.TrustedForm.APIKey
	}
	return v.ActiveProspect.APIKey
}

// Vendor resolves the vendor name, falling back to the lead source.
func (v *Vars) Vendor() string {
	if v.TrustedForm.Vendor != "" {
		return v.TrustedForm.Vendor
	}
	return v.Source.Name
}

// ScanDelimiter returns the configured delimiter or the default pipe.
func (v *Vars) ScanDelimiter() string {
	if v.TrustedForm.ScanDelimiter != "" {
		return v.TrustedForm.ScanDelimiter
	}
	return DefaultScanDelimiter
}

// Required returns the required scan texts as a list (nil when unset).
func (v *Vars) Required() []string {
	return v.TrustedForm.ScanRequiredText.Values()
}

// Forbidden returns the forbidden scan texts as a list (nil when unset).
func (v *Vars) Forbidden() []string {
	return v.TrustedForm.ScanForbiddenText.Values()
}

// HasContact reports whether the lead carries an email or primary phone.
func (v *Vars) HasContact() bool {
	return v.Lead.Email != "" || v.Lead.Phone1 != ""
}

// Flag is a boolean that also accepts the strings "true" and "false", the way
// pipeline mappings deliver checkbox values.
type Flag bool

// Enabled reports the flag's value.
func (f Flag) Enabled() bool { return bool(f) }

// UnmarshalJSON implements json.Unmarshaler.
func (f *Flag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = false
		return nil
	}
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = Flag(b)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("flag must be a boolean or string: %w", err)
	}
	parsed, err := ParseFlag(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// ParseFlag parses a textual boolean. Empty input is false.
func ParseFlag(s string) (Flag, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "1":
		return true, nil
	case "false", "no", "0", "":
		return false, nil
	default:
		return false, fmt.Errorf("invalid flag value %q", s)
	}
}

// InsightsSelection is the set of insights properties toggled on for a lead,
// keyed by property name (age, browser, page_scan, ...).
type InsightsSelection map[string]Flag

// Enabled reports whether the named property is selected.
func (s InsightsSelection) Enabled(name string) bool {
	if s == nil {
		return false
	}
	return s[name].Enabled()
}

// TextList is scan text given either as one string or as a list of strings.
// The original shape is preserved so it can be echoed back verbatim.
type TextList struct {
	values []string
	scalar bool
}

// Text builds a scalar TextList.
func Text(s string) *TextList {
	return &TextList{values: []string{s}, scalar: true}
}

// Texts builds a list TextList.
func Texts(values ...string) *TextList {
	return &TextList{values: append([]string(nil), values...)}
}

// IsSet reports whether any text was provided.
func (t *TextList) IsSet() bool {
	return t != nil && len(t.values) > 0
}

// Scalar reports whether the text was given as a single string.
func (t *TextList) Scalar() bool {
	return t != nil && t.scalar
}

// Values returns the texts as a list.
func (t *TextList) Values() []string {
	if t == nil {
		return nil
	}
	return t.values
}

// Contains matches a scanned text against the configured texts. A scalar
// matches by substring, a list by membership.
func (t *TextList) Contains(text string) bool {
	if t == nil {
		return false
	}
	if t.scalar {
		return len(t.values) == 1 && strings.Contains(t.values[0], text)
	}
	for _, v := range t.values {
		if v == text {
			return true
		}
	}
	return false
}

// MarshalJSON implements json.Marshaler.
func (t TextList) MarshalJSON() ([]byte, error) {
	if t.scalar && len(t.values) == 1 {
		return json.Marshal(t.values[0])
	}
	if t.values == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(t.values)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *TextList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = TextList{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "" {
			*t = TextList{}
			return nil
		}
		*t = TextList{values: []string{s}, scalar: true}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("scan text must be a string or list of strings: %w", err)
	}
	*t = TextList{values: list}
	return nil
}
