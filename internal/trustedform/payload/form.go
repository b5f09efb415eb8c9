package payload

import (
	"net/url"
	"strings"
)

// Form is an ordered application/x-www-form-urlencoded body. Empty values are
// skipped so unset lead fields never reach the wire.
type Form struct {
	keys   []string
	values []string
}

// Add appends key=value when value is non-empty.
func (f *Form) Add(key, value string) *Form {
	if value == "" {
		return f
	}
	f.keys = append(f.keys, key)
	f.values = append(f.values, value)
	return f
}

// AddAll appends key once per non-empty value.
func (f *Form) AddAll(key string, values []string) *Form {
	for _, v := range values {
		f.Add(key, v)
	}
	return f
}

// Values converts the form into url.Values (order is lost).
func (f *Form) Values() url.Values {
	out := url.Values{}
	for i, k := range f.keys {
		out.Add(k, f.values[i])
	}
	return out
}

// Encode renders the body in insertion order.
func (f *Form) Encode() string {
	var b strings.Builder
	for i, k := range f.keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(f.values[i]))
	}
	return b.String()
}

// Len returns the number of fields.
func (f *Form) Len() int { return len(f.keys) }
