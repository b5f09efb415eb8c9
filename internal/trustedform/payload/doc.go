// Package payload navigates decoded TrustedForm responses and assembles the
// flat result maps handed back to the pipeline.
package payload

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// Doc wraps a decoded JSON value. Lookups never fail; a missing path yields
// an empty Doc whose Exists reports false. A JSON null is present but nil.
type Doc struct {
	v       any
	present bool
}

// Parse decodes body into a Doc. Numbers keep full float64 precision.
func Parse(body []byte) (Doc, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return Doc{}, fmt.Errorf("empty response body")
	}
	var v any
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return Doc{}, fmt.Errorf("decode response body: %w", err)
	}
	return Doc{v: v, present: true}, nil
}

// Wrap turns an already decoded value into a Doc.
func Wrap(v any) Doc {
	return Doc{v: v, present: true}
}

// Get descends a dotted path ("cert.geo.city").
func (d Doc) Get(path string) Doc {
	cur := d
	for _, key := range strings.Split(path, ".") {
		if !cur.present {
			return Doc{}
		}
		obj, ok := cur.v.(map[string]any)
		if !ok {
			return Doc{}
		}
		next, ok := obj[key]
		if !ok {
			return Doc{}
		}
		cur = Doc{v: next, present: true}
	}
	return cur
}

// Exists reports whether the value was present in the document, including null.
func (d Doc) Exists() bool { return d.present }

// IsNull reports a present JSON null.
func (d Doc) IsNull() bool { return d.present && d.v == nil }

// Value returns the raw decoded value.
func (d Doc) Value() any { return d.v }

// Object reports whether the value is a JSON object.
func (d Doc) Object() bool {
	_, ok := d.v.(map[string]any)
	return ok
}

// Truthy mirrors the loose truthiness pipelines apply to optional values:
// absent, null, false, zero, NaN and the empty string are falsy.
func (d Doc) Truthy() bool {
	if !d.present {
		return false
	}
	switch v := d.v.(type) {
	case nil:
		return false
	case bool:
		return v
	case float64:
		return v != 0 && !math.IsNaN(v)
	case string:
		return v != ""
	default:
		return true
	}
}

// String returns the value when it is a string, else "".
func (d Doc) String() string {
	s, _ := d.v.(string)
	return s
}

// Float returns the value when it is a number.
func (d Doc) Float() (float64, bool) {
	f, ok := d.v.(float64)
	return f, ok
}

// Strings returns a string array, skipping non-string elements. ok is false
// when the value is not an array.
func (d Doc) Strings() ([]string, bool) {
	arr, ok := d.v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(arr))
	for _, e := range arr {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out, true
}

// StringList accepts either a string or an array of strings.
func (d Doc) StringList() []string {
	if s, ok := d.v.(string); ok {
		return []string{s}
	}
	list, _ := d.Strings()
	return list
}

// Array returns the elements of an array value.
func (d Doc) Array() []Doc {
	arr, ok := d.v.([]any)
	if !ok {
		return nil
	}
	out := make([]Doc, len(arr))
	for i, e := range arr {
		out[i] = Doc{v: e, present: true}
	}
	return out
}

// Or returns d when truthy, else the fallback.
func (d Doc) Or(fallback Doc) Doc {
	if d.Truthy() {
		return d
	}
	return fallback
}

// OrPresent returns d when present (null included), else the fallback.
func (d Doc) OrPresent(fallback Doc) Doc {
	if d.present {
		return d
	}
	return fallback
}
