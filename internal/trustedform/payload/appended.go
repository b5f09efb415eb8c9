package payload

// Appended is the flat set of named fields an adapter appends to a lead.
type Appended map[string]any

// Result keys shared by all adapters.
const (
	KeyOutcome = "outcome"
	KeyReason  = "reason"
)

// Outcome builds a result with the given outcome and an optional reason.
func Outcome(outcome, reason string) Appended {
	a := Appended{KeyOutcome: outcome}
	if reason != "" {
		a[KeyReason] = reason
	}
	return a
}

// Set stores v under key.
func (a Appended) Set(key string, v any) Appended {
	a[key] = v
	return a
}

// Copy stores the Doc's value under key when it was present, null included.
func (a Appended) Copy(key string, d Doc) Appended {
	if d.present {
		a[key] = d.v
	}
	return a
}

// CopyOrNull stores the Doc's value, or null when absent.
func (a Appended) CopyOrNull(key string, d Doc) Appended {
	a[key] = d.v
	return a
}

// Merge copies every key of other into a.
func (a Appended) Merge(other map[string]any) Appended {
	for k, v := range other {
		a[k] = v
	}
	return a
}

// OutcomeOf extracts the outcome of a flat result, or of a result nested one
// level deep under a product key (data_service results are).
func OutcomeOf(a Appended) (outcome, reason string) {
	if o, ok := a[KeyOutcome].(string); ok {
		r, _ := a[KeyReason].(string)
		return o, r
	}
	for _, v := range a {
		var nested map[string]any
		switch n := v.(type) {
		case Appended:
			nested = n
		case map[string]any:
			nested = n
		default:
			continue
		}
		if o, ok := nested[KeyOutcome].(string); ok {
			r, _ := nested[KeyReason].(string)
			return o, r
		}
	}
	return "", ""
}
