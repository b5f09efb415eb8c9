package fields

import (
	"crypto/sha1"
	"encoding/hex"

	"trustedform/internal/trustedform/lead"
)

// Fingerprint summaries.
const (
	SummaryAllMatched  = "All Matched"
	SummarySomeMatched = "Some Matched"
	SummaryNoneMatched = "None Matched"
	SummaryNoData      = "No Fingerprinting Data"
)

// Fingerprint is the hex SHA-1 digest TrustedForm records for a contact value.
func Fingerprint(value string) string {
	sum := sha1.Sum([]byte(value))
	return hex.EncodeToString(sum[:])
}

// EvalFingerprint compares the lead's contact fields against the certificate's
// matching fingerprints. Per-field flags are only reported when something matched.
func EvalFingerprint(l lead.Lead, matching, nonMatching []string) map[string]any {
	out := map[string]any{}
	if len(matching) == 0 {
		if len(nonMatching) > 0 {
			out["fingerprints_summary"] = SummaryNoneMatched
		} else {
			out["fingerprints_summary"] = SummaryNoData
		}
		return out
	}

	if len(nonMatching) > 0 {
		out["fingerprints_summary"] = SummarySomeMatched
	} else {
		out["fingerprints_summary"] = SummaryAllMatched
	}

	set := make(map[string]struct{}, len(matching))
	for _, m := range matching {
		set[m] = struct{}{}
	}
	for _, f := range []struct {
		name  string
		value string
	}{
		{"email", l.Email},
		{"phone_1", l.Phone1},
		{"phone_2", l.Phone2},
		{"phone_3", l.Phone3},
	} {
		if f.value == "" {
			continue
		}
		_, ok := set[Fingerprint(f.value)]
		out[f.name+"_fingerprint_matched"] = ok
	}
	return out
}
