// Package fields computes the derived values shared by the TrustedForm adapters.
package fields

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"trustedform/internal/trustedform/lead"
)

// Scan match classifications.
const (
	MatchedNone = "none"
	MatchedSome = "some"
	MatchedAll  = "all"
)

const maxScanReasonLength = 255

// Round rounds half up, matching how the pipeline rounds derived numbers.
func Round(x float64) float64 {
	return math.Floor(x + 0.5)
}

// TimeOnPageInSeconds converts an event duration in milliseconds to whole
// seconds. Missing, zero or non-numeric durations yield ok=false.
func TimeOnPageInSeconds(eventDuration any) (int, bool) {
	var ms float64
	switch v := eventDuration.(type) {
	case float64:
		ms = v
	case int:
		ms = float64(v)
	case int64:
		ms = float64(v)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		ms = f
	default:
		return 0, false
	}
	if ms == 0 || math.IsNaN(ms) || math.IsInf(ms, 0) {
		return 0, false
	}
	return int(Round(math.Trunc(ms) / 1000)), true
}

// AgeInSeconds is the certificate's age at the time of the event, minus the
// time the consumer spent on the page.
func AgeInSeconds(eventCreatedAt, certCreatedAt string, eventDuration any) (int, bool) {
	eventAt, err := parseTimestamp(eventCreatedAt)
	if err != nil {
		return 0, false
	}
	certAt, err := parseTimestamp(certCreatedAt)
	if err != nil {
		return 0, false
	}
	age := eventAt.Sub(certAt).Seconds()
	if top, ok := TimeOnPageInSeconds(eventDuration); ok {
		age -= float64(top)
	}
	return int(Round(age)), true
}

func parseTimestamp(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, strings.TrimSpace(s))
}

// FormatScanReason lists the texts that were scanned for, e.g. "2: 'a, b'".
func FormatScanReason(scannedFor *lead.TextList, texts []string) string {
	matched := make([]string, 0, len(texts))
	for _, t := range texts {
		if scannedFor.Contains(t) {
			matched = append(matched, t)
		}
	}
	sort.Strings(matched)
	joined := []rune(strings.Join(matched, ", "))
	if len(joined) > maxScanReasonLength {
		joined = joined[:maxScanReasonLength]
	}
	return fmt.Sprintf("%d: '%s'", len(matched), string(joined))
}

// CountRequiredMatched classifies how many required texts appear in found.
func CountRequiredMatched(required, found []string) string {
	if len(found) == 0 {
		return MatchedNone
	}
	present := make(map[string]struct{}, len(found))
	for _, f := range found {
		present[f] = struct{}{}
	}
	for _, r := range required {
		if _, ok := present[r]; !ok {
			return MatchedSome
		}
	}
	return MatchedAll
}
