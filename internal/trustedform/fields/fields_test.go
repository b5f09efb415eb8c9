package fields

import (
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trustedform/internal/trustedform/lead"
)

func TestTimeOnPageInSeconds(t *testing.T) {
	tests := []struct {
		name   string
		input  any
		want   int
		wantOK bool
	}{
		{"missing", nil, 0, false},
		{"zero", float64(0), 0, false},
		{"milliseconds", float64(19999), 20, true},
		{"truncates before rounding", float64(1499.9), 1, true},
		{"numeric string", "20289", 20, true},
		{"garbage string", "soon", 0, false},
		{"bool", true, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TimeOnPageInSeconds(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAgeInSeconds(t *testing.T) {
	age, ok := AgeInSeconds("2014-04-02T21:24:55Z", "2014-04-02T21:24:22Z", nil)
	require.True(t, ok)
	assert.Equal(t, 33, age)

	age, ok = AgeInSeconds("2014-04-02T21:24:55Z", "2014-04-02T21:24:22Z", float64(19999))
	require.True(t, ok)
	assert.Equal(t, 13, age)

	age, ok = AgeInSeconds("2014-04-02T21:24:55.600Z", "2014-04-02T21:24:22Z", nil)
	require.True(t, ok)
	assert.Equal(t, 34, age)

	_, ok = AgeInSeconds("", "2014-04-02T21:24:22Z", nil)
	assert.False(t, ok)
}

func TestFormatScanReason(t *testing.T) {
	assert.Equal(t, "1: 'free iPod from Obama!'",
		FormatScanReason(lead.Text("free iPod from Obama!"), []string{"free iPod from Obama!"}))

	assert.Equal(t, "2: 'alpha, bravo'",
		FormatScanReason(lead.Texts("bravo", "alpha", "charlie"), []string{"bravo", "alpha", "delta"}))

	assert.Equal(t, "0: ''", FormatScanReason(nil, []string{"anything"}))

	long := strings.Repeat("x", 300)
	reason := FormatScanReason(lead.Texts(long), []string{long})
	assert.Equal(t, "1: '"+strings.Repeat("x", 255)+"'", reason)
}

func TestCountRequiredMatched(t *testing.T) {
	assert.Equal(t, MatchedNone, CountRequiredMatched([]string{"a"}, nil))
	assert.Equal(t, MatchedNone, CountRequiredMatched([]string{"a"}, []string{}))
	assert.Equal(t, MatchedSome, CountRequiredMatched([]string{"temperance", "diligence"}, []string{"temperance"}))
	assert.Equal(t, MatchedAll, CountRequiredMatched([]string{"temperance"}, []string{"temperance", "diligence"}))
	assert.Equal(t, MatchedAll, CountRequiredMatched(nil, []string{"temperance"}))
}

func TestFingerprint(t *testing.T) {
	assert.Equal(t, "c4a8e7fe184993964ae81380e91579015306838a", Fingerprint("kelly@thethings.biz"))
	assert.Equal(t, "d511850d569bcd7802c30f54de34bb9f2b31eede", Fingerprint("5135556719"))
}

func TestEvalFingerprint(t *testing.T) {
	l := lead.Lead{Email: "kelly@thethings.biz", Phone1: "5135556719"}

	t.Run("all matched", func(t *testing.T) {
		out := EvalFingerprint(l, []string{Fingerprint(l.Email), Fingerprint(l.Phone1)}, nil)
		assert.Equal(t, map[string]any{
			"fingerprints_summary":        SummaryAllMatched,
			"email_fingerprint_matched":   true,
			"phone_1_fingerprint_matched": true,
		}, out)
	})

	t.Run("some matched", func(t *testing.T) {
		out := EvalFingerprint(l, []string{Fingerprint(l.Email)}, []string{"deadbeef"})
		assert.Equal(t, SummarySomeMatched, out["fingerprints_summary"])
		assert.Equal(t, true, out["email_fingerprint_matched"])
		assert.Equal(t, false, out["phone_1_fingerprint_matched"])
		assert.NotContains(t, out, "phone_2_fingerprint_matched")
	})

	t.Run("none matched", func(t *testing.T) {
		out := EvalFingerprint(l, nil, []string{"a", "b"})
		assert.Equal(t, map[string]any{"fingerprints_summary": SummaryNoneMatched}, out)
	})

	t.Run("no data", func(t *testing.T) {
		out := EvalFingerprint(l, nil, nil)
		assert.Equal(t, map[string]any{"fingerprints_summary": SummaryNoData}, out)
	})

	t.Run("generated contacts", func(t *testing.T) {
		for range 20 {
			generated := lead.Lead{Email: gofakeit.Email(), Phone2: gofakeit.Phone()}
			out := EvalFingerprint(generated, []string{Fingerprint(generated.Phone2)}, nil)
			assert.Equal(t, false, out["email_fingerprint_matched"])
			assert.Equal(t, true, out["phone_2_fingerprint_matched"])
		}
	})
}
