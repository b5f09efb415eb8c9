package certurl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "https://cert.trustedform.com/533c80270218239ec3000012", Format("http://cert.trustedform.com/533c80270218239ec3000012"))
	assert.Equal(t, "https://cert.trustedform.com/533c80270218239ec3000012", Format("  https://cert.trustedform.com/533c80270218239ec3000012 "))
	assert.Equal(t, "https://cert.trustedform.com/abc", Format("HTTP://cert.trustedform.com/abc"))
	assert.Equal(t, "", Format(""))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"blank", "", MessageBlank},
		{"whitespace", "   ", MessageBlank},
		{"24 hex", "https://cert.trustedform.com/533c80270218239ec3000012", ""},
		{"40 hex", "https://cert.trustedform.com/2605ec3a321e1b3a41addf0bba1213505ef57985", ""},
		{"http is accepted", "http://cert.trustedform.com/533c80270218239ec3000012", ""},
		{"staging", "https://cert.staging.trustedform.com/533c80270218239ec3000012", ""},
		{"dev", "https://cert.trustedform-dev.com/533c80270218239ec3000012", ""},
		{"facebook token", "https://cert.trustedform.com/0.Ca5pvc3GxF0J2xrYu2Y7Qb7a-8tuUw4gyHoBtGwlO2X1hi_wMrBFSsxCE7mNvI1XSwt3obB9dgYt7dM", ""},
		{"not a cert id", "https://cert.trustedform.com/example", MessageInvalid},
		{"wrong host", "https://example.com/533c80270218239ec3000012", MessageInvalid},
		{"ping url", "https://ping.trustedform.com/0.abc", MessageInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.url))
		})
	}
}

func TestIsPing(t *testing.T) {
	assert.True(t, IsPing("https://ping.trustedform.com/0.abcdef"))
	assert.True(t, IsPing("https://ping.staging.trustedform.com/0.abcdef"))
	assert.False(t, IsPing("https://cert.trustedform.com/533c80270218239ec3000012"))
	assert.False(t, IsPing("http://ping.trustedform.com/0.abcdef"))
}
