package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusFromFlags(t *testing.T) {
	tests := []struct {
		name     string
		facebook bool
		lapor    bool
		want     ComplaintStatus
	}{
		{"neither", false, false, StatusSubmitted},
		{"facebook only", true, false, StatusRedirected},
		{"lapor only", false, true, StatusRedirected},
		{"both", true, true, StatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFromFlags(tt.facebook, tt.lapor))
		})
	}
}

func TestNormalizePlatform(t *testing.T) {
	for _, raw := range []string{"facebook", "Facebook", " FACEBOOK "} {
		got, ok := NormalizePlatform(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, PlatformFacebook, got)
	}

	got, ok := NormalizePlatform("Lapor")
	assert.True(t, ok)
	assert.Equal(t, PlatformLapor, got)

	_, ok = NormalizePlatform("twitter")
	assert.False(t, ok)
}
