package server_test

import (
	"testing"
	"time"

	"audit-manager/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_BodyLimit(t *testing.T) {
	tests := []struct {
		name string
		mb   int
		want int
	}{
		{"Default", 0, 32 * 1024 * 1024},
		{"Negative", -5, 32 * 1024 * 1024},
		{"Explicit", 8, 8 * 1024 * 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{MaxUploadMB: tt.mb}
			assert.Equal(t, tt.want, c.BodyLimit())
		})
	}
}

func TestConfig_SessionTTL(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		want    time.Duration
	}{
		{"Default", 0, 30 * time.Minute},
		{"Explicit", 5, 5 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{SessionTTLMinutes: tt.minutes}
			assert.Equal(t, tt.want, c.SessionTTL())
		})
	}
}
