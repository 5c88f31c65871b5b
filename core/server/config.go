package server

import "time"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	// Empty disables authentication.
	ApiKey string `mapstructure:"api_key" default:""`
	// MaxUploadMB is the per-request upload limit in megabytes.
	// The audit endpoint receives three spreadsheets in one request.
	MaxUploadMB int `mapstructure:"max_upload_mb" default:"32"`
	// SessionTTLMinutes is how long finished audit results remain
	// downloadable before they are discarded.
	SessionTTLMinutes int `mapstructure:"session_ttl_minutes" default:"30"`
}

const (
	defaultMaxUploadMB       = 32
	defaultSessionTTLMinutes = 30
)

// BodyLimit returns the request body limit in bytes.
func (c Config) BodyLimit() int {
	mb := c.MaxUploadMB
	if mb <= 0 {
		mb = defaultMaxUploadMB
	}
	return mb * 1024 * 1024
}

// SessionTTL returns the audit session lifetime.
func (c Config) SessionTTL() time.Duration {
	m := c.SessionTTLMinutes
	if m <= 0 {
		m = defaultSessionTTLMinutes
	}
	return time.Duration(m) * time.Minute
}
