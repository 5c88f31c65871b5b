package config_test

import (
	"testing"

	"audit-manager/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(".")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 32, cfg.Server.MaxUploadMB)
	assert.Equal(t, 30, cfg.Server.SessionTTLMinutes)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Storage.Enabled)
	assert.Equal(t, "audits", cfg.Storage.Bucket)
	assert.Equal(t, "Label No", cfg.Audit.IdentifierColumn)
	assert.Equal(t, "Pcs", cfg.Audit.QuantityColumn)
	assert.Equal(t, "Stock Menu", cfg.Audit.StatusColumn)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("AUDIT_IDENTIFIER_COLUMN", "Barcode")

	cfg, err := config.LoadConfig(".")
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, "Barcode", cfg.Audit.IdentifierColumn)
}
