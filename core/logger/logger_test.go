package logger_test

import (
	"testing"

	"audit-manager/core/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		cfg    logger.Config
		level  zapcore.Level
		silent zapcore.Level
	}{
		{"Debug", logger.Config{Level: "debug", Format: "console"}, zapcore.DebugLevel, -1},
		{"InfoDefault", logger.Config{Level: "info", Format: "json"}, zapcore.InfoLevel, zapcore.DebugLevel},
		{"Warn", logger.Config{Level: "warn", Format: "json"}, zapcore.WarnLevel, zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := logger.New(&tt.cfg)
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(tt.level))
			if tt.silent >= zapcore.DebugLevel {
				assert.False(t, l.Core().Enabled(tt.silent))
			}
		})
	}
}
