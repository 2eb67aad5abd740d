package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/logger"
)

func TestLoggerConfig_LogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  logger.Level
	}{
		{"debug", logger.DebugLevel},
		{"info", logger.InfoLevel},
		{"warn", logger.WarnLevel},
		{"error", logger.ErrorLevel},
		{"unknown", logger.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			c := LoggerConfig{Level: tt.level}
			assert.Equal(t, tt.want, c.LogLevel())
		})
	}
}

func TestLoggerConfig_LogEngine(t *testing.T) {
	c := LoggerConfig{Engine: "zerolog"}
	assert.Equal(t, logger.Engine("zerolog"), c.LogEngine())
}
