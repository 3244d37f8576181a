package logs

import (
	"bytes"
	"log/slog"
	"testing"

	"mytube/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "INFO", want: slog.LevelInfo},
		{input: "warn", want: slog.LevelWarn},
		{input: "warning", want: slog.LevelWarn},
		{input: "", want: slog.LevelInfo},
		{input: "error", want: slog.LevelError},
		{input: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseLogLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_RedactsCredentials(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "mytube"
	cfg.Env.Log.Level = "info"

	var buf bytes.Buffer
	logger, err := New(Params{Config: cfg, Output: &buf})
	require.NoError(t, err)

	logger.Info("login attempt",
		slog.String("username", "alice"),
		slog.String("password", "hunter2"),
		slog.String("refresh_token", "abc.def.ghi"),
	)

	line := buf.String()
	assert.Contains(t, line, `"username":"alice"`)
	assert.Contains(t, line, `"service":"mytube"`)
	assert.NotContains(t, line, "hunter2")
	assert.NotContains(t, line, "abc.def.ghi")
	assert.Contains(t, line, redacted)
}
