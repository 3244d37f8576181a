package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"media": map[string]any{
			"bucketUrl": "mem://",
			"s3": map[string]any{
				"usePathStyle": false,
			},
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"rateLimit": map[string]any{
			"requestsPerSecond": 10,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "MEDIA_BUCKETURL", want: "media.bucketUrl"},
		{envKey: "MEDIA_S3_USEPATHSTYLE", want: "media.s3.usePathStyle"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "RATELIMIT_REQUESTSPERSECOND", want: "rateLimit.requestsPerSecond"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsUnsetValues(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultMaxUploadSize, cfg.HTTP.MaxUploadSize)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.True(t, cfg.Auth.CookieSecure)
	require.NotNil(t, cfg.Media)
	assert.Equal(t, "mem://", cfg.Media.BucketURL)
	assert.Equal(t, "ffprobe", cfg.Media.Probe.Binary)
	assert.Equal(t, 12, cfg.Pagination.FeedLimit)
	assert.Equal(t, 10, cfg.Pagination.CommentLimit)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Auth:       &AuthConfig{BcryptCost: 4, AccessTokenTTL: time.Minute},
		Pagination: &PaginationConfig{FeedLimit: 30},
	}

	applyDefaults(cfg)

	assert.Equal(t, 4, cfg.Auth.BcryptCost)
	assert.Equal(t, time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 30, cfg.Pagination.FeedLimit)
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	content := []byte("http:\n  port: 8080\nmedia:\n  bucketUrl: mem://\n  requestTimeout: 30s\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), content, 0o600))

	t.Setenv("MEDIA_BUCKETURL", "file:///tmp/mytube")
	t.Chdir(dir)

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	require.NotNil(t, cfg.Media)
	assert.Equal(t, "file:///tmp/mytube", cfg.Media.BucketURL)
	assert.Equal(t, 30*time.Second, cfg.Media.RequestTimeout)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")

	assert.Error(t, err)
}
