package router

import (
	"testing"

	"mytube/config"

	"github.com/stretchr/testify/assert"
)

func TestLocalMediaDir(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.MediaConfig
		wantDir string
		wantOK  bool
	}{
		{name: "nil config", cfg: nil},
		{name: "file bucket", cfg: &config.MediaConfig{Provider: "blob", BucketURL: "file:///tmp/mytube-media"}, wantDir: "/tmp/mytube-media", wantOK: true},
		{name: "memory bucket", cfg: &config.MediaConfig{Provider: "blob", BucketURL: "mem://"}},
		{name: "s3 provider", cfg: &config.MediaConfig{Provider: "s3", BucketURL: "file:///tmp/mytube-media"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, ok := localMediaDir(tt.cfg)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantDir, dir)
		})
	}
}
