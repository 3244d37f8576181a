package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"mytube/config"
	deliverycontext "mytube/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestGormSlogLogger_Classify(t *testing.T) {
	warnOnly := &gormSlogLogger{level: logger.Warn, slow: slowQueryThreshold}
	verbose := &gormSlogLogger{level: logger.Info, slow: slowQueryThreshold}

	tests := []struct {
		name      string
		l         *gormSlogLogger
		err       error
		elapsed   time.Duration
		wantLevel slog.Level
		wantOK    bool
	}{
		{name: "failure", l: warnOnly, err: errors.New("boom"), wantLevel: slog.LevelError, wantOK: true},
		{name: "not found is quiet", l: warnOnly, err: gorm.ErrRecordNotFound},
		{name: "duplicate key is quiet", l: warnOnly, err: gorm.ErrDuplicatedKey},
		{name: "slow query", l: warnOnly, elapsed: time.Second, wantLevel: slog.LevelWarn, wantOK: true},
		{name: "fast query hidden at warn", l: warnOnly, elapsed: time.Millisecond},
		{name: "fast query shown in debug", l: verbose, elapsed: time.Millisecond, wantLevel: slog.LevelInfo, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, _, ok := tt.l.classify(tt.err, tt.elapsed)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantLevel, level)
			}
		})
	}
}

func TestGormSlogLogger_TraceUsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = true

	l := newGormSlogLogger(slog.New(slog.NewTextHandler(&base, nil)), cfg)
	ctx := deliverycontext.WithLogger(context.Background(),
		slog.New(slog.NewTextHandler(&scoped, nil)).With(slog.String("request_id", "req-9")))

	longSQL := "SELECT * FROM videos WHERE title ILIKE '" + strings.Repeat("a", maxLoggedSQL) + "'"
	l.Trace(ctx, time.Now(), func() (string, int64) { return longSQL, 3 }, nil)

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "request_id=req-9")
	assert.Contains(t, scoped.String(), "rows=3")
	assert.NotContains(t, scoped.String(), longSQL)
}
