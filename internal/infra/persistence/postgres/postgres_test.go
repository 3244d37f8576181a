package postgres

import (
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolPressure(t *testing.T) {
	prev := sql.DBStats{WaitCount: 10, WaitDuration: time.Second}

	t.Run("no new waits", func(t *testing.T) {
		_, attrs, waited := poolPressure(prev, prev)

		assert.False(t, waited)
		assert.Nil(t, attrs)
	})

	t.Run("short waits stay at debug", func(t *testing.T) {
		cur := sql.DBStats{WaitCount: 12, WaitDuration: time.Second + 10*time.Millisecond}

		level, attrs, waited := poolPressure(prev, cur)

		assert.True(t, waited)
		assert.Equal(t, slog.LevelDebug, level)
		assert.Contains(t, attrs, slog.Duration("avg_wait", 5*time.Millisecond))
	})

	t.Run("long waits warn", func(t *testing.T) {
		cur := sql.DBStats{WaitCount: 14, WaitDuration: 2 * time.Second, MaxOpenConnections: 10, InUse: 10}

		level, attrs, waited := poolPressure(prev, cur)

		assert.True(t, waited)
		assert.Equal(t, slog.LevelWarn, level)
		assert.Contains(t, attrs, slog.Int64("waits", 4))
		assert.Contains(t, attrs, slog.Int("in_use", 10))
	})
}
