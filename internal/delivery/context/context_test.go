package context

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestScope_ValuesAreIndependent(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	userID := uuid.New()

	ctx := WithRequestID(context.Background(), "req-1")
	ctx = WithLogger(ctx, logger)
	withUser := WithUserID(ctx, userID)

	assert.Equal(t, "req-1", GetRequestIDFromContext(withUser))
	assert.Same(t, logger, GetLogger(withUser))

	got, ok := GetUserIDFromContext(withUser)
	assert.True(t, ok)
	assert.Equal(t, userID, got)

	_, ok = GetUserIDFromContext(ctx)
	assert.False(t, ok, "parent context must not see the caller")
}

func TestScope_Empty(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	assert.Empty(t, GetRequestIDFromContext(ctx))
	assert.Nil(t, GetLogger(ctx))
	assert.Same(t, fallback, GetLoggerOrDefault(ctx, fallback))
}
