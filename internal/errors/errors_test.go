package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	kind := New("media timeout")
	cause := New("context deadline exceeded")

	err := Mark(kind, cause, "upload thumbnail")

	assert.True(t, Is(err, kind))
	assert.True(t, Is(err, cause))
	assert.Contains(t, err.Error(), "upload thumbnail")
	assert.Contains(t, err.Error(), "context deadline exceeded")
}

func TestMark_NilCause(t *testing.T) {
	kind := New("not found")

	err := Mark(kind, nil, "find video")

	assert.True(t, Is(err, kind))
	assert.Equal(t, "find video: not found", err.Error())
}
