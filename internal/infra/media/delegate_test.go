package media

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"mytube/internal/domain/entity"
	"mytube/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/memblob"
)

type fixedProbe struct {
	duration float64
	err      error
}

func (p fixedProbe) Duration(context.Context, string) (float64, error) {
	return p.duration, p.err
}

// stalledStore blocks until the context gives up.
type stalledStore struct{}

func (stalledStore) Put(ctx context.Context, _ string, _ io.Reader, _ string) error {
	<-ctx.Done()

	return ctx.Err()
}

func (stalledStore) Remove(ctx context.Context, _ string) error {
	<-ctx.Done()

	return ctx.Err()
}

func (stalledStore) Close() error { return nil }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestDelegate_UploadVideo(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	delegate := NewDelegate(newBlobStore(bucket), fixedProbe{duration: 12.5}, "https://cdn.example.com/", time.Second, discardLogger())
	ctx := context.Background()
	local := writeTempFile(t, "clip.MP4", "not really a video")

	uploaded, err := delegate.Upload(ctx, local, entity.MediaKindVideo)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(uploaded.StorageID, "videos/"))
	assert.True(t, strings.HasSuffix(uploaded.StorageID, ".mp4"))
	assert.Equal(t, "https://cdn.example.com/"+uploaded.StorageID, uploaded.URL)
	assert.InDelta(t, 12.5, uploaded.Duration, 0.0001)

	stored, err := bucket.ReadAll(ctx, uploaded.StorageID)
	require.NoError(t, err)
	assert.Equal(t, "not really a video", string(stored))

	_, statErr := os.Stat(local)
	assert.True(t, os.IsNotExist(statErr), "local file must be removed after upload")
}

func TestDelegate_UploadImageSkipsProbe(t *testing.T) {
	delegate := NewDelegate(newBlobStore(memblob.OpenBucket(nil)), fixedProbe{err: assert.AnError}, "", time.Second, discardLogger())
	local := writeTempFile(t, "avatar.png", "png")

	uploaded, err := delegate.Upload(context.Background(), local, entity.MediaKindImage)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(uploaded.StorageID, "images/"))
	assert.Equal(t, uploaded.StorageID, uploaded.URL)
	assert.Zero(t, uploaded.Duration)
}

func TestDelegate_UploadProbeFailureRemovesLocalFile(t *testing.T) {
	delegate := NewDelegate(newBlobStore(memblob.OpenBucket(nil)), fixedProbe{err: assert.AnError}, "", time.Second, discardLogger())
	local := writeTempFile(t, "broken.mp4", "???")

	_, err := delegate.Upload(context.Background(), local, entity.MediaKindVideo)
	require.Error(t, err)

	_, statErr := os.Stat(local)
	assert.True(t, os.IsNotExist(statErr))
}

func TestDelegate_UploadTimeout(t *testing.T) {
	delegate := NewDelegate(stalledStore{}, nil, "", 20*time.Millisecond, discardLogger())
	local := writeTempFile(t, "slow.png", "png")

	_, err := delegate.Upload(context.Background(), local, entity.MediaKindImage)

	assert.ErrorIs(t, err, service.ErrMediaTimeout)
}

func TestDelegate_DeleteMissingObjectSucceeds(t *testing.T) {
	delegate := NewDelegate(newBlobStore(memblob.OpenBucket(nil)), nil, "", time.Second, discardLogger())

	require.NoError(t, delegate.Delete(context.Background(), "images/gone.png", entity.MediaKindImage))
}

func TestDelegate_DeleteTimeout(t *testing.T) {
	delegate := NewDelegate(stalledStore{}, nil, "", 20*time.Millisecond, discardLogger())

	err := delegate.Delete(context.Background(), "videos/v.mp4", entity.MediaKindVideo)

	assert.ErrorIs(t, err, service.ErrMediaTimeout)
}

func TestDelegate_FileBucketRoundTrip(t *testing.T) {
	dir := t.TempDir()
	bucket, err := fileblob.OpenBucket(dir, nil)
	require.NoError(t, err)

	delegate := NewDelegate(newBlobStore(bucket), nil, "", time.Second, discardLogger())
	defer delegate.Close()

	ctx := context.Background()
	uploaded, err := delegate.Upload(ctx, writeTempFile(t, "cover.jpg", "jpeg"), entity.MediaKindImage)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(uploaded.StorageID)))
	require.NoError(t, err)

	require.NoError(t, delegate.Delete(ctx, uploaded.StorageID, entity.MediaKindImage))
	require.NoError(t, delegate.Delete(ctx, uploaded.StorageID, entity.MediaKindImage))
}
