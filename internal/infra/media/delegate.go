// Package media stores uploaded videos and images in an object store.
package media

import (
	"context"
	"io"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	deliverycontext "mytube/internal/delivery/context"
	"mytube/internal/domain/entity"
	"mytube/internal/domain/service"
	"mytube/internal/errors"
	"mytube/internal/util"

	"github.com/google/uuid"
)

// objectStore is the minimal surface both backends provide.
type objectStore interface {
	Put(ctx context.Context, key string, r io.Reader, contentType string) error
	// Remove succeeds when the key does not exist.
	Remove(ctx context.Context, key string) error
	Close() error
}

// Delegate implements service.MediaStorage on top of an objectStore.
type Delegate struct {
	store   objectStore
	probe   service.MediaProbe
	baseURL string
	timeout time.Duration
	logger  *slog.Logger
}

// NewDelegate wires a store. probe may be nil, in which case videos report a zero duration.
func NewDelegate(store objectStore, probe service.MediaProbe, baseURL string, timeout time.Duration, logger *slog.Logger) *Delegate {
	return &Delegate{
		store:   store,
		probe:   probe,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		timeout: timeout,
		logger:  logger,
	}
}

var _ service.MediaStorage = (*Delegate)(nil)

func (d *Delegate) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, d.logger)
}

// Upload copies the local file into the store under a fresh key. The local file is
// removed on every path out of this function.
func (d *Delegate) Upload(ctx context.Context, localPath string, kind entity.MediaKind) (*entity.UploadedMedia, error) {
	defer d.removeLocal(ctx, localPath)

	if strings.TrimSpace(localPath) == "" {
		return nil, errors.New("local path is empty")
	}

	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	var duration float64
	if kind == entity.MediaKindVideo && d.probe != nil {
		probed, err := d.probe.Duration(ctx, localPath)
		if err != nil {
			return nil, mapTimeout(err, "failed to probe video")
		}
		duration = probed
	}

	file, err := os.Open(localPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open upload")
	}
	defer file.Close()

	var size int64
	if info, statErr := file.Stat(); statErr == nil {
		size = info.Size()
	}
	start := time.Now()

	ext := strings.ToLower(filepath.Ext(localPath))
	key := objectKey(kind, ext)

	if err := d.store.Put(ctx, key, file, mime.TypeByExtension(ext)); err != nil {
		return nil, mapTimeout(err, "failed to upload "+string(kind))
	}

	d.log(ctx).Info("Media uploaded",
		slog.String("storage_id", key),
		slog.String("kind", string(kind)),
		slog.String("runtime", util.FormatRuntime(duration)),
		slog.String("size", util.FormatBytes(size)),
		slog.Duration("elapsed", time.Since(start)),
	)

	return &entity.UploadedMedia{
		MediaAsset: entity.MediaAsset{URL: d.publicURL(key), StorageID: key},
		Duration:   duration,
	}, nil
}

// Delete removes the object. A missing object counts as deleted.
func (d *Delegate) Delete(ctx context.Context, storageID string, kind entity.MediaKind) error {
	if strings.TrimSpace(storageID) == "" {
		return nil
	}

	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	if err := d.store.Remove(ctx, storageID); err != nil {
		return mapTimeout(err, "failed to delete "+string(kind))
	}

	d.log(ctx).Info("Media deleted", slog.String("storage_id", storageID))

	return nil
}

// Close releases the underlying store.
func (d *Delegate) Close() error {
	return d.store.Close()
}

func (d *Delegate) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if d.timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, d.timeout)
}

func (d *Delegate) publicURL(key string) string {
	if d.baseURL == "" {
		return key
	}

	return d.baseURL + "/" + key
}

func (d *Delegate) removeLocal(ctx context.Context, localPath string) {
	if localPath == "" {
		return
	}
	if err := os.Remove(localPath); err != nil && !os.IsNotExist(err) {
		d.log(ctx).Warn("Failed to remove local upload", slog.String("path", localPath), slog.Any("error", err))
	}
}

func objectKey(kind entity.MediaKind, ext string) string {
	return string(kind) + "s/" + uuid.NewString() + ext
}

// mapTimeout marks deadline failures as retryable media timeouts.
func mapTimeout(err error, message string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.Mark(service.ErrMediaTimeout, err, message)
	}

	return errors.Wrap(err, message)
}
