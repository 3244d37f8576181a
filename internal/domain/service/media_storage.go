package service

import (
	"context"

	"mytube/internal/domain/entity"
	"mytube/internal/errors"
)

// ErrMediaTimeout marks a media call that ran out of time. Callers may retry.
var ErrMediaTimeout = errors.New("media storage timeout")

// MediaStorage is the boundary to the object store holding videos and images.
type MediaStorage interface {
	// Upload stores the file at localPath and removes the local file afterwards,
	// whether or not the upload succeeded.
	Upload(ctx context.Context, localPath string, kind entity.MediaKind) (*entity.UploadedMedia, error)

	// Delete removes a stored object. Deleting an object that no longer exists succeeds.
	Delete(ctx context.Context, storageID string, kind entity.MediaKind) error
}

// MediaProbe reads media metadata from a local file.
type MediaProbe interface {
	// Duration returns the playback length in seconds.
	Duration(ctx context.Context, localPath string) (float64, error)
}
