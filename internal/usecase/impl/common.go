// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "mytube/internal/delivery/context"
	"mytube/internal/domain/entity"
	domainerrors "mytube/internal/domain/errors"
	"mytube/internal/domain/service"
	"mytube/internal/errors"

	"github.com/google/uuid"
)

// field pairs an input name with its value for required-field checks.
type field struct {
	name  string
	value string
}

// requireFields rejects every field that is empty after trimming, naming all of them at once.
func requireFields(fields ...field) error {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return domainerrors.Required(missing...)
	}

	return nil
}

// translate maps a repository sentinel onto the domain error the client should see.
// Anything else is wrapped untouched.
func translate(err, sentinel error, domainErr *domainerrors.BaseError, message string) error {
	if errors.Is(err, sentinel) {
		return domainErr.WrapMessage(message)
	}

	return errors.Wrap(err, message)
}

// ensureOwner fails with ErrNotOwner unless the caller owns the resource.
func ensureOwner(ownerID, callerID uuid.UUID) error {
	if ownerID != callerID {
		return domainerrors.ErrNotOwner
	}

	return nil
}

// ensureVisible hides an unpublished video from everyone but its owner.
func ensureVisible(published bool, ownerID uuid.UUID, viewerID *uuid.UUID) error {
	if !published && (viewerID == nil || *viewerID != ownerID) {
		return domainerrors.ErrVideoNotFound
	}

	return nil
}

// uploadError keeps the cause for logs while exposing the retryable or permanent media error.
func uploadError(err error, message string) error {
	if errors.Is(err, service.ErrMediaTimeout) {
		return errors.Mark(domainerrors.ErrMediaTimeout, err, message)
	}

	return errors.Mark(domainerrors.ErrMediaUploadFailed, err, message)
}

func deleteError(err error, message string) error {
	if errors.Is(err, service.ErrMediaTimeout) {
		return errors.Mark(domainerrors.ErrMediaTimeout, err, message)
	}

	return errors.Mark(domainerrors.ErrMediaDeleteFailed, err, message)
}

// assetReleaser deletes assets that are no longer referenced. A failed deletion never fails
// the caller's operation: it is logged and queued for the media worker.
type assetReleaser struct {
	media     service.MediaStorage
	publisher service.EventPublisher
	logger    *slog.Logger
}

func newAssetReleaser(media service.MediaStorage, publisher service.EventPublisher, logger *slog.Logger) *assetReleaser {
	return &assetReleaser{media: media, publisher: publisher, logger: logger}
}

func (r *assetReleaser) release(ctx context.Context, asset *entity.MediaAsset, kind entity.MediaKind, reason string) {
	if asset == nil || asset.StorageID == "" {
		return
	}

	log := deliverycontext.GetLoggerOrDefault(ctx, r.logger)

	err := r.media.Delete(ctx, asset.StorageID, kind)
	if err == nil {
		return
	}

	log.Warn("Failed to delete superseded asset, queueing cleanup",
		slog.String("storage_id", asset.StorageID),
		slog.String("kind", string(kind)),
		slog.String("reason", reason),
		slog.Any("error", err),
	)

	if r.publisher == nil {
		return
	}

	event := &service.AssetCleanupEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		StorageID: asset.StorageID,
		Kind:      string(kind),
		Reason:    reason,
	}
	if pubErr := r.publisher.PublishAssetCleanup(context.WithoutCancel(ctx), event); pubErr != nil {
		log.Error("Failed to queue asset cleanup",
			slog.String("storage_id", asset.StorageID),
			slog.Any("error", pubErr),
		)
	}
}
