package impl

import (
	"io"
	"log/slog"

	"mytube/config"
	"mytube/internal/domain/entity"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Pagination: &config.PaginationConfig{
			FeedLimit:    12,
			CommentLimit: 10,
			MaxLimit:     100,
		},
	}
}

func newTestUser(username string) *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        username + "@example.com",
		Fullname:     "Full " + username,
		PasswordHash: "hashed-password",
		Avatar:       entity.MediaAsset{URL: "https://cdn/" + username + ".png", StorageID: "avatars/" + username},
	}
}

func newTestVideo(ownerID uuid.UUID, published bool) *entity.Video {
	return &entity.Video{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       "title",
		Description: "description",
		VideoFile:   entity.MediaAsset{URL: "https://cdn/v.mp4", StorageID: "videos/v"},
		Thumbnail:   entity.MediaAsset{URL: "https://cdn/t.png", StorageID: "thumbnails/t"},
		Duration:    12.5,
		IsPublished: published,
	}
}
