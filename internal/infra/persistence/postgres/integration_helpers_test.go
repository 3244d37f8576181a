package postgres

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"mytube/internal/domain/entity"
	"mytube/internal/infra/persistence/model"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	sharedDBOnce sync.Once
	sharedDB     *gorm.DB
	sharedDBErr  error
)

// newTestDB returns a migrated database with every table emptied. The container is
// started once per package run and left for the Ryuk reaper to remove.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("skip integration: -short")
	}

	sharedDBOnce.Do(func() {
		sharedDB, sharedDBErr = startPostgres(context.Background())
	})
	if sharedDBErr != nil {
		t.Skipf("skip integration: cannot start postgres container: %v", sharedDBErr)
	}

	require.NoError(t, sharedDB.Exec(
		`TRUNCATE watch_history, playlist_videos, playlists, likes, comments, tweets, subscriptions, videos, users CASCADE`,
	).Error)

	return sharedDB
}

func startPostgres(ctx context.Context) (*gorm.DB, error) {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_USER":     "postgres",
			"POSTGRES_DB":       "mytube",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
			return fmt.Sprintf("postgres://postgres:postgres@%s:%s/mytube?sslmode=disable", host, port.Port())
		}).WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, err
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, err
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf("postgres://postgres:postgres@%s:%s/mytube?sslmode=disable", host, port.Port())
	db, err := gorm.Open(gormpg.Open(dsn), &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	if err != nil {
		return nil, err
	}

	if err := model.AutoMigrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

func seedUser(t *testing.T, db *gorm.DB, username string) *entity.User {
	t.Helper()

	user := &entity.User{
		Username:     username,
		Email:        username + "@example.com",
		Fullname:     "Full " + username,
		PasswordHash: "hash",
		Avatar:       entity.MediaAsset{URL: "https://cdn/" + username + ".png", StorageID: "avatars/" + username},
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func seedVideo(t *testing.T, db *gorm.DB, owner uuid.UUID, title string, views int64, published bool) *entity.Video {
	t.Helper()

	video := &entity.Video{
		OwnerID:     owner,
		Title:       title,
		Description: "about " + title,
		VideoFile:   entity.MediaAsset{URL: "https://cdn/v/" + title, StorageID: "videos/" + title},
		Thumbnail:   entity.MediaAsset{URL: "https://cdn/t/" + title, StorageID: "thumbnails/" + title},
		Duration:    42.5,
		Views:       views,
		IsPublished: published,
	}
	require.NoError(t, NewVideoRepository(db).Create(context.Background(), video))

	return video
}
