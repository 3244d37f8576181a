package main

import (
	"context"
	"log/slog"
	"os"

	"mytube/config"
	"mytube/internal/domain/lifecycle"
	logs "mytube/internal/infra/log"
	"mytube/internal/infra/persistence/model"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "failed to create PostgreSQL client")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	defer sqlDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*lifecycle.DefaultTimeout)
	defer cancel()

	if err := model.AutoMigrate(db.WithContext(ctx)); err != nil {
		return err
	}

	logger.Info("Database schema migrated", slog.Int("tables", len(model.All())))

	return nil
}
