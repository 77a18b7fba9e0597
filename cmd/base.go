package cmd

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/saherflow/dashseed/internal/config"
	"github.com/saherflow/dashseed/internal/database"
	"github.com/saherflow/dashseed/internal/logger"
)

// env bundles what every database command needs.
type env struct {
	cfg *config.Config
	log *zap.Logger
	db  *database.DB
}

func setup(ctx context.Context) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return nil, err
	}

	dbURL, err := cfg.GetDatabaseURL()
	if err != nil {
		_ = log.Sync()
		return nil, err
	}

	db, err := database.Open(ctx, database.Options{
		Provider:        cfg.Database.Provider,
		URL:             dbURL,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		_ = log.Sync()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Debug("connected", zap.String("provider", cfg.Database.Provider))

	return &env{cfg: cfg, log: log, db: db}, nil
}

func (e *env) Close() {
	_ = e.db.Close()
	_ = e.log.Sync()
}
