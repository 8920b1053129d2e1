// Package bootstrap provides dependency initialization for the job board
// API.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/equintero/jobboard-api/internal/config"
	"github.com/equintero/jobboard-api/internal/jobboard"
	"github.com/equintero/jobboard-api/internal/store"
)

// Dependencies holds all initialized dependencies for the HTTP server.
// DB is nil when the in-memory store is in use.
type Dependencies struct {
	DB           *sql.DB
	Offers       *jobboard.OfferService
	Applications *jobboard.ApplicationService
}

// NewDependencies opens the database, applies the schema and wires the
// repositories and services. A ":memory:" DBPath selects the in-memory
// store instead: a pooled SQLite memory database would give every
// connection its own private copy of the data.
func NewDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	if isMemoryPath(cfg.DBPath) {
		if logger != nil {
			logger.Info("using in-memory store", slog.String("db_path", cfg.DBPath))
		}
		mem := jobboard.NewMemoryStore()
		return &Dependencies{
			Offers:       jobboard.NewOfferService(mem.Offers(), logger),
			Applications: jobboard.NewApplicationService(mem.Applications(), mem.Offers(), logger),
		}, nil
	}

	db, err := store.Open(cfg.DBPath, logger)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	if err := store.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate store: %w", err)
	}

	offerRepo := store.NewOfferRepository(db, logger)
	appRepo := store.NewApplicationRepository(db, logger)

	return &Dependencies{
		DB:           db,
		Offers:       jobboard.NewOfferService(offerRepo, logger),
		Applications: jobboard.NewApplicationService(appRepo, offerRepo, logger),
	}, nil
}

// Close releases the held resources.
func (d *Dependencies) Close() error {
	if d.DB == nil {
		return nil
	}
	return d.DB.Close()
}

func isMemoryPath(path string) bool {
	return path == ":memory:" || strings.HasPrefix(path, "file::memory:")
}
