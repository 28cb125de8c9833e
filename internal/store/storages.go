package store

import (
	"context"
	"fmt"

	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/config"
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/logger"
)

// Storages groups the repositories handed to the service layer.
type Storages struct {
	SearchResults SearchResultRepository

	db *DB
}

// NewStorages connects to the history database, applies pending migrations
// and builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewDB(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		SearchResults: NewSearchResultRepository(db, logger),
		db:            db,
	}, nil
}

// Close closes the underlying database.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
