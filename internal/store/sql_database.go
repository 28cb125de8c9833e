package store

import (
	"context"
	"database/sql"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/sethvargo/go-retry"

	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/config"
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/logger"
	"github.com/owenmerry/skyscanner-flight-search-sub002/migrations"
)

// Dialect is the SQL flavour of a [DB].
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite3"
)

const (
	dbMaxRetries = 3
	dbRetryDelay = 100 * time.Millisecond
)

// DB wraps *sql.DB with its dialect and driver error classification.
type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB connects to the database named by cfg.DSN. postgres:// and
// postgresql:// DSNs use pgx, anything else is a SQLite file.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if DialectFromDSN(cfg.DSN) == DialectPostgres {
		return NewConnectPostgres(ctx, cfg, log)
	}
	return NewConnectSQLite(ctx, cfg, log)
}

// DialectFromDSN picks the dialect for dsn.
func DialectFromDSN(dsn string) Dialect {
	lower := strings.ToLower(strings.TrimSpace(dsn))
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return DialectPostgres
	}
	return DialectSQLite
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// builder returns a squirrel builder with the dialect's placeholders.
func (db *DB) builder() sq.StatementBuilderType {
	if db.dialect == DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// withRetry runs fn again while the classifier reports its error as
// retryable, up to dbMaxRetries times.
func (db *DB) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(dbMaxRetries, retry.NewConstant(dbRetryDelay))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err != nil && db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
			logger.FromContext(ctx).Warn().Err(err).Msg("retrying database operation")
			return retry.RetryableError(err)
		}
		return err
	})
}

func (db *DB) isDuplicate(err error) bool {
	return db.errorClassificator != nil && db.errorClassificator.IsDuplicate(err)
}
