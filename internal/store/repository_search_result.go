package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/logger"
	"github.com/owenmerry/skyscanner-flight-search-sub002/models"
)

// searchResultRepository is the SQL implementation of
// [SearchResultRepository] over the "search_results" table. The result
// snapshot is stored as JSON text so the table is identical on SQLite and
// PostgreSQL.
type searchResultRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewSearchResultRepository(db *DB, logger *logger.Logger) SearchResultRepository {
	logger.Debug().Msg("creating search result repository")
	return &searchResultRepository{
		db:     db,
		logger: logger,
	}
}

func (r *searchResultRepository) SaveCompleted(ctx context.Context, record models.SearchRecord) error {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(record.SessionToken) == "" {
		return fmt.Errorf("%w: empty session token", ErrInvalidRecord)
	}
	if record.CompletedAt.IsZero() {
		record.CompletedAt = time.Now()
	}

	payload, err := json.Marshal(record.Result)
	if err != nil {
		log.Err(err).Str("func", "*searchResultRepository.SaveCompleted").Msg("error encoding result")
		return fmt.Errorf("%w: %w", ErrEncodingResult, err)
	}

	query, args, err := r.db.buildSaveQuery(record, payload)
	if err != nil {
		log.Err(err).Str("func", "*searchResultRepository.SaveCompleted").Msg("error building query")
		return err
	}

	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		_, err := r.db.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		if r.db.isDuplicate(err) {
			return ErrResultAlreadySaved
		}
		log.Err(err).Str("func", "*searchResultRepository.SaveCompleted").Msg("error saving search result")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *searchResultRepository) ListRecent(ctx context.Context, limit int) ([]models.SearchRecord, error) {
	log := logger.FromContext(ctx)

	if limit <= 0 {
		return []models.SearchRecord{}, nil
	}

	query, args, err := r.db.buildListRecentQuery(limit)
	if err != nil {
		log.Err(err).Str("func", "*searchResultRepository.ListRecent").Msg("error building query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*searchResultRepository.ListRecent").Msg("error querying search results")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.SearchRecord, 0, limit)
	for rows.Next() {
		var (
			record   models.SearchRecord
			tripType string
			payload  string
		)
		q := &record.Query
		if err = rows.Scan(&record.SessionToken, &q.FromID, &q.ToID, &q.DepartDate, &q.ReturnDate, &tripType, &payload, &record.CompletedAt); err != nil {
			log.Err(err).Str("func", "*searchResultRepository.ListRecent").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		q.TripType = models.TripType(tripType)

		if err = json.Unmarshal([]byte(payload), &record.Result); err != nil {
			log.Err(err).Str("func", "*searchResultRepository.ListRecent").Str("session", record.SessionToken).Msg("error decoding stored result")
			return nil, fmt.Errorf("%w: %w", ErrEncodingResult, err)
		}

		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}
