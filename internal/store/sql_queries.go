// SPDX-License-Identifier: Apache-2.0

package store

import (
	"fmt"

	"github.com/owenmerry/skyscanner-flight-search-sub002/models"
)

const searchResultsTable = "search_results"

var searchResultColumns = []string{
	"session_token",
	"from_id",
	"to_id",
	"depart_date",
	"return_date",
	"trip_type",
	"result",
	"completed_at",
}

// buildSaveQuery builds the INSERT for one completed search. payload is the
// JSON encoded result snapshot.
func (db *DB) buildSaveQuery(record models.SearchRecord, payload []byte) (string, []any, error) {
	q := record.Query

	query, args, err := db.builder().
		Insert(searchResultsTable).
		Columns(searchResultColumns...).
		Values(
			record.SessionToken,
			q.FromID,
			q.ToID,
			q.DepartDate,
			q.ReturnDate,
			string(q.TripType),
			string(payload),
			record.CompletedAt.UTC(),
		).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func (db *DB) buildListRecentQuery(limit int) (string, []any, error) {
	query, args, err := db.builder().
		Select(searchResultColumns...).
		From(searchResultsTable).
		OrderBy("completed_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
