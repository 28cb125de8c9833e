package store

import "errors"

// Sentinel errors returned by repository methods. Callers match them with
// [errors.Is].
var (
	// ErrResultAlreadySaved is returned when a completed search with the same
	// session token is already stored.
	ErrResultAlreadySaved = errors.New("search result is already saved")

	// ErrInvalidRecord is returned for records that cannot be stored, such as
	// a record without a session token.
	ErrInvalidRecord = errors.New("invalid search record")
)

// Low-level database operation errors.
var (
	// ErrConnectingDatabase is returned when opening or pinging the database
	// fails.
	ErrConnectingDatabase = errors.New("error connecting database")

	// ErrBuildingSQLQuery is returned when squirrel cannot build a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRows is returned when reading result rows fails.
	ErrScanningRows = errors.New("failed to scan search result rows")

	// ErrEncodingResult is returned when a result snapshot cannot be
	// converted to or from its stored JSON form.
	ErrEncodingResult = errors.New("failed to encode search result")
)
