package models

import "time"

// SearchStatus is the lifecycle phase of a search client.
type SearchStatus string

const (
	SearchStatusIdle      SearchStatus = "idle"
	SearchStatusSearching SearchStatus = "searching"
	SearchStatusResult    SearchStatus = "result"
	SearchStatusError     SearchStatus = "error"
)

// SearchState is the observable state of a search client. Result points to
// the most recently published snapshot and is shared, so it must be treated
// as read-only.
type SearchState struct {
	Status       SearchStatus  `json:"status"`
	Query        SearchQuery   `json:"query"`
	Result       *SearchResult `json:"result,omitempty"`
	ErrorMessage string        `json:"errorMessage,omitempty"`
	Generation   uint64        `json:"generation"`
	UpdatedAt    time.Time     `json:"updatedAt"`

	Err error `json:"-"`
}

// Terminal reports whether the state ends a search lifecycle.
func (s SearchState) Terminal() bool {
	switch s.Status {
	case SearchStatusError:
		return true
	case SearchStatusResult:
		return s.Result != nil && s.Result.IsComplete()
	default:
		return false
	}
}
