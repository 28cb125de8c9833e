package models

import "time"

// Trip is a saved route shown on the dashboard.
type Trip struct {
	ID    string      `json:"id" yaml:"id"`
	Name  string      `json:"name" yaml:"name"`
	Query SearchQuery `json:"query" yaml:"query"`
}

// TripState pairs a trip with the current state of its background search.
type TripState struct {
	Trip  Trip        `json:"trip"`
	State SearchState `json:"state"`
}

// SearchRecord is a completed search persisted to history.
type SearchRecord struct {
	SessionToken string       `json:"sessionToken"`
	Query        SearchQuery  `json:"query"`
	Result       SearchResult `json:"result"`
	CompletedAt  time.Time    `json:"completedAt"`
}
