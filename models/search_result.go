package models

// Status values reported by the flight API for a search job.
const (
	ResultStatusComplete   = "RESULT_STATUS_COMPLETE"
	ResultStatusIncomplete = "RESULT_STATUS_INCOMPLETE"
)

// ResultActionNotModified is reported on a poll response when nothing changed
// since the previous poll.
const ResultActionNotModified = "RESULT_ACTION_NOT_MODIFIED"

// Itinerary is a single priced flight option.
type Itinerary struct {
	ItineraryID     string   `json:"itineraryId" csv:"itinerary_id"`
	Price           float64  `json:"price" csv:"price"`
	Stops           int      `json:"stops" csv:"stops"`
	DurationMinutes int      `json:"durationMinutes" csv:"duration_minutes"`
	Carriers        []string `json:"carriers,omitempty" csv:"-"`
	DeepLink        string   `json:"deepLink,omitempty" csv:"deep_link"`
}

// Stats summarises the itineraries known so far.
type Stats struct {
	Total    int     `json:"total"`
	MinPrice float64 `json:"minPrice"`
	MaxPrice float64 `json:"maxPrice"`
}

// SearchResult is one snapshot of a search job. A newer snapshot replaces the
// previous one; snapshots are never mutated after they are published.
type SearchResult struct {
	SessionToken string      `json:"sessionToken"`
	Status       string      `json:"status"`
	Action       string      `json:"action,omitempty"`
	Items        []Itinerary `json:"items,omitempty"`
	Cheapest     []Itinerary `json:"cheapest,omitempty"`
	Stats        Stats       `json:"stats"`
}

// IsComplete reports whether the job has finished.
func (r SearchResult) IsComplete() bool {
	return r.Status == ResultStatusComplete
}

// IsNotModified reports whether the snapshot carries no new data.
func (r SearchResult) IsNotModified() bool {
	return r.Action == ResultActionNotModified
}
