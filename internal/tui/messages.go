package tui

import "github.com/owenmerry/skyscanner-flight-search-sub002/models"

const (
	pageSearch  = "search"
	pageHistory = "history"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to the
// new page as the next message.
type NavigateTo struct {
	Page    string
	Payload any
}

type stateMsg struct {
	state models.SearchState
}

// rerunMsg asks the search page to run query again.
type rerunMsg struct {
	query models.SearchQuery
}

type historyLoadedMsg struct {
	records []models.SearchRecord
	err     error
}

type copiedMsg struct {
	err error
}

type exportedMsg struct {
	path string
	err  error
}

type clearStatusMsg struct{}
