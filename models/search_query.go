package models

import (
	"errors"
	"strings"
	"time"
)

// DateLayout is the calendar date format accepted by the flight API.
const DateLayout = "2006-01-02"

// TripType distinguishes one-way searches from return searches.
type TripType string

const (
	TripTypeOneWay TripType = "one-way"
	TripTypeReturn TripType = "return"
)

var (
	// ErrInvalidQuery is returned by [SearchQuery.Validate] when an origin or
	// destination is missing or a date cannot be parsed.
	ErrInvalidQuery = errors.New("invalid search query")

	// ErrSameOriginDestination is returned by [SearchQuery.Validate] when the
	// origin and destination place ids are equal.
	ErrSameOriginDestination = errors.New("origin and destination must be different")
)

// SearchQuery describes one flight search. It is treated as an immutable
// value: the search client copies it on submit and never mutates it.
type SearchQuery struct {
	FromID     string   `json:"fromId" yaml:"from"`
	ToID       string   `json:"toId" yaml:"to"`
	DepartDate string   `json:"departDate" yaml:"depart"`
	ReturnDate string   `json:"returnDate,omitempty" yaml:"return,omitempty"`
	TripType   TripType `json:"tripType,omitempty" yaml:"tripType,omitempty"`
}

// Normalize trims whitespace and fills TripType from the presence of a
// return date when it was not set explicitly.
func (q SearchQuery) Normalize() SearchQuery {
	q.FromID = strings.TrimSpace(q.FromID)
	q.ToID = strings.TrimSpace(q.ToID)
	q.DepartDate = strings.TrimSpace(q.DepartDate)
	q.ReturnDate = strings.TrimSpace(q.ReturnDate)

	if q.TripType == "" {
		if q.ReturnDate != "" {
			q.TripType = TripTypeReturn
		} else {
			q.TripType = TripTypeOneWay
		}
	}
	if q.TripType == TripTypeOneWay {
		q.ReturnDate = ""
	}

	return q
}

// Validate checks the query before any network call is made.
//
// Missing ids and malformed dates yield [ErrInvalidQuery]; equal ids yield
// [ErrSameOriginDestination]. Both are wrapped so callers match them with
// [errors.Is].
func (q SearchQuery) Validate() error {
	if q.FromID == "" || q.ToID == "" {
		return ErrInvalidQuery
	}
	if q.FromID == q.ToID {
		return ErrSameOriginDestination
	}
	if _, err := time.Parse(DateLayout, q.DepartDate); err != nil {
		return errors.Join(ErrInvalidQuery, err)
	}
	if q.ReturnDate != "" {
		ret, err := time.Parse(DateLayout, q.ReturnDate)
		if err != nil {
			return errors.Join(ErrInvalidQuery, err)
		}
		dep, _ := time.Parse(DateLayout, q.DepartDate)
		if ret.Before(dep) {
			return errors.Join(ErrInvalidQuery, errors.New("return date is before depart date"))
		}
	}
	if q.TripType == TripTypeReturn && q.ReturnDate == "" {
		return errors.Join(ErrInvalidQuery, errors.New("return trip without return date"))
	}

	return nil
}
