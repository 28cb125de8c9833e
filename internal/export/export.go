// SPDX-License-Identifier: Apache-2.0

// Package export writes search results to CSV files.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jszwec/csvutil"

	"github.com/owenmerry/skyscanner-flight-search-sub002/models"
)

var ErrNothingToExport = errors.New("no itineraries to export")

// itineraryRow is one CSV line: the searched route followed by the
// itinerary.
type itineraryRow struct {
	From            string  `csv:"from"`
	To              string  `csv:"to"`
	Depart          string  `csv:"depart"`
	Return          string  `csv:"return"`
	ItineraryID     string  `csv:"itinerary_id"`
	Price           float64 `csv:"price"`
	Stops           int     `csv:"stops"`
	DurationMinutes int     `csv:"duration_minutes"`
	Carriers        string  `csv:"carriers"`
	DeepLink        string  `csv:"deep_link"`
}

// WriteItineraries writes a header and one row per itinerary to w. The
// header is written even when items is empty.
func WriteItineraries(w io.Writer, query models.SearchQuery, items []models.Itinerary) error {
	cw := csv.NewWriter(w)
	enc := csvutil.NewEncoder(cw)

	if err := enc.EncodeHeader(itineraryRow{}); err != nil {
		return fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, it := range items {
		row := itineraryRow{
			From:            query.FromID,
			To:              query.ToID,
			Depart:          query.DepartDate,
			Return:          query.ReturnDate,
			ItineraryID:     it.ItineraryID,
			Price:           it.Price,
			Stops:           it.Stops,
			DurationMinutes: it.DurationMinutes,
			Carriers:        strings.Join(it.Carriers, "|"),
			DeepLink:        it.DeepLink,
		}
		if err := enc.Encode(row); err != nil {
			return fmt.Errorf("error writing itinerary %q: %w", it.ItineraryID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ToFile writes the itineraries of a search into a new file in dir and
// returns its path. File names look like LOND-PARI-2026-11-01-20261018T120000.csv.
func ToFile(dir string, query models.SearchQuery, items []models.Itinerary, now time.Time) (string, error) {
	if len(items) == 0 {
		return "", ErrNothingToExport
	}

	name := fmt.Sprintf("%s-%s-%s-%s.csv", query.FromID, query.ToID, query.DepartDate, now.UTC().Format("20060102T150405"))
	path := filepath.Join(dir, sanitize(name))

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("error creating export file: %w", err)
	}

	if err = WriteItineraries(f, query, items); err != nil {
		_ = f.Close()
		return "", err
	}
	if err = f.Close(); err != nil {
		return "", fmt.Errorf("error closing export file: %w", err)
	}

	return path, nil
}

func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == ':' {
			return '_'
		}
		return r
	}, name)
}
