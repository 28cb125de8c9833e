package tui

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/table"

	"github.com/owenmerry/skyscanner-flight-search-sub002/models"
)

const (
	maxResultRows = 20
	tableHeight   = 10
)

func newResultsTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Price", Width: 10},
		{Title: "Stops", Width: 5},
		{Title: "Duration", Width: 9},
		{Title: "Carriers", Width: 16},
		{Title: "Itinerary", Width: 20},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(tableHeight),
		table.WithFocused(true),
	)
	return t
}

// resultRows picks what to show for a snapshot: the cheapest list when the
// API sent one, otherwise the items sorted by price. The snapshot itself is
// never modified.
func resultRows(result *models.SearchResult) []models.Itinerary {
	if result == nil {
		return nil
	}

	var rows []models.Itinerary
	if len(result.Cheapest) > 0 {
		rows = slices.Clone(result.Cheapest)
	} else {
		rows = slices.Clone(result.Items)
		slices.SortStableFunc(rows, func(a, b models.Itinerary) int {
			return cmp.Compare(a.Price, b.Price)
		})
	}

	if len(rows) > maxResultRows {
		rows = rows[:maxResultRows]
	}
	return rows
}

func tableRows(items []models.Itinerary) []table.Row {
	rows := make([]table.Row, 0, len(items))
	for i, it := range items {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%.2f", it.Price),
			fmt.Sprintf("%d", it.Stops),
			formatDuration(it.DurationMinutes),
			fitText(strings.Join(it.Carriers, ", "), 16),
			fitText(it.ItineraryID, 20),
		})
	}
	return rows
}

func formatDuration(minutes int) string {
	if minutes <= 0 {
		return "-"
	}
	return fmt.Sprintf("%dh%02dm", minutes/60, minutes%60)
}
