package tui

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/owenmerry/skyscanner-flight-search-sub002/models"
)

func TestResultRows(t *testing.T) {
	t.Run("prefers cheapest list", func(t *testing.T) {
		result := &models.SearchResult{
			Cheapest: []models.Itinerary{{ItineraryID: "c", Price: 10}},
			Items:    []models.Itinerary{{ItineraryID: "i", Price: 5}},
		}
		rows := resultRows(result)
		assert.Equal(t, []models.Itinerary{{ItineraryID: "c", Price: 10}}, rows)
	})

	t.Run("sorts items without touching the snapshot", func(t *testing.T) {
		result := &models.SearchResult{Items: []models.Itinerary{
			{ItineraryID: "b", Price: 30},
			{ItineraryID: "a", Price: 10},
			{ItineraryID: "c", Price: 20},
		}}
		rows := resultRows(result)

		assert.Equal(t, "a", rows[0].ItineraryID)
		assert.Equal(t, "c", rows[1].ItineraryID)
		assert.Equal(t, "b", result.Items[0].ItineraryID)
	})

	t.Run("caps rows", func(t *testing.T) {
		result := &models.SearchResult{}
		for i := 0; i < maxResultRows+5; i++ {
			result.Items = append(result.Items, models.Itinerary{ItineraryID: fmt.Sprint(i), Price: float64(i)})
		}
		assert.Len(t, resultRows(result), maxResultRows)
	})

	t.Run("nil result", func(t *testing.T) {
		assert.Nil(t, resultRows(nil))
	})
}

func TestTableRows(t *testing.T) {
	rows := tableRows([]models.Itinerary{{
		ItineraryID:     "LHR-CDG-0800",
		Price:           99.5,
		Stops:           1,
		DurationMinutes: 135,
		Carriers:        []string{"British Airways", "Air France"},
	}})

	assert.Len(t, rows, 1)
	assert.Equal(t, "1", rows[0][0])
	assert.Equal(t, "99.50", rows[0][1])
	assert.Equal(t, "2h15m", rows[0][3])
	assert.Equal(t, "British Airwa...", rows[0][4])
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "-", formatDuration(0))
	assert.Equal(t, "0h45m", formatDuration(45))
	assert.Equal(t, "12h05m", formatDuration(725))
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "Zü...", fitText("Zürich-Flughafen", 5))
	assert.Equal(t, "ab", fitText("abcdef", 2))
}
