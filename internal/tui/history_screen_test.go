package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/logger"
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/mock"
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/service"
	"github.com/owenmerry/skyscanner-flight-search-sub002/models"
)

func historyRecords() []models.SearchRecord {
	completed := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	return []models.SearchRecord{
		{
			SessionToken: "tok2",
			Query:        models.SearchQuery{FromID: "LOND", ToID: "NYCA", DepartDate: "2026-12-01", ReturnDate: "2026-12-08"},
			Result:       models.SearchResult{Items: []models.Itinerary{{ItineraryID: "x", Price: 410}, {ItineraryID: "y", Price: 399.5}}},
			CompletedAt:  completed,
		},
		{
			SessionToken: "tok1",
			Query:        londonParis,
			CompletedAt:  completed.Add(-time.Hour),
		},
	}
}

func newTestHistoryModel(t *testing.T) (*historyModel, *mock.MockSearchResultRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSearchResultRepository(ctrl)
	history := service.NewHistoryService(repo, logger.Nop())
	return newHistoryModel(context.Background(), history), repo
}

func TestHistoryModel_LoadsOnShow(t *testing.T) {
	m, repo := newTestHistoryModel(t)
	repo.EXPECT().ListRecent(gomock.Any(), historyLimit).Return(historyRecords(), nil)

	assert.Nil(t, m.Init(), "nothing is loaded before the page is opened")

	cmd := m.onShow()
	require.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Loading...")

	m.Update(cmd())

	require.Len(t, m.records, 2)
	view := m.View()
	assert.Contains(t, view, "LOND → NYCA  2026-12-01 / 2026-12-08")
	assert.Contains(t, view, "399.50")
}

func TestHistoryModel_LoadError(t *testing.T) {
	m, repo := newTestHistoryModel(t)
	repo.EXPECT().ListRecent(gomock.Any(), historyLimit).Return(nil, errors.New("disk I/O error"))

	m.Update(m.onShow()())

	assert.Contains(t, m.View(), "disk I/O error")
}

func TestHistoryModel_Empty(t *testing.T) {
	m, repo := newTestHistoryModel(t)
	repo.EXPECT().ListRecent(gomock.Any(), historyLimit).Return(nil, nil)

	m.Update(m.onShow()())

	assert.Contains(t, m.View(), "No completed searches yet")
}

func TestHistoryModel_WithoutHistory(t *testing.T) {
	m := newHistoryModel(context.Background(), nil)

	assert.Nil(t, m.onShow())
	assert.Contains(t, m.View(), "History is not available")
}

func TestHistoryModel_EnterReruns(t *testing.T) {
	m, _ := newTestHistoryModel(t)
	m.Update(historyLoadedMsg{records: historyRecords()})

	press(m, tea.KeyDown)
	press(m, tea.KeyDown) // уже на последней записи
	assert.Equal(t, 1, m.idx)

	cmd := press(m, tea.KeyEnter)
	require.NotNil(t, cmd)

	assert.Equal(t, NavigateTo{Page: pageSearch, Payload: rerunMsg{query: londonParis}}, cmd())
}

func TestHistoryModel_EscGoesBack(t *testing.T) {
	m, _ := newTestHistoryModel(t)

	cmd := press(m, tea.KeyEsc)
	require.NotNil(t, cmd)

	assert.Equal(t, NavigateTo{Page: pageSearch}, cmd())
}

func TestHistoryModel_ReloadKeepsCursorInRange(t *testing.T) {
	m, _ := newTestHistoryModel(t)
	m.Update(historyLoadedMsg{records: historyRecords()})
	m.idx = 1

	m.Update(historyLoadedMsg{records: historyRecords()[:1]})

	assert.Equal(t, 0, m.idx)
}
