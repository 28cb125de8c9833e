package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/service"
	"github.com/owenmerry/skyscanner-flight-search-sub002/models"
)

const historyLimit = 20

// historyModel lists completed searches from the local history. Enter runs
// the selected search again.
type historyModel struct {
	ctx     context.Context
	history service.HistoryService

	records []models.SearchRecord
	idx     int
	loading bool
	errMsg  string
}

func newHistoryModel(ctx context.Context, history service.HistoryService) *historyModel {
	return &historyModel{ctx: ctx, history: history}
}

// Init does nothing: history is loaded when the page is opened.
func (m *historyModel) Init() tea.Cmd {
	return nil
}

func (m *historyModel) onShow() tea.Cmd {
	if m.history == nil {
		m.errMsg = "History is not available"
		return nil
	}
	m.loading = true
	return m.cmdLoad()
}

func (m *historyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.records = msg.records
		if m.idx >= len(m.records) {
			m.idx = max(len(m.records)-1, 0)
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageSearch} }
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.records)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.refresh):
			return m, m.onShow()
		case key.Matches(msg, keys.enter):
			if m.idx < len(m.records) {
				query := m.records[m.idx].Query
				return m, func() tea.Msg {
					return NavigateTo{Page: pageSearch, Payload: rerunMsg{query: query}}
				}
			}
		}
	}
	return m, nil
}

func (m *historyModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Loading...")
	case m.errMsg != "":
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	case len(m.records) == 0:
		b.WriteString("No completed searches yet")
	default:
		for i, rec := range m.records {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(cursor)
			b.WriteString(historyLine(rec))
			b.WriteString("\n")
		}
	}

	return renderPage("SEARCH HISTORY", strings.TrimRight(b.String(), "\n"), "↑/↓: select │ enter: search again │ r: reload │ esc: back │ q: quit")
}

func (m *historyModel) cmdLoad() tea.Cmd {
	ctx, history := m.ctx, m.history
	return func() tea.Msg {
		records, err := history.Recent(ctx, historyLimit)
		return historyLoadedMsg{records: records, err: err}
	}
}

func historyLine(rec models.SearchRecord) string {
	q := rec.Query
	route := fmt.Sprintf("%s → %s  %s", q.FromID, q.ToID, q.DepartDate)
	if q.ReturnDate != "" {
		route += " / " + q.ReturnDate
	}
	cheapest := "-"
	if rows := resultRows(&rec.Result); len(rows) > 0 {
		cheapest = fmt.Sprintf("%.2f", rows[0].Price)
	}
	return fmt.Sprintf("%-36s from %-10s %s", route, cheapest, rec.CompletedAt.Local().Format("2006-01-02 15:04"))
}
