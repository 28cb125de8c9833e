package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/export"
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/service"
	"github.com/owenmerry/skyscanner-flight-search-sub002/models"
)

const statusTTL = 2 * time.Second

// searchModel is the main page. It has two modes: editing the form, and
// browsing results, where single-letter hotkeys are active.
type searchModel struct {
	ctx       context.Context
	client    service.SearchClient
	states    <-chan models.SearchState
	exportDir string

	copyToClipboard func(string) error
	now             func() time.Time

	form         searchForm
	browsing     bool
	spinner      spinner.Model
	table        table.Model
	state        models.SearchState
	rows         []models.Itinerary
	overlay      *errorOverlayModel
	dismissedGen uint64
	status       string
}

func newSearchModel(ctx context.Context, client service.SearchClient, states <-chan models.SearchState, exportDir string) *searchModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &searchModel{
		ctx:             ctx,
		client:          client,
		states:          states,
		exportDir:       exportDir,
		copyToClipboard: clipboard.WriteAll,
		now:             time.Now,
		form:            newSearchForm(),
		spinner:         s,
		table:           newResultsTable(),
		state:           models.SearchState{Status: models.SearchStatusIdle},
	}
}

func (m *searchModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, waitForState(m.states))
}

func (m *searchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg:
		m.applyState(msg.state)
		return m, waitForState(m.states)
	case rerunMsg:
		m.form.fill(msg.query)
		return m, m.submit(msg.query)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case copiedMsg:
		if msg.err != nil {
			m.status = "Copy failed: " + msg.err.Error()
		} else {
			m.status = "Link copied to clipboard"
		}
		return m, cmdClearStatus()
	case exportedMsg:
		if msg.err != nil {
			m.status = "Export failed: " + msg.err.Error()
		} else {
			m.status = "Exported to " + msg.path
		}
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if !m.browsing {
		var cmd tea.Cmd
		m.form, cmd = m.form.update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *searchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.overlay != nil {
		if key.Matches(msg, keys.enter, keys.esc) {
			m.overlay = nil
			m.dismissedGen = m.state.Generation
		}
		return m, nil
	}

	if !m.browsing {
		switch {
		case key.Matches(msg, keys.enter):
			return m, m.submit(m.form.query())
		case key.Matches(msg, keys.tab):
			m.form.focusNext()
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.form.focusPrev()
			return m, nil
		case key.Matches(msg, keys.esc):
			m.browsing = true
			m.form.blur()
			return m, nil
		}

		var cmd tea.Cmd
		m.form, cmd = m.form.update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.newSearch):
		m.browsing = false
		return m, m.form.refocus()
	case key.Matches(msg, keys.refresh):
		if m.state.Status == models.SearchStatusIdle {
			return m, nil
		}
		return m, m.submit(m.state.Query)
	case key.Matches(msg, keys.history):
		return m, func() tea.Msg { return NavigateTo{Page: pageHistory} }
	case key.Matches(msg, keys.about):
		return m, func() tea.Msg { return showBuildInfoMsg{} }
	case key.Matches(msg, keys.copy):
		return m, m.cmdCopySelected()
	case key.Matches(msg, keys.export):
		return m, m.cmdExport()
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// submit starts a new search. Submit never blocks; progress arrives as
// stateMsg.
func (m *searchModel) submit(query models.SearchQuery) tea.Cmd {
	m.client.Submit(m.ctx, query)
	m.browsing = true
	m.form.blur()
	m.status = ""
	return nil
}

func (m *searchModel) applyState(state models.SearchState) {
	// a queued state of an older search must not overwrite a newer one
	if state.Generation < m.state.Generation {
		return
	}
	m.state = state

	if state.Status == models.SearchStatusSearching {
		m.rows = nil
	} else if state.Result != nil {
		m.rows = resultRows(state.Result)
	}
	m.table.SetRows(tableRows(m.rows))
	if m.table.Cursor() >= len(m.rows) {
		m.table.SetCursor(0)
	}

	if state.Status == models.SearchStatusError && state.Generation != m.dismissedGen {
		m.overlay = &errorOverlayModel{message: state.ErrorMessage}
	} else {
		m.overlay = nil
	}
}

func (m *searchModel) selected() (models.Itinerary, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.rows) {
		return models.Itinerary{}, false
	}
	return m.rows[i], true
}

func (m *searchModel) cmdCopySelected() tea.Cmd {
	it, ok := m.selected()
	if !ok {
		return nil
	}
	if it.DeepLink == "" {
		m.status = "This itinerary has no booking link"
		return cmdClearStatus()
	}

	copyFn := m.copyToClipboard
	link := it.DeepLink
	return func() tea.Msg {
		if err := copyFn(link); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func (m *searchModel) cmdExport() tea.Cmd {
	if len(m.rows) == 0 {
		return nil
	}

	dir, query, now := m.exportDir, m.state.Query, m.now()
	rows := m.rows
	return func() tea.Msg {
		path, err := export.ToFile(dir, query, rows, now)
		return exportedMsg{path: path, err: err}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m *searchModel) View() string {
	if m.overlay != nil {
		return renderPage("FLIGHT SEARCH", m.overlay.View(), "enter / esc: close")
	}

	var b strings.Builder
	b.WriteString(m.form.View())
	b.WriteString("\n\n")
	b.WriteString(m.progressLine())

	if len(m.rows) > 0 {
		b.WriteString("\n\n")
		b.WriteString(m.table.View())
	}

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(m.status))
	}

	hotKeys := "enter: search │ tab: next field │ esc: results"
	if m.browsing {
		hotKeys = "n: new search │ r: again │ ↑/↓: select │ c: copy link │ e: export csv │ h: history │ ?: about │ q: quit"
	}
	return renderPage("FLIGHT SEARCH", b.String(), hotKeys)
}

func (m *searchModel) progressLine() string {
	q := m.state.Query
	route := q.FromID + " → " + q.ToID + " " + q.DepartDate

	switch m.state.Status {
	case models.SearchStatusSearching:
		return m.spinner.View() + " Searching " + route + "..."
	case models.SearchStatusResult:
		if m.state.Result == nil {
			return route
		}
		stats := m.state.Result.Stats
		if m.state.Terminal() {
			return fmt.Sprintf("Search complete for %s: %d itineraries, from %.2f", route, stats.Total, stats.MinPrice)
		}
		return fmt.Sprintf("%s Still searching %s: %d itineraries so far", m.spinner.View(), route, stats.Total)
	case models.SearchStatusError:
		return errorStyle.Render(m.state.ErrorMessage)
	default:
		return "Enter a route and a date, then press enter"
	}
}
