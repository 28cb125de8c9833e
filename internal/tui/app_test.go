package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/owenmerry/skyscanner-flight-search-sub002/models"
)

// recordingPage remembers the last message it received.
type recordingPage struct {
	name  string
	last  tea.Msg
	shown int
}

func (p *recordingPage) Init() tea.Cmd { return nil }

func (p *recordingPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	p.last = msg
	return p, nil
}

func (p *recordingPage) View() string { return p.name }

func (p *recordingPage) onShow() tea.Cmd {
	p.shown++
	return nil
}

func newTestRoot() (RootModel, *recordingPage, *recordingPage) {
	search := &recordingPage{name: "search page"}
	history := &recordingPage{name: "history page"}
	root := NewRootModel(map[string]tea.Model{
		pageSearch:  search,
		pageHistory: history,
	}, pageSearch, models.NewAppBuildInfo("v1.2.3", "", ""))
	return root, search, history
}

func update(t *testing.T, m tea.Model, msg tea.Msg) (RootModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	root, ok := next.(RootModel)
	require.True(t, ok)
	return root, cmd
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	root, _, _ := newTestRoot()

	_, cmd := update(t, root, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)

	assert.Equal(t, tea.Quit(), cmd())
}

func TestRootModel_NavigateShowsPage(t *testing.T) {
	root, _, history := newTestRoot()

	root, _ = update(t, root, NavigateTo{Page: pageHistory})

	assert.Equal(t, pageHistory, root.current)
	assert.Equal(t, 1, history.shown)
	assert.Equal(t, "history page", root.View())
}

func TestRootModel_NavigateUnknownPage(t *testing.T) {
	root, _, _ := newTestRoot()

	root, cmd := update(t, root, NavigateTo{Page: "nope"})

	assert.Nil(t, cmd)
	assert.Equal(t, pageSearch, root.current)
}

func TestRootModel_NavigateDeliversPayload(t *testing.T) {
	root, _, _ := newTestRoot()
	root.current = pageHistory

	root, cmd := update(t, root, NavigateTo{Page: pageSearch, Payload: rerunMsg{query: londonParis}})
	require.NotNil(t, cmd)

	assert.Equal(t, pageSearch, root.current)
	assert.Equal(t, rerunMsg{query: londonParis}, cmd())
}

func TestRootModel_StateGoesToSearchPage(t *testing.T) {
	root, search, history := newTestRoot()
	root, _ = update(t, root, NavigateTo{Page: pageHistory})

	msg := stateMsg{state: models.SearchState{Status: models.SearchStatusSearching, Generation: 1}}
	_, _ = update(t, root, msg)

	assert.Equal(t, msg, search.last)
	assert.NotEqual(t, msg, history.last)
}

func TestRootModel_HistoryLoadedGoesToHistoryPage(t *testing.T) {
	root, search, history := newTestRoot()

	msg := historyLoadedMsg{records: historyRecords()}
	_, _ = update(t, root, msg)

	assert.Equal(t, msg, history.last)
	assert.Nil(t, search.last)
}

func TestRootModel_KeysGoToCurrentPage(t *testing.T) {
	root, search, history := newTestRoot()
	root, _ = update(t, root, NavigateTo{Page: pageHistory})

	key := tea.KeyMsg{Type: tea.KeyDown}
	_, _ = update(t, root, key)

	assert.Equal(t, key, history.last)
	assert.Nil(t, search.last)
}

func TestRootModel_BuildInfoWindow(t *testing.T) {
	root, search, _ := newTestRoot()

	root, _ = update(t, root, showBuildInfoMsg{})
	assert.Contains(t, root.View(), "v1.2.3")

	// пока окно открыто, клавиши не доходят до страниц
	root, _ = update(t, root, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Nil(t, search.last)

	root, _ = update(t, root, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "search page", root.View())
}

func TestRootModel_WindowSizeGoesToAllPages(t *testing.T) {
	root, search, history := newTestRoot()

	size := tea.WindowSizeMsg{Width: 100, Height: 40}
	_, _ = update(t, root, size)

	assert.Equal(t, size, search.last)
	assert.Equal(t, size, history.last)
}

// ── pages together ───────────────────────────────────────────────────────────

func TestRootModel_RerunFromHistory(t *testing.T) {
	client := &fakeClient{}
	searchPage := newSearchModel(t.Context(), client, make(chan models.SearchState, 1), t.TempDir())
	historyPage, repo := newTestHistoryModel(t)
	repo.EXPECT().ListRecent(gomock.Any(), historyLimit).Return(historyRecords(), nil)

	root := NewRootModel(map[string]tea.Model{
		pageSearch:  searchPage,
		pageHistory: historyPage,
	}, pageSearch, models.AppBuildInfo{})

	root, cmd := update(t, root, NavigateTo{Page: pageHistory})
	root, _ = update(t, root, cmd())

	root, cmd = update(t, root, tea.KeyMsg{Type: tea.KeyEnter})
	root, cmd = update(t, root, cmd())
	_, _ = update(t, root, cmd())

	require.Len(t, client.queries(), 1)
	assert.Equal(t, "NYCA", client.queries()[0].ToID)
	assert.Equal(t, "NYCA", searchPage.form.inputs[fieldTo].Value())
}

// ── state bridge ─────────────────────────────────────────────────────────────

func TestWaitForState(t *testing.T) {
	ch := make(chan models.SearchState, 1)
	ch <- models.SearchState{Generation: 7}

	msg := waitForState(ch)()
	assert.Equal(t, stateMsg{state: models.SearchState{Generation: 7}}, msg)

	close(ch)
	assert.Nil(t, waitForState(ch)())
}
