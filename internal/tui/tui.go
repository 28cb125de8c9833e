// Package tui is the terminal front end of the flight search client. It
// renders a search form, the progress of the running search and the cheapest
// itineraries as they arrive, plus the local search history.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/logger"
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/service"
	"github.com/owenmerry/skyscanner-flight-search-sub002/models"
)

const stateBuffer = 64

type TUI struct {
	client    service.SearchClient
	history   service.HistoryService
	exportDir string
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func New(client service.SearchClient, history service.HistoryService, exportDir string, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		client:    client,
		history:   history,
		exportDir: exportDir,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run shows the UI until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	// Listeners run under the client's lock, so they must never wait for the
	// UI loop; states are queued and read by a tea.Cmd instead.
	states := make(chan models.SearchState, stateBuffer)
	unsubscribe := t.client.Subscribe(service.ChannelListener(states))
	defer unsubscribe()

	pages := map[string]tea.Model{
		pageSearch:  newSearchModel(ctx, t.client, states, t.exportDir),
		pageHistory: newHistoryModel(ctx, t.history),
	}
	root := NewRootModel(pages, pageSearch, t.buildInfo)

	t.logger.Info().Msg("starting terminal UI")
	_, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

// waitForState delivers the next queued state to the UI loop.
func waitForState(states <-chan models.SearchState) tea.Cmd {
	return func() tea.Msg {
		state, ok := <-states
		if !ok {
			return nil
		}
		return stateMsg{state: state}
	}
}
