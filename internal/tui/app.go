package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/owenmerry/skyscanner-flight-search-sub002/models"
)

// RootModel routes messages between pages:
// 1) keeps the active page
// 2) handles the global ctrl+c quit and the about window
// 3) handles NavigateTo messages
// 4) delegates everything else
//
// stateMsg and the search page's own async messages always go to the search
// page, even while another page is shown, so no search state is lost.
type RootModel struct {
	pages   map[string]tea.Model
	current string

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   startPage,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(r.pages))
	for _, page := range r.pages {
		cmds = append(cmds, page.Init())
	}
	return tea.Batch(cmds...)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c":
			return r, tea.Quit
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}
		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		if _, exists := r.pages[msg.Page]; !exists {
			return r, nil
		}
		r.current = msg.Page

		var cmds []tea.Cmd
		if page, ok := r.pages[r.current].(shownPage); ok {
			cmds = append(cmds, page.onShow())
		}
		if msg.Payload != nil {
			payload := msg.Payload
			cmds = append(cmds, func() tea.Msg { return payload })
		}
		return r, tea.Batch(cmds...)
	case showBuildInfoMsg:
		r.showBuildInfo = true
		return r, nil
	case stateMsg, spinner.TickMsg, copiedMsg, exportedMsg, clearStatusMsg:
		return r.updatePage(pageSearch, msg)
	case historyLoadedMsg:
		return r.updatePage(pageHistory, msg)
	case tea.WindowSizeMsg:
		var cmds []tea.Cmd
		for name := range r.pages {
			var cmd tea.Cmd
			r, cmd = r.updatePageModel(name, msg)
			cmds = append(cmds, cmd)
		}
		return r, tea.Batch(cmds...)
	}

	return r.updatePage(r.current, msg)
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	page, ok := r.pages[r.current]
	if !ok {
		return renderPage("FLIGHT SEARCH", "", "")
	}
	return page.View()
}

func (r RootModel) updatePage(name string, msg tea.Msg) (tea.Model, tea.Cmd) {
	return r.updatePageModel(name, msg)
}

// shownPage is implemented by pages that reload their data every time they
// are navigated to. Init runs only once, when the program starts.
type shownPage interface {
	onShow() tea.Cmd
}

func (r RootModel) updatePageModel(name string, msg tea.Msg) (RootModel, tea.Cmd) {
	page, ok := r.pages[name]
	if !ok {
		return r, nil
	}

	updated, cmd := page.Update(msg)

	// pages is shared between copies of RootModel, copy before writing
	pages := make(map[string]tea.Model, len(r.pages))
	for k, v := range r.pages {
		pages[k] = v
	}
	pages[name] = updated
	r.pages = pages

	return r, cmd
}

// showBuildInfoMsg opens the about window. Pages send it so that the "?"
// key is not stolen from text inputs.
type showBuildInfoMsg struct{}
