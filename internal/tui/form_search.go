package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/owenmerry/skyscanner-flight-search-sub002/models"
)

const (
	fieldFrom = iota
	fieldTo
	fieldDepart
	fieldReturn
)

var formLabels = []string{"From   ", "To     ", "Depart ", "Return "}

type searchForm struct {
	inputs []textinput.Model
	focus  int
}

func newSearchForm() searchForm {
	placeholders := []string{"LOND", "PARI", "YYYY-MM-DD", "YYYY-MM-DD (optional)"}

	inputs := make([]textinput.Model, len(placeholders))
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = placeholders[i]
		inputs[i].CharLimit = 32
		inputs[i].Width = 30
	}
	inputs[fieldFrom].Focus()

	return searchForm{inputs: inputs}
}

// query builds the search from the inputs. Validation is left to the search
// client so the user sees the same messages as the web API returns.
func (f searchForm) query() models.SearchQuery {
	return models.SearchQuery{
		FromID:     strings.ToUpper(strings.TrimSpace(f.inputs[fieldFrom].Value())),
		ToID:       strings.ToUpper(strings.TrimSpace(f.inputs[fieldTo].Value())),
		DepartDate: strings.TrimSpace(f.inputs[fieldDepart].Value()),
		ReturnDate: strings.TrimSpace(f.inputs[fieldReturn].Value()),
	}
}

func (f *searchForm) fill(q models.SearchQuery) {
	f.inputs[fieldFrom].SetValue(q.FromID)
	f.inputs[fieldTo].SetValue(q.ToID)
	f.inputs[fieldDepart].SetValue(q.DepartDate)
	f.inputs[fieldReturn].SetValue(q.ReturnDate)
}

func (f *searchForm) focusNext() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *searchForm) focusPrev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *searchForm) blur() {
	f.inputs[f.focus].Blur()
}

func (f *searchForm) refocus() tea.Cmd {
	return f.inputs[f.focus].Focus()
}

func (f searchForm) update(msg tea.Msg) (searchForm, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f searchForm) View() string {
	var b strings.Builder
	b.WriteString("Field   │ Value\n")
	b.WriteString("────────┼────────────────────────────────────\n")
	for i, in := range f.inputs {
		b.WriteString(formLabels[i])
		b.WriteString(" │ [")
		b.WriteString(in.View())
		b.WriteString("]\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
