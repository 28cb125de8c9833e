package tui

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render("Search failed") + "\n\n" + m.message + "\n\nenter / esc: close"
	return overlayBoxStyle.Render(content)
}
