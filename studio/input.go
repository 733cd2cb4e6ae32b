package studio

import (
	"image"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/composer/editor"
	"github.com/iw2rmb/composer/preview"
)

var previewModes = []preview.Mode{preview.Mobile, preview.Tablet, preview.Desktop}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.keys
	if key.Matches(msg, km.Quit) {
		return m, tea.Quit
	}
	if m.focus == focusPrefs {
		return m.updatePreferences(msg)
	}
	// The link prompt owns the keyboard while it is open.
	if m.editor.LinkPromptActive() {
		return m.forwardToEditor(msg)
	}

	switch {
	case key.Matches(msg, km.Post):
		return m.setContentType(ContentPost), nil
	case key.Matches(msg, km.Article):
		return m.setContentType(ContentArticle), nil
	case key.Matches(msg, km.Carousel):
		return m.setContentType(ContentCarousel), nil
	case key.Matches(msg, km.PreviewMobile):
		return m.setPreviewMode(preview.Mobile), nil
	case key.Matches(msg, km.PreviewTablet):
		return m.setPreviewMode(preview.Tablet), nil
	case key.Matches(msg, km.PreviewDesktop):
		return m.setPreviewMode(preview.Desktop), nil
	case key.Matches(msg, km.Ideas):
		return m.openIdeas(), nil
	case key.Matches(msg, km.Schedule):
		return m.schedule(), nil
	case key.Matches(msg, km.Preferences):
		return m.openPreferences(), nil
	case key.Matches(msg, km.Generate):
		return m.generate()
	case key.Matches(msg, km.FocusPanel):
		return m.cycleFocus(), nil
	}

	switch m.focus {
	case focusIdeas:
		var chosen, back bool
		m.ideaCursor, chosen, back = m.listKey(msg, len(Ideas), m.ideaCursor)
		switch {
		case chosen:
			return m.applyIdea(m.ideaCursor), nil
		case back:
			return m.closeIdeas(), nil
		}
		return m, nil
	case focusSuggestions:
		var chosen, back bool
		m.sugCursor, chosen, back = m.listKey(msg, len(m.suggestions), m.sugCursor)
		switch {
		case chosen:
			return m.applySuggestion(m.sugCursor), nil
		case back:
			m.focus = focusEditor
		}
		return m, nil
	}
	return m.forwardToEditor(msg)
}

// listKey applies a navigation key to a panel list of n items.
func (m Model) listKey(msg tea.KeyMsg, n, cursor int) (next int, chosen, back bool) {
	km := m.keys
	switch {
	case key.Matches(msg, km.Up):
		cursor = max(cursor-1, 0)
	case key.Matches(msg, km.Down):
		cursor = min(cursor+1, max(n-1, 0))
	case key.Matches(msg, km.Choose):
		chosen = n > 0
	case key.Matches(msg, km.Back):
		back = true
	}
	return cursor, chosen, back
}

// cycleFocus moves focus between the editor and an open panel.
func (m Model) cycleFocus() Model {
	switch {
	case m.focus != focusEditor:
		m.focus = focusEditor
	case m.ideasOpen:
		m.focus = focusIdeas
	case m.suggestionsOpen:
		m.focus = focusSuggestions
	}
	return m
}

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if m.focus == focusPrefs {
		return m, nil
	}
	g := m.geometry()
	pt := image.Pt(msg.X, msg.Y)
	click := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft

	// Drags that started in the editor keep going to it wherever the pointer
	// moves, so translate into editor-local cells.
	if !click || pt.In(g.editor) {
		local := msg
		local.X -= g.editor.Min.X
		local.Y -= g.editor.Min.Y
		if pt.In(g.editor) {
			m.focus = focusEditor
		}
		return m.forwardToEditor(local)
	}

	switch {
	case pt.In(g.sidebar):
		return m.clickSidebar(msg.Y)
	case pt.In(g.strip):
		if b, ok := m.stripButtonAt(g, msg.X); ok {
			return m.clickStrip(b)
		}
	case pt.In(m.generateButtonRect(g)):
		return m.generate()
	case pt.In(g.panel):
		i := msg.Y - g.panel.Min.Y - 1
		switch {
		case m.ideasOpen:
			return m.applyIdea(i), nil
		case m.suggestionsOpen:
			return m.applySuggestion(i), nil
		}
	case pt.In(g.preview):
		if i, ok := previewModeAt(g, msg.X, msg.Y); ok {
			return m.setPreviewMode(previewModes[i]), nil
		}
	}
	return m, nil
}

func (m Model) clickSidebar(y int) (Model, tea.Cmd) {
	switch {
	case y >= rowFirstType && y < rowFirstType+len(contentTypes):
		return m.setContentType(contentTypes[y-rowFirstType]), nil
	case y == rowIdeas:
		return m.openIdeas(), nil
	case y == rowSchedule:
		return m.schedule(), nil
	case y == rowPreferences:
		return m.openPreferences(), nil
	}
	return m, nil
}

// clickStrip runs a fixed toolbar button. Link opens the URL prompt.
func (m Model) clickStrip(b stripButton) (Model, tea.Cmd) {
	if b.cmd == editor.CommandLink {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.OpenLinkPrompt()
		return m, cmd
	}
	m.editor = m.editor.Dispatch(b.cmd)
	m.hideSuggestions()
	return m, nil
}
