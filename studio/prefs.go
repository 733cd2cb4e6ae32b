package studio

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rohanthewiz/logger"
)

// Preferences dialog rows.
const (
	prefRowType = iota
	prefRowAuto
	prefRowHashtags
	prefRowCount
)

func (m Model) openPreferences() Model {
	m.draftPrefs = m.prefs
	m.prefsRow = 0
	m.focus = focusPrefs
	return m
}

// closePreferences leaves the dialog. Draft changes are kept only on save.
func (m Model) closePreferences(save bool) Model {
	if save {
		m.prefs = m.draftPrefs
		logger.Info("preferences saved",
			"default_type", m.prefs.DefaultType.String(),
			"auto_suggestions", m.prefs.AutoSuggestions,
			"hashtag_suggestions", m.prefs.HashtagSuggestions,
		)
	}
	m.focus = focusEditor
	if m.ideasOpen {
		m.focus = focusIdeas
	}
	return m
}

func (m Model) updatePreferences(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.keys
	switch {
	case key.Matches(msg, km.Choose):
		return m.closePreferences(true), nil
	case key.Matches(msg, km.Back):
		return m.closePreferences(false), nil
	case key.Matches(msg, km.Up):
		m.prefsRow = (m.prefsRow + prefRowCount - 1) % prefRowCount
	case key.Matches(msg, km.Down):
		m.prefsRow = (m.prefsRow + 1) % prefRowCount
	case key.Matches(msg, km.Prev):
		m.cyclePref(-1)
	case key.Matches(msg, km.Next), key.Matches(msg, km.Toggle):
		m.cyclePref(1)
	}
	return m, nil
}

func (m *Model) cyclePref(dir int) {
	switch m.prefsRow {
	case prefRowType:
		n := len(contentTypes)
		m.draftPrefs.DefaultType = contentTypes[(int(m.draftPrefs.DefaultType)+n+dir)%n]
	case prefRowAuto:
		m.draftPrefs.AutoSuggestions = !m.draftPrefs.AutoSuggestions
	case prefRowHashtags:
		m.draftPrefs.HashtagSuggestions = !m.draftPrefs.HashtagSuggestions
	}
}
