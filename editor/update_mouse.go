package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/composer/richtext"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if isWheel(msg) {
		m.viewport, cmd = m.viewport.Update(msg)
		if m.toolbar.Visible {
			m.trackSelection()
		}
		return m, cmd
	}

	if !m.focused || m.surf == nil || m.prompt.active {
		return m, nil
	}

	// Only left button interactions change the cursor or selection.
	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if b, ok := m.toolbarButtonAt(msg.X, msg.Y); ok {
			if b.close {
				m.hideToolbar()
			} else {
				m.dispatch(b.cmd, nil)
			}
			return m, nil
		}
		if !m.mouseInBounds(msg.X, msg.Y) {
			return m, nil
		}

		p := m.screenToDocPos(msg.X, msg.Y)
		if msg.Shift {
			anchor := m.surf.Cursor()
			if raw, ok := m.surf.SelectionRaw(); ok {
				anchor = raw.Start
			}
			m.mouseAnchor = anchor
			m.surf.SetCursor(p)
			m.surf.SetSelection(richtext.Range{Start: anchor, End: p})
		} else {
			m.mouseAnchor = p
			m.surf.SetCursor(p)
			m.surf.ClearSelection()
		}
		m.mouseDragging = true

	case tea.MouseActionMotion:
		if !m.mouseDragging {
			return m, nil
		}

		x, y := m.clampMouseToBounds(msg.X, msg.Y)
		p := m.screenToDocPos(x, y)
		m.surf.SetCursor(p)
		m.surf.SetSelection(richtext.Range{Start: m.mouseAnchor, End: p})
		if _, ok := m.surf.Selection(); !ok {
			m.hideToolbar()
		}

	case tea.MouseActionRelease:
		if !m.mouseDragging {
			return m, nil
		}
		m.mouseDragging = false
		m.trackSelection()
	}

	return m, nil
}

func isWheel(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return false
	}
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}

func (m Model) clampMouseToBounds(x, y int) (int, int) {
	return clampInt(x, 0, max(m.viewport.Width-1, 0)), clampInt(y, 0, max(m.viewport.Height-1, 0))
}
