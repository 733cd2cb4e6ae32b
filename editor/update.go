package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rohanthewiz/logger"

	"github.com/iw2rmb/composer/richtext"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.dispatched = false
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		if m.prompt.active {
			m, cmd = m.updatePrompt(msg)
		} else {
			m, cmd = m.updateKey(msg)
		}
		m.syncAndNotify()
		// Key events have no separate release in a terminal, so every key
		// event recomputes the toolbar, unless it dispatched a command.
		if !m.prompt.active && !m.dispatched {
			m.trackSelection()
		}
		return m, cmd
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
		m.syncAndNotify()
		return m, cmd
	default:
		if m.prompt.active {
			m, cmd = m.updatePrompt(msg)
		}
		// Pick up host mutations made directly on the surface.
		m.syncAndNotify()
		return m, cmd
	}
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || m.surf == nil {
		return m, nil
	}

	// Paste events insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.surf.InsertText(normalizeNewlines(string(msg.Runes)))
		return m, nil
	}

	km := m.cfg.KeyMap
	for _, fb := range km.formatBindings() {
		if key.Matches(msg, fb.binding) {
			m.dispatch(fb.cmd, nil)
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, km.Link):
		return m, m.openLinkPrompt()
	case key.Matches(msg, km.DismissToolbar):
		m.surf.ClearSelection()

	case key.Matches(msg, km.Left):
		m.surf.Move(richtext.Move{Unit: richtext.MoveGrapheme, Dir: richtext.DirLeft})
	case key.Matches(msg, km.Right):
		m.surf.Move(richtext.Move{Unit: richtext.MoveGrapheme, Dir: richtext.DirRight})
	case key.Matches(msg, km.Up):
		m.moveVisual(-1, false)
	case key.Matches(msg, km.Down):
		m.moveVisual(1, false)

	case key.Matches(msg, km.ShiftLeft):
		m.surf.Move(richtext.Move{Unit: richtext.MoveGrapheme, Dir: richtext.DirLeft, Extend: true})
	case key.Matches(msg, km.ShiftRight):
		m.surf.Move(richtext.Move{Unit: richtext.MoveGrapheme, Dir: richtext.DirRight, Extend: true})
	case key.Matches(msg, km.ShiftUp):
		m.moveVisual(-1, true)
	case key.Matches(msg, km.ShiftDown):
		m.moveVisual(1, true)

	case key.Matches(msg, km.WordLeft):
		m.surf.Move(richtext.Move{Unit: richtext.MoveWord, Dir: richtext.DirLeft})
	case key.Matches(msg, km.WordRight):
		m.surf.Move(richtext.Move{Unit: richtext.MoveWord, Dir: richtext.DirRight})

	case key.Matches(msg, km.Home):
		m.surf.Move(richtext.Move{Unit: richtext.MoveBlock, Dir: richtext.DirHome})
	case key.Matches(msg, km.End):
		m.surf.Move(richtext.Move{Unit: richtext.MoveBlock, Dir: richtext.DirEnd})
	case key.Matches(msg, km.SelectAll):
		m.surf.SelectAll()

	case key.Matches(msg, km.Backspace):
		m.surf.DeleteBackward()
	case key.Matches(msg, km.Delete):
		m.surf.DeleteForward()
	case key.Matches(msg, km.Enter):
		m.surf.InsertNewline()

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		m.cutSelection()
	case key.Matches(msg, km.Paste):
		m.pasteClipboard()

	default:
		if msg.Type == tea.KeySpace {
			m.surf.InsertText(" ")
			return m, nil
		}
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			m.surf.InsertText(string(msg.Runes))
		}
	}

	return m, nil
}

// moveVisual moves the cursor one visual row up (dy < 0) or down, keeping
// the screen column where possible.
func (m *Model) moveVisual(dy int, extend bool) {
	rows := m.ensureLayout()
	cur := m.surf.Cursor()
	vr, ok := m.visualRowFor(cur)
	if !ok {
		return
	}
	target := vr + dy
	if target < 0 || target >= len(rows) {
		dir := richtext.DirHome
		if dy > 0 {
			dir = richtext.DirEnd
		}
		m.surf.Move(richtext.Move{Unit: richtext.MoveDoc, Dir: dir, Extend: extend})
		return
	}
	next := posInRow(rows[target], rows[vr].cellForCol(cur.Col))

	if !extend {
		m.surf.ClearSelection()
		m.surf.SetCursor(next)
		return
	}
	anchor := cur
	if raw, ok := m.surf.SelectionRaw(); ok {
		anchor = raw.Start
	}
	m.surf.SetCursor(next)
	m.surf.SetSelection(richtext.Range{Start: anchor, End: next})
}

func (m Model) copySelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	s := m.surf.SelectedText()
	if s == "" {
		return
	}
	if err := m.cfg.Clipboard.WriteText(s); err != nil {
		logger.LogErr(err, "clipboard write failed")
	}
}

func (m Model) cutSelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	if _, ok := m.surf.Selection(); !ok {
		return
	}
	m.copySelection()
	m.surf.DeleteSelection()
}

func (m Model) pasteClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		logger.LogErr(err, "clipboard read failed")
		return
	}
	if s == "" {
		return
	}
	m.surf.InsertText(normalizeNewlines(s))
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
