package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/composer/richtext"
)

func (m Model) View() string {
	base := m.viewport.View()
	if !m.focused {
		return base
	}
	base = m.compositeToolbar(base)
	return m.compositePrompt(base)
}

func (m *Model) renderContent() string {
	if m.surf == nil {
		return ""
	}
	rows := m.ensureLayout()
	st := m.style()

	cursor := m.surf.Cursor()
	sel, selOK := m.surf.Selection()
	showCursor := m.focused && !m.prompt.active

	out := make([]string, 0, len(rows))
	for _, row := range rows {
		var sb strings.Builder

		if row.marker != "" {
			sb.WriteString(st.Marker.Render(row.marker))
		} else {
			sb.WriteString(strings.Repeat(" ", row.indent))
		}
		if pad := row.x0() - row.indent; pad > 0 {
			sb.WriteString(strings.Repeat(" ", pad))
		}

		for i, g := range row.glyphs {
			p := richtext.Pos{Block: row.block, Col: row.startCol + i}
			gs := glyphStyle(st, g)
			if selOK && posInRange(p, sel) {
				gs = st.Selection.Inherit(gs)
			}
			if showCursor && p == cursor {
				gs = st.Cursor.Inherit(gs)
			}
			sb.WriteString(gs.Render(g.Text))
		}

		// The cursor past the last grapheme of a block gets its own cell.
		if showCursor && row.lastRow && cursor == (richtext.Pos{Block: row.block, Col: row.endCol}) {
			sb.WriteString(st.Cursor.Render(" "))
		}

		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

func glyphStyle(st Style, g richtext.Glyph) lipgloss.Style {
	s := st.Text
	if g.Style.Has(richtext.Bold) {
		s = s.Bold(true)
	}
	if g.Style.Has(richtext.Italic) {
		s = s.Italic(true)
	}
	if g.Style.Has(richtext.Underline) {
		s = s.Underline(true)
	}
	if g.Link != "" {
		s = st.Link.Inherit(s)
	}
	return s
}

func posInRange(p richtext.Pos, r richtext.Range) bool {
	return richtext.ComparePos(p, r.Start) >= 0 && richtext.ComparePos(p, r.End) < 0
}
