package editor

import (
	"github.com/iw2rmb/composer/richtext"
)

// ScreenToDoc maps viewport-local cell coordinates to a document position.
//
// (0,0) is the top-left cell of the visible content region. Coordinates are
// clamped into document bounds.
func (m Model) ScreenToDoc(x, y int) richtext.Pos {
	return m.screenToDocPos(x, y)
}

// DocToScreen maps a document position to viewport-local cell coordinates.
//
// ok is false when the cell is scrolled out of view.
func (m Model) DocToScreen(p richtext.Pos) (x, y int, ok bool) {
	return m.docToScreenPos(p)
}

func (m *Model) screenToDocPos(x, y int) richtext.Pos {
	if m.surf == nil {
		return richtext.Pos{}
	}
	rows := m.ensureLayout()
	if len(rows) == 0 {
		return richtext.Pos{}
	}

	return posInRow(rows[clampInt(m.viewport.YOffset+y, 0, len(rows)-1)], x)
}

// posInRow maps a cell on a visual row to the column it lands on.
func posInRow(row visualRow, x int) richtext.Pos {
	if x <= row.x0() {
		return richtext.Pos{Block: row.block, Col: row.startCol}
	}
	for i := 0; i < len(row.xs)-1; i++ {
		if x >= row.xs[i] && x < row.xs[i+1] {
			return richtext.Pos{Block: row.block, Col: row.startCol + i}
		}
	}
	end := row.endCol
	if !row.lastRow && end > row.startCol {
		// Past the end of a wrapped row: stay on this row rather than jump to
		// the start of the next one.
		end--
	}
	return richtext.Pos{Block: row.block, Col: end}
}

func (m *Model) docToScreenPos(p richtext.Pos) (x, y int, ok bool) {
	vr, ok := m.visualRowFor(p)
	if !ok {
		return 0, 0, false
	}
	rows := m.ensureLayout()
	x = rows[vr].cellForCol(p.Col)
	y = vr - m.viewport.YOffset
	if y < 0 || y >= m.visibleRowCount() {
		return x, y, false
	}
	if x < 0 || (m.viewport.Width > 0 && x >= m.viewport.Width) {
		return x, y, false
	}
	return x, y, true
}

// visualRowFor returns the index of the visual row a cursor at p is drawn on.
func (m *Model) visualRowFor(p richtext.Pos) (int, bool) {
	if m.surf == nil {
		return 0, false
	}
	rows := m.ensureLayout()
	if len(rows) == 0 {
		return 0, false
	}
	p = richtext.ClampPos(p, m.surf.BlockCount(), m.surf.BlockLen)
	for i, r := range rows {
		if r.block == p.Block && r.containsCol(p.Col) {
			return i, true
		}
	}
	return len(rows) - 1, true
}
