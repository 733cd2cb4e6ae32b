package editor

func (m *Model) visibleRowCount() int {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h < 0 {
		return 0
	}
	return h
}

// followCursor scrolls the viewport so that the cursor row is visible.
func (m *Model) followCursor() {
	if m.surf == nil {
		return
	}
	h := m.visibleRowCount()
	if h <= 0 {
		return
	}
	row, ok := m.visualRowFor(m.surf.Cursor())
	if !ok {
		return
	}
	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}
