package editor

import (
	"image"
	"strings"

	overlay "github.com/rmhubbert/bubbletea-overlay"
)

type toolbarButton struct {
	label string
	cmd   FormatCommand
	close bool
}

var toolbarButtons = []toolbarButton{
	{label: "B", cmd: CommandBold},
	{label: "I", cmd: CommandItalic},
	{label: "U", cmd: CommandUnderline},
	{label: "×", close: true},
}

// toolbarButtonWidth is the cell width of one padded button label.
const toolbarButtonWidth = 3

func toolbarWidth() int { return len(toolbarButtons) * toolbarButtonWidth }

// toolbarRect places the toolbar in viewport-local cells. The toolbar is
// centred on the anchor and flips below the selection when the anchor row is
// above the viewport.
func (m Model) toolbarRect() (image.Rectangle, bool) {
	if !m.toolbar.Visible {
		return image.Rectangle{}, false
	}
	w := toolbarWidth()
	x := m.toolbar.X - w/2
	y := m.toolbar.Y
	if y < 0 {
		y = m.selRange.Bounds.Max.Y
	}

	x = clampInt(x, 0, max(m.viewport.Width-w, 0))
	y = clampInt(y, 0, max(m.viewport.Height-1, 0))
	return image.Rect(x, y, x+w, y+1), true
}

// toolbarButtonAt reports which button, if any, covers cell (x, y).
func (m Model) toolbarButtonAt(x, y int) (toolbarButton, bool) {
	r, ok := m.toolbarRect()
	if !ok || !image.Pt(x, y).In(r) {
		return toolbarButton{}, false
	}
	i := (x - r.Min.X) / toolbarButtonWidth
	if i < 0 || i >= len(toolbarButtons) {
		return toolbarButton{}, false
	}
	return toolbarButtons[i], true
}

func (m Model) renderToolbar() string {
	var sb strings.Builder
	for _, b := range toolbarButtons {
		st := m.style().ToolbarButton
		if b.close {
			st = m.style().Toolbar
		}
		sb.WriteString(st.Render(" " + b.label + " "))
	}
	return sb.String()
}

func (m Model) compositeToolbar(base string) string {
	r, ok := m.toolbarRect()
	if !ok {
		return base
	}
	return overlay.Composite(
		m.renderToolbar(),
		base,
		overlay.Left,
		overlay.Top,
		m.frameLeft()+r.Min.X,
		m.frameTop()+r.Min.Y,
	)
}

func (m Model) frameLeft() int {
	st := m.viewport.Style
	return st.GetMarginLeft() + st.GetBorderLeftSize() + st.GetPaddingLeft()
}

func (m Model) frameTop() int {
	st := m.viewport.Style
	return st.GetMarginTop() + st.GetBorderTopSize() + st.GetPaddingTop()
}
