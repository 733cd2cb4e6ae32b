package studio

import (
	"image"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/composer/editor"
)

const (
	sidebarWidth = 24
	minEditorRow = 3
)

// Sidebar rows.
const (
	rowContentHeading = 0
	rowFirstType      = 1
	rowToolsHeading   = 5
	rowIdeas          = 6
	rowSchedule       = 7
	rowPreferences    = 8
)

type stripButton struct {
	label string
	cmd   editor.FormatCommand
}

var stripButtons = []stripButton{
	{"B", editor.CommandBold},
	{"I", editor.CommandItalic},
	{"U", editor.CommandUnderline},
	{"⇤", editor.CommandAlignLeft},
	{"↔", editor.CommandAlignCenter},
	{"⇥", editor.CommandAlignRight},
	{"•", editor.CommandBulletList},
	{"1.", editor.CommandNumberedList},
	{"link", editor.CommandLink},
}

// geometry is the screen split for a given window size. All rectangles are
// in absolute screen cells.
type geometry struct {
	sidebar image.Rectangle
	column  image.Rectangle // editor column
	preview image.Rectangle

	strip  image.Rectangle
	editor image.Rectangle
	bottom image.Rectangle
	panel  image.Rectangle
}

func (m Model) geometry() geometry {
	w, h := max(m.width, 0), max(m.height, 0)
	previewW := max((w-sidebarWidth)/2, 0)
	columnW := max(w-sidebarWidth-previewW, 0)

	var g geometry
	g.sidebar = image.Rect(0, 0, min(sidebarWidth, w), h)
	g.column = image.Rect(g.sidebar.Max.X, 0, g.sidebar.Max.X+columnW, h)
	g.preview = image.Rect(g.column.Max.X, 0, w, h)

	inner := image.Rect(g.column.Min.X+1, 0, max(g.column.Max.X-1, g.column.Min.X+1), h)
	panelH := m.panelHeight()
	editorH := max(h-4-panelH, minEditorRow)

	g.strip = image.Rect(inner.Min.X, 0, inner.Max.X, 1)
	g.editor = image.Rect(inner.Min.X, 2, inner.Max.X, 2+editorH)
	g.bottom = image.Rect(inner.Min.X, g.editor.Max.Y+1, inner.Max.X, g.editor.Max.Y+2)
	g.panel = image.Rect(inner.Min.X, g.bottom.Max.Y, inner.Max.X, g.bottom.Max.Y+panelH)
	return g
}

func (m Model) panelHeight() int {
	switch {
	case m.ideasOpen:
		return 1 + len(Ideas)
	case m.suggestionsOpen:
		return 1 + len(m.suggestions)
	default:
		return 0
	}
}

// stripButtonAt returns the strip button under screen cell x.
func (m Model) stripButtonAt(g geometry, x int) (stripButton, bool) {
	pos := g.strip.Min.X
	for _, b := range stripButtons {
		w := lipgloss.Width(b.label) + 2
		if x >= pos && x < pos+w {
			return b, true
		}
		pos += w + 1 // separator
	}
	return stripButton{}, false
}

// generateButtonRect is the "Enhance with AI" button at the right end of the
// bottom bar.
func (m Model) generateButtonRect(g geometry) image.Rectangle {
	w := lipgloss.Width(m.generateLabel())
	return image.Rect(max(g.bottom.Max.X-w, g.bottom.Min.X), g.bottom.Min.Y, g.bottom.Max.X, g.bottom.Max.Y)
}

var previewModeLabels = []string{"Mobile", "Tablet", "Desktop"}

// previewModeAt maps a click on the preview header to a mode index.
func previewModeAt(g geometry, x, y int) (int, bool) {
	if y != g.preview.Min.Y {
		return 0, false
	}
	pos := g.preview.Max.X - previewModesWidth()
	for i, l := range previewModeLabels {
		w := len(l) + 2
		if x >= pos && x < pos+w {
			return i, true
		}
		pos += w + 1
	}
	return 0, false
}

func previewModesWidth() int {
	w := 0
	for _, l := range previewModeLabels {
		w += len(l) + 3
	}
	return w
}
