package editor

import (
	"image"

	"github.com/iw2rmb/composer/richtext"
)

// ToolbarLift is how many rows above the selection the toolbar anchor sits.
const ToolbarLift = 2

// SelectionRange is a non-empty selection together with its on-screen
// bounding rectangle in viewport-local cells. Max is exclusive.
type SelectionRange struct {
	Range  richtext.Range
	Bounds image.Rectangle
}

// ToolbarState says whether the floating toolbar is shown and where it is
// anchored. X is the horizontal centre, Y the top row.
type ToolbarState struct {
	Visible bool
	X, Y    int
}

// TrackSelection derives the toolbar state from the current selection.
// An absent or empty selection hides the toolbar.
func TrackSelection(sel SelectionRange, ok bool) ToolbarState {
	if !ok || sel.Range.IsEmpty() {
		return ToolbarState{}
	}
	return ToolbarState{
		Visible: true,
		X:       sel.Bounds.Min.X + sel.Bounds.Dx()/2,
		Y:       sel.Bounds.Min.Y - ToolbarLift,
	}
}

// currentSelection reads the surface selection and measures it against the
// current layout.
func (m *Model) currentSelection() (SelectionRange, bool) {
	if m.surf == nil {
		return SelectionRange{}, false
	}
	r, ok := m.surf.Selection()
	if !ok {
		return SelectionRange{}, false
	}
	bounds, ok := m.selectionBounds(r)
	if !ok {
		return SelectionRange{}, false
	}
	return SelectionRange{Range: r, Bounds: bounds}, true
}

// selectionBounds is the union of the covered cells of every visual row the
// range touches.
func (m *Model) selectionBounds(r richtext.Range) (image.Rectangle, bool) {
	r = richtext.NormalizeRange(r)
	rows := m.ensureLayout()

	var (
		minX, minY, maxX, maxY int
		found                  bool
	)
	add := func(x0, x1, y int) {
		if !found {
			minX, maxX, minY, maxY = x0, x1, y, y+1
			found = true
			return
		}
		minX = min(minX, x0)
		maxX = max(maxX, x1)
		minY = min(minY, y)
		maxY = max(maxY, y+1)
	}

	for i, row := range rows {
		if row.block < r.Start.Block || row.block > r.End.Block {
			continue
		}
		y := i - m.viewport.YOffset

		if row.startCol == row.endCol {
			// An empty block counts when the selection runs through it.
			if row.block < r.End.Block {
				add(row.x0(), row.x0()+1, y)
			}
			continue
		}

		lo, hi := row.startCol, row.endCol
		if row.block == r.Start.Block {
			lo = max(lo, r.Start.Col)
		}
		if row.block == r.End.Block {
			hi = min(hi, r.End.Col)
		}
		if lo >= hi {
			continue
		}
		add(row.xs[lo-row.startCol], row.xs[hi-row.startCol], y)
	}
	if !found && r.Start.Block < r.End.Block {
		// Only the block break is selected: it sits past the last cell of
		// the start block.
		for i, row := range rows {
			if row.block == r.Start.Block && row.lastRow {
				add(row.xEnd(), row.xEnd()+1, i-m.viewport.YOffset)
				break
			}
		}
	}
	if !found {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX, maxY), true
}

func (m *Model) trackSelection() {
	sel, ok := m.currentSelection()
	m.selRange = sel
	m.toolbar = TrackSelection(sel, ok)
}

func (m *Model) hideToolbar() {
	m.toolbar = ToolbarState{}
}
