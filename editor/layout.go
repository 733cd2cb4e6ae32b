package editor

import (
	"strconv"

	"github.com/iw2rmb/composer/internal/grapheme"
	"github.com/iw2rmb/composer/richtext"
)

// visualRow is one screen row of a wrapped block.
//
// xs holds the starting cell of every grapheme in [startCol, endCol) plus one
// trailing entry for the cell just past the row.
type visualRow struct {
	block    int
	startCol int
	endCol   int
	lastRow  bool // last visual row of its block

	marker string // list marker, first row of list items only
	indent int    // cells reserved for the marker on every row of the block
	xs     []int
	glyphs []richtext.Glyph
}

func (r visualRow) x0() int   { return r.xs[0] }
func (r visualRow) xEnd() int { return r.xs[len(r.xs)-1] }

// cellForCol returns the screen cell of grapheme col in this row.
func (r visualRow) cellForCol(col int) int {
	i := clampInt(col-r.startCol, 0, len(r.xs)-1)
	return r.xs[i]
}

// containsCol reports whether a cursor at col is drawn on this row. A column
// on a wrap boundary belongs to the next row.
func (r visualRow) containsCol(col int) bool {
	if col < r.startCol {
		return false
	}
	if col < r.endCol {
		return true
	}
	return col == r.endCol && r.lastRow
}

type layoutCacheKey struct {
	textVersion uint64
	width       int
}

type layoutCache struct {
	valid bool
	key   layoutCacheKey
	rows  []visualRow
}

func (m *Model) ensureLayout() []visualRow {
	key := layoutCacheKey{textVersion: m.surf.TextVersion(), width: m.contentWidth()}
	if m.layout != nil && m.layout.valid && m.layout.key == key {
		return m.layout.rows
	}
	rows := buildLayout(m.surf, key.width)
	if m.layout == nil {
		m.layout = &layoutCache{}
	}
	*m.layout = layoutCache{valid: true, key: key, rows: rows}
	return rows
}

func (m *Model) contentWidth() int {
	return m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize()
}

// buildLayout wraps every block at width cells. width <= 0 disables wrapping.
func buildLayout(s *richtext.Surface, width int) []visualRow {
	var rows []visualRow
	ordinal := 0
	for bi := 0; bi < s.BlockCount(); bi++ {
		kind := s.BlockKindAt(bi)
		if kind == richtext.NumberedItem {
			ordinal++
		} else {
			ordinal = 0
		}
		marker := listMarker(kind, ordinal)
		rows = append(rows, wrapBlock(bi, s.Glyphs(bi), s.AlignAt(bi), marker, width)...)
	}
	return rows
}

func listMarker(kind richtext.BlockKind, ordinal int) string {
	switch kind {
	case richtext.BulletItem:
		return "• "
	case richtext.NumberedItem:
		return strconv.Itoa(ordinal) + ". "
	default:
		return ""
	}
}

func wrapBlock(bi int, glyphs []richtext.Glyph, align richtext.Align, marker string, width int) []visualRow {
	indent := 0
	for _, g := range grapheme.Split(marker) {
		indent += grapheme.Width(g)
	}
	avail := width - indent
	if width <= 0 {
		avail = int(^uint(0) >> 1)
	} else if avail < 1 {
		avail = 1
	}

	widths := make([]int, len(glyphs))
	for i, g := range glyphs {
		widths[i] = grapheme.Width(g.Text)
	}

	// Greedy word wrap: break after the last space that fits, or mid-word
	// when a single word is wider than the row.
	var spans [][2]int
	start := 0
	for start < len(glyphs) {
		used, end, lastBreak := 0, start, -1
		for end < len(glyphs) && used+widths[end] <= avail {
			used += widths[end]
			if grapheme.IsSpace(glyphs[end].Text) {
				lastBreak = end + 1
			}
			end++
		}
		if end < len(glyphs) {
			switch {
			case lastBreak > start:
				end = lastBreak
			case end == start:
				end++
			}
		}
		spans = append(spans, [2]int{start, end})
		start = end
	}
	if len(spans) == 0 {
		spans = append(spans, [2]int{0, 0})
	}

	rows := make([]visualRow, 0, len(spans))
	for i, sp := range spans {
		rowWidth := 0
		for _, w := range widths[sp[0]:sp[1]] {
			rowWidth += w
		}
		x := indent + alignOffset(align, avail, rowWidth)

		xs := make([]int, 0, sp[1]-sp[0]+1)
		for _, w := range widths[sp[0]:sp[1]] {
			xs = append(xs, x)
			x += w
		}
		xs = append(xs, x)

		row := visualRow{
			block:    bi,
			startCol: sp[0],
			endCol:   sp[1],
			lastRow:  i == len(spans)-1,
			indent:   indent,
			xs:       xs,
			glyphs:   glyphs[sp[0]:sp[1]],
		}
		if i == 0 {
			row.marker = marker
		}
		rows = append(rows, row)
	}
	return rows
}

func alignOffset(align richtext.Align, avail, rowWidth int) int {
	free := avail - rowWidth
	if free <= 0 || avail == int(^uint(0)>>1) {
		return 0
	}
	switch align {
	case richtext.AlignCenter:
		return free / 2
	case richtext.AlignRight:
		return free
	default:
		return 0
	}
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
