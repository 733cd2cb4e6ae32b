package richtext

import (
	"strings"

	"github.com/iw2rmb/composer/internal/grapheme"
)

type cell struct {
	g     string
	style InlineStyle
	link  string
}

type block struct {
	kind  BlockKind
	align Align
	cells []cell
}

type selectionState struct {
	active bool
	anchor Pos
	end    Pos
}

// Surface is the editable rich-text region: blocks, cursor, and selection.
type Surface struct {
	blocks      []block
	version     uint64
	textVersion uint64

	cursor Pos
	sel    selectionState

	lastChange    Change
	hasLastChange bool
}

// New builds a surface where every '\n'-separated line is a paragraph.
func New(text string) *Surface {
	return &Surface{blocks: paragraphsFromText(text)}
}

// Text returns the plain text of the surface, blocks joined by '\n'.
func (s *Surface) Text() string {
	var sb strings.Builder
	for i, b := range s.blocks {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range b.cells {
			sb.WriteString(c.g)
		}
	}
	return sb.String()
}

// Blocks returns a snapshot of every block with cells merged into runs.
func (s *Surface) Blocks() []Block {
	out := make([]Block, 0, len(s.blocks))
	for _, b := range s.blocks {
		out = append(out, Block{Kind: b.kind, Align: b.align, Runs: runsOf(b.cells)})
	}
	return out
}

// BlockCount returns the number of blocks. It is never less than one.
func (s *Surface) BlockCount() int { return len(s.blocks) }

// BlockLen returns the grapheme length of block i, or 0 when out of range.
func (s *Surface) BlockLen(i int) int {
	if i < 0 || i >= len(s.blocks) {
		return 0
	}
	return len(s.blocks[i].cells)
}

// BlockKindAt returns the kind of block i.
func (s *Surface) BlockKindAt(i int) BlockKind {
	if i < 0 || i >= len(s.blocks) {
		return Paragraph
	}
	return s.blocks[i].kind
}

// Version increments on every observable change: text, format, cursor, or selection.
func (s *Surface) Version() uint64 { return s.version }

// TextVersion increments only when content or formatting changes.
func (s *Surface) TextVersion() uint64 { return s.textVersion }

func (s *Surface) Cursor() Pos { return s.cursor }

func (s *Surface) SetCursor(p Pos) {
	next := s.clampPos(p)
	if next == s.cursor {
		return
	}
	s.cursor = next
	s.version++
}

// Selection returns the normalized selection. An empty selection is reported
// as inactive.
func (s *Surface) Selection() (Range, bool) {
	if !s.sel.active {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: s.sel.anchor, End: s.sel.end})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// SelectionRaw returns the anchor/end pair without normalization, preserving
// the drag direction.
func (s *Surface) SelectionRaw() (Range, bool) {
	if !s.sel.active || s.sel.anchor == s.sel.end {
		return Range{}, false
	}
	return Range{Start: s.sel.anchor, End: s.sel.end}, true
}

func (s *Surface) SetSelection(r Range) {
	clamped := ClampRange(r, len(s.blocks), s.BlockLen)
	next := selectionState{active: true, anchor: clamped.Start, end: clamped.End}
	if clamped.Start == clamped.End {
		next = selectionState{}
	}

	prevRange, prevOK := s.Selection()
	nextRange, nextOK := Range{}, next.active
	if nextOK {
		nextRange = NormalizeRange(clamped)
	}

	s.sel = next
	if prevOK == nextOK && (!prevOK || prevRange == nextRange) {
		return
	}
	s.version++
}

func (s *Surface) ClearSelection() {
	if !s.sel.active {
		return
	}
	_, had := s.Selection()
	s.sel = selectionState{}
	if had {
		s.version++
	}
}

// SelectAll selects the whole document and moves the cursor to its end.
func (s *Surface) SelectAll() {
	end := s.endPos()
	s.SetSelection(Range{Start: Pos{}, End: end})
	s.SetCursor(end)
}

// SelectedText returns the plain text of the active selection.
func (s *Surface) SelectedText() string {
	r, ok := s.Selection()
	if !ok {
		return ""
	}
	return textForRange(s.blocks, r)
}

func (s *Surface) endPos() Pos {
	last := len(s.blocks) - 1
	return Pos{Block: last, Col: len(s.blocks[last].cells)}
}

func (s *Surface) clampPos(p Pos) Pos {
	return ClampPos(p, len(s.blocks), s.BlockLen)
}

func (s *Surface) bumpText() {
	s.version++
	s.textVersion++
}

func paragraphsFromText(text string) []block {
	parts := strings.Split(text, "\n")
	out := make([]block, 0, len(parts))
	for _, p := range parts {
		out = append(out, block{cells: plainCells(p, 0)})
	}
	return out
}

func plainCells(text string, style InlineStyle) []cell {
	gs := grapheme.Split(text)
	if len(gs) == 0 {
		return nil
	}
	out := make([]cell, len(gs))
	for i, g := range gs {
		out[i] = cell{g: g, style: style}
	}
	return out
}

func runsOf(cells []cell) []Run {
	var out []Run
	var sb strings.Builder
	for i, c := range cells {
		if i > 0 && (c.style != cells[i-1].style || c.link != cells[i-1].link) {
			out = append(out, Run{Text: sb.String(), Style: cells[i-1].style, Link: cells[i-1].link})
			sb.Reset()
		}
		sb.WriteString(c.g)
	}
	if len(cells) > 0 {
		last := cells[len(cells)-1]
		out = append(out, Run{Text: sb.String(), Style: last.style, Link: last.link})
	}
	return out
}

func textForRange(blocks []block, r Range) string {
	r = NormalizeRange(r)
	if r.IsEmpty() {
		return ""
	}
	var sb strings.Builder
	for bi := r.Start.Block; bi <= r.End.Block; bi++ {
		if bi > r.Start.Block {
			sb.WriteByte('\n')
		}
		from, to := colsInBlock(blocks[bi], bi, r)
		for _, c := range blocks[bi].cells[from:to] {
			sb.WriteString(c.g)
		}
	}
	return sb.String()
}

// colsInBlock returns the [from, to) cell span of block bi covered by r.
func colsInBlock(b block, bi int, r Range) (int, int) {
	from, to := 0, len(b.cells)
	if bi == r.Start.Block {
		from = r.Start.Col
	}
	if bi == r.End.Block {
		to = r.End.Col
	}
	return from, to
}

// Glyph is one grapheme cluster of a block with its formatting.
type Glyph struct {
	Text  string
	Style InlineStyle
	Link  string
}

// Glyphs returns the graphemes of block i.
func (s *Surface) Glyphs(i int) []Glyph {
	if i < 0 || i >= len(s.blocks) {
		return nil
	}
	cells := s.blocks[i].cells
	out := make([]Glyph, len(cells))
	for j, c := range cells {
		out[j] = Glyph{Text: c.g, Style: c.style, Link: c.link}
	}
	return out
}
