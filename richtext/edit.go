package richtext

import "strings"

// InsertText inserts text at the cursor, or replaces the active selection.
// A '\n' splits the current block; the new block keeps its kind and alignment.
func (s *Surface) InsertText(text string) {
	if text == "" {
		s.DeleteSelection()
		return
	}

	r, ok := s.Selection()
	if !ok {
		r = Range{Start: s.cursor, End: s.cursor}
	}
	s.replaceAndCommit(r, text)
}

// InsertNewline splits the block at the cursor, or replaces the active selection.
func (s *Surface) InsertNewline() {
	s.InsertText("\n")
}

// DeleteBackward applies backspace semantics. At the start of a block the
// block is merged into the previous one.
func (s *Surface) DeleteBackward() {
	if _, ok := s.Selection(); ok {
		s.DeleteSelection()
		return
	}

	bi, col := s.cursor.Block, s.cursor.Col
	switch {
	case col > 0:
		s.replaceAndCommit(Range{Start: Pos{Block: bi, Col: col - 1}, End: s.cursor}, "")
	case s.blocks[bi].kind != Paragraph:
		// Backspace at the start of a list item leaves the list first.
		change := s.beginChange(ChangeEdit)
		s.blocks[bi].kind = Paragraph
		s.bumpText()
		s.commitChange(change)
	case bi > 0:
		prev := Pos{Block: bi - 1, Col: len(s.blocks[bi-1].cells)}
		s.replaceAndCommit(Range{Start: prev, End: s.cursor}, "")
	}
}

// DeleteForward applies delete-key semantics.
func (s *Surface) DeleteForward() {
	if _, ok := s.Selection(); ok {
		s.DeleteSelection()
		return
	}

	bi, col := s.cursor.Block, s.cursor.Col
	switch {
	case col < len(s.blocks[bi].cells):
		s.replaceAndCommit(Range{Start: s.cursor, End: Pos{Block: bi, Col: col + 1}}, "")
	case bi < len(s.blocks)-1:
		s.replaceAndCommit(Range{Start: s.cursor, End: Pos{Block: bi + 1}}, "")
	}
}

// DeleteSelection deletes the active selection, if any.
func (s *Surface) DeleteSelection() {
	r, ok := s.Selection()
	if !ok {
		return
	}
	s.replaceAndCommit(r, "")
}

// AppendBlock adds text as a new paragraph after the last block. Embedded
// newlines produce one paragraph each.
func (s *Surface) AppendBlock(text string) {
	change := s.beginChange(ChangeAppend)
	s.blocks = append(s.blocks, paragraphsFromText(text)...)
	s.sel = selectionState{}
	s.bumpText()
	s.commitChange(change)
}

// ReplaceAll discards every block and loads text as plain paragraphs. The
// cursor moves to the end of the new content.
func (s *Surface) ReplaceAll(text string) {
	change := s.beginChange(ChangeReplace)
	s.blocks = paragraphsFromText(text)
	s.sel = selectionState{}
	s.cursor = s.endPos()
	s.bumpText()
	s.commitChange(change)
}

func (s *Surface) replaceAndCommit(r Range, text string) {
	change := s.beginChange(ChangeEdit)
	next, changed := s.replaceRange(r, text)
	if !changed {
		return
	}
	s.cursor = s.clampPos(next)
	s.sel = selectionState{}
	s.bumpText()
	s.commitChange(change)
}

func (s *Surface) replaceRange(r Range, text string) (nextCursor Pos, changed bool) {
	r = NormalizeRange(ClampRange(r, len(s.blocks), s.BlockLen))
	if r.IsEmpty() && text == "" {
		return s.cursor, false
	}

	start, end := s.blocks[r.Start.Block], s.blocks[r.End.Block]
	style := s.typingStyle(r.Start)

	prefix := append([]cell(nil), start.cells[:r.Start.Col]...)
	suffix := append([]cell(nil), end.cells[r.End.Col:]...)

	parts := strings.Split(text, "\n")
	repl := make([]block, 0, len(parts))
	for i, p := range parts {
		b := block{kind: start.kind, align: start.align, cells: plainCells(p, style)}
		if i == 0 {
			b.cells = append(prefix, b.cells...)
		}
		repl = append(repl, b)
	}
	lastIdx := len(repl) - 1
	nextCursor = Pos{Block: r.Start.Block + lastIdx, Col: len(repl[lastIdx].cells)}
	repl[lastIdx].cells = append(repl[lastIdx].cells, suffix...)

	out := make([]block, 0, len(s.blocks)-(r.End.Block-r.Start.Block)+lastIdx)
	out = append(out, s.blocks[:r.Start.Block]...)
	out = append(out, repl...)
	out = append(out, s.blocks[r.End.Block+1:]...)
	s.blocks = out
	return nextCursor, true
}

// typingStyle is the inline style new text inherits at p: the style of the
// grapheme before p, or of the first grapheme of the block at its start.
// Link targets are never inherited.
func (s *Surface) typingStyle(p Pos) InlineStyle {
	cells := s.blocks[p.Block].cells
	switch {
	case p.Col > 0:
		return cells[p.Col-1].style
	case len(cells) > 0:
		return cells[0].style
	default:
		return 0
	}
}
