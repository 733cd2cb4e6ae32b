package richtext

import "github.com/iw2rmb/composer/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveBlock
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // block start (or doc start for MoveDoc)
	DirEnd  // block end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, updates selection anchor/end; if false clears selection
}

func (s *Surface) Move(m Move) {
	prevCursor := s.cursor
	prevSel := s.sel

	nextCursor := s.clampPos(s.moveCursor(prevCursor, m))

	nextSel := selectionState{}
	if m.Extend {
		anchor := prevCursor
		if prevSel.active && prevSel.anchor != prevSel.end {
			anchor = prevSel.anchor
		}
		if anchor != nextCursor {
			nextSel = selectionState{active: true, anchor: anchor, end: nextCursor}
		}
	}

	if prevCursor == nextCursor && selectionStateEqual(prevSel, nextSel) {
		return
	}

	s.cursor = nextCursor
	s.sel = nextSel
	s.version++
}

func selectionStateEqual(a, b selectionState) bool {
	if !a.active && !b.active {
		return true
	}
	return a.active == b.active && a.anchor == b.anchor && a.end == b.end
}

func (s *Surface) moveCursor(p Pos, m Move) Pos {
	switch m.Unit {
	case MoveGrapheme:
		return s.moveGrapheme(p, m.Dir)
	case MoveWord:
		return s.moveWord(p, m.Dir)
	case MoveBlock:
		return s.moveBlock(p, m.Dir)
	case MoveDoc:
		if m.Dir == DirHome || m.Dir == DirUp {
			return Pos{}
		}
		return s.endPos()
	default:
		return p
	}
}

func (s *Surface) moveGrapheme(p Pos, dir MoveDir) Pos {
	bi, col := p.Block, p.Col
	last := len(s.blocks) - 1

	switch dir {
	case DirLeft:
		if col > 0 {
			return Pos{Block: bi, Col: col - 1}
		}
		if bi == 0 {
			return p
		}
		return Pos{Block: bi - 1, Col: s.BlockLen(bi - 1)}
	case DirRight:
		if col < s.BlockLen(bi) {
			return Pos{Block: bi, Col: col + 1}
		}
		if bi == last {
			return p
		}
		return Pos{Block: bi + 1}
	default:
		return s.moveBlock(p, dir)
	}
}

func (s *Surface) moveWord(p Pos, dir MoveDir) Pos {
	cells := s.blocks[p.Block].cells
	switch dir {
	case DirLeft:
		if p.Col == 0 {
			return s.moveGrapheme(p, DirLeft)
		}
		return Pos{Block: p.Block, Col: prevWordBoundary(cells, p.Col)}
	case DirRight:
		if p.Col == len(cells) {
			return s.moveGrapheme(p, DirRight)
		}
		return Pos{Block: p.Block, Col: nextWordBoundary(cells, p.Col)}
	default:
		return s.moveBlock(p, dir)
	}
}

func (s *Surface) moveBlock(p Pos, dir MoveDir) Pos {
	bi, col := p.Block, p.Col
	switch dir {
	case DirHome:
		return Pos{Block: bi}
	case DirEnd:
		return Pos{Block: bi, Col: s.BlockLen(bi)}
	case DirUp:
		if bi == 0 {
			return Pos{}
		}
		return Pos{Block: bi - 1, Col: min(col, s.BlockLen(bi-1))}
	case DirDown:
		if bi == len(s.blocks)-1 {
			return s.endPos()
		}
		return Pos{Block: bi + 1, Col: min(col, s.BlockLen(bi+1))}
	default:
		return p
	}
}

// Word boundaries: skip separators, then skip word graphemes. Block edges are
// hard boundaries.
func prevWordBoundary(cells []cell, col int) int {
	i := clampInt(col, 0, len(cells))
	for i > 0 && !grapheme.IsWord(cells[i-1].g) {
		i--
	}
	for i > 0 && grapheme.IsWord(cells[i-1].g) {
		i--
	}
	return i
}

func nextWordBoundary(cells []cell, col int) int {
	i := clampInt(col, 0, len(cells))
	for i < len(cells) && !grapheme.IsWord(cells[i].g) {
		i++
	}
	for i < len(cells) && grapheme.IsWord(cells[i].g) {
		i++
	}
	return i
}
