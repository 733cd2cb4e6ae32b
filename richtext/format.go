package richtext

// The formatting primitives below are scoped to the active selection and are
// silent no-ops when nothing is selected. They keep the selection in place so
// that a second call acts on the same span.

// ToggleInlineStyle removes style from the selection when every selected
// grapheme already carries it, and adds it everywhere otherwise.
func (s *Surface) ToggleInlineStyle(style InlineStyle) {
	r, ok := s.Selection()
	if !ok || style == 0 {
		return
	}

	all, n := true, 0
	s.eachCell(r, func(c *cell) {
		n++
		if !c.style.Has(style) {
			all = false
		}
	})
	if n == 0 {
		return
	}

	change := s.beginChange(ChangeFormat)
	s.eachCell(r, func(c *cell) {
		if all {
			c.style &^= style
		} else {
			c.style |= style
		}
	})
	s.bumpText()
	s.commitChange(change)
}

// SetBlockAlignment aligns every block the selection touches.
func (s *Surface) SetBlockAlignment(a Align) {
	r, ok := s.Selection()
	if !ok {
		return
	}

	change := s.beginChange(ChangeFormat)
	dirty := false
	for bi := r.Start.Block; bi <= r.End.Block; bi++ {
		if s.blocks[bi].align != a {
			s.blocks[bi].align = a
			dirty = true
		}
	}
	if !dirty {
		return
	}
	s.bumpText()
	s.commitChange(change)
}

// ToggleList turns every touched block into a list item of kind k, or back
// into paragraphs when they all already are items of kind k.
func (s *Surface) ToggleList(k ListKind) {
	r, ok := s.Selection()
	if !ok {
		return
	}

	want := k.blockKind()
	all := true
	for bi := r.Start.Block; bi <= r.End.Block; bi++ {
		if s.blocks[bi].kind != want {
			all = false
			break
		}
	}
	if all {
		want = Paragraph
	}

	change := s.beginChange(ChangeFormat)
	for bi := r.Start.Block; bi <= r.End.Block; bi++ {
		s.blocks[bi].kind = want
	}
	s.bumpText()
	s.commitChange(change)
}

// InsertLink points the selected graphemes at url. The target is stored
// verbatim.
func (s *Surface) InsertLink(url string) {
	r, ok := s.Selection()
	if !ok || url == "" {
		return
	}

	change := s.beginChange(ChangeFormat)
	s.eachCell(r, func(c *cell) { c.link = url })
	s.bumpText()
	s.commitChange(change)
}

// StyleAt returns the inline style and link of the grapheme at p.
func (s *Surface) StyleAt(p Pos) (InlineStyle, string, bool) {
	p = s.clampPos(p)
	cells := s.blocks[p.Block].cells
	if p.Col >= len(cells) {
		return 0, "", false
	}
	return cells[p.Col].style, cells[p.Col].link, true
}

// AlignAt returns the alignment of block i.
func (s *Surface) AlignAt(i int) Align {
	if i < 0 || i >= len(s.blocks) {
		return AlignLeft
	}
	return s.blocks[i].align
}

func (s *Surface) eachCell(r Range, fn func(*cell)) {
	for bi := r.Start.Block; bi <= r.End.Block; bi++ {
		from, to := colsInBlock(s.blocks[bi], bi, r)
		cells := s.blocks[bi].cells
		for i := from; i < to; i++ {
			fn(&cells[i])
		}
	}
}
