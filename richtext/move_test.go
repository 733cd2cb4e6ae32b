package richtext

import "testing"

func TestMoveGrapheme_CrossesBlocks(t *testing.T) {
	s := New("ab\ncd")

	s.Move(Move{Unit: MoveGrapheme, Dir: DirLeft})
	if got := s.Cursor(); got != (Pos{}) {
		t.Fatalf("cursor: got %v, want (0,0)", got)
	}

	s.SetCursor(Pos{Col: 2})
	s.Move(Move{Unit: MoveGrapheme, Dir: DirRight})
	if got := s.Cursor(); got != (Pos{Block: 1}) {
		t.Fatalf("cursor: got %v, want (1,0)", got)
	}

	s.Move(Move{Unit: MoveGrapheme, Dir: DirLeft})
	if got := s.Cursor(); got != (Pos{Col: 2}) {
		t.Fatalf("cursor: got %v, want (0,2)", got)
	}
}

func TestMove_ExtendBuildsSelectionFromAnchor(t *testing.T) {
	s := New("hello")

	s.Move(Move{Unit: MoveGrapheme, Dir: DirRight, Extend: true})
	s.Move(Move{Unit: MoveGrapheme, Dir: DirRight, Extend: true})

	r, ok := s.Selection()
	if !ok {
		t.Fatalf("expected selection")
	}
	if want := (Range{Start: Pos{}, End: Pos{Col: 2}}); r != want {
		t.Fatalf("selection: got %v, want %v", r, want)
	}

	s.Move(Move{Unit: MoveGrapheme, Dir: DirLeft, Extend: true})
	s.Move(Move{Unit: MoveGrapheme, Dir: DirLeft, Extend: true})
	if _, ok := s.Selection(); ok {
		t.Fatalf("selection collapsed back to the anchor must be inactive")
	}
}

func TestMoveWord_StopsAtWordEdges(t *testing.T) {
	s := New("one, two three")

	s.Move(Move{Unit: MoveWord, Dir: DirRight})
	if got := s.Cursor(); got != (Pos{Col: 3}) {
		t.Fatalf("cursor: got %v, want (0,3)", got)
	}
	s.Move(Move{Unit: MoveWord, Dir: DirRight})
	if got := s.Cursor(); got != (Pos{Col: 8}) {
		t.Fatalf("cursor: got %v, want (0,8)", got)
	}
	s.Move(Move{Unit: MoveWord, Dir: DirLeft})
	if got := s.Cursor(); got != (Pos{Col: 5}) {
		t.Fatalf("cursor: got %v, want (0,5)", got)
	}
}

func TestMoveBlockAndDoc(t *testing.T) {
	s := New("hello\nw\nworld")

	s.SetCursor(Pos{Block: 2, Col: 5})
	s.Move(Move{Unit: MoveBlock, Dir: DirUp})
	if got := s.Cursor(); got != (Pos{Block: 1, Col: 1}) {
		t.Fatalf("cursor: got %v, want (1,1)", got)
	}

	s.Move(Move{Unit: MoveBlock, Dir: DirEnd})
	s.Move(Move{Unit: MoveDoc, Dir: DirHome})
	if got := s.Cursor(); got != (Pos{}) {
		t.Fatalf("cursor: got %v, want (0,0)", got)
	}
	s.Move(Move{Unit: MoveDoc, Dir: DirEnd})
	if got := s.Cursor(); got != (Pos{Block: 2, Col: 5}) {
		t.Fatalf("cursor: got %v, want (2,5)", got)
	}
}
