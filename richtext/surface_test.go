package richtext

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNew_SplitsParagraphs(t *testing.T) {
	s := New("hello\n\nworld")

	want := []Block{
		{Kind: Paragraph, Runs: []Run{{Text: "hello"}}},
		{Kind: Paragraph},
		{Kind: Paragraph, Runs: []Run{{Text: "world"}}},
	}
	if diff := cmp.Diff(want, s.Blocks()); diff != "" {
		t.Fatalf("blocks mismatch (-want +got):\n%s", diff)
	}
	if got, want := s.Text(), "hello\n\nworld"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got := s.BlockCount(); got != 3 {
		t.Fatalf("block count: got %d, want 3", got)
	}
}

func TestNew_EmptyTextHasOneBlock(t *testing.T) {
	s := New("")
	if got := s.BlockCount(); got != 1 {
		t.Fatalf("block count: got %d, want 1", got)
	}
	if got := s.BlockLen(0); got != 0 {
		t.Fatalf("block len: got %d, want 0", got)
	}
}

func TestSurface_SetCursor_ClampsAndVersions(t *testing.T) {
	s := New("a\nbc")

	s.SetCursor(Pos{Block: 9, Col: 9})
	if got := s.Cursor(); got != (Pos{Block: 1, Col: 2}) {
		t.Fatalf("cursor: got %v, want (1,2)", got)
	}
	if got := s.Version(); got != 1 {
		t.Fatalf("version: got %d, want 1", got)
	}
	if got := s.TextVersion(); got != 0 {
		t.Fatalf("text version: got %d, want 0", got)
	}

	s.SetCursor(Pos{Block: 1, Col: 2})
	if got := s.Version(); got != 1 {
		t.Fatalf("version after no-op: got %d, want 1", got)
	}
}

func TestSurface_SetSelection_NormalizesAndTreatsEmptyAsInactive(t *testing.T) {
	s := New("a\nbc")

	s.SetSelection(Range{Start: Pos{Block: 1, Col: 99}, End: Pos{Block: 0, Col: -1}})
	r, ok := s.Selection()
	if !ok {
		t.Fatalf("expected selection active")
	}
	if want := (Range{Start: Pos{}, End: Pos{Block: 1, Col: 2}}); r != want {
		t.Fatalf("selection: got %v, want %v", r, want)
	}
	raw, _ := s.SelectionRaw()
	if raw.Start != (Pos{Block: 1, Col: 2}) {
		t.Fatalf("raw selection must keep direction: got %v", raw)
	}
	if got := s.Version(); got != 1 {
		t.Fatalf("version: got %d, want 1", got)
	}

	s.SetSelection(Range{Start: Pos{Block: 1, Col: 1}, End: Pos{Block: 1, Col: 1}})
	if _, ok := s.Selection(); ok {
		t.Fatalf("collapsed selection must be inactive")
	}
	if got := s.Version(); got != 2 {
		t.Fatalf("version after collapse: got %d, want 2", got)
	}

	s.ClearSelection()
	if got := s.Version(); got != 2 {
		t.Fatalf("clearing an inactive selection must not bump version: got %d", got)
	}
}

func TestSurface_SelectAllAndSelectedText(t *testing.T) {
	s := New("Hello\nworld")
	s.SelectAll()

	if got, want := s.SelectedText(), "Hello\nworld"; got != want {
		t.Fatalf("selected text: got %q, want %q", got, want)
	}
	if got, want := s.Cursor(), (Pos{Block: 1, Col: 5}); got != want {
		t.Fatalf("cursor: got %v, want %v", got, want)
	}
}
