package richtext

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func selectWord(s *Surface, block, from, to int) {
	s.SetSelection(Range{Start: Pos{Block: block, Col: from}, End: Pos{Block: block, Col: to}})
}

func TestToggleInlineStyle_TwiceRestoresOriginal(t *testing.T) {
	s := New("Hello world")
	s.SelectAll()
	before := s.Blocks()

	s.ToggleInlineStyle(Bold)
	bold := []Block{{Runs: []Run{{Text: "Hello world", Style: Bold}}}}
	if diff := cmp.Diff(bold, s.Blocks()); diff != "" {
		t.Fatalf("after first toggle (-want +got):\n%s", diff)
	}
	if _, ok := s.Selection(); !ok {
		t.Fatalf("formatting must keep the selection")
	}

	s.ToggleInlineStyle(Bold)
	if diff := cmp.Diff(before, s.Blocks()); diff != "" {
		t.Fatalf("after second toggle (-want +got):\n%s", diff)
	}
}

func TestToggleInlineStyle_PartiallyStyledSelectionGetsStyled(t *testing.T) {
	s := New("abcd")
	selectWord(s, 0, 0, 2)
	s.ToggleInlineStyle(Italic)

	selectWord(s, 0, 0, 4)
	s.ToggleInlineStyle(Italic)

	want := []Block{{Runs: []Run{{Text: "abcd", Style: Italic}}}}
	if diff := cmp.Diff(want, s.Blocks()); diff != "" {
		t.Fatalf("blocks mismatch (-want +got):\n%s", diff)
	}
}

func TestToggleInlineStyle_StylesCombine(t *testing.T) {
	s := New("abc")
	selectWord(s, 0, 1, 2)
	s.ToggleInlineStyle(Bold)
	s.ToggleInlineStyle(Underline)

	want := []Block{{Runs: []Run{
		{Text: "a"},
		{Text: "b", Style: Bold | Underline},
		{Text: "c"},
	}}}
	if diff := cmp.Diff(want, s.Blocks()); diff != "" {
		t.Fatalf("blocks mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatting_WithoutSelectionIsNoOp(t *testing.T) {
	s := New("abc")
	s.SetCursor(Pos{Col: 1})
	before := s.Version()

	s.ToggleInlineStyle(Bold)
	s.SetBlockAlignment(AlignCenter)
	s.ToggleList(BulletList)
	s.InsertLink("https://example.com")

	if got := s.Version(); got != before {
		t.Fatalf("version: got %d, want %d", got, before)
	}
}

func TestSetBlockAlignment_TouchesEveryCoveredBlock(t *testing.T) {
	s := New("a\nb\nc")
	s.SetSelection(Range{Start: Pos{Block: 0, Col: 1}, End: Pos{Block: 1, Col: 1}})

	s.SetBlockAlignment(AlignRight)

	for i, want := range []Align{AlignRight, AlignRight, AlignLeft} {
		if got := s.AlignAt(i); got != want {
			t.Fatalf("block %d align: got %v, want %v", i, got, want)
		}
	}

	v := s.TextVersion()
	s.SetBlockAlignment(AlignRight)
	if got := s.TextVersion(); got != v {
		t.Fatalf("repeating an alignment must not bump text version: got %d, want %d", got, v)
	}
}

func TestToggleList_SwitchesAndRemoves(t *testing.T) {
	s := New("a\nb")
	s.SelectAll()

	s.ToggleList(BulletList)
	if got := s.BlockKindAt(1); got != BulletItem {
		t.Fatalf("kind after bullet: got %v, want %v", got, BulletItem)
	}

	s.ToggleList(NumberedList)
	if got := s.BlockKindAt(0); got != NumberedItem {
		t.Fatalf("kind after numbered: got %v, want %v", got, NumberedItem)
	}

	s.ToggleList(NumberedList)
	if got := s.BlockKindAt(0); got != Paragraph {
		t.Fatalf("kind after second numbered: got %v, want %v", got, Paragraph)
	}
}

func TestInsertLink_SetsTargetAndIgnoresEmptyURL(t *testing.T) {
	s := New("docs here")
	selectWord(s, 0, 0, 4)

	s.InsertLink("")
	if _, link, _ := s.StyleAt(Pos{}); link != "" {
		t.Fatalf("empty url must be ignored, got link %q", link)
	}

	s.InsertLink("https://go.dev/doc")
	if _, link, _ := s.StyleAt(Pos{Col: 3}); link != "https://go.dev/doc" {
		t.Fatalf("link: got %q, want %q", link, "https://go.dev/doc")
	}
	if _, link, _ := s.StyleAt(Pos{Col: 4}); link != "" {
		t.Fatalf("link outside selection: got %q, want empty", link)
	}
	if ch, _ := s.LastChange(); ch.Kind != ChangeFormat {
		t.Fatalf("last change kind: got %v, want format", ch.Kind)
	}
}
