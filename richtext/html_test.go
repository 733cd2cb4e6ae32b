package richtext

import (
	"strings"
	"testing"
)

func TestHTML_BoldSelection(t *testing.T) {
	s := New("Hello world")
	s.SelectAll()
	s.ToggleInlineStyle(Bold)

	got := s.HTML()
	if !strings.Contains(got, "<strong>Hello world</strong>") {
		t.Fatalf("mirror must wrap the selection in <strong>: got %q", got)
	}
	if !strings.HasPrefix(got, "<p") {
		t.Fatalf("mirror must start with a paragraph: got %q", got)
	}
}

func TestHTML_NestsStylesInsideLink(t *testing.T) {
	s := New("go")
	s.SelectAll()
	s.InsertLink("https://go.dev")
	s.ToggleInlineStyle(Italic)
	s.ToggleInlineStyle(Underline)

	got := s.HTML()
	want := `<em><u>go</u></em></a>`
	if !strings.Contains(got, want) || !strings.Contains(got, `href="https://go.dev"`) {
		t.Fatalf("mirror: got %q, want link wrapping %q", got, want)
	}
	if strings.Index(got, "<a") > strings.Index(got, "<em>") {
		t.Fatalf("link must be the outermost wrapper: got %q", got)
	}
}

func TestHTML_GroupsListItems(t *testing.T) {
	s := New("intro\none\ntwo\nthree")
	s.SetSelection(Range{Start: Pos{Block: 1}, End: Pos{Block: 2, Col: 3}})
	s.ToggleList(BulletList)
	s.SetSelection(Range{Start: Pos{Block: 3}, End: Pos{Block: 3, Col: 5}})
	s.ToggleList(NumberedList)

	got := s.HTML()
	if n := strings.Count(got, "<ul"); n != 1 {
		t.Fatalf("ul count: got %d, want 1 in %q", n, got)
	}
	if n := strings.Count(got, "<li"); n != 3 {
		t.Fatalf("li count: got %d, want 3 in %q", n, got)
	}
	if n := strings.Count(got, "<ol"); n != 1 {
		t.Fatalf("ol count: got %d, want 1 in %q", n, got)
	}
	if strings.Index(got, "</ul>") > strings.Index(got, "<ol") {
		t.Fatalf("bullet list must close before the numbered list opens: %q", got)
	}
}

func TestHTML_AlignmentAndEmptyBlocks(t *testing.T) {
	s := New("title\n")
	s.SetSelection(Range{Start: Pos{}, End: Pos{Col: 5}})
	s.SetBlockAlignment(AlignCenter)

	got := s.HTML()
	if !strings.Contains(got, "text-align: center") {
		t.Fatalf("mirror must carry alignment: got %q", got)
	}
	if !strings.Contains(got, "<br") {
		t.Fatalf("empty block must render a line break: got %q", got)
	}
}

func TestHTML_EscapesText(t *testing.T) {
	s := New("a < b")
	if got := s.HTML(); strings.Contains(got, "a < b") {
		t.Fatalf("mirror must escape markup characters: got %q", got)
	}
}
