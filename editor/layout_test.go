package editor

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/composer/richtext"
)

func TestLayout_WrapsAtWordBoundary(t *testing.T) {
	rows := buildLayout(richtext.New("hello world"), 8)
	if len(rows) != 2 {
		t.Fatalf("rows: got %d, want 2", len(rows))
	}
	if rows[0].startCol != 0 || rows[0].endCol != 6 {
		t.Fatalf("row 0 span: got [%d,%d), want [0,6)", rows[0].startCol, rows[0].endCol)
	}
	if rows[1].startCol != 6 || rows[1].endCol != 11 || !rows[1].lastRow {
		t.Fatalf("row 1 span: got [%d,%d) last=%v, want [6,11) last=true", rows[1].startCol, rows[1].endCol, rows[1].lastRow)
	}
}

func TestLayout_BreaksLongWord(t *testing.T) {
	rows := buildLayout(richtext.New("abcdefgh"), 3)
	if len(rows) != 3 {
		t.Fatalf("rows: got %d, want 3", len(rows))
	}
	if rows[2].startCol != 6 || rows[2].endCol != 8 {
		t.Fatalf("row 2 span: got [%d,%d), want [6,8)", rows[2].startCol, rows[2].endCol)
	}
}

func TestLayout_ListMarkersAndNumbering(t *testing.T) {
	s := richtext.New("a\nb\nc\nd")
	s.SetSelection(richtext.Range{Start: richtext.Pos{Block: 0}, End: richtext.Pos{Block: 1, Col: 1}})
	s.ToggleList(richtext.NumberedList)
	s.SetSelection(richtext.Range{Start: richtext.Pos{Block: 3}, End: richtext.Pos{Block: 3, Col: 1}})
	s.ToggleList(richtext.BulletList)

	rows := buildLayout(s, 20)
	got := []string{rows[0].marker, rows[1].marker, rows[2].marker, rows[3].marker}
	want := []string{"1. ", "2. ", "", "• "}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("marker %d: got %q, want %q", i, got[i], want[i])
		}
	}
	if rows[0].x0() != 3 || rows[3].x0() != 2 {
		t.Fatalf("content offsets: got %d/%d, want 3/2", rows[0].x0(), rows[3].x0())
	}
}

func TestLayout_AlignmentShiftsRow(t *testing.T) {
	s := richtext.New("ab")
	s.SelectAll()
	s.SetBlockAlignment(richtext.AlignRight)
	if got := buildLayout(s, 10)[0].x0(); got != 8 {
		t.Fatalf("right aligned x0: got %d, want 8", got)
	}
	s.SetBlockAlignment(richtext.AlignCenter)
	if got := buildLayout(s, 10)[0].x0(); got != 4 {
		t.Fatalf("centred x0: got %d, want 4", got)
	}
}

func TestHitTest_ClampsAndYOffset(t *testing.T) {
	m := New(Config{Text: "abc\ndef\nghi"})
	m.viewport.YOffset = 1

	if got, want := m.ScreenToDoc(2, 0), (richtext.Pos{Block: 1, Col: 2}); got != want {
		t.Fatalf("pos at (2,0) with yoffset=1: got %v, want %v", got, want)
	}
	if got, want := m.ScreenToDoc(999, 0), (richtext.Pos{Block: 1, Col: 3}); got != want {
		t.Fatalf("pos at (999,0): got %v, want %v", got, want)
	}
}

func TestHitTest_WrapBoundaryGoesToNextRow(t *testing.T) {
	m := New(Config{Text: "hello world"}).SetSize(8, 5)

	x, y, ok := m.DocToScreen(richtext.Pos{Col: 6})
	if !ok || x != 0 || y != 1 {
		t.Fatalf("wrap boundary: got (%d,%d,%v), want (0,1,true)", x, y, ok)
	}
	if got, want := m.ScreenToDoc(7, 0), (richtext.Pos{Col: 5}); got != want {
		t.Fatalf("past end of wrapped row: got %v, want %v", got, want)
	}
}

func TestHitTest_RoundTripThroughMarker(t *testing.T) {
	m := New(Config{Text: "item"}).SetSize(20, 5)
	m.Surface().SelectAll()
	m = m.Dispatch(CommandBulletList)

	x, y, ok := m.DocToScreen(richtext.Pos{Col: 1})
	if !ok || x != 3 || y != 0 {
		t.Fatalf("doc to screen: got (%d,%d,%v), want (3,0,true)", x, y, ok)
	}
	if got, want := m.ScreenToDoc(0, 0), (richtext.Pos{}); got != want {
		t.Fatalf("click on marker: got %v, want %v", got, want)
	}
}

func TestRender_ShowsMarkersAndText(t *testing.T) {
	m := New(Config{Text: "one\ntwo"}).SetSize(20, 4).Blur()
	m.Surface().SelectAll()
	m = m.Dispatch(CommandNumberedList)

	lines := strings.Split(m.View(), "\n")
	if !strings.Contains(lines[0], "1. one") || !strings.Contains(lines[1], "2. two") {
		t.Fatalf("view: got %q", m.View())
	}
}

func TestModel_TypingEmitsContentChange(t *testing.T) {
	var events []ChangeEvent
	m := New(Config{OnChange: func(e ChangeEvent) { events = append(events, e) }}).SetSize(20, 4)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hi")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})

	if len(events) != 2 {
		t.Fatalf("events: got %d, want 2", len(events))
	}
	if !events[0].ContentChanged || events[0].Text != "hi" || !strings.Contains(events[0].HTML, "hi") {
		t.Fatalf("typing event: got %+v", events[0])
	}
	if events[1].ContentChanged {
		t.Fatalf("cursor move must not report a content change: %+v", events[1])
	}
	if m.Surface().Cursor() != (richtext.Pos{Col: 1}) {
		t.Fatalf("cursor: got %v, want {0 1}", m.Surface().Cursor())
	}
}

func TestModel_AppendAndReplaceContent(t *testing.T) {
	m := New(Config{Text: "draft"})

	m = m.AppendBlock("appended")
	if got, want := m.Surface().Text(), "draft\nappended"; got != want {
		t.Fatalf("after append: got %q, want %q", got, want)
	}
	if !strings.Contains(m.Mirror(), "appended") {
		t.Fatalf("mirror should follow appended text: %q", m.Mirror())
	}

	m = m.ReplaceContent("fresh idea")
	if got, want := m.Surface().Text(), "fresh idea"; got != want {
		t.Fatalf("after replace: got %q, want %q", got, want)
	}
}

type memClipboard struct{ text string }

func (c *memClipboard) ReadText() (string, error) { return c.text, nil }
func (c *memClipboard) WriteText(s string) error  { c.text = s; return nil }

func TestModel_CutAndPaste(t *testing.T) {
	clip := &memClipboard{}
	m := New(Config{Text: "abc", Clipboard: clip}).SetSize(20, 4)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlA})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
	if clip.text != "abc" || m.Surface().Text() != "" {
		t.Fatalf("cut: clipboard %q, text %q", clip.text, m.Surface().Text())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	if got := m.Surface().Text(); got != "abc" {
		t.Fatalf("paste: got %q, want %q", got, "abc")
	}
}
