package editor

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/iw2rmb/composer/richtext"
)

type recordingFormatter struct {
	calls []string
	panic bool
}

func (f *recordingFormatter) record(c string) {
	f.calls = append(f.calls, c)
	if f.panic {
		panic("primitive exploded")
	}
}

func (f *recordingFormatter) ToggleInlineStyle(s richtext.InlineStyle) {
	switch s {
	case richtext.Bold:
		f.record("bold")
	case richtext.Italic:
		f.record("italic")
	default:
		f.record("underline")
	}
}

func (f *recordingFormatter) SetBlockAlignment(a richtext.Align) { f.record("align:" + a.String()) }

func (f *recordingFormatter) ToggleList(k richtext.ListKind) {
	if k == richtext.BulletList {
		f.record("list:bullet")
		return
	}
	f.record("list:numbered")
}

func (f *recordingFormatter) InsertLink(url string) { f.record("link:" + url) }

type staticSerializer string

func (s staticSerializer) HTML() string { return string(s) }

func TestDispatcher_RoutesEveryCommand(t *testing.T) {
	f := &recordingFormatter{}
	d := Dispatcher{Formatter: f, LinkTarget: func() string { return "https://example.com" }}

	for _, c := range []FormatCommand{
		CommandBold, CommandItalic, CommandUnderline,
		CommandAlignLeft, CommandAlignCenter, CommandAlignRight,
		CommandBulletList, CommandNumberedList, CommandLink,
	} {
		d.Dispatch(c)
	}

	want := []string{
		"bold", "italic", "underline",
		"align:left", "align:center", "align:right",
		"list:bullet", "list:numbered", "link:https://example.com",
	}
	if diff := cmp.Diff(want, f.calls); diff != "" {
		t.Fatalf("primitive calls (-want +got):\n%s", diff)
	}
}

func TestDispatcher_PanickingPrimitiveStillRefreshesAndHides(t *testing.T) {
	var (
		mirror string
		hidden bool
	)
	d := Dispatcher{
		Formatter:  &recordingFormatter{panic: true},
		Serializer: staticSerializer("<p>x</p>"),
		OnMirror:   func(html string) { mirror = html },
		OnHide:     func() { hidden = true },
	}

	got := d.Dispatch(CommandBold)
	if got != "<p>x</p>" || mirror != "<p>x</p>" {
		t.Fatalf("mirror: got %q / %q, want %q", got, mirror, "<p>x</p>")
	}
	if !hidden {
		t.Fatalf("toolbar must be hidden after a failed command")
	}
}

func TestDispatcher_HideRunsAfterMirror(t *testing.T) {
	var order []string
	d := Dispatcher{
		Formatter:  &recordingFormatter{},
		Serializer: staticSerializer(""),
		OnMirror:   func(string) { order = append(order, "mirror") },
		OnHide:     func() { order = append(order, "hide") },
	}
	d.Dispatch(CommandUnderline)

	if diff := cmp.Diff([]string{"mirror", "hide"}, order); diff != "" {
		t.Fatalf("step order (-want +got):\n%s", diff)
	}
}

func TestParseFormatCommand(t *testing.T) {
	for _, c := range []FormatCommand{CommandBold, CommandAlignCenter, CommandNumberedList, CommandLink} {
		got, err := ParseFormatCommand(c.String())
		if err != nil {
			t.Fatalf("parse %q: %v", c.String(), err)
		}
		if got != c {
			t.Fatalf("parse %q: got %v, want %v", c.String(), got, c)
		}
	}
	if _, err := ParseFormatCommand("strike"); err == nil {
		t.Fatalf("parse of unknown command should fail")
	}
}

func TestModel_CtrlBBoldsSelectionAndHidesToolbar(t *testing.T) {
	m := New(Config{Text: "Hello world"}).SetSize(40, 5)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlA})
	if !m.Toolbar().Visible {
		t.Fatalf("select all should show the toolbar")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlB})

	if !strings.Contains(m.Mirror(), "<strong>Hello world</strong>") {
		t.Fatalf("mirror: got %q, want bold run", m.Mirror())
	}
	if m.Toolbar().Visible {
		t.Fatalf("toolbar must be hidden after a command")
	}
	if _, ok := m.Surface().Selection(); !ok {
		t.Fatalf("formatting must preserve the selection")
	}
}

func TestModel_DispatchWithoutSelectionIsNoOp(t *testing.T) {
	m := New(Config{Text: "plain"})
	before := m.Mirror()
	tv := m.Surface().TextVersion()

	m = m.Dispatch(CommandItalic)

	if m.Mirror() != before {
		t.Fatalf("mirror: got %q, want %q", m.Mirror(), before)
	}
	if got := m.Surface().TextVersion(); got != tv {
		t.Fatalf("text version: got %d, want %d", got, tv)
	}
}

func TestModel_ToolbarButtonClickDispatches(t *testing.T) {
	m := New(Config{Text: "one\ntwo three"}).SetSize(30, 6)
	m = drag(m, 0, 1, 3, 1)

	r, ok := m.toolbarRect()
	if !ok {
		t.Fatalf("toolbar should be placed")
	}
	// Second button is italic.
	m, _ = m.Update(press(r.Min.X+toolbarButtonWidth+1, r.Min.Y))

	if !strings.Contains(m.Mirror(), "<em>two</em>") {
		t.Fatalf("mirror: got %q, want italic run", m.Mirror())
	}
	if m.Toolbar().Visible {
		t.Fatalf("toolbar must hide after a button command")
	}
}

func TestModel_ToolbarCloseOnlyHides(t *testing.T) {
	m := New(Config{Text: "abc def"}).SetSize(30, 6)
	m = drag(m, 0, 0, 3, 0)
	r, _ := m.toolbarRect()
	tv := m.Surface().TextVersion()

	m, _ = m.Update(press(r.Max.X-1, r.Min.Y))

	if m.Toolbar().Visible {
		t.Fatalf("close must hide the toolbar")
	}
	if got := m.Surface().TextVersion(); got != tv {
		t.Fatalf("close must not format: text version got %d, want %d", got, tv)
	}
}

func TestModel_LinkPromptAppliesURL(t *testing.T) {
	m := New(Config{Text: "docs"}).SetSize(40, 5)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlA})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlK})
	if !m.LinkPromptActive() {
		t.Fatalf("ctrl+k should open the link prompt")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("https://go.dev")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if m.LinkPromptActive() {
		t.Fatalf("enter should close the prompt")
	}
	if !strings.Contains(m.Mirror(), `href="https://go.dev"`) {
		t.Fatalf("mirror: got %q, want link", m.Mirror())
	}
}

func TestDispatched_ReportsFormatKeysOnly(t *testing.T) {
	m := New(Config{Text: "abc"}).SetSize(20, 5)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	if !m.Dispatched() {
		t.Fatalf("ctrl+b without a selection should still count as dispatched")
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.Dispatched() {
		t.Fatalf("a movement key should clear the dispatched flag")
	}
}
