package editor

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/composer/richtext"
)

var (
	promptSubmit = key.NewBinding(key.WithKeys("enter"))
	promptCancel = key.NewBinding(key.WithKeys("esc"))
)

// linkPrompt collects the URL for a link command. The selection it applies to
// is captured when the prompt opens.
type linkPrompt struct {
	active bool
	sel    richtext.Range
	input  textinput.Model
}

func newLinkPrompt(st Style) linkPrompt {
	in := textinput.New()
	in.Prompt = "Link URL: "
	in.Placeholder = "https://"
	in.PromptStyle = st.Prompt
	in.CharLimit = 2048
	return linkPrompt{input: in}
}

func (p *linkPrompt) open(sel richtext.Range) tea.Cmd {
	p.active = true
	p.sel = sel
	p.input.SetValue("")
	return p.input.Focus()
}

func (p *linkPrompt) close() {
	p.active = false
	p.input.Blur()
}

func (p *linkPrompt) setWidth(w int) {
	p.input.Width = max(w-len(p.input.Prompt)-1, 1)
}

// openLinkPrompt starts URL entry for the current selection. Without a
// selection the link command is still dispatched, as a no-op.
func (m *Model) openLinkPrompt() tea.Cmd {
	r, ok := m.surf.Selection()
	if !ok {
		m.dispatch(CommandLink, func() string { return "" })
		return nil
	}
	m.hideToolbar()
	cmd := m.prompt.open(r)
	m.rebuildContent()
	return cmd
}

func (m Model) updatePrompt(msg tea.Msg) (Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, promptSubmit):
			url := m.prompt.input.Value()
			sel := m.prompt.sel
			m.prompt.close()
			m.surf.SetSelection(sel)
			m.dispatch(CommandLink, func() string { return url })
			m.rebuildContent()
			return m, nil
		case key.Matches(km, promptCancel):
			m.prompt.close()
			m.rebuildContent()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.prompt.input, cmd = m.prompt.input.Update(msg)
	return m, cmd
}

func (m Model) compositePrompt(base string) string {
	if !m.prompt.active || m.viewport.Height <= 0 {
		return base
	}
	return overlay.Composite(
		m.style().Toolbar.Render(m.prompt.input.View()),
		base,
		overlay.Left,
		overlay.Top,
		m.frameLeft(),
		m.frameTop()+m.viewport.Height-1,
	)
}

// OpenLinkPrompt starts interactive URL entry for the current selection, as
// the link key binding does.
func (m Model) OpenLinkPrompt() (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	m.dispatched = false
	cmd := m.openLinkPrompt()
	m.syncAndNotify()
	return m, cmd
}
