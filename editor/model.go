package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/composer/richtext"
)

// Model is a Bubble Tea component that renders and edits a rich-text surface
// and drives the floating formatting toolbar.
type Model struct {
	cfg  Config
	surf *richtext.Surface

	focused bool

	viewport viewport.Model
	layout   *layoutCache

	mouseAnchor   richtext.Pos
	mouseDragging bool

	toolbar  ToolbarState
	selRange SelectionRange
	mirror   string
	prompt   linkPrompt

	// dispatched is set when the last event or Dispatch call ran a format
	// command.
	dispatched bool

	lastVersion     uint64
	lastTextVersion uint64
}

func New(cfg Config) Model {
	cfg = cfg.withDefaults()
	m := Model{
		cfg:      cfg,
		surf:     richtext.New(cfg.Text),
		focused:  true,
		viewport: viewport.New(0, 0),
		layout:   &layoutCache{},
		prompt:   newLinkPrompt(*cfg.Style),
	}
	m.lastVersion = m.surf.Version()
	m.lastTextVersion = m.surf.TextVersion()
	m.mirror = m.surf.HTML()
	m.rebuildContent()
	return m
}

// Surface returns the editable surface. Hosts that mutate it directly see
// the change reflected on the next Update.
func (m Model) Surface() *richtext.Surface { return m.surf }

// Mirror returns the HTML serialization as of the last refresh.
func (m Model) Mirror() string { return m.mirror }

func (m Model) Toolbar() ToolbarState { return m.toolbar }

// LinkPromptActive reports whether the link URL prompt is open.
func (m Model) LinkPromptActive() bool { return m.prompt.active }

// Dispatched reports whether the last Update or Dispatch ran a format
// command, whether or not it changed the document.
func (m Model) Dispatched() bool { return m.dispatched }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height
	m.prompt.setWidth(width)

	m.rebuildContent()
	m.followCursor()
	if m.toolbar.Visible {
		m.trackSelection()
	}
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.hideToolbar()
		m.prompt.close()
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// AppendBlock adds text as a new paragraph at the end of the document.
func (m Model) AppendBlock(text string) Model {
	m.surf.AppendBlock(text)
	m.syncAndNotify()
	return m
}

// ReplaceContent replaces the whole document with text.
func (m Model) ReplaceContent(text string) Model {
	m.surf.ReplaceAll(text)
	m.hideToolbar()
	m.syncAndNotify()
	return m
}

// Dispatch applies a format command to the current selection. The mirror is
// refreshed and the toolbar hidden afterwards, whatever the command did.
func (m Model) Dispatch(cmd FormatCommand) Model {
	m.dispatched = false
	m.dispatch(cmd, func() string {
		if m.cfg.LinkTarget == nil {
			return ""
		}
		return m.cfg.LinkTarget(m.surf.SelectedText())
	})
	m.syncAndNotify()
	return m
}

func (m *Model) dispatch(cmd FormatCommand, linkTarget func() string) {
	d := Dispatcher{
		Formatter:  m.surf,
		Serializer: m.surf,
		LinkTarget: linkTarget,
		OnMirror:   func(html string) { m.mirror = html },
		OnHide:     m.hideToolbar,
	}
	d.Dispatch(cmd)
	m.dispatched = true
}

// syncFromSurface rebuilds the rendered content when the surface changed and
// refreshes the mirror on content changes. It reports whether the version and
// the content changed since the last sync.
func (m *Model) syncFromSurface() (changed, contentChanged bool) {
	if m.surf == nil {
		return false, false
	}
	ver, textVer := m.surf.Version(), m.surf.TextVersion()
	if ver == m.lastVersion && textVer == m.lastTextVersion {
		return false, false
	}
	contentChanged = textVer != m.lastTextVersion
	m.lastVersion, m.lastTextVersion = ver, textVer
	if contentChanged {
		m.mirror = m.surf.HTML()
	}
	m.rebuildContent()
	m.followCursor()
	return true, contentChanged
}

func (m *Model) syncAndNotify() {
	changed, contentChanged := m.syncFromSurface()
	if changed && m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.surf, m.mirror, contentChanged))
	}
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m Model) style() Style { return *m.cfg.Style }
