// Package studio is the composer screen: content type sidebar, editor column
// with its panels, live preview, and the preferences dialog.
package studio

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rohanthewiz/logger"

	"github.com/iw2rmb/composer/editor"
	"github.com/iw2rmb/composer/preview"
	"github.com/iw2rmb/composer/suggest"
)

// Config configures a Model. The zero value is usable.
type Config struct {
	Text      string // defaults to DefaultText
	Provider  suggest.Provider
	Clock     suggest.Clock
	Clipboard editor.Clipboard
	Prefs     *Preferences
	KeyMap    *KeyMap
}

func (c Config) withDefaults() Config {
	if c.Text == "" {
		c.Text = DefaultText
	}
	if c.Clock == nil {
		c.Clock = suggest.SystemClock
	}
	if c.Provider == nil {
		c.Provider = suggest.Canned{Clock: c.Clock}
	}
	if c.Prefs == nil {
		p := DefaultPreferences()
		c.Prefs = &p
	}
	if c.KeyMap == nil {
		km := DefaultKeyMap()
		c.KeyMap = &km
	}
	return c
}

type focus uint8

const (
	focusEditor focus = iota
	focusIdeas
	focusSuggestions
	focusPrefs
)

type Model struct {
	cfg  Config
	keys KeyMap

	width, height int

	editor editor.Model
	focus  focus

	contentType ContentType
	previewMode preview.Mode

	ideasOpen  bool
	ideaCursor int

	scheduledDate string

	prefs      Preferences
	draftPrefs Preferences
	prefsRow   int

	generating      bool
	pending         *suggest.Task
	suggestions     []string
	suggestionsOpen bool
	sugCursor       int
	spinner         spinner.Model

	closed bool
}

// suggestionsMsg delivers the resolution of a suggestion task.
type suggestionsMsg suggest.Result

func New(cfg Config) Model {
	cfg = cfg.withDefaults()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		cfg:         cfg,
		keys:        *cfg.KeyMap,
		prefs:       *cfg.Prefs,
		contentType: cfg.Prefs.DefaultType,
		previewMode: preview.Desktop,
		spinner:     sp,
	}
	m.editor = editor.New(editor.Config{
		Text:      cfg.Text,
		Clipboard: cfg.Clipboard,
		OnChange: func(ev editor.ChangeEvent) {
			if ev.ContentChanged {
				logger.Debug("content changed", "version", ev.Version)
			}
		},
	})
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Close releases the screen. A pending suggestion task is canceled and any
// result that still arrives is ignored.
func (m Model) Close() Model {
	if m.pending != nil {
		m.pending.Cancel()
		m.pending = nil
	}
	m.generating = false
	m.closed = true
	return m
}

func (m Model) Editor() editor.Model       { return m.editor }
func (m Model) ContentType() ContentType   { return m.contentType }
func (m Model) PreviewMode() preview.Mode  { return m.previewMode }
func (m Model) ScheduledDate() string      { return m.scheduledDate }
func (m Model) Preferences() Preferences   { return m.prefs }
func (m Model) Generating() bool           { return m.generating }
func (m Model) IdeasOpen() bool            { return m.ideasOpen }
func (m Model) PreferencesOpen() bool      { return m.focus == focusPrefs }
func (m Model) SuggestionsOpen() bool      { return m.suggestionsOpen }
func (m Model) Suggestions() []string      { return m.suggestions }
func (m Model) PendingTask() *suggest.Task { return m.pending }
func (m Model) Mirror() string             { return m.editor.Mirror() }
func (m Model) Preview() string            { return m.renderPreviewCard(m.geometry()) }
func (m Model) now() time.Time             { return m.cfg.Clock.Now() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.update(msg)
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resizeEditor()
		return m, nil

	case suggestionsMsg:
		return m.finishSuggestions(suggest.Result(msg)), nil

	case spinner.TickMsg:
		if !m.generating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		return m.updateMouse(msg)
	}

	return m.forwardToEditor(msg)
}

func (m *Model) resizeEditor() {
	g := m.geometry()
	m.editor = m.editor.SetSize(g.editor.Dx(), g.editor.Dy())
}

// forwardToEditor hands msg to the editor. Content edits and format
// commands close the suggestions panel.
func (m Model) forwardToEditor(msg tea.Msg) (Model, tea.Cmd) {
	before := m.editor.Surface().TextVersion()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if m.editor.Dispatched() || m.editor.Surface().TextVersion() != before {
		m.hideSuggestions()
	}
	return m, cmd
}
