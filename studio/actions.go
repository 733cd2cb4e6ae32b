package studio

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rohanthewiz/logger"

	"github.com/iw2rmb/composer/preview"
	"github.com/iw2rmb/composer/suggest"
)

const dateLayout = "2006-01-02"

// generate starts a suggestion request. While one is pending further
// requests are rejected.
func (m Model) generate() (Model, tea.Cmd) {
	if m.closed {
		return m, nil
	}
	if m.generating {
		logger.Debug("suggestion request ignored, one is pending", "task_id", m.pending.ID())
		return m, nil
	}
	task := suggest.Start(context.Background(), m.cfg.Provider, m.editor.Surface().Text())
	m.pending = task
	m.generating = true
	logger.Info("generating suggestions", "task_id", task.ID())
	return m, tea.Batch(waitForTask(task), m.spinner.Tick)
}

func waitForTask(t *suggest.Task) tea.Cmd {
	return func() tea.Msg { return suggestionsMsg(t.Wait()) }
}

// finishSuggestions applies a task result. Results from tasks that are no
// longer pending are dropped.
func (m Model) finishSuggestions(res suggest.Result) Model {
	if m.closed || m.pending == nil || res.ID != m.pending.ID() {
		logger.Debug("dropping stale suggestion result", "task_id", res.ID)
		return m
	}
	m.pending = nil
	m.generating = false

	switch {
	case res.Canceled:
		logger.Debug("suggestion task canceled", "task_id", res.ID)
	case res.Err != nil:
		logger.LogErr(res.Err, "error generating suggestions", "task_id", res.ID)
	default:
		m.suggestions = res.Suggestions
		m.sugCursor = 0
		m.suggestionsOpen = true
	}
	return m
}

func (m *Model) hideSuggestions() {
	if !m.suggestionsOpen {
		return
	}
	m.suggestionsOpen = false
	if m.focus == focusSuggestions {
		m.focus = focusEditor
	}
	m.resizeEditor()
}

// applySuggestion appends suggestion i as a new paragraph.
func (m Model) applySuggestion(i int) Model {
	if i < 0 || i >= len(m.suggestions) {
		return m
	}
	m.editor = m.editor.AppendBlock(m.suggestions[i])
	m.hideSuggestions()
	return m
}

func (m Model) openIdeas() Model {
	m.ideasOpen = true
	m.ideaCursor = 0
	m.focus = focusIdeas
	m.resizeEditor()
	return m
}

func (m Model) closeIdeas() Model {
	m.ideasOpen = false
	if m.focus == focusIdeas {
		m.focus = focusEditor
	}
	m.resizeEditor()
	return m
}

// applyIdea replaces the whole content with idea i.
func (m Model) applyIdea(i int) Model {
	if i < 0 || i >= len(Ideas) {
		return m
	}
	m.editor = m.editor.ReplaceContent(Ideas[i])
	m.hideSuggestions()
	return m.closeIdeas()
}

// schedule stamps the current UTC date.
func (m Model) schedule() Model {
	m.scheduledDate = m.now().UTC().Format(dateLayout)
	logger.Info("post scheduled", "date", m.scheduledDate)
	return m
}

func (m Model) setPreviewMode(mode preview.Mode) Model {
	m.previewMode = mode
	return m
}

func (m Model) setContentType(c ContentType) Model {
	m.contentType = c
	return m
}
