package studio

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/composer"
	"github.com/iw2rmb/composer/preview"
)

var (
	headingStyle  = lipgloss.NewStyle().Bold(true)
	activeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	ruleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	buttonStyle   = lipgloss.NewStyle().Background(lipgloss.Color("33")).Foreground(lipgloss.Color("255"))
	busyStyle     = lipgloss.NewStyle().Background(lipgloss.Color("153")).Foreground(lipgloss.Color("68"))
	sugPanelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("25"))
	ideaStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("136"))
	cursorStyle   = lipgloss.NewStyle().Reverse(true)
	dialogStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	g := m.geometry()
	screen := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderSidebar(g),
		m.renderColumn(g),
		m.renderPreview(g),
	)
	if m.focus != focusPrefs {
		return screen
	}
	return overlay.Composite(m.renderPreferences(), screen, overlay.Center, overlay.Center, 0, 0)
}

func box(w, h int, s string) string {
	return lipgloss.NewStyle().Width(w).MaxWidth(w).Height(h).MaxHeight(h).Render(s)
}

func (m Model) renderSidebar(g geometry) string {
	lines := make([]string, rowPreferences+1)
	lines[rowContentHeading] = headingStyle.Render("Content Type")
	for i, c := range contentTypes {
		label := "  " + c.Label()
		if c == m.contentType {
			label = activeStyle.Render("▸ " + c.Label())
		}
		lines[rowFirstType+i] = label
	}
	lines[rowToolsHeading] = headingStyle.Render("Tools")
	lines[rowIdeas] = "  Content Ideas  " + mutedStyle.Render("^O")
	lines[rowSchedule] = "  Schedule Post  " + mutedStyle.Render("^S")
	lines[rowPreferences] = "  Preferences    " + mutedStyle.Render("^P")
	if h := g.sidebar.Dy(); h > len(lines)+1 {
		for len(lines) < h-1 {
			lines = append(lines, "")
		}
		lines = append(lines, mutedStyle.Render(composer.UserAgent()))
	}

	st := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(lipgloss.Color("240"))
	return st.Render(box(g.sidebar.Dx()-1, g.sidebar.Dy(), strings.Join(lines, "\n")))
}

func (m Model) renderColumn(g geometry) string {
	w := g.strip.Dx()
	rule := ruleStyle.Render(strings.Repeat("─", w))

	parts := []string{
		m.renderStrip(),
		rule,
		box(w, g.editor.Dy(), m.editor.View()),
		rule,
		m.renderBottomBar(w),
	}
	switch {
	case m.ideasOpen:
		parts = append(parts, m.renderIdeasPanel())
	case m.suggestionsOpen:
		parts = append(parts, m.renderSuggestionsPanel())
	}
	body := box(w, g.column.Dy(), strings.Join(parts, "\n"))
	return lipgloss.NewStyle().Padding(0, 1).Render(body)
}

func (m Model) renderStrip() string {
	labels := make([]string, len(stripButtons))
	for i, b := range stripButtons {
		labels[i] = " " + b.label + " "
	}
	return strings.Join(labels, ruleStyle.Render("│"))
}

func (m Model) generateLabel() string {
	if m.generating {
		return " " + m.spinner.View() + " Generating... "
	}
	return " ✦ Enhance with AI "
}

func (m Model) renderBottomBar(w int) string {
	left := mutedStyle.Render("Add Media")
	if m.scheduledDate != "" {
		left += mutedStyle.Render("   ⏱ Scheduled for: " + m.scheduledDate)
	}
	st := buttonStyle
	if m.generating {
		st = busyStyle
	}
	right := st.Render(m.generateLabel())
	gap := max(w-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) renderSuggestionsPanel() string {
	lines := []string{sugPanelStyle.Bold(true).Render("AI Suggestions")}
	for i, s := range m.suggestions {
		line := "✦ " + s
		if m.focus == focusSuggestions && i == m.sugCursor {
			line = cursorStyle.Render(line)
		}
		lines = append(lines, sugPanelStyle.Render(line))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderIdeasPanel() string {
	lines := []string{ideaStyle.Bold(true).Render("Content Ideas") + mutedStyle.Render("  (esc to close)")}
	for i, idea := range Ideas {
		line := "  " + idea
		if m.focus == focusIdeas && i == m.ideaCursor {
			line = cursorStyle.Render("▸ " + idea)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderPreview(g geometry) string {
	w := g.preview.Dx() - 1
	if w <= 0 {
		return ""
	}
	var modes []string
	for i, l := range previewModeLabels {
		label := "[" + l + "]"
		if previewModes[i] == m.previewMode {
			label = activeStyle.Render(label)
		}
		modes = append(modes, label)
	}
	header := headingStyle.Render("LinkedIn Preview")
	right := strings.Join(modes, " ") + " "
	gap := max(w-lipgloss.Width(header)-lipgloss.Width(right), 1)

	card := lipgloss.PlaceHorizontal(w, lipgloss.Center, m.renderPreviewCard(g))
	body := header + strings.Repeat(" ", gap) + right + "\n\n" + card

	st := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color("240"))
	return st.Render(box(w, g.preview.Dy(), body))
}

func (m Model) renderPreviewCard(g geometry) string {
	return preview.Render(m.editor.Mirror(), preview.Options{
		Mode:          m.previewMode,
		Width:         max(g.preview.Dx()-1, 0),
		ScheduledDate: m.scheduledDate,
	})
}

func (m Model) renderPreferences() string {
	p := m.draftPrefs
	check := func(b bool) string {
		if b {
			return "[x]"
		}
		return "[ ]"
	}
	rows := []string{
		fmt.Sprintf("Default Post Type  ‹ %s ›", p.DefaultType.Label()),
		check(p.AutoSuggestions) + " Enable automatic suggestions",
		check(p.HashtagSuggestions) + " Include hashtag suggestions",
	}
	for i := range rows {
		if i == m.prefsRow {
			rows[i] = cursorStyle.Render(rows[i])
		}
	}
	body := []string{headingStyle.Render("Preferences"), ""}
	body = append(body, rows...)
	body = append(body, "", mutedStyle.Render("enter save · esc cancel · space toggle"))
	return dialogStyle.Render(strings.Join(body, "\n"))
}
