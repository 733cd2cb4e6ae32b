// Package preview renders the composer's HTML mirror as a social post card.
package preview

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"
	"github.com/rohanthewiz/logger"

	"github.com/iw2rmb/composer/internal/grapheme"
)

// Mode selects the simulated device width.
type Mode uint8

const (
	Desktop Mode = iota
	Tablet
	Mobile
)

// Card widths in cells for the narrow modes. Desktop fills the pane.
const (
	MobileWidth = 32
	TabletWidth = 56
)

func (m Mode) String() string {
	switch m {
	case Mobile:
		return "mobile"
	case Tablet:
		return "tablet"
	default:
		return "desktop"
	}
}

// CardWidth is the card width for a pane of paneWidth cells.
func (m Mode) CardWidth(paneWidth int) int {
	w := paneWidth
	switch m {
	case Mobile:
		w = min(MobileWidth, paneWidth)
	case Tablet:
		w = min(TabletWidth, paneWidth)
	}
	return max(w, 0)
}

type Profile struct {
	Name     string
	Headline string
}

var DefaultProfile = Profile{
	Name:     "Ansh Porwal",
	Headline: "Software Engineer || Ex-Research intern @IIT(BHU) || Founder & Ex-President @Blockchain Club",
}

type Options struct {
	Mode  Mode
	Width int // pane width in cells

	Profile Profile // zero means DefaultProfile

	// ScheduledDate replaces the relative timestamp when set.
	ScheduledDate string

	Style *Style // nil means DefaultStyle
}

type Style struct {
	Card     lipgloss.Style
	Name     lipgloss.Style
	Headline lipgloss.Style
	Meta     lipgloss.Style
	Link     lipgloss.Style
	Marker   lipgloss.Style
	Divider  lipgloss.Style
	Action   lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Card:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("245")).Padding(0, 1),
		Name:     lipgloss.NewStyle().Bold(true),
		Headline: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Meta:     lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		Link:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Marker:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Divider:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Action:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}
}

// Timestamp is the card's meta line.
func Timestamp(scheduledDate string) string {
	if scheduledDate != "" {
		return "Scheduled for " + scheduledDate
	}
	return "1m • 🌏"
}

// Render draws the post card for mirror. Malformed or unsafe markup never
// fails the render: unsafe parts are dropped and parse errors leave the
// content area empty.
func Render(mirror string, opts Options) string {
	st := DefaultStyle()
	if opts.Style != nil {
		st = *opts.Style
	}
	prof := opts.Profile
	if prof == (Profile{}) {
		prof = DefaultProfile
	}

	cardWidth := opts.Mode.CardWidth(opts.Width)
	inner := max(cardWidth-st.Card.GetHorizontalFrameSize(), 1)

	blocks, err := parseBlocks(mirror)
	if err != nil {
		logger.LogErr(err, "preview render")
	}

	var lines []string
	lines = append(lines, st.Name.Render(truncate(prof.Name, inner)))
	for _, l := range wrapPlain(prof.Headline, inner) {
		lines = append(lines, st.Headline.Render(l))
	}
	lines = append(lines, st.Meta.Render(Timestamp(opts.ScheduledDate)), "")

	for _, b := range blocks {
		lines = append(lines, renderBlock(st, b, inner)...)
	}

	lines = append(lines,
		st.Divider.Render(strings.Repeat("─", inner)),
		st.Action.Render(actionRow(inner)),
	)
	return st.Card.Width(inner + st.Card.GetHorizontalPadding()).Render(strings.Join(lines, "\n"))
}

func actionRow(width int) string {
	const full = "👍 Like   💬 Comment   ↗ Share"
	if uniseg.StringWidth(full) <= width {
		return full
	}
	return "Like · Comment · Share"
}

func renderBlock(st Style, b block, width int) []string {
	marker := ""
	switch b.kind {
	case kindBullet:
		marker = "• "
	case kindNumbered:
		marker = strconv.Itoa(b.ordinal) + ". "
	}
	indent := uniseg.StringWidth(marker)
	avail := max(width-indent, 1)

	rows := wrapCells(cellsOf(b.spans), avail)
	out := make([]string, 0, len(rows))
	for i, row := range rows {
		var sb strings.Builder
		if i == 0 && marker != "" {
			sb.WriteString(st.Marker.Render(marker))
		} else {
			sb.WriteString(strings.Repeat(" ", indent))
		}
		sb.WriteString(strings.Repeat(" ", alignPad(b.align, avail, rowWidth(row))))
		for _, c := range row {
			sb.WriteString(cellStyle(st, c.style).Render(c.g))
		}
		out = append(out, sb.String())
	}
	return out
}

func cellStyle(st Style, s inlineStyle) lipgloss.Style {
	out := lipgloss.NewStyle()
	if s&styleLink != 0 {
		out = st.Link
	}
	if s&styleBold != 0 {
		out = out.Bold(true)
	}
	if s&styleItalic != 0 {
		out = out.Italic(true)
	}
	if s&styleUnderline != 0 {
		out = out.Underline(true)
	}
	return out
}

func alignPad(align string, avail, w int) int {
	free := avail - w
	if free <= 0 {
		return 0
	}
	switch align {
	case "center":
		return free / 2
	case "right":
		return free
	default:
		return 0
	}
}

type cell struct {
	g     string
	w     int
	style inlineStyle
}

func cellsOf(spans []span) []cell {
	var out []cell
	for _, s := range spans {
		text := strings.ReplaceAll(s.text, "\n", " ")
		for _, g := range grapheme.Split(text) {
			out = append(out, cell{g: g, w: grapheme.Width(g), style: s.style})
		}
	}
	return out
}

func rowWidth(row []cell) int {
	w := 0
	for _, c := range row {
		w += c.w
	}
	return w
}

// wrapCells breaks cells greedily at spaces, splitting words wider than
// width. Spaces at a break are dropped. An empty block yields one empty row.
func wrapCells(cells []cell, width int) [][]cell {
	var rows [][]cell
	start := 0
	for start < len(cells) {
		used, end, lastBreak := 0, start, -1
		for end < len(cells) && used+cells[end].w <= width {
			used += cells[end].w
			if cells[end].g == " " {
				lastBreak = end
			}
			end++
		}
		next := end
		if end < len(cells) {
			switch {
			case cells[end].g == " ":
				next = end + 1
			case lastBreak > start:
				end, next = lastBreak, lastBreak+1
			case end == start:
				end, next = start+1, start+1
			}
		}
		rows = append(rows, cells[start:end])
		start = next
	}
	if len(rows) == 0 {
		rows = append(rows, nil)
	}
	return rows
}

func wrapPlain(s string, width int) []string {
	rows := wrapCells(cellsOf([]span{{text: s}}), width)
	out := make([]string, len(rows))
	for i, r := range rows {
		var sb strings.Builder
		for _, c := range r {
			sb.WriteString(c.g)
		}
		out[i] = sb.String()
	}
	return out
}

func truncate(s string, width int) string {
	var sb strings.Builder
	used := 0
	for _, g := range grapheme.Split(s) {
		w := grapheme.Width(g)
		if used+w > width {
			break
		}
		used += w
		sb.WriteString(g)
	}
	return sb.String()
}
