package editor

import (
	"fmt"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"

	"github.com/iw2rmb/composer/richtext"
)

// FormatCommand is one discrete formatting instruction applied at the
// current selection.
type FormatCommand uint8

const (
	CommandBold FormatCommand = iota
	CommandItalic
	CommandUnderline
	CommandAlignLeft
	CommandAlignCenter
	CommandAlignRight
	CommandBulletList
	CommandNumberedList
	CommandLink
)

var commandNames = [...]string{
	CommandBold:         "bold",
	CommandItalic:       "italic",
	CommandUnderline:    "underline",
	CommandAlignLeft:    "alignLeft",
	CommandAlignCenter:  "alignCenter",
	CommandAlignRight:   "alignRight",
	CommandBulletList:   "bulletList",
	CommandNumberedList: "numberedList",
	CommandLink:         "link",
}

func (c FormatCommand) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return fmt.Sprintf("FormatCommand(%d)", uint8(c))
}

// ParseFormatCommand maps a command name back to its FormatCommand.
func ParseFormatCommand(name string) (FormatCommand, error) {
	for i, n := range commandNames {
		if n == name {
			return FormatCommand(i), nil
		}
	}
	return 0, serr.New("unknown format command: " + name)
}

// Formatter is the selection-aware editing capability the dispatcher drives.
// Implementations act on their own current selection and must treat an empty
// selection as a no-op. *richtext.Surface satisfies it.
type Formatter interface {
	ToggleInlineStyle(richtext.InlineStyle)
	SetBlockAlignment(richtext.Align)
	ToggleList(richtext.ListKind)
	InsertLink(url string)
}

// Serializer produces the mirror form of the edited content.
type Serializer interface {
	HTML() string
}

// Dispatcher maps FormatCommands onto a Formatter, then refreshes the mirror
// and hides the toolbar. The refresh and hide steps run for every command,
// whatever the primitive did.
type Dispatcher struct {
	Formatter  Formatter
	Serializer Serializer

	// LinkTarget supplies the URL for CommandLink. Nil means an empty URL.
	LinkTarget func() string
	// OnMirror receives the re-read mirror.
	OnMirror func(html string)
	// OnHide is called last to hide the toolbar.
	OnHide func()
}

// Dispatch applies cmd and returns the refreshed mirror.
func (d Dispatcher) Dispatch(cmd FormatCommand) string {
	d.apply(cmd)

	var mirror string
	if d.Serializer != nil {
		mirror = d.Serializer.HTML()
	}
	if d.OnMirror != nil {
		d.OnMirror(mirror)
	}
	if d.OnHide != nil {
		d.OnHide()
	}
	return mirror
}

// apply invokes the primitive. Its outcome is not observable: a panic is
// recovered and logged so the dispatch always completes.
func (d Dispatcher) apply(cmd FormatCommand) {
	if d.Formatter == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			logger.LogErr(serr.New(fmt.Sprint(r)), "format primitive failed", "command", cmd.String())
		}
	}()

	switch cmd {
	case CommandBold:
		d.Formatter.ToggleInlineStyle(richtext.Bold)
	case CommandItalic:
		d.Formatter.ToggleInlineStyle(richtext.Italic)
	case CommandUnderline:
		d.Formatter.ToggleInlineStyle(richtext.Underline)
	case CommandAlignLeft:
		d.Formatter.SetBlockAlignment(richtext.AlignLeft)
	case CommandAlignCenter:
		d.Formatter.SetBlockAlignment(richtext.AlignCenter)
	case CommandAlignRight:
		d.Formatter.SetBlockAlignment(richtext.AlignRight)
	case CommandBulletList:
		d.Formatter.ToggleList(richtext.BulletList)
	case CommandNumberedList:
		d.Formatter.ToggleList(richtext.NumberedList)
	case CommandLink:
		url := ""
		if d.LinkTarget != nil {
			url = d.LinkTarget()
		}
		d.Formatter.InsertLink(url)
	default:
		logger.Debug("ignoring unknown format command", "command", cmd.String())
	}
}

var (
	_ Formatter  = (*richtext.Surface)(nil)
	_ Serializer = (*richtext.Surface)(nil)
)
