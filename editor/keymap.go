package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks). ctrl+i is
// indistinguishable from tab, so italic lives on alt+i.
type KeyMap struct {
	Left, Right, Up, Down                     key.Binding
	ShiftLeft, ShiftRight, ShiftUp, ShiftDown key.Binding
	WordLeft, WordRight                       key.Binding
	Home, End                                 key.Binding
	SelectAll                                 key.Binding

	Backspace, Delete key.Binding
	Enter             key.Binding

	Copy, Cut, Paste key.Binding

	Bold, Italic, Underline            key.Binding
	AlignLeft, AlignCenter, AlignRight key.Binding
	BulletList, NumberedList           key.Binding
	Link                               key.Binding
	DismissToolbar                     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
		ShiftUp:    key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "select up")),
		ShiftDown:  key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "select down")),

		WordLeft:  key.NewBinding(key.WithKeys("alt+left", "ctrl+left"), key.WithHelp("alt/ctrl+←", "word left")),
		WordRight: key.NewBinding(key.WithKeys("alt+right", "ctrl+right"), key.WithHelp("alt/ctrl+→", "word right")),

		Home:      key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "block start")),
		End:       key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "block end")),
		SelectAll: key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "new block")),

		Copy:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Cut:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Paste: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),

		Bold:         key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "bold")),
		Italic:       key.NewBinding(key.WithKeys("alt+i"), key.WithHelp("alt+i", "italic")),
		Underline:    key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "underline")),
		AlignLeft:    key.NewBinding(key.WithKeys("alt+l"), key.WithHelp("alt+l", "align left")),
		AlignCenter:  key.NewBinding(key.WithKeys("alt+e"), key.WithHelp("alt+e", "align center")),
		AlignRight:   key.NewBinding(key.WithKeys("alt+r"), key.WithHelp("alt+r", "align right")),
		BulletList:   key.NewBinding(key.WithKeys("alt+8"), key.WithHelp("alt+8", "bullet list")),
		NumberedList: key.NewBinding(key.WithKeys("alt+7"), key.WithHelp("alt+7", "numbered list")),
		Link:         key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "link")),

		DismissToolbar: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "hide toolbar")),
	}
}

func (k KeyMap) isZero() bool {
	return len(k.Left.Keys()) == 0 && len(k.Bold.Keys()) == 0
}

// formatBindings pairs each format shortcut with the command it dispatches.
func (k KeyMap) formatBindings() []struct {
	binding key.Binding
	cmd     FormatCommand
} {
	return []struct {
		binding key.Binding
		cmd     FormatCommand
	}{
		{k.Bold, CommandBold},
		{k.Italic, CommandItalic},
		{k.Underline, CommandUnderline},
		{k.AlignLeft, CommandAlignLeft},
		{k.AlignCenter, CommandAlignCenter},
		{k.AlignRight, CommandAlignRight},
		{k.BulletList, CommandBulletList},
		{k.NumberedList, CommandNumberedList},
	}
}
