package editor

// Config configures the editor Model. The zero value is usable.
type Config struct {
	// Initial plain text. Each line becomes a paragraph.
	Text string

	// Style defaults to DefaultStyle when nil.
	Style  *Style
	KeyMap KeyMap

	// Clipboard, when set, backs copy/cut/paste.
	Clipboard Clipboard

	// OnChange is called after any update that changed the surface version.
	OnChange func(ChangeEvent)

	// LinkTarget supplies the URL for CommandLink when it is dispatched
	// outside the interactive link prompt. It receives the selected text.
	LinkTarget func(selected string) string
}

func (c Config) withDefaults() Config {
	if c.KeyMap.isZero() {
		c.KeyMap = DefaultKeyMap()
	}
	if c.Style == nil {
		st := DefaultStyle()
		c.Style = &st
	}
	return c
}
