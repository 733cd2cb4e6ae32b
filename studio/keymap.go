package studio

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the screen-level bindings. Everything else goes to the editor
// or the focused panel.
type KeyMap struct {
	Quit key.Binding

	Post, Article, Carousel key.Binding

	PreviewMobile, PreviewTablet, PreviewDesktop key.Binding

	Ideas, Schedule, Preferences key.Binding
	Generate                     key.Binding
	FocusPanel                   key.Binding

	Up, Down, Choose, Back key.Binding
	Toggle, Prev, Next     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),

		Post:     key.NewBinding(key.WithKeys("alt+1"), key.WithHelp("alt+1", "post")),
		Article:  key.NewBinding(key.WithKeys("alt+2"), key.WithHelp("alt+2", "article")),
		Carousel: key.NewBinding(key.WithKeys("alt+3"), key.WithHelp("alt+3", "carousel")),

		PreviewMobile:  key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "mobile")),
		PreviewTablet:  key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "tablet")),
		PreviewDesktop: key.NewBinding(key.WithKeys("f3"), key.WithHelp("f3", "desktop")),

		Ideas:       key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "ideas")),
		Schedule:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "schedule")),
		Preferences: key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "preferences")),
		Generate:    key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "enhance with AI")),
		FocusPanel:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "panel")),

		Up:     key.NewBinding(key.WithKeys("up", "k")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Choose: key.NewBinding(key.WithKeys("enter")),
		Back:   key.NewBinding(key.WithKeys("esc")),
		Toggle: key.NewBinding(key.WithKeys(" ", "space")),
		Prev:   key.NewBinding(key.WithKeys("left")),
		Next:   key.NewBinding(key.WithKeys("right")),
	}
}
