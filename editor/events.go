package editor

import "github.com/iw2rmb/composer/richtext"

// ChangeEvent is passed to Config.OnChange after an update that changed the
// surface version.
type ChangeEvent struct {
	Version   uint64
	Cursor    richtext.Pos
	Selection struct {
		Range  richtext.Range
		Active bool
	}

	Text string
	HTML string

	// ContentChanged is false for cursor and selection only updates.
	ContentChanged bool
}

func buildChangeEvent(s *richtext.Surface, mirror string, contentChanged bool) ChangeEvent {
	ev := ChangeEvent{
		Version:        s.Version(),
		Cursor:         s.Cursor(),
		Text:           s.Text(),
		HTML:           mirror,
		ContentChanged: contentChanged,
	}
	if r, ok := s.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Range = r
	}
	return ev
}
