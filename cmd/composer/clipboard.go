package main

import (
	"github.com/atotto/clipboard"
	"github.com/rohanthewiz/serr"
)

// systemClipboard backs editor copy/paste with the OS clipboard.
type systemClipboard struct{}

func (systemClipboard) ReadText() (string, error) {
	s, err := clipboard.ReadAll()
	if err != nil {
		return "", serr.Wrap(err, "read system clipboard")
	}
	return s, nil
}

func (systemClipboard) WriteText(s string) error {
	if err := clipboard.WriteAll(s); err != nil {
		return serr.Wrap(err, "write system clipboard")
	}
	return nil
}
