// Package editor provides the Bubble Tea component for the post composer's
// editable surface.
//
// The package is responsible for input handling, the wrapping layout, the
// selection tracker that places the floating formatting toolbar, and the
// command dispatcher that routes formatting requests to a Formatter and keeps
// the HTML mirror current.
package editor
