// Package suggest produces writing suggestions for a post draft.
//
// The only Provider shipped here is Canned, a stand-in for a real model
// backend that answers with a fixed list after a short delay.
package suggest

import (
	"context"
	"time"

	"github.com/rohanthewiz/serr"
)

// Provider returns suggestions for the given post content.
type Provider interface {
	Suggest(ctx context.Context, post string) ([]string, error)
}

// DefaultDelay is how long Canned waits before answering.
const DefaultDelay = time.Second

// CannedSuggestions is the fixed answer of Canned.
var CannedSuggestions = []string{
	"Add more personal experiences to make the post more relatable",
	"Include specific metrics or results to strengthen your point",
	"Consider adding a call-to-action at the end",
	"Add relevant hashtags to increase visibility",
}

// Canned is a simulated backend. It ignores the post content.
type Canned struct {
	Delay time.Duration // zero means DefaultDelay
	Clock Clock         // nil means SystemClock

	// Err, when set, is returned instead of suggestions.
	Err error
}

func (c Canned) Suggest(ctx context.Context, _ string) ([]string, error) {
	delay := c.Delay
	if delay <= 0 {
		delay = DefaultDelay
	}
	clock := c.Clock
	if clock == nil {
		clock = SystemClock
	}

	done := make(chan struct{})
	t := clock.AfterFunc(delay, func() { close(done) })
	select {
	case <-ctx.Done():
		t.Stop()
		return nil, serr.Wrap(ctx.Err(), "suggestion request aborted")
	case <-done:
	}

	if c.Err != nil {
		return nil, serr.Wrap(c.Err, "suggestion backend failed")
	}
	out := make([]string, len(CannedSuggestions))
	copy(out, CannedSuggestions)
	return out, nil
}
