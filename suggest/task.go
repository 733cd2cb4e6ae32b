package suggest

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
)

// Result is the single resolution of a Task.
type Result struct {
	ID          string
	Suggestions []string
	Err         error
	Canceled    bool
}

// Task is one in-flight suggestion request. It resolves exactly once, with
// suggestions, an error, or as canceled.
type Task struct {
	id     string
	cancel context.CancelFunc
	done   chan Result
}

// Start runs provider.Suggest for post in its own goroutine.
func Start(ctx context.Context, provider Provider, post string) *Task {
	ctx, cancel := context.WithCancel(ctx)
	t := &Task{
		id:     uuid.NewString(),
		cancel: cancel,
		done:   make(chan Result, 1),
	}
	logger.Debug("suggestion task started", "id", t.id)

	go func() {
		defer cancel()
		t.done <- t.run(ctx, provider, post)
	}()
	return t
}

func (t *Task) run(ctx context.Context, provider Provider, post string) (res Result) {
	res.ID = t.id
	defer func() {
		if r := recover(); r != nil {
			res = Result{ID: t.id, Err: serr.New(fmt.Sprintf("suggestion provider panicked: %v", r))}
		}
	}()

	if provider == nil {
		res.Err = serr.New("no suggestion provider")
		return res
	}
	sugs, err := provider.Suggest(ctx, post)
	switch {
	case err != nil && ctx.Err() != nil:
		res.Canceled = true
	case err != nil:
		res.Err = err
	default:
		res.Suggestions = sugs
	}
	return res
}

// ID identifies the task. Results carry the same ID.
func (t *Task) ID() string { return t.id }

// Cancel aborts the request. The task still resolves, as canceled unless the
// provider had already answered.
func (t *Task) Cancel() { t.cancel() }

// Wait blocks until the task resolves. Only one caller receives the result.
func (t *Task) Wait() Result { return <-t.done }

// Done exposes the result channel for select loops.
func (t *Task) Done() <-chan Result { return t.done }
