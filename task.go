package loader

import (
	"context"
	"fmt"
)

// Task tracks one asynchronous fetch. It completes exactly once, after the
// fetch's Output has been called.
type Task struct {
	done chan struct{}
	err  error
}

func newTask() *Task {
	return &Task{done: make(chan struct{})}
}

func (t *Task) complete(err error) {
	t.err = err
	close(t.done)
}

// Done returns a channel that is closed when the fetch has completed.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Err returns the fetch error. It is only meaningful once Done is closed.
func (t *Task) Err() error {
	select {
	case <-t.done:
		return t.err
	default:
		return nil
	}
}

// Wait blocks until the fetch completes and returns its error.
// If ctx ends first Wait returns the context error; the fetch keeps running.
func (t *Task) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return t.err
	case <-ctx.Done():
		return fmt.Errorf("waiting for fetch: %w", ctx.Err())
	}
}
