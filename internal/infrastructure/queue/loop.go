// Package queue runs every state-changing request on a single goroutine so
// the household state is never mutated concurrently.
package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/familyhub/dashboard/internal/api/metrics"
)

const defaultBuffer = 256

// ErrStopped is returned for tasks submitted after the loop has stopped.
var ErrStopped = errors.New("action loop stopped")

type task struct {
	fn   func() error
	done chan error
}

// Loop executes submitted tasks one at a time in submission order.
type Loop struct {
	tasks   chan task
	stopped chan struct{}
	log     zerolog.Logger
}

// NewLoop creates a Loop whose queue holds up to buffer pending tasks.
// If buffer <= 0, defaultBuffer is used.
func NewLoop(buffer int, log zerolog.Logger) *Loop {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &Loop{
		tasks:   make(chan task, buffer),
		stopped: make(chan struct{}),
		log:     log,
	}
}

// Start launches the worker goroutine. It stops when ctx is cancelled; tasks
// still queued at that point fail with ErrStopped.
func (l *Loop) Start(ctx context.Context) {
	go l.run(ctx)
}

// Do runs fn on the loop and returns its error. ctx only bounds the wait for
// a queue slot: once fn is queued, Do waits for it to finish so the caller
// never observes a half-applied mutation.
func (l *Loop) Do(ctx context.Context, fn func() error) error {
	t := task{fn: fn, done: make(chan error, 1)}

	select {
	case <-l.stopped:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	case l.tasks <- t:
		metrics.ActionQueueDepth.Set(float64(len(l.tasks)))
	}

	select {
	case err := <-t.done:
		return err
	case <-l.stopped:
		// the worker may have finished t just before stopping
		select {
		case err := <-t.done:
			return err
		default:
			return ErrStopped
		}
	}
}

func (l *Loop) run(ctx context.Context) {
	defer close(l.stopped)
	for {
		select {
		case <-ctx.Done():
			l.log.Info().Int("pending", len(l.tasks)).Msg("action loop stopped")
			return
		case t := <-l.tasks:
			metrics.ActionQueueDepth.Set(float64(len(l.tasks)))
			t.done <- l.execute(t.fn)
		}
	}
}

func (l *Loop) execute(fn func() error) (err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			l.log.Error().Interface("panic", r).Msg("action panicked")
			err = fmt.Errorf("action panicked: %v", r)
		}
		result := "ok"
		if err != nil {
			result = "error"
		}
		metrics.ActionDuration.WithLabelValues(result).Observe(time.Since(start).Seconds())
	}()
	return fn()
}
