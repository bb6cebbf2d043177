// internal/clock/loop.go
package clock

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// LoopScheduler runs callbacks on the single goroutine that calls Run, using real timers.
// Every piece of simulation state driven by it is owned by that goroutine; other
// goroutines reach it through Do.
type LoopScheduler struct {
	tasks chan func()
	done  chan struct{}
	once  sync.Once
}

func NewLoopScheduler() *LoopScheduler {
	return &LoopScheduler{
		tasks: make(chan func(), 64),
		done:  make(chan struct{}),
	}
}

func (s *LoopScheduler) Now() time.Time { return time.Now() }

func (s *LoopScheduler) Schedule(d time.Duration, fn func()) func() {
	var cancelled atomic.Bool
	t := time.AfterFunc(d, func() {
		s.post(func() {
			if !cancelled.Load() {
				fn()
			}
		})
	})
	return func() {
		cancelled.Store(true)
		t.Stop()
	}
}

// Run executes posted callbacks until ctx is cancelled. It must be called exactly once.
func (s *LoopScheduler) Run(ctx context.Context) error {
	defer s.once.Do(func() { close(s.done) })
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-s.tasks:
			fn()
		}
	}
}

// Do runs fn on the loop goroutine and waits for it. It returns false if the loop has stopped.
// Calling Do from inside a loop callback deadlocks.
func (s *LoopScheduler) Do(fn func()) bool {
	finished := make(chan struct{})
	if !s.post(func() {
		defer close(finished)
		fn()
	}) {
		return false
	}
	select {
	case <-finished:
		return true
	case <-s.done:
		return false
	}
}

func (s *LoopScheduler) post(fn func()) bool {
	select {
	case s.tasks <- fn:
		return true
	case <-s.done:
		return false
	}
}
