// Package debounce defers an action until a quiet period has elapsed.
//
// A Debouncer wraps a callback and a delay. Each Call drops any pending
// invocation and schedules a new one; the callback runs once per quiet
// period with the argument from the most recent Call. Calls superseded
// before the delay elapses are dropped, not queued.
package debounce

import (
	"sync"
	"time"
)

// Debouncer schedules trailing-edge invocations of fn.
// The zero value is not usable; construct with New.
type Debouncer[T any] struct {
	delay time.Duration
	fn    func(T)

	mu    sync.Mutex
	timer *time.Timer
	arg   T
	gen   uint64
}

// New returns a Debouncer that invokes fn with the most recent argument
// once delay has elapsed with no further Call.
func New[T any](delay time.Duration, fn func(T)) *Debouncer[T] {
	return &Debouncer[T]{delay: delay, fn: fn}
}

// Call records v as the pending argument and restarts the delay. Any
// previously scheduled invocation that has not fired yet is dropped.
func (d *Debouncer[T]) Call(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.arg = v
	d.gen++
	gen := d.gen
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })
}

// Stop cancels any pending invocation without running it. Stop is a no-op
// when nothing is scheduled.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// fire runs on the timer goroutine. Timer.Stop cannot stop a callback that
// is already underway, so the generation check is what actually drops an
// invocation superseded by a concurrent Call or Stop.
func (d *Debouncer[T]) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	arg := d.arg
	d.mu.Unlock()

	d.fn(arg)
}

// Func wraps a zero-argument callback, returning a callable that obeys the
// same trailing-edge contract as Debouncer.Call.
func Func(delay time.Duration, fn func()) func() {
	d := New(delay, func(struct{}) { fn() })
	return func() { d.Call(struct{}{}) }
}
