// Package session implements the active workout session engine: the
// interval timer and Tabata driver that pace rest and interval work,
// and the state machine that owns an in-progress session from first
// set to saved record.
package session

import (
	"sync"
	"time"
)

// doubleTapWindow is how close together two Toggle calls must land to
// collapse into a single Reset instead of two start/pause flips.
const doubleTapWindow = 400 * time.Millisecond

// TimerOption configures a Timer.
type TimerOption func(*Timer)

// WithTickInterval overrides the one-second tick. Tests use this to
// run timers at millisecond speed.
func WithTickInterval(d time.Duration) TimerOption {
	return func(t *Timer) { t.interval = d }
}

// Timer is a pausable countdown. It counts down once per tick from its
// initial value to zero, stops itself, and fires the completion
// callback exactly once per run-down. At most one ticking goroutine
// exists per Timer; start/pause churn never orphans one.
type Timer struct {
	mu           sync.Mutex
	initial      int
	remaining    int
	running      bool
	gen          int
	stop         chan struct{}
	interval     time.Duration
	onComplete   func()
	lastActivate time.Time
}

// NewTimer creates a stopped timer holding initialSeconds.
func NewTimer(initialSeconds int, opts ...TimerOption) *Timer {
	if initialSeconds < 0 {
		initialSeconds = 0
	}
	t := &Timer{
		initial:   initialSeconds,
		remaining: initialSeconds,
		interval:  time.Second,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// OnComplete registers the callback fired when the countdown reaches
// zero. Must be set before Start.
func (t *Timer) OnComplete(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onComplete = fn
}

// Remaining returns the seconds left.
func (t *Timer) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remaining
}

// Running reports whether the countdown is active.
func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// Start begins the countdown. No-op if already running or already at
// zero.
func (t *Timer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running || t.remaining == 0 {
		return
	}
	t.running = true
	t.gen++
	t.stop = make(chan struct{})
	go t.run(t.gen, t.stop)
}

// Pause stops the countdown, preserving the remaining time.
// Idempotent.
func (t *Timer) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelLocked()
}

// Reset stops the countdown and restores the initial value.
func (t *Timer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelLocked()
	t.remaining = t.initial
}

// Toggle pauses a running timer and starts a stopped one. Two toggles
// inside doubleTapWindow collapse to a single Reset.
func (t *Timer) Toggle() {
	t.mu.Lock()
	now := time.Now()
	if !t.lastActivate.IsZero() && now.Sub(t.lastActivate) < doubleTapWindow {
		t.lastActivate = time.Time{}
		t.cancelLocked()
		t.remaining = t.initial
		t.mu.Unlock()
		return
	}
	t.lastActivate = now
	running := t.running
	t.mu.Unlock()

	if running {
		t.Pause()
	} else {
		t.Start()
	}
}

// cancelLocked invalidates the current ticking goroutine. Callers hold
// t.mu.
func (t *Timer) cancelLocked() {
	t.running = false
	t.gen++
	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
}

// run is the single ticking goroutine for generation gen. It exits as
// soon as the generation is stale, the stop channel closes, or the
// countdown completes.
func (t *Timer) run(gen int, stop chan struct{}) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if !t.tick(gen) {
				return
			}
		}
	}
}

// tick advances the countdown by one second. Returns false when the
// goroutine driving it should exit.
func (t *Timer) tick(gen int) bool {
	t.mu.Lock()
	if gen != t.gen || !t.running {
		t.mu.Unlock()
		return false
	}
	t.remaining--
	if t.remaining > 0 {
		t.mu.Unlock()
		return true
	}
	t.remaining = 0
	t.running = false
	t.gen++
	t.stop = nil
	fn := t.onComplete
	t.mu.Unlock()

	// Fired outside the lock: the callback may re-enter the timer
	// (e.g. Reset for another round of rest).
	if fn != nil {
		fn()
	}
	return false
}
