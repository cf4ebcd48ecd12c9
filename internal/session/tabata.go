package session

import (
	"sync"
	"time"
)

// Fixed Tabata protocol: 8 rounds of 20s work / 10s rest, with no rest
// after the final work phase.
const (
	TabataRounds      = 8
	TabataWorkSeconds = 20
	TabataRestSeconds = 10
)

// Phase is the current half of a Tabata round.
type Phase string

const (
	PhaseWork Phase = "work"
	PhaseRest Phase = "rest"
)

// TabataState is a point-in-time snapshot of the driver.
type TabataState struct {
	Round       int   `json:"round"` // 0-based
	Phase       Phase `json:"phase"`
	SecondsLeft int   `json:"secondsLeft"`
	Running     bool  `json:"running"`
	Done        bool  `json:"done"`
}

// Tabata drives the fixed 8-round interval protocol. The round/phase
// bookkeeping is independent of pause/resume: pausing mid-round
// preserves the exact remaining seconds. The completion callback fires
// exactly once per run, no matter how often the driver is queried
// afterwards.
type Tabata struct {
	mu          sync.Mutex
	round       int
	phase       Phase
	secondsLeft int
	running     bool
	done        bool
	fired       bool
	gen         int
	stop        chan struct{}
	interval    time.Duration
	onComplete  func()
}

// TabataOption configures a Tabata driver.
type TabataOption func(*Tabata)

// WithTabataTickInterval overrides the one-second tick for tests.
func WithTabataTickInterval(d time.Duration) TabataOption {
	return func(t *Tabata) { t.interval = d }
}

// NewTabata creates an idle driver at round 0, work phase, 20s.
func NewTabata(opts ...TabataOption) *Tabata {
	t := &Tabata{
		phase:       PhaseWork,
		secondsLeft: TabataWorkSeconds,
		interval:    time.Second,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// OnComplete registers the callback fired when round 8's work phase
// elapses.
func (t *Tabata) OnComplete(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onComplete = fn
}

// Snapshot returns the current state.
func (t *Tabata) Snapshot() TabataState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return TabataState{
		Round:       t.round,
		Phase:       t.phase,
		SecondsLeft: t.secondsLeft,
		Running:     t.running,
		Done:        t.done,
	}
}

// RoundDone reports whether round i counts as complete for progress
// display: its rest phase has elapsed, or, for the final round, its
// work phase has.
func (t *Tabata) RoundDone(i int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if i == TabataRounds-1 {
		return t.done
	}
	return i < t.round
}

// Start resumes the countdown. No-op while running or after
// completion.
func (t *Tabata) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running || t.done {
		return
	}
	t.running = true
	t.gen++
	t.stop = make(chan struct{})
	go t.run(t.gen, t.stop)
}

// Pause stops the countdown without touching round or phase.
func (t *Tabata) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelLocked()
}

// Toggle starts when stopped and pauses when running.
func (t *Tabata) Toggle() {
	t.mu.Lock()
	running := t.running
	t.mu.Unlock()
	if running {
		t.Pause()
	} else {
		t.Start()
	}
}

// Reset returns the driver to idle: round 0, work phase, 20 seconds,
// stopped. A new run may fire the completion callback again.
func (t *Tabata) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelLocked()
	t.round = 0
	t.phase = PhaseWork
	t.secondsLeft = TabataWorkSeconds
	t.done = false
	t.fired = false
}

func (t *Tabata) cancelLocked() {
	t.running = false
	t.gen++
	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
}

func (t *Tabata) run(gen int, stop chan struct{}) {
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

// tick advances one second and applies phase transitions:
// Working(r) -> Resting(r) for r < 7, Working(7) -> done,
// Resting(r) -> Working(r+1). Returns false when the goroutine should
// exit.
func (t *Tabata) tick(gen int) bool {
	t.mu.Lock()
	if gen != t.gen || !t.running {
		t.mu.Unlock()
		return false
	}
	t.secondsLeft--
	if t.secondsLeft > 0 {
		t.mu.Unlock()
		return true
	}

	if t.phase == PhaseWork {
		if t.round < TabataRounds-1 {
			t.phase = PhaseRest
			t.secondsLeft = TabataRestSeconds
			t.mu.Unlock()
			return true
		}
		// Final round has no trailing rest.
		t.secondsLeft = 0
		t.running = false
		t.done = true
		t.gen++
		t.stop = nil
		var fn func()
		if !t.fired {
			t.fired = true
			fn = t.onComplete
		}
		t.mu.Unlock()
		if fn != nil {
			fn()
		}
		return false
	}

	// Rest elapsed: the round is complete, move to the next work phase.
	t.round++
	t.phase = PhaseWork
	t.secondsLeft = TabataWorkSeconds
	t.mu.Unlock()
	return true
}
