package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// advance drives a timer deterministically, the way its ticking
// goroutine would.
func advance(t *Timer, seconds int) {
	t.mu.Lock()
	if t.remaining == 0 {
		t.mu.Unlock()
		return
	}
	t.running = true
	t.gen++
	gen := t.gen
	t.mu.Unlock()
	for i := 0; i < seconds; i++ {
		if !t.tick(gen) {
			return
		}
	}
}

func TestTimer_CountdownAndComplete(t *testing.T) {
	timer := NewTimer(3)
	completions := 0
	timer.OnComplete(func() { completions++ })

	advance(timer, 2)
	assert.Equal(t, 1, timer.Remaining())
	assert.Equal(t, 0, completions)

	advance(timer, 1)
	assert.Equal(t, 0, timer.Remaining())
	assert.False(t, timer.Running())
	assert.Equal(t, 1, completions)

	// Ticks after completion are stale and change nothing.
	advance(timer, 5)
	assert.Equal(t, 0, timer.Remaining())
}

func TestTimer_StartNoOpWhenExhausted(t *testing.T) {
	defer goleak.VerifyNone(t)

	timer := NewTimer(1, WithTickInterval(time.Millisecond))
	advance(timer, 1)
	require.Equal(t, 0, timer.Remaining())

	timer.Start()
	assert.False(t, timer.Running())

	zero := NewTimer(0)
	zero.Start()
	assert.False(t, zero.Running())
}

func TestTimer_PausePreservesRemaining(t *testing.T) {
	timer := NewTimer(10)
	advance(timer, 4)
	timer.Pause()
	assert.False(t, timer.Running())
	assert.Equal(t, 6, timer.Remaining())

	timer.Pause() // idempotent
	assert.Equal(t, 6, timer.Remaining())
}

func TestTimer_ResetIdempotent(t *testing.T) {
	timer := NewTimer(30)
	advance(timer, 12)
	timer.Reset()
	assert.Equal(t, 30, timer.Remaining())
	assert.False(t, timer.Running())

	timer.Reset()
	assert.Equal(t, 30, timer.Remaining())
	assert.False(t, timer.Running())
}

func TestTimer_ToggleDoubleTapResets(t *testing.T) {
	timer := NewTimer(60)
	advance(timer, 15)
	require.Equal(t, 45, timer.Remaining())

	// Two activations inside the window collapse to one reset.
	timer.Toggle()
	timer.Toggle()
	assert.Equal(t, 60, timer.Remaining())
	assert.False(t, timer.Running())
}

func TestTimer_StartPauseChurnLeavesNoGoroutines(t *testing.T) {
	defer goleak.VerifyNone(t)

	timer := NewTimer(1000, WithTickInterval(time.Millisecond))
	for i := 0; i < 20; i++ {
		timer.Start()
		timer.Pause()
	}
	timer.Start()
	require.Eventually(t, func() bool {
		return timer.Remaining() < 1000
	}, time.Second, time.Millisecond, "timer should tick while running")
	timer.Reset()
	assert.Equal(t, 1000, timer.Remaining())
	assert.False(t, timer.Running())
}

func TestTimer_RunsDownInRealTime(t *testing.T) {
	defer goleak.VerifyNone(t)

	done := make(chan struct{})
	timer := NewTimer(3, WithTickInterval(time.Millisecond))
	timer.OnComplete(func() { close(done) })
	timer.Start()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timer did not complete")
	}
	assert.Equal(t, 0, timer.Remaining())
	assert.False(t, timer.Running())
}
