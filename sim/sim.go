// Package sim provides software timers for running an irremote.Engine
// without hardware, either stepped by hand or free-running.
package sim

import (
	"sync"

	"github.com/sparques/irremote"
)

// PulseTimer records every interval it is given. A manual timer completes
// an interval only when Advance is called; a free-running timer completes
// them back to back on its own goroutine.
type PulseTimer struct {
	mu         sync.Mutex
	free       bool
	carrier    irremote.Hertz
	intervals  []irremote.Interval
	done       func()
	running    bool
	configures int
}

// NewPulseTimer returns a manual timer.
func NewPulseTimer() *PulseTimer {
	return &PulseTimer{}
}

// NewFreeRunningPulseTimer returns a timer that drives the engine to
// completion as soon as it is configured.
func NewFreeRunningPulseTimer() *PulseTimer {
	return &PulseTimer{free: true}
}

func (t *PulseTimer) Configure(carrier irremote.Hertz, first irremote.Interval, done func()) {
	t.mu.Lock()
	t.carrier = carrier
	t.intervals = append(t.intervals, first)
	t.done = done
	t.running = true
	t.configures++
	gen := t.configures
	t.mu.Unlock()

	if t.free {
		go func() {
			for t.advance(gen) {
			}
		}()
	}
}

func (t *PulseTimer) SetInterval(iv irremote.Interval) {
	t.mu.Lock()
	t.intervals = append(t.intervals, iv)
	t.mu.Unlock()
}

func (t *PulseTimer) Stop() {
	t.mu.Lock()
	t.running = false
	t.mu.Unlock()
}

// Advance completes the current interval. It returns false when the timer
// is stopped.
func (t *PulseTimer) Advance() bool {
	return t.advance(0)
}

// advance completes the current interval of transmission gen, or of any
// transmission when gen is zero.
func (t *PulseTimer) advance(gen int) bool {
	t.mu.Lock()
	running, done := t.running, t.done
	if gen != 0 && gen != t.configures {
		running = false
	}
	t.mu.Unlock()
	if !running {
		return false
	}
	done()
	return true
}

// Run advances until the timer is stopped and returns the number of
// completion callbacks made.
func (t *PulseTimer) Run() int {
	n := 0
	for t.Advance() {
		n++
	}
	return n
}

// Intervals returns a copy of the recorded intervals.
func (t *PulseTimer) Intervals() []irremote.Interval {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]irremote.Interval(nil), t.intervals...)
}

// Carrier returns the last configured carrier.
func (t *PulseTimer) Carrier() irremote.Hertz {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.carrier
}

// Running reports whether the carrier is active.
func (t *PulseTimer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// Configures returns how many transmissions have been started.
func (t *PulseTimer) Configures() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.configures
}

// Reset forgets recorded intervals.
func (t *PulseTimer) Reset() {
	t.mu.Lock()
	t.intervals = nil
	t.mu.Unlock()
}

// DelayTimer records one-shot arms. A manual timer fires on Fire; a
// free-running one fires immediately on its own goroutine.
type DelayTimer struct {
	mu      sync.Mutex
	free    bool
	armed   []uint32
	pending func()
}

// NewDelayTimer returns a manual delay timer.
func NewDelayTimer() *DelayTimer {
	return &DelayTimer{}
}

// NewFreeRunningDelayTimer returns a delay timer that does not wait.
func NewFreeRunningDelayTimer() *DelayTimer {
	return &DelayTimer{free: true}
}

func (t *DelayTimer) ArmOneShot(ms uint32, done func()) {
	t.mu.Lock()
	t.armed = append(t.armed, ms)
	t.pending = done
	t.mu.Unlock()

	if t.free {
		go t.Fire()
	}
}

// Fire runs the pending callback. It returns false if nothing is armed.
func (t *DelayTimer) Fire() bool {
	t.mu.Lock()
	done := t.pending
	t.pending = nil
	t.mu.Unlock()
	if done == nil {
		return false
	}
	done()
	return true
}

// Armed returns the durations of every arm so far.
func (t *DelayTimer) Armed() []uint32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]uint32(nil), t.armed...)
}
