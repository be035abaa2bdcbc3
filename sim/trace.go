package sim

import (
	"github.com/sparques/irremote"
)

// Trace is the complete output of one Send.
type Trace struct {
	Carrier   irremote.Hertz
	Intervals []irremote.Interval
	// States holds the engine state each interval was sent in.
	States []irremote.State
	// Delays holds the post-delay arms, in milliseconds.
	Delays []uint32
}

// Record sends data1 and data2 with d through a fresh engine on manual
// timers, runs it to completion and returns what was sent.
func Record(d *irremote.Descriptor, data1, data2 uint32, postDelayMs uint32, repeatOverride uint8) Trace {
	pulse := NewPulseTimer()
	delay := NewDelayTimer()
	e := irremote.NewEngine(pulse, delay)

	e.Send(d, data1, data2, postDelayMs, repeatOverride)
	states := []irremote.State{e.State()}
	for pulse.Advance() {
		if pulse.Running() {
			states = append(states, e.State())
		}
	}
	delay.Fire()

	return Trace{
		Carrier:   pulse.Carrier(),
		Intervals: pulse.Intervals(),
		States:    states,
		Delays:    delay.Armed(),
	}
}

// Packets splits the trace into transmissions, each starting at a leader
// and including its trailing silence.
func (tr Trace) Packets() [][]irremote.Interval {
	var out [][]irremote.Interval
	for i, s := range tr.States {
		if s == irremote.Start {
			out = append(out, nil)
		}
		if len(out) == 0 {
			continue
		}
		out[len(out)-1] = append(out[len(out)-1], tr.Intervals[i])
	}
	return out
}

// Marks counts the intervals that carry a mark.
func (tr Trace) Marks() int {
	return Marks(tr.Intervals)
}

// Duration returns the total air time in ticks, silence included.
func (tr Trace) Duration() irremote.Ticks {
	var total irremote.Ticks
	for _, iv := range tr.Intervals {
		total += iv.Total()
	}
	return total
}

// Marks counts the intervals in ivs that carry a mark.
func Marks(ivs []irremote.Interval) int {
	n := 0
	for _, iv := range ivs {
		if iv.Mark != 0 {
			n++
		}
	}
	return n
}
