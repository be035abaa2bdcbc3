// Package periphtx drives an IR LED from a Linux single board computer
// through periph.io. The carrier is the pin's hardware PWM; marks and
// spaces are timed with time.AfterFunc.
package periphtx

import (
	"fmt"
	"sync"
	"time"

	"github.com/sparques/irremote"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
)

// Timer is an irremote.PulseTimer on a periph.io output pin.
type Timer struct {
	pin gpio.PinOut

	mu      sync.Mutex
	freq    physic.Frequency
	next    irremote.Interval
	pending bool
	stopped bool
	done    func()
}

// Open initialises the host drivers and returns a Timer on the named pin,
// e.g. "GPIO18".
func Open(pinName string) (*Timer, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize periph host: %w", err)
	}
	pin := gpioreg.ByName(pinName)
	if pin == nil {
		return nil, fmt.Errorf("periphtx: no pin %q", pinName)
	}
	return New(pin)
}

// New returns a Timer on pin, with the carrier off.
func New(pin gpio.PinOut) (*Timer, error) {
	if err := pin.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("periphtx: %s: %w", pin, err)
	}
	return &Timer{
		pin:  pin,
		freq: physic.Frequency(irremote.Freq38Khz) * physic.Hertz,
	}, nil
}

func (t *Timer) Configure(carrier irremote.Hertz, first irremote.Interval, done func()) {
	t.mu.Lock()
	t.freq = physic.Frequency(carrier) * physic.Hertz
	t.done = done
	t.stopped = false
	t.pending = false
	t.mu.Unlock()
	t.start(first)
}

func (t *Timer) SetInterval(iv irremote.Interval) {
	t.mu.Lock()
	t.next = iv
	t.pending = true
	t.mu.Unlock()
}

func (t *Timer) Stop() {
	t.mu.Lock()
	t.stopped = true
	t.pending = false
	t.mu.Unlock()
	t.off()
}

func (t *Timer) off() {
	_ = t.pin.Out(gpio.Low)
}

func (t *Timer) start(iv irremote.Interval) {
	if iv.Mark == 0 {
		t.markElapsed(iv.Space)
		return
	}
	t.mu.Lock()
	freq := t.freq
	t.mu.Unlock()
	if err := t.pin.PWM(gpio.DutyHalf, freq); err != nil {
		// A pin without hardware PWM still gets the envelope.
		_ = t.pin.Out(gpio.High)
	}
	time.AfterFunc(iv.Mark.Duration(), func() {
		t.markElapsed(iv.Space)
	})
}

func (t *Timer) markElapsed(space irremote.Ticks) {
	t.off()
	time.AfterFunc(space.Duration(), t.spaceElapsed)
}

func (t *Timer) spaceElapsed() {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}
	t.pending = false
	done := t.done
	t.mu.Unlock()

	done()

	t.mu.Lock()
	next, pending := t.next, t.pending && !t.stopped
	t.mu.Unlock()
	if pending {
		t.start(next)
	}
}
