//go:build tinygo

package irremote

import (
	. "machine"
	"time"

	"github.com/sparques/pwm"
)

// PWMTimer is a PulseTimer that modulates a PWM channel. The carrier is the
// PWM period at half duty; marks and spaces are timed with time.AfterFunc.
type PWMTimer struct {
	pin    Pin
	pgroup pwm.Group
	ch     uint8
	duty   uint32

	next    Interval
	pending bool
	stopped bool
	done    func()
}

// NewPWMTimer configures pin for PWM output at the 38 kHz default carrier.
func NewPWMTimer(pin Pin) *PWMTimer {
	pin.Configure(PinConfig{Mode: PinPWM})
	pgroup := pwm.Get(pin)
	pgroup.Configure(PWMConfig{Period: uint64(1e9) / uint64(Freq38Khz)})
	ch, _ := pgroup.Channel(pin)
	pgroup.Set(ch, 0)
	return &PWMTimer{
		pin:    pin,
		pgroup: pgroup,
		ch:     ch,
		duty:   pgroup.Top() / 2,
	}
}

func (tx *PWMTimer) Configure(carrier Hertz, first Interval, done func()) {
	tx.pgroup.Configure(PWMConfig{Period: uint64(1e9) / uint64(carrier)})
	tx.duty = tx.pgroup.Top() / 2
	tx.done = done
	tx.stopped = false
	tx.start(first)
}

func (tx *PWMTimer) SetInterval(iv Interval) {
	tx.next = iv
	tx.pending = true
}

func (tx *PWMTimer) Stop() {
	tx.stopped = true
	tx.pending = false
	tx.pgroup.Set(tx.ch, 0)
}

func (tx *PWMTimer) start(iv Interval) {
	if iv.Mark == 0 {
		tx.markElapsed(iv.Space)
		return
	}
	tx.pgroup.Set(tx.ch, tx.duty)
	time.AfterFunc(iv.Mark.Duration(), func() {
		tx.markElapsed(iv.Space)
	})
}

func (tx *PWMTimer) markElapsed(space Ticks) {
	tx.pgroup.Set(tx.ch, 0)
	time.AfterFunc(space.Duration(), tx.spaceElapsed)
}

func (tx *PWMTimer) spaceElapsed() {
	if tx.stopped {
		return
	}
	tx.pending = false
	tx.done()
	if tx.pending {
		tx.start(tx.next)
	}
}
