// Package irremote transmits infra-red remote control codes through a
// carrier-modulating pulse timer.
//
// A Descriptor holds the timing of one protocol. An Engine walks a
// Descriptor and up to two data words interval by interval, reprogramming
// the PulseTimer from its completion callback, so a transmission runs
// without blocking the caller.
package irremote

import "time"

const (
	// Freq38Khz is the most commonly used frequency for IR remotes
	Freq38Khz Hertz = 38000
	// Freq40Khz is used by Sony SIRC remotes
	Freq40Khz Hertz = 40000

	// CarrierClock is the input clock of the carrier generator. Carrier half
	// periods are whole cycles of this clock.
	CarrierClock = 8_000_000

	// MaxCarrierErrorPermille is the largest acceptable deviation between a
	// requested carrier and the one the generator can produce.
	MaxCarrierErrorPermille = 10

	// MaxIntervalTicks is the widest mark or space a single hardware interval
	// can hold (16-bit mark/space registers).
	MaxIntervalTicks Ticks = 0xFFFF
)

// Ticks counts pulse timer ticks. One tick is one microsecond.
type Ticks uint32

// Duration converts t to a time.Duration.
func (t Ticks) Duration() time.Duration {
	return time.Duration(t) * time.Microsecond
}

// Hertz is a carrier frequency.
type Hertz uint32

// Interval is one hardware interval: the carrier is on for Mark ticks and
// then off for Space ticks. A zero Mark is a silent gap.
type Interval struct {
	Mark  Ticks
	Space Ticks
}

// Total returns the length of the interval.
func (iv Interval) Total() Ticks {
	return iv.Mark + iv.Space
}

// TimePair returns the interval as an on-off pair of durations.
func (iv Interval) TimePair() TimePair {
	return TimePair{iv.Mark.Duration(), iv.Space.Duration()}
}

// TimePair encodes two durations used to encode an on-off amount of time.
type TimePair [2]time.Duration

// FrameMarshaller defines an interface for marshalling a command to the
// intervals of a single packet.
type FrameMarshaller interface {
	MarshalFrame() []Interval
}

// CarrierHalfPeriod returns the half period of carrier h in CarrierClock
// cycles, which is what the generator's high and low registers hold.
func CarrierHalfPeriod(h Hertz) uint32 {
	if h == 0 {
		return 0
	}
	return uint32(CarrierClock / (2 * uint64(h)))
}

// CarrierError returns the deviation, in parts per thousand, between h and
// the carrier actually generated from CarrierClock.
func CarrierError(h Hertz) uint32 {
	half := uint64(CarrierHalfPeriod(h))
	if half == 0 {
		return 1000
	}
	return uint32((CarrierClock % (2 * uint64(h))) * 1000 / (2 * half * uint64(h)))
}
