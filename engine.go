package irremote

import (
	"runtime"
	"sync/atomic"
)

// State is the position of the Engine within a transmission.
type State uint8

const (
	Initial      State = iota // boot state, before the first Send
	Start                     // leader on air
	FirstField                // data1 bits before the middle stop
	MiddleStop                // stop pulse between the fields
	SecondField               // remaining bits
	Stop                      // stop pulse
	SpaceTrailer              // silence up to the repeat period
	MarkTrailer               // rest of the silence when it does not fit one interval
	Complete                  // packet done, deciding whether to repeat
	PostDelay                 // waiting on the delay timer
	Idle                      // transmission finished
)

func (s State) String() string {
	switch s {
	case Initial:
		return "initial"
	case Start:
		return "start"
	case FirstField:
		return "first-field"
	case MiddleStop:
		return "middle-stop"
	case SecondField:
		return "second-field"
	case Stop:
		return "stop"
	case SpaceTrailer:
		return "space-trailer"
	case MarkTrailer:
		return "mark-trailer"
	case Complete:
		return "complete"
	case PostDelay:
		return "post-delay"
	case Idle:
		return "idle"
	default:
		return "unknown"
	}
}

// Engine sends one transmission at a time through a PulseTimer. Send arms
// the first interval; every later interval is produced by Step, which the
// PulseTimer calls when an interval completes.
//
// There is one writer: Send runs only while the engine is idle and Step
// runs only while it is busy. Callers must wait for IsBusy to return false
// before calling Send again; a Send during a transmission corrupts it.
type Engine struct {
	pulse PulseTimer
	delay DelayTimer

	busy  atomic.Bool
	state atomic.Uint32

	desc      *Descriptor
	data1     uint32
	data2     uint32
	bits      uint8 // data bits in this transmission
	repeats   uint8 // transmissions to send
	sent      uint8 // transmissions completed
	bit       uint8 // bits sent in the current packet
	shift     uint32
	elapsed   Ticks // time since the current leader started
	gap       Ticks // trailer silence still to send
	postDelay uint32
}

// NewEngine returns an idle engine driving pulse, with delay used for the
// post-transmission delay.
func NewEngine(pulse PulseTimer, delay DelayTimer) *Engine {
	e := &Engine{
		pulse: pulse,
		delay: delay,
	}
	e.setState(Initial)
	return e
}

// Send starts transmitting data1 and data2 using d and returns at once.
// repeatOverride, when non-zero, replaces d.Repeats for this call. The
// engine stays busy for postDelayMs after the last interval.
//
// When d.PacketBits is zero the bit count is taken from the length tag in
// data1 (see SplitLengthTag) and the tag is stripped before sending.
func (e *Engine) Send(d *Descriptor, data1, data2 uint32, postDelayMs uint32, repeatOverride uint8) {
	e.desc = d
	e.data1 = data1
	e.data2 = data2
	e.bits = d.PacketBits
	if e.bits == 0 {
		e.bits, e.data1 = SplitLengthTag(data1)
	}
	e.repeats = d.Repeats
	if repeatOverride != 0 {
		e.repeats = repeatOverride
	}
	e.postDelay = postDelayMs
	e.sent = 0

	first := leader(d, false)
	e.elapsed = first.Total()
	e.setState(Start)
	e.busy.Store(true)
	e.pulse.Configure(d.Carrier, first, e.Step)
}

// Step advances the transmission by one interval. It is the PulseTimer
// completion callback and runs in interrupt context on hardware.
func (e *Engine) Step() {
	d := e.desc
	for {
		e.next(d)
		switch e.State() {
		case FirstField, SecondField:
			iv := encodeBit(d, e.shift)
			e.shift >>= 1
			e.bit++
			e.emit(iv)
			return
		case MiddleStop:
			e.emit(middleStop(d))
			return
		case Stop:
			iv, ok := stopPulse(d)
			if !ok {
				continue
			}
			e.emit(iv)
			return
		case SpaceTrailer, MarkTrailer:
			if e.gap == 0 {
				continue
			}
			iv := Interval{Space: min(e.gap, MaxIntervalTicks)}
			e.gap -= iv.Space
			e.emit(iv)
			return
		case Complete:
			e.sent++
			if e.sent < e.repeats {
				iv := leader(d, true)
				e.elapsed = iv.Total()
				e.setState(Start)
				e.pulse.SetInterval(iv)
				return
			}
			e.finish()
			return
		default:
			return
		}
	}
}

// next leaves the state whose interval has just completed.
func (e *Engine) next(d *Descriptor) {
	switch e.State() {
	case Start:
		e.bit = 0
		e.shift = e.data1
		switch {
		case e.bits == 0, e.sent > 0 && d.FastRepeats:
			e.setState(Stop)
		case d.MiddleStopBit == 0:
			e.setState(SecondField)
		default:
			e.setState(FirstField)
		}
	case FirstField:
		if e.bit == d.MiddleStopBit {
			e.setState(MiddleStop)
		}
	case MiddleStop:
		e.shift = e.data2
		e.setState(SecondField)
	case SecondField:
		if e.bit >= e.bits {
			e.setState(Stop)
		}
	case Stop:
		e.gap = 0
		if d.RepeatPeriod > e.elapsed {
			e.gap = d.RepeatPeriod - e.elapsed
		}
		e.setState(SpaceTrailer)
	case SpaceTrailer, MarkTrailer:
		if e.gap > 0 {
			e.setState(MarkTrailer)
		} else {
			e.setState(Complete)
		}
	}
}

func (e *Engine) emit(iv Interval) {
	e.elapsed += iv.Total()
	e.pulse.SetInterval(iv)
}

func (e *Engine) finish() {
	e.pulse.Stop()
	if e.postDelay == 0 {
		e.done()
		return
	}
	e.setState(PostDelay)
	e.delay.ArmOneShot(e.postDelay, e.done)
}

func (e *Engine) done() {
	e.setState(Idle)
	e.busy.Store(false)
}

// IsBusy reports whether a transmission or its post delay is in progress.
func (e *Engine) IsBusy() bool {
	return e.busy.Load()
}

// WaitUntilComplete busy-waits until the engine is idle.
func (e *Engine) WaitUntilComplete() {
	for e.busy.Load() {
		runtime.Gosched()
	}
}

// State returns the current state.
func (e *Engine) State() State {
	return State(e.state.Load())
}

func (e *Engine) setState(s State) {
	e.state.Store(uint32(s))
}
