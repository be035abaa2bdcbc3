package irremote

import "time"

// PulseTimer is a carrier-modulating timer. Each interval is Mark ticks of
// carrier followed by Space ticks of silence; done is called once when each
// interval has elapsed.
type PulseTimer interface {
	// Configure sets up the carrier, starts the first interval and
	// registers done as the completion callback.
	Configure(carrier Hertz, first Interval, done func())
	// SetInterval programs the interval that follows the one just
	// completed. It is called from done.
	SetInterval(iv Interval)
	// Stop turns the carrier off and stops calling done.
	Stop()
}

// DelayTimer is a one-shot millisecond timer, separate from the carrier.
type DelayTimer interface {
	ArmOneShot(ms uint32, done func())
}

// AfterFuncDelay is a DelayTimer backed by time.AfterFunc.
type AfterFuncDelay struct{}

func (AfterFuncDelay) ArmOneShot(ms uint32, done func()) {
	time.AfterFunc(time.Duration(ms)*time.Millisecond, done)
}
