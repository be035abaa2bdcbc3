package periphtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"

	"github.com/sparques/irremote"
)

var shortDesc = irremote.Descriptor{
	Name:         "short",
	Family:       irremote.PulseDistance,
	Carrier:      irremote.Freq38Khz,
	ZeroMark:     200,
	ZeroSpace:    200,
	OneMark:      200,
	OneSpace:     600,
	StartMark:    1000,
	StartSpace:   500,
	RepeatPeriod: 10_000,
	RepeatMark:   1000,
	RepeatSpace:  250,
	PacketBits:   8,
	Repeats:      2,
	FastRepeats:  true,
}

type countingDelay struct {
	ms []uint32
}

func (d *countingDelay) ArmOneShot(ms uint32, done func()) {
	d.ms = append(d.ms, ms)
	done()
}

func TestTimerDrivesEngine(t *testing.T) {
	t.Parallel()

	pin := &gpiotest.Pin{N: "GPIO18", Num: 18}
	tx, err := New(pin)
	require.NoError(t, err)
	assert.Equal(t, gpio.Low, pin.Read())

	delay := &countingDelay{}
	e := irremote.NewEngine(tx, delay)
	e.Send(&shortDesc, 0xA5, 0, 5, 0)

	done := make(chan struct{})
	go func() {
		e.WaitUntilComplete()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("transmission did not complete")
	}

	assert.Equal(t, irremote.Idle, e.State())
	assert.Equal(t, []uint32{5}, delay.ms)
	assert.Equal(t, gpio.Low, pin.Read())
}

func TestStop(t *testing.T) {
	t.Parallel()

	pin := &gpiotest.Pin{N: "GPIO19", Num: 19}
	tx, err := New(pin)
	require.NoError(t, err)

	calls := make(chan struct{}, 10)
	tx.Configure(irremote.Freq38Khz, irremote.Interval{Mark: 100, Space: 100}, func() {
		calls <- struct{}{}
	})
	tx.Stop()
	time.Sleep(20 * time.Millisecond)
	assert.Empty(t, calls)
	assert.Equal(t, gpio.Low, pin.Read())
}
