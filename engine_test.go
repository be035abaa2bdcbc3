package irremote_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparques/irremote"
	"github.com/sparques/irremote/hexbug"
	"github.com/sparques/irremote/nec"
	"github.com/sparques/irremote/samsung"
	"github.com/sparques/irremote/sim"
	"github.com/sparques/irremote/sony"
)

func sony20(t *testing.T) uint32 {
	t.Helper()
	code, err := sony.Command{Length: 20, Code: 0x7F, Address: 0x1FFF}.Pack()
	require.NoError(t, err)
	return uint32(code)
}

func TestEngineTransmission(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		desc     *irremote.Descriptor
		data1    func(t *testing.T) uint32
		data2    uint32
		repeats  uint8
		packets  int
		marks    int
		duration irremote.Ticks
	}{
		{
			name:  "nec single",
			desc:  &nec.LaserDVD,
			data1: func(*testing.T) uint32 { return uint32(nec.LaserDVDOnOff) }, repeats: 1,
			packets: 1, marks: 34, duration: 108_000,
		},
		{
			name:  "nec fast repeats",
			desc:  &nec.TeacDVD,
			data1: func(*testing.T) uint32 { return uint32(nec.TeacDVDOnOff) },
			// 34 + leader and stop twice
			packets: 3, marks: 38, duration: 3 * 108_000,
		},
		{
			name:  "samsung",
			desc:  &samsung.DVD,
			data1: func(*testing.T) uint32 { return uint32(samsung.DeviceDVD) }, data2: uint32(samsung.OnOff),
			packets: 1, marks: 39, duration: 120_000,
		},
		{
			name:    "sony 12 bit",
			desc:    &sony.TV,
			data1:   func(*testing.T) uint32 { return uint32(sony.OnOff) },
			packets: 3, marks: 3 * 13, duration: 3 * 50_000,
		},
		{
			name:    "sony 15 bit",
			desc:    &sony.TV,
			data1:   func(*testing.T) uint32 { return uint32(sony.Return) },
			packets: 3, marks: 3 * 16, duration: 3 * 50_000,
		},
		{
			name:    "sony 20 bit",
			desc:    &sony.TV,
			data1:   sony20,
			repeats: 2,
			packets: 2, marks: 2 * 21, duration: 2 * 50_000,
		},
		{
			name:    "hexbug press",
			desc:    &hexbug.Toy,
			data1:   func(*testing.T) uint32 { return hexbug.Cmd(hexbug.CmdFwdMask | hexbug.CH2).Data() },
			packets: 2, marks: 2 * 10, duration: 2 * 20_000,
		},
		{
			name:    "hexbug release",
			desc:    &hexbug.Release,
			data1:   func(*testing.T) uint32 { return hexbug.Cmd(hexbug.CH2).Data() },
			packets: 10, marks: 10 * 10, duration: 10 * 200_000,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tr := sim.Record(tt.desc, tt.data1(t), tt.data2, 0, tt.repeats)

			assert.Equal(t, tt.desc.Carrier, tr.Carrier)
			assert.Len(t, tr.Packets(), tt.packets)
			assert.Equal(t, tt.marks, tr.Marks())
			assert.Equal(t, tt.duration, tr.Duration())
			assert.Len(t, tr.States, len(tr.Intervals))
			for _, iv := range tr.Intervals {
				assert.LessOrEqual(t, iv.Mark, irremote.MaxIntervalTicks)
				assert.LessOrEqual(t, iv.Space, irremote.MaxIntervalTicks)
			}
		})
	}
}

func TestEngineRepeatScenario(t *testing.T) {
	t.Parallel()

	base := irremote.Descriptor{
		Name:         "nec-like",
		Family:       irremote.PulseDistance,
		Carrier:      38_000,
		ZeroMark:     564,
		ZeroSpace:    564,
		OneMark:      564,
		OneSpace:     1692,
		StartMark:    9024,
		StartSpace:   4512,
		RepeatPeriod: 108_000,
		RepeatMark:   9024,
		RepeatSpace:  4512,
		PacketBits:   32,
		Repeats:      3,
	}
	const data = 0xFF00AA55

	tests := []struct {
		name  string
		fast  bool
		sizes []int
	}{
		// leader, 32 bits, stop, trailer
		{name: "full repeats", sizes: []int{35, 35, 35}},
		// leader, stop and the 93336 tick trailer split in two
		{name: "fast repeats", fast: true, sizes: []int{35, 4, 4}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := base
			d.FastRepeats = tt.fast
			require.NoError(t, d.Validate())

			tr := sim.Record(&d, data, 0, 0, 0)
			packets := tr.Packets()
			require.Len(t, packets, len(tt.sizes))
			assert.Equal(t, 3*d.RepeatPeriod, tr.Duration())
			for i, packet := range packets {
				assert.Len(t, packet, tt.sizes[i], "packet %d", i)
			}

			data1, _, bits, err := irremote.Decode(&d, packets[0])
			require.NoError(t, err)
			assert.Equal(t, 32, bits)
			assert.Equal(t, uint32(data), data1)
		})
	}
}

func TestEngineFastRepeatTrailer(t *testing.T) {
	t.Parallel()

	tr := sim.Record(&nec.LaserDVD, uint32(nec.LaserDVDPlay), 0, 0, 2)
	packets := tr.Packets()
	require.Len(t, packets, 2)

	// leader 9024+2256, stop 564+564, then 95592 of silence split in two
	assert.Equal(t, []irremote.Interval{
		{Mark: 9024, Space: 2256},
		{Mark: 564, Space: 564},
		{Mark: 0, Space: 65535},
		{Mark: 0, Space: 30057},
	}, packets[1])

	states := tr.States[len(tr.States)-4:]
	assert.Equal(t, []irremote.State{
		irremote.Start, irremote.Stop, irremote.SpaceTrailer, irremote.MarkTrailer,
	}, states)
}

func TestEngineSamsungMiddleStop(t *testing.T) {
	t.Parallel()

	tr := sim.Record(&samsung.DVD, uint32(samsung.DeviceDVD), uint32(samsung.OnOff), 0, 0)
	require.Len(t, tr.Intervals, 40)

	// leader, 16 bits, middle stop
	assert.Equal(t, irremote.Interval{Mark: 500, Space: 4500}, tr.Intervals[17])
	assert.Equal(t, irremote.MiddleStop, tr.States[17])
	assert.Equal(t, irremote.FirstField, tr.States[16])
	assert.Equal(t, irremote.SecondField, tr.States[18])
	// stop pulse then one trailer
	assert.Equal(t, irremote.Interval{Mark: 500, Space: 500}, tr.Intervals[38])
	assert.Equal(t, irremote.Stop, tr.States[38])
	assert.Equal(t, irremote.SpaceTrailer, tr.States[39])
}

func TestEnginePostDelay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		delay uint32
	}{
		{name: "no delay", delay: 0},
		{name: "delay", delay: 250},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pulse := sim.NewPulseTimer()
			delay := sim.NewDelayTimer()
			e := irremote.NewEngine(pulse, delay)
			assert.Equal(t, irremote.Initial, e.State())
			assert.False(t, e.IsBusy())

			e.Send(&samsung.DVD, uint32(samsung.DeviceDVD), uint32(samsung.Play), tt.delay, 0)
			assert.True(t, e.IsBusy())
			assert.Equal(t, irremote.Start, e.State())

			pulse.Run()
			assert.False(t, pulse.Running())

			if tt.delay == 0 {
				assert.False(t, e.IsBusy())
				assert.Equal(t, irremote.Idle, e.State())
				assert.Empty(t, delay.Armed())
				assert.False(t, delay.Fire())
				return
			}

			assert.True(t, e.IsBusy())
			assert.Equal(t, irremote.PostDelay, e.State())
			assert.Equal(t, []uint32{tt.delay}, delay.Armed())
			require.True(t, delay.Fire())
			assert.False(t, e.IsBusy())
			assert.Equal(t, irremote.Idle, e.State())
		})
	}
}

func TestEngineRepeatOverride(t *testing.T) {
	t.Parallel()

	tr := sim.Record(&samsung.DVD, uint32(samsung.DeviceDVD), uint32(samsung.Stop), 0, 3)
	require.Len(t, tr.Packets(), 3)
	// Samsung has no fast repeats: every packet is complete.
	for _, p := range tr.Packets() {
		assert.Equal(t, 39, sim.Marks(p))
	}

	tr = sim.Record(&sony.TV, uint32(sony.Mute), 0, 0, 1)
	assert.Len(t, tr.Packets(), 1)
}

func TestEngineFreeRunning(t *testing.T) {
	t.Parallel()

	pulse := sim.NewFreeRunningPulseTimer()
	e := irremote.NewEngine(pulse, sim.NewFreeRunningDelayTimer())

	for i := 0; i < 3; i++ {
		e.Send(&sony.TV, uint32(sony.VolumeUp), 0, 10, 0)
		e.WaitUntilComplete()
		assert.False(t, e.IsBusy())
		assert.Equal(t, irremote.Idle, e.State())
	}
	assert.Equal(t, 3, pulse.Configures())
	assert.Equal(t, 3*3*13, sim.Marks(pulse.Intervals()))
}

func TestStateString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "middle-stop", irremote.MiddleStop.String())
	assert.Equal(t, "post-delay", irremote.PostDelay.String())
	assert.Equal(t, "unknown", irremote.State(200).String())
}
