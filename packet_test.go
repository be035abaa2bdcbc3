package irremote_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparques/irremote"
	"github.com/sparques/irremote/nec"
	"github.com/sparques/irremote/samsung"
	"github.com/sparques/irremote/sony"
)

func TestPacketDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		desc      *irremote.Descriptor
		data1     uint32
		data2     uint32
		intervals int
		want1     uint32
		want2     uint32
		bits      int
	}{
		{
			name:  "nec",
			desc:  &nec.LaserDVD,
			data1: uint32(nec.LaserDVDOnOff),
			// leader, 32 bits, stop
			intervals: 34,
			want1:     uint32(nec.LaserDVDOnOff),
			bits:      32,
		},
		{
			name:      "samsung",
			desc:      &samsung.DVD,
			data1:     uint32(samsung.DeviceDVD),
			data2:     uint32(samsung.Eject),
			intervals: 39,
			want1:     uint32(samsung.DeviceDVD),
			want2:     uint32(samsung.Eject),
			bits:      36,
		},
		{
			name:      "sony 12 bit",
			desc:      &sony.TV,
			data1:     uint32(sony.OnOff),
			intervals: 13,
			want1:     0x15 | 0x01<<7,
			bits:      12,
		},
		{
			name:      "sony 15 bit",
			desc:      &sony.TV,
			data1:     uint32(sony.SourceHDMI4),
			intervals: 16,
			want1:     93 | 26<<7,
			bits:      15,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ivs := irremote.Packet(tt.desc, tt.data1, tt.data2)
			require.Len(t, ivs, tt.intervals)
			assert.Equal(t, irremote.Interval{Mark: tt.desc.StartMark, Space: tt.desc.StartSpace}, ivs[0])

			data1, data2, bits, err := irremote.Decode(tt.desc, ivs)
			require.NoError(t, err)
			assert.Equal(t, tt.want1, data1)
			assert.Equal(t, tt.want2, data2)
			assert.Equal(t, tt.bits, bits)
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()

	necPacket := irremote.Packet(&nec.LaserDVD, uint32(nec.LaserDVDOnOff), 0)
	samsungPacket := irremote.Packet(&samsung.DVD, uint32(samsung.DeviceDVD), uint32(samsung.OnOff))
	badMiddle := append([]irremote.Interval(nil), samsungPacket...)
	badMiddle[17] = irremote.Interval{Mark: 500, Space: 500}
	badBit := append([]irremote.Interval(nil), necPacket...)
	badBit[5] = irremote.Interval{Mark: 564}

	tests := []struct {
		name string
		desc *irremote.Descriptor
		ivs  []irremote.Interval
		want error
	}{
		{name: "empty", desc: &nec.LaserDVD, want: irremote.ErrShortPacket},
		{name: "silent start", desc: &nec.LaserDVD, ivs: []irremote.Interval{{Space: 100}}, want: irremote.ErrShortPacket},
		{name: "truncated", desc: &nec.LaserDVD, ivs: necPacket[:10], want: irremote.ErrShortPacket},
		{name: "bad middle stop", desc: &samsung.DVD, ivs: badMiddle, want: irremote.ErrUnexpectedPulse},
		{name: "bad bit", desc: &nec.LaserDVD, ivs: badBit, want: irremote.ErrUnexpectedPulse},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, _, _, err := irremote.Decode(tt.desc, tt.ivs)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestIntervalTimePair(t *testing.T) {
	t.Parallel()
	iv := irremote.Interval{Mark: 564, Space: 1692}
	assert.Equal(t, irremote.Ticks(2256), iv.Total())
	tp := iv.TimePair()
	assert.Equal(t, iv.Mark.Duration(), tp[0])
	assert.Equal(t, iv.Space.Duration(), tp[1])
}
