package nec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparques/irremote"
)

func TestRawCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		address uint16
		command byte
		raw     uint32
	}{
		{name: "laser on/off", address: 0x00, command: 0x0C, raw: uint32(LaserDVDOnOff)},
		{name: "teac dvd num1", address: 0x00, command: 0x06, raw: uint32(TeacDVDNum1)},
		{name: "16 bit address", address: 0x3412, command: 0x01, raw: 0xFE013412},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.raw, MakeRawCode(tt.address, tt.command))

			valid, address, command := SplitRawCode(tt.raw)
			assert.True(t, valid)
			assert.Equal(t, tt.address, address)
			assert.Equal(t, tt.command, command)
		})
	}

	valid, _, _ := SplitRawCode(0x0000FF00)
	assert.False(t, valid)
}

func TestAddress(t *testing.T) {
	t.Parallel()

	lo, hi := SplitAddress(0x12)
	assert.Equal(t, byte(0x12), lo)
	assert.Equal(t, byte(0xED), hi)
	assert.Equal(t, uint16(0x12), MakeAddress(lo, hi))

	lo, hi = SplitAddress(0xBEEF)
	assert.Equal(t, byte(0xEF), lo)
	assert.Equal(t, byte(0xBE), hi)
	assert.Equal(t, uint16(0xBEEF), MakeAddress(lo, hi))
}

func TestCodeTables(t *testing.T) {
	t.Parallel()

	for name, code := range LaserDVDCodes {
		valid, _, _ := SplitRawCode(uint32(code))
		assert.True(t, valid, "laser %s", name)
	}
	for name, code := range TeacDVDCodes {
		valid, _, _ := SplitRawCode(uint32(code))
		assert.True(t, valid, "teac dvd %s", name)
	}
	for name, code := range TeacPVRCodes {
		assert.Zero(t, uint32(code)&0xFF, "teac pvr %s", name)
	}

	assert.Equal(t, TeacPVRCode(0xA659BF00), TeacPVROnOff)
	assert.Equal(t, LaserDVDOnOff, LaserDVDCodes["on_off"])
}

func TestFrame(t *testing.T) {
	t.Parallel()

	for _, d := range []*irremote.Descriptor{&LaserDVD, &TeacPVR, &TeacDVD} {
		require.NoError(t, d.Validate(), d.Name)
	}

	f := Frame{Descriptor: &TeacPVR, Code: uint32(TeacPVROnOff)}
	ivs := f.MarshalFrame()
	require.Len(t, ivs, 34)
	assert.Equal(t, irremote.Interval{Mark: 9024, Space: 4512}, ivs[0])
	assert.Equal(t, irremote.Interval{Mark: 564, Space: 564}, ivs[33])

	code, _, bits, err := irremote.Decode(&TeacPVR, ivs)
	require.NoError(t, err)
	assert.Equal(t, 32, bits)
	assert.Equal(t, uint32(TeacPVROnOff), code)
}
