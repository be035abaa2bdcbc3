// Package nec holds descriptors and command tables for NEC-family
// remotes.
//
// IRP: {38.0k,564}<1,-1|1,-3>(16,-8,D:8,S:8,F:8,~F:8,1,^108m,(16,-4,1,^108m)*)
//
// Bits are sent LSB first. Held buttons are repeated with the short
// 9 ms / 2.25 ms leader and a stop pulse, without the data.
package nec

import (
	"github.com/sparques/irremote"
)

const (
	carrierHz = 38_000
	carrier   = irremote.Hertz(carrierHz)
	unit      = 564

	// Repeat period is measured leader to leader.
	repeatPeriod = 108_000
)

// Fails to compile if the carrier cannot be generated.
const _ uint = irremote.MaxCarrierErrorPermille -
	(irremote.CarrierClock%(2*carrierHz))*1000/(2*(irremote.CarrierClock/(2*carrierHz))*carrierHz)

var base = irremote.Descriptor{
	Family:  irremote.PulseDistance,
	Carrier: carrier,

	ZeroMark:  unit,
	ZeroSpace: unit,
	OneMark:   unit,
	OneSpace:  3 * unit,

	StartMark:  16 * unit,
	StartSpace: 8 * unit,

	RepeatPeriod: repeatPeriod,
	RepeatMark:   16 * unit,
	RepeatSpace:  4 * unit,

	PacketBits:  32,
	Repeats:     3,
	FastRepeats: true,
}

func named(name string) irremote.Descriptor {
	d := base
	d.Name = name
	return d
}

var (
	// LaserDVD is the Laser DVD player.
	LaserDVD = named("Laser DVD")
	// TeacPVR is the Teac personal video recorder.
	TeacPVR = named("Teac PVR")
	// TeacDVD is the Teac DVD player.
	TeacDVD = named("Teac DVD")
)

// SplitRawCode breaks a raw NEC code into address and command, checking
// the inverted command byte.
func SplitRawCode(data uint32) (valid bool, address uint16, command byte) {
	addrLow := byte(data & 0xff)
	addrHigh := byte((data & 0xff00) >> 8)
	command = byte((data & 0xff0000) >> 16)
	invCmd := byte((data & 0xff000000) >> 24)
	address = MakeAddress(addrLow, addrHigh)
	return command == ^invCmd, address, command
}

// MakeRawCode assembles a raw NEC code, LSB to MSB:
// address low, address high, command, inverted command.
func MakeRawCode(address uint16, command byte) uint32 {
	addrLow, addrHigh := SplitAddress(address)
	return uint32(^command)<<24 | uint32(command)<<16 | uint32(addrHigh)<<8 | uint32(addrLow)
}

// SplitAddress splits an address into low and high bytes. An 8-bit
// address is sent with its inverse as the high byte.
func SplitAddress(address uint16) (addrLow, addrHigh byte) {
	addrLow = byte(address & 0xff)
	addrHigh = byte((address & 0xff00) >> 8)
	if addrHigh == 0 {
		addrHigh = ^addrLow
	}
	return addrLow, addrHigh
}

// MakeAddress is the inverse of SplitAddress. A high byte that is the
// inverse of the low byte marks an 8-bit address.
func MakeAddress(addrLow, addrHigh byte) uint16 {
	if addrHigh == ^addrLow {
		return uint16(addrLow)
	}
	return uint16(addrHigh)<<8 | uint16(addrLow)
}

// MakeTeacCode packs a Teac command. The low byte is always zero.
func MakeTeacCode(device, subDevice, code uint8) uint32 {
	return uint32(device)<<24 | uint32(subDevice)<<16 | uint32(code)<<8
}

// Frame is one NEC-family command ready to send.
type Frame struct {
	Descriptor *irremote.Descriptor
	Code       uint32
}

// MarshalFrame implements irremote.FrameMarshaller.
func (f Frame) MarshalFrame() []irremote.Interval {
	return irremote.Packet(f.Descriptor, f.Code, 0)
}
