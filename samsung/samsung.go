// samsung implements the Samsung DVD split-field protocol.
//
// IRP: {38k,500}<1,-1|1,-3>(9,-9,D:8,S:8,1,-9,E:4,F:8,-68u,~F:8,1,-118)+
//
// A packet is a 16-bit device word, a middle stop pulse, then a 20-bit
// code word holding a 4-bit extension, the function byte and its
// complement. Bits are sent LSB first.
package samsung

import (
	"errors"

	"github.com/sparques/irremote"
)

const (
	carrierHz = 38_000
	unit      = 500
)

// Fails to compile if the carrier cannot be generated.
const _ uint = irremote.MaxCarrierErrorPermille -
	(irremote.CarrierClock%(2*carrierHz))*1000/(2*(irremote.CarrierClock/(2*carrierHz))*carrierHz)

var (
	// ErrComplement is returned when a code's check byte is not the
	// complement of its function byte.
	ErrComplement = errors.New("samsung: function check byte mismatch")
	// ErrFrameAlloc is returned when an attempt to unmarshal to a nil Frame is done--the frame must be allocated ahead of time
	ErrFrameAlloc = errors.New("samsung: tried to unmarshal to unallocated frame")
)

// DVD is the Samsung DVD player. A held button resends the whole packet.
var DVD = irremote.Descriptor{
	Name:    "Samsung DVD",
	Family:  irremote.SplitField,
	Carrier: carrierHz,

	ZeroMark:  unit,
	ZeroSpace: unit,
	OneMark:   unit,
	OneSpace:  3 * unit,

	StartMark:  9 * unit,
	StartSpace: 9 * unit,

	RepeatPeriod: 120_000,
	RepeatMark:   9 * unit,
	RepeatSpace:  9 * unit,

	PacketBits:    16 + 20,
	MiddleStopBit: 16,
	Repeats:       1,
}

// Device is the 16-bit device word: device byte then sub-device byte.
type Device uint16

const (
	DeviceDVD Device = 0x0020
)

// Code is the 20-bit second field: E:4, F:8, ~F:8.
type Code uint32

// MakeCode builds a code from its extension nibble and function byte.
func MakeCode(ext, fn uint8) Code {
	return Code(uint32(ext&0xF) | uint32(fn)<<4 | uint32(^fn)<<12)
}

// Split returns the extension nibble and function byte.
func (c Code) Split() (ext, fn uint8) {
	return uint8(c & 0xF), uint8(c >> 4)
}

// Valid reports whether the check byte is the complement of the function.
func (c Code) Valid() bool {
	_, fn := c.Split()
	return uint8(c>>12) == ^fn && c>>20 == 0
}

// Frame is one Samsung command.
type Frame struct {
	Device Device
	Code   Code
}

// Data returns the two words passed to irremote.Engine.Send.
func (f Frame) Data() (data1, data2 uint32) {
	return uint32(f.Device), uint32(f.Code)
}

// MarshalFrame implements irremote.FrameMarshaller.
func (f Frame) MarshalFrame() []irremote.Interval {
	data1, data2 := f.Data()
	return irremote.Packet(&DVD, data1, data2)
}

// UnmarshalFrame decodes the intervals of one packet into f.
func (f *Frame) UnmarshalFrame(intervals []irremote.Interval) error {
	if f == nil {
		return ErrFrameAlloc
	}
	data1, data2, _, err := irremote.Decode(&DVD, intervals)
	if err != nil {
		return err
	}
	f.Device = Device(data1)
	f.Code = Code(data2)
	if !f.Code.Valid() {
		return ErrComplement
	}
	return nil
}
