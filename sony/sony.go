// Package sony implements the Sony SIRC protocol in its 12, 15 and 20 bit
// forms.
//
// IRP: {40k,600}<1,-1|2,-1>(4,-1,F:7,D:5,^45m)+ (12 bit; 15 bit uses D:8,
// 20 bit D:5,E:8)
//
// Bits are coded in the mark length and sent LSB first, command first.
// There is no stop pulse.
//
// A Code carries its packet length in its top two bits so that code tables
// stay plain constants. Command is the same information as a record.
package sony

import (
	"errors"

	"github.com/sparques/irremote"
)

const (
	carrierHz = 40_000
	unit      = 600
)

// Fails to compile if the carrier cannot be generated.
const _ uint = irremote.MaxCarrierErrorPermille -
	(irremote.CarrierClock%(2*carrierHz))*1000/(2*(irremote.CarrierClock/(2*carrierHz))*carrierHz)

// TV is a Sony television. The packet length comes from each Code.
var TV = irremote.Descriptor{
	Name:    "Sony TV",
	Family:  irremote.PulseLength,
	Carrier: carrierHz,

	ZeroMark:  unit,
	ZeroSpace: unit,
	OneMark:   2 * unit,
	OneSpace:  unit,

	StartMark:  4 * unit,
	StartSpace: unit,

	RepeatPeriod: 50_000,
	RepeatMark:   4 * unit,
	RepeatSpace:  unit,

	Repeats: 3,
}

var (
	ErrCommand = errors.New("sony: command does not fit in 7 bits")
	ErrAddress = errors.New("sony: address does not fit the packet length")
)

const (
	tag12 = irremote.LengthTag12
	tag15 = irremote.LengthTag15
	tag20 = irremote.LengthTag20

	commandBits = 7
)

// Code is a command, address and length tag packed as
// length<<30 | address<<7 | command.
type Code uint32

// Length returns the packet length in bits, or 0 for an invalid tag.
func (c Code) Length() uint8 {
	bits, _ := irremote.SplitLengthTag(uint32(c))
	return bits
}

// Unpack returns c as a Command.
func (c Code) Unpack() Command {
	bits, payload := irremote.SplitLengthTag(uint32(c))
	return Command{
		Length:  bits,
		Code:    uint8(payload & (1<<commandBits - 1)),
		Address: uint16(payload >> commandBits),
	}
}

// MarshalFrame implements irremote.FrameMarshaller.
func (c Code) MarshalFrame() []irremote.Interval {
	return irremote.Packet(&TV, uint32(c), 0)
}

// Command is a SIRC command as separate fields.
type Command struct {
	// Length is 12, 15 or 20.
	Length uint8
	// Code is the 7-bit function.
	Code uint8
	// Address is 5 bits for 12-bit packets, 8 bits for 15-bit packets and
	// 13 bits (5-bit device, 8-bit extension) for 20-bit packets.
	Address uint16
}

// Pack returns c as a length tagged Code.
func (c Command) Pack() (Code, error) {
	if c.Code >= 1<<commandBits {
		return 0, ErrCommand
	}
	if c.Length > commandBits && c.Address >= 1<<(c.Length-commandBits) {
		return 0, ErrAddress
	}
	tagged, err := irremote.JoinLengthTag(c.Length, uint32(c.Code)|uint32(c.Address)<<commandBits)
	if err != nil {
		return 0, err
	}
	return Code(tagged), nil
}

// Device addresses.
const (
	AddressTV            = 1
	AddressVCR1          = 2
	AddressTeletext      = 3
	AddressWidescreen    = 4
	AddressLaserDisk     = 6
	AddressVCR2          = 7
	AddressVCR3          = 11
	AddressSurroundSound = 12
	AddressCassette      = 16
	AddressCDPlayer      = 17
	AddressEqualizer     = 18
	AddressDVD           = 26
)
