/*
Package hexbug sends the commands of a 6-button, 4-channel HEXBUG BattleBots
remote control.

## Protocol

A 38kHz carrier. Each byte starts with a flag of about 1.75ms of carrier
followed by 9 bits. Bits are coded in the length of the carrier burst:
about 350us is a zero, about 1ms is a one. The gap between bursts is always
about 350us. Bits go out LSB first.

The first 6 bits are the 6 buttons on the controller,

	| Button  | Val |  Hex |
	|^^^^^^^^^|^^^^^|^^^^^^|
	|      Fwd|   1 | 0x01 |
	|     Back|   2 | 0x02 |
	|     Left|   4 | 0x04 |
	|    Right|   8 | 0x08 |
	| LeftWeap|  16 | 0x10 |
	|RightWeap|  32 | 0x20 |

The next two bits are the channel.

	| Ch |  Hex | 2-bit Val |
	^^^^^^^^^^^^^^^^^^^^^^^^^
	|  1 | 0x00 | 0         |
	|  2 | 0x40 | 1         |
	|  3 | 0xC0 | 3         |
	|  4 | 0x80 | 2         |

Yes, channel 3 and 4 seem like they've been swapped.

The final bit sent is an odd parity bit: the total number of 1s is odd.

	PCCUDRLBF

## What the Transmitter Sends

A button press sends the same byte twice, about 6ms apart. On release 10
stop bytes (all button bits zero) are sent about 200ms apart. Toy and
Release describe those two bursts.

## Example

	e := irremote.NewEngine(tx, irremote.AfterFuncDelay{})
	cmd := hexbug.Cmd(hexbug.CmdFwdMask | hexbug.CH2)
	e.Send(&hexbug.Toy, cmd.Data(), 0, 0, 0)
	e.WaitUntilComplete()
	e.Send(&hexbug.Release, hexbug.Cmd(hexbug.CH2).Data(), 0, 0, 0)
*/
package hexbug

import (
	"errors"
	"math/bits"

	"github.com/sparques/irremote"
)

const carrierHz = 38_000

const _ uint = irremote.MaxCarrierErrorPermille -
	(irremote.CarrierClock%(2*carrierHz))*1000/(2*(irremote.CarrierClock/(2*carrierHz))*carrierHz)

const (
	CmdStop          = 0
	CmdFwdMask       = 0b000000001
	CmdBackMask      = 0b000000010
	CmdLeftMask      = 0b000000100
	CmdRightMask     = 0b000001000
	CmdRightWeapMask = 0b000010000
	CmdLeftWeapMask  = 0b000100000
	CmdButtonMask    = 0b000111111

	CmdChannelMask = 0b011000000
	CmdParityMask  = 0b100000000
)

const (
	// Hexbug channel ids; suitable for comparing with cmd and'ed with
	// CmdChannelMask.
	CH1 = 0b000000000
	CH2 = 0b001000000
	CH3 = 0b011000000 // not a mistake, go figure
	CH4 = 0b010000000
)

// Channels maps channel numbers 1-4 to their channel bits.
var Channels = [...]Cmd{1: CH1, 2: CH2, 3: CH3, 4: CH4}

var ErrParity = errors.New("hexbug: parity error")

// Toy is a button press: the byte is sent twice.
var Toy = irremote.Descriptor{
	Name:    "HEXBUG",
	Family:  irremote.PulseLength,
	Carrier: carrierHz,

	ZeroMark:  350,
	ZeroSpace: 350,
	OneMark:   1000,
	OneSpace:  350,

	StartMark:  1750,
	StartSpace: 350,

	RepeatPeriod: 20_000,
	RepeatMark:   1750,
	RepeatSpace:  350,

	PacketBits: 9,
	Repeats:    2,
}

// Release is the burst of stop bytes sent when all buttons are let go.
var Release = func() irremote.Descriptor {
	d := Toy
	d.Name = "HEXBUG release"
	d.RepeatPeriod = 200_000
	d.Repeats = 10
	return d
}()

// Cmd is the 8 button and channel bits of a command.
type Cmd uint16

// Data returns the 9 bits to send: c with the odd parity bit added.
func (c Cmd) Data() uint32 {
	data := uint32(c) &^ CmdParityMask
	if bits.OnesCount32(data)%2 == 0 {
		data |= CmdParityMask
	}
	return data
}

// Channel returns the channel number, 1 to 4.
func (c Cmd) Channel() int {
	for n := 1; n < len(Channels); n++ {
		if c&CmdChannelMask == Channels[n] {
			return n
		}
	}
	return 0
}

// MarshalFrame implements irremote.FrameMarshaller.
func (c Cmd) MarshalFrame() []irremote.Interval {
	return irremote.Packet(&Toy, c.Data(), 0)
}

// UnmarshalFrame decodes a packet and checks its parity.
func UnmarshalFrame(intervals []irremote.Interval) (Cmd, error) {
	data, _, _, err := irremote.Decode(&Toy, intervals)
	if err != nil {
		return 0, err
	}
	if bits.OnesCount32(data)%2 == 0 {
		return 0, ErrParity
	}
	return Cmd(data &^ CmdParityMask), nil
}
