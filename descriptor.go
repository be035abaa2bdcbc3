package irremote

// Family selects how bits are coded and how a packet is framed.
type Family uint8

const (
	// PulseDistance codes a bit in the space after a fixed mark (NEC).
	PulseDistance Family = iota
	// SplitField is PulseDistance with the packet split into two fields by
	// a middle stop pulse (Samsung).
	SplitField
	// PulseLength codes a bit in the mark before a fixed space and has no
	// stop pulse (Sony SIRC).
	PulseLength
)

func (f Family) String() string {
	switch f {
	case PulseDistance:
		return "pulse-distance"
	case SplitField:
		return "split-field"
	case PulseLength:
		return "pulse-length"
	default:
		return "unknown"
	}
}

// Descriptor describes the timing and framing of one protocol. Durations
// are in Ticks.
//
//	<-- Start --> <-- data bits --> [<- middle stop ->] <-- data bits --> <- Stop ->
//
// Descriptors are compiled-in values and are shared read-only.
type Descriptor struct {
	Name    string
	Family  Family
	Carrier Hertz

	ZeroMark  Ticks
	ZeroSpace Ticks
	OneMark   Ticks
	OneSpace  Ticks

	StartMark  Ticks
	StartSpace Ticks

	// RepeatPeriod is the time from the start of one transmission to the
	// start of the next. RepeatMark/RepeatSpace are the leader used by
	// every transmission after the first.
	RepeatPeriod Ticks
	RepeatMark   Ticks
	RepeatSpace  Ticks

	// PacketBits is the number of data bits. Zero means the length is
	// carried in a length tag in data1 (see SplitLengthTag); only
	// PulseLength descriptors, which have no stop pulse, may use it.
	PacketBits uint8
	// MiddleStopBit is the number of bits sent before the middle stop
	// pulse. Zero means no middle stop.
	MiddleStopBit uint8
	// Repeats is the number of transmissions, including the first.
	Repeats uint8
	// FastRepeats sends only leader and stop on transmissions after the
	// first.
	FastRepeats bool
}

// Validate reports whether d can be transmitted. Compiled-in descriptors
// are also checked at compile time; Validate is for descriptors built at
// run time.
func (d *Descriptor) Validate() error {
	switch {
	case d.Family > PulseLength:
		return ErrFamily
	case d.Carrier == 0:
		return ErrNoCarrier
	case CarrierError(d.Carrier) > MaxCarrierErrorPermille:
		return ErrCarrier
	case d.ZeroMark == 0 || d.OneMark == 0 || d.ZeroSpace == 0 || d.OneSpace == 0:
		return ErrBitTiming
	case d.StartMark == 0 || d.RepeatMark == 0:
		return ErrLeader
	case d.Repeats == 0:
		return ErrRepeats
	case d.PacketBits == 0 && d.Family != PulseLength:
		return ErrVariableLength
	}

	if d.MiddleStopBit != 0 {
		if d.MiddleStopBit >= d.PacketBits {
			return ErrMiddleStop
		}
		if d.MiddleStopBit > 32 || d.PacketBits-d.MiddleStopBit > 32 {
			return ErrPacketLength
		}
		return nil
	}
	if d.PacketBits > 32 {
		return ErrPacketLength
	}
	return nil
}

// Length tags live in the top two bits of a variable-length code.
const (
	LengthTagMask = 0xC000_0000
	LengthTag12   = 0x0000_0000
	LengthTag15   = 0x8000_0000
	LengthTag20   = 0x4000_0000
)

// SplitLengthTag separates a tagged code into its bit count and payload.
// An unknown tag yields zero bits.
func SplitLengthTag(code uint32) (bits uint8, payload uint32) {
	payload = code &^ LengthTagMask
	switch code & LengthTagMask {
	case LengthTag12:
		return 12, payload
	case LengthTag15:
		return 15, payload
	case LengthTag20:
		return 20, payload
	}
	return 0, payload
}

// JoinLengthTag tags payload with a 12, 15 or 20 bit length.
func JoinLengthTag(bits uint8, payload uint32) (uint32, error) {
	if payload&LengthTagMask != 0 {
		return 0, ErrPayload
	}
	switch bits {
	case 12:
		return payload | LengthTag12, nil
	case 15:
		return payload | LengthTag15, nil
	case 20:
		return payload | LengthTag20, nil
	}
	return 0, ErrLengthTag
}
