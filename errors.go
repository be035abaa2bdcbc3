package irremote

// error definitions
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrNoCarrier       = Error("carrier frequency not set")
	ErrCarrier         = Error("carrier cannot be generated within tolerance")
	ErrBitTiming       = Error("bit timing has zero mark or space")
	ErrLeader          = Error("leader has zero mark")
	ErrMiddleStop      = Error("middle stop bit beyond packet")
	ErrPacketLength    = Error("packet longer than the data words")
	ErrVariableLength  = Error("only pulse-length packets may take their length from a tag")
	ErrRepeats         = Error("repeat count is zero")
	ErrFamily          = Error("unknown protocol family")
	ErrLengthTag       = Error("length must be 12, 15 or 20 bits")
	ErrPayload         = Error("payload overlaps the length tag")
	ErrShortPacket     = Error("packet ended before all bits were decoded")
	ErrUnexpectedPulse = Error("interval does not match the protocol timing")
)
