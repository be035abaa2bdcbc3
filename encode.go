package irremote

// The encoders below run inside the pulse timer's completion interrupt.
// They are table lookups on the descriptor: no allocation, no loops.

// encodeBit returns the interval coding the lowest bit of word.
func encodeBit(d *Descriptor, word uint32) Interval {
	if word&1 == 1 {
		return Interval{d.OneMark, d.OneSpace}
	}
	return Interval{d.ZeroMark, d.ZeroSpace}
}

// leader returns the start pulse. Transmissions after the first use the
// repeat leader.
func leader(d *Descriptor, repeat bool) Interval {
	if repeat {
		return Interval{d.RepeatMark, d.RepeatSpace}
	}
	return Interval{d.StartMark, d.StartSpace}
}

// middleStop separates the two fields of a SplitField packet: a one-bit
// mark followed by a leader-length space.
func middleStop(d *Descriptor) Interval {
	return Interval{d.OneMark, d.StartSpace}
}

// stopPulse terminates a packet with a logic-0 bit time. PulseLength
// packets end on their last data bit.
func stopPulse(d *Descriptor) (Interval, bool) {
	if d.Family == PulseLength {
		return Interval{}, false
	}
	return Interval{d.ZeroMark, d.ZeroSpace}, true
}

// threshold returns the midpoint used to tell a one from a zero, and
// whether the mark (PulseLength) or the space carries the bit.
func threshold(d *Descriptor) (mid Ticks, onMark bool) {
	if d.Family == PulseLength {
		return (d.ZeroMark + d.OneMark) / 2, true
	}
	return (d.ZeroSpace + d.OneSpace) / 2, false
}

// decodeBit is the inverse of encodeBit under the threshold rules. It
// returns false when the interval is not a data bit of d.
func decodeBit(d *Descriptor, iv Interval) (one bool, ok bool) {
	mid, onMark := threshold(d)
	if onMark {
		if iv.Space == 0 || iv.Mark == 0 {
			return false, false
		}
		return iv.Mark > mid, true
	}
	if iv.Mark == 0 || iv.Space == 0 {
		return false, false
	}
	return iv.Space > mid, true
}
