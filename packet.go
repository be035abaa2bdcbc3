package irremote

// recorder is a PulseTimer that stores what it is asked to send.
type recorder struct {
	intervals []Interval
	running   bool
}

func (r *recorder) Configure(_ Hertz, first Interval, _ func()) {
	r.intervals = append(r.intervals[:0], first)
	r.running = true
}

func (r *recorder) SetInterval(iv Interval) {
	r.intervals = append(r.intervals, iv)
}

func (r *recorder) Stop() {
	r.running = false
}

// Packet renders a single transmission of data1 and data2: leader, data
// bits, middle stop and stop pulse. The trailing silence is not included.
func Packet(d *Descriptor, data1, data2 uint32) []Interval {
	rec := &recorder{}
	e := NewEngine(rec, nil)
	e.Send(d, data1, data2, 0, 1)
	for rec.running {
		e.Step()
	}

	out := rec.intervals
	for len(out) > 0 && out[len(out)-1].Mark == 0 {
		out = out[:len(out)-1]
	}
	return out
}

// Decode recovers the data words from the intervals of one packet as
// produced by Packet or an Engine. A bit is a one when its coded half is
// longer than the midpoint of the zero and one timings.
//
// For variable length descriptors (PacketBits == 0) decoding stops at the
// first silent interval or the end of the slice; bits reports how many
// data bits were found.
func Decode(d *Descriptor, intervals []Interval) (data1, data2 uint32, bits int, err error) {
	if len(intervals) == 0 || intervals[0].Mark == 0 {
		return 0, 0, 0, ErrShortPacket
	}
	want := int(d.PacketBits)
	middle := int(d.MiddleStopBit)

	i := 1
	for want == 0 || bits < want {
		if i >= len(intervals) || intervals[i].Mark == 0 {
			if want == 0 {
				break
			}
			return data1, data2, bits, ErrShortPacket
		}
		if middle != 0 && bits == middle {
			// middle stop: skip it once
			if intervals[i] != middleStop(d) {
				return data1, data2, bits, ErrUnexpectedPulse
			}
			middle = -middle
			i++
			continue
		}
		one, ok := decodeBit(d, intervals[i])
		if !ok {
			return data1, data2, bits, ErrUnexpectedPulse
		}
		if one {
			switch {
			case middle < 0:
				data2 |= 1 << (bits + middle)
			default:
				data1 |= 1 << bits
			}
		}
		bits++
		i++
	}
	return data1, data2, bits, nil
}
