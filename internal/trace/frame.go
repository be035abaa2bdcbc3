// Package trace exports rendered IR transmissions as JSON frames of
// [mark, space] pairs, the format IR signal collectors exchange.
package trace

import (
	"errors"
	"fmt"

	"github.com/sparques/irremote"
)

// DefaultResolution is the tick count of one frame unit.
const DefaultResolution = 1

var ErrResolution = errors.New("trace: resolution must be positive")

// Frame is one transmission. Each entry of Data is a [mark, space] pair in
// units of Resolution microseconds.
type Frame struct {
	Resolution int     `json:"resolution"`
	Data       [][]int `json:"data"`
}

// TaggedFrame is a Frame with the id of whoever produced it.
type TaggedFrame struct {
	CollectorID string `json:"collectorId,omitempty"`
	Protocol    string `json:"protocol,omitempty"`
	Frame       Frame  `json:"frame"`
}

// NewFrame converts intervals to a frame, rounding each duration to the
// nearest multiple of resolution.
func NewFrame(intervals []irremote.Interval, resolution int) (Frame, error) {
	if resolution <= 0 {
		return Frame{}, ErrResolution
	}
	f := Frame{
		Resolution: resolution,
		Data:       make([][]int, len(intervals)),
	}
	for i, iv := range intervals {
		f.Data[i] = []int{round(iv.Mark, resolution), round(iv.Space, resolution)}
	}
	return f, nil
}

func round(t irremote.Ticks, resolution int) int {
	return (int(t) + resolution/2) / resolution
}

// Intervals converts f back to intervals.
func (f Frame) Intervals() ([]irremote.Interval, error) {
	if f.Resolution <= 0 {
		return nil, ErrResolution
	}
	out := make([]irremote.Interval, len(f.Data))
	for i, pair := range f.Data {
		if len(pair) != 2 || pair[0] < 0 || pair[1] < 0 {
			return nil, fmt.Errorf("trace: bad pair %d: %v", i, pair)
		}
		out[i] = irremote.Interval{
			Mark:  irremote.Ticks(pair[0] * f.Resolution),
			Space: irremote.Ticks(pair[1] * f.Resolution),
		}
	}
	return out, nil
}

// Header returns the leader.
func (f Frame) Header() (irremote.Interval, error) {
	if len(f.Data) < 1 {
		return irremote.Interval{}, errors.New("trace: frame has no header")
	}
	ivs, err := Frame{Resolution: f.Resolution, Data: f.Data[:1]}.Intervals()
	if err != nil {
		return irremote.Interval{}, err
	}
	return ivs[0], nil
}
