// Package cheapo sends the codes of cheap, unknown brand IR remote controls,
// the kind that come with LED light strips.
//
// They speak NEC with an 8-bit address of zero. The button codes are
// usually in order, starting from zero and increasing, left to right, top
// to bottom.
package cheapo

import (
	"strconv"

	"github.com/sparques/irremote"
	"github.com/sparques/irremote/nec"
)

// Buttons is the number of keys on the common 24-key strip remote.
const Buttons = 24

// Address is the NEC address the remotes send.
const Address = 0x00

// LEDStrip is the strip controller. Held buttons send NEC repeat codes.
var LEDStrip = func() irremote.Descriptor {
	d := nec.LaserDVD
	d.Name = "LED strip"
	return d
}()

// Button returns the raw code of the n-th button, counting from zero.
func Button(n byte) uint32 {
	return nec.MakeRawCode(Address, n)
}

// Codes returns the button codes named "button_0" to "button_23".
func Codes() map[string]uint32 {
	out := make(map[string]uint32, Buttons)
	for n := 0; n < Buttons; n++ {
		out["button_"+strconv.Itoa(n)] = Button(byte(n))
	}
	return out
}
