//go:build rp2040

package config

import "machine"

var (
	IRLED = machine.GP20

	// ILI9341 on SPI1.
	DisplaySPI = machine.SPI1
	DisplaySCK = machine.GP10
	DisplaySDO = machine.GP11
	DisplaySDI = machine.GP12
	DisplayCS  = machine.GP13
	DisplayDC  = machine.GP14
	DisplayRST = machine.GP15

	// XPT2046, bit banged.
	TouchCLK  = machine.GP2
	TouchCS   = machine.GP3
	TouchDIN  = machine.GP4
	TouchDOUT = machine.GP5
	TouchIRQ  = machine.GP6

	ButtonAllOff  = machine.GP21
	ButtonWatchTV = machine.GP22
)
