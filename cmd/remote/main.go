//go:build tinygo

// Command remote is the firmware of a touch screen universal remote. The
// main page runs the watch/off sequences; the other pages send single
// commands.
package main

import (
	"log"
	"machine"
	"os"
	"time"

	"github.com/sparques/irremote"
	"github.com/sparques/irremote/config"
	"github.com/sparques/irremote/remote"
	"tinygo.org/x/drivers/ili9341"
	"tinygo.org/x/drivers/xpt2046"
)

//go:generate tinygo flash -target=pico

func main() {
	tx := irremote.NewPWMTimer(config.IRLED)
	engine := irremote.NewEngine(tx, irremote.AfterFuncDelay{})

	r, err := remote.New(engine, remote.WithLogger(log.New(os.Stdout, "", 0)))
	if err != nil {
		println("remote:", err.Error())
		return
	}
	home, err := remote.NewHome(r)
	if err != nil {
		println("home:", err.Error())
		return
	}

	config.DisplaySPI.Configure(machine.SPIConfig{
		Frequency: 40 * machine.MHz,
		SCK:       config.DisplaySCK,
		SDO:       config.DisplaySDO,
		SDI:       config.DisplaySDI,
	})
	display := ili9341.NewSPI(config.DisplaySPI, config.DisplayDC, config.DisplayCS, config.DisplayRST)
	display.Configure(ili9341.Config{})

	touch := xpt2046.New(config.TouchCLK, config.TouchCS, config.TouchDIN, config.TouchDOUT, config.TouchIRQ)
	touch.Configure(&xpt2046.Config{Precision: 10})

	config.ButtonAllOff.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	config.ButtonWatchTV.Configure(machine.PinConfig{Mode: machine.PinInputPullup})

	u := newUI(display, r, home)
	u.show(u.main)

	var wasTouched bool
	var lastAllOff, lastWatchTV = true, true
	ticker := time.NewTicker(20 * time.Millisecond)
	for range ticker.C {
		touched := touch.Touched()
		if touched && !wasTouched {
			p := touch.ReadTouchPoint()
			x := int16(p.X * config.DisplayWidth / 0x10000)
			y := int16(p.Y * config.DisplayHeight / 0x10000)
			u.tap(x, y)
		}
		wasTouched = touched

		// buttons are active low
		allOff := config.ButtonAllOff.Get()
		if !allOff && lastAllOff {
			u.run(home.AllOff, false)
		}
		lastAllOff = allOff

		watchTV := config.ButtonWatchTV.Get()
		if !watchTV && lastWatchTV {
			u.run(home.WatchTV, false)
		}
		lastWatchTV = watchTV
	}
}
