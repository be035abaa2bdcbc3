//go:build tinygo

package main

import (
	"image/color"

	"github.com/sparques/irremote/config"
	"github.com/sparques/irremote/internal/layout"
	"github.com/sparques/irremote/remote"
	"tinygo.org/x/drivers/ili9341"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	black = color.RGBA{0, 0, 0, 255}
	red   = color.RGBA{200, 0, 0, 255}
	blue  = color.RGBA{0, 0, 200, 255}
)

const (
	titleHeight = 16
	buttonH     = 44
	gap         = 6
)

func grid(columns int16) layout.Grid {
	return layout.Grid{
		Width:     config.DisplayWidth,
		Height:    config.DisplayHeight,
		Top:       titleHeight,
		Columns:   columns,
		RowHeight: buttonH,
		Gap:       gap,
	}
}

type button struct {
	layout.Rect
	label  string
	action remote.Action
	// forced buttons ignore the tracked power state
	forced bool
	bg     color.RGBA
}

type page struct {
	title   string
	grid    layout.Grid
	buttons []*button
}

func newPage(title string, columns int16) *page {
	return &page{title: title, grid: grid(columns)}
}

// add lays buttons out left to right, top to bottom. A button that does
// not fit on the screen is dropped.
func (p *page) add(label string, a remote.Action, forced bool, bg color.RGBA) {
	r, err := p.grid.Cell(len(p.buttons))
	if err != nil {
		println("page", p.title, "button", label, err.Error())
		return
	}
	p.buttons = append(p.buttons, &button{
		Rect:   r,
		label:  label,
		action: a,
		forced: forced,
		bg:     bg,
	})
}

// showPage is a button action that switches pages.
type showPage struct {
	u *ui
	p **page
}

func (s showPage) Title() string { return "Show " + (*s.p).title }

func (s showPage) Do(*remote.Remote) error {
	s.u.show(*s.p)
	return nil
}

type ui struct {
	display *ili9341.Device
	r       *remote.Remote
	current *page

	main, help, tv *page
}

func newUI(display *ili9341.Device, r *remote.Remote, h *remote.Home) *ui {
	u := &ui{display: display, r: r}
	u.main = newPage("Main", 2)
	u.help = newPage("Fix Each", 2)
	// keypad: 14 buttons do not fit in two columns
	u.tv = newPage("Sony TV", 3)

	u.main.add("Watch Sony TV", h.WatchTV, false, red)
	u.main.add("Watch Teac PVR", h.WatchPVR, false, red)
	u.main.add("Watch Laser DVD", h.WatchLaserDVD, false, red)
	u.main.add("Watch Samsung DVD", h.WatchSamsungDVD, false, red)
	u.main.add("All Off", h.AllOff, false, red)
	u.main.add("Sony TV", showPage{u, &u.tv}, false, blue)
	u.main.add("Help", showPage{u, &u.help}, false, blue)

	for _, a := range h.FixEach {
		u.help.add(a.Title(), a, true, red)
	}
	u.help.add("Main", showPage{u, &u.main}, false, blue)

	tv, _ := r.Device(remote.SonyTV)
	for _, n := range []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0"} {
		u.tv.add(n, &remote.IRAction{Label: "Num " + n, Device: tv, Command: "num" + n, Delay: remote.DefaultDelay}, false, red)
	}
	u.tv.add("Vol+", h.TVVolumeUp, false, red)
	u.tv.add("Vol-", h.TVVolumeDown, false, red)
	u.tv.add("Mute", h.TVMute, false, red)
	u.tv.add("Main", showPage{u, &u.main}, false, blue)
	return u
}

func (u *ui) show(p *page) {
	u.current = p
	u.display.FillScreen(black)
	tinyfont.WriteLine(u.display, &proggy.TinySZ8pt7b, gap, titleHeight-4, p.title, white)
	for _, b := range p.buttons {
		u.display.FillRectangle(b.X, b.Y, b.W, b.H, b.bg)
		tinyfont.WriteLine(u.display, &proggy.TinySZ8pt7b, b.X+gap, b.Y+b.H/2+4, b.label, white)
	}
}

func (u *ui) tap(x, y int16) {
	for _, b := range u.current.buttons {
		if b.Contains(x, y) {
			u.run(b.action, b.forced)
			return
		}
	}
}

func (u *ui) run(a remote.Action, forced bool) {
	var err error
	if forced {
		err = u.r.Force(a)
	} else {
		err = u.r.Run(a)
	}
	if err != nil {
		println("action", a.Title(), "failed:", err.Error())
	}
}
