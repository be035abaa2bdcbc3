// Package layout places touch buttons on a fixed size screen.
package layout

import "errors"

var ErrOverflow = errors.New("layout: button below the bottom of the screen")

// Rect is a button's area in screen pixels.
type Rect struct {
	X, Y, W, H int16
}

// Contains reports whether (x, y) falls inside r, edges included.
func (r Rect) Contains(x, y int16) bool {
	return r.X <= x && x <= r.X+r.W && r.Y <= y && y <= r.Y+r.H
}

// Grid lays cells out left to right, top to bottom, below a title bar.
type Grid struct {
	Width, Height int16
	Top           int16 // height of the title bar
	Columns       int16
	RowHeight     int16
	Gap           int16
}

// Cell returns the area of the n-th cell, or ErrOverflow when it does not
// fit above the bottom edge.
func (g Grid) Cell(n int) (Rect, error) {
	i := int16(n)
	w := (g.Width - g.Gap*(g.Columns+1)) / g.Columns
	r := Rect{
		X: g.Gap + (i%g.Columns)*(w+g.Gap),
		Y: g.Top + g.Gap + (i/g.Columns)*(g.RowHeight+g.Gap),
		W: w,
		H: g.RowHeight,
	}
	if r.Y+r.H > g.Height {
		return Rect{}, ErrOverflow
	}
	return r, nil
}

// Capacity returns how many cells fit on the screen.
func (g Grid) Capacity() int {
	rows := (g.Height - g.Top - g.Gap) / (g.RowHeight + g.Gap)
	// the last row needs no gap below it
	if g.Top+g.Gap+rows*(g.RowHeight+g.Gap)+g.RowHeight <= g.Height {
		rows++
	}
	return int(rows * g.Columns)
}
