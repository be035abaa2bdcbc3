package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparques/irremote/config"
)

func screen(columns int16) Grid {
	return Grid{
		Width:     config.DisplayWidth,
		Height:    config.DisplayHeight,
		Top:       16,
		Columns:   columns,
		RowHeight: 44,
		Gap:       6,
	}
}

func TestCell(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		columns int16
		n       int
		want    Rect
		err     error
	}{
		{name: "first", columns: 2, n: 0, want: Rect{X: 6, Y: 22, W: 111, H: 44}},
		{name: "second column", columns: 2, n: 1, want: Rect{X: 123, Y: 22, W: 111, H: 44}},
		{name: "last row that fits", columns: 2, n: 11, want: Rect{X: 123, Y: 272, W: 111, H: 44}},
		{name: "below the screen", columns: 2, n: 12, err: ErrOverflow},
		{name: "three columns", columns: 3, n: 13, want: Rect{X: 84, Y: 222, W: 72, H: 44}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r, err := screen(tt.columns).Cell(tt.n)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, r)
			assert.LessOrEqual(t, r.Y+r.H, int16(config.DisplayHeight))
		})
	}
}

func TestCapacity(t *testing.T) {
	t.Parallel()

	for _, columns := range []int16{1, 2, 3} {
		g := screen(columns)
		n := g.Capacity()
		_, err := g.Cell(n - 1)
		assert.NoError(t, err, "columns %d", columns)
		_, err = g.Cell(n)
		assert.ErrorIs(t, err, ErrOverflow, "columns %d", columns)
	}
	assert.Equal(t, 12, screen(2).Capacity())
}

func TestContains(t *testing.T) {
	t.Parallel()

	r := Rect{X: 10, Y: 20, W: 30, H: 40}
	assert.True(t, r.Contains(10, 20))
	assert.True(t, r.Contains(40, 60))
	assert.False(t, r.Contains(9, 20))
	assert.False(t, r.Contains(10, 61))
}
