package render

import "math"

// marginFactor leaves headroom inside the panel so the focus orbit's ring
// does not touch the border.
const marginFactor = 0.45

// minFocusAU floors the focus radius so scale derivation cannot blow up.
const minFocusAU = 0.1

// Transform maps heliocentric AU coordinates onto grid cells. It is a flat
// top-down projection of the XY ecliptic plane; Z is ignored.
type Transform struct {
	cx    int
	cy    int
	scale float64
}

// NewTransform derives the projection for a grid of the given size, fitting
// the focus orbit radius to the panel and applying the zoom factor. Scale
// follows the short axis so nothing clips on one axis while the other has
// slack.
func NewTransform(width, height int, focusAU, zoom float64) Transform {
	short := width
	if height < short {
		short = height
	}
	base := float64(short) * marginFactor / math.Max(focusAU, minFocusAU)
	return Transform{
		cx:    width / 2,
		cy:    height / 2,
		scale: base * zoom,
	}
}

// Scale returns cells per AU.
func (t Transform) Scale() float64 { return t.scale }

// Center returns the grid cell of the heliocentric origin.
func (t Transform) Center() (int, int) { return t.cx, t.cy }

// Cell projects an AU position to a grid cell. Screen rows grow downward,
// so Y is inverted. The result may be outside the grid; bounds are enforced
// by Grid.Put, never here.
func (t Transform) Cell(x, y float64) (int, int) {
	sx := t.cx + int(math.Round(x*t.scale))
	sy := t.cy - int(math.Round(y*t.scale))
	return sx, sy
}
