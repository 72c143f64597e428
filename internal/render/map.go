package render

import (
	"math"

	"github.com/rvail/orrery/internal/body"
	"github.com/rvail/orrery/internal/state"
)

const (
	ringGlyph = '·'
	ringColor = "8" // dim gray

	// Angular sampling density bounds: enough steps that large rings stay
	// closed, few enough that small rings are not oversampled.
	minRingSteps = 64
	maxRingSteps = 720
)

// Compose rasterizes one frame: orbit rings up to the focus level, the Sun
// at the center, and every planet with a known position. The snapshot is
// read-only; all overlap resolution happens inside Grid.Put.
func Compose(snap state.Snapshot, width, height int) *Grid {
	g := NewGrid(width, height)

	focus := snap.FocusLevel()
	tr := NewTransform(g.Width(), g.Height(), focus.RadiusAU, snap.Zoom)
	cx, cy := tr.Center()

	// Rings are gated by focus; planet markers are not. Zooming the focus
	// out reveals more rings without ever hiding an in-view planet.
	for _, b := range body.Planets() {
		m := b.Meta()
		if m.OrbitAU <= focus.RadiusAU {
			drawRing(g, cx, cy, m.OrbitAU*tr.Scale())
		}
	}

	sun := body.Sun.Meta()
	g.Put(cx, cy, Pixel{
		Glyph:    sun.Icon(snap.Symbols),
		Color:    sun.Color,
		Priority: sunPriority,
	})

	for _, b := range body.Planets() {
		v, ok := snap.Position(b)
		if !ok {
			continue
		}
		m := b.Meta()
		x, y := tr.Cell(v.X, v.Y)
		g.Put(x, y, Pixel{
			Glyph:    m.Icon(snap.Symbols),
			Color:    m.Color,
			Priority: bodyPriority,
		})
	}

	return g
}

// drawRing rasterizes a circle of radius cells around (cx, cy) by angular
// sampling. Radii under one cell are too small to represent and draw
// nothing.
func drawRing(g *Grid, cx, cy int, radius float64) {
	if radius < 1.0 {
		return
	}
	steps := int(math.Min(math.Max(radius*6, minRingSteps), maxRingSteps))
	for i := 0; i < steps; i++ {
		t := float64(i) * 2 * math.Pi / float64(steps)
		x := cx + int(math.Round(math.Cos(t)*radius))
		y := cy - int(math.Round(math.Sin(t)*radius))
		g.Put(x, y, Pixel{Glyph: ringGlyph, Color: ringColor, Priority: ringPriority})
	}
}
