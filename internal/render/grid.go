package render

// Pixel is one drawn cell: a glyph, a lipgloss color, and the priority used
// to resolve overlapping writes.
type Pixel struct {
	Glyph    rune
	Color    string
	Priority int
}

// Draw priorities. Bodies always beat rings; the Sun sits between so a
// planet transiting the center wins the cell.
const (
	ringPriority = 1
	sunPriority  = 10
	bodyPriority = 20
)

// Grid is a frame's character canvas. It is rebuilt from scratch every
// frame; Put is the only mutation path.
type Grid struct {
	width  int
	height int
	cells  []cell
}

type cell struct {
	pixel Pixel
	set   bool
}

// NewGrid allocates an empty grid, flooring both dimensions to 1 so a
// degenerate panel still yields a drawable canvas.
func NewGrid(width, height int) *Grid {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]cell, width*height),
	}
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.height }

// Put writes p at (x, y). Out-of-bounds writes are dropped. An occupied
// cell is overwritten only by a strictly higher priority, so among equal
// priorities the first writer wins.
func (g *Grid) Put(x, y int, p Pixel) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return
	}
	c := &g.cells[y*g.width+x]
	if c.set && p.Priority <= c.pixel.Priority {
		return
	}
	c.pixel = p
	c.set = true
}

// At returns the pixel at (x, y) and whether the cell is occupied.
// Out-of-bounds reads report empty.
func (g *Grid) At(x, y int) (Pixel, bool) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return Pixel{}, false
	}
	c := g.cells[y*g.width+x]
	return c.pixel, c.set
}
