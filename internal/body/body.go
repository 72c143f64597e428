package body

// Body identifies one of the nine catalog entries. The set is closed; new
// values must extend the metas table below in the same order.
type Body int

const (
	Sun Body = iota
	Mercury
	Venus
	Earth
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune

	bodyCount
)

// Meta holds the fixed display and lookup metadata for a body.
type Meta struct {
	Name       string
	HorizonsID string  // COMMAND value for the Horizons API
	Glyph      rune    // plain ASCII marker
	Symbol     rune    // astronomical symbol for capable terminals
	Color      string  // ANSI color for lipgloss
	OrbitAU    float64 // nominal circular orbit radius; 0 for the Sun
}

var metas = [bodyCount]Meta{
	Sun:     {Name: "Sun", HorizonsID: "10", Glyph: '@', Symbol: '☉', Color: "3", OrbitAU: 0},
	Mercury: {Name: "Mercury", HorizonsID: "199", Glyph: 'm', Symbol: '☿', Color: "13", OrbitAU: 0.387098},
	Venus:   {Name: "Venus", HorizonsID: "299", Glyph: 'v', Symbol: '♀', Color: "11", OrbitAU: 0.723332},
	Earth:   {Name: "Earth", HorizonsID: "399", Glyph: 'E', Symbol: '♁', Color: "12", OrbitAU: 1.000000},
	Mars:    {Name: "Mars", HorizonsID: "499", Glyph: 'M', Symbol: '♂', Color: "1", OrbitAU: 1.523679},
	Jupiter: {Name: "Jupiter", HorizonsID: "599", Glyph: 'J', Symbol: '♃', Color: "9", OrbitAU: 5.203800},
	Saturn:  {Name: "Saturn", HorizonsID: "699", Glyph: 'S', Symbol: '♄', Color: "11", OrbitAU: 9.537070},
	Uranus:  {Name: "Uranus", HorizonsID: "799", Glyph: 'U', Symbol: '♅', Color: "6", OrbitAU: 19.19126},
	Neptune: {Name: "Neptune", HorizonsID: "899", Glyph: 'N', Symbol: '♆', Color: "4", OrbitAU: 30.06896},
}

// Meta returns the catalog entry for b.
func (b Body) Meta() Meta {
	if b < 0 || b >= bodyCount {
		return Meta{Name: "?", Glyph: '?', Symbol: '?', Color: "7"}
	}
	return metas[b]
}

// String returns the body's display name.
func (b Body) String() string { return b.Meta().Name }

// Icon selects between the two marker sets.
func (m Meta) Icon(symbols bool) rune {
	if symbols {
		return m.Symbol
	}
	return m.Glyph
}

// HasOrbit reports whether the body has a nominal orbit ring to draw.
func (m Meta) HasOrbit() bool { return m.OrbitAU > 0 }

// All returns every catalog body, Sun first.
func All() []Body {
	out := make([]Body, bodyCount)
	for i := range out {
		out[i] = Body(i)
	}
	return out
}

// Planets returns the catalog bodies that orbit the Sun, innermost first.
func Planets() []Body {
	return All()[1:]
}
