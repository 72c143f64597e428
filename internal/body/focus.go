package body

// FocusLevel is one fit-to-orbit choice for the map view: the named orbit is
// scaled to fill the panel and only rings at or inside it are drawn.
type FocusLevel struct {
	Name     string
	RadiusAU float64
}

// Focus levels run innermost to outermost; the focus index selects one.
var focusLevels = []FocusLevel{
	{Name: "Earth", RadiusAU: metas[Earth].OrbitAU},
	{Name: "Mars", RadiusAU: metas[Mars].OrbitAU},
	{Name: "Jupiter", RadiusAU: metas[Jupiter].OrbitAU},
	{Name: "Saturn", RadiusAU: metas[Saturn].OrbitAU},
	{Name: "Uranus", RadiusAU: metas[Uranus].OrbitAU},
	{Name: "Neptune", RadiusAU: metas[Neptune].OrbitAU},
}

// FocusLevelAt returns the focus level for index i, clamping i into range.
func FocusLevelAt(i int) FocusLevel {
	return focusLevels[ClampFocus(i)]
}

// ClampFocus restricts a focus index to the valid range.
func ClampFocus(i int) int {
	if i < 0 {
		return 0
	}
	if i >= len(focusLevels) {
		return len(focusLevels) - 1
	}
	return i
}

// FocusLevelCount returns the number of focus levels.
func FocusLevelCount() int { return len(focusLevels) }

// DefaultFocus is the startup focus index: the outermost orbit, so the whole
// system is visible on first draw.
func DefaultFocus() int { return len(focusLevels) - 1 }
