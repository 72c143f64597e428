package horizons

import "math"

// Vector3 is a heliocentric position in astronomical units, ecliptic
// reference plane, X/Y in-plane and Z out of plane.
type Vector3 struct {
	X float64
	Y float64
	Z float64
}

// Radius returns the in-plane distance from the Sun in AU.
func (v Vector3) Radius() float64 {
	return math.Hypot(v.X, v.Y)
}

// envelope mirrors the Horizons JSON response: a text payload carrying the
// ephemeris table, plus an optional service-level error message.
type envelope struct {
	Error  string `json:"error"`
	Result string `json:"result"`
}
