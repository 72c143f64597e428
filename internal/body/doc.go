// Package body is the static catalog of solar-system bodies: display
// metadata, Horizons lookup ids, nominal orbit radii, and the ordered
// fit-to-orbit focus levels. Pure data; nothing here touches the network
// or the terminal.
package body
