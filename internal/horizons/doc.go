// Package horizons provides an HTTP client for the JPL Horizons ephemeris
// API.
//
// # Overview
//
// Horizons answers a vector-ephemeris query with a JSON envelope whose
// "result" field is a plain-text report. The actual data rows sit between
// $$SOE and $$EOE markers as CSV; everything around them is commentary.
// This package builds the outbound query, fetches the envelope, and digs
// the (x, y, z) triple out of the first parseable row.
//
// # Client Usage
//
//	client, err := horizons.NewClient("")
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	now := time.Now().UTC()
//	vec, err := client.FetchVector(ctx, "499", now, now.Add(time.Minute))
//	if err != nil {
//		log.Printf("mars fetch failed: %v", err)
//	}
//
// The COMMAND id numbering is Horizons' own: "10" is the Sun, "199"-"899"
// are Mercury through Neptune. internal/body carries the mapping.
//
// # Failure Modes
//
// Every failure is returned as an error and scoped to the one body being
// fetched: transport errors, non-2xx statuses, service-level errors in the
// envelope, missing or reversed table markers (ErrMissingStartMarker,
// ErrMissingEndMarker, ErrMarkersReversed), and unparseable rows. Callers
// are expected to keep the previous position for that body and move on.
package horizons
