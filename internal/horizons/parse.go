package horizons

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Ephemeris rows sit between these markers inside the result text.
const (
	startMarker = "$$SOE"
	endMarker   = "$$EOE"
)

var (
	ErrMissingStartMarker = errors.New("missing $$SOE marker")
	ErrMissingEndMarker   = errors.New("missing $$EOE marker")
	ErrMarkersReversed    = errors.New("$$EOE occurs before $$SOE")
)

// parseVectorTable extracts the first parseable position row from a Horizons
// result payload. command is only used to label errors.
func parseVectorTable(result, command string) (Vector3, error) {
	lines, err := tableLines(result)
	if err != nil {
		return Vector3{}, err
	}
	for _, line := range lines {
		if v, err := parseVectorRow(line); err == nil {
			return v, nil
		}
	}
	return Vector3{}, fmt.Errorf("no parseable vector row for body %s", command)
}

// tableLines returns the trimmed non-empty lines between the SOE/EOE markers.
func tableLines(result string) ([]string, error) {
	so := strings.Index(result, startMarker)
	if so < 0 {
		return nil, ErrMissingStartMarker
	}
	eo := strings.Index(result, endMarker)
	if eo < 0 {
		return nil, ErrMissingEndMarker
	}
	if eo <= so {
		return nil, ErrMarkersReversed
	}

	var lines []string
	for _, line := range strings.Split(result[so+len(startMarker):eo], "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// parseVectorRow reads X, Y, Z from the last three populated columns of a
// CSV ephemeris row. Leading columns (Julian date, calendar date) vary in
// count, so the row is anchored at its tail.
func parseVectorRow(row string) (Vector3, error) {
	var cols []string
	for _, col := range strings.Split(row, ",") {
		col = strings.TrimSpace(col)
		if col != "" {
			cols = append(cols, col)
		}
	}
	if len(cols) < 5 {
		return Vector3{}, fmt.Errorf("unexpected CSV row %q", row)
	}

	var v Vector3
	var err error
	if v.X, err = strconv.ParseFloat(cols[len(cols)-3], 64); err != nil {
		return Vector3{}, fmt.Errorf("parse x: %w", err)
	}
	if v.Y, err = strconv.ParseFloat(cols[len(cols)-2], 64); err != nil {
		return Vector3{}, fmt.Errorf("parse y: %w", err)
	}
	if v.Z, err = strconv.ParseFloat(cols[len(cols)-1], 64); err != nil {
		return Vector3{}, fmt.Errorf("parse z: %w", err)
	}
	return v, nil
}
