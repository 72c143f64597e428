package horizons

import (
	"errors"
	"math"
	"testing"
)

const sampleResult = `
Ephemeris / API_USER ...
*******************************************************************************
JDTDB, Calendar Date (TDB), X, Y, Z,
**************************************
$$SOE
2460000.500000000, A.D. 2023-Feb-25 00:00:00.0000, -8.877634610742433E-01, 4.335694533066170E-01, 1.915376162304863E-04,
$$EOE
*******************************************************************************
`

func TestParseVectorTable_Sample(t *testing.T) {
	v, err := parseVectorTable(sampleResult, "399")
	if err != nil {
		t.Fatalf("parseVectorTable returned error: %v", err)
	}
	if math.Abs(v.X-(-0.8877634610742433)) > 1e-12 {
		t.Fatalf("X = %v", v.X)
	}
	if math.Abs(v.Y-0.433569453306617) > 1e-12 {
		t.Fatalf("Y = %v", v.Y)
	}
	if math.Abs(v.Z-1.915376162304863e-04) > 1e-12 {
		t.Fatalf("Z = %v", v.Z)
	}
}

func TestParseVectorTable_MarkerErrors(t *testing.T) {
	cases := []struct {
		name   string
		result string
		want   error
	}{
		{"no start", "data $$EOE", ErrMissingStartMarker},
		{"no end", "$$SOE data", ErrMissingEndMarker},
		{"reversed", "$$EOE data $$SOE", ErrMarkersReversed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseVectorTable(tc.result, "499")
			if !errors.Is(err, tc.want) {
				t.Fatalf("error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestParseVectorTable_NoParseableRow(t *testing.T) {
	_, err := parseVectorTable("$$SOE\nnot,a,number,row,here,\n$$EOE", "699")
	if err == nil {
		t.Fatal("expected error for unparseable rows")
	}
}

func TestParseVectorRow(t *testing.T) {
	v, err := parseVectorRow("2460000.5, A.D. 2023-Feb-25 00:00:00.0000, 1.5, -2.25, 0.003,")
	if err != nil {
		t.Fatalf("parseVectorRow returned error: %v", err)
	}
	if v.X != 1.5 || v.Y != -2.25 || v.Z != 0.003 {
		t.Fatalf("vector = %#v", v)
	}

	if _, err := parseVectorRow("too,short,row"); err == nil {
		t.Fatal("expected error for short row")
	}
	if _, err := parseVectorRow("a, b, c, d, e, notanumber, 1.0, 2.0"); err == nil {
		// tail anchoring means the last three columns must all parse
		t.Fatal("expected error for non-numeric tail")
	}
}

func TestVector3_Radius(t *testing.T) {
	v := Vector3{X: 3, Y: 4, Z: 100}
	if v.Radius() != 5 {
		t.Fatalf("Radius() = %v, want 5 (Z must be ignored)", v.Radius())
	}
}
