package geometry

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestGenerateTurnsOutermost(t *testing.T) {
	// Turn 1 always spans the full outer rectangle, regardless of the
	// other parameters.
	specs := []CoilSpec{
		{OuterWidth: 10, OuterHeight: 6, TraceWidth: 0.15, Gap: 0.15, Turns: 1},
		{OuterWidth: 10, OuterHeight: 6, TraceWidth: 0.15, Gap: 0.15, Turns: 5},
		{OuterWidth: 42, OuterHeight: 17, TraceWidth: 0.5, Gap: 0, Turns: 3},
	}
	for _, spec := range specs {
		turns, err := GenerateTurns(spec)
		if err != nil {
			t.Fatalf("GenerateTurns(%+v): %v", spec, err)
		}
		want := Turn{
			{0, 0},
			{0, spec.OuterHeight},
			{spec.OuterWidth, spec.OuterHeight},
			{spec.OuterWidth, 0},
		}
		if diff := cmp.Diff(want, turns[0], approx); diff != "" {
			t.Errorf("turn 1 mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestGenerateTurnsTwoTurnCoil(t *testing.T) {
	spec := CoilSpec{OuterWidth: 10, OuterHeight: 6, TraceWidth: 0.15, Gap: 0.15, Turns: 2}
	turns, err := GenerateTurns(spec)
	if err != nil {
		t.Fatalf("GenerateTurns: %v", err)
	}
	if len(turns) != 2 {
		t.Fatalf("got %d turns, want 2", len(turns))
	}

	want := []Turn{
		{{0, 0}, {0, 6}, {10, 6}, {10, 0}},
		// i=1, d=0.3: the left-lower corner uses (i-1)*d = 0, the
		// right-lower corner uses i*d = 0.3.
		{{0.3, 0}, {0.3, 5.7}, {9.7, 5.7}, {9.7, 0.3}},
	}
	if diff := cmp.Diff(want, turns, approx); diff != "" {
		t.Errorf("turns mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateTurnsBottomAsymmetry(t *testing.T) {
	// The bottom-left corner of turn t sits exactly one pitch below the
	// bottom-right corner. This gap is what connects consecutive turns.
	spec := CoilSpec{OuterWidth: 20, OuterHeight: 12, TraceWidth: 0.2, Gap: 0.1, Turns: 4}
	turns, err := GenerateTurns(spec)
	if err != nil {
		t.Fatalf("GenerateTurns: %v", err)
	}
	d := spec.Pitch()
	for i, turn := range turns[1:] {
		gap := turn[3].Y - turn[0].Y
		if diff := cmp.Diff(d, gap, approx); diff != "" {
			t.Errorf("turn %d: bottom corner gap = %g, want pitch %g", i+2, gap, d)
		}
	}
}

func TestGenerateTurnsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		spec CoilSpec
	}{
		{"turns collapse", CoilSpec{OuterWidth: 1, OuterHeight: 1, TraceWidth: 1, Gap: 1, Turns: 5}},
		{"zero turns", CoilSpec{OuterWidth: 10, OuterHeight: 6, TraceWidth: 0.15, Gap: 0.15, Turns: 0}},
		{"negative width", CoilSpec{OuterWidth: 10, OuterHeight: 6, TraceWidth: -0.1, Gap: 0.15, Turns: 2}},
		{"zero width", CoilSpec{OuterWidth: 10, OuterHeight: 6, TraceWidth: 0, Gap: 0.15, Turns: 2}},
		{"negative gap", CoilSpec{OuterWidth: 10, OuterHeight: 6, TraceWidth: 0.15, Gap: -0.15, Turns: 2}},
		{"zero outer extent", CoilSpec{OuterWidth: 0, OuterHeight: 6, TraceWidth: 0.15, Gap: 0.15, Turns: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateTurns(tt.spec)
			var cfgErr *InvalidConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("GenerateTurns(%+v) = %v, want *InvalidConfigError", tt.spec, err)
			}
		})
	}
}

func TestValidateAcceptsTightFit(t *testing.T) {
	// The innermost turn keeps strictly positive extent, so this is
	// still a valid configuration.
	spec := CoilSpec{OuterWidth: 10, OuterHeight: 10, TraceWidth: 1, Gap: 1, Turns: 3}
	if err := spec.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}
