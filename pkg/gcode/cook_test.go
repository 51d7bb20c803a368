package gcode

import (
	"errors"
	"math"
	"testing"

	"github.com/chazu/lignin-slice/pkg/geom"
)

func TestCookMonotonicAndZeroDeltaForTravel(t *testing.T) {
	ext := Extruder{FilamentDiameter: 1.75}
	cmds := []Command{
		RawExtrude2(geom.Point2{X: 0, Y: 0}, geom.Point2{X: 1, Y: 0}, Params{Width: 0.4, Height: 0.2}),
		Move2(geom.Point2{X: 2, Y: 0}),
		RawExtrude2(geom.Point2{X: 2, Y: 0}, geom.Point2{X: 3, Y: 0}, Params{Width: 0.4, Height: 0.2}),
	}
	state := NewExtruderState()
	cooked, err := Cook(cmds, ext, state)
	if err != nil {
		t.Fatalf("Cook: %v", err)
	}

	last := 0.0
	for i, c := range cooked {
		switch c.Kind {
		case KindExtrude2:
			if c.EPos < last-1e-12 {
				t.Errorf("cooked[%d].EPos = %v, decreased from %v", i, c.EPos, last)
			}
			last = c.EPos
		case KindMove2:
			// travel contributes zero delta: E does not change across it.
		}
	}
	if cooked[1].Kind != KindMove2 {
		t.Fatalf("cooked[1].Kind = %v, want KindMove2", cooked[1].Kind)
	}
	// The two extrudes are identical in length and cross-section, so with a
	// zero-delta travel between them E doubles exactly.
	if got, want := cooked[2].EPos, 2*cooked[0].EPos; math.Abs(got-want) > 1e-12 {
		t.Errorf("cooked[2].EPos = %v, want %v (travel must add zero ΔE)", got, want)
	}
}

func TestCookVolumeLaw(t *testing.T) {
	// ΔE · π · filamentDiameter == 2 · L · w · h within 1e-9 relative error.
	ext := Extruder{FilamentDiameter: 1.75}
	w, h, length := 0.4, 0.2, 10.0
	cmd := RawExtrude2(geom.Point2{X: 0, Y: 0}, geom.Point2{X: length, Y: 0}, Params{Width: w, Height: h})

	state := NewExtruderState()
	cooked, err := Cook([]Command{cmd}, ext, state)
	if err != nil {
		t.Fatalf("Cook: %v", err)
	}
	deltaE := cooked[0].EPos

	lhs := deltaE * math.Pi * ext.FilamentDiameter
	rhs := 2 * length * w * h
	if rel := math.Abs(lhs-rhs) / rhs; rel > 1e-9 {
		t.Errorf("volume law violated: ΔE·π·d = %v, 2·L·w·h = %v, relative error = %v", lhs, rhs, rel)
	}
}

func TestCookSquareContourTotalE(t *testing.T) {
	// A 10x10 square's four edges, cooked in sequence, produce the same
	// total E as four independent applications of the volume law — this
	// checks the chunked-parallel cooking path sums correctly, not a
	// specific literal constant.
	ext := Extruder{FilamentDiameter: 1.75}
	w, h := 0.4, 0.2
	square := []geom.Point2{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	var cmds []Command
	for i := range square {
		a := square[i]
		b := square[(i+1)%len(square)]
		cmds = append(cmds, RawExtrude2(a, b, Params{Width: w, Height: h}))
	}

	state := NewExtruderState()
	cooked, err := Cook(cmds, ext, state)
	if err != nil {
		t.Fatalf("Cook: %v", err)
	}

	perEdge := (2 * 10.0 * w * h) / (math.Pi * ext.FilamentDiameter)
	want := perEdge * 4
	got := cooked[len(cooked)-1].EPos
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("final E = %v, want %v", got, want)
	}
	if math.Abs(state.E-want) > 1e-9 {
		t.Errorf("ExtruderState.E = %v, want %v", state.E, want)
	}
}

func TestCookPrefixSumMatchesSequential(t *testing.T) {
	// Cooking N commands via the chunked parallel map must equal cooking
	// them one at a time with the E carried forward by hand.
	ext := Extruder{FilamentDiameter: 1.75}
	var cmds []Command
	for i := 0; i < 50; i++ {
		x := float64(i)
		cmds = append(cmds, RawExtrude2(geom.Point2{X: x, Y: 0}, geom.Point2{X: x + 1, Y: 0}, Params{Width: 0.4, Height: 0.2}))
	}

	state := NewExtruderState()
	cooked, err := Cook(cmds, ext, state)
	if err != nil {
		t.Fatalf("Cook: %v", err)
	}

	e := 0.0
	for i, c := range cmds {
		d, err := deltaE(c, ext.FilamentDiameter)
		if err != nil {
			t.Fatalf("deltaE: %v", err)
		}
		e += d
		if math.Abs(cooked[i].EPos-e) > 1e-9 {
			t.Errorf("cooked[%d].EPos = %v, want %v (sequential)", i, cooked[i].EPos, e)
		}
	}
}

func TestCookRejectsAlreadyCooked(t *testing.T) {
	ext := Extruder{FilamentDiameter: 1.75}
	cmds := []Command{{Kind: KindExtrude2}}
	state := NewExtruderState()
	_, err := Cook(cmds, ext, state)
	if !errors.Is(err, ErrAlreadyCooked) {
		t.Errorf("err = %v, want ErrAlreadyCooked", err)
	}
}

func TestCookEmptyInputReturnsNil(t *testing.T) {
	ext := Extruder{FilamentDiameter: 1.75}
	state := NewExtruderState()
	cooked, err := Cook(nil, ext, state)
	if err != nil {
		t.Fatalf("Cook: %v", err)
	}
	if cooked != nil {
		t.Errorf("Cook(nil) = %v, want nil", cooked)
	}
}
