package pga

import (
	"errors"
	"testing"

	"github.com/chazu/lignin-slice/pkg/geom"
)

func horizontalLine(y float64) PLine2 {
	seg := geom.LineSeg{P: geom.Point2{X: 0, Y: y}, D: geom.Point2{X: 1, Y: 0}}
	return EToPLine2(seg)
}

func verticalLine(x float64) PLine2 {
	seg := geom.LineSeg{P: geom.Point2{X: x, Y: 0}, D: geom.Point2{X: 0, Y: 1}}
	return EToPLine2(seg)
}

func TestTranslatePerpThenIntersect(t *testing.T) {
	// translatePerp(y=0, d=1) then intersectPLines against x=0 should give (0,1).
	y0 := horizontalLine(0)
	moved := TranslatePerp(y0, 1)
	x0 := verticalLine(0)

	got := IntersectPLines(moved, x0)
	want := geom.Point2{X: 0, Y: 1}
	if !got.ApproxEqual(want) {
		t.Errorf("IntersectPLines() = %v, want %v", got, want)
	}
}

func TestMeetJoinRoundTrip(t *testing.T) {
	// meet(join(P,Q), join(P,R)) == P for three non-collinear points.
	p := geom.Point2{X: 1, Y: 1}
	q := geom.Point2{X: 4, Y: 2}
	r := geom.Point2{X: 2, Y: 5}

	pp := EToPPoint2(p)
	pq := EToPPoint2(q)
	pr := EToPPoint2(r)

	l1 := Join(pp, pq)
	l2 := Join(pp, pr)

	got := Meet(l1, l2).ToPoint2()
	if !got.ApproxEqual(p) {
		t.Errorf("meet(join(P,Q),join(P,R)) = %v, want %v", got, p)
	}
}

func TestPlinesIntersectAtParallelAndAntiParallel(t *testing.T) {
	y0 := horizontalLine(0)
	y1 := horizontalLine(1)

	res := PlinesIntersectAt(y0, y1)
	if res.Kind != Parallel {
		t.Errorf("two same-direction horizontals: Kind = %v, want Parallel", res.Kind)
	}

	flipped := FlipPLine2(y1)
	res2 := PlinesIntersectAt(y0, flipped)
	if res2.Kind != AntiParallel {
		t.Errorf("horizontal vs flipped horizontal: Kind = %v, want AntiParallel", res2.Kind)
	}
}

func TestPlinesIntersectAtCollinear(t *testing.T) {
	a := horizontalLine(0)
	b := horizontalLine(0)
	res := PlinesIntersectAt(a, b)
	if res.Kind != Collinear {
		t.Errorf("Kind = %v, want Collinear", res.Kind)
	}
}

func TestPlinesIntersectAtCrossing(t *testing.T) {
	y0 := horizontalLine(0)
	x0 := verticalLine(0)
	res := PlinesIntersectAt(y0, x0)
	if res.Kind != IntersectsAt {
		t.Fatalf("Kind = %v, want IntersectsAt", res.Kind)
	}
	if !res.Point.ApproxEqual(geom.Point2{X: 0, Y: 0}) {
		t.Errorf("Point = %v, want origin", res.Point)
	}
}

func TestLineIntersectionHitEndAndHitStart(t *testing.T) {
	seg1, err := geom.NewLineSeg(geom.Point2{X: -1, Y: 0}, geom.Point2{X: 1, Y: 0})
	if err != nil {
		t.Fatalf("NewLineSeg: %v", err)
	}
	// seg2 ends exactly at (0,0), which lies on seg1: HitEnd promotion.
	seg2, err := geom.NewLineSeg(geom.Point2{X: 0, Y: -1}, geom.Point2{X: 0, Y: 0})
	if err != nil {
		t.Fatalf("NewLineSeg: %v", err)
	}
	res := LineIntersection(seg1, seg2)
	if res.Kind != HitEnd {
		t.Errorf("Kind = %v, want HitEnd", res.Kind)
	}

	// seg3 starts exactly at (0,0), which lies on seg1. Passed as the first
	// segment, its own origin is the crossing: HitStart promotion.
	seg3, err := geom.NewLineSeg(geom.Point2{X: 0, Y: 0}, geom.Point2{X: 0, Y: 1})
	if err != nil {
		t.Fatalf("NewLineSeg: %v", err)
	}
	res2 := LineIntersection(seg3, seg1)
	if res2.Kind != HitStart {
		t.Errorf("Kind = %v, want HitStart", res2.Kind)
	}
}

func TestLineIntersectionOrdinaryCrossing(t *testing.T) {
	seg1, _ := geom.NewLineSeg(geom.Point2{X: -1, Y: 0}, geom.Point2{X: 1, Y: 0})
	seg2, _ := geom.NewLineSeg(geom.Point2{X: 0, Y: -1}, geom.Point2{X: 0, Y: 1})
	res := LineIntersection(seg1, seg2)
	if res.Kind != IntersectsAt {
		t.Fatalf("Kind = %v, want IntersectsAt", res.Kind)
	}
	if !res.Point.ApproxEqual(geom.Point2{X: 0, Y: 0}) {
		t.Errorf("Point = %v, want origin", res.Point)
	}
}

func TestLineIntersectionNoIntersection(t *testing.T) {
	seg1, _ := geom.NewLineSeg(geom.Point2{X: -1, Y: 0}, geom.Point2{X: 1, Y: 0})
	seg2, _ := geom.NewLineSeg(geom.Point2{X: 5, Y: -1}, geom.Point2{X: 5, Y: 1})
	res := LineIntersection(seg1, seg2)
	if res.Kind != NoIntersection {
		t.Errorf("Kind = %v, want NoIntersection", res.Kind)
	}
}

func TestLineIntersectionCollinearOverlap(t *testing.T) {
	seg1, _ := geom.NewLineSeg(geom.Point2{X: 0, Y: 0}, geom.Point2{X: 4, Y: 0})
	seg2, _ := geom.NewLineSeg(geom.Point2{X: 2, Y: 0}, geom.Point2{X: 6, Y: 0})
	res := LineIntersection(seg1, seg2)
	if res.Kind != LCollinear {
		t.Fatalf("Kind = %v, want LCollinear", res.Kind)
	}
	if !res.A.ApproxEqual(geom.Point2{X: 2, Y: 0}) || !res.B.ApproxEqual(geom.Point2{X: 4, Y: 0}) {
		t.Errorf("overlap = [%v, %v], want [(2,0),(4,0)]", res.A, res.B)
	}
}

func TestFlipPLine2Involution(t *testing.T) {
	l := horizontalLine(2)
	flipped := FlipPLine2(l)
	back := FlipPLine2(flipped)
	for k, x := range l.V {
		if got := back.V[k]; !almostEqual(got, x) {
			t.Errorf("FlipPLine2(FlipPLine2(l))[%v] = %v, want %v", k, got, x)
		}
	}
}

func TestCombineConsecutiveLinesMergesCollinear(t *testing.T) {
	segs := []geom.LineSeg{
		{P: geom.Point2{X: 0, Y: 0}, D: geom.Point2{X: 2, Y: 0}},
		{P: geom.Point2{X: 2, Y: 0}, D: geom.Point2{X: 2, Y: 0}},
		{P: geom.Point2{X: 4, Y: 0}, D: geom.Point2{X: 0, Y: 2}},
	}
	out := CombineConsecutiveLines(segs)
	if len(out) != 2 {
		t.Fatalf("len(out) = %d, want 2", len(out))
	}
	if !out[0].Endpoint().ApproxEqual(geom.Point2{X: 4, Y: 0}) {
		t.Errorf("merged segment endpoint = %v, want (4,0)", out[0].Endpoint())
	}
}

func TestErrInsaneIntersectionIsSentinel(t *testing.T) {
	if !errors.Is(ErrInsaneIntersection, ErrInsaneIntersection) {
		t.Error("ErrInsaneIntersection must be usable with errors.Is")
	}
}
