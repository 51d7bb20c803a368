package pga

import (
	"errors"
	"math"

	"github.com/chazu/lignin-slice/pkg/geom"
)

// ErrInsaneIntersection is the error for an Intersection classifier
// producing a variant the caller did not expect at that call site — an
// indication that an algebra invariant has broken. No function in this
// package returns it; call sites that enumerate only some variants use it.
var ErrInsaneIntersection = errors.New("pga: insane intersection")

// PPoint2 is a projective point: a GVec whose non-zero blades are among the
// grade-2 bivectors {e0e1, e0e2, e1e2}.
type PPoint2 struct {
	V GVec
}

// PLine2 is a projective line: a GVec whose non-zero blades are among the
// grade-1 vectors {e0, e1, e2}.
type PLine2 struct {
	V GVec
}

// IsIdeal reports whether p lies at infinity (its e1e2 coefficient is
// zero).
func (p PPoint2) IsIdeal() bool {
	return p.V[BladeE1E2] == 0
}

// Canonicalize scales p so its e1e2 coefficient is 1. Ideal points are
// returned unchanged.
func (p PPoint2) Canonicalize() PPoint2 {
	w := p.V[BladeE1E2]
	if w == 0 {
		return p
	}
	return PPoint2{V: divVecScalar(p.V, w)}
}

// ToPoint2 converts a canonicalized projective point back to euclidean
// coordinates: x is -e0e2, y is e0e1.
func (p PPoint2) ToPoint2() geom.Point2 {
	c := p.Canonicalize()
	return geom.Point2{X: -c.V[BladeE0E2], Y: c.V[BladeE0E1]}
}

// EToPPoint2 builds a projective point from a euclidean point.
func EToPPoint2(p geom.Point2) PPoint2 {
	v := GVec{}
	v = addVal(v, BladeE0E1, p.Y)
	v = addVal(v, BladeE0E2, -p.X)
	v = addVal(v, BladeE1E2, 1)
	return PPoint2{V: v}
}

// EToPLine2 builds a projective line from a euclidean segment.
func EToPLine2(seg geom.LineSeg) PLine2 {
	x1, y1 := seg.P.X, seg.P.Y
	end := seg.Endpoint()
	x2, y2 := end.X, end.Y

	v := GVec{}
	v = addVal(v, BladeE0, y1*x2-x1*y2)
	v = addVal(v, BladeE1, y2-y1)
	v = addVal(v, BladeE2, x1-x2)
	return PLine2{V: v}
}

// Join returns the line through two distinct points, via dual-meet-dual:
// dualize both points into lines, wedge them (their "meet" as duals), then
// dualize the result back into a line.
func Join(p, q PPoint2) PLine2 {
	return PLine2{V: dual(wedge(dual(p.V), dual(q.V)))}
}

// Meet returns the point where two lines cross: the raw wedge of their
// vectors, a grade-2 bivector.
func Meet(l1, l2 PLine2) PPoint2 {
	return PPoint2{V: wedge(l1.V, l2.V)}
}

// IntersectPLines canonicalizes Meet(pl1, pl2) and extracts euclidean
// coordinates from it.
func IntersectPLines(pl1, pl2 PLine2) geom.Point2 {
	return Meet(pl1, pl2).ToPoint2()
}

// IntersectionKind tags the outcome of classifying two projective lines or
// segments.
type IntersectionKind int

const (
	IntersectsAt IntersectionKind = iota
	NoIntersection
	Parallel
	AntiParallel
	Collinear
	LCollinear
	HitStart
	HitEnd
)

// Intersection is the tagged outcome of intersecting two lines or segments.
// Point is populated for IntersectsAt, HitStart and HitEnd. A and B are
// populated for LCollinear (the overlap endpoints).
type Intersection struct {
	Kind  IntersectionKind
	Point geom.Point2
	A, B  geom.Point2
}

// PlinesIntersectAt classifies the algebraic relationship of two projective
// lines. An empty meet means the lines coincide (Collinear); a grade-0 inner
// product of +1 means the direction vectors agree (Parallel), -1 means they
// oppose (AntiParallel); otherwise the lines cross at a single point.
func PlinesIntersectAt(pl1, pl2 PLine2) Intersection {
	m := wedge(pl1.V, pl2.V)
	if isEmpty(m) {
		return Intersection{Kind: Collinear}
	}
	d, _ := scalarize(dot(pl1.V, pl2.V))
	switch {
	case almostEqual(d, 1):
		return Intersection{Kind: Parallel}
	case almostEqual(d, -1):
		return Intersection{Kind: AntiParallel}
	default:
		return Intersection{Kind: IntersectsAt, Point: PPoint2{V: m}.ToPoint2()}
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= geom.Epsilon
}

// onSegment reports whether p lies within seg: the sum of squared
// distances from p to both endpoints does not exceed the segment's squared
// length.
func onSegment(p geom.Point2, seg geom.LineSeg) bool {
	d1 := p.SqDist(seg.P)
	d2 := p.SqDist(seg.Endpoint())
	return d1+d2 <= seg.SqLen()+geom.Epsilon
}

// LineIntersection computes the full segment-aware intersection of seg1 and
// seg2. An algebraic crossing point coinciding exactly with either endpoint
// of seg1 is promoted to HitStart, with either endpoint of seg2 to HitEnd;
// otherwise the crossing point is validated with onSegment against both
// segments and reported as IntersectsAt or demoted to NoIntersection.
func LineIntersection(seg1, seg2 geom.LineSeg) Intersection {
	pl1 := EToPLine2(seg1)
	pl2 := EToPLine2(seg2)
	res := PlinesIntersectAt(pl1, pl2)

	switch res.Kind {
	case IntersectsAt:
		p := res.Point
		switch {
		case p.ApproxEqual(seg2.P), p.ApproxEqual(seg2.Endpoint()):
			return Intersection{Kind: HitEnd, Point: p}
		case p.ApproxEqual(seg1.P), p.ApproxEqual(seg1.Endpoint()):
			return Intersection{Kind: HitStart, Point: p}
		case onSegment(p, seg1) && onSegment(p, seg2):
			return Intersection{Kind: IntersectsAt, Point: p}
		default:
			return Intersection{Kind: NoIntersection}
		}
	case Collinear:
		return collinearOverlap(seg1, seg2)
	default: // Parallel, AntiParallel
		return res
	}
}

// collinearOverlap determines the overlap, if any, of two segments known
// to lie on the same infinite line, by projecting both onto seg1's
// direction.
func collinearOverlap(seg1, seg2 geom.LineSeg) Intersection {
	dir := seg1.D
	dirLenSq := dir.Dot(dir)
	if dirLenSq == 0 {
		return Intersection{Kind: NoIntersection}
	}
	project := func(p geom.Point2) float64 {
		return p.Sub(seg1.P).Dot(dir) / dirLenSq
	}
	t0, t1 := 0.0, 1.0
	t2 := project(seg2.P)
	t3 := project(seg2.Endpoint())
	lo, hi := t2, t3
	if lo > hi {
		lo, hi = hi, lo
	}
	loOverall, hiOverall := math.Max(t0, lo), math.Min(t1, hi)
	if loOverall > hiOverall+geom.Epsilon {
		return Intersection{Kind: NoIntersection}
	}
	at := func(t float64) geom.Point2 { return seg1.P.Add(dir.Scale(t)) }
	a, b := at(loOverall), at(hiOverall)
	if a.ApproxEqual(b) {
		return Intersection{Kind: HitEnd, Point: a}
	}
	return Intersection{Kind: LCollinear, A: a, B: b}
}

// Direction is the sense in which lineBetween sweeps from the reference
// line.
type Direction int

const (
	CounterClockwise Direction = iota
	Clockwise
)

// LineBetween reports whether, rotating l1 toward l2 in direction dir, one
// first sweeps across l3. It compares the grade-0 inner product of l1 with
// each candidate; because that scalar product is symmetric under this
// signature, the two rotational senses are realized by flipping the
// comparator rather than the operand order.
func LineBetween(l1 PLine2, dir Direction, l2, l3 PLine2) bool {
	c12, _ := scalarize(dot(l1.V, l2.V))
	c13, _ := scalarize(dot(l1.V, l3.V))
	if dir == CounterClockwise {
		return c12 < c13
	}
	return c12 > c13
}

// TranslatePerp shifts pl by d along its own perpendicular: normalize its
// vector part to unit euclidean length, then add d along e0.
func TranslatePerp(pl PLine2, d float64) PLine2 {
	norm := math.Sqrt(pl.V[BladeE1]*pl.V[BladeE1] + pl.V[BladeE2]*pl.V[BladeE2])
	v := divVecScalar(pl.V, norm)
	offset := GVec{}
	offset = addVal(offset, BladeE0, d)
	return PLine2{V: addVecPair(v, offset)}
}

// FlipPLine2 negates the line's three grade-1 coefficients, producing the
// same geometric line with reversed orientation.
func FlipPLine2(pl PLine2) PLine2 {
	v := GVec{}
	for _, k := range [3]Blade{BladeE0, BladeE1, BladeE2} {
		if x, ok := pl.V[k]; ok {
			v = addVal(v, k, -x)
		}
	}
	return PLine2{V: v}
}

// CombineConsecutiveLines folds over adjacent segment pairs, merging two
// segments into one when their lines coincide (an empty meet) and the
// first's endpoint is the second's origin.
func CombineConsecutiveLines(segs []geom.LineSeg) []geom.LineSeg {
	if len(segs) == 0 {
		return nil
	}
	out := make([]geom.LineSeg, 0, len(segs))
	cur := segs[0]
	for _, next := range segs[1:] {
		pl1 := EToPLine2(cur)
		pl2 := EToPLine2(next)
		m := wedge(pl1.V, pl2.V)
		if isEmpty(m) && cur.Endpoint().ApproxEqual(next.P) {
			cur = geom.LineSeg{P: cur.P, D: next.Endpoint().Sub(cur.P)}
			continue
		}
		out = append(out, cur)
		cur = next
	}
	out = append(out, cur)
	return out
}
