// Package probe implements the interior probe: given a contour edge, find a
// point a fixed distance inside the contour along that edge's perpendicular
// bisector. The contour package relies on it: on its ray-parity counter to
// fix winding, and on its interior sample to test containment.
package probe

import (
	"github.com/chazu/lignin-slice/pkg/geom"
	"github.com/chazu/lignin-slice/pkg/pga"
)

// FarExterior is the canonical far exterior reference point used by the
// ray-parity tests below. It only gives a correct parity count when all
// contour geometry lies in the positive quadrant; DynamicFarExterior should
// be used for geometry that may not.
var FarExterior = geom.Point2{X: -1, Y: -1}

// DynamicFarExterior returns a point guaranteed to be outside c's bounding
// box, for contours that may not lie in the positive quadrant.
func DynamicFarExterior(c geom.Contour, k float64) geom.Point2 {
	if k < 1 {
		k = 1
	}
	min, _ := c.BoundingBox()
	return geom.Point2{X: min.X - k, Y: min.Y - k}
}

// CountRayIntersections casts a ray from 'from' to 'to' and counts how many
// of c's edges it crosses, skipping edge index skip (-1 to skip none).
// A collinear overlap (pga.LCollinear) is not counted; a collinear contact
// at a single point comes back as pga.HitEnd and is counted.
func CountRayIntersections(c geom.Contour, from, to geom.Point2, skip int) int {
	ray, err := geom.NewLineSeg(from, to)
	if err != nil {
		return 0
	}
	count := 0
	for i := 0; i < c.NumEdges(); i++ {
		if i == skip {
			continue
		}
		a, b := c.Edge(i)
		edge, err := geom.NewLineSeg(a, b)
		if err != nil {
			continue
		}
		switch pga.LineIntersection(ray, edge).Kind {
		case pga.IntersectsAt, pga.HitStart, pga.HitEnd:
			count++
		}
	}
	return count
}

// Parity reports whether a ray from 'from' to the far exterior reference
// crosses c an odd number of times.
func Parity(c geom.Contour, from, farExterior geom.Point2) bool {
	return CountRayIntersections(c, from, farExterior, -1)%2 == 1
}

// InnerPerimeterPoint produces a point lying inside contour c, at signed
// distance delta from the midpoint of edge L (c's edge at index edgeIdx)
// along L's perpendicular bisector.
//
// The sign of delta is resolved by a two-level parity test that stays
// correct even when c's orientation cannot be assumed correct at call
// time: the parity of the ray cast from L's midpoint to the far exterior
// reference, XORed against whether the bisector direction points to the
// same side of L as that reference.
func InnerPerimeterPoint(c geom.Contour, edgeIdx int, delta float64, farExterior geom.Point2) (geom.Point2, error) {
	a, b := c.Edge(edgeIdx)
	L, err := geom.NewLineSeg(a, b)
	if err != nil {
		return geom.Point2{}, err
	}

	mid := L.Midpoint()
	l0, err := geom.NewLineSeg(mid, farExterior)
	if err != nil {
		return geom.Point2{}, err
	}

	h1, err := geom.NewLineSeg(L.P, mid)
	if err != nil {
		return geom.Point2{}, err
	}
	h2, err := geom.NewLineSeg(mid, L.Endpoint())
	if err != nil {
		return geom.Point2{}, err
	}

	pl1 := pga.EToPLine2(h1)
	plL0 := pga.EToPLine2(l0)
	plH2 := pga.EToPLine2(h2)
	if pga.LineBetween(pl1, pga.Clockwise, plL0, plH2) {
		L = L.Flip()
		h1, _ = geom.NewLineSeg(L.P, L.Midpoint())
		h2, _ = geom.NewLineSeg(L.Midpoint(), L.Endpoint())
		pl1 = pga.EToPLine2(h1)
		plH2 = pga.EToPLine2(h2)
	}

	sameSide := bisectorDirection(L).Dot(farExterior.Sub(mid)) > 0

	crossings := CountRayIntersections(c, mid, farExterior, edgeIdx)
	odd := crossings%2 == 1

	sign := 1.0
	if odd {
		if sameSide {
			sign = 1
		} else {
			sign = -1
		}
	} else {
		if sameSide {
			sign = -1
		} else {
			sign = 1
		}
	}

	dir := bisectorDirection(L)
	return mid.Add(dir.Scale(sign * delta)), nil
}

// bisectorOf returns the perpendicular bisector of L as a PLine2: the line
// through L's midpoint perpendicular to L.
func bisectorOf(L geom.LineSeg) pga.PLine2 {
	mid := L.Midpoint()
	dir := bisectorDirection(L)
	other := mid.Add(dir)
	seg, err := geom.NewLineSeg(mid, other)
	if err != nil {
		// L was degenerate; fall back to L's own line (never reached in
		// practice since L is validated by the caller).
		return pga.EToPLine2(L)
	}
	return pga.EToPLine2(seg)
}

// bisectorDirection returns the unit vector perpendicular to L.
func bisectorDirection(L geom.LineSeg) geom.Point2 {
	d := L.D
	perp := geom.Point2{X: -d.Y, Y: d.X}
	n := L.Len()
	if n == 0 {
		return perp
	}
	return perp.Scale(1 / n)
}
