// Package geom defines the euclidean data-model primitives the rest of the
// slicer is built on: points, line segments, triangles and the closed
// polygon ("contour") that the contour assembler produces.
package geom

import "math"

// Epsilon is the tolerance used by the five-fractional-digit equality
// comparisons (a ~= b) and by the G-code text formatter.
const Epsilon = 1e-5

// Point2 is a point in the slicing plane.
type Point2 struct {
	X, Y float64
}

// Add returns p+q.
func (p Point2) Add(q Point2) Point2 {
	return Point2{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point2) Sub(q Point2) Point2 {
	return Point2{p.X - q.X, p.Y - q.Y}
}

// Scale returns p scaled by s.
func (p Point2) Scale(s float64) Point2 {
	return Point2{p.X * s, p.Y * s}
}

// Dot returns the euclidean dot product p.q.
func (p Point2) Dot(q Point2) float64 {
	return p.X*q.X + p.Y*q.Y
}

// SqDist returns the squared distance between p and q.
func (p Point2) SqDist(q Point2) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx + dy*dy
}

// Dist returns the distance between p and q.
func (p Point2) Dist(q Point2) float64 {
	return math.Sqrt(p.SqDist(q))
}

// Midpoint returns the midpoint of p and q.
func (p Point2) Midpoint(q Point2) Point2 {
	return Point2{(p.X + q.X) / 2, (p.Y + q.Y) / 2}
}

// ApproxEqual reports whether each coordinate of p and q differs by at most
// Epsilon (1e-5), the "~=" comparison of the data model.
func (p Point2) ApproxEqual(q Point2) bool {
	return almostEqual(p.X, q.X) && almostEqual(p.Y, q.Y)
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// Point3 is a point in model space.
type Point3 struct {
	X, Y, Z float64
}

// Add returns p+q.
func (p Point3) Add(q Point3) Point3 {
	return Point3{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

// Scale returns p scaled by s.
func (p Point3) Scale(s float64) Point3 {
	return Point3{p.X * s, p.Y * s, p.Z * s}
}

// To2 projects p to the slicing plane by dropping z.
func (p Point3) To2() Point2 {
	return Point2{p.X, p.Y}
}

// Dist returns the euclidean distance between p and q.
func (p Point3) Dist(q Point3) float64 {
	dx, dy, dz := p.X-q.X, p.Y-q.Y, p.Z-q.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Lerp returns the point a fraction t of the way from p to q.
func (p Point3) Lerp(q Point3, t float64) Point3 {
	return Point3{
		p.X + (q.X-p.X)*t,
		p.Y + (q.Y-p.Y)*t,
		p.Z + (q.Z-p.Z)*t,
	}
}
