package geom

// Contour is an ordered cyclic sequence of points, length >= 3, closed
// implicitly (last point connects back to the first). When produced by the
// contour assembler the interior lies to the right of each directed edge in
// the stored order.
type Contour []Point2

// Edge returns the i-th directed edge (c[i] -> c[(i+1)%n]).
func (c Contour) Edge(i int) (Point2, Point2) {
	n := len(c)
	return c[i], c[(i+1)%n]
}

// NumEdges returns the number of edges in the contour (== len(c)).
func (c Contour) NumEdges() int {
	return len(c)
}

// Segments returns the contour's edges as LineSeg values.
func (c Contour) Segments() ([]LineSeg, error) {
	return SegmentsFromLoop(c)
}

// Reversed returns the contour with its vertex order reversed, flipping
// which side is "inside".
func (c Contour) Reversed() Contour {
	out := make(Contour, len(c))
	for i, p := range c {
		out[len(c)-1-i] = p
	}
	return out
}

// BoundingBox returns the axis-aligned bounding box of the contour's
// vertices.
func (c Contour) BoundingBox() (min, max Point2) {
	if len(c) == 0 {
		return Point2{}, Point2{}
	}
	min, max = c[0], c[0]
	for _, p := range c[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return min, max
}
