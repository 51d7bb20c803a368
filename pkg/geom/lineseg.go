package geom

import "errors"

// ErrDegenerateSegment is returned when a LineSeg would be constructed with
// zero displacement.
var ErrDegenerateSegment = errors.New("geom: degenerate segment (zero displacement)")

// ErrEmptyPointList is returned when building segments from an empty point
// list.
var ErrEmptyPointList = errors.New("geom: empty point list")

// LineSeg is a directed 2D line segment: an origin point p plus a
// displacement d, d != 0. Its endpoint is p+d.
type LineSeg struct {
	P Point2
	D Point2
}

// NewLineSeg builds the segment from a to b. It fails with
// ErrDegenerateSegment if a == b.
func NewLineSeg(a, b Point2) (LineSeg, error) {
	d := b.Sub(a)
	if d.X == 0 && d.Y == 0 {
		return LineSeg{}, ErrDegenerateSegment
	}
	return LineSeg{P: a, D: d}, nil
}

// Endpoint returns p+d.
func (s LineSeg) Endpoint() Point2 {
	return s.P.Add(s.D)
}

// Midpoint returns the midpoint of the segment.
func (s LineSeg) Midpoint() Point2 {
	return s.P.Midpoint(s.Endpoint())
}

// Flip returns a segment with origin p+d and displacement -d: same
// geometric segment, reversed direction.
func (s LineSeg) Flip() LineSeg {
	return LineSeg{P: s.Endpoint(), D: Point2{-s.D.X, -s.D.Y}}
}

// SqLen returns the squared length of the segment.
func (s LineSeg) SqLen() float64 {
	return s.D.X*s.D.X + s.D.Y*s.D.Y
}

// Len returns the length of the segment.
func (s LineSeg) Len() float64 {
	return s.P.Dist(s.Endpoint())
}

// SegmentsFromLoop builds consecutive segments p[0]->p[1], p[1]->p[2], ...,
// p[n-1]->p[0] from a closed point loop. Fails with ErrEmptyPointList if pts
// is empty, and ErrDegenerateSegment if two consecutive points coincide.
func SegmentsFromLoop(pts []Point2) ([]LineSeg, error) {
	if len(pts) == 0 {
		return nil, ErrEmptyPointList
	}
	segs := make([]LineSeg, 0, len(pts))
	for i := range pts {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		s, err := NewLineSeg(a, b)
		if err != nil {
			return nil, err
		}
		segs = append(segs, s)
	}
	return segs, nil
}
