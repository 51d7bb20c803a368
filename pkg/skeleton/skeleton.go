// Package skeleton carries the data-model shape of a straight skeleton
// (ENodes, INodes, motorcycles, spines) without implementing its
// construction algorithm. The construction algorithm is incomplete upstream
// and deliberately out of scope here; this package exists only so other
// components can hold a reference to a skeleton entity behind a stable
// interface without depending on how it gets built.
package skeleton

import "github.com/chazu/lignin-slice/pkg/geom"

// Pointable is anything that resolves to a single 2D point: an ENode or
// INode of a straight skeleton.
type Pointable interface {
	Point() geom.Point2
}

// Arcable is anything that resolves to a fixed line segment: a Spine of a
// straight skeleton.
type Arcable interface {
	Arc() geom.LineSeg
}

// ENode is a skeleton node anchored to the original polygon boundary.
type ENode struct {
	At geom.Point2
}

// Point implements Pointable.
func (n ENode) Point() geom.Point2 { return n.At }

// INode is a skeleton node created where two edge events collapse.
type INode struct {
	At geom.Point2
}

// Point implements Pointable.
func (n INode) Point() geom.Point2 { return n.At }

// Spine is a skeleton edge connecting two nodes.
type Spine struct {
	From, To Pointable
}

// Arc implements Arcable.
func (s Spine) Arc() geom.LineSeg {
	seg, _ := geom.NewLineSeg(s.From.Point(), s.To.Point())
	return seg
}

// Motorcycle is a reflex-vertex wavefront tracked separately from the
// ordinary spine graph until it collides with a spine or another
// motorcycle.
type Motorcycle struct {
	Origin    geom.Point2
	Direction geom.Point2
}

// ArcTo returns the motorcycle's traveled segment up to the given endpoint.
// Unlike Spine.Arc, a motorcycle has no fixed endpoint of its own until it
// collides with something, so it does not satisfy Arcable and instead takes
// the endpoint from the caller.
func (m Motorcycle) ArcTo(end geom.Point2) geom.LineSeg {
	seg, _ := geom.NewLineSeg(m.Origin, end)
	return seg
}
