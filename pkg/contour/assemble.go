// Package contour stitches unordered edge fragments produced by slicing
// into closed, correctly-wound polygons, and builds the containment tree
// that relates a layer's outer walls to the holes and islands nested inside
// them.
package contour

import (
	"errors"
	"sort"

	"github.com/chazu/lignin-slice/pkg/geom"
	"github.com/chazu/lignin-slice/pkg/probe"
)

// ErrUnclosedLoop is returned when loop extraction runs out of connecting
// fragments before the working loop closes.
var ErrUnclosedLoop = errors.New("contour: unclosed loop")

// Fragment is an unordered directed point pair produced by slicing a
// triangle against a plane.
type Fragment [2]geom.Point2

// AssembleLoops extracts closed loops from an unordered multiset of edge
// fragments. Fragments are sorted first so the result does not depend on
// input order. Loops shorter than 3 vertices are dropped silently: they
// come from degenerate triangle-plane intersections in a malformed mesh,
// not from a broken invariant.
func AssembleLoops(fragments []Fragment) ([]geom.Contour, error) {
	remaining := make([]Fragment, len(fragments))
	copy(remaining, fragments)
	sort.Slice(remaining, func(i, j int) bool {
		return lessFragment(remaining[i], remaining[j])
	})

	var loops []geom.Contour
	for len(remaining) > 0 {
		loop, used, err := extractOneLoop(remaining)
		if err != nil {
			return nil, err
		}
		remaining = removeIndices(remaining, used)
		if len(loop) >= 3 {
			loops = append(loops, geom.Contour(loop))
		}
	}
	return loops, nil
}

// extractOneLoop greedily grows a loop starting from remaining[0] until its
// end reconnects to its start, consuming fragments (by index) as it goes.
func extractOneLoop(remaining []Fragment) ([]geom.Point2, []int, error) {
	start := remaining[0][0]
	loop := []geom.Point2{remaining[0][0], remaining[0][1]}
	used := []int{0}
	end := remaining[0][1]

	for !end.ApproxEqual(start) {
		found := false
		for i, f := range remaining {
			if contains(used, i) {
				continue
			}
			switch {
			case f[0].ApproxEqual(end): // forward connect
				end = f[1]
				loop = append(loop, f[1])
				used = append(used, i)
				found = true
			case f[1].ApproxEqual(end): // backward connect: reverse on insertion
				end = f[0]
				loop = append(loop, f[0])
				used = append(used, i)
				found = true
			}
			if found {
				break
			}
		}
		if !found {
			return nil, nil, ErrUnclosedLoop
		}
	}
	// Drop the duplicated closing vertex; the contour is implicitly closed.
	loop = loop[:len(loop)-1]
	return loop, used, nil
}

func contains(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

func removeIndices(fragments []Fragment, used []int) []Fragment {
	skip := make(map[int]bool, len(used))
	for _, i := range used {
		skip[i] = true
	}
	out := make([]Fragment, 0, len(fragments)-len(used))
	for i, f := range fragments {
		if !skip[i] {
			out = append(out, f)
		}
	}
	return out
}

func lessFragment(a, b Fragment) bool {
	if a[0].X != b[0].X {
		return a[0].X < b[0].X
	}
	if a[0].Y != b[0].Y {
		return a[0].Y < b[0].Y
	}
	if a[1].X != b[1].X {
		return a[1].X < b[1].X
	}
	return a[1].Y < b[1].Y
}

// FixOrientation ensures the interior of c lies to the right of each
// directed edge: cast a ray from the first edge's midpoint to the far
// exterior reference and count crossings with the rest of the loop. An odd
// count means the side of the first edge facing the reference is the
// interior, an even count that it is the exterior; the loop is reversed
// when that leaves the interior on the left of the first edge.
func FixOrientation(c geom.Contour, farExterior geom.Point2) geom.Contour {
	if len(c) < 3 {
		return c
	}
	a, b := c.Edge(0)
	mid := a.Midpoint(b)
	d, f := b.Sub(a), farExterior.Sub(mid)
	farRight := d.X*f.Y-d.Y*f.X < 0
	odd := probe.CountRayIntersections(c, mid, farExterior, 0)%2 == 1
	if farRight != odd {
		return c.Reversed()
	}
	return c
}
