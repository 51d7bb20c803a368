package contour

import (
	"github.com/chazu/lignin-slice/pkg/geom"
	"github.com/chazu/lignin-slice/pkg/probe"
)

// containmentDelta is the offset used to pick an interior sample point on a
// child contour's perimeter when testing containment against a candidate
// parent.
const containmentDelta = 1e-3

// Contains reports whether parent strictly contains child: an interior
// sample taken just inside child's first edge, ray-cast to the far
// exterior reference, crosses parent an odd number of times. A contour
// does not strictly contain itself: a child with the same points as parent,
// in the same order, is reported as not contained.
func Contains(parent, child geom.Contour, farExterior geom.Point2) (bool, error) {
	if len(child) == 0 {
		return false, nil
	}
	if len(parent) == len(child) {
		same := true
		for i := range parent {
			if !parent[i].ApproxEqual(child[i]) {
				same = false
				break
			}
		}
		if same {
			return false, nil
		}
	}
	q, err := probe.InnerPerimeterPoint(child, 0, containmentDelta, farExterior)
	if err != nil {
		return false, err
	}
	return probe.CountRayIntersections(parent, q, farExterior, -1)%2 == 1, nil
}

// BuildTree partitions contours into roots (contained by no other contour)
// and attaches each remaining contour to its tightest enclosing parent,
// recursively.
func BuildTree(contours []geom.Contour, farExterior geom.Point2) ([]*geom.ContourTree, error) {
	nodes := make([]*geom.ContourTree, len(contours))
	for i, c := range contours {
		nodes[i] = &geom.ContourTree{Contour: c}
	}

	// parent[i] is the index of the tightest known enclosing contour, or -1.
	parent := make([]int, len(contours))
	for i := range parent {
		parent[i] = -1
	}

	for i := range contours {
		for j := range contours {
			if i == j {
				continue
			}
			ok, err := Contains(contours[j], contours[i], farExterior)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			if parent[i] == -1 {
				parent[i] = j
				continue
			}
			// Prefer the tighter (also contained) candidate parent.
			tighter, err := Contains(contours[parent[i]], contours[j], farExterior)
			if err != nil {
				return nil, err
			}
			if tighter {
				parent[i] = j
			}
		}
	}

	var roots []*geom.ContourTree
	for i := range contours {
		if parent[i] == -1 {
			roots = append(roots, nodes[i])
		} else {
			nodes[parent[i]].Children = append(nodes[parent[i]].Children, nodes[i])
		}
	}
	return roots, nil
}
