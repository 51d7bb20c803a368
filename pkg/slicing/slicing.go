// Package slicing implements triangle-vs-plane intersection: given a
// triangulated mesh and a z-plane, it emits the unordered edge fragments
// that the contour package stitches into closed polygons.
package slicing

import (
	"github.com/chazu/lignin-slice/pkg/contour"
	"github.com/chazu/lignin-slice/pkg/geom"
	"github.com/dhconnelly/rtreego"
)

// SliceTriangle intersects triangle t against the plane z=v.
//
// Each edge whose endpoints straddle v contributes one interpolated point.
// Edges lying exactly on the plane are collected separately: if exactly one
// such edge exists it is returned directly as the slice fragment; if all
// three lie on the plane the triangle is degenerate and discarded.
// Otherwise the interpolated points are deduplicated; a fragment is
// returned only when exactly two distinct points result. One point, or
// three (numerically impossible but guarded against), is treated as a
// degenerate slice and dropped.
func SliceTriangle(t geom.Triangle, v float64) *contour.Fragment {
	edges := t.Edges()

	var onPlane [][2]geom.Point3
	var hits []geom.Point2

	for _, e := range edges {
		p, q := e[0], e[1]
		if p.Z == q.Z {
			if p.Z == v {
				onPlane = append(onPlane, e)
			}
			continue
		}
		frac := (v - p.Z) / (q.Z - p.Z)
		if frac >= 0 && frac <= 1 {
			hits = append(hits, p.Lerp(q, frac).To2())
		}
	}

	if len(onPlane) == 3 {
		return nil // fully degenerate: the whole triangle lies on the plane
	}
	if len(onPlane) == 1 {
		f := contour.Fragment{onPlane[0][0].To2(), onPlane[0][1].To2()}
		return &f
	}

	hits = dedupe(hits)
	if len(hits) != 2 {
		return nil
	}
	f := contour.Fragment{hits[0], hits[1]}
	return &f
}

func dedupe(pts []geom.Point2) []geom.Point2 {
	out := make([]geom.Point2, 0, len(pts))
	for _, p := range pts {
		dup := false
		for _, q := range out {
			if p.ApproxEqual(q) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	return out
}

// triBox adapts a triangle's z-extent to rtreego's Spatial interface so
// that Index.SliceLayer only visits triangles whose bounding box straddles
// the plane being sliced, instead of scanning the whole mesh per layer.
type triBox struct {
	tri geom.Triangle
	idx int
}

func (b *triBox) Bounds() rtreego.Rect {
	min, max := b.tri.ZRange()
	length := max - min
	if length <= 0 {
		length = 1e-9
	}
	rect, _ := rtreego.NewRect(rtreego.Point{min}, []float64{length})
	return rect
}

// Index builds an R-tree over a mesh's triangles keyed by z-extent, for
// repeated slicing at many z values.
type Index struct {
	tree *rtreego.Rtree
	tris []geom.Triangle
}

// NewIndex builds a z-extent spatial index over tris.
func NewIndex(tris []geom.Triangle) *Index {
	tree := rtreego.NewTree(1, 25, 50)
	for i, t := range tris {
		tree.Insert(&triBox{tri: t, idx: i})
	}
	return &Index{tree: tree, tris: tris}
}

// CandidatesAt returns the triangles whose z-extent straddles v.
func (idx *Index) CandidatesAt(v float64) []geom.Triangle {
	q, _ := rtreego.NewRect(rtreego.Point{v}, []float64{1e-9})
	hits := idx.tree.SearchIntersect(q)
	out := make([]geom.Triangle, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.(*triBox).tri)
	}
	return out
}

// SliceLayer slices every triangle in the index against plane z=v and
// returns the resulting unordered edge fragments.
func (idx *Index) SliceLayer(v float64) []contour.Fragment {
	cands := idx.CandidatesAt(v)
	frags := make([]contour.Fragment, 0, len(cands))
	for _, t := range cands {
		if f := SliceTriangle(t, v); f != nil {
			frags = append(frags, *f)
		}
	}
	return frags
}

// SliceMesh slices every triangle in tris against plane z=v without
// building an index, for a single one-off slice.
func SliceMesh(tris []geom.Triangle, v float64) []contour.Fragment {
	frags := make([]contour.Fragment, 0)
	for _, t := range tris {
		if f := SliceTriangle(t, v); f != nil {
			frags = append(frags, *f)
		}
	}
	return frags
}
