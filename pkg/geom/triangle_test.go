package geom

import "testing"

func TestTriangleZRange(t *testing.T) {
	tri := Triangle{
		A: Point3{X: 0, Y: 0, Z: 2},
		B: Point3{X: 1, Y: 0, Z: -1},
		C: Point3{X: 0, Y: 1, Z: 5},
	}
	min, max := tri.ZRange()
	if min != -1 || max != 5 {
		t.Errorf("ZRange() = (%v, %v), want (-1, 5)", min, max)
	}
}

func TestTriangleEdgesCycle(t *testing.T) {
	tri := Triangle{A: Point3{X: 0}, B: Point3{X: 1}, C: Point3{X: 2}}
	edges := tri.Edges()
	if edges[0][0] != tri.A || edges[0][1] != tri.B {
		t.Errorf("edges[0] = %v, want A->B", edges[0])
	}
	if edges[2][0] != tri.C || edges[2][1] != tri.A {
		t.Errorf("edges[2] = %v, want C->A", edges[2])
	}
}

func TestTriangleNormalUpFacing(t *testing.T) {
	tri := Triangle{
		A: Point3{X: 0, Y: 0, Z: 0},
		B: Point3{X: 1, Y: 0, Z: 0},
		C: Point3{X: 0, Y: 1, Z: 0},
	}
	n := tri.Normal()
	if n.X != 0 || n.Y != 0 || n.Z <= 0 {
		t.Errorf("Normal() = %v, want a positive-Z vector", n)
	}
}
