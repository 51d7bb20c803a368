package skeleton

import (
	"testing"

	"github.com/chazu/lignin-slice/pkg/geom"
)

var (
	_ Pointable = ENode{}
	_ Pointable = INode{}
	_ Arcable   = Spine{}
)

func TestSpineArcConnectsEndpoints(t *testing.T) {
	from := ENode{At: geom.Point2{X: 0, Y: 0}}
	to := INode{At: geom.Point2{X: 3, Y: 4}}
	s := Spine{From: from, To: to}

	arc := s.Arc()
	if !arc.P.ApproxEqual(from.At) {
		t.Errorf("arc origin = %v, want %v", arc.P, from.At)
	}
	if !arc.Endpoint().ApproxEqual(to.At) {
		t.Errorf("arc endpoint = %v, want %v", arc.Endpoint(), to.At)
	}
}

func TestMotorcycleArcTo(t *testing.T) {
	m := Motorcycle{Origin: geom.Point2{X: 0, Y: 0}, Direction: geom.Point2{X: 1, Y: 0}}
	end := geom.Point2{X: 5, Y: 0}
	arc := m.ArcTo(end)
	if !arc.Endpoint().ApproxEqual(end) {
		t.Errorf("ArcTo endpoint = %v, want %v", arc.Endpoint(), end)
	}
}
