package toolpath

import (
	"errors"
	"testing"

	"github.com/chazu/lignin-slice/pkg/gcode"
	"github.com/chazu/lignin-slice/pkg/geom"
)

func TestContourPathEmitsOneExtrudePerEdge(t *testing.T) {
	c := geom.Contour{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	cmds := ContourPath(c, 0.4, 0.2)
	if len(cmds) != 4 {
		t.Fatalf("len(cmds) = %d, want 4", len(cmds))
	}
	for i, cmd := range cmds {
		if cmd.Kind != gcode.KindRawExtrude2 {
			t.Errorf("cmds[%d].Kind = %v, want KindRawExtrude2", i, cmd.Kind)
		}
		if cmd.Length != 10 {
			t.Errorf("cmds[%d].Length = %v, want 10", i, cmd.Length)
		}
	}
	// The last edge closes back to the first vertex.
	if cmds[3].To2 != c[0] {
		t.Errorf("cmds[3].To2 = %v, want %v", cmds[3].To2, c[0])
	}
}

func TestInfillPathChainsWithinGroupAndTravelsBetween(t *testing.T) {
	groups := [][]Segment{
		{
			{geom.Point2{X: 0, Y: 0}, geom.Point2{X: 10, Y: 0}},
		},
		{
			{geom.Point2{X: 0, Y: 1}, geom.Point2{X: 10, Y: 1}},
		},
	}
	cmds, err := InfillPath(groups, 0.4, 0.2)
	if err != nil {
		t.Fatalf("InfillPath: %v", err)
	}
	// extrude, travel, extrude
	if len(cmds) != 3 {
		t.Fatalf("len(cmds) = %d, want 3", len(cmds))
	}
	if cmds[0].Kind != gcode.KindRawExtrude2 {
		t.Errorf("cmds[0].Kind = %v, want KindRawExtrude2", cmds[0].Kind)
	}
	if cmds[1].Kind != gcode.KindMove2 {
		t.Errorf("cmds[1].Kind = %v, want KindMove2", cmds[1].Kind)
	}
	if cmds[1].To2 != (geom.Point2{X: 0, Y: 1}) {
		t.Errorf("travel target = %v, want (0,1)", cmds[1].To2)
	}
	if cmds[2].Kind != gcode.KindRawExtrude2 {
		t.Errorf("cmds[2].Kind = %v, want KindRawExtrude2", cmds[2].Kind)
	}
}

func TestInfillPathEmptyGroupIsError(t *testing.T) {
	groups := [][]Segment{{}}
	_, err := InfillPath(groups, 0.4, 0.2)
	if !errors.Is(err, ErrEmptyInfillGroup) {
		t.Errorf("err = %v, want ErrEmptyInfillGroup", err)
	}
}
