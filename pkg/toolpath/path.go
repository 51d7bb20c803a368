// Package toolpath turns ordered 2D paths — contour walls and infill line
// groups — into the raw extrude commands gcode.Cook later assigns
// cumulative filament position to.
package toolpath

import (
	"errors"

	"github.com/chazu/lignin-slice/pkg/gcode"
	"github.com/chazu/lignin-slice/pkg/geom"
)

// ErrEmptyInfillGroup is returned by InfillPath when given an empty line
// segment group. Callers are expected to pre-filter empty groups before
// calling; this is reported as an error rather than silently skipped so a
// caller bug surfaces instead of producing a truncated path.
var ErrEmptyInfillGroup = errors.New("toolpath: empty infill segment group")

// ContourPath emits one RawExtrude2 per edge of the oriented contour p,
// walking p[0]->p[1]->...->p[n-1] and closing back to p[0], at path width w
// and height h.
func ContourPath(p geom.Contour, w, h float64) []gcode.Command {
	n := len(p)
	cmds := make([]gcode.Command, 0, n)
	for i := 0; i < n; i++ {
		a, b := p.Edge(i)
		cmds = append(cmds, gcode.RawExtrude2(a, b, gcode.Params{Width: w, Height: h}))
	}
	return cmds
}

// Segment is one segment of a parallel infill sub-path.
type Segment [2]geom.Point2

// InfillPath renders a list of infill groups — each a run of segments
// belonging to one parallel sub-path — into extrude and travel commands.
// The first segment of each group is extruded, consecutive segments within
// a group are chained with a connecting extrude from one segment's end to
// the next one's start (omitted when those points coincide), and a
// non-extruding travel move bridges the gap between one group's end and
// the next group's start.
func InfillPath(groups [][]Segment, w, h float64) ([]gcode.Command, error) {
	var cmds []gcode.Command
	haveLast := false

	for _, group := range groups {
		if len(group) == 0 {
			return nil, ErrEmptyInfillGroup
		}
		if haveLast {
			cmds = append(cmds, gcode.Move2(group[0][0]))
		}
		for j, seg := range group {
			if j > 0 && !group[j-1][1].ApproxEqual(seg[0]) {
				cmds = append(cmds, gcode.RawExtrude2(group[j-1][1], seg[0], gcode.Params{Width: w, Height: h}))
			}
			cmds = append(cmds, gcode.RawExtrude2(seg[0], seg[1], gcode.Params{Width: w, Height: h}))
		}
		haveLast = true
	}
	return cmds, nil
}
