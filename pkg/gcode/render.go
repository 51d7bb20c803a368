package gcode

import (
	"errors"
	"strconv"
	"strings"

	"github.com/chazu/lignin-slice/pkg/geom"
)

// ErrEncoding is returned by Render when asked to emit a raw (un-cooked)
// extrude command, or a FeedRate whose inner command is not a Move2.
var ErrEncoding = errors.New("gcode: encoding error")

// position tracks the machine's last commanded X/Y/Z, so Render only emits
// an axis when it actually changed.
type position struct {
	x, y, z float64
}

// Renderer renders a sequence of cooked commands to G-code text lines,
// tracking the machine position across calls.
type Renderer struct {
	pos position
}

// NewRenderer returns a Renderer with the machine at the origin.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render renders a single cooked command to one line of G-code text.
func (r *Renderer) Render(c Command) (string, error) {
	switch c.Kind {
	case KindMove2:
		return r.renderMove2(c, ""), nil
	case KindMove3:
		return r.renderMove3(c), nil
	case KindExtrude2:
		return r.renderExtrude2(c), nil
	case KindExtrude3:
		return r.renderExtrude3(c), nil
	case KindFeedRate:
		if c.Inner == nil || c.Inner.Kind != KindMove2 {
			return "", ErrEncoding
		}
		return r.renderMove2(*c.Inner, formatFixed(c.Rate)), nil
	case KindRawExtrude2, KindRawExtrude3:
		return "", ErrEncoding
	case KindLayerStart:
		return ";LAYER:" + strconv.Itoa(c.Layer), nil
	case KindInnerWallStart:
		return ";TYPE:WALL-INNER", nil
	case KindOuterWallStart:
		return ";TYPE:WALL-OUTER", nil
	case KindSupportStart:
		return ";TYPE:SUPPORT", nil
	case KindInfillStart:
		return ";TYPE:FILL", nil
	default:
		return "", ErrEncoding
	}
}

// RenderAll renders a full cooked command stream, stopping at the first
// encoding error.
func (r *Renderer) RenderAll(cmds []Command) ([]string, error) {
	lines := make([]string, 0, len(cmds))
	for _, c := range cmds {
		line, err := r.Render(c)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (r *Renderer) renderMove2(c Command, feed string) string {
	var b strings.Builder
	b.WriteString("G0 ")
	if feed != "" {
		b.WriteString("F")
		b.WriteString(feed)
		b.WriteString(" ")
	}
	r.writeAxis(&b, "X", c.To2.X, r.pos.x, func(v float64) { r.pos.x = v })
	r.writeAxis(&b, "Y", c.To2.Y, r.pos.y, func(v float64) { r.pos.y = v })
	return b.String()
}

func (r *Renderer) renderMove3(c Command) string {
	var b strings.Builder
	b.WriteString("G0 ")
	r.writeAxis(&b, "X", c.To3.X, r.pos.x, func(v float64) { r.pos.x = v })
	r.writeAxis(&b, "Y", c.To3.Y, r.pos.y, func(v float64) { r.pos.y = v })
	r.writeAxis(&b, "Z", c.To3.Z, r.pos.z, func(v float64) { r.pos.z = v })
	return b.String()
}

func (r *Renderer) renderExtrude2(c Command) string {
	var b strings.Builder
	b.WriteString("G1 ")
	r.writeAxis(&b, "X", c.To2.X, r.pos.x, func(v float64) { r.pos.x = v })
	r.writeAxis(&b, "Y", c.To2.Y, r.pos.y, func(v float64) { r.pos.y = v })
	b.WriteString("E")
	b.WriteString(formatFixed(c.EPos))
	b.WriteString(" ")
	return b.String()
}

func (r *Renderer) renderExtrude3(c Command) string {
	var b strings.Builder
	b.WriteString("G1 ")
	r.writeAxis(&b, "X", c.To3.X, r.pos.x, func(v float64) { r.pos.x = v })
	r.writeAxis(&b, "Y", c.To3.Y, r.pos.y, func(v float64) { r.pos.y = v })
	r.writeAxis(&b, "Z", c.To3.Z, r.pos.z, func(v float64) { r.pos.z = v })
	b.WriteString("E")
	b.WriteString(formatFixed(c.EPos))
	b.WriteString(" ")
	return b.String()
}

// writeAxis appends "<axis><value> " to b and commits the new position via
// commit, but only if value differs from prior at the 1e-5 tolerance.
func (r *Renderer) writeAxis(b *strings.Builder, axis string, value, prior float64, commit func(float64)) {
	if almostEqualR(value, prior) {
		return
	}
	b.WriteString(axis)
	b.WriteString(formatFixed(value))
	b.WriteString(" ")
	commit(value)
}

func almostEqualR(a, b float64) bool {
	d := a - b
	return d > -geom.Epsilon && d < geom.Epsilon
}

// formatFixed renders x with five fractional digits, then strips trailing
// zeros and a dangling decimal point. Exact zero renders as "0".
func formatFixed(x float64) string {
	s := strconv.FormatFloat(x, 'f', 5, 64)
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}
