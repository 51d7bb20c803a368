// Package gcode models raw and cooked machine-control commands and the
// cumulative-filament-position ("cooking") transform between them.
package gcode

import "github.com/chazu/lignin-slice/pkg/geom"

// Params describes a printed path segment's cross-section.
type Params struct {
	Width  float64
	Height float64
}

// Kind tags which variant a Command value holds.
type Kind int

const (
	KindMove2 Kind = iota
	KindMove3
	KindRawExtrude2
	KindRawExtrude3
	KindExtrude2
	KindExtrude3
	KindFeedRate
	KindLayerStart
	KindInnerWallStart
	KindOuterWallStart
	KindSupportStart
	KindInfillStart
)

// Command is a single G-code command, raw or cooked. Which fields are
// meaningful depends on Kind:
//
//   - Move2: To2
//   - Move3: To3
//   - RawExtrude2: From2, To2, Length, Params
//   - RawExtrude3: From3, To3, Length, Params
//   - Extrude2: From2, To2, EPos (cooked)
//   - Extrude3: From3, To3, EPos (cooked)
//   - FeedRate: Rate, Inner (the Move2 command it modifies)
//   - LayerStart: Layer
//   - InnerWallStart, OuterWallStart, SupportStart, InfillStart: no fields
type Command struct {
	Kind Kind

	From2, To2 geom.Point2
	From3, To3 geom.Point3

	Length float64
	Params Params

	EPos float64

	Rate  float64
	Inner *Command

	Layer int
}

// Move2 returns a travel move to p.
func Move2(p geom.Point2) Command {
	return Command{Kind: KindMove2, To2: p}
}

// Move3 returns a travel move to p.
func Move3(p geom.Point3) Command {
	return Command{Kind: KindMove3, To3: p}
}

// RawExtrude2 returns an uncooked extrude move from a to b.
func RawExtrude2(a, b geom.Point2, params Params) Command {
	return Command{Kind: KindRawExtrude2, From2: a, To2: b, Length: a.Dist(b), Params: params}
}

// RawExtrude3 returns an uncooked extrude move from a to b.
func RawExtrude3(a, b geom.Point3, params Params) Command {
	return Command{Kind: KindRawExtrude3, From3: a, To3: b, Length: a.Dist(b), Params: params}
}

// FeedRate returns a feed-rate command that applies to a Move2 command.
func FeedRate(rate float64, move Command) Command {
	m := move
	return Command{Kind: KindFeedRate, Rate: rate, Inner: &m}
}

// LayerStart returns the ;LAYER:n marker.
func LayerStart(n int) Command {
	return Command{Kind: KindLayerStart, Layer: n}
}

// InnerWallStart returns the ;TYPE:WALL-INNER marker.
func InnerWallStart() Command { return Command{Kind: KindInnerWallStart} }

// OuterWallStart returns the ;TYPE:WALL-OUTER marker.
func OuterWallStart() Command { return Command{Kind: KindOuterWallStart} }

// SupportStart returns the ;TYPE:SUPPORT marker.
func SupportStart() Command { return Command{Kind: KindSupportStart} }

// InfillStart returns the ;TYPE:FILL marker.
func InfillStart() Command { return Command{Kind: KindInfillStart} }

// Extruder describes the filament a print job feeds through the nozzle.
type Extruder struct {
	FilamentDiameter float64
}

// ExtruderState is the mutable cell holding the current cumulative
// filament position. It is a per-job handle threaded through the
// planner, never a package-level singleton, so the core stays reentrant.
type ExtruderState struct {
	E float64
}

// NewExtruderState returns a state initialized to E=0.
func NewExtruderState() *ExtruderState {
	return &ExtruderState{}
}
