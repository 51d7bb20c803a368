package gcode

import (
	"errors"
	"math"
	"runtime"

	"github.com/samber/lo"
)

// ErrAlreadyCooked is returned by Cook when the input already contains a
// cooked Extrude2/Extrude3 command. Re-folding a cooked command's recorded
// EPos back into a fresh prefix sum would double count it, so the caller
// must either recompute it from its original geometry or not cook it
// twice.
var ErrAlreadyCooked = errors.New("gcode: input already contains a cooked extrude command")

// deltaE approximates the filament displacement a raw extrude command
// consumes: the ratio of the printed cross-section to the filament
// cross-section, ΔE = (width * height * length * 2) / (π * filamentDiameter).
// Travel and marker commands contribute zero.
func deltaE(c Command, filamentDiameter float64) (float64, error) {
	switch c.Kind {
	case KindRawExtrude2, KindRawExtrude3:
		return (c.Params.Width * c.Params.Height * c.Length * 2) / (math.Pi * filamentDiameter), nil
	case KindExtrude2, KindExtrude3:
		return 0, ErrAlreadyCooked
	case KindMove2, KindMove3, KindFeedRate,
		KindLayerStart, KindInnerWallStart, KindOuterWallStart, KindSupportStart, KindInfillStart:
		return 0, nil
	default:
		return 0, nil
	}
}

// cookCommand converts a single raw command into its cooked form given the
// absolute E position it lands on after its own delta.
func cookCommand(c Command, ePos float64) Command {
	switch c.Kind {
	case KindRawExtrude2:
		return Command{Kind: KindExtrude2, From2: c.From2, To2: c.To2, EPos: ePos}
	case KindRawExtrude3:
		return Command{Kind: KindExtrude3, From3: c.From3, To3: c.To3, EPos: ePos}
	default:
		return c
	}
}

// Cook transforms raw commands into cooked commands carrying absolute
// cumulative filament position. ExtruderState is read once at entry for
// the starting E, and written once at exit with the final E — it is never
// touched in between, so no command observes an intermediate value.
//
// Per-command ΔE is computed concurrently over chunks of the input (a
// data-parallel map with no ordering requirement); only the following
// prefix sum, which turns per-command ΔE into the cumulative series, runs
// sequentially. The result preserves input order and E is non-decreasing.
func Cook(cmds []Command, ext Extruder, state *ExtruderState) ([]Command, error) {
	if len(cmds) == 0 {
		return nil, nil
	}

	workers := runtime.GOMAXPROCS(0)
	if workers < 1 {
		workers = 1
	}
	chunkSize := (len(cmds) + workers - 1) / workers
	if chunkSize < 1 {
		chunkSize = 1
	}
	chunks := lo.Chunk(cmds, chunkSize)

	deltas := make([][]float64, len(chunks))
	errs := make([]error, len(chunks))

	done := make(chan int, len(chunks))
	for i, chunk := range chunks {
		go func(i int, chunk []Command) {
			ds := make([]float64, len(chunk))
			for j, c := range chunk {
				d, err := deltaE(c, ext.FilamentDiameter)
				if err != nil {
					errs[i] = err
					done <- i
					return
				}
				ds[j] = d
			}
			deltas[i] = ds
			done <- i
		}(i, chunk)
	}
	for range chunks {
		<-done
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	out := make([]Command, 0, len(cmds))
	e := state.E
	for i, chunk := range chunks {
		for j, c := range chunk {
			e += deltas[i][j]
			out = append(out, cookCommand(c, e))
		}
	}
	state.E = e
	return out, nil
}
