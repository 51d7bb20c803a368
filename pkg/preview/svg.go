package preview

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/chazu/lignin-slice/pkg/geom"
)

// WriteSVG renders a layer's contour set to SVG, one closed polygon per
// contour, scaled by px-per-unit so small layers are still visible.
func WriteSVG(w io.Writer, contours []geom.Contour, width, height int, pxPerUnit float64) {
	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:white")

	for _, c := range contours {
		if len(c) == 0 {
			continue
		}
		xs := make([]int, len(c))
		ys := make([]int, len(c))
		for i, p := range c {
			xs[i] = int(p.X * pxPerUnit)
			ys[i] = height - int(p.Y*pxPerUnit)
		}
		canvas.Polygon(xs, ys, "fill:none;stroke:black;stroke-width:1")
	}

	canvas.End()
}

// WriteSVGPaths renders a set of open polylines (e.g. infill segments) on
// top of the same coordinate transform used by WriteSVG.
func WriteSVGPaths(w io.Writer, paths [][]geom.Point2, width, height int, pxPerUnit float64, style string) {
	canvas := svg.New(w)
	canvas.Start(width, height)

	for _, path := range paths {
		if len(path) < 2 {
			continue
		}
		xs := make([]int, len(path))
		ys := make([]int, len(path))
		for i, p := range path {
			xs[i] = int(p.X * pxPerUnit)
			ys[i] = height - int(p.Y*pxPerUnit)
		}
		canvas.Polyline(xs, ys, style)
	}

	canvas.End()
}
