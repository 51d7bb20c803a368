// Package preview renders a layer's contours to interchange formats for
// visual debugging, the 2D counterpart of the mesh preview the teacher
// kernel sends to its frontend.
package preview

import (
	"github.com/chazu/lignin-slice/pkg/geom"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/entity"
)

// WriteDXF writes a layer's contour set to a DXF file, one lightweight
// polyline per contour, closed by repeating its first vertex. All contours
// go on a single DXF layer named "Contour"; they are not separated by
// nesting depth.
func WriteDXF(path string, contours []geom.Contour) error {
	d := dxf.NewDrawing()
	d.Header().LtScale = 1.0

	layerName := "Contour"
	d.AddLayer(layerName, color.Red, dxf.DefaultLineType, true)
	d.ChangeLayer(layerName)

	for _, c := range contours {
		if len(c) == 0 {
			continue
		}
		closed := append(append([]geom.Point2{}, c...), c[0])
		lwp := entity.NewLwPolyline(len(closed))
		for i, p := range closed {
			lwp.Vertices[i] = []float64{p.X, p.Y}
		}
		d.AddEntity(lwp)
	}

	return d.SaveAs(path)
}
