// Package meshio adapts the two real triangle-mesh sources a print job can
// start from — a solid rendered by pkg/kernel's SDF backend, or a model
// loaded from a .3mf file — into the []geom.Triangle slices pkg/slicing
// consumes.
package meshio

import (
	"github.com/chazu/lignin-slice/pkg/geom"
	"github.com/chazu/lignin-slice/pkg/kernel"
	"github.com/deadsy/sdfx/sdf"
)

// FromKernelMesh unpacks a kernel.Mesh (the output of Kernel.ToMesh) into
// slicer triangles.
func FromKernelMesh(m *kernel.Mesh) []geom.Triangle {
	return m.Triangles()
}

// FromSDFXTriangles converts sdfx's own marching-cubes output directly,
// for callers that render with render.ToTriangles themselves instead of
// going through the kernel.Kernel abstraction.
func FromSDFXTriangles(tris []*sdf.Triangle3) []geom.Triangle {
	out := make([]geom.Triangle, len(tris))
	for i, t := range tris {
		out[i] = geom.Triangle{
			A: geom.Point3{X: t[0].X, Y: t[0].Y, Z: t[0].Z},
			B: geom.Point3{X: t[1].X, Y: t[1].Y, Z: t[1].Z},
			C: geom.Point3{X: t[2].X, Y: t[2].Y, Z: t[2].Z},
		}
	}
	return out
}
