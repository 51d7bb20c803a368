package meshio

import (
	"os"

	"github.com/chazu/lignin-slice/pkg/geom"
	"github.com/hpinc/go3mf"
)

// LoadThreeMF reads every mesh object in a .3mf model file and returns its
// triangles, the native mesh interchange format for FFF slicers.
func LoadThreeMF(path string) ([]geom.Triangle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}

	var model go3mf.Model
	d := go3mf.NewDecoder(f, fi.Size())
	if err := d.Decode(&model); err != nil {
		return nil, err
	}

	var tris []geom.Triangle
	for _, obj := range model.Resources.Objects {
		if obj.Mesh == nil {
			continue
		}
		verts := obj.Mesh.Vertices.Vertex
		for _, t := range obj.Mesh.Triangles.Triangle {
			if int(t.V1) >= len(verts) || int(t.V2) >= len(verts) || int(t.V3) >= len(verts) {
				continue
			}
			tris = append(tris, geom.Triangle{
				A: vertexToPoint3(verts[t.V1]),
				B: vertexToPoint3(verts[t.V2]),
				C: vertexToPoint3(verts[t.V3]),
			})
		}
	}
	return tris, nil
}

func vertexToPoint3(v go3mf.Point3D) geom.Point3 {
	return geom.Point3{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
}
