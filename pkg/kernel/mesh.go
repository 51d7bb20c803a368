package kernel

import "github.com/chazu/lignin-slice/pkg/geom"

// Mesh is a triangle mesh suitable for rendering or slicing.
// All arrays are flat: vertices has 3 floats per vertex (x,y,z),
// normals has 3 floats per vertex, indices has 3 uint32s per triangle.
type Mesh struct {
	Vertices []float32 `json:"vertices"` // [x0,y0,z0, x1,y1,z1, ...]
	Normals  []float32 `json:"normals"`  // [nx0,ny0,nz0, ...]
	Indices  []uint32  `json:"indices"`  // [i0,i1,i2, ...] triangles
	SolidID  string    `json:"solidId"`  // which solid this mesh was rendered from
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// vertex returns vertex i as a geom.Point3.
func (m *Mesh) vertex(i uint32) geom.Point3 {
	o := int(i) * 3
	return geom.Point3{X: float64(m.Vertices[o]), Y: float64(m.Vertices[o+1]), Z: float64(m.Vertices[o+2])}
}

// Triangles unpacks the mesh's flat index buffer into the slicer's triangle
// type, the boundary between the solid-modeling kernel and the slicing
// pipeline.
func (m *Mesh) Triangles() []geom.Triangle {
	out := make([]geom.Triangle, 0, m.TriangleCount())
	for i := 0; i+2 < len(m.Indices); i += 3 {
		out = append(out, geom.Triangle{
			A: m.vertex(m.Indices[i]),
			B: m.vertex(m.Indices[i+1]),
			C: m.vertex(m.Indices[i+2]),
		})
	}
	return out
}
