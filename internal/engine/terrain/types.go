// Package terrain builds the triangulated terrain mesh from a height field.
package terrain

// Vertex is a terrain mesh vertex laid out for direct VBO upload.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Mesh holds the complete terrain mesh data ready for GPU upload.
// Indices form a triangle list, counter-clockwise seen from above.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// Bounds holds the axis-aligned bounding box of the terrain.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}
