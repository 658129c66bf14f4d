// Package water builds the water surface geometry and the per-frame state
// the capture passes and the water shader depend on.
package water

import "github.com/Faultbox/midgard-water/pkg/math"

// QuadVertex is a water surface vertex.
type QuadVertex struct {
	Position [3]float32
	TexCoord [2]float32
}

// Quad is a unit square at the water height, scaled to the world extent at draw time.
type Quad struct {
	Vertices [4]QuadVertex
	Indices  [6]uint32
}

// BuildQuad creates the unit water quad at the given height.
func BuildQuad(height float32) Quad {
	return Quad{
		Vertices: [4]QuadVertex{
			{Position: [3]float32{0, height, 0}, TexCoord: [2]float32{0, 0}},
			{Position: [3]float32{0, height, 1}, TexCoord: [2]float32{0, 1}},
			{Position: [3]float32{1, height, 1}, TexCoord: [2]float32{1, 1}},
			{Position: [3]float32{1, height, 0}, TexCoord: [2]float32{1, 0}},
		},
		Indices: [6]uint32{0, 1, 2, 2, 3, 0},
	}
}

// WorldTransform scales the unit quad to cover [minX, minX+sizeX] x [minZ, minZ+sizeZ].
func WorldTransform(minX, minZ, sizeX, sizeZ float32) math.Mat4 {
	return math.Translate(minX, 0, minZ).Mul(math.Scale(sizeX, 1, sizeZ))
}

// Surface holds everything derived from the water height.
type Surface struct {
	Height     float32
	Quad       Quad
	Refraction math.Vec4
	Reflection math.Vec4
}

// NewSurface derives the quad and both clip planes for height.
func NewSurface(height float32) *Surface {
	s := &Surface{}
	s.rebuild(height)
	return s
}

// SetHeight rebuilds the quad and clip planes. It reports whether the height
// changed; callers re-upload the quad only then.
func (s *Surface) SetHeight(height float32) bool {
	if height == s.Height {
		return false
	}
	s.rebuild(height)
	return true
}

func (s *Surface) rebuild(height float32) {
	s.Height = height
	s.Quad = BuildQuad(height)
	s.Refraction = ClipPlane(height, false)
	s.Reflection = ClipPlane(height, true)
}
