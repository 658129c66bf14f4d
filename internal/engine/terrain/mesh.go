package terrain

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/midgard-water/pkg/formats"
)

// BuildMesh creates a terrain mesh from a height field.
// Vertex (x, y) sits at (x*cellSpacing, height, y*cellSpacing); cellSpacing <= 0 means 1.
func BuildMesh(hf *formats.HeightField, cellSpacing float32) (*Mesh, error) {
	if hf == nil {
		return nil, fmt.Errorf("building terrain mesh: %w: nil height field", formats.ErrInvalidHeightField)
	}
	if err := hf.Validate(); err != nil {
		return nil, fmt.Errorf("building terrain mesh: %w", err)
	}
	if cellSpacing <= 0 {
		cellSpacing = 1
	}

	width, height := hf.Width, hf.Height
	mesh := &Mesh{
		Vertices: make([]Vertex, width*height),
		Indices:  make([]uint32, 0, 6*(width-1)*(height-1)),
		Bounds: Bounds{
			Min: [3]float32{1e10, 1e10, 1e10},
			Max: [3]float32{-1e10, -1e10, -1e10},
		},
	}

	for y := range height {
		for x := range width {
			pos := [3]float32{float32(x) * cellSpacing, hf.At(x, y), float32(y) * cellSpacing}
			mesh.Vertices[x+y*width] = Vertex{
				Position: pos,
				Normal:   vertexNormal(hf, x, y, cellSpacing),
				TexCoord: [2]float32{float32(x) / float32(width), 1 - float32(y)/float32(height)},
			}
			updateBounds(&mesh.Bounds, pos)
		}
	}

	for y := 0; y < height-1; y++ {
		for x := 0; x < width-1; x++ {
			lowerLeft := uint32(x + y*width)
			lowerRight := uint32(x + 1 + y*width)
			topLeft := uint32(x + (y+1)*width)
			topRight := uint32(x + 1 + (y+1)*width)

			mesh.Indices = append(mesh.Indices,
				topLeft, lowerRight, lowerLeft,
				topLeft, topRight, lowerRight,
			)
		}
	}

	return mesh, nil
}

// vertexNormal estimates the normal at (x, y) from neighbouring heights.
// Each slope vector is normalized on its own before the two are summed, so
// both directions weigh the same whatever the local steepness.
func vertexNormal(hf *formats.HeightField, x, y int, spacing float32) [3]float32 {
	dx := centralDifference(x, hf.Width, func(i int) float32 { return hf.At(i, y) }) / spacing
	dz := centralDifference(y, hf.Height, func(i int) float32 { return hf.At(x, i) }) / spacing

	a := normalize([3]float32{0, 1, dx})
	b := normalize([3]float32{dz, 1, 0})
	return normalize([3]float32{a[0] + b[0], a[1] + b[1], a[2] + b[2]})
}

// centralDifference returns h(i-1) - h(i+1), falling back to a one-sided
// difference at either border.
func centralDifference(i, n int, h func(int) float32) float32 {
	switch {
	case i == 0:
		return h(i) - h(i+1)
	case i+1 < n:
		return h(i-1) - h(i+1)
	default:
		return h(i-1) - h(i)
	}
}

func updateBounds(b *Bounds, p [3]float32) {
	for i := range 3 {
		b.Min[i] = min(b.Min[i], p[i])
		b.Max[i] = max(b.Max[i], p[i])
	}
}

func normalize(v [3]float32) [3]float32 {
	l := math32.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if l < 0.0001 {
		return [3]float32{0, 1, 0}
	}
	return [3]float32{v[0] / l, v[1] / l, v[2] / l}
}
