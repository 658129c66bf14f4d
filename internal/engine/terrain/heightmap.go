package terrain

import "github.com/Faultbox/midgard-water/pkg/formats"

// HeightAt returns the bilinearly interpolated terrain height at a world
// position. Positions outside the field are clamped to its border.
func HeightAt(hf *formats.HeightField, cellSpacing, worldX, worldZ float32) float32 {
	if hf == nil || hf.Width < 2 || hf.Height < 2 {
		return 0
	}
	if cellSpacing <= 0 {
		cellSpacing = 1
	}

	fx := clampf(worldX/cellSpacing, 0, float32(hf.Width-1))
	fz := clampf(worldZ/cellSpacing, 0, float32(hf.Height-1))

	cellX := min(int(fx), hf.Width-2)
	cellZ := min(int(fz), hf.Height-2)

	fracX := fx - float32(cellX)
	fracZ := fz - float32(cellZ)

	south := hf.At(cellX, cellZ)*(1-fracX) + hf.At(cellX+1, cellZ)*fracX
	north := hf.At(cellX, cellZ+1)*(1-fracX) + hf.At(cellX+1, cellZ+1)*fracX
	return south*(1-fracZ) + north*fracZ
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
