// Package heightgen generates RAW height maps from Perlin noise, for running
// the demo without a hand-made terrain.
package heightgen

import (
	"fmt"
	"math"

	"github.com/aquilax/go-perlin"

	"github.com/Faultbox/midgard-water/pkg/formats"
)

// Params controls the generated terrain.
type Params struct {
	Width   int
	Height  int
	Seed    int64
	Alpha   float64 // amplitude falloff per octave
	Beta    float64 // frequency growth per octave
	Octaves int32
	// Scale is the number of samples per noise unit; larger values give
	// broader hills.
	Scale float64
}

// DefaultParams returns a 256x256 map with gentle hills.
func DefaultParams() Params {
	return Params{
		Width:   256,
		Height:  256,
		Seed:    1,
		Alpha:   2,
		Beta:    2,
		Octaves: 4,
		Scale:   64,
	}
}

// Generate returns Width*Height samples, y as the outer loop, stretched so
// the lowest sample is 0 and the highest 255.
func Generate(p Params) ([]byte, error) {
	if p.Width < 2 || p.Height < 2 {
		return nil, fmt.Errorf("generating height map: %w: %dx%d", formats.ErrInvalidHeightField, p.Width, p.Height)
	}
	if p.Octaves < 1 {
		return nil, fmt.Errorf("generating height map: octaves %d, need at least 1", p.Octaves)
	}
	if p.Scale <= 0 {
		p.Scale = 1
	}

	noise := perlin.NewPerlin(p.Alpha, p.Beta, p.Octaves, p.Seed)

	values := make([]float64, p.Width*p.Height)
	lo, hi := math.Inf(1), math.Inf(-1)
	for y := range p.Height {
		for x := range p.Width {
			v := noise.Noise2D(float64(x)/p.Scale, float64(y)/p.Scale)
			values[x+y*p.Width] = v
			lo = min(lo, v)
			hi = max(hi, v)
		}
	}

	samples := make([]byte, len(values))
	span := hi - lo
	if span == 0 {
		return samples, nil
	}
	for i, v := range values {
		samples[i] = byte(math.Round((v - lo) / span * 255))
	}
	return samples, nil
}

// RAW generates a height map in the layout formats.ParseHeightField reads.
func RAW(p Params) ([]byte, error) {
	samples, err := Generate(p)
	if err != nil {
		return nil, err
	}
	return formats.EncodeHeightField(p.Width, p.Height, samples)
}
