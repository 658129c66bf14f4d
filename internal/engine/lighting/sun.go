// Package lighting holds the directional light and ambient/diffuse terms
// shared by the terrain and water shaders.
package lighting

import "github.com/Faultbox/midgard-water/pkg/math"

// MaxIntensity bounds the ambient and diffuse intensities.
const MaxIntensity float32 = 10

// Sun is the directional light that drives diffuse shading and the water
// specular highlight. Direction is the unit vector the light travels along.
type Sun struct {
	Color     math.Vec3
	Direction math.Vec3
	Factor    float32
	Power     float32
}

// DefaultSun returns a warm low sun.
func DefaultSun() Sun {
	return Sun{
		Color:     math.Vec3{X: 1, Y: 0.8, Z: 0.4},
		Direction: math.Vec3{X: -0.85, Y: -0.45, Z: -0.25}.Normalize(),
		Factor:    1.5,
		Power:     250,
	}
}

// Nudge offsets the direction by delta and renormalizes it. A delta that
// would zero the direction is ignored.
func (s *Sun) Nudge(delta math.Vec3) {
	d := s.Direction.Add(delta)
	if d.Length() == 0 {
		return
	}
	s.Direction = d.Normalize()
}

// Light holds the ambient and diffuse terms of the terrain lighting.
type Light struct {
	AmbientColor     math.Vec4
	AmbientIntensity float32
	DiffuseColor     math.Vec4
	DiffuseIntensity float32
}

// DefaultLight returns the grey ambient and reddish diffuse the demo starts with.
func DefaultLight() Light {
	return Light{
		AmbientColor:     math.Vec4{0.42, 0.42, 0.42, 1},
		AmbientIntensity: 1,
		DiffuseColor:     math.Vec4{0.75, 0.3, 0.3, 1},
		DiffuseIntensity: 1,
	}
}

// AdjustAmbient changes the ambient intensity within [0, MaxIntensity].
func (l *Light) AdjustAmbient(delta float32) {
	l.AmbientIntensity = clampf(l.AmbientIntensity+delta, 0, MaxIntensity)
}

// AdjustDiffuse changes the diffuse intensity within [0, MaxIntensity].
func (l *Light) AdjustDiffuse(delta float32) {
	l.DiffuseIntensity = clampf(l.DiffuseIntensity+delta, 0, MaxIntensity)
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
