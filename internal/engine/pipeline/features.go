// Package pipeline sequences the refraction, reflection and composite passes
// that make up one water frame. It only talks to interfaces, so the GL
// renderers plug in at runtime and tests record the calls.
package pipeline

// Features is the set of per-frame toggles. It is passed by value into every
// Draw call and never mutated by the pipeline.
type Features struct {
	DrawWater  bool
	Waves      bool
	Refraction bool
	Reflection bool
	Fresnel    bool
	Specular   bool
	Lighting   bool
	Skybox     bool
	Wireframe  bool
}

// DefaultFeatures enables every effect.
func DefaultFeatures() Features {
	return Features{
		DrawWater:  true,
		Waves:      true,
		Refraction: true,
		Reflection: true,
		Fresnel:    true,
		Specular:   true,
		Lighting:   true,
		Skybox:     true,
	}
}
