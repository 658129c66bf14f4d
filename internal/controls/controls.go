package controls

import (
	"github.com/Faultbox/midgard-water/internal/engine/camera"
	"github.com/Faultbox/midgard-water/internal/engine/lighting"
	"github.com/Faultbox/midgard-water/internal/engine/pipeline"
	"github.com/Faultbox/midgard-water/pkg/math"
)

// Steps applied once per frame while a key is held.
const (
	IntensityStep    float32 = 0.1
	SunStep          float32 = 0.1
	WaterHeightStep  float32 = 0.1
	WaveScaleStep    float32 = 1
	MergeTermStep    float32 = 0.01
	WaveVelocityStep float32 = 0.01
)

// Limits of the tunable water terms.
const (
	MinWaveTextureScale float32 = 1
	MaxWaveTextureScale float32 = 500
)

// Settings are the values the key bindings tune.
type Settings struct {
	Features    pipeline.Features
	DisplayInfo bool

	WaterHeight      float32
	MergeTerm        float32
	WaveTextureScale float32
	WaveVelocity0    math.Vec2
	WaveVelocity1    math.Vec2

	Light lighting.Light
	Sun   lighting.Sun
}

// Changes reports what Apply did that needs follow-up outside the settings.
type Changes struct {
	Quit bool
	// WaterHeight is set when the water quad and clip planes must be rebuilt.
	WaterHeight bool
	// Capture requests a dump of the capture targets.
	Capture bool
	// Save requests writing the current settings to the user config file.
	Save bool
	// Toggled is set when any feature or the info display flipped.
	Toggled bool
}

type toggle struct {
	key Key
	get func(*Settings) *bool
}

var toggles = []toggle{
	{KeyF1, func(s *Settings) *bool { return &s.DisplayInfo }},
	{KeyF2, func(s *Settings) *bool { return &s.Features.Wireframe }},
	{KeyF3, func(s *Settings) *bool { return &s.Features.Lighting }},
	{KeyF4, func(s *Settings) *bool { return &s.Features.DrawWater }},
	{KeyF5, func(s *Settings) *bool { return &s.Features.Refraction }},
	{KeyF6, func(s *Settings) *bool { return &s.Features.Reflection }},
	{KeyF7, func(s *Settings) *bool { return &s.Features.Fresnel }},
	{KeyF8, func(s *Settings) *bool { return &s.Features.Waves }},
	{KeyF9, func(s *Settings) *bool { return &s.Features.Specular }},
	{KeyF10, func(s *Settings) *bool { return &s.Features.Skybox }},
}

// Apply updates s from the key state of one frame. Of each opposing key
// pair only the first held key acts; the sun keys form a single group.
func Apply(s *Settings, keys KeyState) Changes {
	var c Changes

	if keys.Down(KeyEscape) {
		c.Quit = true
	}

	for _, t := range toggles {
		if keys.Pressed(t.key) {
			b := t.get(s)
			*b = !*b
			c.Toggled = true
		}
	}

	if keys.Pressed(KeyF11) {
		c.Capture = true
	}
	if keys.Pressed(KeyF12) {
		c.Save = true
	}

	switch {
	case keys.Down(KeyInsert):
		s.Light.AdjustAmbient(IntensityStep)
	case keys.Down(KeyDelete):
		s.Light.AdjustAmbient(-IntensityStep)
	}

	switch {
	case keys.Down(KeyHome):
		s.Light.AdjustDiffuse(IntensityStep)
	case keys.Down(KeyEnd):
		s.Light.AdjustDiffuse(-IntensityStep)
	}

	if d, ok := sunDelta(keys); ok {
		s.Sun.Nudge(d)
	}

	switch {
	case keys.Down(KeyPageUp):
		s.WaterHeight += WaterHeightStep
		c.WaterHeight = true
	case keys.Down(KeyPageDown):
		s.WaterHeight -= WaterHeightStep
		c.WaterHeight = true
	}

	switch {
	case keys.Down(KeyZ):
		s.WaveTextureScale = clampf(s.WaveTextureScale-WaveScaleStep, MinWaveTextureScale, MaxWaveTextureScale)
	case keys.Down(KeyX):
		s.WaveTextureScale = clampf(s.WaveTextureScale+WaveScaleStep, MinWaveTextureScale, MaxWaveTextureScale)
	}

	switch {
	case keys.Down(KeyC):
		s.MergeTerm = clampf(s.MergeTerm-MergeTermStep, 0, 1)
	case keys.Down(KeyV):
		s.MergeTerm = clampf(s.MergeTerm+MergeTermStep, 0, 1)
	}

	switch {
	case keys.Down(KeyN):
		s.adjustWaveVelocity(WaveVelocityStep)
	case keys.Down(KeyB):
		s.adjustWaveVelocity(-WaveVelocityStep)
	}

	return c
}

func sunDelta(keys KeyState) (math.Vec3, bool) {
	switch {
	case keys.Down(KeyKeypad8):
		return math.Vec3{Z: SunStep}, true
	case keys.Down(KeyKeypad5):
		return math.Vec3{Z: -SunStep}, true
	case keys.Down(KeyKeypad9):
		return math.Vec3{Y: SunStep}, true
	case keys.Down(KeyKeypad3):
		return math.Vec3{Y: -SunStep}, true
	case keys.Down(KeyKeypad6):
		return math.Vec3{X: -SunStep}, true
	case keys.Down(KeyKeypad4):
		return math.Vec3{X: SunStep}, true
	}
	return math.Vec3{}, false
}

func (s *Settings) adjustWaveVelocity(d float32) {
	step := math.Vec2{X: d, Y: d}
	s.WaveVelocity0 = s.WaveVelocity0.Add(step)
	s.WaveVelocity1 = s.WaveVelocity1.Add(step)
}

// Movement returns the camera movement keys held this frame.
func Movement(keys KeyState) camera.Movement {
	return camera.Movement{
		Forward:  keys.Down(KeyW),
		Backward: keys.Down(KeyS),
		Left:     keys.Down(KeyA),
		Right:    keys.Down(KeyD),
		Up:       keys.Down(KeyUp),
		Down:     keys.Down(KeyDown),
	}
}

func clampf(v, lo, hi float32) float32 {
	return max(lo, min(v, hi))
}
