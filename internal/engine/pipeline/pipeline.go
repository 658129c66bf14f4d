package pipeline

import (
	"github.com/Faultbox/midgard-water/internal/engine/lighting"
	"github.com/Faultbox/midgard-water/internal/engine/water"
	"github.com/Faultbox/midgard-water/pkg/math"
)

// Target is an off-screen colour+depth render target.
type Target interface {
	Bind()
	Unbind()
	Clear(r, g, b, a float32)
	ColorTexture() uint32
}

// Screen is the window back buffer.
type Screen interface {
	Bind()
	Clear(r, g, b, a float32)
}

// SkyPass carries what the sky box needs for one pass.
type SkyPass struct {
	View       math.Mat4
	Projection math.Mat4
	// Eye is where the sky cube is centred.
	Eye math.Vec3
}

// TerrainPass carries what the terrain needs for one pass.
// Clip is nil in the composite pass.
type TerrainPass struct {
	View       math.Mat4
	Projection math.Mat4
	Clip       *math.Vec4
	Lighting   bool
	Wireframe  bool
	Light      lighting.Light
	Sun        lighting.Sun
}

// WaterParams are the tunable water shading terms.
type WaterParams struct {
	Color            math.Vec3
	MergeTerm        float32
	WaveTextureScale float32
}

// WaterPass carries what the water surface needs for the composite pass.
// Refraction and Reflection are the textures captured earlier in the frame.
type WaterPass struct {
	View           math.Mat4
	Projection     math.Mat4
	World          math.Mat4
	ReflectionView math.Mat4
	Eye            math.Vec3
	Refraction     uint32
	Reflection     uint32
	Waves          water.WaveState
	Params         WaterParams
	Sun            lighting.Sun
	Features       Features
}

// SkyRenderer draws the sky box.
type SkyRenderer interface {
	DrawSky(p SkyPass)
}

// TerrainRenderer draws the terrain mesh.
type TerrainRenderer interface {
	DrawTerrain(p TerrainPass)
}

// WaterRenderer draws the water quad.
type WaterRenderer interface {
	DrawWater(p WaterPass)
}

// Frame is everything one frame of drawing depends on.
type Frame struct {
	Features   Features
	Projection math.Mat4
	View       math.Mat4
	Eye        math.Vec3
	Reflected  water.ReflectedView
	Surface    water.Surface
	WaterWorld math.Mat4
	Waves      water.WaveState
	Water      WaterParams
	Light      lighting.Light
	Sun        lighting.Sun
}

// Result reports the textures captured this frame.
type Result struct {
	Refraction uint32
	Reflection uint32
	WaterDrawn bool
}

// Pipeline runs the three passes in order.
type Pipeline struct {
	refraction Target
	reflection Target
	screen     Screen

	sky     SkyRenderer
	terrain TerrainRenderer
	water   WaterRenderer

	ClearColor [4]float32
}

// CornflowerBlue is the default clear colour.
var CornflowerBlue = [4]float32{100.0 / 255, 149.0 / 255, 237.0 / 255, 1}

// New creates a pipeline over the given targets and renderers.
func New(refraction, reflection Target, screen Screen, sky SkyRenderer, terrain TerrainRenderer, water WaterRenderer) *Pipeline {
	return &Pipeline{
		refraction: refraction,
		reflection: reflection,
		screen:     screen,
		sky:        sky,
		terrain:    terrain,
		water:      water,
		ClearColor: CornflowerBlue,
	}
}

// SetTargets swaps the capture targets, used after they are recreated on resize.
func (p *Pipeline) SetTargets(refraction, reflection Target) {
	p.refraction = refraction
	p.reflection = reflection
}

// Draw renders one frame: refraction capture, reflection capture, composite.
// Both captures run every frame whatever the toggles say; toggles only change
// what the composite pass samples.
func (p *Pipeline) Draw(f Frame) Result {
	refraction := p.capture(p.refraction, f, f.View, f.Surface.Refraction)
	reflection := p.capture(p.reflection, f, f.Reflected.View, f.Surface.Reflection)

	drawn := p.composite(f, refraction, reflection)

	return Result{
		Refraction: refraction,
		Reflection: reflection,
		WaterDrawn: drawn,
	}
}

// capture renders sky and clipped terrain into target and returns its texture.
func (p *Pipeline) capture(target Target, f Frame, view math.Mat4, clip math.Vec4) uint32 {
	target.Bind()
	c := p.ClearColor
	target.Clear(c[0], c[1], c[2], c[3])

	if f.Features.Skybox {
		p.sky.DrawSky(SkyPass{View: view, Projection: f.Projection, Eye: f.Eye})
	}

	p.terrain.DrawTerrain(TerrainPass{
		View:       view,
		Projection: f.Projection,
		Clip:       &clip,
		Lighting:   f.Features.Lighting,
		Wireframe:  f.Features.Wireframe,
		Light:      f.Light,
		Sun:        f.Sun,
	})

	target.Unbind()
	return target.ColorTexture()
}

func (p *Pipeline) composite(f Frame, refraction, reflection uint32) bool {
	p.screen.Bind()
	c := p.ClearColor
	p.screen.Clear(c[0], c[1], c[2], c[3])

	if f.Features.Skybox {
		p.sky.DrawSky(SkyPass{View: f.View, Projection: f.Projection, Eye: f.Eye})
	}

	p.terrain.DrawTerrain(TerrainPass{
		View:       f.View,
		Projection: f.Projection,
		Lighting:   f.Features.Lighting,
		Wireframe:  f.Features.Wireframe,
		Light:      f.Light,
		Sun:        f.Sun,
	})

	if !f.Features.DrawWater {
		return false
	}

	p.water.DrawWater(WaterPass{
		View:           f.View,
		Projection:     f.Projection,
		World:          f.WaterWorld,
		ReflectionView: f.Reflected.View,
		Eye:            f.Eye,
		Refraction:     refraction,
		Reflection:     reflection,
		Waves:          f.Waves,
		Params:         f.Water,
		Sun:            f.Sun,
		Features:       f.Features,
	})
	return true
}
