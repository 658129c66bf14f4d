// Package scene owns the GL side of the water demo: the terrain, water and
// sky renderers, the capture targets, and the pipeline that sequences them.
package scene

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/midgard-water/internal/engine/framebuffer"
	"github.com/Faultbox/midgard-water/internal/engine/pipeline"
	"github.com/Faultbox/midgard-water/internal/engine/terrain"
	"github.com/Faultbox/midgard-water/internal/engine/water"
)

// Textures are the decoded images a scene uploads at creation.
type Textures struct {
	Terrain  *image.RGBA
	WaveMaps [2]*image.RGBA
	// Sky faces in +X, -X, +Y, -Y, +Z, -Z order.
	Sky [6]*image.RGBA
}

// Scene manages the render targets and renderers of one water scene.
type Scene struct {
	targets *framebuffer.Pair
	screen  *framebuffer.Screen

	terrainRenderer *TerrainRenderer
	waterRenderer   *WaterRenderer
	skyboxRenderer  *SkyboxRenderer

	pipeline *pipeline.Pipeline
}

// New creates a scene of the given back-buffer size. The mesh is uploaded
// once; the water quad comes from surface and is replaced with SetSurface.
func New(width, height int32, mesh *terrain.Mesh, surface *water.Surface, tex Textures) (*Scene, error) {
	s := &Scene{screen: framebuffer.NewScreen(width, height)}

	var err error
	if s.targets, err = framebuffer.NewPair(width, height); err != nil {
		return nil, fmt.Errorf("scene targets: %w", err)
	}

	if s.terrainRenderer, err = NewTerrainRenderer(); err != nil {
		s.Destroy()
		return nil, err
	}
	if err := s.terrainRenderer.LoadTerrain(mesh, tex.Terrain); err != nil {
		s.Destroy()
		return nil, err
	}

	if s.waterRenderer, err = NewWaterRenderer(tex.WaveMaps); err != nil {
		s.Destroy()
		return nil, err
	}
	s.waterRenderer.SetSurface(surface)

	if s.skyboxRenderer, err = NewSkyboxRenderer(tex.Sky); err != nil {
		s.Destroy()
		return nil, err
	}

	s.pipeline = pipeline.New(s.targets.Refraction, s.targets.Reflection, s.screen,
		s.skyboxRenderer, s.terrainRenderer, s.waterRenderer)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	return s, nil
}

// Draw renders one frame to the back buffer.
func (s *Scene) Draw(f pipeline.Frame) pipeline.Result {
	return s.pipeline.Draw(f)
}

// SetSurface re-uploads the water quad after a height change.
func (s *Scene) SetSurface(surface *water.Surface) {
	s.waterRenderer.SetSurface(surface)
}

// Resize recreates the capture targets at the new back-buffer size.
func (s *Scene) Resize(width, height int32) error {
	s.screen.Resize(width, height)
	if err := s.targets.Resize(width, height); err != nil {
		return err
	}
	s.pipeline.SetTargets(s.targets.Refraction, s.targets.Reflection)
	return nil
}

// ReadTargets reads back both capture targets as bottom-up RGBA rows.
func (s *Scene) ReadTargets() (refraction, reflection []byte, width, height int32) {
	width, height = s.targets.Refraction.Size()
	return s.targets.Refraction.ReadPixels(), s.targets.Reflection.ReadPixels(), width, height
}

// Aspect returns the back-buffer aspect ratio.
func (s *Scene) Aspect() float32 {
	return s.screen.Aspect()
}

// Destroy releases all resources.
func (s *Scene) Destroy() {
	if s.skyboxRenderer != nil {
		s.skyboxRenderer.Destroy()
		s.skyboxRenderer = nil
	}
	if s.waterRenderer != nil {
		s.waterRenderer.Destroy()
		s.waterRenderer = nil
	}
	if s.terrainRenderer != nil {
		s.terrainRenderer.Destroy()
		s.terrainRenderer = nil
	}
	if s.targets != nil {
		s.targets.Destroy()
		s.targets = nil
	}
}
