package game

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-water/internal/assets"
	"github.com/Faultbox/midgard-water/internal/config"
	"github.com/Faultbox/midgard-water/internal/controls"
	"github.com/Faultbox/midgard-water/internal/engine/camera"
	"github.com/Faultbox/midgard-water/internal/engine/debug"
	"github.com/Faultbox/midgard-water/internal/engine/lighting"
	"github.com/Faultbox/midgard-water/internal/engine/pipeline"
	"github.com/Faultbox/midgard-water/internal/engine/scene"
	"github.com/Faultbox/midgard-water/internal/engine/terrain"
	"github.com/Faultbox/midgard-water/internal/engine/water"
	"github.com/Faultbox/midgard-water/pkg/formats"
	"github.com/Faultbox/midgard-water/pkg/math"
)

// SceneRenderer is the GL scene as the demo drives it.
type SceneRenderer interface {
	Draw(f pipeline.Frame) pipeline.Result
	SetSurface(s *water.Surface)
	Resize(width, height int32) error
	Aspect() float32
	ReadTargets() (refraction, reflection []byte, width, height int32)
	Destroy()
}

// InputState is what the demo reads from input each frame.
type InputState interface {
	controls.KeyState
	MousePosition() (x, y int32)
	RightButtonHeld() bool
}

// WaterDemo is the water over terrain scene: it turns input into settings,
// moves the camera, animates the waves and hands each frame to the scene.
type WaterDemo struct {
	cfg   *config.Config
	in    InputState
	scene SceneRenderer
	log   *zap.Logger

	Settings controls.Settings

	camera     *camera.FreeCamera
	controller *camera.Controller
	surface    *water.Surface
	waves      water.WaveState
	projection math.Mat4
	waterWorld math.Mat4

	capture      *debug.ScreenshotCapture
	surfaceDirty bool
	captureNext  bool
}

// NewWaterDemo loads the heightmap and textures named in cfg, builds the
// terrain mesh and creates the GL scene. A GL context must be current.
func NewWaterDemo(cfg *config.Config, am *assets.Manager, in InputState, width, height int32, log *zap.Logger) (*WaterDemo, error) {
	data, err := am.Load(cfg.Assets.Heightmap)
	if err != nil {
		return nil, fmt.Errorf("heightmap: %w", err)
	}
	hf, err := formats.ParseHeightField(data, cfg.Terrain.MaxElevation)
	if err != nil {
		return nil, fmt.Errorf("heightmap %s: %w", cfg.Assets.Heightmap, err)
	}

	mesh, err := terrain.BuildMesh(hf, cfg.Terrain.CellSpacing)
	if err != nil {
		return nil, err
	}
	lo, hi := hf.MinMax()
	log.Info("terrain built",
		zap.Int("width", hf.Width),
		zap.Int("height", hf.Height),
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Float32("min_elevation", lo),
		zap.Float32("max_elevation", hi),
	)

	tex, err := loadTextures(cfg.Assets, am, log)
	if err != nil {
		return nil, err
	}
	hits, misses := am.Cache().Stats()
	log.Debug("assets loaded", zap.Int("cache_hits", hits), zap.Int("cache_misses", misses))

	surface := water.NewSurface(cfg.Water.Height)
	sc, err := scene.New(width, height, mesh, surface, tex)
	if err != nil {
		return nil, err
	}

	return newWaterDemo(cfg, hf, surface, sc, in, log), nil
}

func loadTextures(a config.AssetsConfig, am *assets.Manager, log *zap.Logger) (scene.Textures, error) {
	var tex scene.Textures
	var err error

	if tex.Terrain, err = am.LoadImage(a.TerrainTexture); err != nil {
		log.Warn("terrain texture unavailable, using plain white", zap.Error(err))
	}
	for i, name := range a.WaveMaps {
		if tex.WaveMaps[i], err = am.LoadImage(name); err != nil {
			return tex, fmt.Errorf("wave map: %w", err)
		}
	}
	for i, name := range a.Skybox {
		if tex.Sky[i], err = am.LoadImage(name); err != nil {
			return tex, fmt.Errorf("skybox: %w", err)
		}
	}
	return tex, nil
}

// newWaterDemo wires an already built scene.
func newWaterDemo(cfg *config.Config, hf *formats.HeightField, surface *water.Surface, sc SceneRenderer, in InputState, log *zap.Logger) *WaterDemo {
	d := &WaterDemo{
		cfg:     cfg,
		in:      in,
		scene:   sc,
		log:     log,
		surface: surface,
		capture: debug.NewScreenshotCapture(cfg.Debug.CaptureDir, "water"),
		Settings: controls.Settings{
			Features:         featuresFromConfig(cfg.Features),
			DisplayInfo:      cfg.Features.DisplayInfo,
			WaterHeight:      surface.Height,
			MergeTerm:        cfg.Water.MergeTerm,
			WaveTextureScale: cfg.Water.WaveTextureScale,
			WaveVelocity0:    cfg.Water.WaveVelocity0.Math(),
			WaveVelocity1:    cfg.Water.WaveVelocity1.Math(),
			Light: lighting.Light{
				AmbientColor:     cfg.Lighting.AmbientColor.Math(),
				AmbientIntensity: cfg.Lighting.AmbientIntensity,
				DiffuseColor:     cfg.Lighting.DiffuseColor.Math(),
				DiffuseIntensity: cfg.Lighting.DiffuseIntensity,
			},
			Sun: lighting.Sun{
				Color:     cfg.Sun.Color.Math(),
				Direction: cfg.Sun.Direction.Math().Normalize(),
				Factor:    cfg.Sun.Factor,
				Power:     cfg.Sun.Power,
			},
		},
	}

	d.camera = camera.New(cfg.Camera.Position.Math(), cfg.Camera.Target.Math())
	d.controller = camera.NewController(d.camera)
	d.controller.MoveSpeed = cfg.Camera.MoveSpeed
	d.controller.RotateSensitivity = cfg.Camera.RotateSensitivity
	if clearance := cfg.Camera.GroundClearance; clearance >= 0 {
		spacing := cfg.Terrain.CellSpacing
		d.controller.MinHeight = func(x, z float32) float32 {
			return terrain.HeightAt(hf, spacing, x, z) + clearance
		}
	}

	d.waterWorld = waterWorld(hf, cfg.Terrain.CellSpacing, cfg.Water.Extent)
	d.updateProjection()

	return d
}

func featuresFromConfig(f config.FeaturesConfig) pipeline.Features {
	return pipeline.Features{
		DrawWater:  f.DrawWater,
		Waves:      f.Waves,
		Refraction: f.Refraction,
		Reflection: f.Reflection,
		Fresnel:    f.Fresnel,
		Specular:   f.Specular,
		Lighting:   f.Lighting,
		Skybox:     f.Skybox,
		Wireframe:  f.Wireframe,
	}
}

// waterWorld covers the terrain extent, or extent when it is set.
func waterWorld(hf *formats.HeightField, spacing float32, extent config.Vec2) math.Mat4 {
	if spacing <= 0 {
		spacing = 1
	}
	sizeX := float32(hf.Width-1) * spacing
	sizeZ := float32(hf.Height-1) * spacing
	if extent[0] > 0 && extent[1] > 0 {
		sizeX, sizeZ = extent[0], extent[1]
	}
	return water.WorldTransform(0, 0, sizeX, sizeZ)
}

// saveSettings copies the tuned settings into the config and writes it to the
// user config directory. Failures are logged; the demo keeps running.
func (d *WaterDemo) saveSettings() {
	s := &d.Settings
	cfg := d.cfg

	cfg.Water.Height = s.WaterHeight
	cfg.Water.MergeTerm = s.MergeTerm
	cfg.Water.WaveTextureScale = s.WaveTextureScale
	cfg.Water.WaveVelocity0 = config.Vec2{s.WaveVelocity0.X, s.WaveVelocity0.Y}
	cfg.Water.WaveVelocity1 = config.Vec2{s.WaveVelocity1.X, s.WaveVelocity1.Y}

	cfg.Lighting.AmbientColor = config.Vec4(s.Light.AmbientColor)
	cfg.Lighting.AmbientIntensity = s.Light.AmbientIntensity
	cfg.Lighting.DiffuseColor = config.Vec4(s.Light.DiffuseColor)
	cfg.Lighting.DiffuseIntensity = s.Light.DiffuseIntensity

	cfg.Sun.Color = config.Vec3{s.Sun.Color.X, s.Sun.Color.Y, s.Sun.Color.Z}
	cfg.Sun.Direction = config.Vec3{s.Sun.Direction.X, s.Sun.Direction.Y, s.Sun.Direction.Z}
	cfg.Sun.Factor = s.Sun.Factor
	cfg.Sun.Power = s.Sun.Power

	f := s.Features
	cfg.Features = config.FeaturesConfig{
		DrawWater:   f.DrawWater,
		Waves:       f.Waves,
		Refraction:  f.Refraction,
		Reflection:  f.Reflection,
		Fresnel:     f.Fresnel,
		Specular:    f.Specular,
		Lighting:    f.Lighting,
		Skybox:      f.Skybox,
		Wireframe:   f.Wireframe,
		DisplayInfo: s.DisplayInfo,
	}

	if err := cfg.Save(); err != nil {
		d.log.Warn("saving settings failed", zap.Error(err))
		return
	}
	d.log.Info("settings saved", zap.String("dir", config.ConfigDir()))
}

func (d *WaterDemo) updateProjection() {
	g := d.cfg.Graphics
	d.projection = math.Perspective(g.FOV*math32.Pi/180, d.scene.Aspect(), g.Near, g.Far)
}

// Update implements Renderable.
func (d *WaterDemo) Update(dt float32) error {
	changes := controls.Apply(&d.Settings, d.in)
	if changes.Quit {
		return ErrQuit
	}

	if changes.WaterHeight && d.surface.SetHeight(d.Settings.WaterHeight) {
		d.surfaceDirty = true
	}
	if changes.Capture {
		d.captureNext = true
	}
	if changes.Save {
		d.saveSettings()
	}
	if changes.Toggled {
		d.log.Debug("features changed",
			zap.Any("features", d.Settings.Features),
			zap.Bool("display_info", d.Settings.DisplayInfo),
		)
	}

	mx, my := d.in.MousePosition()
	d.controller.Update(dt, controls.Movement(d.in), mx, my, d.in.RightButtonHeld())

	d.waves = d.waves.Advance(d.Settings.WaveVelocity0, d.Settings.WaveVelocity1, dt)
	return nil
}

// Frame assembles the pipeline input from the current state.
func (d *WaterDemo) Frame() pipeline.Frame {
	s := &d.Settings
	return pipeline.Frame{
		Features:   s.Features,
		Projection: d.projection,
		View:       d.camera.ViewMatrix(),
		Eye:        d.camera.Position(),
		Reflected:  water.Reflect(d.camera.State(), d.surface.Height),
		Surface:    *d.surface,
		WaterWorld: d.waterWorld,
		Waves:      d.waves,
		Water: pipeline.WaterParams{
			Color:            d.cfg.Water.Color.Math(),
			MergeTerm:        s.MergeTerm,
			WaveTextureScale: s.WaveTextureScale,
		},
		Light: s.Light,
		Sun:   s.Sun,
	}
}

// Draw implements Renderable.
func (d *WaterDemo) Draw(*DrawContext) error {
	if d.surfaceDirty {
		d.scene.SetSurface(d.surface)
		d.surfaceDirty = false
	}

	d.scene.Draw(d.Frame())

	if d.captureNext {
		d.captureNext = false
		d.captureTargets()
	}
	return nil
}

func (d *WaterDemo) captureTargets() {
	refraction, reflection, w, h := d.scene.ReadTargets()
	for _, t := range []struct {
		name   string
		pixels []byte
	}{
		{"refraction", refraction},
		{"reflection", reflection},
	} {
		path, err := d.capture.CaptureFromPixels(t.name, t.pixels, int(w), int(h))
		if err != nil {
			d.log.Warn("capture failed", zap.String("target", t.name), zap.Error(err))
			continue
		}
		d.log.Info("capture written", zap.String("target", t.name), zap.String("path", path))
	}
}

// Resize implements Resizer.
func (d *WaterDemo) Resize(width, height int32) error {
	if err := d.scene.Resize(width, height); err != nil {
		return err
	}
	d.updateProjection()
	return nil
}

// Status is the info line shown in the window title while DisplayInfo is on.
func (d *WaterDemo) Status() string {
	s := &d.Settings
	if !s.DisplayInfo {
		return ""
	}
	f := s.Features

	var b strings.Builder
	fmt.Fprintf(&b, "height %.1f merge %.2f scale %.0f", s.WaterHeight, s.MergeTerm, s.WaveTextureScale)
	fmt.Fprintf(&b, " | ambient %.1f diffuse %.1f", s.Light.AmbientIntensity, s.Light.DiffuseIntensity)
	for _, t := range []struct {
		name string
		on   bool
	}{
		{"water", f.DrawWater},
		{"refr", f.Refraction},
		{"refl", f.Reflection},
		{"fresnel", f.Fresnel},
		{"waves", f.Waves},
		{"specular", f.Specular},
		{"light", f.Lighting},
		{"sky", f.Skybox},
	} {
		if t.on {
			b.WriteString(" +")
		} else {
			b.WriteString(" -")
		}
		b.WriteString(t.name)
	}
	return b.String()
}

// Close releases the scene.
func (d *WaterDemo) Close() {
	d.scene.Destroy()
}
