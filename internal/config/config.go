// Package config handles the water demo configuration: defaults, an optional
// YAML file and command-line overrides.
package config

import "github.com/Faultbox/midgard-water/pkg/math"

// Config holds all demo settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Assets   AssetsConfig   `yaml:"assets"`
	Terrain  TerrainConfig  `yaml:"terrain"`
	Water    WaterConfig    `yaml:"water"`
	Lighting LightingConfig `yaml:"lighting"`
	Sun      SunConfig      `yaml:"sun"`
	Camera   CameraConfig   `yaml:"camera"`
	Features FeaturesConfig `yaml:"features"`
	Debug    DebugConfig    `yaml:"debug"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// Vec2 is a YAML-friendly two component vector.
type Vec2 [2]float32

// Vec3 is a YAML-friendly three component vector.
type Vec3 [3]float32

// Vec4 is a YAML-friendly four component vector.
type Vec4 [4]float32

// Math converts v.
func (v Vec2) Math() math.Vec2 { return math.Vec2{X: v[0], Y: v[1]} }

// Math converts v.
func (v Vec3) Math() math.Vec3 { return math.Vec3{X: v[0], Y: v[1], Z: v[2]} }

// Math converts v.
func (v Vec4) Math() math.Vec4 { return math.Vec4(v) }

// GraphicsConfig holds display and projection settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	FOV        float32 `yaml:"fov"` // vertical, degrees
	Near       float32 `yaml:"near"`
	Far        float32 `yaml:"far"`
}

// AssetsConfig names the files the demo loads, relative to Root.
type AssetsConfig struct {
	Root           string    `yaml:"root"`
	Heightmap      string    `yaml:"heightmap"`
	TerrainTexture string    `yaml:"terrain_texture"`
	WaveMaps       [2]string `yaml:"wave_maps"`
	// Skybox faces in +X, -X, +Y, -Y, +Z, -Z order.
	Skybox [6]string `yaml:"skybox"`
}

// TerrainConfig holds heightfield scaling.
type TerrainConfig struct {
	MaxElevation float32 `yaml:"max_elevation"`
	CellSpacing  float32 `yaml:"cell_spacing"`
}

// WaterConfig holds the water surface parameters.
type WaterConfig struct {
	Height           float32 `yaml:"height"`
	Color            Vec3    `yaml:"color,flow"`
	MergeTerm        float32 `yaml:"merge_term"`
	WaveTextureScale float32 `yaml:"wave_texture_scale"`
	WaveVelocity0    Vec2    `yaml:"wave_velocity0,flow"`
	WaveVelocity1    Vec2    `yaml:"wave_velocity1,flow"`
	// Extent is the XZ size of the water quad; zero follows the terrain.
	Extent Vec2 `yaml:"extent,flow"`
}

// LightingConfig holds the terrain ambient and diffuse terms.
type LightingConfig struct {
	AmbientColor     Vec4    `yaml:"ambient_color,flow"`
	AmbientIntensity float32 `yaml:"ambient_intensity"`
	DiffuseColor     Vec4    `yaml:"diffuse_color,flow"`
	DiffuseIntensity float32 `yaml:"diffuse_intensity"`
}

// SunConfig holds the directional light.
type SunConfig struct {
	Color     Vec3    `yaml:"color,flow"`
	Direction Vec3    `yaml:"direction,flow"`
	Factor    float32 `yaml:"factor"`
	Power     float32 `yaml:"power"`
}

// CameraConfig holds the initial camera and its controller speeds.
type CameraConfig struct {
	Position          Vec3    `yaml:"position,flow"`
	Target            Vec3    `yaml:"target,flow"`
	MoveSpeed         float32 `yaml:"move_speed"`
	RotateSensitivity float32 `yaml:"rotate_sensitivity"`
	// GroundClearance keeps the camera this far above the terrain; negative disables it.
	GroundClearance float32 `yaml:"ground_clearance"`
}

// FeaturesConfig holds the initial state of the render toggles.
type FeaturesConfig struct {
	DrawWater   bool `yaml:"draw_water"`
	Waves       bool `yaml:"waves"`
	Refraction  bool `yaml:"refraction"`
	Reflection  bool `yaml:"reflection"`
	Fresnel     bool `yaml:"fresnel"`
	Specular    bool `yaml:"specular"`
	Lighting    bool `yaml:"lighting"`
	Skybox      bool `yaml:"skybox"`
	Wireframe   bool `yaml:"wireframe"`
	DisplayInfo bool `yaml:"display_info"`
}

// DebugConfig holds developer settings.
type DebugConfig struct {
	CaptureDir string `yaml:"capture_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the demo's default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:  1600,
			Height: 900,
			VSync:  true,
			FOV:    45,
			Near:   1,
			Far:    10000,
		},
		Assets: AssetsConfig{
			Root:           "assets",
			Heightmap:      "terrain_height.raw",
			TerrainTexture: "textures/terrain_texture.jpg",
			WaveMaps:       [2]string{"textures/wave0.png", "textures/wave1.png"},
			Skybox: [6]string{
				"skybox/right.png", "skybox/left.png",
				"skybox/top.png", "skybox/bottom.png",
				"skybox/front.png", "skybox/back.png",
			},
		},
		Terrain: TerrainConfig{
			MaxElevation: 50,
			CellSpacing:  1,
		},
		Water: WaterConfig{
			Height:           20,
			Color:            Vec3{0.5, 0.79, 0.75},
			MergeTerm:        0.5,
			WaveTextureScale: 2.5,
			WaveVelocity0:    Vec2{0.01, 0.03},
			WaveVelocity1:    Vec2{-0.01, 0.03},
		},
		Lighting: LightingConfig{
			AmbientColor:     Vec4{0.42, 0.42, 0.42, 1},
			AmbientIntensity: 1,
			DiffuseColor:     Vec4{0.75, 0.3, 0.3, 1},
			DiffuseIntensity: 1,
		},
		Sun: SunConfig{
			Color:     Vec3{1, 0.8, 0.4},
			Direction: Vec3{-0.85, -0.45, -0.25},
			Factor:    1.5,
			Power:     250,
		},
		Camera: CameraConfig{
			Position:          Vec3{100, 100, 100},
			Target:            Vec3{101, 90, 101},
			MoveSpeed:         30,
			RotateSensitivity: 0.005,
			GroundClearance:   -1,
		},
		Features: FeaturesConfig{
			DrawWater:   true,
			Waves:       true,
			Refraction:  true,
			Reflection:  true,
			Fresnel:     true,
			Specular:    true,
			Lighting:    true,
			Skybox:      true,
			DisplayInfo: true,
		},
		Debug: DebugConfig{
			CaptureDir: "captures",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
