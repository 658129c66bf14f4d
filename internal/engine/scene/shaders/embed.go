// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// Variant defines understood by the sources below.
const (
	// DefineClipped enables the clip plane discard in the terrain shader.
	DefineClipped = "CLIPPED"
	// DefineWaves enables wave normal map perturbation in the water shader.
	DefineWaves = "WAVES"
)

// TerrainVertexShader is the vertex shader for terrain rendering.
//
//go:embed terrain.vert
var TerrainVertexShader string

// TerrainFragmentShader is the fragment shader for terrain rendering.
//
//go:embed terrain.frag
var TerrainFragmentShader string

// WaterVertexShader is the vertex shader for the water surface.
//
//go:embed water.vert
var WaterVertexShader string

// WaterFragmentShader is the fragment shader for the water surface.
//
//go:embed water.frag
var WaterFragmentShader string

// SkyboxVertexShader is the vertex shader for the sky cube.
//
//go:embed skybox.vert
var SkyboxVertexShader string

// SkyboxFragmentShader is the fragment shader for the sky cube.
//
//go:embed skybox.frag
var SkyboxFragmentShader string
