package scene

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/midgard-water/internal/engine/pipeline"
	"github.com/Faultbox/midgard-water/internal/engine/scene/shaders"
	"github.com/Faultbox/midgard-water/internal/engine/shader"
	"github.com/Faultbox/midgard-water/internal/engine/texture"
	"github.com/Faultbox/midgard-water/pkg/math"
)

// SkyboxSize is the half extent of the sky cube in world units.
const SkyboxSize = 5000

var skyboxVertices = [8][3]float32{
	{-1, -1, -1},
	{-1, 1, -1},
	{1, 1, -1},
	{1, -1, -1},
	{-1, -1, 1},
	{-1, 1, 1},
	{1, 1, 1},
	{1, -1, 1},
}

var skyboxIndices = [36]uint32{
	0, 1, 3, 1, 2, 3,
	1, 5, 2, 2, 5, 6,
	4, 7, 5, 5, 7, 6,
	0, 3, 4, 4, 3, 7,
	7, 3, 6, 6, 3, 2,
	4, 5, 0, 0, 5, 1,
}

// SkyboxRenderer draws a cube-mapped sky centred on the eye.
type SkyboxRenderer struct {
	program uint32
	loc     SkyboxUniforms

	vao uint32
	vbo uint32
	ebo uint32

	cubeMap uint32
}

// NewSkyboxRenderer compiles the sky program and uploads the six faces in
// +X, -X, +Y, -Y, +Z, -Z order.
func NewSkyboxRenderer(faces [6]*image.RGBA) (*SkyboxRenderer, error) {
	sr := &SkyboxRenderer{}

	program, err := shader.Program(shaders.SkyboxVertexShader, shaders.SkyboxFragmentShader, &sr.loc)
	if err != nil {
		return nil, fmt.Errorf("skybox shader: %w", err)
	}
	sr.program = program

	cube, err := texture.UploadCube(faces)
	if err != nil {
		sr.Destroy()
		return nil, fmt.Errorf("skybox: %w", err)
	}
	sr.cubeMap = cube

	gl.GenVertexArrays(1, &sr.vao)
	gl.BindVertexArray(sr.vao)

	gl.GenBuffers(1, &sr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, sr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(skyboxVertices)*3*4, unsafe.Pointer(&skyboxVertices[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.GenBuffers(1, &sr.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, sr.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(skyboxIndices)*4, unsafe.Pointer(&skyboxIndices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	return sr, nil
}

// SkyWorld is the transform that scales the unit cube and centres it on eye.
func SkyWorld(eye math.Vec3) math.Mat4 {
	return math.TranslateVec3(eye).Mul(math.Scale(SkyboxSize, SkyboxSize, SkyboxSize))
}

// DrawSky implements pipeline.SkyRenderer.
func (sr *SkyboxRenderer) DrawSky(p pipeline.SkyPass) {
	gl.UseProgram(sr.program)

	world := SkyWorld(p.Eye)
	gl.UniformMatrix4fv(sr.loc.Projection, 1, false, p.Projection.Ptr())
	gl.UniformMatrix4fv(sr.loc.View, 1, false, p.View.Ptr())
	gl.UniformMatrix4fv(sr.loc.World, 1, false, world.Ptr())

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, sr.cubeMap)
	gl.Uniform1i(sr.loc.Skybox, 0)

	// The camera sits inside the cube, so both culling and depth writes go.
	gl.DepthMask(false)
	gl.DepthFunc(gl.LEQUAL)
	gl.Disable(gl.CULL_FACE)

	gl.BindVertexArray(sr.vao)
	gl.DrawElements(gl.TRIANGLES, int32(len(skyboxIndices)), gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)

	gl.Enable(gl.CULL_FACE)
	gl.DepthFunc(gl.LESS)
	gl.DepthMask(true)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)
}

// Destroy releases all resources.
func (sr *SkyboxRenderer) Destroy() {
	if sr.vao != 0 {
		gl.DeleteVertexArrays(1, &sr.vao)
		sr.vao = 0
	}
	if sr.vbo != 0 {
		gl.DeleteBuffers(1, &sr.vbo)
		sr.vbo = 0
	}
	if sr.ebo != 0 {
		gl.DeleteBuffers(1, &sr.ebo)
		sr.ebo = 0
	}
	texture.Delete(sr.cubeMap)
	sr.cubeMap = 0
	if sr.program != 0 {
		gl.DeleteProgram(sr.program)
		sr.program = 0
	}
}
