package scene

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/midgard-water/internal/engine/pipeline"
	"github.com/Faultbox/midgard-water/internal/engine/scene/shaders"
	"github.com/Faultbox/midgard-water/internal/engine/shader"
	"github.com/Faultbox/midgard-water/internal/engine/terrain"
	"github.com/Faultbox/midgard-water/internal/engine/texture"
	"github.com/Faultbox/midgard-water/pkg/math"
)

// TerrainRenderer draws the terrain mesh, either lit for the composite pass
// or clipped for the capture passes.
type TerrainRenderer struct {
	lit     uint32
	clipped uint32

	litLoc     TerrainUniforms
	clippedLoc ClippedTerrainUniforms

	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32

	texture uint32
	world   math.Mat4
}

// NewTerrainRenderer compiles both terrain programs.
func NewTerrainRenderer() (*TerrainRenderer, error) {
	tr := &TerrainRenderer{world: math.Identity()}

	program, err := shader.Program(shaders.TerrainVertexShader, shaders.TerrainFragmentShader, &tr.litLoc)
	if err != nil {
		return nil, fmt.Errorf("terrain shader: %w", err)
	}
	tr.lit = program

	program, err = shader.Program(shaders.TerrainVertexShader, shaders.TerrainFragmentShader, &tr.clippedLoc, shaders.DefineClipped)
	if err != nil {
		tr.Destroy()
		return nil, fmt.Errorf("clipped terrain shader: %w", err)
	}
	tr.clipped = program

	return tr, nil
}

// LoadTerrain uploads mesh and its diffuse texture, replacing any previous
// terrain. A nil image uses a plain white texture.
func (tr *TerrainRenderer) LoadTerrain(mesh *terrain.Mesh, img *image.RGBA) error {
	if mesh == nil || len(mesh.Vertices) == 0 || len(mesh.Indices) == 0 {
		return fmt.Errorf("load terrain: empty mesh")
	}

	tr.clearTerrain()

	if img == nil {
		img = image.NewRGBA(image.Rect(0, 0, 1, 1))
		copy(img.Pix, []byte{255, 255, 255, 255})
	}
	tr.texture = texture.Upload2D(img)

	tr.uploadMesh(mesh.Vertices, mesh.Indices)

	return nil
}

func (tr *TerrainRenderer) uploadMesh(vertices []terrain.Vertex, indices []uint32) {
	gl.GenVertexArrays(1, &tr.vao)
	gl.BindVertexArray(tr.vao)

	gl.GenBuffers(1, &tr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, tr.vbo)
	vertexSize := int(unsafe.Sizeof(terrain.Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*vertexSize, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	// Position (location 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)

	// Normal (location 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)

	// TexCoord (location 2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, int32(vertexSize), 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &tr.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, tr.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	tr.indexCount = int32(len(indices))
}

// DrawTerrain implements pipeline.TerrainRenderer.
func (tr *TerrainRenderer) DrawTerrain(p pipeline.TerrainPass) {
	if tr.vao == 0 {
		return
	}

	loc := &tr.litLoc
	if p.Clip != nil {
		gl.UseProgram(tr.clipped)
		loc = &tr.clippedLoc.TerrainUniforms
		gl.Uniform4fv(tr.clippedLoc.ClipPlane, 1, &p.Clip[0])
	} else {
		gl.UseProgram(tr.lit)
	}

	gl.UniformMatrix4fv(loc.Projection, 1, false, p.Projection.Ptr())
	gl.UniformMatrix4fv(loc.View, 1, false, p.View.Ptr())
	gl.UniformMatrix4fv(loc.World, 1, false, tr.world.Ptr())

	gl.Uniform1i(loc.EnableLighting, boolUniform(p.Lighting))
	gl.Uniform4fv(loc.AmbientColor, 1, &p.Light.AmbientColor[0])
	gl.Uniform1f(loc.AmbientIntensity, p.Light.AmbientIntensity)
	gl.Uniform4fv(loc.DiffuseColor, 1, &p.Light.DiffuseColor[0])
	gl.Uniform1f(loc.DiffuseIntensity, p.Light.DiffuseIntensity)
	d := p.Sun.Direction
	gl.Uniform3f(loc.LightDirection, d.X, d.Y, d.Z)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tr.texture)
	gl.Uniform1i(loc.Texture, 0)

	if p.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}

	gl.BindVertexArray(tr.vao)
	gl.DrawElements(gl.TRIANGLES, tr.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)

	if p.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

func (tr *TerrainRenderer) clearTerrain() {
	if tr.vao != 0 {
		gl.DeleteVertexArrays(1, &tr.vao)
		tr.vao = 0
	}
	if tr.vbo != 0 {
		gl.DeleteBuffers(1, &tr.vbo)
		tr.vbo = 0
	}
	if tr.ebo != 0 {
		gl.DeleteBuffers(1, &tr.ebo)
		tr.ebo = 0
	}
	texture.Delete(tr.texture)
	tr.texture = 0
	tr.indexCount = 0
}

// Destroy releases all resources.
func (tr *TerrainRenderer) Destroy() {
	tr.clearTerrain()
	for _, p := range []*uint32{&tr.lit, &tr.clipped} {
		if *p != 0 {
			gl.DeleteProgram(*p)
			*p = 0
		}
	}
}
