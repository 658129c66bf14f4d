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
	"github.com/Faultbox/midgard-water/internal/engine/water"
)

// Texture units used by the water program.
const (
	unitRefraction = iota
	unitReflection
	unitWave0
	unitWave1
)

// WaterRenderer draws the water quad, compositing the captured textures.
type WaterRenderer struct {
	waves    uint32
	flat     uint32
	wavesLoc WaterUniforms
	flatLoc  WaterUniforms

	vao uint32
	vbo uint32
	ebo uint32

	waveMaps [2]uint32
}

// NewWaterRenderer compiles the water programs and uploads the wave maps.
func NewWaterRenderer(waveMaps [2]*image.RGBA) (*WaterRenderer, error) {
	wr := &WaterRenderer{}

	program, err := shader.Program(shaders.WaterVertexShader, shaders.WaterFragmentShader, &wr.wavesLoc, shaders.DefineWaves)
	if err != nil {
		return nil, fmt.Errorf("water shader: %w", err)
	}
	wr.waves = program

	program, err = shader.Program(shaders.WaterVertexShader, shaders.WaterFragmentShader, &wr.flatLoc)
	if err != nil {
		wr.Destroy()
		return nil, fmt.Errorf("flat water shader: %w", err)
	}
	wr.flat = program

	for i, img := range waveMaps {
		if img == nil {
			wr.Destroy()
			return nil, fmt.Errorf("water: wave map %d missing", i)
		}
		wr.waveMaps[i] = texture.Upload2D(img)
	}

	return wr, nil
}

// SetSurface uploads the quad of s, releasing the previous one.
func (wr *WaterRenderer) SetSurface(s *water.Surface) {
	wr.clearQuad()

	q := s.Quad
	gl.GenVertexArrays(1, &wr.vao)
	gl.BindVertexArray(wr.vao)

	gl.GenBuffers(1, &wr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, wr.vbo)
	vertexSize := int(unsafe.Sizeof(water.QuadVertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(q.Vertices)*vertexSize, unsafe.Pointer(&q.Vertices[0]), gl.STATIC_DRAW)

	// Position (location 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)

	// TexCoord (location 1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)

	gl.GenBuffers(1, &wr.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, wr.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(q.Indices)*4, unsafe.Pointer(&q.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
}

// DrawWater implements pipeline.WaterRenderer.
func (wr *WaterRenderer) DrawWater(p pipeline.WaterPass) {
	if wr.vao == 0 {
		return
	}

	f := p.Features
	program, loc := wr.flat, &wr.flatLoc
	if f.Waves {
		program, loc = wr.waves, &wr.wavesLoc
	}
	gl.UseProgram(program)

	gl.UniformMatrix4fv(loc.Projection, 1, false, p.Projection.Ptr())
	gl.UniformMatrix4fv(loc.View, 1, false, p.View.Ptr())
	gl.UniformMatrix4fv(loc.World, 1, false, p.World.Ptr())
	gl.UniformMatrix4fv(loc.ReflectionView, 1, false, p.ReflectionView.Ptr())

	gl.ActiveTexture(gl.TEXTURE0 + unitRefraction)
	gl.BindTexture(gl.TEXTURE_2D, p.Refraction)
	gl.Uniform1i(loc.Refraction, unitRefraction)
	gl.ActiveTexture(gl.TEXTURE0 + unitReflection)
	gl.BindTexture(gl.TEXTURE_2D, p.Reflection)
	gl.Uniform1i(loc.Reflection, unitReflection)

	c := p.Params.Color
	gl.Uniform3f(loc.WaterColor, c.X, c.Y, c.Z)
	gl.Uniform1i(loc.EnableRefraction, boolUniform(f.Refraction))
	gl.Uniform1i(loc.EnableReflection, boolUniform(f.Reflection))
	gl.Uniform1i(loc.EnableFresnel, boolUniform(f.Fresnel))
	gl.Uniform1i(loc.EnableSpecular, boolUniform(f.Specular))
	gl.Uniform1f(loc.MergeTerm, p.Params.MergeTerm)

	if f.Waves {
		gl.ActiveTexture(gl.TEXTURE0 + unitWave0)
		gl.BindTexture(gl.TEXTURE_2D, wr.waveMaps[0])
		gl.Uniform1i(loc.WaveMap0, unitWave0)
		gl.ActiveTexture(gl.TEXTURE0 + unitWave1)
		gl.BindTexture(gl.TEXTURE_2D, wr.waveMaps[1])
		gl.Uniform1i(loc.WaveMap1, unitWave1)
		gl.Uniform2f(loc.WaveOffset0, p.Waves.Offset0.X, p.Waves.Offset0.Y)
		gl.Uniform2f(loc.WaveOffset1, p.Waves.Offset1.X, p.Waves.Offset1.Y)
		gl.Uniform1f(loc.WaveTextureScale, p.Params.WaveTextureScale)
	}

	gl.Uniform3f(loc.CameraPosition, p.Eye.X, p.Eye.Y, p.Eye.Z)
	s := p.Sun
	gl.Uniform3f(loc.SunColor, s.Color.X, s.Color.Y, s.Color.Z)
	gl.Uniform3f(loc.SunDirection, s.Direction.X, s.Direction.Y, s.Direction.Z)
	gl.Uniform1f(loc.SunFactor, s.Factor)
	gl.Uniform1f(loc.SunPower, s.Power)

	if f.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}

	gl.BindVertexArray(wr.vao)
	gl.DrawElements(gl.TRIANGLES, 6, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)

	if f.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
	gl.ActiveTexture(gl.TEXTURE0)
}

func (wr *WaterRenderer) clearQuad() {
	if wr.vao != 0 {
		gl.DeleteVertexArrays(1, &wr.vao)
		wr.vao = 0
	}
	if wr.vbo != 0 {
		gl.DeleteBuffers(1, &wr.vbo)
		wr.vbo = 0
	}
	if wr.ebo != 0 {
		gl.DeleteBuffers(1, &wr.ebo)
		wr.ebo = 0
	}
}

// Destroy releases all resources.
func (wr *WaterRenderer) Destroy() {
	wr.clearQuad()
	for i := range wr.waveMaps {
		texture.Delete(wr.waveMaps[i])
		wr.waveMaps[i] = 0
	}
	for _, p := range []*uint32{&wr.waves, &wr.flat} {
		if *p != 0 {
			gl.DeleteProgram(*p)
			*p = 0
		}
	}
}
