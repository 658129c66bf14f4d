package framebuffer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Pair holds the refraction and reflection targets, both sized to the back buffer.
type Pair struct {
	Refraction *Framebuffer
	Reflection *Framebuffer
}

// NewPair allocates both capture targets.
func NewPair(width, height int32) (*Pair, error) {
	refraction, err := New(width, height)
	if err != nil {
		return nil, fmt.Errorf("refraction target: %w", err)
	}
	reflection, err := New(width, height)
	if err != nil {
		refraction.Destroy()
		return nil, fmt.Errorf("reflection target: %w", err)
	}
	return &Pair{Refraction: refraction, Reflection: reflection}, nil
}

// Resize recreates both targets at the new back buffer size.
func (p *Pair) Resize(width, height int32) error {
	if err := p.Refraction.Resize(width, height); err != nil {
		return fmt.Errorf("refraction target: %w", err)
	}
	if err := p.Reflection.Resize(width, height); err != nil {
		return fmt.Errorf("reflection target: %w", err)
	}
	return nil
}

// Destroy releases both targets.
func (p *Pair) Destroy() {
	p.Refraction.Destroy()
	p.Reflection.Destroy()
}

// Screen is the window's default framebuffer.
type Screen struct {
	width  int32
	height int32
}

// NewScreen creates a back buffer target of the given size.
func NewScreen(width, height int32) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// Bind makes the back buffer current and restores its viewport.
func (s *Screen) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, s.width, s.height)
}

// Clear clears color and depth with the specified color.
func (s *Screen) Clear(r, g, b, a float32) {
	clearBuffers(r, g, b, a)
}

// Resize records the new window size.
func (s *Screen) Resize(width, height int32) {
	s.width, s.height = clampSize(width, height)
}

// Size returns the back buffer dimensions.
func (s *Screen) Size() (width, height int32) {
	return s.width, s.height
}

// Aspect returns width / height.
func (s *Screen) Aspect() float32 {
	return float32(s.width) / float32(s.height)
}
