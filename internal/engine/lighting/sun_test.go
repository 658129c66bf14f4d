package lighting

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/Faultbox/midgard-water/pkg/math"
)

func TestDefaultSunIsNormalized(t *testing.T) {
	s := DefaultSun()
	if l := s.Direction.Length(); math32.Abs(l-1) > 1e-5 {
		t.Errorf("direction length = %v, want 1", l)
	}
}

func TestSunNudge(t *testing.T) {
	s := Sun{Direction: math.Vec3{X: 1}}
	s.Nudge(math.Vec3{Y: 0.1})

	if l := s.Direction.Length(); math32.Abs(l-1) > 1e-5 {
		t.Errorf("direction length after nudge = %v", l)
	}
	if s.Direction.Y <= 0 {
		t.Errorf("direction Y = %v, want positive", s.Direction.Y)
	}

	s = Sun{Direction: math.Vec3{X: 0.1}}
	s.Nudge(math.Vec3{X: -0.1})
	if s.Direction != (math.Vec3{X: 0.1}) {
		t.Errorf("zeroing nudge should be ignored, got %v", s.Direction)
	}
}

func TestIntensityClamp(t *testing.T) {
	tests := []struct {
		name  string
		start float32
		delta float32
		want  float32
	}{
		{"increase", 1, 0.5, 1.5},
		{"floor", 0.05, -0.1, 0},
		{"ceiling", 9.95, 0.1, MaxIntensity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Light{AmbientIntensity: tt.start, DiffuseIntensity: tt.start}
			l.AdjustAmbient(tt.delta)
			l.AdjustDiffuse(tt.delta)
			if math32.Abs(l.AmbientIntensity-tt.want) > 1e-6 {
				t.Errorf("ambient = %v, want %v", l.AmbientIntensity, tt.want)
			}
			if math32.Abs(l.DiffuseIntensity-tt.want) > 1e-6 {
				t.Errorf("diffuse = %v, want %v", l.DiffuseIntensity, tt.want)
			}
		})
	}
}
