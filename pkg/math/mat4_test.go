package math

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	// Translation lives in the fourth column (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestScaleThenTranslate(t *testing.T) {
	// Sky box world transform: scale first, then move to the eye.
	world := TranslateVec3(Vec3{10, 20, 30}).Mul(Scale(5000, 5000, 5000))
	got := world.TransformVec3(Vec3{1, -1, 1})
	want := Vec3{5010, -4980, 5030}
	if got != want {
		t.Errorf("TransformVec3 = %v, want %v", got, want)
	}
}

func TestPerspectiveMatchesMathGL(t *testing.T) {
	got := Perspective(mgl32.DegToRad(45), 16.0/9.0, 1, 10000)
	want := mgl32.Perspective(mgl32.DegToRad(45), 16.0/9.0, 1, 10000)
	for i := range got {
		if abs(got[i]-want[i]) > 1e-4 {
			t.Errorf("Perspective[%d] = %f, mgl32 = %f", i, got[i], want[i])
		}
	}
}

func TestLookAtMatchesMathGL(t *testing.T) {
	tests := []struct {
		name            string
		eye, center, up Vec3
	}{
		{"down z", Vec3{0, 0, 5}, Vec3{0, 0, 0}, Vec3{0, 1, 0}},
		{"demo start", Vec3{100, 100, 100}, Vec3{101, 90, 101}, Vec3{0, 1, 0}},
		{"tilted up", Vec3{-3, 2, 8}, Vec3{4, 1, -2}, Vec3{0.2, 1, 0.1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LookAt(tt.eye, tt.center, tt.up)
			want := mgl32.LookAtV(
				mgl32.Vec3{tt.eye.X, tt.eye.Y, tt.eye.Z},
				mgl32.Vec3{tt.center.X, tt.center.Y, tt.center.Z},
				mgl32.Vec3{tt.up.X, tt.up.Y, tt.up.Z},
			)
			for i := range got {
				if abs(got[i]-want[i]) > 1e-3 {
					t.Errorf("LookAt[%d] = %f, mgl32 = %f", i, got[i], want[i])
				}
			}
		})
	}
}

func TestLookAtMovesEyeToOrigin(t *testing.T) {
	eye := Vec3{7, 3, -2}
	m := LookAt(eye, Vec3{0, 0, 0}, Vec3{0, 1, 0})
	p := m.TransformVec3(eye)
	if p.Length() > 1e-4 {
		t.Errorf("eye in view space = %v, want origin", p)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
