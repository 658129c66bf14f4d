package math

import (
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	if abs(got-5) > 1e-6 {
		t.Errorf("Vec2.Length() = %v, want 5", got)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec3
		want float32
	}{
		{"axis", Vec3{0, 5, 0}, 1},
		{"diagonal", Vec3{1, 2, 3}, 1},
		{"zero", Vec3{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Normalize().Length(); abs(got-tt.want) > 1e-5 {
				t.Errorf("Normalize().Length() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVec4Plane(t *testing.T) {
	plane := Vec4{0, -1, 0, 20.1}

	below := Vec3{3, 10, 7}
	above := Vec3{3, 30, 7}

	if plane.DotPoint(below) <= 0 {
		t.Errorf("point below the plane should be kept, got %v", plane.DotPoint(below))
	}
	if plane.DotPoint(above) >= 0 {
		t.Errorf("point above the plane should be clipped, got %v", plane.DotPoint(above))
	}
	if plane.Neg().DotPoint(above) <= 0 {
		t.Errorf("negated plane should keep the point above")
	}
}
