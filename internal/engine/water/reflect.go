package water

import (
	"github.com/Faultbox/midgard-water/internal/engine/camera"
	"github.com/Faultbox/midgard-water/pkg/math"
)

// ReflectedView is the camera used to render the reflection texture.
type ReflectedView struct {
	View     math.Mat4
	Position math.Vec3
	Target   math.Vec3
	Up       math.Vec3
}

// MirrorPoint mirrors p about the plane y = height. It is its own inverse.
func MirrorPoint(p math.Vec3, height float32) math.Vec3 {
	return math.Vec3{X: p.X, Y: -p.Y + 2*height, Z: p.Z}
}

// Reflect mirrors the camera about the water plane. The up vector is rebuilt
// from the unmirrored right vector and the mirrored view direction, which stays
// well defined when the camera looks almost straight down.
func Reflect(cam camera.State, height float32) ReflectedView {
	pos := MirrorPoint(cam.Position, height)
	target := MirrorPoint(cam.Target, height)
	up := cam.Right.Cross(target.Sub(pos))

	return ReflectedView{
		View:     math.LookAt(pos, target, up),
		Position: pos,
		Target:   target,
		Up:       up,
	}
}
