// Package camera provides the free-look camera used to fly over the terrain.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/midgard-water/pkg/math"
)

// MaxPitch keeps the camera just short of looking straight up or down.
const MaxPitch = 89 * math32.Pi / 180

var worldUp = math.Vec3{X: 0, Y: 1, Z: 0}

// State is the per-frame camera snapshot handed to the reflection solver.
type State struct {
	Position math.Vec3
	Target   math.Vec3
	Right    math.Vec3
}

// FreeCamera is a yaw/pitch camera that looks from Position towards Target.
type FreeCamera struct {
	position math.Vec3

	// Yaw rotates around world Y, zero looks down +Z. Pitch is clamped to ±MaxPitch.
	yaw   float32
	pitch float32

	// targetDistance keeps Target at the distance given to SetLookAt.
	targetDistance float32
}

// New creates a camera at pos looking at target.
func New(pos, target math.Vec3) *FreeCamera {
	c := &FreeCamera{}
	c.SetLookAt(pos, target)
	return c
}

// SetLookAt places the camera at pos facing target.
func (c *FreeCamera) SetLookAt(pos, target math.Vec3) {
	c.position = pos

	dir := target.Sub(pos)
	dist := dir.Length()
	if dist == 0 {
		c.targetDistance = 1
		return
	}
	dir = dir.Scale(1 / dist)

	c.targetDistance = dist
	c.yaw = math32.Atan2(dir.X, dir.Z)
	c.pitch = clampf(math32.Asin(clampf(dir.Y, -1, 1)), -MaxPitch, MaxPitch)
}

// Position returns the eye position.
func (c *FreeCamera) Position() math.Vec3 {
	return c.position
}

// SetPosition moves the eye without changing orientation.
func (c *FreeCamera) SetPosition(p math.Vec3) {
	c.position = p
}

// Yaw returns the horizontal angle in radians.
func (c *FreeCamera) Yaw() float32 { return c.yaw }

// Pitch returns the vertical angle in radians.
func (c *FreeCamera) Pitch() float32 { return c.pitch }

// Forward returns the unit view direction.
func (c *FreeCamera) Forward() math.Vec3 {
	cp := math32.Cos(c.pitch)
	return math.Vec3{
		X: cp * math32.Sin(c.yaw),
		Y: math32.Sin(c.pitch),
		Z: cp * math32.Cos(c.yaw),
	}
}

// Right returns the unit vector pointing to the right of the view direction.
func (c *FreeCamera) Right() math.Vec3 {
	return c.Forward().Cross(worldUp).Normalize()
}

// Up returns the camera up vector.
func (c *FreeCamera) Up() math.Vec3 {
	return c.Right().Cross(c.Forward())
}

// Target returns the point the camera looks at.
func (c *FreeCamera) Target() math.Vec3 {
	return c.position.Add(c.Forward().Scale(c.targetDistance))
}

// ViewMatrix returns the view matrix for this camera.
func (c *FreeCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.position, c.Target(), c.Up())
}

// State returns the snapshot used for the reflection pass.
func (c *FreeCamera) State() State {
	return State{
		Position: c.position,
		Target:   c.Target(),
		Right:    c.Right(),
	}
}

// Rotate turns the camera by the given yaw and pitch deltas in radians.
func (c *FreeCamera) Rotate(dYaw, dPitch float32) {
	c.yaw = wrapAngle(c.yaw + dYaw)
	c.pitch = clampf(c.pitch+dPitch, -MaxPitch, MaxPitch)
}

// Move translates the camera along its forward and right axes and world Y.
func (c *FreeCamera) Move(forward, right, up float32) {
	delta := c.Forward().Scale(forward).
		Add(c.Right().Scale(right)).
		Add(worldUp.Scale(up))
	c.position = c.position.Add(delta)
}

func wrapAngle(a float32) float32 {
	for a > math32.Pi {
		a -= 2 * math32.Pi
	}
	for a < -math32.Pi {
		a += 2 * math32.Pi
	}
	return a
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
