package water

import "github.com/Faultbox/midgard-water/pkg/math"

// ClipPlaneBias lifts both clip planes slightly above the water surface so the
// shoreline does not z-fight with the quad.
const ClipPlaneBias float32 = 0.1

// ClipPlane returns the plane (a, b, c, d) whose kept side satisfies
// a*x + b*y + c*z + d >= 0. With facingUp false it keeps everything below the
// water (refraction); with facingUp true it keeps everything above (reflection).
func ClipPlane(height float32, facingUp bool) math.Vec4 {
	plane := math.Vec4{0, -1, 0, height + ClipPlaneBias}
	if facingUp {
		return plane.Neg()
	}
	return plane
}
