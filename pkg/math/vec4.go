package math

// Vec4 is a 4-component vector. It doubles as a plane (a, b, c, d) where
// points with a*x + b*y + c*z + d >= 0 lie on the kept side.
type Vec4 [4]float32

// Neg returns -v. For a plane this flips the kept side.
func (v Vec4) Neg() Vec4 {
	return Vec4{-v[0], -v[1], -v[2], -v[3]}
}

// DotPoint evaluates the plane equation at p.
func (v Vec4) DotPoint(p Vec3) float32 {
	return v[0]*p.X + v[1]*p.Y + v[2]*p.Z + v[3]
}
