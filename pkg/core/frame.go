package core

import "math"

// Directions in the local shading frame have z aligned with the surface
// normal, so the spherical angles of a unit vector fall out of its
// components directly. These helpers assume their argument is normalized.

// CosTheta returns the cosine of the zenith angle of a local direction
func CosTheta(w Vec3) float64 {
	return w.Z
}

// SinTheta returns the sine of the zenith angle of a local direction
func SinTheta(w Vec3) float64 {
	return math.Sqrt(math.Max(0, 1-w.Z*w.Z))
}

// Phi returns the azimuth of a local direction in [0, 2π)
func Phi(w Vec3) float64 {
	p := math.Atan2(w.Y, w.X)
	if p < 0 {
		p += 2 * math.Pi
	}
	return p
}

// CosDeltaPhi returns the cosine of the azimuth difference between two
// local directions without computing the angles themselves
func CosDeltaPhi(wa, wb Vec3) float64 {
	la := wa.X*wa.X + wa.Y*wa.Y
	lb := wb.X*wb.X + wb.Y*wb.Y
	if la == 0 || lb == 0 {
		return 1
	}
	c := (wa.X*wb.X + wa.Y*wb.Y) / math.Sqrt(la*lb)
	return math.Max(-1, math.Min(1, c))
}

// Frame is an orthonormal basis around a surface normal, used to convert
// between world-space directions and the local shading frame
type Frame struct {
	Tangent   Vec3
	Bitangent Vec3
	Normal    Vec3
}

// NewFrame builds an orthonormal basis with z aligned to the given normal
func NewFrame(normal Vec3) Frame {
	n := normal.Normalize()

	// Pick a helper axis not parallel to the normal
	var nt Vec3
	if math.Abs(n.X) > 0.1 {
		nt = NewVec3(0, 1, 0)
	} else {
		nt = NewVec3(1, 0, 0)
	}

	tangent := nt.Cross(n).Normalize()
	bitangent := n.Cross(tangent)

	return Frame{Tangent: tangent, Bitangent: bitangent, Normal: n}
}

// ToLocal converts a world-space direction into the frame
func (f Frame) ToLocal(w Vec3) Vec3 {
	return Vec3{
		X: w.Dot(f.Tangent),
		Y: w.Dot(f.Bitangent),
		Z: w.Dot(f.Normal),
	}
}

// ToWorld converts a frame-local direction back into world space
func (f Frame) ToWorld(w Vec3) Vec3 {
	return f.Tangent.Multiply(w.X).
		Add(f.Bitangent.Multiply(w.Y)).
		Add(f.Normal.Multiply(w.Z))
}
