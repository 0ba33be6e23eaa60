package math3d

import (
	"math"

	"github.com/taigrr/vek/pkg/mathutil"
)

// Spherical coordinates: Phi is the polar angle from +Y, Theta the azimuth
// around Y measured from +Z.
type Spherical struct {
	Radius, Phi, Theta float64
}

// SphericalFromVector converts the cartesian point v. The origin maps to
// all zeros.
func SphericalFromVector(v *Vector3) Spherical {
	r := v.Length()
	if r == 0 {
		return Spherical{}
	}
	return Spherical{
		Radius: r,
		Theta:  math.Atan2(v.x, v.z),
		Phi:    math.Acos(mathutil.Clamp(v.y/r, -1, 1)),
	}
}

// MakeSafe keeps Phi away from the poles, where Theta is undefined.
func (s Spherical) MakeSafe() Spherical {
	const eps = 1e-6
	s.Phi = mathutil.Clamp(s.Phi, eps, math.Pi-eps)
	return s
}

// Cylindrical coordinates: Theta is the azimuth around Y measured from +Z.
type Cylindrical struct {
	Radius, Theta, Y float64
}

// CylindricalFromVector converts the cartesian point v.
func CylindricalFromVector(v *Vector3) Cylindrical {
	return Cylindrical{
		Radius: math.Hypot(v.x, v.z),
		Theta:  math.Atan2(v.x, v.z),
		Y:      v.y,
	}
}
