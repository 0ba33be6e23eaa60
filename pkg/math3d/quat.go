package math3d

import "math"

// Quat is a rotation quaternion. Vectors only read its four components.
type Quat struct {
	X, Y, Z, W float64
}

// IdentityQuat returns the quaternion of no rotation.
func IdentityQuat() Quat {
	return Quat{W: 1}
}

// QuatFromAxisAngle returns the rotation of angle radians around the unit
// vector axis.
func QuatFromAxisAngle(axis *Vector3, angle float64) Quat {
	s, c := math.Sincos(angle / 2)
	return Quat{axis.x * s, axis.y * s, axis.z * s, c}
}

// QuatFromEuler returns the rotation e describes, honoring its order.
func QuatFromEuler(e Euler) Quat {
	s1, c1 := math.Sincos(e.X / 2)
	s2, c2 := math.Sincos(e.Y / 2)
	s3, c3 := math.Sincos(e.Z / 2)

	var q Quat
	switch e.Order {
	case OrderYXZ:
		q = Quat{
			s1*c2*c3 + c1*s2*s3,
			c1*s2*c3 - s1*c2*s3,
			c1*c2*s3 - s1*s2*c3,
			c1*c2*c3 + s1*s2*s3,
		}
	case OrderZXY:
		q = Quat{
			s1*c2*c3 - c1*s2*s3,
			c1*s2*c3 + s1*c2*s3,
			c1*c2*s3 + s1*s2*c3,
			c1*c2*c3 - s1*s2*s3,
		}
	case OrderZYX:
		q = Quat{
			s1*c2*c3 - c1*s2*s3,
			c1*s2*c3 + s1*c2*s3,
			c1*c2*s3 - s1*s2*c3,
			c1*c2*c3 + s1*s2*s3,
		}
	case OrderYZX:
		q = Quat{
			s1*c2*c3 + c1*s2*s3,
			c1*s2*c3 + s1*c2*s3,
			c1*c2*s3 - s1*s2*c3,
			c1*c2*c3 - s1*s2*s3,
		}
	case OrderXZY:
		q = Quat{
			s1*c2*c3 - c1*s2*s3,
			c1*s2*c3 - s1*c2*s3,
			c1*c2*s3 + s1*s2*c3,
			c1*c2*c3 + s1*s2*s3,
		}
	default: // OrderXYZ
		q = Quat{
			s1*c2*c3 + c1*s2*s3,
			c1*s2*c3 - s1*c2*s3,
			c1*c2*s3 + s1*s2*c3,
			c1*c2*c3 - s1*s2*s3,
		}
	}
	return q
}

// Mul returns the Hamilton product a * b, the rotation b followed by a.
//
//nolint:st1016 // a*b naming convention is clearer for quaternion products
func (a Quat) Mul(b Quat) Quat {
	return Quat{
		a.X*b.W + a.W*b.X + a.Y*b.Z - a.Z*b.Y,
		a.Y*b.W + a.W*b.Y + a.Z*b.X - a.X*b.Z,
		a.Z*b.W + a.W*b.Z + a.X*b.Y - a.Y*b.X,
		a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
	}
}

// Conjugate returns the inverse rotation of a unit quaternion.
func (q Quat) Conjugate() Quat {
	return Quat{-q.X, -q.Y, -q.Z, q.W}
}

// Length returns the norm of q.
func (q Quat) Length() float64 {
	return math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normalize returns q scaled to unit length, or the identity if q is zero.
func (q Quat) Normalize() Quat {
	l := q.Length()
	if l == 0 {
		return IdentityQuat()
	}
	return Quat{q.X / l, q.Y / l, q.Z / l, q.W / l}
}

// rotate computes v + 2w(q×v) + 2q×(q×v) without building a matrix.
func (q Quat) rotate(vx, vy, vz float64) (float64, float64, float64) {
	tx := 2 * (q.Y*vz - q.Z*vy)
	ty := 2 * (q.Z*vx - q.X*vz)
	tz := 2 * (q.X*vy - q.Y*vx)

	return vx + q.W*tx + q.Y*tz - q.Z*ty,
		vy + q.W*ty + q.Z*tx - q.X*tz,
		vz + q.W*tz + q.X*ty - q.Y*tx
}
