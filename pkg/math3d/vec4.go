package math3d

import (
	"fmt"
	"iter"
	"math"

	"github.com/taigrr/vek/pkg/mathutil"
)

// Vector4 is a mutable 4D vector. It holds either a homogeneous point or,
// after SetAxisAngleFrom*, a unit axis in x, y, z and an angle in w.
type Vector4 struct {
	meta
	x, y, z, w float64

	// OnChange is called after every mutation with the vector itself.
	OnChange func(*Vector4)
}

// NewVector4 creates a vector from up to four components. Missing x, y, z
// are zero; a missing w is 1.
func NewVector4(xyzw ...float64) *Vector4 {
	v := &Vector4{meta: newMeta("Vector4"), w: 1}
	for i, c := range xyzw {
		switch i {
		case 0:
			v.x = c
		case 1:
			v.y = c
		case 2:
			v.z = c
		case 3:
			v.w = c
		}
	}
	return v
}

// V4 creates a new Vector4.
func V4(x, y, z, w float64) *Vector4 {
	return NewVector4(x, y, z, w)
}

// V4FromV3 creates a Vector4 from v with the given w.
func V4FromV3(v *Vector3, w float64) *Vector4 {
	return NewVector4(v.x, v.y, v.z, w)
}

func (v *Vector4) X() float64 { return v.x }
func (v *Vector4) Y() float64 { return v.y }
func (v *Vector4) Z() float64 { return v.z }
func (v *Vector4) W() float64 { return v.w }

// Dim returns 4.
func (v *Vector4) Dim() int { return 4 }

func (v *Vector4) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", v.x, v.y, v.z, v.w)
}

func (v *Vector4) assign(x, y, z, w float64) *Vector4 {
	v.x, v.y, v.z, v.w = x, y, z, w
	return commit(&v.meta, v.OnChange, v)
}

func (v *Vector4) Set(x, y, z, w float64) *Vector4 { return v.assign(x, y, z, w) }

func (v *Vector4) SetScalar(s float64) *Vector4 { return v.assign(s, s, s, s) }

func (v *Vector4) SetX(x float64) *Vector4 { return v.assign(x, v.y, v.z, v.w) }
func (v *Vector4) SetY(y float64) *Vector4 { return v.assign(v.x, y, v.z, v.w) }
func (v *Vector4) SetZ(z float64) *Vector4 { return v.assign(v.x, v.y, z, v.w) }
func (v *Vector4) SetW(w float64) *Vector4 { return v.assign(v.x, v.y, v.z, w) }

// SetComponent sets the component at index (0=x, 1=y, 2=z, 3=w).
func (v *Vector4) SetComponent(index int, value float64) (*Vector4, error) {
	switch index {
	case 0:
		return v.SetX(value), nil
	case 1:
		return v.SetY(value), nil
	case 2:
		return v.SetZ(value), nil
	case 3:
		return v.SetW(value), nil
	}
	return v, indexError(v.origin, index)
}

// Component returns the component at index (0=x, 1=y, 2=z, 3=w).
func (v *Vector4) Component(index int) (float64, error) {
	switch index {
	case 0:
		return v.x, nil
	case 1:
		return v.y, nil
	case 2:
		return v.z, nil
	case 3:
		return v.w, nil
	}
	return 0, indexError(v.origin, index)
}

// Clone returns a clean copy with no observer.
func (v *Vector4) Clone() *Vector4 { return V4(v.x, v.y, v.z, v.w) }

func (v *Vector4) CloneVector() Vector { return v.Clone() }

// Copy sets v from a. A *Vector4 source is copied as is; a *Vector3 or
// *Vector2 source has no w, which is taken as 1, and a Vector2's z as 0.
func (v *Vector4) Copy(a Vector) *Vector4 {
	switch s := a.(type) {
	case *Vector4:
		return v.assign(s.x, s.y, s.z, s.w)
	case *Vector3:
		return v.assign(s.x, s.y, s.z, 1)
	case *Vector2:
		return v.assign(s.x, s.y, 0, 1)
	}
	return v
}

func (v *Vector4) Add(a *Vector4) *Vector4 {
	return v.assign(v.x+a.x, v.y+a.y, v.z+a.z, v.w+a.w)
}

func (v *Vector4) AddScalar(s float64) *Vector4 {
	return v.assign(v.x+s, v.y+s, v.z+s, v.w+s)
}

func (v *Vector4) AddVectors(a, b *Vector4) *Vector4 {
	return v.assign(a.x+b.x, a.y+b.y, a.z+b.z, a.w+b.w)
}

func (v *Vector4) AddScaledVector(a *Vector4, s float64) *Vector4 {
	return v.assign(v.x+a.x*s, v.y+a.y*s, v.z+a.z*s, v.w+a.w*s)
}

func (v *Vector4) Sub(a *Vector4) *Vector4 {
	return v.assign(v.x-a.x, v.y-a.y, v.z-a.z, v.w-a.w)
}

func (v *Vector4) SubScalar(s float64) *Vector4 {
	return v.assign(v.x-s, v.y-s, v.z-s, v.w-s)
}

func (v *Vector4) SubVectors(a, b *Vector4) *Vector4 {
	return v.assign(a.x-b.x, a.y-b.y, a.z-b.z, a.w-b.w)
}

func (v *Vector4) Multiply(a *Vector4) *Vector4 {
	return v.assign(v.x*a.x, v.y*a.y, v.z*a.z, v.w*a.w)
}

func (v *Vector4) MultiplyScalar(s float64) *Vector4 {
	return v.assign(v.x*s, v.y*s, v.z*s, v.w*s)
}

func (v *Vector4) Divide(a *Vector4) *Vector4 {
	return v.assign(v.x/a.x, v.y/a.y, v.z/a.z, v.w/a.w)
}

func (v *Vector4) DivideScalar(s float64) *Vector4 {
	return v.MultiplyScalar(1 / s)
}

// ApplyMatrix4 sets v to m * v. Unlike Vector3.ApplyMatrix4 there is no
// perspective divide.
func (v *Vector4) ApplyMatrix4(m Mat4) *Vector4 {
	x, y, z, w := v.x, v.y, v.z, v.w
	return v.assign(
		m[0]*x+m[4]*y+m[8]*z+m[12]*w,
		m[1]*x+m[5]*y+m[9]*z+m[13]*w,
		m[2]*x+m[6]*y+m[10]*z+m[14]*w,
		m[3]*x+m[7]*y+m[11]*z+m[15]*w,
	)
}

// SetAxisAngleFromQuaternion stores the rotation of the unit quaternion q
// as axis (x, y, z) and angle w. When the rotation is too small for the
// axis to be recovered, the axis is (1, 0, 0).
func (v *Vector4) SetAxisAngleFromQuaternion(q Quat) *Vector4 {
	angle := 2 * math.Acos(q.W)
	s := math.Sqrt(1 - q.W*q.W)
	if s < 0.0001 {
		return v.assign(1, 0, 0, angle)
	}
	return v.assign(q.X/s, q.Y/s, q.Z/s, angle)
}

// SetAxisAngleFromRotationMatrix stores the rotation held in the upper 3x3
// of m (which must be a pure, unscaled rotation) as axis and angle.
func (v *Vector4) SetAxisAngleFromRotationMatrix(m Mat4) *Vector4 {
	const (
		epsilon  = 0.01 // margin to allow for rounding errors
		epsilon2 = 0.1  // margin to distinguish between 0 and 180 degrees
		halfRt2  = 0.707106781
	)

	m11, m12, m13 := m[0], m[4], m[8]
	m21, m22, m23 := m[1], m[5], m[9]
	m31, m32, m33 := m[2], m[6], m[10]

	if math.Abs(m12-m21) < epsilon && math.Abs(m13-m31) < epsilon && math.Abs(m23-m32) < epsilon {
		// Symmetric: the angle is 0 or 180 degrees.
		if math.Abs(m12+m21) < epsilon2 && math.Abs(m13+m31) < epsilon2 &&
			math.Abs(m23+m32) < epsilon2 && math.Abs(m11+m22+m33-3) < epsilon2 {
			return v.assign(1, 0, 0, 0)
		}

		xx := (m11 + 1) / 2
		yy := (m22 + 1) / 2
		zz := (m33 + 1) / 2
		xy := (m12 + m21) / 4
		xz := (m13 + m31) / 4
		yz := (m23 + m32) / 4

		var x, y, z float64
		switch {
		case xx > yy && xx > zz:
			if xx < epsilon {
				x, y, z = 0, halfRt2, halfRt2
			} else {
				x = math.Sqrt(xx)
				y, z = xy/x, xz/x
			}
		case yy > zz:
			if yy < epsilon {
				x, y, z = halfRt2, 0, halfRt2
			} else {
				y = math.Sqrt(yy)
				x, z = xy/y, yz/y
			}
		default:
			if zz < epsilon {
				x, y, z = halfRt2, halfRt2, 0
			} else {
				z = math.Sqrt(zz)
				x, y = xz/z, yz/z
			}
		}
		return v.assign(x, y, z, math.Pi)
	}

	s := math.Sqrt((m32-m23)*(m32-m23) + (m13-m31)*(m13-m31) + (m21-m12)*(m21-m12))
	if math.Abs(s) < 0.001 {
		s = 1
	}
	return v.assign(
		(m32-m23)/s,
		(m13-m31)/s,
		(m21-m12)/s,
		math.Acos((m11+m22+m33-1)/2),
	)
}

// SetFromMatrixPosition sets v to the last column of m.
func (v *Vector4) SetFromMatrixPosition(m Mat4) *Vector4 {
	return v.assign(m[12], m[13], m[14], m[15])
}

func (v *Vector4) Min(a *Vector4) *Vector4 {
	return v.assign(math.Min(v.x, a.x), math.Min(v.y, a.y), math.Min(v.z, a.z), math.Min(v.w, a.w))
}

func (v *Vector4) Max(a *Vector4) *Vector4 {
	return v.assign(math.Max(v.x, a.x), math.Max(v.y, a.y), math.Max(v.z, a.z), math.Max(v.w, a.w))
}

func (v *Vector4) Clamp(lo, hi *Vector4) *Vector4 {
	return v.assign(
		mathutil.Clamp(v.x, lo.x, hi.x),
		mathutil.Clamp(v.y, lo.y, hi.y),
		mathutil.Clamp(v.z, lo.z, hi.z),
		mathutil.Clamp(v.w, lo.w, hi.w),
	)
}

func (v *Vector4) ClampScalar(lo, hi float64) *Vector4 {
	return v.assign(
		mathutil.Clamp(v.x, lo, hi),
		mathutil.Clamp(v.y, lo, hi),
		mathutil.Clamp(v.z, lo, hi),
		mathutil.Clamp(v.w, lo, hi),
	)
}

func (v *Vector4) ClampLength(lo, hi float64) *Vector4 {
	l := v.Length()
	s := mathutil.Clamp(l, lo, hi) / orOne(l)
	return v.assign(v.x*s, v.y*s, v.z*s, v.w*s)
}

func (v *Vector4) Floor() *Vector4 {
	return v.assign(math.Floor(v.x), math.Floor(v.y), math.Floor(v.z), math.Floor(v.w))
}

func (v *Vector4) Ceil() *Vector4 {
	return v.assign(math.Ceil(v.x), math.Ceil(v.y), math.Ceil(v.z), math.Ceil(v.w))
}

func (v *Vector4) Round() *Vector4 {
	return v.assign(round(v.x), round(v.y), round(v.z), round(v.w))
}

func (v *Vector4) RoundToZero() *Vector4 {
	return v.assign(math.Trunc(v.x), math.Trunc(v.y), math.Trunc(v.z), math.Trunc(v.w))
}

func (v *Vector4) Negate() *Vector4 {
	return v.assign(-v.x, -v.y, -v.z, -v.w)
}

// Dot returns the dot product.
func (v *Vector4) Dot(a *Vector4) float64 {
	return v.x*a.x + v.y*a.y + v.z*a.z + v.w*a.w
}

func (v *Vector4) LengthSq() float64 {
	return v.x*v.x + v.y*v.y + v.z*v.z + v.w*v.w
}

func (v *Vector4) Length() float64 {
	return math.Sqrt(v.LengthSq())
}

func (v *Vector4) ManhattanLength() float64 {
	return math.Abs(v.x) + math.Abs(v.y) + math.Abs(v.z) + math.Abs(v.w)
}

// Normalize scales v to unit length. The zero vector stays zero.
func (v *Vector4) Normalize() *Vector4 {
	l := orOne(v.Length())
	return v.assign(v.x/l, v.y/l, v.z/l, v.w/l)
}

func (v *Vector4) SetLength(l float64) *Vector4 {
	s := l / orOne(v.Length())
	return v.assign(v.x*s, v.y*s, v.z*s, v.w*s)
}

// Lerp returns linear interpolation.
func (v *Vector4) Lerp(a *Vector4, alpha float64) *Vector4 {
	return v.assign(
		v.x+(a.x-v.x)*alpha,
		v.y+(a.y-v.y)*alpha,
		v.z+(a.z-v.z)*alpha,
		v.w+(a.w-v.w)*alpha,
	)
}

func (v *Vector4) LerpVectors(a, b *Vector4, alpha float64) *Vector4 {
	return v.assign(
		a.x+(b.x-a.x)*alpha,
		a.y+(b.y-a.y)*alpha,
		a.z+(b.z-a.z)*alpha,
		a.w+(b.w-a.w)*alpha,
	)
}

// Equals reports exact component equality.
func (v *Vector4) Equals(a *Vector4) bool {
	return v.x == a.x && v.y == a.y && v.z == a.z && v.w == a.w
}

func (v *Vector4) FromArray(src []float64, offset int) *Vector4 {
	return v.assign(src[offset], src[offset+1], src[offset+2], src[offset+3])
}

func (v *Vector4) ToArray(dst []float64, offset int) []float64 {
	dst = growTo(dst, offset+4)
	dst[offset], dst[offset+1], dst[offset+2], dst[offset+3] = v.x, v.y, v.z, v.w
	return dst
}

func (v *Vector4) FromBufferAttribute(attr AttributeXYZW, index int) *Vector4 {
	return v.assign(attr.GetX(index), attr.GetY(index), attr.GetZ(index), attr.GetW(index))
}

func (v *Vector4) Random() *Vector4 { return v.RandomWith(mathutil.DefaultSource()) }

func (v *Vector4) RandomWith(src mathutil.Source) *Vector4 {
	return v.assign(src.Float64(), src.Float64(), src.Float64(), src.Float64())
}

// XYZ returns the first three components as a new Vector3.
func (v *Vector4) XYZ() *Vector3 {
	return V3(v.x, v.y, v.z)
}

// PerspectiveDivide returns a new Vector3 of x, y, z divided by w.
// If w is zero the components are returned undivided.
func (v *Vector4) PerspectiveDivide() *Vector3 {
	if v.w == 0 {
		return V3(v.x, v.y, v.z)
	}
	return V3(v.x/v.w, v.y/v.w, v.z/v.w)
}

// All iterates x, y, z, w.
func (v *Vector4) All() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		_ = yield(v.x) && yield(v.y) && yield(v.z) && yield(v.w)
	}
}

func (v *Vector4) Components() []float64 { return []float64{v.x, v.y, v.z, v.w} }
