package math3d

import (
	"fmt"
	"iter"
	"math"

	"github.com/taigrr/vek/pkg/mathutil"
)

// Vector3 is a mutable 3D vector.
type Vector3 struct {
	meta
	x, y, z float64

	// OnChange is called after every mutation with the vector itself.
	// There is one slot; assigning replaces the previous observer.
	OnChange func(*Vector3)
}

// NewVector3 creates a vector from up to three components. Missing
// components are zero.
func NewVector3(xyz ...float64) *Vector3 {
	v := &Vector3{meta: newMeta("Vector3")}
	switch len(xyz) {
	default:
		v.z = xyz[2]
		fallthrough
	case 2:
		v.y = xyz[1]
		fallthrough
	case 1:
		v.x = xyz[0]
	case 0:
	}
	return v
}

// V3 creates a new Vector3.
func V3(x, y, z float64) *Vector3 {
	v := NewVector3()
	v.x, v.y, v.z = x, y, z
	return v
}

// Zero3 returns the zero vector.
func Zero3() *Vector3 {
	return NewVector3()
}

// Up returns the world up vector (0, 1, 0).
func Up() *Vector3 {
	return V3(0, 1, 0)
}

// Forward returns the world forward vector (0, 0, -1).
func Forward() *Vector3 {
	return V3(0, 0, -1)
}

// Right returns the world right vector (1, 0, 0).
func Right() *Vector3 {
	return V3(1, 0, 0)
}

func (v *Vector3) X() float64 { return v.x }
func (v *Vector3) Y() float64 { return v.y }
func (v *Vector3) Z() float64 { return v.z }

// Dim returns 3.
func (v *Vector3) Dim() int { return 3 }

func (v *Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.x, v.y, v.z)
}

func (v *Vector3) assign(x, y, z float64) *Vector3 {
	v.x, v.y, v.z = x, y, z
	return commit(&v.meta, v.OnChange, v)
}

// Set sets x and y, and z when given. Without z the current z is kept.
func (v *Vector3) Set(x, y float64, z ...float64) *Vector3 {
	nz := v.z
	if len(z) > 0 {
		nz = z[0]
	}
	return v.assign(x, y, nz)
}

// SetScalar sets every component to s.
func (v *Vector3) SetScalar(s float64) *Vector3 {
	return v.assign(s, s, s)
}

func (v *Vector3) SetX(x float64) *Vector3 { return v.assign(x, v.y, v.z) }
func (v *Vector3) SetY(y float64) *Vector3 { return v.assign(v.x, y, v.z) }
func (v *Vector3) SetZ(z float64) *Vector3 { return v.assign(v.x, v.y, z) }

// SetComponent sets the component at index (0=x, 1=y, 2=z).
func (v *Vector3) SetComponent(index int, value float64) (*Vector3, error) {
	switch index {
	case 0:
		return v.SetX(value), nil
	case 1:
		return v.SetY(value), nil
	case 2:
		return v.SetZ(value), nil
	}
	return v, indexError(v.origin, index)
}

// Component returns the component at index (0=x, 1=y, 2=z).
func (v *Vector3) Component(index int) (float64, error) {
	switch index {
	case 0:
		return v.x, nil
	case 1:
		return v.y, nil
	case 2:
		return v.z, nil
	}
	return 0, indexError(v.origin, index)
}

// Clone returns a new vector with the same components. The clone is clean
// and has no observer.
func (v *Vector3) Clone() *Vector3 {
	return V3(v.x, v.y, v.z)
}

// CloneVector is Clone behind the Vector interface.
func (v *Vector3) CloneVector() Vector { return v.Clone() }

// Copy sets v's components from a.
func (v *Vector3) Copy(a *Vector3) *Vector3 {
	return v.assign(a.x, a.y, a.z)
}

// Add adds a to v.
func (v *Vector3) Add(a *Vector3) *Vector3 {
	return v.assign(v.x+a.x, v.y+a.y, v.z+a.z)
}

// AddScalar adds s to each component.
func (v *Vector3) AddScalar(s float64) *Vector3 {
	return v.assign(v.x+s, v.y+s, v.z+s)
}

// AddVectors sets v to a + b.
func (v *Vector3) AddVectors(a, b *Vector3) *Vector3 {
	return v.assign(a.x+b.x, a.y+b.y, a.z+b.z)
}

// AddScaledVector adds a * s to v.
func (v *Vector3) AddScaledVector(a *Vector3, s float64) *Vector3 {
	return v.assign(v.x+a.x*s, v.y+a.y*s, v.z+a.z*s)
}

// Sub subtracts a from v.
func (v *Vector3) Sub(a *Vector3) *Vector3 {
	return v.assign(v.x-a.x, v.y-a.y, v.z-a.z)
}

// SubScalar subtracts s from each component.
func (v *Vector3) SubScalar(s float64) *Vector3 {
	return v.assign(v.x-s, v.y-s, v.z-s)
}

// SubVectors sets v to a - b.
func (v *Vector3) SubVectors(a, b *Vector3) *Vector3 {
	return v.assign(a.x-b.x, a.y-b.y, a.z-b.z)
}

// Multiply multiplies v component-wise by a.
func (v *Vector3) Multiply(a *Vector3) *Vector3 {
	return v.assign(v.x*a.x, v.y*a.y, v.z*a.z)
}

// MultiplyScalar scales v by s.
func (v *Vector3) MultiplyScalar(s float64) *Vector3 {
	return v.assign(v.x*s, v.y*s, v.z*s)
}

// MultiplyVectors sets v to the component-wise product of a and b.
func (v *Vector3) MultiplyVectors(a, b *Vector3) *Vector3 {
	return v.assign(a.x*b.x, a.y*b.y, a.z*b.z)
}

// Divide divides v component-wise by a.
func (v *Vector3) Divide(a *Vector3) *Vector3 {
	return v.assign(v.x/a.x, v.y/a.y, v.z/a.z)
}

// DivideScalar divides v by s.
func (v *Vector3) DivideScalar(s float64) *Vector3 {
	return v.MultiplyScalar(1 / s)
}

// ApplyEuler rotates v by the rotation e describes.
func (v *Vector3) ApplyEuler(e Euler) *Vector3 {
	return v.ApplyQuaternion(QuatFromEuler(e))
}

// ApplyAxisAngle rotates v by angle radians around the unit vector axis.
func (v *Vector3) ApplyAxisAngle(axis *Vector3, angle float64) *Vector3 {
	return v.ApplyQuaternion(QuatFromAxisAngle(axis, angle))
}

// ApplyMatrix3 multiplies v by m.
func (v *Vector3) ApplyMatrix3(m Mat3) *Vector3 {
	return v.assign(m.mulXYZ(v.x, v.y, v.z))
}

// ApplyNormalMatrix transforms v by the normal matrix m and normalizes it.
func (v *Vector3) ApplyNormalMatrix(m Mat3) *Vector3 {
	return v.assign(normalized(m.mulXYZ(v.x, v.y, v.z)))
}

// ApplyMatrix4 transforms v as a point and divides by the resulting w.
func (v *Vector3) ApplyMatrix4(m Mat4) *Vector3 {
	return v.assign(m.transformPoint(v.x, v.y, v.z))
}

// ApplyQuaternion rotates v by the unit quaternion q.
func (v *Vector3) ApplyQuaternion(q Quat) *Vector3 {
	return v.assign(q.rotate(v.x, v.y, v.z))
}

// Project maps v from world space to normalized device coordinates.
func (v *Vector3) Project(c Camera) *Vector3 {
	x, y, z := c.MatrixWorldInverse().transformPoint(v.x, v.y, v.z)
	return v.assign(c.ProjectionMatrix().transformPoint(x, y, z))
}

// Unproject maps v from normalized device coordinates to world space.
func (v *Vector3) Unproject(c Camera) *Vector3 {
	x, y, z := c.ProjectionMatrixInverse().transformPoint(v.x, v.y, v.z)
	return v.assign(c.MatrixWorld().transformPoint(x, y, z))
}

// TransformDirection transforms v by the upper 3x3 of m and normalizes the
// result. Translation is ignored.
func (v *Vector3) TransformDirection(m Mat4) *Vector3 {
	return v.assign(normalized(m.transformDirection(v.x, v.y, v.z)))
}

// Min sets each component to the smaller of v and a.
func (v *Vector3) Min(a *Vector3) *Vector3 {
	return v.assign(math.Min(v.x, a.x), math.Min(v.y, a.y), math.Min(v.z, a.z))
}

// Max sets each component to the larger of v and a.
func (v *Vector3) Max(a *Vector3) *Vector3 {
	return v.assign(math.Max(v.x, a.x), math.Max(v.y, a.y), math.Max(v.z, a.z))
}

// Clamp bounds each component between the matching components of lo and hi.
func (v *Vector3) Clamp(lo, hi *Vector3) *Vector3 {
	return v.assign(
		mathutil.Clamp(v.x, lo.x, hi.x),
		mathutil.Clamp(v.y, lo.y, hi.y),
		mathutil.Clamp(v.z, lo.z, hi.z),
	)
}

// ClampScalar bounds each component to [lo, hi].
func (v *Vector3) ClampScalar(lo, hi float64) *Vector3 {
	return v.assign(
		mathutil.Clamp(v.x, lo, hi),
		mathutil.Clamp(v.y, lo, hi),
		mathutil.Clamp(v.z, lo, hi),
	)
}

// ClampLength bounds the length of v to [lo, hi], keeping its direction.
func (v *Vector3) ClampLength(lo, hi float64) *Vector3 {
	l := v.Length()
	s := mathutil.Clamp(l, lo, hi) / orOne(l)
	return v.assign(v.x*s, v.y*s, v.z*s)
}

func (v *Vector3) Floor() *Vector3 {
	return v.assign(math.Floor(v.x), math.Floor(v.y), math.Floor(v.z))
}

func (v *Vector3) Ceil() *Vector3 {
	return v.assign(math.Ceil(v.x), math.Ceil(v.y), math.Ceil(v.z))
}

// Round rounds each component, halves toward positive infinity.
func (v *Vector3) Round() *Vector3 {
	return v.assign(round(v.x), round(v.y), round(v.z))
}

// RoundToZero truncates each component toward zero.
func (v *Vector3) RoundToZero() *Vector3 {
	return v.assign(math.Trunc(v.x), math.Trunc(v.y), math.Trunc(v.z))
}

func (v *Vector3) Negate() *Vector3 {
	return v.assign(-v.x, -v.y, -v.z)
}

// Dot returns v · a.
func (v *Vector3) Dot(a *Vector3) float64 {
	return v.x*a.x + v.y*a.y + v.z*a.z
}

// LengthSq returns the squared length.
func (v *Vector3) LengthSq() float64 {
	return v.x*v.x + v.y*v.y + v.z*v.z
}

// Length returns the Euclidean length.
func (v *Vector3) Length() float64 {
	return math.Sqrt(v.LengthSq())
}

// ManhattanLength returns |x| + |y| + |z|.
func (v *Vector3) ManhattanLength() float64 {
	return math.Abs(v.x) + math.Abs(v.y) + math.Abs(v.z)
}

// Normalize scales v to unit length. The zero vector stays zero.
func (v *Vector3) Normalize() *Vector3 {
	return v.assign(normalized(v.x, v.y, v.z))
}

// SetLength scales v to length l.
func (v *Vector3) SetLength(l float64) *Vector3 {
	s := l / orOne(v.Length())
	return v.assign(v.x*s, v.y*s, v.z*s)
}

// Lerp moves v toward a by alpha.
func (v *Vector3) Lerp(a *Vector3, alpha float64) *Vector3 {
	return v.assign(
		v.x+(a.x-v.x)*alpha,
		v.y+(a.y-v.y)*alpha,
		v.z+(a.z-v.z)*alpha,
	)
}

// LerpVectors sets v to the interpolation between a and b by alpha.
func (v *Vector3) LerpVectors(a, b *Vector3, alpha float64) *Vector3 {
	return v.assign(
		a.x+(b.x-a.x)*alpha,
		a.y+(b.y-a.y)*alpha,
		a.z+(b.z-a.z)*alpha,
	)
}

// Cross sets v to v × a.
func (v *Vector3) Cross(a *Vector3) *Vector3 {
	return v.assign(cross(v.x, v.y, v.z, a.x, a.y, a.z))
}

// CrossVectors sets v to a × b.
func (v *Vector3) CrossVectors(a, b *Vector3) *Vector3 {
	return v.assign(cross(a.x, a.y, a.z, b.x, b.y, b.z))
}

// ProjectOnVector projects v onto a. Projecting onto the zero vector
// yields the zero vector.
func (v *Vector3) ProjectOnVector(a *Vector3) *Vector3 {
	d := a.LengthSq()
	if d == 0 {
		return v.assign(0, 0, 0)
	}
	s := a.Dot(v) / d
	return v.assign(a.x*s, a.y*s, a.z*s)
}

// ProjectOnPlane projects v onto the plane through the origin with the
// given normal.
func (v *Vector3) ProjectOnPlane(normal *Vector3) *Vector3 {
	px, py, pz := 0.0, 0.0, 0.0
	if d := normal.LengthSq(); d != 0 {
		s := normal.Dot(v) / d
		px, py, pz = normal.x*s, normal.y*s, normal.z*s
	}
	return v.assign(v.x-px, v.y-py, v.z-pz)
}

// Reflect reflects v off the plane orthogonal to the unit vector normal.
func (v *Vector3) Reflect(normal *Vector3) *Vector3 {
	s := 2 * v.Dot(normal)
	return v.assign(v.x-normal.x*s, v.y-normal.y*s, v.z-normal.z*s)
}

// AngleTo returns the angle between v and a in radians. If either vector
// has zero length the angle is π/2.
func (v *Vector3) AngleTo(a *Vector3) float64 {
	d := math.Sqrt(v.LengthSq() * a.LengthSq())
	if d == 0 {
		return math.Pi / 2
	}
	return math.Acos(mathutil.Clamp(v.Dot(a)/d, -1, 1))
}

// DistanceTo returns the distance between v and a.
func (v *Vector3) DistanceTo(a *Vector3) float64 {
	return math.Sqrt(v.DistanceToSquared(a))
}

// DistanceToSquared returns the squared distance between v and a.
func (v *Vector3) DistanceToSquared(a *Vector3) float64 {
	dx, dy, dz := v.x-a.x, v.y-a.y, v.z-a.z
	return dx*dx + dy*dy + dz*dz
}

// ManhattanDistanceTo returns the L1 distance between v and a.
func (v *Vector3) ManhattanDistanceTo(a *Vector3) float64 {
	return math.Abs(v.x-a.x) + math.Abs(v.y-a.y) + math.Abs(v.z-a.z)
}

// SetFromSpherical sets v from spherical coordinates.
func (v *Vector3) SetFromSpherical(s Spherical) *Vector3 {
	return v.SetFromSphericalCoords(s.Radius, s.Phi, s.Theta)
}

// SetFromSphericalCoords sets v from a radius, a polar angle phi measured
// from +Y and an azimuth theta measured around Y from +Z.
func (v *Vector3) SetFromSphericalCoords(radius, phi, theta float64) *Vector3 {
	r := math.Sin(phi) * radius
	return v.assign(r*math.Sin(theta), math.Cos(phi)*radius, r*math.Cos(theta))
}

// SetFromCylindrical sets v from cylindrical coordinates.
func (v *Vector3) SetFromCylindrical(c Cylindrical) *Vector3 {
	return v.SetFromCylindricalCoords(c.Radius, c.Theta, c.Y)
}

// SetFromCylindricalCoords sets v from a radius, an azimuth theta and a height y.
func (v *Vector3) SetFromCylindricalCoords(radius, theta, y float64) *Vector3 {
	return v.assign(radius*math.Sin(theta), y, radius*math.Cos(theta))
}

// SetFromMatrixPosition sets v to the translation of m.
func (v *Vector3) SetFromMatrixPosition(m Mat4) *Vector3 {
	return v.assign(m[12], m[13], m[14])
}

// SetFromMatrixScale sets v to the lengths of the first three columns of m.
func (v *Vector3) SetFromMatrixScale(m Mat4) *Vector3 {
	return v.assign(
		math.Sqrt(m[0]*m[0]+m[1]*m[1]+m[2]*m[2]),
		math.Sqrt(m[4]*m[4]+m[5]*m[5]+m[6]*m[6]),
		math.Sqrt(m[8]*m[8]+m[9]*m[9]+m[10]*m[10]),
	)
}

// SetFromMatrixColumn sets v to the first three rows of column index of m.
func (v *Vector3) SetFromMatrixColumn(m Mat4, index int) *Vector3 {
	return v.FromArray(m[:], index*4)
}

// SetFromMatrix3Column sets v to column index of m.
func (v *Vector3) SetFromMatrix3Column(m Mat3, index int) *Vector3 {
	return v.FromArray(m[:], index*3)
}

// SetFromEuler copies the three angles of e.
func (v *Vector3) SetFromEuler(e Euler) *Vector3 {
	return v.assign(e.X, e.Y, e.Z)
}

// SetFromColor copies r, g and b into x, y and z.
func (v *Vector3) SetFromColor(c Color) *Vector3 {
	return v.assign(c.R, c.G, c.B)
}

// Equals reports exact component equality.
func (v *Vector3) Equals(a *Vector3) bool {
	return v.x == a.x && v.y == a.y && v.z == a.z
}

// FromArray reads three components starting at offset.
func (v *Vector3) FromArray(src []float64, offset int) *Vector3 {
	return v.assign(src[offset], src[offset+1], src[offset+2])
}

// ToArray writes the components into dst starting at offset, growing dst
// if needed, and returns it.
func (v *Vector3) ToArray(dst []float64, offset int) []float64 {
	dst = growTo(dst, offset+3)
	dst[offset], dst[offset+1], dst[offset+2] = v.x, v.y, v.z
	return dst
}

// FromBufferAttribute reads vertex index of attr.
func (v *Vector3) FromBufferAttribute(attr AttributeXYZ, index int) *Vector3 {
	return v.assign(attr.GetX(index), attr.GetY(index), attr.GetZ(index))
}

// Random sets each component to an independent draw in [0, 1).
func (v *Vector3) Random() *Vector3 {
	return v.RandomWith(mathutil.DefaultSource())
}

// RandomWith is Random drawing from src.
func (v *Vector3) RandomWith(src mathutil.Source) *Vector3 {
	return v.assign(src.Float64(), src.Float64(), src.Float64())
}

// RandomDirection sets v to a uniformly distributed point on the unit sphere.
func (v *Vector3) RandomDirection() *Vector3 {
	return v.RandomDirectionWith(mathutil.DefaultSource())
}

// RandomDirectionWith is RandomDirection drawing from src. It samples a
// cylinder and projects onto the sphere, which is area preserving.
func (v *Vector3) RandomDirectionWith(src mathutil.Source) *Vector3 {
	theta := src.Float64() * math.Pi * 2
	u := src.Float64()*2 - 1
	c := math.Sqrt(1 - u*u)
	return v.assign(c*math.Cos(theta), u, c*math.Sin(theta))
}

// All iterates x, y, z.
func (v *Vector3) All() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		_ = yield(v.x) && yield(v.y) && yield(v.z)
	}
}

// Components returns x, y, z as a new slice.
func (v *Vector3) Components() []float64 {
	return []float64{v.x, v.y, v.z}
}

func cross(ax, ay, az, bx, by, bz float64) (float64, float64, float64) {
	return ay*bz - az*by, az*bx - ax*bz, ax*by - ay*bx
}

func normalized(x, y, z float64) (float64, float64, float64) {
	l := orOne(math.Sqrt(x*x + y*y + z*z))
	return x / l, y / l, z / l
}

// orOne guards divisions by a length that may be zero.
func orOne(l float64) float64 {
	if l == 0 {
		return 1
	}
	return l
}

func round(x float64) float64 {
	return math.Floor(x + 0.5)
}
