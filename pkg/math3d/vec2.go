package math3d

import (
	"fmt"
	"iter"
	"math"

	"github.com/taigrr/vek/pkg/mathutil"
)

// Vector2 is a mutable 2D vector, also used for sizes (Width/Height).
type Vector2 struct {
	meta
	x, y float64

	// OnChange is called after every mutation with the vector itself.
	OnChange func(*Vector2)
}

// NewVector2 creates a vector from up to two components. Missing components
// are zero.
func NewVector2(xy ...float64) *Vector2 {
	v := &Vector2{meta: newMeta("Vector2")}
	if len(xy) > 0 {
		v.x = xy[0]
	}
	if len(xy) > 1 {
		v.y = xy[1]
	}
	return v
}

// V2 creates a new Vector2.
func V2(x, y float64) *Vector2 {
	return NewVector2(x, y)
}

func (v *Vector2) X() float64      { return v.x }
func (v *Vector2) Y() float64      { return v.y }
func (v *Vector2) Width() float64  { return v.x }
func (v *Vector2) Height() float64 { return v.y }

// Dim returns 2.
func (v *Vector2) Dim() int { return 2 }

func (v *Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", v.x, v.y)
}

func (v *Vector2) assign(x, y float64) *Vector2 {
	v.x, v.y = x, y
	return commit(&v.meta, v.OnChange, v)
}

func (v *Vector2) Set(x, y float64) *Vector2 { return v.assign(x, y) }

func (v *Vector2) SetScalar(s float64) *Vector2 { return v.assign(s, s) }

func (v *Vector2) SetX(x float64) *Vector2 { return v.assign(x, v.y) }
func (v *Vector2) SetY(y float64) *Vector2 { return v.assign(v.x, y) }

func (v *Vector2) SetWidth(w float64) *Vector2  { return v.SetX(w) }
func (v *Vector2) SetHeight(h float64) *Vector2 { return v.SetY(h) }

// SetComponent sets the component at index (0=x, 1=y).
func (v *Vector2) SetComponent(index int, value float64) (*Vector2, error) {
	switch index {
	case 0:
		return v.SetX(value), nil
	case 1:
		return v.SetY(value), nil
	}
	return v, indexError(v.origin, index)
}

// Component returns the component at index (0=x, 1=y).
func (v *Vector2) Component(index int) (float64, error) {
	switch index {
	case 0:
		return v.x, nil
	case 1:
		return v.y, nil
	}
	return 0, indexError(v.origin, index)
}

// Clone returns a clean copy with no observer.
func (v *Vector2) Clone() *Vector2 { return V2(v.x, v.y) }

func (v *Vector2) CloneVector() Vector { return v.Clone() }

func (v *Vector2) Copy(a *Vector2) *Vector2 { return v.assign(a.x, a.y) }

func (v *Vector2) Add(a *Vector2) *Vector2 { return v.assign(v.x+a.x, v.y+a.y) }

func (v *Vector2) AddScalar(s float64) *Vector2 { return v.assign(v.x+s, v.y+s) }

func (v *Vector2) AddVectors(a, b *Vector2) *Vector2 { return v.assign(a.x+b.x, a.y+b.y) }

func (v *Vector2) AddScaledVector(a *Vector2, s float64) *Vector2 {
	return v.assign(v.x+a.x*s, v.y+a.y*s)
}

func (v *Vector2) Sub(a *Vector2) *Vector2 { return v.assign(v.x-a.x, v.y-a.y) }

func (v *Vector2) SubScalar(s float64) *Vector2 { return v.assign(v.x-s, v.y-s) }

func (v *Vector2) SubVectors(a, b *Vector2) *Vector2 { return v.assign(a.x-b.x, a.y-b.y) }

func (v *Vector2) Multiply(a *Vector2) *Vector2 { return v.assign(v.x*a.x, v.y*a.y) }

func (v *Vector2) MultiplyScalar(s float64) *Vector2 { return v.assign(v.x*s, v.y*s) }

func (v *Vector2) Divide(a *Vector2) *Vector2 { return v.assign(v.x/a.x, v.y/a.y) }

func (v *Vector2) DivideScalar(s float64) *Vector2 { return v.MultiplyScalar(1 / s) }

// ApplyMatrix3 transforms v as a 2D point with an implicit z of 1.
func (v *Vector2) ApplyMatrix3(m Mat3) *Vector2 {
	x, y := v.x, v.y
	return v.assign(m[0]*x+m[3]*y+m[6], m[1]*x+m[4]*y+m[7])
}

func (v *Vector2) Min(a *Vector2) *Vector2 {
	return v.assign(math.Min(v.x, a.x), math.Min(v.y, a.y))
}

func (v *Vector2) Max(a *Vector2) *Vector2 {
	return v.assign(math.Max(v.x, a.x), math.Max(v.y, a.y))
}

// Clamp bounds each component between the matching components of lo and hi.
func (v *Vector2) Clamp(lo, hi *Vector2) *Vector2 {
	return v.assign(mathutil.Clamp(v.x, lo.x, hi.x), mathutil.Clamp(v.y, lo.y, hi.y))
}

func (v *Vector2) ClampScalar(lo, hi float64) *Vector2 {
	return v.assign(mathutil.Clamp(v.x, lo, hi), mathutil.Clamp(v.y, lo, hi))
}

// ClampLength bounds the length of v to [lo, hi], keeping its direction.
func (v *Vector2) ClampLength(lo, hi float64) *Vector2 {
	l := v.Length()
	s := mathutil.Clamp(l, lo, hi) / orOne(l)
	return v.assign(v.x*s, v.y*s)
}

func (v *Vector2) Floor() *Vector2 { return v.assign(math.Floor(v.x), math.Floor(v.y)) }

func (v *Vector2) Ceil() *Vector2 { return v.assign(math.Ceil(v.x), math.Ceil(v.y)) }

func (v *Vector2) Round() *Vector2 { return v.assign(round(v.x), round(v.y)) }

func (v *Vector2) RoundToZero() *Vector2 { return v.assign(math.Trunc(v.x), math.Trunc(v.y)) }

func (v *Vector2) Negate() *Vector2 { return v.assign(-v.x, -v.y) }

func (v *Vector2) Dot(a *Vector2) float64 { return v.x*a.x + v.y*a.y }

// Cross returns the z component of the 3D cross product of v and a.
func (v *Vector2) Cross(a *Vector2) float64 { return v.x*a.y - v.y*a.x }

func (v *Vector2) LengthSq() float64 { return v.x*v.x + v.y*v.y }

func (v *Vector2) Length() float64 { return math.Sqrt(v.LengthSq()) }

func (v *Vector2) ManhattanLength() float64 { return math.Abs(v.x) + math.Abs(v.y) }

// Normalize scales v to unit length. The zero vector stays zero.
func (v *Vector2) Normalize() *Vector2 {
	l := orOne(v.Length())
	return v.assign(v.x/l, v.y/l)
}

// Angle returns the angle from the positive x axis in [0, 2π).
func (v *Vector2) Angle() float64 {
	return math.Atan2(-v.y, -v.x) + math.Pi
}

// AngleTo returns the angle between v and a, or π/2 if either is zero.
func (v *Vector2) AngleTo(a *Vector2) float64 {
	d := math.Sqrt(v.LengthSq() * a.LengthSq())
	if d == 0 {
		return math.Pi / 2
	}
	return math.Acos(mathutil.Clamp(v.Dot(a)/d, -1, 1))
}

func (v *Vector2) DistanceTo(a *Vector2) float64 { return math.Sqrt(v.DistanceToSquared(a)) }

func (v *Vector2) DistanceToSquared(a *Vector2) float64 {
	dx, dy := v.x-a.x, v.y-a.y
	return dx*dx + dy*dy
}

func (v *Vector2) ManhattanDistanceTo(a *Vector2) float64 {
	return math.Abs(v.x-a.x) + math.Abs(v.y-a.y)
}

func (v *Vector2) SetLength(l float64) *Vector2 {
	s := l / orOne(v.Length())
	return v.assign(v.x*s, v.y*s)
}

func (v *Vector2) Lerp(a *Vector2, alpha float64) *Vector2 {
	return v.assign(v.x+(a.x-v.x)*alpha, v.y+(a.y-v.y)*alpha)
}

func (v *Vector2) LerpVectors(a, b *Vector2, alpha float64) *Vector2 {
	return v.assign(a.x+(b.x-a.x)*alpha, a.y+(b.y-a.y)*alpha)
}

// Equals reports exact component equality.
func (v *Vector2) Equals(a *Vector2) bool { return v.x == a.x && v.y == a.y }

func (v *Vector2) FromArray(src []float64, offset int) *Vector2 {
	return v.assign(src[offset], src[offset+1])
}

func (v *Vector2) ToArray(dst []float64, offset int) []float64 {
	dst = growTo(dst, offset+2)
	dst[offset], dst[offset+1] = v.x, v.y
	return dst
}

func (v *Vector2) FromBufferAttribute(attr AttributeXY, index int) *Vector2 {
	return v.assign(attr.GetX(index), attr.GetY(index))
}

// RotateAround rotates v by angle radians around center.
func (v *Vector2) RotateAround(center *Vector2, angle float64) *Vector2 {
	s, c := math.Sincos(angle)
	x, y := v.x-center.x, v.y-center.y
	return v.assign(x*c-y*s+center.x, x*s+y*c+center.y)
}

func (v *Vector2) Random() *Vector2 { return v.RandomWith(mathutil.DefaultSource()) }

func (v *Vector2) RandomWith(src mathutil.Source) *Vector2 {
	return v.assign(src.Float64(), src.Float64())
}

// All iterates x, y.
func (v *Vector2) All() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		_ = yield(v.x) && yield(v.y)
	}
}

func (v *Vector2) Components() []float64 { return []float64{v.x, v.y} }
