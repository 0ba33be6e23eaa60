// Package mathutil provides the scalar helpers shared by the vector types:
// clamping, interpolation, power-of-two rounding, seeded randomness,
// identifier synthesis, fixed-width quantization and numeric diffing.
package mathutil

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

const (
	deg2rad = math.Pi / 180
	rad2deg = 180 / math.Pi
)

// Clamp returns v bounded to [lo, hi]. If lo > hi the result is lo.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	return max(lo, min(hi, v))
}

// EuclideanModulo returns n mod m in [0, m) regardless of the sign of n.
func EuclideanModulo(n, m float64) float64 {
	return math.Mod(math.Mod(n, m)+m, m)
}

// MapLinear maps x from the range [a1, a2] to [b1, b2].
func MapLinear(x, a1, a2, b1, b2 float64) float64 {
	return b1 + (x-a1)*(b2-b1)/(a2-a1)
}

// InverseLerp returns the fraction of v between a and b, or 0 when a == b.
func InverseLerp(a, b, v float64) float64 {
	if a != b {
		return (v - a) / (b - a)
	}
	return 0
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return (1-t)*a + t*b
}

// Damp is a frame-rate independent Lerp toward b.
// lambda controls how fast a approaches b; dt is the elapsed time.
func Damp(a, b, lambda, dt float64) float64 {
	return Lerp(a, b, 1-math.Exp(-lambda*dt))
}

// PingPong returns a triangular wave in [0, length] with period 2*length.
func PingPong(x, length float64) float64 {
	return length - math.Abs(EuclideanModulo(x, length*2)-length)
}

// Smoothstep returns 0 at or below lo, 1 at or above hi, and a cubic
// Hermite curve in between.
func Smoothstep(x, lo, hi float64) float64 {
	if x <= lo {
		return 0
	}
	if x >= hi {
		return 1
	}
	x = (x - lo) / (hi - lo)
	return x * x * (3 - 2*x)
}

// Smootherstep is Ken Perlin's quintic variant of Smoothstep.
func Smootherstep(x, lo, hi float64) float64 {
	if x <= lo {
		return 0
	}
	if x >= hi {
		return 1
	}
	x = (x - lo) / (hi - lo)
	return x * x * x * (x*(x*6-15) + 10)
}

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * deg2rad
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * rad2deg
}

// IsPowerOfTwo reports whether v is a positive power of two.
func IsPowerOfTwo[T constraints.Integer](v T) bool {
	return v > 0 && v&(v-1) == 0
}

// CeilPowerOfTwo returns the smallest power of two >= v.
func CeilPowerOfTwo(v float64) float64 {
	return math.Pow(2, math.Ceil(math.Log2(v)))
}

// FloorPowerOfTwo returns the largest power of two <= v.
func FloorPowerOfTwo(v float64) float64 {
	return math.Pow(2, math.Floor(math.Log2(v)))
}
