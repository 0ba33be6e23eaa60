package mathutil

import (
	"fmt"
	"math"
)

// XY is a plain two-component value used by the diff helpers.
type XY struct {
	X, Y float64
}

// XYZ is a plain three-component value used by the diff helpers.
type XYZ struct {
	X, Y, Z float64
}

// Vec2Diff holds the signed per-axis deltas a-b and their Euclidean length.
type Vec2Diff struct {
	DX, DY float64
	Length float64
}

// Vec3Diff holds the signed per-axis deltas a-b and their Euclidean length.
type Vec3Diff struct {
	DX, DY, DZ float64
	Length     float64
}

// SliceDiff holds the element-wise absolute differences and their sum.
type SliceDiff[T Number] struct {
	Deltas []T
	Sum    T
}

// DiffFloat returns |a - b|.
func DiffFloat(a, b float64) float64 {
	return math.Abs(a - b)
}

// DiffVec2 compares two 2D values.
func DiffVec2(a, b XY) Vec2Diff {
	dx, dy := a.X-b.X, a.Y-b.Y
	return Vec2Diff{DX: dx, DY: dy, Length: math.Hypot(dx, dy)}
}

// DiffVec3 compares two 3D values.
func DiffVec3(a, b XYZ) Vec3Diff {
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return Vec3Diff{DX: dx, DY: dy, DZ: dz, Length: math.Sqrt(dx*dx + dy*dy + dz*dz)}
}

// DiffTypedArray returns the absolute difference of each pair of elements.
// Sequences of unequal length are rejected rather than truncated.
func DiffTypedArray[T Number](a, b []T) (SliceDiff[T], error) {
	if len(a) != len(b) {
		return SliceDiff[T]{}, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(a), len(b))
	}
	out := SliceDiff[T]{Deltas: make([]T, len(a))}
	for i := range a {
		d := a[i] - b[i]
		if a[i] < b[i] {
			d = b[i] - a[i]
		}
		out.Deltas[i] = d
		out.Sum += d
	}
	return out, nil
}
