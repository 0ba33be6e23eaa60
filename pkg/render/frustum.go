package render

import (
	"math"

	"github.com/taigrr/vek/pkg/math3d"
)

// Plane represents a plane in 3D space using the equation: Ax + By + Cz + D = 0
// where (A, B, C) is the normal and D is the distance from origin.
type Plane struct {
	Normal *math3d.Vector3
	D      float64
}

// Normalize scales the plane equation so the normal has unit length.
func (p *Plane) Normalize() {
	l := p.Normal.Length()
	if l == 0 {
		return
	}
	p.Normal.DivideScalar(l)
	p.D /= l
}

// DistanceToPoint returns the signed distance from the plane to a point.
// Positive = in front (same side as normal), negative = behind.
func (p Plane) DistanceToPoint(point *math3d.Vector3) float64 {
	return p.Normal.Dot(point) + p.D
}

// Frustum represents the 6 planes of a view frustum.
// Planes are ordered: Left, Right, Bottom, Top, Near, Far.
// Each plane's normal points inward (toward the center of the frustum).
type Frustum struct {
	Planes [6]Plane
}

// FrustumPlane indices for clarity.
const (
	FrustumLeft = iota
	FrustumRight
	FrustumBottom
	FrustumTop
	FrustumNear
	FrustumFar
)

// NewFrustumFromMatrix extracts frustum planes from a view-projection matrix
// (Gribb/Hartmann). Plane i combines row 3 with plus or minus row i/2.
func NewFrustumFromMatrix(m math3d.Mat4) Frustum {
	var f Frustum
	for i := range f.Planes {
		row := i / 2
		sign := 1.0
		if i%2 == 1 {
			sign = -1
		}
		// For column-major m, row r element c is m[r + c*4].
		f.Planes[i] = Plane{
			Normal: math3d.V3(
				m[3]+sign*m[row],
				m[7]+sign*m[row+4],
				m[11]+sign*m[row+8],
			),
			D: m[15] + sign*m[row+12],
		}
		f.Planes[i].Normalize()
	}
	return f
}

// Frustum returns the current view frustum of the camera.
func (c *Camera) Frustum() Frustum {
	return NewFrustumFromMatrix(c.ViewProjectionMatrix())
}

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min *math3d.Vector3
	Max *math3d.Vector3
}

// NewAABB creates an AABB from min and max points. The box keeps its own
// copies.
func NewAABB(lo, hi *math3d.Vector3) AABB {
	return AABB{Min: lo.Clone(), Max: hi.Clone()}
}

// EmptyAABB returns a box that contains nothing; expanding it by a point
// yields that point.
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{Min: math3d.V3(inf, inf, inf), Max: math3d.V3(-inf, -inf, -inf)}
}

// IsEmpty reports whether the box contains no point.
func (b AABB) IsEmpty() bool {
	return b.Max.X() < b.Min.X() || b.Max.Y() < b.Min.Y() || b.Max.Z() < b.Min.Z()
}

// ExpandByPoint grows the box to contain p.
func (b AABB) ExpandByPoint(p *math3d.Vector3) {
	b.Min.Min(p)
	b.Max.Max(p)
}

// Center returns the center of the AABB.
func (b AABB) Center() *math3d.Vector3 {
	return math3d.NewVector3().AddVectors(b.Min, b.Max).MultiplyScalar(0.5)
}

// Size returns the dimensions of the AABB.
func (b AABB) Size() *math3d.Vector3 {
	return math3d.NewVector3().SubVectors(b.Max, b.Min)
}

// Corners returns the 8 corners of the box.
func (b AABB) Corners() [8]*math3d.Vector3 {
	var out [8]*math3d.Vector3
	for i := range out {
		out[i] = math3d.V3(
			pick(i&1 != 0, b.Max.X(), b.Min.X()),
			pick(i&2 != 0, b.Max.Y(), b.Min.Y()),
			pick(i&4 != 0, b.Max.Z(), b.Min.Z()),
		)
	}
	return out
}

// Transform returns the AABB bounding all 8 corners after transformation.
func (b AABB) Transform(m math3d.Mat4) AABB {
	out := EmptyAABB()
	for _, c := range b.Corners() {
		out.ExpandByPoint(c.ApplyMatrix4(m))
	}
	return out
}

// ContainsPoint returns true if the point is inside the AABB.
func (b AABB) ContainsPoint(p *math3d.Vector3) bool {
	return p.X() >= b.Min.X() && p.X() <= b.Max.X() &&
		p.Y() >= b.Min.Y() && p.Y() <= b.Max.Y() &&
		p.Z() >= b.Min.Z() && p.Z() <= b.Max.Z()
}

// IntersectAABB tests if any part of the box is inside the frustum, using
// the corner furthest along each plane normal.
func (f Frustum) IntersectAABB(box AABB) bool {
	for _, plane := range f.Planes {
		n := plane.Normal
		pVertex := math3d.V3(
			pick(n.X() >= 0, box.Max.X(), box.Min.X()),
			pick(n.Y() >= 0, box.Max.Y(), box.Min.Y()),
			pick(n.Z() >= 0, box.Max.Z(), box.Min.Z()),
		)
		if plane.DistanceToPoint(pVertex) < 0 {
			return false
		}
	}
	return true
}

// ContainsPoint tests if a point is inside the frustum.
func (f Frustum) ContainsPoint(p *math3d.Vector3) bool {
	for _, plane := range f.Planes {
		if plane.DistanceToPoint(p) < 0 {
			return false
		}
	}
	return true
}

// IntersectsSphere tests if a sphere intersects the frustum.
func (f Frustum) IntersectsSphere(center *math3d.Vector3, radius float64) bool {
	for _, plane := range f.Planes {
		if plane.DistanceToPoint(center) < -radius {
			return false
		}
	}
	return true
}

func pick(cond bool, a, b float64) float64 {
	if cond {
		return a
	}
	return b
}
