// Package models loads glTF geometry into observed vectors.
package models

import (
	"github.com/taigrr/vek/pkg/math3d"
	"github.com/taigrr/vek/pkg/render"
)

// Mesh holds vertex positions, optional normals and triangle faces.
//
// The mesh observes every position it owns: mutating one through its
// methods marks the bounds stale, and Bounds recomputes them on demand.
// Positions must be added with AddVertex, not appended directly.
type Mesh struct {
	Name      string
	Positions []*math3d.Vector3
	Normals   []*math3d.Vector3
	Faces     [][3]int // Indices into Positions

	bounds render.AABB
	stale  bool
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:   name,
		bounds: render.EmptyAABB(),
	}
}

func (m *Mesh) markStale(*math3d.Vector3) { m.stale = true }

// AddVertex appends p as a position and starts observing it. It returns
// the vertex index.
func (m *Mesh) AddVertex(p *math3d.Vector3) int {
	p.OnChange = m.markStale
	m.Positions = append(m.Positions, p)
	m.stale = true
	return len(m.Positions) - 1
}

// Bounds returns the axis-aligned box around all positions, recomputing it
// if any position changed since the last call. The returned box is shared;
// do not modify it.
func (m *Mesh) Bounds() render.AABB {
	if !m.stale {
		return m.bounds
	}
	m.bounds = render.EmptyAABB()
	for _, p := range m.Positions {
		m.bounds.ExpandByPoint(p)
		p.ClearDirty()
	}
	m.stale = false
	return m.bounds
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() *math3d.Vector3 {
	return m.Bounds().Center()
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() *math3d.Vector3 {
	return m.Bounds().Size()
}

// Radius returns the distance from the center to the farthest position.
func (m *Mesh) Radius() float64 {
	c := m.Center()
	r := 0.0
	for _, p := range m.Positions {
		r = max(r, c.DistanceTo(p))
	}
	return r
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// CalculateNormals computes averaged per-vertex normals from the faces.
// Vertices not used by any face get a zero normal.
func (m *Mesh) CalculateNormals() {
	m.Normals = make([]*math3d.Vector3, len(m.Positions))
	for i := range m.Normals {
		m.Normals[i] = math3d.Zero3()
	}

	edge1, edge2 := math3d.NewVector3(), math3d.NewVector3()
	for _, f := range m.Faces {
		v0 := m.Positions[f[0]]
		edge1.SubVectors(m.Positions[f[1]], v0)
		edge2.SubVectors(m.Positions[f[2]], v0)
		// Unnormalized, so larger faces weigh more.
		n := edge1.Clone().Cross(edge2)
		for _, idx := range f {
			m.Normals[idx].Add(n)
		}
	}

	for _, n := range m.Normals {
		n.Normalize()
	}
}

// Transform applies mat to every position, and its normal matrix to every
// normal.
func (m *Mesh) Transform(mat math3d.Mat4) {
	for _, p := range m.Positions {
		p.ApplyMatrix4(mat)
	}
	if len(m.Normals) == 0 {
		return
	}
	nm := math3d.NormalMatrix(mat)
	for _, n := range m.Normals {
		n.ApplyNormalMatrix(nm)
	}
}

// Recenter translates the mesh so its bounding box is centered on the
// origin.
func (m *Mesh) Recenter() {
	c := m.Center()
	for _, p := range m.Positions {
		p.Sub(c)
	}
}

// Clone creates a deep copy of the mesh. The copy observes its own
// positions.
func (m *Mesh) Clone() *Mesh {
	clone := NewMesh(m.Name)
	for _, p := range m.Positions {
		clone.AddVertex(p.Clone())
	}
	if m.Normals != nil {
		clone.Normals = make([]*math3d.Vector3, len(m.Normals))
		for i, n := range m.Normals {
			clone.Normals[i] = n.Clone()
		}
	}
	clone.Faces = append([][3]int(nil), m.Faces...)
	return clone
}
