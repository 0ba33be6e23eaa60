// Package math3d provides the vector types and the matrix, quaternion and
// coordinate collaborators used by the engine.
//
// Vectors are mutable. Every mutating method marks the vector dirty and then
// calls its OnChange observer, if one is set, exactly once before returning.
// Queries never touch either. Clearing the dirty flag is left to whoever
// consumes the notifications.
package math3d

import (
	"errors"
	"fmt"
	"iter"
	"sync/atomic"
)

// ErrIndexOutOfRange is returned by component accessors for an index
// outside [0, dimension).
var ErrIndexOutOfRange = errors.New("component index out of range")

// Vector is implemented by *Vector2, *Vector3 and *Vector4 only.
type Vector interface {
	// Dim returns the number of components.
	Dim() int
	// Component returns the component at index.
	Component(index int) (float64, error)
	// All iterates the components in declaration order.
	All() iter.Seq[float64]
	// CloneVector returns a fresh vector of the same concrete type.
	CloneVector() Vector
	// Dirty reports whether the vector was mutated since construction or
	// the last ClearDirty.
	Dirty() bool
	ClearDirty()
	// ID is a process-unique identifier, used for diagnostics only.
	ID() uint64
	// Origin names the concrete type, for example "Vector3".
	Origin() string

	sealed()
}

// AttributeXY reads per-vertex components from a buffer attribute.
type AttributeXY interface {
	GetX(index int) float64
	GetY(index int) float64
}

// AttributeXYZ adds the third component.
type AttributeXYZ interface {
	AttributeXY
	GetZ(index int) float64
}

// AttributeXYZW adds the fourth component.
type AttributeXYZW interface {
	AttributeXYZ
	GetW(index int) float64
}

// Camera is the view/projection state Vector3.Project and Unproject read.
type Camera interface {
	MatrixWorld() Mat4
	MatrixWorldInverse() Mat4
	ProjectionMatrix() Mat4
	ProjectionMatrixInverse() Mat4
}

var lastID atomic.Uint64

// meta holds the bookkeeping every vector carries besides its components.
type meta struct {
	id     uint64
	origin string
	dirty  bool
}

func newMeta(origin string) meta {
	return meta{id: lastID.Add(1), origin: origin}
}

// Dirty reports whether the vector has been mutated.
func (m *meta) Dirty() bool { return m.dirty }

// ClearDirty resets the dirty flag.
func (m *meta) ClearDirty() { m.dirty = false }

// ID returns the process-unique identifier.
func (m *meta) ID() uint64 { return m.id }

// Origin returns the concrete type name.
func (m *meta) Origin() string { return m.origin }

func (*meta) sealed() {}

// commit is the single step every mutator ends with.
func commit[T any](m *meta, observer func(T), v T) T {
	m.dirty = true
	if observer != nil {
		observer(v)
	}
	return v
}

func indexError(origin string, index int) error {
	return fmt.Errorf("%w: %s has no component %d", ErrIndexOutOfRange, origin, index)
}

// growTo returns dst extended with zeros so that it holds at least n elements.
func growTo(dst []float64, n int) []float64 {
	if len(dst) >= n {
		return dst
	}
	return append(dst, make([]float64, n-len(dst))...)
}
