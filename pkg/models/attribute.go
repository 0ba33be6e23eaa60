package models

import (
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/taigrr/vek/pkg/math3d"
	"github.com/taigrr/vek/pkg/mathutil"
)

var (
	// ErrUnsupportedAccessor is returned for matrix accessor types.
	ErrUnsupportedAccessor = errors.New("unsupported accessor")
	// ErrOutOfBounds is returned when an accessor reaches past its buffer.
	ErrOutOfBounds = errors.New("accessor out of buffer bounds")
)

var (
	_ math3d.AttributeXY   = (*Attribute)(nil)
	_ math3d.AttributeXYZ  = (*Attribute)(nil)
	_ math3d.AttributeXYZW = (*Attribute)(nil)
)

// Attribute holds the elements of one glTF accessor as float64 components,
// so vectors can load from it with FromBufferAttribute.
//
// Normalized integer accessors are dequantized into [0, 1] or [-1, 1].
// Components the accessor does not have, and elements past Count, read as 0.
type Attribute struct {
	values     []float64
	count      int
	size       int // components per element
	normalized bool
}

// NewAttribute reads accessor index of doc. Interleaved, sparse and
// view-less accessors are all supported.
func NewAttribute(doc *gltf.Document, index int) (*Attribute, error) {
	accessor, err := accessorAt(doc, index)
	if err != nil {
		return nil, err
	}
	size, ok := elementSize(accessor.Type)
	if !ok {
		return nil, fmt.Errorf("accessor %d: %w type %v", index, ErrUnsupportedAccessor, accessor.Type)
	}

	data, err := modeler.ReadAccessor(doc, accessor, nil)
	if err != nil {
		return nil, readError(index, err)
	}

	a := &Attribute{
		values:     flatten(data, size),
		count:      accessor.Count,
		size:       size,
		normalized: accessor.Normalized && accessor.ComponentType != gltf.ComponentFloat,
	}
	if a.normalized {
		enc, ok := encodingOf(accessor.ComponentType)
		if !ok {
			return nil, fmt.Errorf("accessor %d: %w component %v", index, ErrUnsupportedAccessor, accessor.ComponentType)
		}
		for i, v := range a.values {
			// The encoding came from encodingOf, so it is always supported.
			a.values[i], _ = mathutil.Denormalize(v, enc)
		}
	}
	return a, nil
}

// ReadIndices reads a scalar integer accessor, such as primitive indices.
func ReadIndices(doc *gltf.Document, index int) ([]int, error) {
	accessor, err := accessorAt(doc, index)
	if err != nil {
		return nil, err
	}
	raw, err := modeler.ReadIndices(doc, accessor, nil)
	if err != nil {
		return nil, readError(index, err)
	}
	out := make([]int, len(raw))
	for i, v := range raw {
		out[i] = int(v)
	}
	return out, nil
}

func accessorAt(doc *gltf.Document, index int) (*gltf.Accessor, error) {
	if index < 0 || index >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d: %w", index, math3d.ErrIndexOutOfRange)
	}
	return doc.Accessors[index], nil
}

func readError(index int, err error) error {
	if errors.Is(err, io.ErrShortBuffer) {
		return fmt.Errorf("accessor %d: %w: %w", index, ErrOutOfBounds, err)
	}
	return fmt.Errorf("accessor %d: %w", index, err)
}

func elementSize(t gltf.AccessorType) (int, bool) {
	switch t {
	case gltf.AccessorScalar:
		return 1, true
	case gltf.AccessorVec2:
		return 2, true
	case gltf.AccessorVec3:
		return 3, true
	case gltf.AccessorVec4:
		return 4, true
	}
	return 0, false
}

func encodingOf(c gltf.ComponentType) (mathutil.Encoding, bool) {
	switch c {
	case gltf.ComponentByte:
		return mathutil.EncodingInt8, true
	case gltf.ComponentUbyte:
		return mathutil.EncodingUint8, true
	case gltf.ComponentShort:
		return mathutil.EncodingInt16, true
	case gltf.ComponentUshort:
		return mathutil.EncodingUint16, true
	case gltf.ComponentUint:
		return mathutil.EncodingUint32, true
	}
	return 0, false
}

// flatten copies the typed slice ReadAccessor returns ([]T or [][N]T) into
// count*size float64 components.
func flatten(data any, size int) []float64 {
	s := reflect.ValueOf(data)
	out := make([]float64, 0, s.Len()*size)
	for i := range s.Len() {
		e := s.Index(i)
		if e.Kind() != reflect.Array {
			out = append(out, number(e))
			continue
		}
		for c := range e.Len() {
			out = append(out, number(e.Index(c)))
		}
	}
	return out
}

func number(v reflect.Value) float64 {
	switch {
	case v.CanFloat():
		return v.Float()
	case v.CanInt():
		return float64(v.Int())
	}
	return float64(v.Uint())
}

// Count returns the number of elements.
func (a *Attribute) Count() int { return a.count }

// ItemSize returns the number of components per element.
func (a *Attribute) ItemSize() int { return a.size }

// Normalized reports whether integer components are dequantized.
func (a *Attribute) Normalized() bool { return a.normalized }

// Get returns component c of element i.
func (a *Attribute) Get(i, c int) float64 {
	if i < 0 || i >= a.count || c < 0 || c >= a.size {
		return 0
	}
	return a.values[i*a.size+c]
}

func (a *Attribute) GetX(i int) float64 { return a.Get(i, 0) }
func (a *Attribute) GetY(i int) float64 { return a.Get(i, 1) }
func (a *Attribute) GetZ(i int) float64 { return a.Get(i, 2) }
func (a *Attribute) GetW(i int) float64 { return a.Get(i, 3) }
