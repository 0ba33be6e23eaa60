package models

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/qmuntal/gltf"

	"github.com/taigrr/vek/internal/logging"
	"github.com/taigrr/vek/pkg/math3d"
)

// GLTFLoader loads GLTF/GLB files into Mesh format.
type GLTFLoader struct {
	// CalculateNormals fills Mesh.Normals from the faces when the file has
	// no NORMAL attribute.
	CalculateNormals bool

	logger *logging.Logger
}

// Option configures a GLTFLoader.
type Option func(*GLTFLoader)

// WithLogger sets the logger for accessor and load records.
func WithLogger(l *logging.Logger) Option {
	return func(g *GLTFLoader) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithNormals sets CalculateNormals.
func WithNormals(on bool) Option {
	return func(g *GLTFLoader) { g.CalculateNormals = on }
}

// NewGLTFLoader creates a new GLTF loader with default options.
func NewGLTFLoader(opts ...Option) *GLTFLoader {
	l := &GLTFLoader{
		CalculateNormals: true,
		logger:           logging.Noop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadGLB loads a binary GLTF (.glb) file with the default loader.
func LoadGLB(ctx context.Context, path string) (*Mesh, error) {
	return NewGLTFLoader().Load(ctx, path)
}

// Load loads a GLTF or GLB file and returns a Mesh.
func (l *GLTFLoader) Load(ctx context.Context, path string) (*Mesh, error) {
	log := l.logger.WithPath(path)

	doc, err := gltf.Open(path)
	if err != nil {
		err = fmt.Errorf("open gltf: %w", err)
		log.LogLoad(ctx, 0, 0, err)
		return nil, err
	}

	scoped := *l
	scoped.logger = log
	mesh, err := scoped.LoadDocument(ctx, doc, filepath.Base(path))
	if err != nil {
		log.LogLoad(ctx, 0, 0, err)
		return nil, err
	}
	log.LogLoad(ctx, len(doc.Meshes), mesh.VertexCount(), nil)
	return mesh, nil
}

// LoadDocument merges every mesh of an already decoded document into one
// Mesh.
func (l *GLTFLoader) LoadDocument(ctx context.Context, doc *gltf.Document, name string) (*Mesh, error) {
	mesh := NewMesh(name)
	hasNormals := true

	for _, m := range doc.Meshes {
		for _, prim := range m.Primitives {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			n, err := l.processPrimitive(ctx, doc, prim, mesh)
			if err != nil {
				return nil, fmt.Errorf("process mesh %q: %w", m.Name, err)
			}
			hasNormals = hasNormals && n
		}
	}

	if !hasNormals || len(mesh.Normals) != len(mesh.Positions) {
		mesh.Normals = nil
		if l.CalculateNormals {
			mesh.CalculateNormals()
		}
	}
	return mesh, nil
}

// processPrimitive appends one primitive's vertices and faces. It reports
// whether the primitive carried normals.
func (l *GLTFLoader) processPrimitive(ctx context.Context, doc *gltf.Document, prim *gltf.Primitive, mesh *Mesh) (bool, error) {
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return true, nil
	}

	positions, err := l.attribute(ctx, doc, posIdx)
	if err != nil {
		return false, fmt.Errorf("read positions: %w", err)
	}

	base := mesh.VertexCount()
	for i := range positions.Count() {
		mesh.AddVertex(math3d.NewVector3().FromBufferAttribute(positions, i))
	}

	hasNormals := false
	if normIdx, ok := prim.Attributes[gltf.NORMAL]; ok {
		normals, err := l.attribute(ctx, doc, normIdx)
		if err != nil {
			return false, fmt.Errorf("read normals: %w", err)
		}
		for i := range normals.Count() {
			mesh.Normals = append(mesh.Normals, math3d.NewVector3().FromBufferAttribute(normals, i))
		}
		hasNormals = normals.Count() == positions.Count()
	}

	if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
		// Points and lines contribute vertices only.
		return hasNormals, nil
	}

	var indices []int
	if prim.Indices != nil {
		indices, err = l.indices(ctx, doc, *prim.Indices)
		if err != nil {
			return false, fmt.Errorf("read indices: %w", err)
		}
	} else {
		indices = make([]int, positions.Count())
		for i := range indices {
			indices[i] = i
		}
	}

	for i := 0; i+2 < len(indices); i += 3 {
		f := [3]int{base + indices[i], base + indices[i+1], base + indices[i+2]}
		for _, v := range f {
			if v >= mesh.VertexCount() {
				return false, fmt.Errorf("face %d: vertex %d: %w", i/3, v, math3d.ErrIndexOutOfRange)
			}
		}
		mesh.Faces = append(mesh.Faces, f)
	}
	return hasNormals, nil
}

func (l *GLTFLoader) attribute(ctx context.Context, doc *gltf.Document, index int) (*Attribute, error) {
	attr, err := NewAttribute(doc, index)
	count := 0
	if attr != nil {
		count = attr.Count()
	}
	l.logger.LogAccessor(ctx, index, count, err)
	return attr, err
}

func (l *GLTFLoader) indices(ctx context.Context, doc *gltf.Document, index int) ([]int, error) {
	indices, err := ReadIndices(doc, index)
	l.logger.LogAccessor(ctx, index, len(indices), err)
	return indices, err
}
