// Package mesh implements runtime-mutable triangle mesh sections: the
// CPU-resident, authoritative geometry a rendering component mutates
// freely and hands off to its rendering backend as immutable snapshot
// payloads.
//
// A section stores vertex records of one layout, fixed at
// construction. Layouts with embedded positions make single-buffer
// sections; layouts without them make dual-buffer sections, which keep
// positions in a separate stream so position-only updates never touch
// the full attribute records. The bounding box always spans the
// authoritative position source unless a caller supplies its own box.
//
// Two execution contexts are involved: the mutator (owner of the
// section, serializing its own calls) and the rendering consumer.
// Nothing here locks; the sole synchronization rule is that everything
// crossing to the consumer is an owned copy built by NewCreationData,
// NewUpdateData or NewPositionUpdateData. After hand-off the mutator
// may mutate or drop the section without affecting in-flight payloads.
package mesh

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

// Section construction errors.
var (
	ErrLayoutBufferMismatch = errors.New("vertex layout incompatible with buffer mode: embedded positions need single-buffer, position-less layouts need dual-buffer")
)

// Section is the capability interface over sections of any vertex
// layout. The interface is satisfied only by TypedSection; consumers
// that need the concrete record type keep the *TypedSection they
// constructed.
type Section interface {
	// Base returns the layout-independent storage and flags.
	Base() *SectionBase
	// Traits reports which attributes the vertex layout carries.
	Traits() Traits

	IsDualBuffer() bool
	Bounds() Box
	UpdatePositionBuffer(newPositions []mgl32.Vec3, explicit *Box, move bool) bool
	UpdateIndexBuffer(newIndices []uint32, move bool)
	UpdateTessellationIndexBuffer(newIndices []uint32, move bool)

	// RecalculateBounds rescans the authoritative position source and
	// overwrites the bounding box unconditionally.
	RecalculateBounds()
	// VertexPositions returns every vertex position in index order.
	VertexPositions() []mgl32.Vec3
	// VertexCount returns the number of attribute records.
	VertexCount() int
	// GenerateNormalTangent recomputes per-vertex normals and tangents
	// from the triangle list.
	GenerateNormalTangent()
	// GenerateTessellationIndices rebuilds the adjacency index list.
	GenerateTessellationIndices()
	// MeshViews returns read-only, layout-erased views over the live
	// buffers.
	MeshViews() (VertexView, IndexView)

	vertexCopy() VertexView
}

// TypedSection is a mesh section over one concrete vertex record type.
// Its accessor table is bound once at construction; all
// layout-dependent paths go through the resolved functions.
type TypedSection[V any] struct {
	SectionBase

	vertices []V
	api      VertexAPI[V]
}

// NewSection creates an empty section from a vertex accessor table.
// dualBuffer selects the separate position stream and must agree with
// the table's traits: layouts with embedded positions are
// single-buffer, position-less layouts require the dual stream.
//
// New sections are visible, shadow-casting, collision-disabled, and
// report UpdateFrequencyAverage.
func NewSection[V any](api VertexAPI[V], dualBuffer bool) (*TypedSection[V], error) {
	if api.Traits.HasPosition == dualBuffer {
		return nil, ErrLayoutBufferMismatch
	}

	s := &TypedSection[V]{api: api}
	s.dualBuffer = dualBuffer
	s.bounds = EmptyBox()
	s.Visible = true
	s.CastsShadow = true
	return s, nil
}

// NewSimpleSection creates a single-buffer section of the default
// full-attribute layout.
func NewSimpleSection() *TypedSection[VertexSimple] {
	s, _ := NewSection(SimpleAPI, false)
	return s
}

// NewDualUVSection creates a single-buffer section with two UV
// channels.
func NewDualUVSection() *TypedSection[VertexDualUV] {
	s, _ := NewSection(DualUVAPI, false)
	return s
}

// NewNoPositionSection creates a dual-buffer section whose records
// carry attributes only.
func NewNoPositionSection() *TypedSection[VertexNoPosition] {
	s, _ := NewSection(NoPositionAPI, true)
	return s
}

// NewNoPositionDualUVSection creates a dual-buffer section with two UV
// channels.
func NewNoPositionDualUVSection() *TypedSection[VertexNoPositionDualUV] {
	s, _ := NewSection(NoPositionDualUVAPI, true)
	return s
}

// Base returns the layout-independent storage and flags.
func (s *TypedSection[V]) Base() *SectionBase {
	return &s.SectionBase
}

// Traits reports which attributes the section's vertex layout carries.
func (s *TypedSection[V]) Traits() Traits {
	return s.api.Traits
}

// Vertices returns the live attribute records. The slice aliases
// section storage and is valid until the next mutating call.
func (s *TypedSection[V]) Vertices() []V {
	return s.vertices
}

// VertexCount returns the number of attribute records.
func (s *TypedSection[V]) VertexCount() int {
	return len(s.vertices)
}

// UpdateVertexBuffer replaces the attribute records. On single-buffer
// sections the embedded positions drive the bounding box: a nil
// explicit box triggers a rescan, a non-nil one is adopted unchecked,
// and the return value reports whether the stored bounds changed. On
// dual-buffer sections bounds belong to the position stream, so the
// call never touches them and always returns false.
//
// move hands the caller's slice over instead of copying it; the caller
// must not touch the slice afterwards.
func (s *TypedSection[V]) UpdateVertexBuffer(newVertices []V, explicit *Box, move bool) bool {
	if move {
		s.vertices = newVertices
	} else {
		s.vertices = append(s.vertices[:0], newVertices...)
	}

	if s.dualBuffer {
		return false
	}

	if explicit != nil {
		return s.storeBounds(*explicit)
	}

	newBounds := EmptyBox()
	pos := s.api.Position
	for i := range s.vertices {
		newBounds.ExpandByPoint(pos(&s.vertices[i]))
	}
	return s.storeBounds(newBounds)
}

// RecalculateBounds rescans the authoritative position source and
// overwrites the bounding box unconditionally. Use it after mutations
// that bypass the tracked update calls, e.g. bulk deserialization.
func (s *TypedSection[V]) RecalculateBounds() {
	if s.dualBuffer {
		s.bounds = BoxFromPoints(s.positions)
		return
	}

	box := EmptyBox()
	pos := s.api.Position
	for i := range s.vertices {
		box.ExpandByPoint(pos(&s.vertices[i]))
	}
	s.bounds = box
}

// VertexPositions returns every vertex position in index order. On
// dual-buffer sections this is the live position stream itself, with
// no per-record extraction; on single-buffer sections it is a fresh
// slice extracted from the records. Treat the result as read-only and
// do not hold it across mutating calls.
func (s *TypedSection[V]) VertexPositions() []mgl32.Vec3 {
	if s.dualBuffer {
		return s.positions
	}

	pos := s.api.Position
	out := make([]mgl32.Vec3, len(s.vertices))
	for i := range s.vertices {
		out[i] = pos(&s.vertices[i])
	}
	return out
}

// MeshViews returns read-only, layout-erased views over the live
// buffers for generic consumers such as collision extraction. The
// views alias section storage and must not outlive the next mutating
// call.
func (s *TypedSection[V]) MeshViews() (VertexView, IndexView) {
	return typedView[V]{verts: s.vertices, api: s.api}, IndexView{indices: s.indices}
}

// vertexCopy returns an owning view over a copy of the attribute
// records, for snapshot payloads.
func (s *TypedSection[V]) vertexCopy() VertexView {
	return typedView[V]{verts: append([]V(nil), s.vertices...), api: s.api}
}
