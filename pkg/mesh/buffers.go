package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// UpdateFrequency hints to the rendering backend how often a section's
// buffers are expected to change, informing its residency strategy.
type UpdateFrequency int32

const (
	UpdateFrequencyAverage UpdateFrequency = iota
	UpdateFrequencyFrequent
	UpdateFrequencyInfrequent
)

// String returns a human-readable update frequency name.
func (f UpdateFrequency) String() string {
	switch f {
	case UpdateFrequencyAverage:
		return "Average"
	case UpdateFrequencyFrequent:
		return "Frequent"
	case UpdateFrequencyInfrequent:
		return "Infrequent"
	default:
		return fmt.Sprintf("Unknown(%d)", int32(f))
	}
}

// SectionBase is the layout-independent part of a mesh section: the
// position stream, index lists, bounding box, and render flags. It is
// embedded in every concrete section type and reachable through
// Section.Base, so generic consumers can operate on any layout.
type SectionBase struct {
	positions    []mgl32.Vec3
	indices      []uint32
	tessellation []uint32
	bounds       Box

	CollisionEnabled bool
	Visible          bool
	CastsShadow      bool

	// UseAdjacencyIndices selects the tessellation index list for
	// render hand-off whenever that list is non-empty.
	UseAdjacencyIndices bool

	UpdateFrequency UpdateFrequency

	dualBuffer bool
}

// IsDualBuffer reports whether positions live in the separate position
// stream instead of the vertex records. The mode is fixed at
// construction.
func (b *SectionBase) IsDualBuffer() bool {
	return b.dualBuffer
}

// Bounds returns the current bounding box.
func (b *SectionBase) Bounds() Box {
	return b.bounds
}

// SetBounds overwrites the bounding box with a caller-supplied value,
// trusted verbatim.
func (b *SectionBase) SetBounds(box Box) {
	b.bounds = box
}

// Positions returns the live position stream. The slice aliases
// section storage and is valid until the next mutating call.
func (b *SectionBase) Positions() []mgl32.Vec3 {
	return b.positions
}

// Indices returns the live triangle index list. Same aliasing rule as
// Positions.
func (b *SectionBase) Indices() []uint32 {
	return b.indices
}

// TessellationIndices returns the live adjacency index list. Same
// aliasing rule as Positions.
func (b *SectionBase) TessellationIndices() []uint32 {
	return b.tessellation
}

// UpdatePositionBuffer replaces the position stream of a dual-buffer
// section. With a nil explicit box the bounds are recomputed by
// scanning newPositions; a non-nil box is adopted unchecked, making
// the caller responsible for its tightness. The return value reports
// whether the stored bounds changed.
//
// move hands the caller's slice over instead of copying it; the caller
// must not touch the slice afterwards.
//
// On single-buffer sections positions are embedded in the vertex
// records and this call is a no-op returning false; check IsDualBuffer
// before calling.
func (b *SectionBase) UpdatePositionBuffer(newPositions []mgl32.Vec3, explicit *Box, move bool) bool {
	if !b.dualBuffer {
		return false
	}
	return b.updatePositions(newPositions, explicit, move)
}

// UpdateIndexBuffer replaces the triangle index list. No bounds
// interaction.
func (b *SectionBase) UpdateIndexBuffer(newIndices []uint32, move bool) {
	if move {
		b.indices = newIndices
		return
	}
	b.indices = append(b.indices[:0], newIndices...)
}

// UpdateTessellationIndexBuffer replaces the adjacency index list. No
// bounds interaction.
func (b *SectionBase) UpdateTessellationIndexBuffer(newIndices []uint32, move bool) {
	if move {
		b.tessellation = newIndices
		return
	}
	b.tessellation = append(b.tessellation[:0], newIndices...)
}

// updatePositions is the raw storage primitive behind
// UpdatePositionBuffer, without the buffer-mode guard.
func (b *SectionBase) updatePositions(newPositions []mgl32.Vec3, explicit *Box, move bool) bool {
	if move {
		b.positions = newPositions
	} else {
		b.positions = append(b.positions[:0], newPositions...)
	}

	if explicit != nil {
		return b.storeBounds(*explicit)
	}
	return b.storeBounds(BoxFromPoints(b.positions))
}

// storeBounds replaces the bounding box and reports whether it
// differed from the previous value.
func (b *SectionBase) storeBounds(newBounds Box) bool {
	if b.bounds.Equal(newBounds) {
		return false
	}
	b.bounds = newBounds
	return true
}
