package mesh

import "github.com/go-gl/mathgl/mgl32"

// CreationData is the full payload a rendering backend needs to create
// GPU-side state for a section. Every field is an owned copy with no
// reference back into the section; the mutator may keep mutating or
// tear the section down while this payload is in flight.
type CreationData struct {
	// Positions is the position stream copy. Populated for dual-buffer
	// sections only; nil otherwise.
	Positions []mgl32.Vec3
	// Vertices owns a copy of the attribute records.
	Vertices VertexView
	// Indices is the selected index list copy; AdjacencyIndices tells
	// whether it is the tessellation list.
	Indices          []uint32
	AdjacencyIndices bool

	DualBuffer       bool
	Visible          bool
	CastsShadow      bool
	CollisionEnabled bool
	UpdateFrequency  UpdateFrequency
}

// UpdateData is a selective refresh payload. Each Include flag tells
// the backend whether the matching buffer was captured, so an
// included-but-empty buffer still means "replace with empty".
type UpdateData struct {
	IncludePositions bool
	Positions        []mgl32.Vec3

	IncludeVertices bool
	Vertices        VertexView

	IncludeIndices   bool
	Indices          []uint32
	AdjacencyIndices bool
}

// PositionUpdateData carries only the position stream of a dual-buffer
// section.
type PositionUpdateData struct {
	Positions []mgl32.Vec3
}

// Backend is the rendering-side consumer of snapshot payloads. It runs
// concurrently with the mutator; the payloads it receives are owned
// copies, so implementations never coordinate with section mutation.
type Backend interface {
	CreateSection(*CreationData)
	UpdateSection(*UpdateData)
	UpdateSectionPositions(*PositionUpdateData)
}

// NewCreationData builds the full creation payload for a section: the
// attribute records, the position stream for dual-buffer sections, the
// selected index list, and the render flags.
func NewCreationData(s Section) *CreationData {
	base := s.Base()
	indices, adjacency := selectIndexBuffer(base)

	d := &CreationData{
		Vertices:         s.vertexCopy(),
		Indices:          indices,
		AdjacencyIndices: adjacency,
		DualBuffer:       base.IsDualBuffer(),
		Visible:          base.Visible,
		CastsShadow:      base.CastsShadow,
		CollisionEnabled: base.CollisionEnabled,
		UpdateFrequency:  base.UpdateFrequency,
	}
	if base.IsDualBuffer() {
		d.Positions = append([]mgl32.Vec3(nil), base.positions...)
	}
	return d
}

// NewUpdateData builds a selective refresh payload, copying only the
// buffers whose inclusion flag is set.
func NewUpdateData(s Section, includePositions, includeVertices, includeIndices bool) *UpdateData {
	d := &UpdateData{
		IncludePositions: includePositions,
		IncludeVertices:  includeVertices,
		IncludeIndices:   includeIndices,
	}
	base := s.Base()
	if includePositions {
		d.Positions = append([]mgl32.Vec3(nil), base.positions...)
	}
	if includeVertices {
		d.Vertices = s.vertexCopy()
	}
	if includeIndices {
		d.Indices, d.AdjacencyIndices = selectIndexBuffer(base)
	}
	return d
}

// NewPositionUpdateData copies the position stream of a dual-buffer
// section. Like UpdatePositionBuffer, it is meaningful only in
// dual-buffer mode; on single-buffer sections the copied stream is
// empty.
func NewPositionUpdateData(s Section) *PositionUpdateData {
	return &PositionUpdateData{
		Positions: append([]mgl32.Vec3(nil), s.Base().positions...),
	}
}

// selectIndexBuffer returns an owned copy of the index list a payload
// should carry: the tessellation list when UseAdjacencyIndices is set
// and the list is non-empty, else the plain triangle list. A set flag
// with no generated tessellation data deliberately falls back to the
// plain list.
func selectIndexBuffer(base *SectionBase) ([]uint32, bool) {
	if base.UseAdjacencyIndices && len(base.tessellation) > 0 {
		return append([]uint32(nil), base.tessellation...), true
	}
	return append([]uint32(nil), base.indices...), false
}
