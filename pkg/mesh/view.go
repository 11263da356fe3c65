package mesh

import "github.com/go-gl/mathgl/mgl32"

// VertexView is a read-only, layout-erased view over vertex records.
// Accessors for attributes the layout lacks return zero values; use
// Traits to discover what is present.
//
// Views handed out by Section.MeshViews alias live section storage and
// are valid until the section's next mutating call. Views carried
// inside snapshot payloads own their records outright.
type VertexView interface {
	Len() int
	Traits() Traits
	Position(i int) mgl32.Vec3
	Normal(i int) mgl32.Vec3
	Tangent(i int) mgl32.Vec4
	Color(i int) [4]uint8
	UV(i, channel int) mgl32.Vec2
}

// IndexView is a read-only view over a triangle index list.
type IndexView struct {
	indices []uint32
}

// Len returns the number of indices.
func (v IndexView) Len() int {
	return len(v.indices)
}

// At returns the index at position i.
func (v IndexView) At(i int) uint32 {
	return v.indices[i]
}

// Triangles returns the number of whole triangles.
func (v IndexView) Triangles() int {
	return len(v.indices) / 3
}

// Triangle returns the three vertex indices of triangle t.
func (v IndexView) Triangle(t int) (uint32, uint32, uint32) {
	return v.indices[t*3], v.indices[t*3+1], v.indices[t*3+2]
}

// typedView adapts a record slice and its accessor table to
// VertexView. The api is held by value, so a view never refers back
// into the section it came from.
type typedView[V any] struct {
	verts []V
	api   VertexAPI[V]
}

func (v typedView[V]) Len() int {
	return len(v.verts)
}

func (v typedView[V]) Traits() Traits {
	return v.api.Traits
}

func (v typedView[V]) Position(i int) mgl32.Vec3 {
	if v.api.Position == nil {
		return mgl32.Vec3{}
	}
	return v.api.Position(&v.verts[i])
}

func (v typedView[V]) Normal(i int) mgl32.Vec3 {
	if v.api.Normal == nil {
		return mgl32.Vec3{}
	}
	return v.api.Normal(&v.verts[i])
}

func (v typedView[V]) Tangent(i int) mgl32.Vec4 {
	if v.api.Tangent == nil {
		return mgl32.Vec4{}
	}
	return v.api.Tangent(&v.verts[i])
}

func (v typedView[V]) Color(i int) [4]uint8 {
	if v.api.Color == nil {
		return [4]uint8{}
	}
	return v.api.Color(&v.verts[i])
}

func (v typedView[V]) UV(i, channel int) mgl32.Vec2 {
	if v.api.UV == nil {
		return mgl32.Vec2{}
	}
	return v.api.UV(&v.verts[i], channel)
}
