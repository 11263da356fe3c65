package collision

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/runtimemesh/pkg/mesh"
)

// Hit describes the nearest triangle a ray struck.
type Hit struct {
	Distance float32
	Point    mgl32.Vec3
	// Triangle is the ordinal of the hit triangle in the section's
	// plain index list.
	Triangle int
}

// RaycastSection casts a ray against a section's triangles and returns
// the nearest hit. The section's bounding box is trusted as a
// pre-filter, so geometry outside caller-supplied bounds is not
// considered.
func RaycastSection(r Ray, s mesh.Section) (Hit, bool) {
	if _, ok := r.IntersectBox(s.Bounds()); !ok {
		return Hit{}, false
	}

	positions := s.VertexPositions()
	_, indices := s.MeshViews()

	best := Hit{Distance: math32.MaxFloat32}
	found := false
	for tri := 0; tri < indices.Triangles(); tri++ {
		i0, i1, i2 := indices.Triangle(tri)
		t, ok := r.IntersectTriangle(positions[i0], positions[i1], positions[i2])
		if !ok || t >= best.Distance {
			continue
		}
		best = Hit{Distance: t, Point: r.At(t), Triangle: tri}
		found = true
	}
	return best, found
}

// ExtractMesh copies a section's collision geometry: positions and the
// plain triangle list, never tessellation indices. Sections without
// collision enabled contribute nothing and report false.
func ExtractMesh(s mesh.Section) ([]mgl32.Vec3, []uint32, bool) {
	if !s.Base().CollisionEnabled {
		return nil, nil, false
	}

	positions := append([]mgl32.Vec3(nil), s.VertexPositions()...)
	indices := append([]uint32(nil), s.Base().Indices()...)
	return positions, indices, true
}
