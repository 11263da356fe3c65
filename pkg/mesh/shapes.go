package mesh

import "github.com/go-gl/mathgl/mgl32"

// BoxMesh returns vertices and indices for an axis-aligned box
// centered at the origin with the given half-extents. Each face gets
// its own four vertices so normals and UVs stay flat; triangles wind
// counter-clockwise seen from outside.
func BoxMesh(extents mgl32.Vec3) ([]VertexSimple, []uint32) {
	type face struct {
		normal  mgl32.Vec3
		tangent mgl32.Vec3
	}
	faces := []face{
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
		{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}},
		{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}},
		{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{-1, 0, 0}},
		{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}},
		{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}},
	}

	vertices := make([]VertexSimple, 0, 24)
	indices := make([]uint32, 0, 36)
	for _, f := range faces {
		bitangent := f.normal.Cross(f.tangent)
		base := uint32(len(vertices))

		for _, corner := range [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
			dir := f.normal.Add(f.tangent.Mul(corner[0])).Add(bitangent.Mul(corner[1]))
			vertices = append(vertices, VertexSimple{
				Position: mgl32.Vec3{
					dir.X() * extents.X(),
					dir.Y() * extents.Y(),
					dir.Z() * extents.Z(),
				},
				Normal:  f.normal,
				Tangent: mgl32.Vec4{f.tangent.X(), f.tangent.Y(), f.tangent.Z(), 1},
				Color:   [4]uint8{255, 255, 255, 255},
				UV0:     mgl32.Vec2{(corner[0] + 1) / 2, (corner[1] + 1) / 2},
			})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return vertices, indices
}

// PlaneMesh returns vertices and indices for a subdivided plane in the
// XZ plane, centered at the origin and facing +Y. Segment counts below
// one are clamped to one.
func PlaneMesh(width, depth float32, segmentsX, segmentsZ int) ([]VertexSimple, []uint32) {
	if segmentsX < 1 {
		segmentsX = 1
	}
	if segmentsZ < 1 {
		segmentsZ = 1
	}

	vertices := make([]VertexSimple, 0, (segmentsX+1)*(segmentsZ+1))
	for z := 0; z <= segmentsZ; z++ {
		for x := 0; x <= segmentsX; x++ {
			fx := float32(x) / float32(segmentsX)
			fz := float32(z) / float32(segmentsZ)
			vertices = append(vertices, VertexSimple{
				Position: mgl32.Vec3{(fx - 0.5) * width, 0, (fz - 0.5) * depth},
				Normal:   mgl32.Vec3{0, 1, 0},
				// v runs along +Z while the normal is +Y, so the UV
				// basis is left-handed.
				Tangent: mgl32.Vec4{1, 0, 0, -1},
				Color:   [4]uint8{255, 255, 255, 255},
				UV0:     mgl32.Vec2{fx, fz},
			})
		}
	}

	stride := uint32(segmentsX + 1)
	indices := make([]uint32, 0, segmentsX*segmentsZ*6)
	for z := uint32(0); z < uint32(segmentsZ); z++ {
		for x := uint32(0); x < uint32(segmentsX); x++ {
			i0 := z*stride + x
			indices = append(indices,
				i0, i0+stride, i0+stride+1,
				i0, i0+stride+1, i0+1,
			)
		}
	}
	return vertices, indices
}
