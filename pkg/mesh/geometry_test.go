package mesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const geomEpsilon = 1e-4

// upQuadVertices builds the unit square in the XZ plane wound to face
// +Y, with UVs mapping x and z directly. Normals and tangents start
// zeroed so generation results are unambiguous.
func upQuadVertices() ([]VertexSimple, []uint32) {
	verts := make([]VertexSimple, 4)
	for i, p := range quadPositions() {
		verts[i] = VertexSimple{Position: p, UV0: mgl32.Vec2{p.X(), p.Z()}}
	}
	return verts, []uint32{0, 2, 1, 0, 3, 2}
}

func TestGenerateNormalTangent_Quad(t *testing.T) {
	s := NewSimpleSection()
	verts, indices := upQuadVertices()
	s.UpdateVertexBuffer(verts, nil, false)
	s.UpdateIndexBuffer(indices, false)

	s.GenerateNormalTangent()

	wantNormal := mgl32.Vec3{0, 1, 0}
	wantTangent := mgl32.Vec4{1, 0, 0, -1}
	for i, v := range s.Vertices() {
		if !v.Normal.ApproxEqualThreshold(wantNormal, geomEpsilon) {
			t.Errorf("vertex %d normal = %v, want %v", i, v.Normal, wantNormal)
		}
		if !v.Tangent.ApproxEqualThreshold(wantTangent, geomEpsilon) {
			t.Errorf("vertex %d tangent = %v, want %v", i, v.Tangent, wantTangent)
		}
	}
}

func TestGenerateNormalTangent_DualBuffer(t *testing.T) {
	s := NewNoPositionSection()
	s.UpdatePositionBuffer(quadPositions(), nil, false)

	attrs := make([]VertexNoPosition, 4)
	for i, p := range quadPositions() {
		attrs[i] = VertexNoPosition{UV0: mgl32.Vec2{p.X(), p.Z()}}
	}
	s.UpdateVertexBuffer(attrs, nil, false)
	s.UpdateIndexBuffer([]uint32{0, 2, 1, 0, 3, 2}, false)

	s.GenerateNormalTangent()

	wantNormal := mgl32.Vec3{0, 1, 0}
	wantTangent := mgl32.Vec4{1, 0, 0, -1}
	for i, v := range s.Vertices() {
		if !v.Normal.ApproxEqualThreshold(wantNormal, geomEpsilon) {
			t.Errorf("vertex %d normal = %v, want %v", i, v.Normal, wantNormal)
		}
		if !v.Tangent.ApproxEqualThreshold(wantTangent, geomEpsilon) {
			t.Errorf("vertex %d tangent = %v, want %v", i, v.Tangent, wantTangent)
		}
	}
}

func TestGenerateNormalTangent_DegenerateUV(t *testing.T) {
	// All three UVs collapse to one point, so no tangent direction
	// exists and the perpendicular fallback kicks in.
	s := NewSimpleSection()
	s.UpdateVertexBuffer([]VertexSimple{
		{Position: mgl32.Vec3{0, 0, 0}, UV0: mgl32.Vec2{0.5, 0.5}},
		{Position: mgl32.Vec3{0, 0, 1}, UV0: mgl32.Vec2{0.5, 0.5}},
		{Position: mgl32.Vec3{1, 0, 0}, UV0: mgl32.Vec2{0.5, 0.5}},
	}, nil, false)
	s.UpdateIndexBuffer([]uint32{0, 1, 2}, false)

	s.GenerateNormalTangent()

	wantNormal := mgl32.Vec3{0, 1, 0}
	wantTangent := mgl32.Vec4{0, 0, -1, 1}
	for i, v := range s.Vertices() {
		if !v.Normal.ApproxEqualThreshold(wantNormal, geomEpsilon) {
			t.Errorf("vertex %d normal = %v, want %v", i, v.Normal, wantNormal)
		}
		if !v.Tangent.ApproxEqualThreshold(wantTangent, geomEpsilon) {
			t.Errorf("vertex %d tangent = %v, want %v", i, v.Tangent, wantTangent)
		}
	}
}

func TestGenerateNormalTangent_DegenerateTriangle(t *testing.T) {
	// Zero-area triangle: no face normal accumulates, so both
	// fallbacks apply.
	p := mgl32.Vec3{3, 3, 3}
	s := NewSimpleSection()
	s.UpdateVertexBuffer([]VertexSimple{
		{Position: p, UV0: mgl32.Vec2{0, 0}},
		{Position: p, UV0: mgl32.Vec2{0, 1}},
		{Position: p, UV0: mgl32.Vec2{1, 0}},
	}, nil, false)
	s.UpdateIndexBuffer([]uint32{0, 1, 2}, false)

	s.GenerateNormalTangent()

	wantNormal := mgl32.Vec3{0, 0, 1}
	wantTangent := mgl32.Vec4{0, 1, 0, 1}
	for i, v := range s.Vertices() {
		if !v.Normal.ApproxEqualThreshold(wantNormal, geomEpsilon) {
			t.Errorf("vertex %d normal = %v, want %v", i, v.Normal, wantNormal)
		}
		if !v.Tangent.ApproxEqualThreshold(wantTangent, geomEpsilon) {
			t.Errorf("vertex %d tangent = %v, want %v", i, v.Tangent, wantTangent)
		}
	}
}

func TestGenerateNormalTangent_NoOps(t *testing.T) {
	t.Run("empty section", func(t *testing.T) {
		s := NewSimpleSection()
		s.GenerateNormalTangent()
	})

	t.Run("vertices without indices", func(t *testing.T) {
		s := NewSimpleSection()
		verts, _ := upQuadVertices()
		s.UpdateVertexBuffer(verts, nil, false)

		s.GenerateNormalTangent()
		for i, v := range s.Vertices() {
			if v.Normal != (mgl32.Vec3{}) {
				t.Errorf("vertex %d normal written without triangles: %v", i, v.Normal)
			}
		}
	})

	t.Run("layout without normal or tangent", func(t *testing.T) {
		type bareVertex struct {
			Position mgl32.Vec3
		}
		api := VertexAPI[bareVertex]{
			Traits:      Traits{HasPosition: true},
			Position:    func(v *bareVertex) mgl32.Vec3 { return v.Position },
			SetPosition: func(v *bareVertex, p mgl32.Vec3) { v.Position = p },
		}

		s, err := NewSection(api, false)
		if err != nil {
			t.Fatalf("NewSection: %v", err)
		}
		s.UpdateVertexBuffer([]bareVertex{
			{Position: mgl32.Vec3{0, 0, 0}},
			{Position: mgl32.Vec3{0, 0, 1}},
			{Position: mgl32.Vec3{1, 0, 0}},
		}, nil, false)
		s.UpdateIndexBuffer([]uint32{0, 1, 2}, false)

		s.GenerateNormalTangent()

		if got := s.Vertices()[1].Position; got != (mgl32.Vec3{0, 0, 1}) {
			t.Errorf("position disturbed: %v", got)
		}
	})
}
