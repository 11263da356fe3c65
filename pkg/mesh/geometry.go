package mesh

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Vectors shorter than this are treated as degenerate when
// normalizing.
const degenerateEpsilon = 1e-5

// GenerateNormalTangent recomputes per-vertex normals and tangents
// from the triangle list. Each triangle's face normal and UV-space
// tangent direction are accumulated into all three of its vertices,
// then the per-vertex accumulators are normalized, so vertices shared
// between triangles receive averaged results. The unnormalized face
// cross product carries triangle area as its magnitude, weighting
// larger triangles more.
//
// Layouts without normal and tangent attributes make this a no-op, as
// do empty sections.
func (s *TypedSection[V]) GenerateNormalTangent() {
	if !s.api.Traits.HasNormal && !s.api.Traits.HasTangent {
		return
	}
	if len(s.vertices) == 0 || len(s.indices) < 3 {
		return
	}

	positions := s.VertexPositions()
	normals := make([]mgl32.Vec3, len(positions))
	tangents := make([]mgl32.Vec3, len(positions))
	bitangents := make([]mgl32.Vec3, len(positions))

	uv := s.api.UV
	wantTangents := s.api.Traits.HasTangent && s.api.Traits.UVCount > 0

	for i := 0; i+2 < len(s.indices); i += 3 {
		i0, i1, i2 := s.indices[i], s.indices[i+1], s.indices[i+2]

		p0, p1, p2 := positions[i0], positions[i1], positions[i2]
		e1 := p1.Sub(p0)
		e2 := p2.Sub(p0)

		faceNormal := e1.Cross(e2)
		normals[i0] = normals[i0].Add(faceNormal)
		normals[i1] = normals[i1].Add(faceNormal)
		normals[i2] = normals[i2].Add(faceNormal)

		if !wantTangents {
			continue
		}

		uv0 := uv(&s.vertices[i0], 0)
		duv1 := uv(&s.vertices[i1], 0).Sub(uv0)
		duv2 := uv(&s.vertices[i2], 0).Sub(uv0)

		r := duv1.X()*duv2.Y() - duv1.Y()*duv2.X()
		if r == 0 {
			continue // degenerate UV mapping, no tangent direction
		}
		f := 1 / r

		tangent := e1.Mul(duv2.Y()).Sub(e2.Mul(duv1.Y())).Mul(f)
		bitangent := e2.Mul(duv1.X()).Sub(e1.Mul(duv2.X())).Mul(f)

		tangents[i0] = tangents[i0].Add(tangent)
		tangents[i1] = tangents[i1].Add(tangent)
		tangents[i2] = tangents[i2].Add(tangent)
		bitangents[i0] = bitangents[i0].Add(bitangent)
		bitangents[i1] = bitangents[i1].Add(bitangent)
		bitangents[i2] = bitangents[i2].Add(bitangent)
	}

	setNormal := s.api.SetNormal
	setTangent := s.api.SetTangent
	for j := range s.vertices {
		if j >= len(normals) {
			break
		}

		n := normals[j]
		if l := n.Len(); l > degenerateEpsilon {
			n = n.Mul(1 / l)
		} else {
			n = mgl32.Vec3{0, 0, 1}
		}
		if setNormal != nil {
			setNormal(&s.vertices[j], n)
		}

		if setTangent == nil {
			continue
		}
		// Gram-Schmidt orthogonalize the tangent against the normal.
		t := tangents[j]
		t = t.Sub(n.Mul(n.Dot(t)))
		if l := t.Len(); l > degenerateEpsilon {
			t = t.Mul(1 / l)
		} else {
			t = perpendicular(n)
		}
		w := float32(1)
		if n.Cross(t).Dot(bitangents[j]) < 0 {
			w = -1
		}
		setTangent(&s.vertices[j], mgl32.Vec4{t.X(), t.Y(), t.Z(), w})
	}
}

// perpendicular returns a unit vector perpendicular to n, picking the
// world axis least aligned with it as the crossing partner.
func perpendicular(n mgl32.Vec3) mgl32.Vec3 {
	axis := mgl32.Vec3{1, 0, 0}
	if math32.Abs(n.X()) > 0.99 {
		axis = mgl32.Vec3{0, 1, 0}
	}
	p := n.Cross(axis)
	if l := p.Len(); l > degenerateEpsilon {
		return p.Mul(1 / l)
	}
	return mgl32.Vec3{1, 0, 0}
}
