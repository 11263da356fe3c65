package mesh

import "github.com/go-gl/mathgl/mgl32"

// VertexArrays groups the parallel attribute arrays BuildVertexBuffer
// consumes. Arrays may have independent lengths; entries beyond an
// array's end are left zero in the assembled records.
type VertexArrays struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	Tangents  []mgl32.Vec4
	Colors    [][4]uint8
	UV0       []mgl32.Vec2
	UV1       []mgl32.Vec2
}

// BuildVertexBuffer assembles vertex records from parallel attribute
// arrays. For layouts with embedded positions the position array
// drives the record count; for position-less layouts the longest
// attribute array does. Attributes the layout lacks are skipped.
func BuildVertexBuffer[V any](api VertexAPI[V], arrays VertexArrays) []V {
	count := len(arrays.Positions)
	if !api.Traits.HasPosition {
		count = maxLen(len(arrays.Normals), len(arrays.Tangents),
			len(arrays.Colors), len(arrays.UV0), len(arrays.UV1))
	}

	out := make([]V, count)
	if api.SetPosition != nil {
		for i := 0; i < len(arrays.Positions) && i < count; i++ {
			api.SetPosition(&out[i], arrays.Positions[i])
		}
	}
	if api.SetNormal != nil {
		for i := 0; i < len(arrays.Normals) && i < count; i++ {
			api.SetNormal(&out[i], arrays.Normals[i])
		}
	}
	if api.SetTangent != nil {
		for i := 0; i < len(arrays.Tangents) && i < count; i++ {
			api.SetTangent(&out[i], arrays.Tangents[i])
		}
	}
	if api.SetColor != nil {
		for i := 0; i < len(arrays.Colors) && i < count; i++ {
			api.SetColor(&out[i], arrays.Colors[i])
		}
	}
	if api.SetUV != nil {
		for i := 0; i < len(arrays.UV0) && i < count; i++ {
			api.SetUV(&out[i], 0, arrays.UV0[i])
		}
		if api.Traits.UVCount > 1 {
			for i := 0; i < len(arrays.UV1) && i < count; i++ {
				api.SetUV(&out[i], 1, arrays.UV1[i])
			}
		}
	}
	return out
}

func maxLen(lengths ...int) int {
	m := 0
	for _, l := range lengths {
		if l > m {
			m = l
		}
	}
	return m
}
