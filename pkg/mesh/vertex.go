package mesh

import "github.com/go-gl/mathgl/mgl32"

// Traits describes which attributes a vertex layout carries and where
// its positions live. HasPosition means positions are embedded in the
// vertex record (single-buffer mode); layouts without it keep
// positions in the section's separate position stream (dual-buffer
// mode).
type Traits struct {
	HasPosition bool
	HasNormal   bool
	HasTangent  bool
	HasColor    bool
	UVCount     int
}

// VertexSimple is the default single-buffer layout: embedded position
// plus the full attribute set with one UV channel.
type VertexSimple struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	Tangent  mgl32.Vec4 // w is the bitangent handedness, +1 or -1
	Color    [4]uint8
	UV0      mgl32.Vec2
}

// VertexDualUV is VertexSimple with a second UV channel.
type VertexDualUV struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	Tangent  mgl32.Vec4
	Color    [4]uint8
	UV0      mgl32.Vec2
	UV1      mgl32.Vec2
}

// VertexNoPosition carries attributes only; positions live in the
// section's position stream. For dual-buffer sections.
type VertexNoPosition struct {
	Normal  mgl32.Vec3
	Tangent mgl32.Vec4
	Color   [4]uint8
	UV0     mgl32.Vec2
}

// VertexNoPositionDualUV is VertexNoPosition with a second UV channel.
type VertexNoPositionDualUV struct {
	Normal  mgl32.Vec3
	Tangent mgl32.Vec4
	Color   [4]uint8
	UV0     mgl32.Vec2
	UV1     mgl32.Vec2
}

// VertexAPI binds attribute accessors for one concrete vertex record
// type. A section resolves the table once at construction; hot loops
// (bounds scans, position extraction, attribute writes) then call
// through the resolved functions without re-inspecting the layout.
//
// Accessors for attributes the layout lacks are nil; Traits tells
// callers which ones are usable. The UV accessors take a channel
// ordinal; channels at or beyond Traits.UVCount are the caller's
// error.
//
// Custom layouts are supported: define a record type, fill in a table,
// and pass it to NewSection.
type VertexAPI[V any] struct {
	Traits Traits

	Position    func(*V) mgl32.Vec3
	SetPosition func(*V, mgl32.Vec3)
	Normal      func(*V) mgl32.Vec3
	SetNormal   func(*V, mgl32.Vec3)
	Tangent     func(*V) mgl32.Vec4
	SetTangent  func(*V, mgl32.Vec4)
	Color       func(*V) [4]uint8
	SetColor    func(*V, [4]uint8)
	UV          func(*V, int) mgl32.Vec2
	SetUV       func(*V, int, mgl32.Vec2)
}

// SimpleAPI is the accessor table for VertexSimple.
var SimpleAPI = VertexAPI[VertexSimple]{
	Traits: Traits{HasPosition: true, HasNormal: true, HasTangent: true, HasColor: true, UVCount: 1},

	Position:    func(v *VertexSimple) mgl32.Vec3 { return v.Position },
	SetPosition: func(v *VertexSimple, p mgl32.Vec3) { v.Position = p },
	Normal:      func(v *VertexSimple) mgl32.Vec3 { return v.Normal },
	SetNormal:   func(v *VertexSimple, n mgl32.Vec3) { v.Normal = n },
	Tangent:     func(v *VertexSimple) mgl32.Vec4 { return v.Tangent },
	SetTangent:  func(v *VertexSimple, t mgl32.Vec4) { v.Tangent = t },
	Color:       func(v *VertexSimple) [4]uint8 { return v.Color },
	SetColor:    func(v *VertexSimple, c [4]uint8) { v.Color = c },
	UV:          func(v *VertexSimple, _ int) mgl32.Vec2 { return v.UV0 },
	SetUV:       func(v *VertexSimple, _ int, uv mgl32.Vec2) { v.UV0 = uv },
}

// DualUVAPI is the accessor table for VertexDualUV.
var DualUVAPI = VertexAPI[VertexDualUV]{
	Traits: Traits{HasPosition: true, HasNormal: true, HasTangent: true, HasColor: true, UVCount: 2},

	Position:    func(v *VertexDualUV) mgl32.Vec3 { return v.Position },
	SetPosition: func(v *VertexDualUV, p mgl32.Vec3) { v.Position = p },
	Normal:      func(v *VertexDualUV) mgl32.Vec3 { return v.Normal },
	SetNormal:   func(v *VertexDualUV, n mgl32.Vec3) { v.Normal = n },
	Tangent:     func(v *VertexDualUV) mgl32.Vec4 { return v.Tangent },
	SetTangent:  func(v *VertexDualUV, t mgl32.Vec4) { v.Tangent = t },
	Color:       func(v *VertexDualUV) [4]uint8 { return v.Color },
	SetColor:    func(v *VertexDualUV, c [4]uint8) { v.Color = c },
	UV: func(v *VertexDualUV, channel int) mgl32.Vec2 {
		if channel == 0 {
			return v.UV0
		}
		return v.UV1
	},
	SetUV: func(v *VertexDualUV, channel int, uv mgl32.Vec2) {
		if channel == 0 {
			v.UV0 = uv
			return
		}
		v.UV1 = uv
	},
}

// NoPositionAPI is the accessor table for VertexNoPosition.
var NoPositionAPI = VertexAPI[VertexNoPosition]{
	Traits: Traits{HasNormal: true, HasTangent: true, HasColor: true, UVCount: 1},

	Normal:     func(v *VertexNoPosition) mgl32.Vec3 { return v.Normal },
	SetNormal:  func(v *VertexNoPosition, n mgl32.Vec3) { v.Normal = n },
	Tangent:    func(v *VertexNoPosition) mgl32.Vec4 { return v.Tangent },
	SetTangent: func(v *VertexNoPosition, t mgl32.Vec4) { v.Tangent = t },
	Color:      func(v *VertexNoPosition) [4]uint8 { return v.Color },
	SetColor:   func(v *VertexNoPosition, c [4]uint8) { v.Color = c },
	UV:         func(v *VertexNoPosition, _ int) mgl32.Vec2 { return v.UV0 },
	SetUV:      func(v *VertexNoPosition, _ int, uv mgl32.Vec2) { v.UV0 = uv },
}

// NoPositionDualUVAPI is the accessor table for VertexNoPositionDualUV.
var NoPositionDualUVAPI = VertexAPI[VertexNoPositionDualUV]{
	Traits: Traits{HasNormal: true, HasTangent: true, HasColor: true, UVCount: 2},

	Normal:     func(v *VertexNoPositionDualUV) mgl32.Vec3 { return v.Normal },
	SetNormal:  func(v *VertexNoPositionDualUV, n mgl32.Vec3) { v.Normal = n },
	Tangent:    func(v *VertexNoPositionDualUV) mgl32.Vec4 { return v.Tangent },
	SetTangent: func(v *VertexNoPositionDualUV, t mgl32.Vec4) { v.Tangent = t },
	Color:      func(v *VertexNoPositionDualUV) [4]uint8 { return v.Color },
	SetColor:   func(v *VertexNoPositionDualUV, c [4]uint8) { v.Color = c },
	UV: func(v *VertexNoPositionDualUV, channel int) mgl32.Vec2 {
		if channel == 0 {
			return v.UV0
		}
		return v.UV1
	},
	SetUV: func(v *VertexNoPositionDualUV, channel int, uv mgl32.Vec2) {
		if channel == 0 {
			v.UV0 = uv
			return
		}
		v.UV1 = uv
	},
}
