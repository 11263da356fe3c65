package mesh

import "github.com/go-gl/mathgl/mgl32"

// edge is a directed, position-welded triangle edge.
type edge struct {
	a, b uint32
}

// GenerateTessellationIndices rebuilds the adjacency index list
// consumed by hardware tessellation and stores it through the
// tessellation update primitive with move semantics. The output
// follows the triangles-adjacency convention: six indices per input
// triangle, the corner vertices at even slots and the vertex opposite
// each edge in the neighboring triangle at odd slots.
//
// Neighbor lookup welds vertices by exact position, so corners
// duplicated for UV or normal seams still count as shared edges.
// Boundary edges fall back to the triangle's own opposite corner.
func (s *TypedSection[V]) GenerateTessellationIndices() {
	if len(s.indices) < 3 {
		s.UpdateTessellationIndexBuffer(nil, true)
		return
	}

	positions := s.VertexPositions()

	// Weld duplicated corners: map every vertex to the first vertex
	// sharing its exact position.
	canonical := make([]uint32, len(positions))
	firstAt := make(map[mgl32.Vec3]uint32, len(positions))
	for i, p := range positions {
		if c, ok := firstAt[p]; ok {
			canonical[i] = c
		} else {
			firstAt[p] = uint32(i)
			canonical[i] = uint32(i)
		}
	}

	// Record the vertex opposite every directed welded edge. A
	// neighbor sharing an edge walks it in the reverse direction when
	// winding is consistent.
	opposite := make(map[edge]uint32, len(s.indices))
	for i := 0; i+2 < len(s.indices); i += 3 {
		c0 := canonical[s.indices[i]]
		c1 := canonical[s.indices[i+1]]
		c2 := canonical[s.indices[i+2]]
		opposite[edge{c0, c1}] = s.indices[i+2]
		opposite[edge{c1, c2}] = s.indices[i]
		opposite[edge{c2, c0}] = s.indices[i+1]
	}

	adjacency := make([]uint32, 0, len(s.indices)*2)
	for i := 0; i+2 < len(s.indices); i += 3 {
		i0, i1, i2 := s.indices[i], s.indices[i+1], s.indices[i+2]
		c0, c1, c2 := canonical[i0], canonical[i1], canonical[i2]
		adjacency = append(adjacency,
			i0, adjacentVertex(opposite, c1, c0, i2),
			i1, adjacentVertex(opposite, c2, c1, i0),
			i2, adjacentVertex(opposite, c0, c2, i1),
		)
	}

	s.UpdateTessellationIndexBuffer(adjacency, true)
}

// adjacentVertex returns the vertex opposite the directed edge (a, b),
// or fallback when no neighboring triangle shares that edge.
func adjacentVertex(opposite map[edge]uint32, a, b, fallback uint32) uint32 {
	if v, ok := opposite[edge{a, b}]; ok {
		return v
	}
	return fallback
}
