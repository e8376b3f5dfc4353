package navmesh

// Triangulate fans out every polygon of m into triangles and returns the
// combined triangle soup: positions unchanged, indices as flat triples.
//
// For a polygon (v0, v1, ..., vm-1), the emitted triangles are
// (v0, vi-1, vi) for i = 2..m-1 -- this winding matches the distilled
// specification exactly, which is the opposite vertex order from
// original_source's own tools.rs::triangulate (there: v0, vi, vi-1). The
// spec's order is authoritative here; see DESIGN.md.
func Triangulate(m *Mesh) (positions []Point, indices []int) {
	positions = make([]Point, len(m.Vertices))
	for i, v := range m.Vertices {
		positions[i] = v.Position
	}

	for _, p := range m.Polygons {
		if p.dead() {
			continue
		}
		v0 := p.Vertices[0]
		for i := 2; i < len(p.Vertices); i++ {
			indices = append(indices, v0, p.Vertices[i-1], p.Vertices[i])
		}
	}
	return positions, indices
}
