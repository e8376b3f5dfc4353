package navmesh

// Compact drops dead polygons and incident-less vertices, remapping both
// tables to contiguous ids and restoring Unions to the identity mapping.
// Idempotent: compacting an already-compacted mesh is a no-op.
func Compact(m *Mesh) {
	polyRemap := make(map[int]int, len(m.Polygons))
	var livePolygons []Polygon
	for id := range m.Polygons {
		if m.Unions.Find(id) == id && !m.Polygons[id].dead() {
			polyRemap[id] = len(livePolygons)
			livePolygons = append(livePolygons, m.Polygons[id])
		}
	}

	usedBy := make(map[int][]int) // old vertex id -> new polygon ids using it
	for newID, p := range livePolygons {
		for _, v := range p.Vertices {
			usedBy[v] = append(usedBy[v], newID)
		}
	}

	vertRemap := make(map[int]int, len(usedBy))
	var newVertices []Vertex
	for oldID := range m.Vertices {
		incident, ok := usedBy[oldID]
		if !ok {
			continue
		}
		vertRemap[oldID] = len(newVertices)
		newVertices = append(newVertices, Vertex{
			Position:         m.Vertices[oldID].Position,
			IncidentPolygons: incident,
		})
	}

	for i := range livePolygons {
		p := &livePolygons[i]
		for k, v := range p.Vertices {
			p.Vertices[k] = vertRemap[v]
		}
		for k, q := range p.Neighbors {
			if q == -1 {
				continue
			}
			root := m.Unions.Find(q)
			p.Neighbors[k] = polyRemap[root]
		}
	}

	m.Polygons = livePolygons
	m.Vertices = newVertices
	m.Unions = NewUnionFind(len(livePolygons))
}
