package navmesh

import "fmt"

// FromTriangleSoup builds a Mesh out of a flat triangle soup: positions
// indexed by indices, taken three at a time as CCW triangles. It is the
// inverse of Triangulate and the counterpart of original_source's
// navmesh_from_trimesh, letting a merge run start from an arbitrary
// triangulated import instead of a hand-authored "mesh 2" file.
//
// Adjacency is recovered by hashing each triangle edge, the same
// two-pass edge-matching technique recast/mesh.go::buildMeshAdjacency
// uses for polygon meshes, adapted here from recast's fixed uint16
// bucket table to a plain Go map keyed on the unordered vertex pair.
func FromTriangleSoup(positions []Point, indices []int) (*Mesh, error) {
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("navmesh: FromTriangleSoup: %d indices is not a multiple of 3", len(indices))
	}
	ntris := len(indices) / 3

	verts := make([]Vertex, len(positions))
	for i, p := range positions {
		verts[i] = Vertex{Position: p}
	}

	polys := make([]Polygon, ntris)
	for t := 0; t < ntris; t++ {
		v0, v1, v2 := indices[3*t], indices[3*t+1], indices[3*t+2]
		for _, v := range [3]int{v0, v1, v2} {
			if v < 0 || v >= len(positions) {
				return nil, fmt.Errorf("navmesh: FromTriangleSoup: triangle %d references vertex %d out of range [0,%d)", t, v, len(positions))
			}
		}
		ring := []int{v0, v1, v2}
		area := polygonDoubleArea(verts, ring)
		if area <= 0 {
			return nil, fmt.Errorf("navmesh: FromTriangleSoup: triangle %d is degenerate or clockwise (double-area %g)", t, area)
		}
		polys[t] = Polygon{
			Vertices:   ring,
			Neighbors:  []int{-1, -1, -1},
			DoubleArea: area,
		}
		verts[v0].IncidentPolygons = append(verts[v0].IncidentPolygons, t)
		verts[v1].IncidentPolygons = append(verts[v1].IncidentPolygons, t)
		verts[v2].IncidentPolygons = append(verts[v2].IncidentPolygons, t)
	}

	type edgeRef struct {
		poly, edge int
	}
	type edgeKey struct{ lo, hi int }
	first := make(map[edgeKey]edgeRef)

	for t := 0; t < ntris; t++ {
		ring := polys[t].Vertices
		for e := 0; e < 3; e++ {
			a, b := ring[e], ring[(e+1)%3]
			key := edgeKey{a, b}
			if a > b {
				key = edgeKey{b, a}
			}
			if other, ok := first[key]; ok {
				polys[t].Neighbors[e] = other.poly
				polys[other.poly].Neighbors[other.edge] = t
				delete(first, key)
			} else {
				first[key] = edgeRef{poly: t, edge: e}
			}
		}
	}

	for t := range polys {
		traversable := 0
		for _, q := range polys[t].Neighbors {
			if q != -1 {
				traversable++
			}
		}
		polys[t].TraversableCount = traversable
	}

	return &Mesh{Vertices: verts, Polygons: polys, Unions: NewUnionFind(ntris)}, nil
}
