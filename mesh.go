package navmesh

import assert "github.com/aurelien-rainone/assertgo"

// Vertex is a point in the mesh plus the coarse set of polygons touching
// it. IncidentPolygons is refreshed at load and by Compact; it is allowed
// to go stale (contain dead ids) during merging, since the merge engine
// only needs polygon-level adjacency.
type Vertex struct {
	Position         Point
	IncidentPolygons []int
}

// Polygon is a convex face: a cyclic ring of vertex ids in counter-
// clockwise winding, with a parallel ring of neighbor polygon ids (-1 for
// none) such that Neighbors[i] is the polygon sharing the edge from
// Vertices[i] to Vertices[(i+1)%n].
//
// A dead polygon (merged away) has Vertices and Neighbors set to nil until
// Compact drops it for good.
type Polygon struct {
	Vertices         []int
	Neighbors        []int
	TraversableCount int
	DoubleArea       float64
}

// dead reports whether this polygon slot has already been merged away.
func (p *Polygon) dead() bool { return len(p.Vertices) == 0 }

// Mesh is the canonical in-memory navmesh: a vertex table, a polygon
// table (dead polygons left in place as empty sentinels until Compact),
// and the union-find resolving historical neighbor ids to survivors.
//
// Epsilon is the convexity tolerance CanMerge's hinge checks are run
// against; a zero value means "use defaultEpsilon" (Load and
// FromTriangleSoup both leave it zero, so callers only need to set it
// when they want a non-default tolerance, e.g. from a CLI setting).
type Mesh struct {
	Vertices []Vertex
	Polygons []Polygon
	Unions   *UnionFind
	Epsilon  float64
}

// epsilon returns m.Epsilon, or defaultEpsilon if m didn't set one.
func (m *Mesh) epsilon() float64 {
	if m.Epsilon == 0 {
		return defaultEpsilon
	}
	return m.Epsilon
}

// live resolves a possibly-stale polygon id to its surviving id, or -1.
func (m *Mesh) live(id int) int {
	return m.Unions.Find(id)
}

// checkRingInvariant panics (in debug builds) if a polygon's vertex and
// neighbor rings are not the same, valid length. Merge calls it on the
// polygon it writes; Compact and the loaders do not call it.
func checkRingInvariant(p *Polygon) {
	assert.True(len(p.Vertices) == len(p.Neighbors),
		"vertex/neighbor ring length mismatch: %d vertices, %d neighbors",
		len(p.Vertices), len(p.Neighbors))
	assert.True(p.dead() || len(p.Vertices) >= 3,
		"live polygon with fewer than 3 vertices: %d", len(p.Vertices))
}
