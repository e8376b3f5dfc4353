package navmesh

// defaultEpsilon gates the clockwise predicate when a Mesh doesn't set its
// own Epsilon. Stricter tolerances reject legal merges on aligned grids;
// looser ones let concave unions through.
const defaultEpsilon = 1e-8

// Point is a 2D point in the mesh's source coordinate system.
type Point struct {
	X, Y float64
}

// determinant returns twice the signed area of the triangle (origin, u, v);
// positive for counter-clockwise triples.
func determinant(u, v Point) float64 {
	return u.X*v.Y - u.Y*v.X
}

// cw reports whether the turn a->b->c is clockwise, beyond eps.
// Collinear triples are not clockwise: convexity tolerates a collinear
// vertex, it just becomes removable later.
func cw(a, b, c Point, eps float64) bool {
	return determinant(Point{b.X - a.X, b.Y - a.Y}, Point{c.X - b.X, c.Y - b.Y}) < -eps
}

// polygonDoubleArea returns twice the signed area enclosed by the ring of
// vertex ids, read through verts.
func polygonDoubleArea(verts []Vertex, ring []int) float64 {
	var sum float64
	n := len(ring)
	for i := 0; i < n; i++ {
		sum += determinant(verts[ring[i]].Position, verts[ring[(i+1)%n]].Position)
	}
	return sum
}
