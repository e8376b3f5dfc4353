package navmesh

import "testing"

func TestPolygonDead(t *testing.T) {
	live := Polygon{Vertices: []int{0, 1, 2}, Neighbors: []int{-1, -1, -1}}
	if live.dead() {
		t.Error("polygon with 3 vertices reported dead")
	}
	dead := Polygon{}
	if !dead.dead() {
		t.Error("polygon with no vertices reported live")
	}
}

func TestMeshLiveResolvesThroughUnions(t *testing.T) {
	m := &Mesh{
		Polygons: make([]Polygon, 3),
		Unions:   NewUnionFind(3),
	}
	m.Unions.Union(0, 1)
	if got := m.live(1); got != 0 {
		t.Errorf("live(1) = %d, want 0", got)
	}
	if got := m.live(2); got != 2 {
		t.Errorf("live(2) = %d, want 2", got)
	}
}
