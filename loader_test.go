package navmesh

import (
	"os"
	"strings"
	"testing"
)

func openTestdata(t *testing.T, name string) *os.File {
	t.Helper()
	f, err := os.Open("testdata/" + name)
	if err != nil {
		t.Fatalf("open testdata/%s: %v", name, err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func TestLoadQuad(t *testing.T) {
	m, err := Load(openTestdata(t, "quad.mesh"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(m.Vertices) != 4 {
		t.Fatalf("got %d vertices, want 4", len(m.Vertices))
	}
	if len(m.Polygons) != 2 {
		t.Fatalf("got %d polygons, want 2", len(m.Polygons))
	}

	a, b := m.Polygons[0], m.Polygons[1]
	if got := []int{a.Neighbors[0], a.Neighbors[1], a.Neighbors[2]}; got[0] != -1 || got[1] != -1 || got[2] != 1 {
		t.Errorf("polygon 0 neighbors = %v, want [-1 -1 1] (rotation applied on load)", got)
	}
	if got := []int{b.Neighbors[0], b.Neighbors[1], b.Neighbors[2]}; got[0] != 0 || got[1] != -1 || got[2] != -1 {
		t.Errorf("polygon 1 neighbors = %v, want [0 -1 -1] (rotation applied on load)", got)
	}
	if a.DoubleArea <= 0 || b.DoubleArea <= 0 {
		t.Errorf("both polygons should have positive double-area, got %g and %g", a.DoubleArea, b.DoubleArea)
	}
	if a.TraversableCount != 1 || b.TraversableCount != 1 {
		t.Errorf("traversable counts = %d, %d, want 1, 1", a.TraversableCount, b.TraversableCount)
	}
}

func TestLoadDegeneratePolygon(t *testing.T) {
	_, err := Load(openTestdata(t, "degenerate.mesh"))
	if err == nil {
		t.Fatal("Load of a clockwise triangle succeeded, want DegeneratePolygon error")
	}
	le, ok := err.(*LoadError)
	if !ok {
		t.Fatalf("error is %T, want *LoadError", err)
	}
	if le.Kind != DegeneratePolygon {
		t.Errorf("LoadError.Kind = %v, want DegeneratePolygon", le.Kind)
	}
}

func TestLoadInvalidHeader(t *testing.T) {
	_, err := Load(strings.NewReader("not-a-mesh\n2\n0 0\n"))
	le, ok := err.(*LoadError)
	if !ok || le.Kind != InvalidHeader {
		t.Fatalf("err = %v, want LoadError{Kind: InvalidHeader}", err)
	}
}

func TestLoadBadCounts(t *testing.T) {
	_, err := Load(strings.NewReader("mesh\n2\nnope\n"))
	le, ok := err.(*LoadError)
	if !ok || le.Kind != BadCounts {
		t.Fatalf("err = %v, want LoadError{Kind: BadCounts}", err)
	}
}

func TestLoadTooFewNeighbors(t *testing.T) {
	src := "mesh\n2\n1 0\n0 0 1 0\n"
	_, err := Load(strings.NewReader(src))
	le, ok := err.(*LoadError)
	if !ok || le.Kind != TooFewNeighbors {
		t.Fatalf("err = %v, want LoadError{Kind: TooFewNeighbors}", err)
	}
}

func TestLoadOutOfRange(t *testing.T) {
	src := "mesh\n2\n1 0\n0 0 2 0 5\n"
	_, err := Load(strings.NewReader(src))
	le, ok := err.(*LoadError)
	if !ok || le.Kind != OutOfRange {
		t.Fatalf("err = %v, want LoadError{Kind: OutOfRange}", err)
	}
}
