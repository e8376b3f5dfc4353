package navmesh

import (
	"bytes"
	"testing"

	"github.com/aurelien-rainone/math32"
)

func TestToTextRoundTrip(t *testing.T) {
	m, err := Load(openTestdata(t, "quad.mesh"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	var buf bytes.Buffer
	if err := ToText(&buf, m); err != nil {
		t.Fatalf("ToText: %v", err)
	}

	reloaded, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load(ToText output): %v\noutput was:\n%s", err, buf.String())
	}

	if len(reloaded.Vertices) != len(m.Vertices) || len(reloaded.Polygons) != len(m.Polygons) {
		t.Fatalf("round-trip changed table sizes: got %d/%d vertices/polygons, want %d/%d",
			len(reloaded.Vertices), len(reloaded.Polygons), len(m.Vertices), len(m.Polygons))
	}
	for i, v := range m.Vertices {
		got := reloaded.Vertices[i].Position
		const posEpsilon = 1e-6
		if !math32.ApproxEpsilon(float32(got.X), float32(v.Position.X), posEpsilon) ||
			!math32.ApproxEpsilon(float32(got.Y), float32(v.Position.Y), posEpsilon) {
			t.Errorf("vertex %d position round-tripped to %v, want ~%v", i, got, v.Position)
		}
	}
	for i := range m.Polygons {
		want, got := m.Polygons[i], reloaded.Polygons[i]
		if len(want.Vertices) != len(got.Vertices) {
			t.Fatalf("polygon %d: vertex ring length changed", i)
		}
		for k := range want.Vertices {
			if want.Vertices[k] != got.Vertices[k] {
				t.Errorf("polygon %d vertex %d: got %d, want %d", i, k, got.Vertices[k], want.Vertices[k])
			}
			if want.Neighbors[k] != got.Neighbors[k] {
				t.Errorf("polygon %d neighbor %d: got %d, want %d", i, k, got.Neighbors[k], want.Neighbors[k])
			}
		}
	}
}

func TestToTextRejectsDeadPolygon(t *testing.T) {
	m, err := Load(openTestdata(t, "quad.mesh"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	m.Polygons[1] = Polygon{}

	var buf bytes.Buffer
	if err := ToText(&buf, m); err == nil {
		t.Fatal("ToText succeeded on a mesh with a dead polygon, want error")
	}
}
