package navmesh

import (
	"bufio"
	"fmt"
	"io"
)

// ToText serializes m in the "mesh 2" format, in canonical (current
// table) order. It requires a prior Compact: every polygon must be live
// (the format has no way to represent a dead slot).
func ToText(w io.Writer, m *Mesh) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "mesh\n2\n%d %d\n", len(m.Vertices), len(m.Polygons))

	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "%g %g %d", v.Position.X, v.Position.Y, len(v.IncidentPolygons))
		for _, p := range v.IncidentPolygons {
			fmt.Fprintf(bw, " %d", p)
		}
		bw.WriteByte('\n')
	}

	for pi, p := range m.Polygons {
		if p.dead() {
			return fmt.Errorf("navmesh: ToText: polygon %d is dead; call Compact first", pi)
		}
		mLen := len(p.Vertices)
		fmt.Fprintf(bw, "%d", mLen)
		for _, v := range p.Vertices {
			fmt.Fprintf(bw, " %d", v)
		}
		// inverse of the load-time rotation: qi = neighbors[(i-1) mod m].
		for i := 0; i < mLen; i++ {
			fmt.Fprintf(bw, " %d", p.Neighbors[(i-1+mLen)%mLen])
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
