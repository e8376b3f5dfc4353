package main

import (
	"bufio"
	"fmt"
	"os"

	navmesh "github.com/aurelien-rainone/navmesh-merge"
)

// writeOBJ triangulates m and writes it as a flat Wavefront .obj, purely
// for visual inspection in an external viewer -- the merge engine itself
// never needs a 3D format.
func writeOBJ(path string, m *navmesh.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	positions, indices := navmesh.Triangulate(m)
	for _, p := range positions {
		if _, err := fmt.Fprintf(w, "v %g %g 0\n", p.X, p.Y); err != nil {
			return err
		}
	}
	// .obj face indices are 1-based.
	for i := 0; i < len(indices); i += 3 {
		if _, err := fmt.Fprintf(w, "f %d %d %d\n", indices[i]+1, indices[i+1]+1, indices[i+2]+1); err != nil {
			return err
		}
	}
	return w.Flush()
}
