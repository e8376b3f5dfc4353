package navmesh

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Load parses the "mesh 2" text format from r into a Mesh.
//
//	mesh
//	2
//	V P
//	x y k n1 n2 ... nk      (one line per vertex)
//	m v1 ... vm q1 ... qm   (one line per polygon)
//
// In the file, qi is the neighbor across the edge that ends at vi, i.e.
// (vi-1, vi) (the file convention). The list is rotated once on load --
// the first element pushed to the end -- so that in memory neighbors[i] is
// the neighbor across the edge (vi, vi+1), per ToText's matching inverse
// rotation.
func Load(r io.Reader) (*Mesh, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	nextLine := func() (string, bool) {
		for sc.Scan() {
			line++
			text := strings.TrimSpace(sc.Text())
			if text == "" {
				continue
			}
			return text, true
		}
		return "", false
	}

	header, ok := nextLine()
	if !ok || header != "mesh" {
		return nil, newLoadError(InvalidHeader, line, "expected 'mesh', got %q", header)
	}
	version, ok := nextLine()
	if !ok || version != "2" {
		return nil, newLoadError(InvalidHeader, line, "expected '2', got %q", version)
	}

	countsLine, ok := nextLine()
	if !ok {
		return nil, newLoadError(BadCounts, line, "missing vertex/polygon counts")
	}
	counts := strings.Fields(countsLine)
	if len(counts) != 2 {
		return nil, newLoadError(BadCounts, line, "expected 'V P', got %q", countsLine)
	}
	V, errV := strconv.Atoi(counts[0])
	P, errP := strconv.Atoi(counts[1])
	if errV != nil || errP != nil || V < 0 || P < 0 {
		return nil, newLoadError(BadCounts, line, "invalid counts %q", countsLine)
	}

	verts := make([]Vertex, V)
	for vi := 0; vi < V; vi++ {
		vline, ok := nextLine()
		if !ok {
			return nil, newLoadError(BadCounts, line, "expected vertex line %d", vi)
		}
		fields := strings.Fields(vline)
		if len(fields) < 3 {
			return nil, newLoadError(BadCounts, line, "malformed vertex line %q", vline)
		}
		x, errX := strconv.ParseFloat(fields[0], 64)
		y, errY := strconv.ParseFloat(fields[1], 64)
		k, errK := strconv.Atoi(fields[2])
		if errX != nil || errY != nil || errK != nil {
			return nil, newLoadError(BadCounts, line, "malformed vertex line %q", vline)
		}
		if k < 2 {
			return nil, newLoadError(TooFewNeighbors, line, "vertex %d declares %d incident polygons", vi, k)
		}
		if len(fields) != 3+k {
			return nil, newLoadError(BadCounts, line, "vertex %d declares %d incident polygons but lists %d", vi, k, len(fields)-3)
		}
		incident := make([]int, k)
		for i := 0; i < k; i++ {
			n, err := strconv.Atoi(fields[3+i])
			if err != nil {
				return nil, newLoadError(BadCounts, line, "malformed incident polygon index %q", fields[3+i])
			}
			if n < 0 || n >= P {
				return nil, newLoadError(OutOfRange, line, "incident polygon %d out of range [0,%d)", n, P)
			}
			incident[i] = n
		}
		verts[vi] = Vertex{Position: Point{X: x, Y: y}, IncidentPolygons: incident}
	}

	polys := make([]Polygon, P)
	for pi := 0; pi < P; pi++ {
		pline, ok := nextLine()
		if !ok {
			return nil, newLoadError(BadCounts, line, "expected polygon line %d", pi)
		}
		fields := strings.Fields(pline)
		if len(fields) < 1 {
			return nil, newLoadError(BadCounts, line, "malformed polygon line %q", pline)
		}
		m, errM := strconv.Atoi(fields[0])
		if errM != nil || m < 3 {
			return nil, newLoadError(BadCounts, line, "polygon %d declares %d vertices, need >= 3", pi, m)
		}
		if len(fields) != 1+2*m {
			return nil, newLoadError(BadCounts, line, "polygon %d declares %d vertices but line has wrong field count", pi, m)
		}
		vertsRing := make([]int, m)
		for i := 0; i < m; i++ {
			v, err := strconv.Atoi(fields[1+i])
			if err != nil {
				return nil, newLoadError(BadCounts, line, "malformed vertex index %q", fields[1+i])
			}
			if v < 0 || v >= V {
				return nil, newLoadError(OutOfRange, line, "vertex %d out of range [0,%d)", v, V)
			}
			vertsRing[i] = v
		}
		rawNeighbors := make([]int, m)
		for i := 0; i < m; i++ {
			q, err := strconv.Atoi(fields[1+m+i])
			if err != nil {
				return nil, newLoadError(BadCounts, line, "malformed neighbor index %q", fields[1+m+i])
			}
			if q != -1 && (q < 0 || q >= P) {
				return nil, newLoadError(OutOfRange, line, "neighbor %d out of range [0,%d)", q, P)
			}
			rawNeighbors[i] = q
		}
		// post-load rotation: push the first element to the end so that
		// neighbors[i] becomes the neighbor across edge (vi, vi+1) rather
		// than the neighbor across edge (vi-1, vi).
		neighbors := append(rawNeighbors[1:], rawNeighbors[0])

		area := polygonDoubleArea(verts, vertsRing)
		if area <= 0 {
			return nil, newLoadError(DegeneratePolygon, line, "polygon %d has non-positive double-area %g", pi, area)
		}
		traversable := 0
		for _, q := range neighbors {
			if q != -1 {
				traversable++
			}
		}
		polys[pi] = Polygon{
			Vertices:         vertsRing,
			Neighbors:        neighbors,
			TraversableCount: traversable,
			DoubleArea:       area,
		}
	}

	return &Mesh{Vertices: verts, Polygons: polys, Unions: NewUnionFind(P)}, nil
}
