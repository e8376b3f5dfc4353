package navmesh

import (
	"sort"

	assert "github.com/aurelien-rainone/assertgo"
)

// MergeInfo describes a legal merge of polygon PolygonFrom into
// PolygonTo, found by CanMerge and consumed by Merge.
type MergeInfo struct {
	PolygonTo   int
	ToIndex     int
	PolygonFrom int
	FromIndex   int
}

// CanMerge checks whether polygon AId can legally absorb the live
// neighbor across edge i, i.e. the edge (A.Vertices[i], A.Vertices[i+1]).
//
// It is read-only on the mesh except that resolving neighbor ids through
// Unions.Find may compress union-find paths. A non-nil error means the
// adjacency tables are corrupt (the shared vertex CanMerge expected to
// find in B's ring does not exist there) -- this is never a legality
// judgment the driver should treat as "try the next edge".
func CanMerge(m *Mesh, aID, i int) (MergeInfo, Reason, error) {
	if m.Unions.Find(aID) != aID {
		return MergeInfo{}, AlreadyMerged, nil
	}
	a := &m.Polygons[aID]
	mLen := len(a.Vertices)

	bID := m.Unions.Find(a.Neighbors[i])
	if bID == -1 {
		return MergeInfo{}, NoNeighbor, nil
	}
	b := &m.Polygons[bID]
	n := len(b.Vertices)
	if n == 0 {
		return MergeInfo{}, NoNeighbor, nil
	}

	aHereVert := a.Vertices[i]
	j := -1
	for k, v := range b.Vertices {
		if v == aHereVert {
			j = k
			break
		}
	}
	if j == -1 {
		return MergeInfo{}, None, &CorruptError{
			PolygonA: aID, PolygonB: bID,
			Msg: "shared vertex not found in neighbor's ring",
		}
	}

	pos := func(id int) Point { return m.Vertices[id].Position }

	// Hinge 1: the turn at a_here once the shared edge is removed becomes
	// (a_prev, a_here, b_next), where b_next is the vertex B continues to
	// when walking forward from the shared vertex (see DESIGN.md for why
	// this is forward, not backward, on B).
	eps := m.epsilon()

	aPrev := a.Vertices[(i-1+mLen)%mLen]
	bNext := b.Vertices[(j+1)%n]
	if cw(pos(aPrev), pos(aHereVert), pos(bNext), eps) {
		return MergeInfo{}, ConcaveAtFirstHinge, nil
	}

	// Hinge 2: symmetrically at the other shared vertex a_next.
	aNext := a.Vertices[(i+1)%mLen]
	aAfterNext := a.Vertices[(i+2)%mLen]
	bPrev := b.Vertices[(j-2+n)%n]
	if cw(pos(bPrev), pos(aNext), pos(aAfterNext), eps) {
		return MergeInfo{}, ConcaveAtSecondHinge, nil
	}

	return MergeInfo{PolygonTo: aID, ToIndex: i, PolygonFrom: bID, FromIndex: j}, None, nil
}

// Merge applies a legal MergeInfo: writes the union polygon into
// PolygonTo's slot and marks PolygonFrom dead. Behavior is undefined if
// info was not produced by a CanMerge call against the current state of m.
func Merge(m *Mesh, info MergeInfo) {
	a := &m.Polygons[info.PolygonTo]
	b := &m.Polygons[info.PolygonFrom]
	mLen := len(a.Vertices)
	n := len(b.Vertices)

	newVertices := make([]int, 0, mLen+n-2)
	newNeighbors := make([]int, 0, mLen+n-2)
	for k := 1; k <= mLen-1; k++ {
		idx := (info.ToIndex + k) % mLen
		newVertices = append(newVertices, a.Vertices[idx])
		newNeighbors = append(newNeighbors, a.Neighbors[idx])
	}
	for k := 0; k <= n-2; k++ {
		idx := (info.FromIndex + k) % n
		newVertices = append(newVertices, b.Vertices[idx])
		newNeighbors = append(newNeighbors, b.Neighbors[idx])
	}

	doubleArea := a.DoubleArea + b.DoubleArea
	traversable := a.TraversableCount + b.TraversableCount - 2

	m.Unions.Union(info.PolygonTo, info.PolygonFrom)

	*a = Polygon{
		Vertices:         newVertices,
		Neighbors:        newNeighbors,
		TraversableCount: traversable,
		DoubleArea:       doubleArea,
	}
	*b = Polygon{}

	checkRingInvariant(a)
	assert.True(len(a.Vertices) == mLen+n-2, "merge produced %d vertices, want %d", len(a.Vertices), mLen+n-2)
}

// RunMerge repeatedly finds and applies legal merges until none remain,
// processing live polygons in ascending double-area order and restarting
// the scan from scratch after every successful merge. It returns the
// number of merges applied.
func RunMerge(ctx *Context, m *Mesh) int {
	merges := 0
	live := make([]int, 0, len(m.Polygons))

restart:
	for {
		live = live[:0]
		for id := range m.Polygons {
			if m.Unions.Find(id) == id && !m.Polygons[id].dead() {
				live = append(live, id)
			}
		}
		sort.SliceStable(live, func(x, y int) bool {
			return m.Polygons[live[x]].DoubleArea < m.Polygons[live[y]].DoubleArea
		})

		for _, aID := range live {
			if m.Unions.Find(aID) != aID || m.Polygons[aID].dead() {
				continue
			}
			for i := 0; i < len(m.Polygons[aID].Vertices); i++ {
				info, reason, err := CanMerge(m, aID, i)
				if err != nil {
					panic(err)
				}
				if reason == None {
					Merge(m, info)
					merges++
					if ctx != nil {
						ctx.Progressf("merged %d into %d -> double_area=%g", info.PolygonFrom, info.PolygonTo, m.Polygons[info.PolygonTo].DoubleArea)
					}
					continue restart
				}
			}
		}
		return merges
	}
}
