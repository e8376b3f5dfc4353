// Package navmesh merges a planar triangulated mesh into the fewest
// possible convex polygons, preserving topology and traversability.
//
// A mesh is loaded from the "mesh 2" text format (see Load), repeatedly
// simplified by RunMerge, then shrunk to a contiguous id space by Compact
// before being serialized back with ToText or converted to a triangle
// soup with Triangulate for any consumer that only understands triangles.
package navmesh
