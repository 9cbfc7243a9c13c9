// Package bfs provides breadth-first search over an index-addressed Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (arc count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: distance from start per vertex (-1 when unreached)
//   - Parent: predecessor in the BFS tree per vertex (-1 for roots)
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual arcs via WithFilterArc / WithoutEdges.
//   - Components labels connected components under the same filters.
//
// In gridres the Graph is a topology.Topology: vertices are bus indices and
// each Arc carries the branch index, so an outage scenario is a WithoutEdges
// filter rather than a modified copy of the network.
//
// Determinism
//
//	Neighbors are enqueued in Arcs order, so the visit sequence is fully
//	reproducible for a given Graph.
//
// Complexity (V = vertices, E = arcs)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartVertexNotFound  if the start index is out of range.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNoPath               from PathTo for unreached vertices.
//   - ctx.Err() on cancellation; wrapped user-supplied hook errors from OnVisit.
package bfs
