// Package topology derives the undirected bus-level structure of a
// network.Network: a boolean adjacency matrix, sorted neighbor lists,
// branch incidence and the per-bus self-admittance vector.
//
// One pass over the branch list marks (from,to) and (to,from) adjacent and
// adds 1/x to the self-admittance of both endpoints. Parallel branches add
// admittance but leave adjacency unchanged. A bus with no incident branch
// has self-admittance exactly zero.
//
// A Topology is immutable after Build and safe for concurrent reads. It
// satisfies bfs.Graph (arcs carry branch indices) and centrality.Graph.
package topology
