// Package metrics computes the per-bus and per-branch structural metrics of
// a network from its topology.
//
// The centrality math lives behind the Library interface (centrality.Library
// by default); the Engine only feeds it the topology, checks that every
// vector comes back aligned with the bus order, and fuses node metrics into
// edge metrics along the branch list:
//
//	DegreeProduct[k]   = degree(from_k) · degree(to_k)   (degree centrality)
//	EdgeBetweenness[k] = EBC[from_k, to_k]
//
// Whatever sentinel the library produces for ill-defined cases (zero
// closeness for unreachable vertices, NaN for a non-converged eigenvector)
// is passed through unchanged and described in Result.Notes.
package metrics
