// Package centrality implements the node and edge importance measures used
// by the gridres metrics engine over an unweighted, undirected Graph.
//
// What
//
//   - Degree:          deg(v)/(n-1); every vertex scores 1 when n <= 1.
//   - Eigenvector:     power iteration on A+I with unit L2 norm (gonum/mat),
//     stopping when Σ|x_k - x_{k-1}| < n·Tol; ErrNotConverged after MaxIter.
//   - Betweenness:     Brandes accumulation, normalized by 1/((n-1)(n-2)) for n > 2.
//   - EdgeBetweenness: Brandes accumulation on edges, normalized by 1/(n(n-1)),
//     returned as a symmetric n×n matrix (zero where no edge exists).
//   - Closeness:       (r-1)/Σd over the r vertices reachable from v, scaled by
//     (r-1)/(n-1) so that disconnected graphs stay comparable.
//   - Clustering:      local coefficient, triangles / (deg·(deg-1)/2); 0 for deg < 2.
//
// Disconnected graphs are legal input. Unreachable pairs contribute nothing
// to betweenness and closeness; a vertex that reaches no other vertex has
// closeness 0. These zeros are the documented sentinel, not an error.
//
// Determinism
//
//	Every routine iterates vertices in index order and neighbors in
//	Neighbors order, so results are bit-for-bit reproducible.
//
// Complexity (V vertices, E edges)
//
//   - Degree, Clustering: O(V + E) and O(Σ deg²).
//   - Betweenness, EdgeBetweenness, Closeness: O(V·E) time, O(V + E) space.
//   - Eigenvector: O(MaxIter·V²) with the dense symmetric product.
package centrality
