// Package matrix offers the dense numeric storage used by the topology and
// centrality layers.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set that return
//     sentinel errors instead of panicking.
//   - Canonical validators (ValidateSquare, ValidateSymmetric,
//     ValidateZeroDiagonal, ValidateVecLen) shared by every consumer so that
//     guard logic lives in exactly one place.
//   - Small deterministic kernels (MatVec, RowSums) with a *Dense fast path.
//
// Matrices are sized by bus count: an n-bus network yields an n×n adjacency
// matrix and, for edge betweenness, an n×n pair matrix. Empty (0×0) matrices
// are legal and represent a network without buses.
//
// Determinism:
//
//	All loops run in fixed i→j order; no map iteration is involved.
package matrix
