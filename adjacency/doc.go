// SPDX-License-Identifier: MIT

// Package adjacency derives the protein×protein shared-peptide graph from an
// incidence matrix: cell (i,j) counts the peptides mapping to both protein i
// and protein j. The diagonal is not stored; the graph is symmetric and
// non-negative by construction.
//
// What:
//
//   - Build accumulates pair counts peptide by peptide: for each row, every
//     unordered pair of its proteins gains one shared peptide. Sparse rows
//     keep the cost near O(Σ k_p²) for k_p proteins per peptide, rather than
//     the dense O(P·N²) transpose-product.
//   - Graph exposes the counts by identifier (SharedPeptides, NeighborsOf)
//     and the vertex set in matrix column order.
//
// Scaling:
//
//   - Accumulation is commutative and associative, so WithWorkers shards
//     peptide batches across goroutines and merges partial counts by
//     elementwise sum; results are identical for any worker count.
//
// Errors:
//
//   - ErrNilMatrix: Build received a nil incidence matrix.
//   - ErrUnknownProtein: identifier lookup failed on a Graph accessor.
//   - ErrOptionViolation: an invalid option value (e.g. WithWorkers(0)).
package adjacency
