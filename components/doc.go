// Package components partitions the shared-peptide adjacency graph into
// connected components — the unit at which protein identification ambiguity
// is quantified — and reconstructs each component's peptide composition.
//
// What:
//
//   - Find returns the complete, disjoint partition of the graph's vertex
//     set: every protein lands in exactly one Component, isolated vertices
//     included. Union-find is the default; WithAlgorithm(BFS) switches to a
//     breadth-first traversal. Both yield the identical partition.
//   - Compose rebuilds, per multi-protein component, the set of peptides
//     mapping to any member and the induced sub-incidence-matrix.
//
// Determinism:
//
//   - Component members are sorted lexicographically and components are
//     ordered by their minimum member, so output is stable for a given
//     input regardless of algorithm or map iteration order.
//   - Component.ID() — the minimum member — is the stable display identifier
//     used by downstream extraction.
//
// Errors:
//
//   - ErrGraphNil: Find received a nil adjacency graph.
//   - ErrMatrixNil: Compose received a nil incidence matrix.
//   - ErrOptionViolation: an unknown Algorithm value was supplied.
package components
