// SPDX-License-Identifier: MIT

// Package incidence models the peptide×protein identification mapping as an
// immutable binary matrix with named rows (peptides) and columns (proteins),
// and provides the ambiguity-preserving reduction over it.
//
// What:
//
//   - Matrix wraps a binary [][]int mapping plus two identifier sequences,
//     validated at construction (matching shape, unique IDs, {0,1} cells).
//   - Reduce strips every protein without a shared peptide and every peptide
//     left without a protein, so the result contains only multi-protein
//     connected components.
//   - Select / Induce derive submatrices by identifier, preserving the
//     receiver's row/column order for survivors.
//
// Why:
//
//   - Shotgun proteomics: peptides shared between proteins make protein
//     identification ambiguous; the reduced matrix isolates exactly the
//     ambiguous part of the mapping.
//   - Downstream graph construction (adjacency, components) only ever needs
//     identifier-addressed access, never positional indices.
//
// Representation:
//
//   - Rows and columns are stored as roaring bitmaps of indices, so reduction,
//     induction and per-peptide protein enumeration stay cheap on matrices
//     with tens of thousands of rows and sparse mappings.
//
// Determinism:
//
//   - Peptides() and Proteins() follow construction order; ProteinsOf and
//     PeptidesOf return lexicographically sorted identifiers.
//
// Errors:
//
//   - ErrDimensionMismatch: identifier list length does not match the matrix shape.
//   - ErrDuplicateID: an identifier repeats within its axis.
//   - ErrNonBinaryCell: a cell holds a value outside {0,1}.
//   - ErrUnknownPeptide / ErrUnknownProtein: identifier lookup failed.
//   - ErrNilMatrix: a nil *Matrix was passed where a value is required.
package incidence
