// Package ccstats derives the ambiguity summary of an identification run:
// how many proteins are unambiguous (single-protein CCs), how many sit in
// multi-protein CCs, how CC sizes distribute, and how specific the peptide
// population is.
//
// What:
//
//   - CCStats folds a component partition into single/multi counts and a
//     size-frequency table bucketed 1..10 plus ">10". It handles both
//     pipelines: components found on a reduced matrix (singletons recovered
//     by set-difference against the full protein list) and components found
//     on the unreduced matrix (singletons already present).
//   - PeptideStats counts shared (≥ 2 proteins) vs specific (exactly 1)
//     peptides over the full matrix and their specific percentage, rounded
//     to two decimals.
//
// Empty inputs are never an error: an empty reduction simply means every
// protein is its own component, and the functions return zero counts.
//
// Errors:
//
//   - ErrMatrixNil: a nil incidence matrix was supplied.
//   - ErrInconsistentInput: components cover more proteins than the matrix
//     holds (the partition and the matrix do not belong together).
package ccstats
