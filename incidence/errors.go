// SPDX-License-Identifier: MIT
// Package incidence: sentinel error set.
// All constructors and accessors return these sentinels (wrapped with context
// via fmt.Errorf("...: %w", Err...)); callers match them with errors.Is.
// No function panics on user-triggered conditions.

package incidence

import "errors"

var (
	// ErrDimensionMismatch is returned when an identifier list length does not
	// match the corresponding matrix dimension (rows vs peptides, columns vs
	// proteins), or when matrix rows have differing lengths.
	ErrDimensionMismatch = errors.New("incidence: identifier list does not match matrix shape")

	// ErrDuplicateID is returned when a peptide or protein identifier occurs
	// more than once within its axis.
	ErrDuplicateID = errors.New("incidence: duplicate identifier within axis")

	// ErrNonBinaryCell is returned when a cell value is neither 0 nor 1.
	ErrNonBinaryCell = errors.New("incidence: cell value outside {0,1}")

	// ErrUnknownPeptide is returned when a peptide identifier is absent from
	// the matrix row set.
	ErrUnknownPeptide = errors.New("incidence: unknown peptide id")

	// ErrUnknownProtein is returned when a protein identifier is absent from
	// the matrix column set.
	ErrUnknownProtein = errors.New("incidence: unknown protein id")

	// ErrNilMatrix is returned when a nil *Matrix is passed where a valid
	// matrix is required.
	ErrNilMatrix = errors.New("incidence: nil matrix")
)
