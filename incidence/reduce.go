// SPDX-License-Identifier: MIT
// Package incidence — ambiguity-preserving matrix reduction.

package incidence

import "github.com/RoaringBitmap/roaring/v2"

// Reduce returns the submatrix carrying the ambiguity signal:
//
//	Stage 1: shared peptides = rows mapping to ≥ 2 proteins.
//	Stage 2: kept proteins   = union of the shared rows (a protein stays iff
//	         it shares at least one peptide with at least one other protein).
//	Stage 3: kept peptides   = rows incident on ≥ 1 kept protein.
//
// Every protein of the result belongs to a multi-protein connected component;
// single-protein components of the input are exactly the columns dropped
// here, recoverable by set-difference on Proteins(). When no peptide is
// shared the result is the empty 0×0 matrix — a valid value, not an error.
//
// Reduce is idempotent: Reduce(Reduce(m)) equals Reduce(m).
// Complexity: O(nnz) bitmap work over the rows.
func (m *Matrix) Reduce() (*Matrix, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}

	keptProt := roaring.New()
	for _, row := range m.rows {
		if row.GetCardinality() >= 2 {
			keptProt.Or(row)
		}
	}

	keptPep := roaring.New()
	for i, row := range m.rows {
		if row.Intersects(keptProt) {
			keptPep.Add(uint32(i))
		}
	}

	return m.selectByIndex(keptPep, keptProt), nil
}
