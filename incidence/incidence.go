// SPDX-License-Identifier: MIT
// Package incidence — Matrix construction and identifier-addressed accessors.
//
// Construction follows a strict validate-then-build discipline:
//   Stage 1 (Validate): shape, identifier uniqueness, binary cells.
//   Stage 2 (Build): per-row and per-column roaring bitmaps of indices.
//   Stage 3 (Finalize): wrap into an immutable Matrix value.
//
// Complexity:
//   - New: O(P·N) over the dense input, O(nnz) bitmap population.
//   - Accessors: O(1) for counts/membership, O(k log k) for sorted neighbor
//     enumeration (k = row/column cardinality).
//   - Select: O(nnz kept) plus index remapping.

package incidence

import (
	"fmt"
	"sort"

	"github.com/RoaringBitmap/roaring/v2"
)

// PeptideID identifies one matrix row (an observed peptide sequence tag).
type PeptideID string

// ProteinID identifies one matrix column (an Ensembl-style protein accession
// or a tagged contaminant entry).
type ProteinID string

// Matrix is an immutable binary peptide×protein mapping with named rows and
// columns. A cell value of 1 means "peptide observed to map to protein".
// Axes keep construction order; identifiers are unique per axis. Derived
// matrices (Reduce, Select, Induce) are always new values — a Matrix is never
// mutated after its constructor returns.
type Matrix struct {
	peptides  []PeptideID       // row identifiers, construction order
	proteins  []ProteinID       // column identifiers, construction order
	pepIndex  map[PeptideID]int // peptide → row index
	protIndex map[ProteinID]int // protein → column index
	rows      []*roaring.Bitmap // per peptide: set of protein column indices
	cols      []*roaring.Bitmap // per protein: set of peptide row indices
}

// New builds a Matrix from a dense binary mapping plus identifier sequences.
// cells is row-major: cells[i][j] relates peptides[i] to proteins[j].
//
// Returns ErrDimensionMismatch when len(cells) != len(peptides) or any row
// length != len(proteins); ErrDuplicateID on a repeated identifier within an
// axis; ErrNonBinaryCell when a cell is neither 0 nor 1. An empty matrix
// (0 peptides, 0 proteins) is valid.
func New(peptides []PeptideID, proteins []ProteinID, cells [][]int) (*Matrix, error) {
	if len(cells) != len(peptides) {
		return nil, fmt.Errorf("%w: %d rows vs %d peptide ids", ErrDimensionMismatch, len(cells), len(peptides))
	}
	pepIndex := make(map[PeptideID]int, len(peptides))
	for i, p := range peptides {
		if _, dup := pepIndex[p]; dup {
			return nil, fmt.Errorf("%w: peptide %q", ErrDuplicateID, p)
		}
		pepIndex[p] = i
	}
	protIndex := make(map[ProteinID]int, len(proteins))
	for j, p := range proteins {
		if _, dup := protIndex[p]; dup {
			return nil, fmt.Errorf("%w: protein %q", ErrDuplicateID, p)
		}
		protIndex[p] = j
	}

	m := &Matrix{
		peptides:  append([]PeptideID(nil), peptides...),
		proteins:  append([]ProteinID(nil), proteins...),
		pepIndex:  pepIndex,
		protIndex: protIndex,
		rows:      make([]*roaring.Bitmap, len(peptides)),
		cols:      make([]*roaring.Bitmap, len(proteins)),
	}
	for j := range m.cols {
		m.cols[j] = roaring.New()
	}
	for i, row := range cells {
		if len(row) != len(proteins) {
			return nil, fmt.Errorf("%w: row %d has %d cells vs %d protein ids",
				ErrDimensionMismatch, i, len(row), len(proteins))
		}
		bits := roaring.New()
		for j, v := range row {
			switch v {
			case 0:
				// absent
			case 1:
				bits.Add(uint32(j))
				m.cols[j].Add(uint32(i))
			default:
				return nil, fmt.Errorf("%w: cell (%d,%d) = %d", ErrNonBinaryCell, i, j, v)
			}
		}
		m.rows[i] = bits
	}

	return m, nil
}

// NbPeptides returns the number of rows. O(1).
func (m *Matrix) NbPeptides() int { return len(m.peptides) }

// NbProteins returns the number of columns. O(1).
func (m *Matrix) NbProteins() int { return len(m.proteins) }

// IsEmpty reports whether the matrix has no rows and no columns. O(1).
func (m *Matrix) IsEmpty() bool { return len(m.peptides) == 0 && len(m.proteins) == 0 }

// Peptides returns a copy of the row identifier sequence, construction order.
func (m *Matrix) Peptides() []PeptideID {
	return append([]PeptideID(nil), m.peptides...)
}

// Proteins returns a copy of the column identifier sequence, construction order.
func (m *Matrix) Proteins() []ProteinID {
	return append([]ProteinID(nil), m.proteins...)
}

// HasPeptide reports whether pep is a row of the matrix. O(1).
func (m *Matrix) HasPeptide(pep PeptideID) bool {
	_, ok := m.pepIndex[pep]
	return ok
}

// HasProtein reports whether prot is a column of the matrix. O(1).
func (m *Matrix) HasProtein(prot ProteinID) bool {
	_, ok := m.protIndex[prot]
	return ok
}

// Has reports whether the (pep,prot) cell is set.
// Returns ErrUnknownPeptide / ErrUnknownProtein on a failed lookup.
func (m *Matrix) Has(pep PeptideID, prot ProteinID) (bool, error) {
	i, ok := m.pepIndex[pep]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownPeptide, pep)
	}
	j, ok := m.protIndex[prot]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownProtein, prot)
	}
	return m.rows[i].Contains(uint32(j)), nil
}

// PeptideDegree returns the number of proteins pep maps to (its row sum).
// A degree of 1 marks a specific peptide, ≥ 2 a shared one.
func (m *Matrix) PeptideDegree(pep PeptideID) (int, error) {
	i, ok := m.pepIndex[pep]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPeptide, pep)
	}
	return int(m.rows[i].GetCardinality()), nil
}

// ProteinDegree returns the number of peptides mapping to prot (its column sum).
func (m *Matrix) ProteinDegree(prot ProteinID) (int, error) {
	j, ok := m.protIndex[prot]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownProtein, prot)
	}
	return int(m.cols[j].GetCardinality()), nil
}

// ProteinsOf returns the proteins pep maps to, sorted lexicographically.
func (m *Matrix) ProteinsOf(pep PeptideID) ([]ProteinID, error) {
	i, ok := m.pepIndex[pep]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPeptide, pep)
	}
	out := make([]ProteinID, 0, m.rows[i].GetCardinality())
	it := m.rows[i].Iterator()
	for it.HasNext() {
		out = append(out, m.proteins[it.Next()])
	}
	sort.Slice(out, func(a, b int) bool { return out[a] < out[b] })
	return out, nil
}

// PeptidesOf returns the peptides mapping to prot, sorted lexicographically.
func (m *Matrix) PeptidesOf(prot ProteinID) ([]PeptideID, error) {
	j, ok := m.protIndex[prot]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProtein, prot)
	}
	out := make([]PeptideID, 0, m.cols[j].GetCardinality())
	it := m.cols[j].Iterator()
	for it.HasNext() {
		out = append(out, m.peptides[it.Next()])
	}
	sort.Slice(out, func(a, b int) bool { return out[a] < out[b] })
	return out, nil
}

// Select returns the submatrix restricted to the given peptide and protein
// identifier sets. Arguments are treated as sets: duplicates collapse, and
// survivors keep the receiver's row/column order, not the argument order.
// Cells survive iff both endpoints survive. Unknown identifiers fail with
// ErrUnknownPeptide / ErrUnknownProtein.
func (m *Matrix) Select(peptides []PeptideID, proteins []ProteinID) (*Matrix, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	keepPep := roaring.New()
	for _, p := range peptides {
		i, ok := m.pepIndex[p]
		if !ok {
			return nil, fmt.Errorf("Select: %w: %q", ErrUnknownPeptide, p)
		}
		keepPep.Add(uint32(i))
	}
	keepProt := roaring.New()
	for _, p := range proteins {
		j, ok := m.protIndex[p]
		if !ok {
			return nil, fmt.Errorf("Select: %w: %q", ErrUnknownProtein, p)
		}
		keepProt.Add(uint32(j))
	}
	return m.selectByIndex(keepPep, keepProt), nil
}

// Induce returns the submatrix induced by a protein set: the given columns
// plus every peptide row incident on at least one of them. This is the
// sub-incidence-matrix of a connected component's composition.
func (m *Matrix) Induce(proteins []ProteinID) (*Matrix, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	keepProt := roaring.New()
	for _, p := range proteins {
		j, ok := m.protIndex[p]
		if !ok {
			return nil, fmt.Errorf("Induce: %w: %q", ErrUnknownProtein, p)
		}
		keepProt.Add(uint32(j))
	}
	// A peptide survives iff its row intersects the kept columns.
	keepPep := roaring.New()
	for i, row := range m.rows {
		if row.Intersects(keepProt) {
			keepPep.Add(uint32(i))
		}
	}
	return m.selectByIndex(keepPep, keepProt), nil
}

// selectByIndex materializes a new Matrix from kept row/column index sets,
// preserving the receiver's ordering. Internal; inputs are assumed in range.
func (m *Matrix) selectByIndex(keepPep, keepProt *roaring.Bitmap) *Matrix {
	out := &Matrix{
		peptides:  make([]PeptideID, 0, keepPep.GetCardinality()),
		proteins:  make([]ProteinID, 0, keepProt.GetCardinality()),
		pepIndex:  make(map[PeptideID]int, keepPep.GetCardinality()),
		protIndex: make(map[ProteinID]int, keepProt.GetCardinality()),
		rows:      make([]*roaring.Bitmap, 0, keepPep.GetCardinality()),
		cols:      make([]*roaring.Bitmap, 0, keepProt.GetCardinality()),
	}

	// Old column index → new column index, receiver order.
	colMap := make(map[uint32]uint32, keepProt.GetCardinality())
	cit := keepProt.Iterator()
	for cit.HasNext() {
		j := cit.Next()
		colMap[j] = uint32(len(out.proteins))
		out.protIndex[m.proteins[j]] = len(out.proteins)
		out.proteins = append(out.proteins, m.proteins[j])
		out.cols = append(out.cols, roaring.New())
	}

	rit := keepPep.Iterator()
	for rit.HasNext() {
		i := rit.Next()
		newRow := roaring.New()
		kept := roaring.And(m.rows[i], keepProt)
		kit := kept.Iterator()
		for kit.HasNext() {
			nj := colMap[kit.Next()]
			newRow.Add(nj)
			out.cols[nj].Add(uint32(len(out.peptides)))
		}
		out.pepIndex[m.peptides[i]] = len(out.peptides)
		out.peptides = append(out.peptides, m.peptides[i])
		out.rows = append(out.rows, newRow)
	}

	return out
}
