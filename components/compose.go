package components

import "github.com/laurafancello/CCs4prot/incidence"

// Compose reconstructs, for each multi-protein component, the peptides
// mapping to any of its members and the induced sub-incidence-matrix
// restricted to those peptides × the member proteins. Single-protein
// components are skipped — they carry no ambiguity to decompose.
//
// Guarantees: every peptide of a composition maps to ≥ 1 member protein,
// and no peptide exclusive to non-member proteins leaks in (both follow
// from the induced-submatrix construction).
//
// full must be the matrix the components were derived from (directly or via
// reduction): a member absent from its column set is an ErrUnknownProtein.
func Compose(comps []Component, full *incidence.Matrix) ([]Composition, error) {
	if full == nil {
		return nil, ErrMatrixNil
	}

	out := make([]Composition, 0, len(comps))
	for _, c := range comps {
		if c.Size() < 2 {
			continue
		}
		sub, err := full.Induce(c.Members)
		if err != nil {
			return nil, err
		}
		out = append(out, Composition{
			Component: c,
			Peptides:  sub.Peptides(),
			Submatrix: sub,
		})
	}
	return out, nil
}
