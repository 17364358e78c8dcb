package ccstats

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/laurafancello/CCs4prot/components"
	"github.com/laurafancello/CCs4prot/incidence"
)

var (
	// ErrMatrixNil is returned when a nil incidence matrix is supplied.
	ErrMatrixNil = errors.New("ccstats: incidence matrix is nil")

	// ErrInconsistentInput is returned when the component partition covers
	// more proteins than the matrix holds.
	ErrInconsistentInput = errors.New("ccstats: components do not fit the matrix protein set")
)

// OverflowBucket labels the size-distribution bucket for components larger
// than maxExactBucket members.
const OverflowBucket = ">10"

// maxExactBucket is the largest component size with its own bucket.
const maxExactBucket = 10

// SizeBuckets lists every distribution key in display order.
var SizeBuckets = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", OverflowBucket}

// bucketOf maps a component size onto its distribution key.
func bucketOf(size int) string {
	if size > maxExactBucket {
		return OverflowBucket
	}
	return strconv.Itoa(size)
}

// Stats summarizes a component partition against its source matrix.
type Stats struct {
	// SingleCount is the number of single-protein components: proteins
	// without any shared peptide.
	SingleCount int

	// MultiCount is the number of multi-protein components (size ≥ 2).
	MultiCount int

	// SizeDistribution maps each SizeBuckets key to the number of components
	// of that size; single-protein components fold into bucket "1".
	SizeDistribution map[string]int
}

// Specificity summarizes the peptide population of the full matrix.
type Specificity struct {
	// NbShared counts peptides mapping to ≥ 2 proteins.
	NbShared int

	// NbSpecific counts peptides mapping to exactly 1 protein.
	NbSpecific int

	// PercSpecific is NbSpecific/(NbShared+NbSpecific)×100, rounded to two
	// decimals; 0 on an empty matrix.
	PercSpecific float64
}

// CCStats folds comps into the ambiguity summary for full.
//
// When reduced is true, comps are assumed to come from a reduced matrix and
// therefore to contain only multi-protein components; SingleCount is
// recovered as |full proteins| − Σ component sizes. When false, comps were
// found on the unreduced matrix and already include singletons.
//
// Never fails on empty input: zero components on a non-empty matrix simply
// means every protein stands alone.
func CCStats(full *incidence.Matrix, comps []components.Component, reduced bool) (Stats, error) {
	if full == nil {
		return Stats{}, ErrMatrixNil
	}

	dist := make(map[string]int, len(SizeBuckets))
	for _, b := range SizeBuckets {
		dist[b] = 0
	}

	covered := 0
	for _, c := range comps {
		covered += c.Size()
		dist[bucketOf(c.Size())]++
	}

	s := Stats{SizeDistribution: dist}
	if reduced {
		s.MultiCount = len(comps)
		s.SingleCount = full.NbProteins() - covered
		if s.SingleCount < 0 {
			return Stats{}, fmt.Errorf("%w: %d proteins in components, %d in matrix",
				ErrInconsistentInput, covered, full.NbProteins())
		}
		dist["1"] += s.SingleCount
	} else {
		for _, c := range comps {
			if c.Size() == 1 {
				s.SingleCount++
			}
		}
		s.MultiCount = len(comps) - s.SingleCount
	}

	return s, nil
}

// PeptideStats counts shared vs specific peptides over the full (unreduced)
// matrix. Peptides with an all-zero row (possible on raw, unreduced input)
// count as neither shared nor specific.
func PeptideStats(full *incidence.Matrix) (Specificity, error) {
	if full == nil {
		return Specificity{}, ErrMatrixNil
	}

	var sp Specificity
	for _, pep := range full.Peptides() {
		deg, err := full.PeptideDegree(pep)
		if err != nil {
			return Specificity{}, err
		}
		switch {
		case deg >= 2:
			sp.NbShared++
		case deg == 1:
			sp.NbSpecific++
		}
	}
	if total := sp.NbShared + sp.NbSpecific; total > 0 {
		sp.PercSpecific = math.Round(float64(sp.NbSpecific)/float64(total)*100*100) / 100
	}
	return sp, nil
}
