package ccstats_test

import (
	"fmt"

	"github.com/laurafancello/CCs4prot/adjacency"
	"github.com/laurafancello/CCs4prot/ccstats"
	"github.com/laurafancello/CCs4prot/components"
	"github.com/laurafancello/CCs4prot/incidence"
)

// ExampleCCStats summarizes a run where P1 and P2 share a peptide and P3
// stands alone on its own specific peptide.
func ExampleCCStats() {
	m, _ := incidence.New(
		[]incidence.PeptideID{"pep1", "pep2"},
		[]incidence.ProteinID{"P1", "P2", "P3"},
		[][]int{
			{1, 1, 0},
			{0, 0, 1},
		},
	)

	g, _ := adjacency.Build(m)
	comps, _ := components.Find(g)

	s, _ := ccstats.CCStats(m, comps, false)
	fmt.Println("single:", s.SingleCount, "multi:", s.MultiCount)

	sp, _ := ccstats.PeptideStats(m)
	fmt.Println("specific peptides:", sp.NbSpecific, "of", sp.NbShared+sp.NbSpecific)
	// Output:
	// single: 1 multi: 1
	// specific peptides: 1 of 2
}
