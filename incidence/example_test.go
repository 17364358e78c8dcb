// SPDX-License-Identifier: MIT
package incidence_test

import (
	"fmt"

	"github.com/laurafancello/CCs4prot/incidence"
)

// ExampleMatrix_Reduce shows how reduction isolates the ambiguous part of a
// mapping: P3 is identified only by its own specific peptide and drops out.
func ExampleMatrix_Reduce() {
	m, _ := incidence.New(
		[]incidence.PeptideID{"pep1", "pep2", "pep3"},
		[]incidence.ProteinID{"P1", "P2", "P3"},
		[][]int{
			{1, 1, 0}, // shared between P1 and P2
			{1, 1, 0}, // shared between P1 and P2
			{0, 0, 1}, // specific to P3
		},
	)

	red, _ := m.Reduce()
	fmt.Println("proteins:", red.Proteins())
	fmt.Println("peptides:", red.Peptides())
	// Output:
	// proteins: [P1 P2]
	// peptides: [pep1 pep2]
}
