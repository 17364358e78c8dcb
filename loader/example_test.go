package loader_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/laurafancello/CCs4prot/loader"
)

// ExampleMatrix loads the three input files of a run: the headerless binary
// matrix plus its row and column identifier lists.
func ExampleMatrix() {
	dir, _ := os.MkdirTemp("", "ccs4prot")
	defer os.RemoveAll(dir)

	matrixPath := filepath.Join(dir, "matrix.tsv")
	pepPath := filepath.Join(dir, "peptides.txt")
	protPath := filepath.Join(dir, "proteins.txt")
	_ = os.WriteFile(matrixPath, []byte("1\t1\n0\t1\n"), 0o644)
	_ = os.WriteFile(pepPath, []byte("pep1\npep2\n"), 0o644)
	_ = os.WriteFile(protPath, []byte("P1\nP2\n"), 0o644)

	m, _ := loader.Matrix(matrixPath, pepPath, protPath)
	fmt.Println("peptides:", m.Peptides())
	fmt.Println("proteins:", m.Proteins())
	// Output:
	// peptides: [pep1 pep2]
	// proteins: [P1 P2]
}
