package components_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/laurafancello/CCs4prot/adjacency"
	"github.com/laurafancello/CCs4prot/components"
	"github.com/laurafancello/CCs4prot/incidence"
)

// TestCompose_InducedSubmatrix rebuilds one CC's composition and checks the
// no-leak guarantee: pep4 is exclusive to P4 and must stay out.
func TestCompose_InducedSubmatrix(t *testing.T) {
	m, err := incidence.New(
		[]incidence.PeptideID{"pep1", "pep2", "pep3", "pep4"},
		[]incidence.ProteinID{"P1", "P2", "P3", "P4"},
		[][]int{
			{1, 1, 0, 0},
			{0, 1, 1, 0},
			{0, 0, 1, 0},
			{0, 0, 0, 1},
		},
	)
	if err != nil {
		t.Fatalf("incidence.New: %v", err)
	}
	g, err := adjacency.Build(m)
	if err != nil {
		t.Fatalf("adjacency.Build: %v", err)
	}
	comps, err := components.Find(g)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	// {P1,P2,P3} multi + {P4} singleton.
	if len(comps) != 2 {
		t.Fatalf("got %d components; want 2", len(comps))
	}

	cps, err := components.Compose(comps, m)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if len(cps) != 1 {
		t.Fatalf("got %d compositions; want 1 (singletons skipped)", len(cps))
	}

	cp := cps[0]
	wantPeps := []incidence.PeptideID{"pep1", "pep2", "pep3"}
	if !reflect.DeepEqual(cp.Peptides, wantPeps) {
		t.Errorf("Peptides = %v; want %v", cp.Peptides, wantPeps)
	}
	wantProts := []incidence.ProteinID{"P1", "P2", "P3"}
	if got := cp.Submatrix.Proteins(); !reflect.DeepEqual(got, wantProts) {
		t.Errorf("Submatrix proteins = %v; want %v", got, wantProts)
	}
	// Every composition peptide maps to ≥ 1 member protein.
	for _, pep := range cp.Peptides {
		deg, degErr := cp.Submatrix.PeptideDegree(pep)
		if degErr != nil {
			t.Fatalf("PeptideDegree(%s): %v", pep, degErr)
		}
		if deg < 1 {
			t.Errorf("peptide %s has degree %d in submatrix; want ≥ 1", pep, deg)
		}
	}
}

// TestCompose_ComponentsFromReducedMatrix mirrors the usual pipeline: find on
// the reduced matrix, compose against the full one.
func TestCompose_ComponentsFromReducedMatrix(t *testing.T) {
	m, err := incidence.New(
		[]incidence.PeptideID{"pep1", "pep2", "pep3"},
		[]incidence.ProteinID{"P1", "P2", "P3"},
		[][]int{
			{1, 1, 0},
			{1, 1, 0},
			{0, 0, 1},
		},
	)
	if err != nil {
		t.Fatalf("incidence.New: %v", err)
	}
	red, err := m.Reduce()
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	g, err := adjacency.Build(red)
	if err != nil {
		t.Fatalf("adjacency.Build: %v", err)
	}
	comps, err := components.Find(g)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}

	cps, err := components.Compose(comps, m)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if len(cps) != 1 {
		t.Fatalf("got %d compositions; want 1", len(cps))
	}
	if want := []incidence.PeptideID{"pep1", "pep2"}; !reflect.DeepEqual(cps[0].Peptides, want) {
		t.Errorf("Peptides = %v; want %v", cps[0].Peptides, want)
	}
}

func TestCompose_Errors(t *testing.T) {
	if _, err := components.Compose(nil, nil); !errors.Is(err, components.ErrMatrixNil) {
		t.Errorf("nil matrix: want ErrMatrixNil, got %v", err)
	}

	m, err := incidence.New(
		[]incidence.PeptideID{"pep1"},
		[]incidence.ProteinID{"P1"},
		[][]int{{1}},
	)
	if err != nil {
		t.Fatalf("incidence.New: %v", err)
	}
	// Member absent from the matrix column set.
	stray := []components.Component{{Members: []incidence.ProteinID{"P1", "P9"}}}
	if _, composeErr := components.Compose(stray, m); !errors.Is(composeErr, incidence.ErrUnknownProtein) {
		t.Errorf("stray member: want incidence.ErrUnknownProtein, got %v", composeErr)
	}
}
