package components_test

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/laurafancello/CCs4prot/adjacency"
	"github.com/laurafancello/CCs4prot/components"
	"github.com/laurafancello/CCs4prot/incidence"
)

// buildGraph wires a matrix through adjacency.Build, failing the test on error.
func buildGraph(t *testing.T, peps []incidence.PeptideID, prots []incidence.ProteinID, cells [][]int) *adjacency.Graph {
	t.Helper()
	m, err := incidence.New(peps, prots, cells)
	if err != nil {
		t.Fatalf("incidence.New: %v", err)
	}
	g, err := adjacency.Build(m)
	if err != nil {
		t.Fatalf("adjacency.Build: %v", err)
	}
	return g
}

// TestFind_Errors verifies nil-graph and bad-option rejection.
func TestFind_Errors(t *testing.T) {
	if _, err := components.Find(nil); !errors.Is(err, components.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := buildGraph(t,
		[]incidence.PeptideID{"pep1"},
		[]incidence.ProteinID{"P1"},
		[][]int{{1}},
	)
	if _, err := components.Find(g, components.WithAlgorithm(components.Algorithm(42))); !errors.Is(err, components.ErrOptionViolation) {
		t.Errorf("bad algorithm: want ErrOptionViolation, got %v", err)
	}
}

// TestFind_ChainScenario: pep1→{P1,P2}, pep2→{P2,P3}, pep3→{P3} produces one
// multi-protein CC {P1,P2,P3} through chain connectivity.
func TestFind_ChainScenario(t *testing.T) {
	g := buildGraph(t,
		[]incidence.PeptideID{"pep1", "pep2", "pep3"},
		[]incidence.ProteinID{"P1", "P2", "P3"},
		[][]int{
			{1, 1, 0},
			{0, 1, 1},
			{0, 0, 1},
		},
	)
	comps, err := components.Find(g)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	want := []components.Component{
		{Members: []incidence.ProteinID{"P1", "P2", "P3"}},
	}
	if !reflect.DeepEqual(comps, want) {
		t.Errorf("components = %v; want %v", comps, want)
	}
	if id := comps[0].ID(); id != "P1" {
		t.Errorf("ID = %q; want P1", id)
	}
}

// TestFind_IsolatedVerticesBecomeSingletons covers the unreduced case where
// proteins without shared peptides form single-protein components.
func TestFind_IsolatedVerticesBecomeSingletons(t *testing.T) {
	g := buildGraph(t,
		[]incidence.PeptideID{"pep1", "pep2", "pep3"},
		[]incidence.ProteinID{"P1", "P2", "P3", "P4"},
		[][]int{
			{1, 1, 0, 0},
			{0, 0, 1, 0},
			{0, 0, 0, 1},
		},
	)
	comps, err := components.Find(g)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	want := []components.Component{
		{Members: []incidence.ProteinID{"P1", "P2"}},
		{Members: []incidence.ProteinID{"P3"}},
		{Members: []incidence.ProteinID{"P4"}},
	}
	if !reflect.DeepEqual(comps, want) {
		t.Errorf("components = %v; want %v", comps, want)
	}
}

// TestFind_AlgorithmsAgree checks that union-find and BFS produce the exact
// same stable partition on a graph with several mixed-size components.
func TestFind_AlgorithmsAgree(t *testing.T) {
	peps := make([]incidence.PeptideID, 0, 64)
	cells := make([][]int, 0, 64)
	const nProt = 30
	for i := 0; i < 64; i++ {
		peps = append(peps, incidence.PeptideID(fmt.Sprintf("pep%02d", i)))
		row := make([]int, nProt)
		row[(i*3)%nProt] = 1
		if i%2 == 0 {
			row[(i*3+7)%nProt] = 1
		}
		cells = append(cells, row)
	}
	prots := make([]incidence.ProteinID, nProt)
	for j := range prots {
		prots[j] = incidence.ProteinID(fmt.Sprintf("ENSP%03d", j))
	}
	g := buildGraph(t, peps, prots, cells)

	uf, err := components.Find(g, components.WithAlgorithm(components.UnionFind))
	if err != nil {
		t.Fatalf("union-find: %v", err)
	}
	bfs, err := components.Find(g, components.WithAlgorithm(components.BFS))
	if err != nil {
		t.Fatalf("bfs: %v", err)
	}
	if !reflect.DeepEqual(uf, bfs) {
		t.Errorf("partitions differ:\n union-find: %v\n bfs: %v", uf, bfs)
	}
}

// TestFind_PartitionCompleteAndDisjoint asserts the partition property: the
// union of all components equals the vertex set and no protein repeats.
func TestFind_PartitionCompleteAndDisjoint(t *testing.T) {
	g := buildGraph(t,
		[]incidence.PeptideID{"pep1", "pep2", "pep3", "pep4"},
		[]incidence.ProteinID{"P1", "P2", "P3", "P4", "P5"},
		[][]int{
			{1, 1, 0, 0, 0},
			{0, 1, 1, 0, 0},
			{0, 0, 0, 1, 1},
			{0, 0, 0, 0, 1},
		},
	)
	for _, alg := range []components.Algorithm{components.UnionFind, components.BFS} {
		comps, err := components.Find(g, components.WithAlgorithm(alg))
		if err != nil {
			t.Fatalf("Find(alg=%d): %v", alg, err)
		}
		seen := make(map[incidence.ProteinID]int)
		total := 0
		for _, c := range comps {
			total += c.Size()
			for _, p := range c.Members {
				seen[p]++
			}
		}
		if total != g.Order() {
			t.Errorf("alg=%d: covered %d vertices; want %d", alg, total, g.Order())
		}
		for p, n := range seen {
			if n != 1 {
				t.Errorf("alg=%d: protein %s in %d components; want 1", alg, p, n)
			}
		}
	}
}

// TestFind_EmptyGraph verifies the empty-reduction case yields zero components.
func TestFind_EmptyGraph(t *testing.T) {
	m, err := incidence.New(nil, nil, nil)
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
	if len(comps) != 0 {
		t.Errorf("got %d components; want 0", len(comps))
	}
}

func TestComponent_Contains(t *testing.T) {
	c := components.Component{Members: []incidence.ProteinID{"P1", "P3", "P9"}}
	for _, p := range c.Members {
		if !c.Contains(p) {
			t.Errorf("Contains(%s) = false; want true", p)
		}
	}
	if c.Contains("P2") {
		t.Error("Contains(P2) = true; want false")
	}
}
