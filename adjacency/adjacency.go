// SPDX-License-Identifier: MIT
// Package adjacency — sparse shared-peptide accumulation.
//
// Build stages:
//   Stage 1 (Validate): nil-guard the matrix, resolve options.
//   Stage 2 (Index): vertex set = matrix columns, in matrix order.
//   Stage 3 (Accumulate): per peptide, bump every unordered protein pair;
//           optionally sharded over peptide batches and merged by sum.
//
// Complexity: O(Σ_p k_p²) pair bumps for k_p proteins per peptide,
// plus O(k_p log k_p) per row for identifier resolution.

package adjacency

import (
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/laurafancello/CCs4prot/incidence"
)

// Graph is the symmetric protein×protein matrix of shared-peptide counts,
// stored sparsely (absent cell = zero shared peptides). The diagonal is not
// stored: a protein's overlap with itself is meaningless here. Immutable
// once Build returns.
type Graph struct {
	proteins []incidence.ProteinID
	index    map[incidence.ProteinID]int
	weights  []map[int]int // weights[i][j] = peptides shared by proteins i and j
}

// Build derives the shared-peptide graph of m. The vertex set is exactly the
// column set of m, in matrix order, including proteins with zero shared
// peptides (isolated vertices). An empty matrix yields an empty graph.
func Build(m *incidence.Matrix, opts ...Option) (*Graph, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	prots := m.Proteins()
	g := &Graph{
		proteins: prots,
		index:    make(map[incidence.ProteinID]int, len(prots)),
		weights:  make([]map[int]int, len(prots)),
	}
	for j, p := range prots {
		g.index[p] = j
	}

	peps := m.Peptides()
	workers := o.workers
	if limit := len(peps) / minRowsPerWorker; workers > limit {
		workers = limit
	}
	if workers < 1 {
		workers = 1
	}

	if workers == 1 {
		if err := g.accumulate(m, peps, g.weights); err != nil {
			return nil, err
		}
		return g, nil
	}

	// Shard contiguous peptide batches; each worker owns a private partial
	// count table, merged by elementwise sum afterwards. Accumulation is
	// commutative and associative, so the result is worker-count independent.
	partials := make([][]map[int]int, workers)
	var eg errgroup.Group
	chunk := (len(peps) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		w := w
		lo := w * chunk
		hi := lo + chunk
		if hi > len(peps) {
			hi = len(peps)
		}
		if lo >= hi {
			continue
		}
		eg.Go(func() error {
			partials[w] = make([]map[int]int, len(prots))
			return g.accumulate(m, peps[lo:hi], partials[w])
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	for _, part := range partials {
		for i, row := range part {
			for j, n := range row {
				if g.weights[i] == nil {
					g.weights[i] = make(map[int]int)
				}
				g.weights[i][j] += n
			}
		}
	}

	return g, nil
}

// accumulate bumps every unordered protein pair of each given peptide row
// into acc (both triangle halves, keeping the table symmetric).
func (g *Graph) accumulate(m *incidence.Matrix, peps []incidence.PeptideID, acc []map[int]int) error {
	for _, pep := range peps {
		mapped, err := m.ProteinsOf(pep)
		if err != nil {
			return fmt.Errorf("adjacency: %w", err)
		}
		idx := make([]int, len(mapped))
		for k, p := range mapped {
			idx[k] = g.index[p]
		}
		for a := 0; a < len(idx); a++ {
			for b := a + 1; b < len(idx); b++ {
				bump(acc, idx[a], idx[b])
				bump(acc, idx[b], idx[a])
			}
		}
	}
	return nil
}

func bump(acc []map[int]int, i, j int) {
	if acc[i] == nil {
		acc[i] = make(map[int]int)
	}
	acc[i][j]++
}

// Order returns the number of vertices (proteins). O(1).
func (g *Graph) Order() int { return len(g.proteins) }

// Proteins returns a copy of the vertex set in matrix column order.
func (g *Graph) Proteins() []incidence.ProteinID {
	return append([]incidence.ProteinID(nil), g.proteins...)
}

// HasProtein reports whether p is a vertex of the graph. O(1).
func (g *Graph) HasProtein(p incidence.ProteinID) bool {
	_, ok := g.index[p]
	return ok
}

// SharedPeptides returns the number of peptides shared by proteins a and b.
// Zero means no edge. The diagonal is defined as zero (a == b is not an
// overlap). Unknown identifiers fail with ErrUnknownProtein.
func (g *Graph) SharedPeptides(a, b incidence.ProteinID) (int, error) {
	i, ok := g.index[a]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownProtein, a)
	}
	j, ok := g.index[b]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownProtein, b)
	}
	if i == j {
		return 0, nil
	}
	return g.weights[i][j], nil
}

// NeighborsOf returns every protein sharing ≥ 1 peptide with p, sorted
// lexicographically. An isolated vertex has no neighbors.
func (g *Graph) NeighborsOf(p incidence.ProteinID) ([]incidence.ProteinID, error) {
	i, ok := g.index[p]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProtein, p)
	}
	out := make([]incidence.ProteinID, 0, len(g.weights[i]))
	for j := range g.weights[i] {
		out = append(out, g.proteins[j])
	}
	sort.Slice(out, func(a, b int) bool { return out[a] < out[b] })
	return out, nil
}

// EdgeCount returns the number of unordered protein pairs with ≥ 1 shared
// peptide.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, row := range g.weights {
		total += len(row)
	}
	return total / 2
}
