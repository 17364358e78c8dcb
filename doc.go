// Package ccs4prot quantifies protein identification ambiguity in shotgun
// proteomics by turning a peptide-to-protein mapping into a graph of
// shared-peptide connections and partitioning it into connected components
// (CCs) — deliberately without protein inference.
//
// 🚀 What is CCs4prot?
//
//	An in-memory pipeline over immutable structures, one subpackage per step:
//		• incidence/     — peptide×protein binary matrix with named rows/columns + reduction
//		• adjacency/     — protein×protein shared-peptide counts (sparse accumulation)
//		• components/    — connected components (union-find or BFS) + per-CC composition
//		• ccstats/       — CC-size distribution, single/multi counts, peptide specificity
//		• transcriptome/ — evidence-based protein filtering under three policies
//		• subgraph/      — bipartite subgraph of one protein's CC, for rendering layers
//		• loader/        — tab-delimited matrix / ID-list / transcript-evidence files
//
// ✨ Why CCs4prot?
//
//   - Ambiguity first – works at the CC level, never picks a representative protein
//   - Deterministic – stable lexicographic orderings everywhere, reproducible runs
//   - Pure transformations – every step returns a new matrix/graph, no shared mutable state
//
// Typical flow:
//
//	raw matrix ──reduce──► adjacency ──find──► components ──► stats / compositions
//	raw matrix + transcript evidence ──filter──► new matrix ──► second pass
//
// Quick sketch (3 peptides × 3 proteins, chain connectivity):
//
//	        P1   P2   P3
//	pep1     1    1    0
//	pep2     0    1    1
//	pep3     0    0    1
//
// pep1 and pep2 are shared, pep3 is specific to P3; the shared peptides chain
// {P1,P2,P3} into a single multi-protein CC.
package ccs4prot
