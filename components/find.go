package components

import (
	"fmt"
	"sort"

	"github.com/gammazero/deque"

	"github.com/laurafancello/CCs4prot/adjacency"
	"github.com/laurafancello/CCs4prot/incidence"
)

// Find partitions the vertex set of g into connected components: an edge
// exists between two proteins iff they share at least one peptide. The
// partition is exhaustive and disjoint — every vertex of g, isolated ones
// included, appears in exactly one returned component.
//
// Output is stable: members sorted lexicographically, components sorted by
// minimum member. An empty graph yields an empty slice.
//
// Time: near O(V+E) α(V) for union-find, O(V+E) for BFS.
func Find(g *adjacency.Graph, opts ...Option) ([]Component, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	prots := g.Proteins()
	var groups map[int][]incidence.ProteinID
	var err error
	switch o.algorithm {
	case BFS:
		groups, err = bfsGroups(g, prots)
	default:
		groups, err = unionGroups(g, prots)
	}
	if err != nil {
		return nil, err
	}

	comps := make([]Component, 0, len(groups))
	for _, members := range groups {
		sort.Slice(members, func(a, b int) bool { return members[a] < members[b] })
		comps = append(comps, Component{Members: members})
	}
	sort.Slice(comps, func(a, b int) bool {
		return comps[a].Members[0] < comps[b].Members[0]
	})
	return comps, nil
}

// unionGroups merges every edge's endpoints in a disjoint-set forest and
// buckets vertices by root.
func unionGroups(g *adjacency.Graph, prots []incidence.ProteinID) (map[int][]incidence.ProteinID, error) {
	index := make(map[incidence.ProteinID]int, len(prots))
	for i, p := range prots {
		index[p] = i
	}
	d := newDSU(len(prots))
	for i, p := range prots {
		nbrs, err := g.NeighborsOf(p)
		if err != nil {
			return nil, fmt.Errorf("components: %w", err)
		}
		for _, q := range nbrs {
			d.union(i, index[q])
		}
	}

	groups := make(map[int][]incidence.ProteinID)
	for i, p := range prots {
		root := d.find(i)
		groups[root] = append(groups[root], p)
	}
	return groups, nil
}

// bfsGroups sweeps the vertex set, flooding each unseen vertex's component
// through a FIFO frontier.
func bfsGroups(g *adjacency.Graph, prots []incidence.ProteinID) (map[int][]incidence.ProteinID, error) {
	seen := make(map[incidence.ProteinID]bool, len(prots))
	groups := make(map[int][]incidence.ProteinID)

	for i, start := range prots {
		if seen[start] {
			continue
		}
		seen[start] = true
		var frontier deque.Deque[incidence.ProteinID]
		frontier.PushBack(start)
		var members []incidence.ProteinID

		for frontier.Len() > 0 {
			u := frontier.PopFront()
			members = append(members, u)
			nbrs, err := g.NeighborsOf(u)
			if err != nil {
				return nil, fmt.Errorf("components: %w", err)
			}
			for _, v := range nbrs {
				if !seen[v] {
					seen[v] = true
					frontier.PushBack(v)
				}
			}
		}
		groups[i] = members
	}
	return groups, nil
}
