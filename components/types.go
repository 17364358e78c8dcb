// Domain types, sentinel errors and find options.

package components

import (
	"errors"
	"fmt"
	"sort"

	"github.com/laurafancello/CCs4prot/incidence"
)

// Sentinel errors for component finding and composition.
var (
	// ErrGraphNil is returned if a nil adjacency graph is passed to Find.
	ErrGraphNil = errors.New("components: adjacency graph is nil")

	// ErrMatrixNil is returned if a nil incidence matrix is passed to Compose.
	ErrMatrixNil = errors.New("components: incidence matrix is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("components: invalid option supplied")
)

// Component is a maximal set of proteins pairwise reachable through nonzero
// shared-peptide edges. Members are sorted lexicographically.
type Component struct {
	Members []incidence.ProteinID
}

// Size returns the number of member proteins.
func (c Component) Size() int { return len(c.Members) }

// ID returns the stable display identifier of the component: its minimum
// member. Empty for a component with no members.
func (c Component) ID() string {
	if len(c.Members) == 0 {
		return ""
	}
	return string(c.Members[0])
}

// Contains reports whether p is a member, by binary search over the sorted
// member list. O(log n).
func (c Component) Contains(p incidence.ProteinID) bool {
	i := sort.Search(len(c.Members), func(k int) bool { return c.Members[k] >= p })
	return i < len(c.Members) && c.Members[i] == p
}

// Composition pairs a multi-protein component with its peptide set and the
// induced sub-incidence-matrix (those peptides × the member proteins).
type Composition struct {
	Component Component
	Peptides  []incidence.PeptideID
	Submatrix *incidence.Matrix
}

// Algorithm selects the traversal strategy used by Find.
type Algorithm int

const (
	// UnionFind merges vertices through a disjoint-set forest (default).
	UnionFind Algorithm = iota
	// BFS collects components by breadth-first traversal from unseen vertices.
	BFS
)

// DefaultAlgorithm is used when WithAlgorithm is not supplied.
const DefaultAlgorithm = UnionFind

// Option configures Find via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation when Find is invoked.
type Option func(*options)

type options struct {
	algorithm Algorithm
	err       error
}

func defaultOptions() options {
	return options{algorithm: DefaultAlgorithm}
}

// WithAlgorithm selects the component-finding strategy. Both algorithms
// return the identical stable partition; BFS exists for traversal-order
// instrumentation and cross-checking.
func WithAlgorithm(a Algorithm) Option {
	return func(o *options) {
		switch a {
		case UnionFind, BFS:
			o.algorithm = a
		default:
			o.err = fmt.Errorf("%w: unknown algorithm (%d)", ErrOptionViolation, a)
		}
	}
}
