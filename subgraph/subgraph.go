// Package subgraph extracts the bipartite peptide–protein subgraph of one
// protein's connected component, in the shape a rendering layer consumes:
// an edge list plus per-vertex role tags. Rendering itself is out of scope.
package subgraph

import (
	"errors"
	"fmt"
	"strings"

	"github.com/laurafancello/CCs4prot/components"
	"github.com/laurafancello/CCs4prot/incidence"
)

// Sentinel errors for extraction.
var (
	// ErrProteinNotFound is returned when the queried protein belongs to no
	// composed component — it is a single-protein CC or unknown entirely;
	// the caller decides which story to tell.
	ErrProteinNotFound = errors.New("subgraph: protein not found in any component")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("subgraph: invalid option supplied")
)

// Role tags a vertex of the bipartite subgraph for display.
type Role int

const (
	// RolePeptide marks a peptide vertex.
	RolePeptide Role = iota
	// RoleProtein marks a regular protein vertex.
	RoleProtein
	// RoleContaminant marks a contaminant-tagged protein vertex.
	RoleContaminant
)

// String returns the display name of the role.
func (r Role) String() string {
	switch r {
	case RolePeptide:
		return "peptide"
	case RoleProtein:
		return "protein"
	case RoleContaminant:
		return "contaminant"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// Edge is one peptide→protein incidence of the extracted subgraph.
type Edge struct {
	Peptide incidence.PeptideID
	Protein incidence.ProteinID
}

// Bipartite is the renderable view of one component: its stable identifier,
// the induced edge list, and a role per vertex identifier.
type Bipartite struct {
	// ComponentID is the stable display identifier (minimum member protein).
	ComponentID string

	// Edges lists every (peptide,protein) incidence inside the component,
	// peptides in submatrix row order, proteins lexicographic within a row.
	Edges []Edge

	// Roles maps each vertex identifier to its display role.
	Roles map[string]Role
}

// DefaultContaminantTag mirrors the transcriptome filtering convention for
// tagging contaminant accessions.
const DefaultContaminantTag = "CON__"

// Option configures Extract via functional arguments.
type Option func(*options)

type options struct {
	contamTag string
	err       error
}

func defaultOptions() options {
	return options{contamTag: DefaultContaminantTag}
}

// WithContaminantTag overrides the substring marking contaminant proteins in
// the role tags. Empty tags are rejected.
func WithContaminantTag(tag string) Option {
	return func(o *options) {
		if tag == "" {
			o.err = fmt.Errorf("%w: contaminant tag must be non-empty", ErrOptionViolation)
			return
		}
		o.contamTag = tag
	}
}

// Extract locates the composed component containing protein and returns its
// bipartite subgraph. Compositions carry the induced submatrices already, so
// extraction is a lookup plus an edge enumeration.
//
// Fails with ErrProteinNotFound when protein is in none of the compositions
// (single-protein CCs are not composed; distinguish that case upstream via
// the full protein list if needed).
func Extract(protein incidence.ProteinID, compositions []components.Composition, opts ...Option) (*Bipartite, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	for _, cp := range compositions {
		if !cp.Component.Contains(protein) {
			continue
		}
		return assemble(cp, o.contamTag)
	}
	return nil, fmt.Errorf("%w: %q", ErrProteinNotFound, protein)
}

// assemble flattens one composition into the renderable edge list + roles.
func assemble(cp components.Composition, contamTag string) (*Bipartite, error) {
	b := &Bipartite{
		ComponentID: cp.Component.ID(),
		Roles:       make(map[string]Role, len(cp.Peptides)+cp.Component.Size()),
	}
	for _, p := range cp.Component.Members {
		if strings.Contains(string(p), contamTag) {
			b.Roles[string(p)] = RoleContaminant
		} else {
			b.Roles[string(p)] = RoleProtein
		}
	}
	for _, pep := range cp.Peptides {
		b.Roles[string(pep)] = RolePeptide
		mapped, err := cp.Submatrix.ProteinsOf(pep)
		if err != nil {
			return nil, err
		}
		for _, p := range mapped {
			b.Edges = append(b.Edges, Edge{Peptide: pep, Protein: p})
		}
	}
	return b, nil
}
