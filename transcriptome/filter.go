package transcriptome

import (
	"fmt"
	"strings"

	"github.com/laurafancello/CCs4prot/incidence"
)

// Filter returns a new matrix with transcriptome-unsupported proteins removed
// under the given policy.
//
// Stages:
//
//	Stage 1: classify every protein — contaminant (always retained),
//	         supported (mapped transcript is expressed) or unsupported.
//	Stage 2: select removal candidates per policy (see package doc).
//	Stage 3: keep every peptide still mapping to ≥ 1 surviving protein
//	         (SHARED_NO_REMOVE keeps the full peptide set instead) and
//	         rebuild the matrix; survivor identifiers and ordering are
//	         preserved verbatim.
//
// expressed and proteinToTranscript may be nil (empty evidence): every
// non-contaminant protein is then unsupported — or, under WithStrictMapping,
// the first non-contaminant lookup fails with ErrUnknownProtein.
func Filter(
	m *incidence.Matrix,
	expressed map[TranscriptID]struct{},
	proteinToTranscript map[incidence.ProteinID]TranscriptID,
	policy Policy,
	opts ...Option,
) (*incidence.Matrix, error) {
	if m == nil {
		return nil, ErrMatrixNil
	}
	switch policy {
	case PolicyAll, PolicySharedOnly, PolicySharedNoRemove:
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownPolicy, policy)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	prots := m.Proteins()
	unsupported := make(map[incidence.ProteinID]bool, len(prots))
	for _, p := range prots {
		if strings.Contains(string(p), o.contamTag) {
			continue // contaminants are never evaluated
		}
		tr, ok := proteinToTranscript[p]
		if !ok {
			if o.strict {
				return nil, fmt.Errorf("%w: %q", ErrUnknownProtein, p)
			}
			unsupported[p] = true
			continue
		}
		if _, expr := expressed[tr]; !expr {
			unsupported[p] = true
		}
	}

	drop, err := removalSet(m, unsupported, policy)
	if err != nil {
		return nil, err
	}

	keepProts := make([]incidence.ProteinID, 0, len(prots)-len(drop))
	for _, p := range prots {
		if !drop[p] {
			keepProts = append(keepProts, p)
		}
	}
	// SHARED_NO_REMOVE never touches the peptide set, zero-degree rows of a
	// raw matrix included; the other policies keep a peptide iff it still
	// maps to at least one surviving protein.
	if policy == PolicySharedNoRemove {
		return m.Select(m.Peptides(), keepProts)
	}
	keepPeps := make([]incidence.PeptideID, 0, m.NbPeptides())
	for _, pep := range m.Peptides() {
		mapped, mapErr := m.ProteinsOf(pep)
		if mapErr != nil {
			return nil, mapErr
		}
		for _, p := range mapped {
			if !drop[p] {
				keepPeps = append(keepPeps, pep)
				break
			}
		}
	}

	return m.Select(keepPeps, keepProts)
}

// removalSet computes the proteins actually removed under policy.
func removalSet(m *incidence.Matrix, unsupported map[incidence.ProteinID]bool, policy Policy) (map[incidence.ProteinID]bool, error) {
	drop := make(map[incidence.ProteinID]bool, len(unsupported))
	if policy == PolicyAll {
		for p := range unsupported {
			drop[p] = true
		}
		return drop, nil
	}

	// SharedOnly eligibility: unsupported and not identified by any peptide
	// specific to it in the input matrix.
	eligible := make(map[incidence.ProteinID]bool, len(unsupported))
	for p := range unsupported {
		hasSpecific, err := hasSpecificPeptide(m, p)
		if err != nil {
			return nil, err
		}
		if !hasSpecific {
			eligible[p] = true
		}
	}
	if policy == PolicySharedOnly {
		return eligible, nil
	}

	// SharedNoRemove: drop an eligible protein only when each of its peptides
	// also maps to a protein that is not itself eligible for removal — so no
	// peptide is ever orphaned.
	for p := range eligible {
		peps, err := m.PeptidesOf(p)
		if err != nil {
			return nil, err
		}
		removable := true
		for _, pep := range peps {
			mapped, mapErr := m.ProteinsOf(pep)
			if mapErr != nil {
				return nil, mapErr
			}
			anchored := false
			for _, q := range mapped {
				if q != p && !eligible[q] {
					anchored = true
					break
				}
			}
			if !anchored {
				removable = false
				break
			}
		}
		if removable {
			drop[p] = true
		}
	}
	return drop, nil
}

// hasSpecificPeptide reports whether p owns a peptide mapping to exactly one
// protein in m.
func hasSpecificPeptide(m *incidence.Matrix, p incidence.ProteinID) (bool, error) {
	peps, err := m.PeptidesOf(p)
	if err != nil {
		return false, err
	}
	for _, pep := range peps {
		deg, degErr := m.PeptideDegree(pep)
		if degErr != nil {
			return false, degErr
		}
		if deg == 1 {
			return true, nil
		}
	}
	return false, nil
}
