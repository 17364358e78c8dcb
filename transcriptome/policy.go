// Policies, sentinel errors and filter options.

package transcriptome

import (
	"errors"
	"fmt"
)

// TranscriptID identifies a transcript in the expressed-transcript evidence.
type TranscriptID string

// Policy selects which unsupported proteins are dropped and whether their
// peptides go with them.
type Policy int

const (
	// PolicyAll drops every unsupported protein and every orphaned peptide.
	PolicyAll Policy = iota
	// PolicySharedOnly spares unsupported proteins identified by at least one
	// specific peptide.
	PolicySharedOnly
	// PolicySharedNoRemove additionally refuses any removal that would orphan
	// a peptide; the output peptide set equals the input one.
	PolicySharedNoRemove
)

// String returns the policy name used in reports and test output.
func (p Policy) String() string {
	switch p {
	case PolicyAll:
		return "all"
	case PolicySharedOnly:
		return "shared_only"
	case PolicySharedNoRemove:
		return "shared_no_remove"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// Sentinel errors for transcriptome filtering.
var (
	// ErrMatrixNil is returned if a nil incidence matrix is passed to Filter.
	ErrMatrixNil = errors.New("transcriptome: incidence matrix is nil")

	// ErrUnknownPolicy is returned for a Policy value outside the enum.
	ErrUnknownPolicy = errors.New("transcriptome: unknown filtering policy")

	// ErrUnknownProtein is returned under WithStrictMapping when a
	// non-contaminant protein is absent from the protein→transcript map.
	ErrUnknownProtein = errors.New("transcriptome: protein absent from transcript map")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("transcriptome: invalid option supplied")
)

// DefaultContaminantTag is the substring marking contaminant protein
// identifiers (cRAP-style accessions).
const DefaultContaminantTag = "CON__"

// DefaultStrictMapping controls whether a missing protein→transcript entry is
// fatal. The default is lenient: a protein without an entry is treated as
// unsupported, like one mapping to a non-expressed transcript.
const DefaultStrictMapping = false

// Option configures Filter via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation when Filter is invoked.
type Option func(*options)

type options struct {
	contamTag string
	strict    bool
	err       error
}

func defaultOptions() options {
	return options{
		contamTag: DefaultContaminantTag,
		strict:    DefaultStrictMapping,
	}
}

// WithContaminantTag overrides the substring marking contaminant protein
// identifiers. An empty tag would mark every protein as contaminant and is
// rejected as an option violation.
func WithContaminantTag(tag string) Option {
	return func(o *options) {
		if tag == "" {
			o.err = fmt.Errorf("%w: contaminant tag must be non-empty", ErrOptionViolation)
			return
		}
		o.contamTag = tag
	}
}

// WithStrictMapping makes a missing protein→transcript entry fatal
// (ErrUnknownProtein) instead of silently treating the protein as
// unsupported. Contaminant-tagged proteins are exempt either way.
func WithStrictMapping() Option {
	return func(o *options) { o.strict = true }
}
