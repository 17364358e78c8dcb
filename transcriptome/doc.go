// Package transcriptome removes proteins unsupported by transcriptome
// evidence from an incidence matrix, producing a new matrix for a second
// ambiguity pass.
//
// A protein is unsupported when its mapped transcript is absent from the
// expressed-transcript set. Contaminant-tagged proteins are never evaluated
// and always retained. Proteins missing from the protein→transcript map are
// treated as unsupported by default; WithStrictMapping turns that lookup
// failure into ErrUnknownProtein instead.
//
// Policies:
//
//   - PolicyAll: drop every unsupported protein, then drop every peptide
//     left mapping to zero proteins.
//   - PolicySharedOnly: keep an unsupported protein when at least one
//     peptide is specific to it in the input matrix; peptides exclusively
//     mapping to dropped proteins are removed.
//   - PolicySharedNoRemove: as PolicySharedOnly, but a protein is only
//     dropped when none of its peptides would be orphaned — every one of
//     them must also map to a protein that is not slated for removal. No
//     peptide is ever removed under this policy.
//
// The output matrix keeps survivor identifiers verbatim, in the input
// matrix's row/column order.
//
// Errors:
//
//   - ErrMatrixNil: a nil incidence matrix was supplied.
//   - ErrUnknownPolicy: the policy value is not one of the three above.
//   - ErrUnknownProtein: strict mode only; a non-contaminant protein has no
//     entry in the protein→transcript map.
//   - ErrOptionViolation: an invalid option value (e.g. empty contaminant tag).
package transcriptome
