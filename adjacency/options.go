// SPDX-License-Identifier: MIT
// Package adjacency: sentinel errors and functional build options.

package adjacency

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMatrix is returned when Build receives a nil incidence matrix.
	ErrNilMatrix = errors.New("adjacency: incidence matrix is nil")

	// ErrUnknownProtein is returned when a Graph accessor is queried with a
	// protein identifier absent from its vertex set.
	ErrUnknownProtein = errors.New("adjacency: unknown protein id")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("adjacency: invalid option supplied")
)

// DefaultWorkers is the number of accumulation goroutines when WithWorkers is
// not supplied. Sequential accumulation is the reference behavior; sharding
// only pays off on matrices with many thousands of rows.
const DefaultWorkers = 1

// minRowsPerWorker bounds shard granularity so tiny inputs stay sequential.
const minRowsPerWorker = 256

// Option configures Build via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation when Build is invoked.
type Option func(*options)

type options struct {
	workers int
	err     error
}

func defaultOptions() options {
	return options{workers: DefaultWorkers}
}

// WithWorkers shards per-peptide accumulation over n goroutines, merging the
// partial counts by elementwise sum. The resulting graph is identical for any
// n ≥ 1. n < 1 is an option violation.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.workers = n
	}
}
