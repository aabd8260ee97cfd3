// SPDX-License-Identifier: MIT

package shuffle

import "errors"

var (
	// ErrEmptyDomain is returned by constructors when domainSize == 0.
	// A permutation over nothing has no meaning.
	ErrEmptyDomain = errors.New("shuffle: domain size must be positive")

	// ErrInvalidSeed is returned by constructors when seed == 0. The
	// all-zero register state is the raw recurrence's fixed point, so it
	// can never drive a permutation.
	ErrInvalidSeed = errors.New("shuffle: seed must be non-zero")

	// ErrOutOfRange is returned by Permute when pos >= DomainSize().
	ErrOutOfRange = errors.New("shuffle: position out of range")

	// ErrUnreachable is returned by Permute when the cycle walk exhausts
	// its retry cap before landing inside [0, N). With a correctly sized
	// register this is astronomically unlikely; seeing it means the walk
	// cap was set far too low for the domain, or the width selection is
	// miswired.
	ErrUnreachable = errors.New("shuffle: cycle walk exceeded its retry cap")
)
