// SPDX-License-Identifier: MIT

package shuffled

import "errors"

var (
	// ErrDomainMismatch is returned by New when the indexing length and
	// the strategy's domain size disagree. The pairing would silently
	// skip or repeat elements, so it is rejected at construction.
	ErrDomainMismatch = errors.New("shuffled: indexing length and strategy domain size differ")

	// ErrNilStrategy is returned by New when strategy is nil.
	ErrNilStrategy = errors.New("shuffled: strategy must not be nil")
)
