// SPDX-License-Identifier: MIT

// Package shuffle: functional configuration shared by both strategies.
//
// The only tunable is the cycle-walk retry cap. The default is generous:
// the walk accepts with probability ≥ 1/2 per application, so 256
// applications leave a rejection tail below 2^-256. Raising the cap buys
// certainty for adversarially tiny domains; lowering it below the
// default is only useful in tests that want to provoke ErrUnreachable.
package shuffle

// DefaultMaxWalk is the cycle-walk retry cap applied when no
// WithMaxWalk option is given.
const DefaultMaxWalk = 256

// panicMaxWalkInvalid guards WithMaxWalk against a non-positive cap.
const panicMaxWalkInvalid = "shuffle: WithMaxWalk requires a positive cap"

// Options carries the resolved configuration for a strategy constructor.
type Options struct {
	maxWalk int
}

// Option mutates Options during construction.
type Option func(*Options)

// WithMaxWalk overrides the cycle-walk retry cap. A walk that has not
// landed inside [0, N) after limit applications of the permutation fails
// with ErrUnreachable. Panics if limit < 1, since a walk that may never
// apply the map cannot terminate successfully.
func WithMaxWalk(limit int) Option {
	if limit < 1 {
		panic(panicMaxWalkInvalid)
	}

	return func(o *Options) {
		o.maxWalk = limit
	}
}

// gatherOptions folds user options over the defaults.
func gatherOptions(opts ...Option) Options {
	options := Options{maxWalk: DefaultMaxWalk}
	for _, opt := range opts {
		opt(&options)
	}

	return options
}
