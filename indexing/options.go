// SPDX-License-Identifier: MIT

// Package indexing: functional configuration for the product combinators.
// This file defines:
//   - DigitOrder (which operand is the fastest-varying digit),
//   - documented defaults (constants),
//   - Option / Options (functional options with internal state),
//   - WithDigitOrder constructor with strong validation (panic on nonsense),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, the default order is a
//     documented constant, not an accident of iteration.
//   - Safe by construction: panic only on invalid parameters (programmer
//     error), never on data.
//   - Reusability: Options fields are unexported; public APIs consume
//     ...Option.
package indexing

// DigitOrder selects which operand of a product is the fastest-varying
// digit of the mixed-radix position.
//
//   - LittleEndianDigits: the FIRST operand varies fastest,
//     p = aPos + A.Len()*bPos,  aPos = p mod A.Len(),  bPos = p div A.Len().
//   - BigEndianDigits: the LAST operand varies fastest (the mirror
//     decomposition).
//
// The order is the defining invariant of Cross/Product: it fixes which
// element every position maps to, so two products over the same operands
// with different orders are different bijections over the same set.
type DigitOrder uint8

const (
	// LittleEndianDigits makes the first operand the fastest-varying digit.
	LittleEndianDigits DigitOrder = iota

	// BigEndianDigits makes the last operand the fastest-varying digit.
	BigEndianDigits
)

// DefaultDigitOrder - single source of truth for zero-option behavior.
const DefaultDigitOrder = LittleEndianDigits

// Internal panic message (no magic strings).
const panicDigitOrderInvalid = "indexing: WithDigitOrder: unknown DigitOrder value"

// Options carries the gathered product configuration.
// Fields are unexported; construct via gatherOptions.
type Options struct {
	digitOrder DigitOrder
}

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// WithDigitOrder selects the digit-order convention for a Cross or Product.
// Panics if order is not one of the declared DigitOrder constants.
func WithDigitOrder(order DigitOrder) Option {
	if order != LittleEndianDigits && order != BigEndianDigits {
		panic(panicDigitOrderInvalid)
	}

	return func(o *Options) { o.digitOrder = order }
}

// gatherOptions applies defaults, then every option, in order.
func gatherOptions(opts ...Option) Options {
	o := Options{digitOrder: DefaultDigitOrder}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
