// SPDX-License-Identifier: MIT

// Package indexing: the n-ary Cartesian product over type-erased operands.
package indexing

import "fmt"

// productDomain composes an ordered list of type-erased Indexing instances
// into a single Indexing over their Cartesian product.
type productDomain struct {
	members []Indexing[any]
	size    uint64
	order   DigitOrder
}

// Product returns the Indexing over the Cartesian product of all members,
// decoding a position into one digit per member in a single mixed-radix
// pass, with no nested Pair types. Elements come back as an ordered []any, one
// value per member, trading some static typing for arity flexibility; use
// AsAny to lift a typed Indexing into a member.
//
// Conventions:
//   - LittleEndianDigits (default): members[0] varies fastest.
//   - BigEndianDigits: members[len-1] varies fastest.
//   - An empty member list is the unit domain: Len() = 1 and At(0) yields
//     the empty tuple (the neutral element of the product).
//   - Any zero-size member makes the whole product empty.
//
// Errors:
//   - ErrNilIndexing: some member is nil.
//   - ErrDomainOverflow: the product of all member sizes exceeds uint64.
//
// Complexity: O(n) construction, O(n) + member cost per At, n = len(members).
func Product(members []Indexing[any], opts ...Option) (Indexing[[]any], error) {
	own := make([]Indexing[any], len(members))
	size := uint64(1)
	for i, m := range members {
		if m == nil {
			return nil, fmt.Errorf("%w: Product member %d", ErrNilIndexing, i)
		}
		own[i] = m

		next, ok := mulChecked(size, m.Len())
		if !ok {
			return nil, fmt.Errorf("%w: product through member %d", ErrDomainOverflow, i)
		}
		size = next
	}

	return productDomain{members: own, size: size, order: gatherOptions(opts...).digitOrder}, nil
}

// Len returns the product of all member cardinalities (1 for no members).
func (p productDomain) Len() uint64 { return p.size }

// At decodes pos into one digit per member and resolves each digit.
//
// Steps:
//  1. Bounds check; pos < size implies every member size is non-zero.
//  2. Peel digits off pos with div/mod by each modulus, starting at the
//     fastest-varying member per the configured order.
//  3. Resolve every digit through its member; failures propagate as-is.
func (p productDomain) At(pos uint64) ([]any, error) {
	if pos >= p.size {
		return nil, fmt.Errorf("%w: position %d, size %d", ErrOutOfRange, pos, p.size)
	}

	out := make([]any, len(p.members))
	rest := pos
	for step := range p.members {
		// 2) Fastest-varying member first: forward for little-endian,
		//    backward for big-endian.
		i := step
		if p.order == BigEndianDigits {
			i = len(p.members) - 1 - step
		}

		m := p.members[i]
		digit := rest % m.Len()
		rest /= m.Len()

		// 3) Resolve the digit.
		v, err := m.At(digit)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

// anyDomain lifts Indexing[E] to Indexing[any].
type anyDomain[E any] struct {
	src Indexing[E]
}

// AsAny adapts a typed Indexing into the type-erased form Product consumes.
// The adapter forwards Len and At verbatim; only the element's static type
// is erased.
func AsAny[E any](src Indexing[E]) (Indexing[any], error) {
	if src == nil {
		return nil, fmt.Errorf("%w: AsAny source", ErrNilIndexing)
	}

	return anyDomain[E]{src: src}, nil
}

// Len forwards to the source.
func (a anyDomain[E]) Len() uint64 { return a.src.Len() }

// At forwards to the source, erasing the element type.
func (a anyDomain[E]) At(pos uint64) (any, error) {
	v, err := a.src.At(pos)
	if err != nil {
		return nil, err
	}

	return v, nil
}
