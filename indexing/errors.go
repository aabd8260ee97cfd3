package indexing

import "errors"

var (
	// ErrOutOfRange indicates a position at or beyond Len().
	ErrOutOfRange = errors.New("indexing: position out of range")
	// ErrDomainOverflow indicates a composed cardinality exceeds uint64.
	ErrDomainOverflow = errors.New("indexing: domain size overflows uint64")
	// ErrNilIndexing indicates a nil Indexing operand.
	ErrNilIndexing = errors.New("indexing: nil Indexing")
	// ErrNilTransform indicates a nil element-transform function.
	ErrNilTransform = errors.New("indexing: nil transform function")
	// ErrNilVisitor indicates a nil visitor callback.
	ErrNilVisitor = errors.New("indexing: nil visitor function")
	// ErrInvalidInterval indicates a Range whose end precedes its start.
	ErrInvalidInterval = errors.New("indexing: interval end precedes start")
)
