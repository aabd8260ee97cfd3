package lfsr

import "errors"

var (
	// ErrWidthOutOfRange indicates a register width outside 1..64.
	ErrWidthOutOfRange = errors.New("lfsr: width out of range [1..64]")
	// ErrUnreachableState indicates StepsBetween exhausted its limit.
	ErrUnreachableState = errors.New("lfsr: state not reached within step limit")
)
