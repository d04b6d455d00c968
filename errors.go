package prefixcode

import "errors"

var (
	// ErrUnknownSymbol is returned by Pack when the input contains a
	// symbol that has no entry in the code table.
	ErrUnknownSymbol = errors.New("prefixcode: symbol not in code table")

	// ErrCorruptPayload is returned by Unpack when the bit stream does
	// not end exactly on a code boundary.
	ErrCorruptPayload = errors.New("prefixcode: corrupt payload")

	// ErrMalformedTree is returned when a prefix tree violates the
	// full-binary-tree invariant, i.e. some node has exactly one child.
	ErrMalformedTree = errors.New("prefixcode: malformed prefix tree")
)
