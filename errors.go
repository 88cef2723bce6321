package huffman

import (
	"errors"
)

var (
	// ErrEmptyAlphabet is returned when a code is requested for a table
	// with no symbols in it.
	ErrEmptyAlphabet = errors.New("empty alphabet")

	// ErrUnknownSymbol is returned by Encode when the sequence holds a
	// symbol that the CodeTable has no code for.
	ErrUnknownSymbol = errors.New("unknown symbol")

	// ErrTruncatedStream is returned by Decode when the bits run out
	// before the expected symbols have all been read.
	ErrTruncatedStream = errors.New("truncated stream")

	// ErrCorruptStream is returned by Decode when the bits cannot belong
	// to the code at all: a path that leads nowhere, or trailing bits.
	ErrCorruptStream = errors.New("corrupt stream")

	// ErrNotPrefixFree is returned when one code in a CodeTable is a
	// prefix of another.
	ErrNotPrefixFree = errors.New("code table is not prefix-free")

	// ErrIncompleteCode is returned when a CodeTable leaves part of the
	// code space unused, so that some bit strings decode to nothing.
	ErrIncompleteCode = errors.New("code table is incomplete")

	// ErrBadContainer is returned by ReadContainer for malformed input.
	ErrBadContainer = errors.New("malformed container")
)
