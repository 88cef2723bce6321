package huffman

import (
	"strconv"

	"golang.org/x/exp/slices"
)

// Symbol represents a symbol in a byte-sized alphabet.
type Symbol byte

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(255)

// NumSymbols is the size of the largest alphabet a code can cover.
const NumSymbols = int(MaxSymbol) + 1

// String returns the string representation of this Symbol, quoted as a Go
// character literal.
func (s Symbol) String() string {
	return strconv.QuoteRune(rune(s))
}

// Sequence is an ordered run of Symbols.
type Sequence []Symbol

// ParseSequence converts each byte of str into one Symbol.
func ParseSequence(str string) Sequence {
	seq := make(Sequence, len(str))
	for index := 0; index < len(str); index++ {
		seq[index] = Symbol(str[index])
	}
	return seq
}

// String returns the Sequence as raw bytes.
func (seq Sequence) String() string {
	buf := make([]byte, len(seq))
	for index, symbol := range seq {
		buf[index] = byte(symbol)
	}
	return string(buf)
}

// Equal reports whether seq and other hold the same Symbols in the same order.
func (seq Sequence) Equal(other Sequence) bool {
	return slices.Equal(seq, other)
}
