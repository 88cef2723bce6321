package huffman

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// maxBitsPerCode is the longest code a tree over NumSymbols leaves can
// produce: a fully skewed tree is NumSymbols-1 levels deep.
const maxBitsPerCode = NumSymbols - 1

const bitsPerWord = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The least significant bit
	// of Bits[0] is the first bit, bit 64 is the least significant bit of
	// Bits[1], and so on.
	Bits [4]uint64
}

// MakeCode is a convenience function that constructs a Code of at most 64
// bits.  The least significant bit of bits is the first bit.
func MakeCode(size byte, bits uint64) Code {
	assert.Assertf(size <= bitsPerWord, "size %d > %d", size, bitsPerWord)
	if size < bitsPerWord {
		bits &= (uint64(1) << size) - 1
	}
	var hc Code
	hc.Size = size
	hc.Bits[0] = bits
	return hc
}

// ParseCode constructs a Code from its textual form, a string of '0' and '1'
// characters with the first bit leftmost.
func ParseCode(str string) (Code, error) {
	if len(str) > maxBitsPerCode {
		return Code{}, fmt.Errorf("code %q: length %d exceeds max %d", str, len(str), maxBitsPerCode)
	}
	var hc Code
	for index := 0; index < len(str); index++ {
		switch str[index] {
		case '0':
			hc = hc.Append(0)
		case '1':
			hc = hc.Append(1)
		default:
			return Code{}, fmt.Errorf("code %q: invalid character %q at offset %d", str, str[index], index)
		}
	}
	return hc, nil
}

// Bit returns the index'th bit of this Code, counting from 0.
func (hc Code) Bit(index byte) uint {
	assert.Assertf(index < hc.Size, "bit index %d >= size %d", index, hc.Size)
	word := hc.Bits[index/bitsPerWord]
	return uint(word>>(index%bitsPerWord)) & 1
}

// Append returns the Code formed by adding bit to the end of this Code.
func (hc Code) Append(bit uint) Code {
	assert.Assertf(int(hc.Size) < maxBitsPerCode, "code already holds %d bits", hc.Size)
	if bit != 0 {
		hc.Bits[hc.Size/bitsPerWord] |= uint64(1) << (hc.Size % bitsPerWord)
	}
	hc.Size++
	return hc
}

// HasPrefix reports whether prefix is a leading part of this Code.  Every
// Code has itself as a prefix.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	for index := byte(0); index < prefix.Size; index++ {
		if hc.Bit(index) != prefix.Bit(index) {
			return false
		}
	}
	return true
}

// Digits returns the bits of this Code as a string of '0' and '1' characters.
func (hc Code) Digits() string {
	var buf strings.Builder
	buf.Grow(int(hc.Size))
	for index := byte(0); index < hc.Size; index++ {
		buf.WriteByte('0' + byte(hc.Bit(index)))
	}
	return buf.String()
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	return strconv.Quote(hc.Digits())
}

var _ fmt.Stringer = Code{}
