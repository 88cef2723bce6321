package huffman

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// UnknownCount is the EncodedStream.Count value for a stream whose symbol
// count is not known in advance.  Decode then reads until the bits run out.
const UnknownCount = -1

// EncodedStream is a Huffman-coded Sequence.
type EncodedStream struct {
	// Data holds the coded bits, most significant bit of each byte first.
	// The final byte is padded with 0 bits.
	Data []byte

	// BitLen holds the number of valid bits in Data.
	BitLen uint64

	// Count holds the number of Symbols coded in Data, or UnknownCount.
	Count int
}

// Encode concatenates the code of each Symbol of seq, in order.  It returns
// an error wrapping ErrUnknownSymbol if ct has no code for some Symbol.
func Encode(seq Sequence, ct CodeTable) (EncodedStream, error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)

	var bitLen uint64
	for offset, symbol := range seq {
		hc, found := ct[symbol]
		if !found {
			return EncodedStream{}, fmt.Errorf("%w: %s at offset %d", ErrUnknownSymbol, symbol, offset)
		}
		writeCode(w, hc)
		bitLen += uint64(hc.Size)
	}

	if w.TryError == nil {
		w.TryError = w.Close()
	}
	if w.TryError != nil {
		return EncodedStream{}, fmt.Errorf("failed to pack %d bits: %w", bitLen, w.TryError)
	}

	return EncodedStream{Data: buf.Bytes(), BitLen: bitLen, Count: len(seq)}, nil
}

// Decode walks t once per Symbol, taking the left child on a 0 bit and the
// right child on a 1 bit, and emits the Symbol of each leaf it reaches.
//
// It returns an error wrapping ErrTruncatedStream if the bits end part way
// through a code, or before es.Count Symbols have been read.  It returns an
// error wrapping ErrCorruptStream if bits remain after es.Count Symbols, or if
// a bit cannot belong to any code of t.
//
func Decode(es EncodedStream, t *Tree) (Sequence, error) {
	assert.Assertf(t != nil, "Decode called with a nil *Tree")
	assert.Assertf(es.Count >= UnknownCount, "invalid symbol count %d", es.Count)

	if maxBits := uint64(len(es.Data)) * 8; es.BitLen > maxBits {
		return nil, fmt.Errorf("%w: bit length %d exceeds %d bytes of data", ErrCorruptStream, es.BitLen, len(es.Data))
	}

	var out Sequence
	if es.Count != UnknownCount {
		out = make(Sequence, 0, es.Count)
	}

	r := bitio.NewReader(bytes.NewReader(es.Data))
	var consumed uint64
	for consumed < es.BitLen {
		if len(out) == es.Count {
			return nil, fmt.Errorf("%w: %d trailing bits after %d symbols", ErrCorruptStream, es.BitLen-consumed, es.Count)
		}

		n := t.root
		if n.IsLeaf() {
			// A lone leaf has the code "0".
			if r.TryReadBool() {
				return nil, fmt.Errorf("%w: bit 1 at offset %d matches no code", ErrCorruptStream, consumed)
			}
			consumed++
			out = append(out, n.symbol)
			continue
		}

		start := consumed
		for !n.IsLeaf() {
			if consumed == es.BitLen {
				return nil, fmt.Errorf("%w: code starting at bit %d is cut short after %d symbols", ErrTruncatedStream, start, len(out))
			}
			if r.TryReadBool() {
				n = n.right
			} else {
				n = n.left
			}
			consumed++
		}
		out = append(out, n.symbol)
	}

	if r.TryError != nil {
		return nil, fmt.Errorf("failed to unpack %d bits: %w", es.BitLen, r.TryError)
	}
	if es.Count != UnknownCount && len(out) < es.Count {
		return nil, fmt.Errorf("%w: expected %d symbols, got %d", ErrTruncatedStream, es.Count, len(out))
	}
	return out, nil
}

// ParseBits constructs an EncodedStream from a string of '0' and '1'
// characters, the form produced by EncodedStream.String.  Pass UnknownCount
// if the number of coded Symbols is not known.
func ParseBits(bits string, count int) (EncodedStream, error) {
	if count < UnknownCount {
		return EncodedStream{}, fmt.Errorf("invalid symbol count %d", count)
	}

	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	for index := 0; index < len(bits); index++ {
		switch bits[index] {
		case '0':
			w.TryWriteBool(false)
		case '1':
			w.TryWriteBool(true)
		default:
			return EncodedStream{}, fmt.Errorf("bits: invalid character %q at offset %d", bits[index], index)
		}
	}

	if w.TryError == nil {
		w.TryError = w.Close()
	}
	if w.TryError != nil {
		return EncodedStream{}, fmt.Errorf("failed to pack %d bits: %w", len(bits), w.TryError)
	}

	return EncodedStream{Data: buf.Bytes(), BitLen: uint64(len(bits)), Count: count}, nil
}

// String returns the coded bits as a string of '0' and '1' characters.
func (es EncodedStream) String() string {
	var buf strings.Builder
	buf.Grow(int(es.BitLen))
	for index := uint64(0); index < es.BitLen; index++ {
		b := es.Data[index/8]
		bit := (b >> (7 - index%8)) & 1
		buf.WriteByte('0' + bit)
	}
	return buf.String()
}

func writeCode(w *bitio.Writer, hc Code) {
	for index := byte(0); index < hc.Size; index++ {
		w.TryWriteBool(hc.Bit(index) != 0)
	}
}
