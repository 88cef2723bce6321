package huffman

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/icza/bitio"
)

// unknownCountMark stands in for UnknownCount in the container header.
const unknownCountMark = math.MaxUint32

// WriteContainer writes ct and es to w as one self-describing binary blob.
// All fields are packed most significant bit first:
//
//     32 bits   symbol count (0xffffffff for UnknownCount)
//     16 bits   number of code table entries
//     per entry, in ascending Symbol order:
//        8 bits   symbol
//        8 bits   code length n
//        n bits   code, first bit first
//     0-7 bits  zero padding to a byte boundary
//     8 bits    number of padding bits in the final payload byte
//     ...       payload bytes
//
func WriteContainer(w io.Writer, ct CodeTable, es EncodedStream) (int64, error) {
	if es.Count < UnknownCount || int64(es.Count) >= unknownCountMark {
		return 0, fmt.Errorf("symbol count %d cannot be stored in a container", es.Count)
	}
	payloadLen := (es.BitLen + 7) / 8
	if payloadLen > uint64(len(es.Data)) {
		return 0, fmt.Errorf("%w: bit length %d exceeds %d bytes of data", ErrCorruptStream, es.BitLen, len(es.Data))
	}

	count := uint64(unknownCountMark)
	if es.Count != UnknownCount {
		count = uint64(es.Count)
	}

	var buf bytes.Buffer
	bw := bitio.NewWriter(&buf)
	bw.TryWriteBits(count, 32)
	bw.TryWriteBits(uint64(len(ct)), 16)
	for _, symbol := range ct.Symbols() {
		hc := ct[symbol]
		bw.TryWriteByte(byte(symbol))
		bw.TryWriteByte(hc.Size)
		writeCode(bw, hc)
	}
	bw.TryAlign()
	bw.TryWriteByte(byte(payloadLen*8 - es.BitLen))
	bw.TryWrite(es.Data[:payloadLen])
	if bw.TryError == nil {
		bw.TryError = bw.Close()
	}
	if bw.TryError != nil {
		return 0, fmt.Errorf("failed to pack container: %w", bw.TryError)
	}

	log.Debugf("container: %d entries, %d symbols, %d payload bytes", len(ct), es.Count, payloadLen)
	return buf.WriteTo(w)
}

// ReadContainer reads a blob written by WriteContainer.  Malformed input is
// reported with an error wrapping ErrBadContainer.
func ReadContainer(r io.Reader) (CodeTable, EncodedStream, error) {
	br := bitio.NewReader(r)

	count := br.TryReadBits(32)
	numEntries := int(br.TryReadBits(16))
	if br.TryError != nil {
		return nil, EncodedStream{}, fmt.Errorf("%w: reading header: %w", ErrBadContainer, br.TryError)
	}
	if numEntries > NumSymbols {
		return nil, EncodedStream{}, fmt.Errorf("%w: %d code table entries, max %d", ErrBadContainer, numEntries, NumSymbols)
	}

	ct := make(CodeTable, numEntries)
	for index := 0; index < numEntries; index++ {
		symbol := Symbol(br.TryReadByte())
		size := br.TryReadByte()
		var hc Code
		for bit := byte(0); bit < size; bit++ {
			if br.TryReadBool() {
				hc = hc.Append(1)
			} else {
				hc = hc.Append(0)
			}
		}
		if br.TryError != nil {
			return nil, EncodedStream{}, fmt.Errorf("%w: reading code table entry %d: %w", ErrBadContainer, index, br.TryError)
		}
		if size == 0 {
			return nil, EncodedStream{}, fmt.Errorf("%w: symbol %s has an empty code", ErrBadContainer, symbol)
		}
		if _, found := ct[symbol]; found {
			return nil, EncodedStream{}, fmt.Errorf("%w: duplicate entry for symbol %s", ErrBadContainer, symbol)
		}
		ct[symbol] = hc
	}

	br.Align()
	pad := br.TryReadByte()
	if br.TryError != nil {
		return nil, EncodedStream{}, fmt.Errorf("%w: reading padding length: %w", ErrBadContainer, br.TryError)
	}

	data, err := io.ReadAll(br)
	if err != nil {
		return nil, EncodedStream{}, fmt.Errorf("%w: reading payload: %w", ErrBadContainer, err)
	}
	if pad > 7 || (pad != 0 && len(data) == 0) {
		return nil, EncodedStream{}, fmt.Errorf("%w: %d padding bits for %d payload bytes", ErrBadContainer, pad, len(data))
	}

	es := EncodedStream{
		Data:   data,
		BitLen: uint64(len(data))*8 - uint64(pad),
		Count:  UnknownCount,
	}
	if count != unknownCountMark {
		es.Count = int(count)
	}
	return ct, es, nil
}
