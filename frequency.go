package huffman

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/exp/slices"
)

// FrequencyTable maps each Symbol seen in a Sequence to its number of
// occurrences.  Symbols that never occur are absent, never zero.
type FrequencyTable map[Symbol]uint64

// Tabulate counts the occurrences of each Symbol in seq.  An empty seq yields
// an empty (but non-nil) table.
func Tabulate(seq Sequence) FrequencyTable {
	freqs := make(FrequencyTable)
	for _, symbol := range seq {
		freqs[symbol]++
	}
	return freqs
}

// Total returns the sum of all counts, i.e. the length of the tabulated
// Sequence.
func (freqs FrequencyTable) Total() uint64 {
	var sum uint64
	for _, freq := range freqs {
		sum += freq
	}
	return sum
}

// Symbols returns the Symbols in this table in ascending order.
func (freqs FrequencyTable) Symbols() []Symbol {
	list := make([]Symbol, 0, len(freqs))
	for symbol := range freqs {
		list = append(list, symbol)
	}
	slices.Sort(list)
	return list
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (freqs FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	fmt.Fprintf(&buf, "\tTotal() = %d\n", freqs.Total())
	for _, symbol := range freqs.Symbols() {
		fmt.Fprintf(&buf, "\tCount(%s) = %d\n", symbol, freqs[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
