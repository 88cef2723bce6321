package huffman

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/exp/slices"
)

// CodeTable maps each Symbol of an alphabet to its Code.
type CodeTable map[Symbol]Code

// Symbols returns the Symbols in this table in ascending order.
func (ct CodeTable) Symbols() []Symbol {
	list := make([]Symbol, 0, len(ct))
	for symbol := range ct {
		list = append(list, symbol)
	}
	slices.Sort(list)
	return list
}

// MinSize is the bit length of the shortest code, or 0 for an empty table.
func (ct CodeTable) MinSize() byte {
	if len(ct) == 0 {
		return 0
	}
	return slices.Min(ct.sizes())
}

// MaxSize is the bit length of the longest code, or 0 for an empty table.
func (ct CodeTable) MaxSize() byte {
	if len(ct) == 0 {
		return 0
	}
	return slices.Max(ct.sizes())
}

func (ct CodeTable) sizes() []byte {
	out := make([]byte, 0, len(ct))
	for _, hc := range ct {
		out = append(out, hc.Size)
	}
	return out
}

// Cost returns the number of bits needed to encode a Sequence with the given
// frequencies, i.e. the sum of code length × frequency.  Symbols of freqs
// that are missing from this table are not counted.
func (ct CodeTable) Cost(freqs FrequencyTable) uint64 {
	var sum uint64
	for symbol, freq := range freqs {
		if hc, found := ct[symbol]; found {
			sum += uint64(hc.Size) * freq
		}
	}
	return sum
}

// Validate checks that no code in this table is empty or is a prefix of
// another code.
func (ct CodeTable) Validate() error {
	symbols := ct.Symbols()
	for i, a := range symbols {
		if ct[a].Size == 0 {
			return fmt.Errorf("%w: symbol %s has an empty code", ErrNotPrefixFree, a)
		}
		for _, b := range symbols[i+1:] {
			ca, cb := ct[a], ct[b]
			if ca.HasPrefix(cb) || cb.HasPrefix(ca) {
				return fmt.Errorf("%w: codes %s for %s and %s for %s", ErrNotPrefixFree, ca, a, cb, b)
			}
		}
	}
	return nil
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (ct CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.MaxSize())
	for _, symbol := range ct.Symbols() {
		fmt.Fprintf(&buf, "\tEncode(%s) = %s\n", symbol, ct[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// NewTreeFromCodeTable rebuilds the decoding tree for a CodeTable, such as
// one read back by ReadContainer.
//
// The table must be prefix-free and complete: every internal node of the
// rebuilt tree needs two children.  The one exception is a table with a
// single Symbol, which must have the code "0".
//
func NewTreeFromCodeTable(ct CodeTable) (*Tree, error) {
	if len(ct) == 0 {
		return nil, ErrEmptyAlphabet
	}

	symbols := ct.Symbols()

	if len(symbols) == 1 {
		symbol := symbols[0]
		if hc := ct[symbol]; hc != MakeCode(1, 0) {
			return nil, fmt.Errorf("%w: lone symbol %s has code %s, expected \"0\"", ErrIncompleteCode, symbol, hc)
		}
		return &Tree{root: &Node{symbol: symbol}, numLeaves: 1}, nil
	}

	if err := ct.Validate(); err != nil {
		return nil, err
	}

	// With no code a prefix of another, insertion never lands on a leaf
	// and never revisits a slot.  A full binary tree with n leaves has
	// n-1 internal nodes, so any shortfall means a node with one child.
	root := &Node{}
	numInternal := 1
	for _, symbol := range symbols {
		hc := ct[symbol]
		n := root
		for index := byte(0); index < hc.Size; index++ {
			child := &n.left
			if hc.Bit(index) != 0 {
				child = &n.right
			}
			if *child == nil {
				*child = &Node{}
				if index+1 < hc.Size {
					numInternal++
				}
			}
			n = *child
		}
		n.symbol = symbol
	}

	if numInternal != len(symbols)-1 {
		return nil, fmt.Errorf("%w: %d symbols do not fill the code space", ErrIncompleteCode, len(symbols))
	}
	return &Tree{root: root, numLeaves: len(symbols)}, nil
}
