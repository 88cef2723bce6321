package huffman_test

import (
	"fmt"
	"os"

	huffman "github.com/chronos-tachyon/seqhuff"
)

func Example() {
	seq := huffman.ParseSequence("AAACGT")

	freqs := huffman.Tabulate(seq)
	tree, err := huffman.BuildTree(freqs)
	if err != nil {
		panic(err)
	}
	table := tree.CodeTable()
	_, _ = table.Dump(os.Stdout)

	stream, err := huffman.Encode(seq, table)
	if err != nil {
		panic(err)
	}
	fmt.Println(stream)

	out, err := huffman.Decode(stream, tree)
	if err != nil {
		panic(err)
	}
	fmt.Println(out)

	// Output:
	// CodeTable{
	// 	MinSize() = 1
	// 	MaxSize() = 3
	// 	Encode('A') = "0"
	// 	Encode('C') = "110"
	// 	Encode('G') = "111"
	// 	Encode('T') = "10"
	// }
	// 00011011110
	// AAACGT
}
