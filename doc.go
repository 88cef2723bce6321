// Package huffman builds Huffman prefix codes for small byte alphabets, such
// as the four DNA nucleotides, and uses them to pack symbol sequences into a
// compact bit stream and back.
//
// The usual flow is:
//
//     freqs := huffman.Tabulate(seq)
//     tree, err := huffman.BuildTree(freqs)
//     table := tree.CodeTable()
//     stream, err := huffman.Encode(seq, table)
//     out, err := huffman.Decode(stream, tree)
//
// Equal weights are resolved by insertion order: leaves enter the priority
// queue in ascending symbol order, and each merged node is numbered after
// every node already created.  The lighter (or earlier) of the two nodes
// removed in a merge becomes the left child and is labeled with bit 0.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
