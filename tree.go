package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"math"

	"github.com/chronos-tachyon/assert"
)

// Node is one node of a Huffman tree: either a leaf, which carries a Symbol,
// or an internal node, which carries exactly two children.
type Node struct {
	symbol Symbol
	weight uint64
	left   *Node
	right  *Node
}

// IsLeaf reports whether this node is a leaf.
func (n *Node) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// Symbol returns the Symbol carried by a leaf.  It panics for internal nodes.
func (n *Node) Symbol() Symbol {
	assert.Assertf(n.IsLeaf(), "Symbol called on an internal node")
	return n.symbol
}

// Weight returns the summed frequency of every leaf under this node.  Trees
// rebuilt by NewTreeFromCodeTable have no frequencies, so their weights are
// all 0.
func (n *Node) Weight() uint64 {
	return n.weight
}

// Left returns the child reached by a 0 bit, or nil for a leaf.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the child reached by a 1 bit, or nil for a leaf.
func (n *Node) Right() *Node {
	return n.right
}

// Tree is a Huffman code tree.  Codes are root-to-leaf paths, with 0 for
// each step to the left and 1 for each step to the right.
//
// A tree over a single Symbol is a lone leaf.  That Symbol is assigned the
// one-bit code "0".
//
type Tree struct {
	root      *Node
	numLeaves int
}

// BuildTree constructs the Huffman tree for the given frequencies by
// repeatedly merging the two lightest nodes.  It returns ErrEmptyAlphabet if
// freqs is empty.
//
// Ties between equal weights go to the node that entered the queue first.
// Leaves enter in ascending Symbol order, and each merged node enters after
// every node created before it.  Of the two nodes removed for a merge, the
// first becomes the left child and the second becomes the right child.
//
func BuildTree(freqs FrequencyTable) (*Tree, error) {
	if len(freqs) == 0 {
		return nil, ErrEmptyAlphabet
	}

	// Step 1: build a minheap of leaves, in ascending Symbol order.

	symbols := freqs.Symbols()
	nodes := make([]nodeAndSeq, 0, len(symbols))
	for index, symbol := range symbols {
		freq := freqs[symbol]
		assert.Assertf(freq != 0, "symbol %s has a frequency of 0", symbol)
		leaf := &Node{symbol: symbol, weight: freq}
		nodes = append(nodes, nodeAndSeq{leaf, uint32(index)})
	}

	h := nodeHeap{nodes}
	h.Init()

	// Step 2: process the minheap by popping two nodes, combining them
	// into a new internal node, and pushing the new node back onto the
	// minheap.  Each new node takes the next sequence number, so it loses
	// every tie against the nodes already queued.

	nextSeq := uint32(len(nodes))
	for h.Len() > 1 {
		a := heap.Pop(&h).(nodeAndSeq)
		b := heap.Pop(&h).(nodeAndSeq)

		// Compute weightSum using saturating addition
		weightSum := a.node.weight + b.node.weight
		if weightSum < a.node.weight {
			weightSum = math.MaxUint64
		}

		merged := &Node{weight: weightSum, left: a.node, right: b.node}
		heap.Push(&h, nodeAndSeq{merged, nextSeq})
		nextSeq++
	}

	root := heap.Pop(&h).(nodeAndSeq).node
	log.Debugf("built tree: %d symbols, %d merges, total weight %d", len(symbols), len(symbols)-1, root.weight)

	return &Tree{root: root, numLeaves: len(symbols)}, nil
}

// Root returns the root node of this tree.
func (t *Tree) Root() *Node {
	return t.root
}

// NumSymbols returns the number of leaves in this tree.
func (t *Tree) NumSymbols() int {
	return t.numLeaves
}

// CodeTable derives the code of every leaf by walking the tree depth-first.
// The walk keeps an explicit stack, so badly skewed trees cannot exhaust the
// goroutine stack.
func (t *Tree) CodeTable() CodeTable {
	table := make(CodeTable, t.numLeaves)

	if t.root.IsLeaf() {
		table[t.root.symbol] = MakeCode(1, 0)
		return table
	}

	t.walk(func(n *Node, hc Code) {
		if n.IsLeaf() {
			table[n.symbol] = hc
		}
	})
	return table
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer, one line per node in depth-first order.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tNumSymbols() = %d\n", t.numLeaves)
	t.walk(func(n *Node, hc Code) {
		if n.IsLeaf() {
			fmt.Fprintf(&buf, "\tNode(%s) = {%s, %d}\n", hc, n.symbol, n.weight)
		} else {
			fmt.Fprintf(&buf, "\tNode(%s) = {-, %d}\n", hc, n.weight)
		}
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// walk visits every node in pre-order, left before right, passing the path
// taken from the root.
func (t *Tree) walk(fn func(n *Node, hc Code)) {
	type stackItem struct {
		node *Node
		code Code
	}

	stack := make([]stackItem, 0, log2int(t.numLeaves)+1)
	stack = append(stack, stackItem{node: t.root})
	for len(stack) != 0 {
		last := len(stack) - 1
		top := stack[last]
		stack[last] = stackItem{}
		stack = stack[:last]

		fn(top.node, top.code)
		if top.node.IsLeaf() {
			continue
		}

		// Push right before left, so that left is visited first.
		stack = append(stack,
			stackItem{node: top.node.right, code: top.code.Append(1)},
			stackItem{node: top.node.left, code: top.code.Append(0)})
	}
}

// type nodeAndSeq + type nodeHeap {{{

type nodeAndSeq struct {
	node *Node
	seq  uint32
}

type nodeHeap struct {
	list []nodeAndSeq
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.weight != b.node.weight {
		return a.node.weight < b.node.weight
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(nodeAndSeq))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = nodeAndSeq{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
