package prefixcode

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// BuildHuffmanTree builds a prefix tree from the given frequency table
// by Huffman bottom-up merging: the two lowest-weight nodes are
// repeatedly combined into a new internal node until one root remains.
//
// Weight ties are broken by a creation-sequence number: leaves are
// numbered in ascending symbol order, internal nodes in merge order.
// This makes the resulting tree identical across runs for the same
// frequency table.
//
// The table must not be empty; Compress guards this before calling.
func BuildHuffmanTree(ft FrequencyTable) *Node {
	assert.Assertf(len(ft) > 0, "BuildHuffmanTree: empty frequency table")

	syms := ft.sortedSymbols()
	h := nodeHeap{list: make([]nodeAndSeq, 0, len(syms))}
	for i, sym := range syms {
		h.list = append(h.list, nodeAndSeq{
			node: &Node{Symbol: sym, Weight: ft[sym]},
			seq:  i,
		})
	}
	h.Init()

	nextSeq := len(syms)
	for h.Len() > 1 {
		a := heap.Pop(&h).(nodeAndSeq)
		b := heap.Pop(&h).(nodeAndSeq)

		merged := &Node{
			Weight: a.node.Weight + b.node.Weight,
			Left:   a.node,
			Right:  b.node,
		}
		heap.Push(&h, nodeAndSeq{node: merged, seq: nextSeq})
		nextSeq++
	}
	return heap.Pop(&h).(nodeAndSeq).node
}

// type nodeAndSeq + type nodeHeap {{{

type nodeAndSeq struct {
	node *Node
	seq  int
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
	if a.node.Weight != b.node.Weight {
		return a.node.Weight < b.node.Weight
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(nodeAndSeq))
}

func (h *nodeHeap) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
