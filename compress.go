package prefixcode

import "fmt"

// Algorithm selects which tree construction Compress uses.
type Algorithm int

const (
	// ShannonFano builds the tree by top-down partitioning.
	ShannonFano Algorithm = iota

	// Huffman builds the tree by bottom-up merging.  Huffman codes are
	// optimal among prefix codes for a given frequency distribution.
	Huffman
)

// String returns the name of this Algorithm.
func (a Algorithm) String() string {
	switch a {
	case ShannonFano:
		return "Shannon-Fano"
	case Huffman:
		return "Huffman"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

var _ fmt.Stringer = Algorithm(0)

// Payload is the result of one Compress call.  Data is meaningless
// without the Tree that produced it; no wire format is defined here,
// the tree travels in memory between Compress and Decompress.
type Payload struct {
	// Data holds the packed bytes.
	Data []byte

	// Padding holds the number of zero bits (0-7) appended to Data to
	// reach a byte boundary.
	Padding byte

	// Tree is the prefix tree needed to decode Data.  Nil when the
	// input was empty.
	Tree *Node

	// Codes is the code table derived from Tree, kept for callers that
	// want to inspect or reuse the encoding.
	Codes CodeTable
}

// Ratio reports the UTF-8 byte length of the original sequence divided
// by the packed byte length, or 0 for an empty payload.
func (p *Payload) Ratio(original []Symbol) float64 {
	if len(p.Data) == 0 {
		return 0
	}
	return float64(len(Text(original))) / float64(len(p.Data))
}

// Compress builds a prefix code from the input's symbol frequencies
// using the selected algorithm and packs the input with it.  An empty
// input yields an empty Payload with a nil Tree.
func Compress(seq []Symbol, algo Algorithm) (*Payload, error) {
	if len(seq) == 0 {
		return &Payload{}, nil
	}

	ft := AnalyzeFrequencies(seq)

	var tree *Node
	switch algo {
	case ShannonFano:
		tree = BuildShannonFanoTree(ft)
	case Huffman:
		tree = BuildHuffmanTree(ft)
	default:
		return nil, fmt.Errorf("prefixcode: unknown algorithm %d", int(algo))
	}

	codes, err := GenerateCodeTable(tree)
	if err != nil {
		return nil, err
	}
	data, padding, err := Pack(seq, codes)
	if err != nil {
		return nil, err
	}
	return &Payload{Data: data, Padding: padding, Tree: tree, Codes: codes}, nil
}

// Decompress reconstructs the symbol sequence from packed bytes, the
// prefix tree that encoded them, and the padding bit count.  A nil tree
// or empty data yields an empty sequence.
func Decompress(data []byte, tree *Node, padding byte) ([]Symbol, error) {
	if tree == nil || len(data) == 0 {
		return nil, nil
	}
	return Unpack(data, tree, padding)
}
