package prefixcode

import (
	"bytes"
	"fmt"
	"io"
)

// CodeTable maps each Symbol to its prefix-free Code.
type CodeTable map[Symbol]Code

// GenerateCodeTable derives the code table from a prefix tree by
// depth-first traversal, accumulating a 0 bit per left edge and a 1 bit
// per right edge.  A tree that is a bare leaf has no edges; its single
// symbol gets the one-bit code "0" by convention.
//
// The tree must satisfy the full-binary-tree invariant and must not be
// deeper than maxCodeBits; otherwise ErrMalformedTree is returned.
func GenerateCodeTable(root *Node) (CodeTable, error) {
	if err := root.Check(); err != nil {
		return nil, err
	}

	table := make(CodeTable)
	if root.IsLeaf() {
		table[root.Symbol] = MakeCode(1, 0)
		return table, nil
	}
	if err := assignCodes(root, Code{}, table); err != nil {
		return nil, err
	}
	return table, nil
}

func assignCodes(n *Node, prefix Code, table CodeTable) error {
	if n.IsLeaf() {
		table[n.Symbol] = prefix
		return nil
	}
	if prefix.Size == maxCodeBits {
		return fmt.Errorf("%w: tree deeper than %d levels", ErrMalformedTree, maxCodeBits)
	}
	if err := assignCodes(n.Left, MakeCode(prefix.Size+1, prefix.Bits<<1), table); err != nil {
		return err
	}
	return assignCodes(n.Right, MakeCode(prefix.Size+1, prefix.Bits<<1|1), table)
}

// Dump writes a programmer-readable debugging dump of the CodeTable to
// the given writer.
func (t CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	syms := make(bySymbol, 0, len(t))
	for sym := range t {
		syms = append(syms, sym)
	}
	syms.Sort()
	for _, sym := range syms {
		fmt.Fprintf(&buf, "\tCode(%q) = %s\n", rune(sym), t[sym])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
