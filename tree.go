package prefixcode

import "fmt"

// Node is one node of a prefix tree.  A Node with no children is a
// leaf and carries a Symbol together with that symbol's frequency as
// its Weight.  An internal Node owns exactly two children and carries
// the sum of their weights.
type Node struct {
	Symbol Symbol
	Weight int
	Left   *Node
	Right  *Node
}

// IsLeaf reports whether this Node is a leaf.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Check verifies that the tree rooted at this Node is a full binary
// tree, i.e. that every node has either zero or two children.  The
// builders in this package only produce full trees; Check exists to
// reject trees constructed elsewhere.
func (n *Node) Check() error {
	if n == nil {
		return fmt.Errorf("%w: nil node", ErrMalformedTree)
	}
	if n.IsLeaf() {
		return nil
	}
	if n.Left == nil || n.Right == nil {
		return fmt.Errorf("%w: internal node with one child", ErrMalformedTree)
	}
	if err := n.Left.Check(); err != nil {
		return err
	}
	return n.Right.Check()
}
