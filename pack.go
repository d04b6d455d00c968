package prefixcode

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
)

// Pack concatenates the code of each symbol in sequence order into one
// bit stream, most-significant-bit-first within each byte, and appends
// zero bits so the stream ends on a byte boundary.  It returns the
// packed bytes and the number of padding bits (0-7).
//
// A symbol without a code table entry yields ErrUnknownSymbol.
func Pack(seq []Symbol, table CodeTable) ([]byte, byte, error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	for _, sym := range seq {
		hc, ok := table[sym]
		if !ok {
			return nil, 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, rune(sym))
		}
		if err := w.WriteBits(hc.Bits, hc.Size); err != nil {
			return nil, 0, err
		}
	}
	padding, err := w.Align()
	if err != nil {
		return nil, 0, err
	}
	if err := w.Close(); err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), padding, nil
}

// Unpack expands the packed bytes back into a bit stream, drops the
// trailing padding bits, and walks the tree from the root: a 0 bit
// selects the left child, a 1 bit the right.  Reaching a leaf emits its
// symbol and resets the walk to the root.
//
// The stream must end exactly at the root; ending mid-code yields
// ErrCorruptPayload.  Empty input yields an empty sequence.  A bare-
// leaf tree carries the one-bit code "0", so each payload bit emits the
// leaf's symbol.
func Unpack(data []byte, root *Node, padding byte) ([]Symbol, error) {
	if padding > 7 {
		return nil, fmt.Errorf("%w: padding count %d out of range", ErrCorruptPayload, padding)
	}
	if len(data) == 0 {
		return nil, nil
	}
	if err := root.Check(); err != nil {
		return nil, err
	}

	total := len(data)*8 - int(padding)
	r := bitio.NewReader(bytes.NewReader(data))
	out := make([]Symbol, 0, total)

	if root.IsLeaf() {
		for i := 0; i < total; i++ {
			if _, err := r.ReadBool(); err != nil {
				return nil, err
			}
			out = append(out, root.Symbol)
		}
		return out, nil
	}

	node := root
	for i := 0; i < total; i++ {
		bit, err := r.ReadBool()
		if err != nil {
			return nil, err
		}
		if bit {
			node = node.Right
		} else {
			node = node.Left
		}
		if node.IsLeaf() {
			out = append(out, node.Symbol)
			node = root
		}
	}
	if node != root {
		return nil, fmt.Errorf("%w: bit stream ends mid-code", ErrCorruptPayload)
	}
	return out, nil
}
