// Package prefixcode builds variable-length prefix codes from symbol
// frequencies and uses them to losslessly compress and decompress
// symbol sequences.  Two tree constructions are provided: Shannon-Fano
// top-down partitioning and Huffman bottom-up merging.  Both produce a
// full binary prefix tree, so the same code derivation, bit packing,
// and tree-walking decode serve either.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Shannon%E2%80%93Fano_coding>
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package prefixcode
