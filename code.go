package prefixcode

import (
	"fmt"
	"strconv"
)

// maxCodeBits is the longest code this package can represent.  A prefix
// tree deeper than this is rejected during code derivation.
const maxCodeBits = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The most significant
	// of the Size low-order bits is the first bit.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// IsPrefixOf reports whether this Code is a proper prefix of the given
// Code.
func (hc Code) IsPrefixOf(other Code) bool {
	if hc.Size >= other.Size {
		return false
	}
	return other.Bits>>(other.Size-hc.Size) == hc.Bits
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}
