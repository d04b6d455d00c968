package prefixcode

// Symbol represents one atomic unit of an input sequence.  For textual
// input a Symbol is a Unicode code point.
type Symbol rune

// Symbols converts a string into the symbol sequence of its code
// points.
func Symbols(s string) []Symbol {
	seq := make([]Symbol, 0, len(s))
	for _, r := range s {
		seq = append(seq, Symbol(r))
	}
	return seq
}

// Text converts a symbol sequence back into a string.
func Text(seq []Symbol) string {
	runes := make([]rune, len(seq))
	for i, sym := range seq {
		runes[i] = rune(sym)
	}
	return string(runes)
}
