package prefixcode

import "sort"

// FrequencyTable maps each distinct Symbol of an input sequence to its
// number of occurrences.
type FrequencyTable map[Symbol]int

// AnalyzeFrequencies counts the occurrences of each distinct symbol in
// the given sequence.  An empty sequence yields an empty table.
func AnalyzeFrequencies(seq []Symbol) FrequencyTable {
	table := make(FrequencyTable)
	for _, sym := range seq {
		table[sym]++
	}
	return table
}

// sortedSymbols returns the table's symbols in ascending order.  Map
// iteration order is randomized, so every deterministic consumer of a
// FrequencyTable goes through this.
func (ft FrequencyTable) sortedSymbols() []Symbol {
	syms := make(bySymbol, 0, len(ft))
	for sym := range ft {
		syms = append(syms, sym)
	}
	syms.Sort()
	return syms
}

// type bySymbol {{{

type bySymbol []Symbol

func (list bySymbol) Sort() {
	sort.Sort(list)
}

func (list bySymbol) Len() int {
	return len(list)
}

func (list bySymbol) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySymbol) Less(i, j int) bool {
	return list[i] < list[j]
}

var _ sort.Interface = bySymbol(nil)

// }}}
