package prefixcode

import (
	"errors"
	"testing"
)

func TestCode_String(t *testing.T) {
	type testRow struct {
		code   Code
		expect string
	}
	testData := [...]testRow{
		{code: Code{}, expect: "\"\""},
		{code: MakeCode(1, 0), expect: "\"0\""},
		{code: MakeCode(3, 0b101), expect: "\"101\""},
		{code: MakeCode(4, 0b0011), expect: "\"0011\""},
	}
	for _, row := range testData {
		if actual := row.code.String(); actual != row.expect {
			t.Errorf("expected %s, got %s", row.expect, actual)
		}
	}
}

func TestCode_IsPrefixOf(t *testing.T) {
	a := MakeCode(2, 0b10)
	b := MakeCode(4, 0b1011)
	c := MakeCode(4, 0b1111)

	if !a.IsPrefixOf(b) {
		t.Errorf("expected %s to be a prefix of %s", a, b)
	}
	if a.IsPrefixOf(c) {
		t.Errorf("expected %s not to be a prefix of %s", a, c)
	}
	if b.IsPrefixOf(a) {
		t.Errorf("a longer code cannot be a prefix of a shorter one")
	}
	if a.IsPrefixOf(a) {
		t.Errorf("a code is not a proper prefix of itself")
	}
}

func TestGenerateCodeTable_BareLeaf(t *testing.T) {
	codes, err := GenerateCodeTable(&Node{Symbol: 'a', Weight: 4})
	if err != nil {
		t.Fatalf("GenerateCodeTable failed: %v", err)
	}
	if len(codes) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(codes))
	}
	if expect := MakeCode(1, 0); codes['a'] != expect {
		t.Errorf("expected code %s, got %s", expect, codes['a'])
	}
}

func TestGenerateCodeTable_PrefixFree(t *testing.T) {
	seq := Symbols("it was the best of times, it was the worst of times")
	ft := AnalyzeFrequencies(seq)

	trees := map[string]*Node{
		"Shannon-Fano": BuildShannonFanoTree(ft),
		"Huffman":      BuildHuffmanTree(ft),
	}
	for name, tree := range trees {
		t.Run(name, func(t *testing.T) {
			codes, err := GenerateCodeTable(tree)
			if err != nil {
				t.Fatalf("GenerateCodeTable failed: %v", err)
			}
			if len(codes) != len(ft) {
				t.Fatalf("expected %d codes, got %d", len(ft), len(codes))
			}
			for symA, codeA := range codes {
				for symB, codeB := range codes {
					if symA == symB {
						continue
					}
					if codeA.IsPrefixOf(codeB) {
						t.Errorf("code %s of %q is a prefix of code %s of %q",
							codeA, rune(symA), codeB, rune(symB))
					}
				}
			}
		})
	}
}

func TestGenerateCodeTable_MalformedTree(t *testing.T) {
	lopsided := &Node{
		Weight: 3,
		Left:   &Node{Symbol: 'a', Weight: 3},
	}
	if _, err := GenerateCodeTable(lopsided); !errors.Is(err, ErrMalformedTree) {
		t.Errorf("expected ErrMalformedTree, got %v", err)
	}

	var nilTree *Node
	if _, err := GenerateCodeTable(nilTree); !errors.Is(err, ErrMalformedTree) {
		t.Errorf("expected ErrMalformedTree for nil tree, got %v", err)
	}
}
