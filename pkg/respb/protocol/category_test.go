package protocol

import "testing"

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		op   Opcode
		want Category
	}{
		{0x0000, CategoryString},
		{0x003F, CategoryString},
		{0x0040, CategoryList},
		{0x00C0, CategorySortedSet},
		{0x0100, CategoryHash},
		{0x0140, CategoryBitmap},
		{0x0180, CategoryHyperLogLog},
		{0x01C0, CategoryGeo},
		{0x0200, CategoryStream},
		{0x0240, CategoryPubSub},
		{0x0280, CategoryTransaction},
		{0x02C0, CategoryScripting},
		{0x0300, CategoryGenericKey},
		{0x0340, CategoryConnection},
		{0x0380, CategoryCluster},
		{0x03C0, CategoryServer},
		{OpcodeModule, CategoryModule},
		{OpcodePassthrough, CategoryPassthrough},
		{0xF001, CategoryUnknown},
		{0xFFFE, CategoryUnknown},
	}
	for _, tc := range tests {
		if got := CategoryOf(tc.op); got != tc.want {
			t.Errorf("CategoryOf(0x%04X) = %v, want %v", tc.op, got, tc.want)
		}
	}
}

func TestDispatchTableConsistency(t *testing.T) {
	if len(registry) == 0 {
		t.Fatal("registry is empty; table_*.go init() functions did not run")
	}
	for op, e := range registry {
		if CategoryOf(op) == CategoryUnknown {
			t.Errorf("opcode 0x%04X (%s) registered outside any assigned category", op, e.name)
		}
		if e.name == "" {
			t.Errorf("opcode 0x%04X has an empty name", op)
		}
		if got, ok := GrammarFor(op); !ok {
			t.Errorf("GrammarFor(0x%04X) reports not found for a registered opcode", op)
		} else if len(got) != len(e.grammar) {
			t.Errorf("GrammarFor(0x%04X) grammar length mismatch", op)
		}
	}
}

func TestNameForUnknown(t *testing.T) {
	if got := NameFor(0xBEEF); got != "UNKNOWN" {
		t.Errorf("NameFor(unassigned) = %q, want UNKNOWN", got)
	}
	if got := NameFor(0x0000); got != "GET" {
		t.Errorf("NameFor(0x0000) = %q, want GET", got)
	}
	if got := NameFor(OpcodeModule); got != "MODULE" {
		t.Errorf("NameFor(module sentinel) = %q, want MODULE", got)
	}
}
