package protocol

import "fmt"

// tableEntry is one row of the opcode dispatch table: a name (§4.6 Opcode
// Name Table) plus a grammar (§4.2 Opcode Dispatch Table).
type tableEntry struct {
	name    string
	grammar Grammar
}

// registry is populated by each table_*.go file's init() and never
// mutated afterwards (spec §5: "initialised once and is immutable
// afterwards. Safe for unsynchronised concurrent reads.").
var registry = make(map[Opcode]tableEntry, 320)

// register adds one opcode's dispatch entry. It panics on a duplicate
// opcode or an opcode outside every assigned category range — both
// indicate a bug in the table, not a runtime condition callers can recover
// from, so failing at init time (package load) is preferable to a silent
// misdispatch discovered later.
func register(op Opcode, name string, g Grammar) {
	if _, dup := registry[op]; dup {
		panic(fmt.Sprintf("protocol: duplicate opcode registration 0x%04X (%s)", op, name))
	}
	if CategoryOf(op) == CategoryUnknown {
		panic(fmt.Sprintf("protocol: opcode 0x%04X (%s) falls outside every assigned category range", op, name))
	}
	registry[op] = tableEntry{name: name, grammar: g}
}

// GrammarFor maps an opcode to its payload grammar. ok is false for
// unassigned opcodes, including the entire reserved gap and 0xF000/0xFFFF
// (those two are handled by dedicated header shapes, not a table grammar).
func GrammarFor(op Opcode) (g Grammar, ok bool) {
	e, found := registry[op]
	if !found {
		return nil, false
	}
	return e.grammar, true
}

// NameFor maps an opcode to its canonical uppercased Redis command name,
// "MODULE" for 0xF000, "PASSTHROUGH" for 0xFFFF, or "UNKNOWN" for any
// other unassigned opcode (spec §4.6).
func NameFor(op Opcode) string {
	if e, found := registry[op]; found {
		return e.name
	}
	switch op {
	case OpcodeModule:
		return "MODULE"
	case OpcodePassthrough:
		return "PASSTHROUGH"
	default:
		return "UNKNOWN"
	}
}

// AssignedOpcodes returns every opcode currently present in the dispatch
// table, for tests and diagnostics that want to walk the whole table.
func AssignedOpcodes() []Opcode {
	ops := make([]Opcode, 0, len(registry))
	for op := range registry {
		ops = append(ops, op)
	}
	return ops
}
