package protocol

// Module IDs currently defined for opcode 0xF000 (spec §4.3).
const (
	ModuleJSON   uint16 = 0x0000
	ModuleBloom  uint16 = 0x0001
	ModuleSearch uint16 = 0x0002
)

// moduleKey identifies one (module_id, command_id) pair.
type moduleKey struct {
	module  uint16
	command uint16
}

var moduleRegistry = make(map[moduleKey]tableEntry, 32)

func registerModule(module, command uint16, name string, g Grammar) {
	k := moduleKey{module, command}
	if _, dup := moduleRegistry[k]; dup {
		panic("protocol: duplicate module registration for " + name)
	}
	moduleRegistry[k] = tableEntry{name: name, grammar: g}
}

func init() {
	// JSON module (0x0000). JSON.SET carries key + path + long-string value
	// + a 1-byte flags trailer (NX/XX); JSON.GET carries key + a
	// count-prefixed list of paths.
	registerModule(ModuleJSON, 0x0000, "JSON.SET", Grammar{
		shortStr(), shortStr(), longStr(), fixed(1),
	})
	registerModule(ModuleJSON, 0x0001, "JSON.GET", Grammar{
		shortStr(), countThen(shortStr()),
	})
	registerModule(ModuleJSON, 0x0002, "JSON.DEL", gKeyRest)
	registerModule(ModuleJSON, 0x0003, "JSON.TYPE", gKeyRest)
	registerModule(ModuleJSON, 0x0004, "JSON.ARRAPPEND", gKeyRest)
	registerModule(ModuleJSON, 0x0005, "JSON.NUMINCRBY", gKeyRest)
	registerModule(ModuleJSON, 0x0006, "JSON.STRLEN", gKeyRest)
	registerModule(ModuleJSON, 0x0007, "JSON.OBJKEYS", gKeyRest)
	registerModule(ModuleJSON, 0x0008, "JSON.CLEAR", gKeyRest)
	registerModule(ModuleJSON, 0x0009, "JSON.TOGGLE", gKeyRest)
	registerModule(ModuleJSON, 0x000A, "JSON.MERGE", gKeyRest)

	// Bloom filter module (0x0001).
	registerModule(ModuleBloom, 0x0000, "BF.ADD", Grammar{shortStr(), shortStr()})
	registerModule(ModuleBloom, 0x0001, "BF.EXISTS", Grammar{shortStr(), shortStr()})
	registerModule(ModuleBloom, 0x0002, "BF.MADD", gListPush)
	registerModule(ModuleBloom, 0x0003, "BF.MEXISTS", gListPush)
	registerModule(ModuleBloom, 0x0004, "BF.RESERVE", gKeyRest)
	registerModule(ModuleBloom, 0x0005, "BF.INFO", gKeyRest)
	registerModule(ModuleBloom, 0x0006, "BF.CARD", gSingleKey)

	// Search module (0x0002).
	registerModule(ModuleSearch, 0x0000, "FT.SEARCH", Grammar{shortStr(), shortStr()})
	registerModule(ModuleSearch, 0x0001, "FT.CREATE", gKeyRest)
	registerModule(ModuleSearch, 0x0002, "FT.DROPINDEX", gKeyRest)
	registerModule(ModuleSearch, 0x0003, "FT.INFO", gKeyRest)
	registerModule(ModuleSearch, 0x0004, "FT.AGGREGATE", gKeyRest)
}

// moduleGrammar resolves a (module_id, command_id) pair per spec §4.3: a
// registered command uses its specific grammar; anything else, including
// an entirely unrecognized module_id, falls back to a lenient single-key
// grammar so the frame can still be framed. This mirrors "the reference is
// lenient" called out explicitly in spec §4.3 rather than the strict
// Error(UnknownModule) alternative it also names.
func moduleGrammar(module, command uint16) (name string, g Grammar) {
	if e, ok := moduleRegistry[moduleKey{module, command}]; ok {
		return e.name, e.grammar
	}
	return "MODULE.UNKNOWN", gSingleKey
}
