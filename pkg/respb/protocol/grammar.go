package protocol

// FieldKind identifies the shape of a single grammar field (§3.1 Payload
// Grammar).
type FieldKind uint8

const (
	// KindShortString is a 2-byte big-endian length prefix followed by that
	// many bytes. Max length 65,535.
	KindShortString FieldKind = iota

	// KindLongString is a 4-byte big-endian length prefix followed by that
	// many bytes, capped at MaxLongStringLen.
	KindLongString

	// KindFixed is an opaque, mandatory block of exactly Len bytes. The core
	// never interprets these bytes (flags, scores, offsets, timestamps);
	// they are preserved verbatim for round-trip (§3.2 invariant 7).
	KindFixed

	// KindOptionalTrailing is a fixed-size opaque block that is present only
	// if exactly Len bytes remain in the buffer at this point. See
	// DESIGN.md for why "exactly Len remain" was chosen over "at least Len
	// remain" to resolve the optional-field ambiguity noted in spec §9.
	KindOptionalTrailing

	// KindCountThen reads a u16 count N, then N repetitions of Sub in order.
	KindCountThen

	// KindRestOpaque is a 4-byte big-endian length prefix followed by that
	// many opaque bytes, exactly like KindLongString except the bytes are
	// stored as a trailer rather than an Argument. The length prefix is
	// what lets the reader find this field's end without looking past the
	// frame: unlike reading "whatever's left in the buffer", it leaves a
	// second frame packed into the same buffer untouched. Used for
	// commands whose option-flag shape is nontrivial (PUBSUB, scripting,
	// server-admin, and other opcodes that fall back to
	// "surface the key, carry the rest").
	KindRestOpaque
)

// Field is one element of a Grammar.
type Field struct {
	Kind FieldKind
	Len  int    // byte length for KindFixed / KindOptionalTrailing
	Sub  []Field // repeated sub-grammar for KindCountThen
}

// Grammar is the ordered, declarative description of one opcode's payload
// layout (§3.1 Payload Grammar). The same Grammar value is walked by both
// the Reader and the Writer.
type Grammar []Field

// Grammar field constructors. Short, deliberately terse names: these are
// used dozens of times per category table below.
func shortStr() Field                { return Field{Kind: KindShortString} }
func longStr() Field                 { return Field{Kind: KindLongString} }
func fixed(n int) Field              { return Field{Kind: KindFixed, Len: n} }
func optTrailing(n int) Field        { return Field{Kind: KindOptionalTrailing, Len: n} }
func countThen(sub ...Field) Field   { return Field{Kind: KindCountThen, Sub: sub} }
func restOpaque() Field              { return Field{Kind: KindRestOpaque} }

// Shared grammar shapes named after the families in spec §4.2's table.
// Category tables reference these directly instead of re-describing the
// same shape opcode by opcode.
var (
	// gSingleKey: [key]
	gSingleKey = Grammar{shortStr()}

	// gSingleKeyInt: [key, operand:fixed(8)]
	gSingleKeyInt = Grammar{shortStr(), fixed(8)}

	// gKeyValueWrite: [key, value, flags+expiry:fixed(9) or absent] (SET, GETSET)
	gKeyValueWrite = Grammar{shortStr(), longStr(), optTrailing(9)}

	// gSingleKeyOptionalExpiry: [key, flags+expiry:fixed(9) or absent] (GETEX)
	gSingleKeyOptionalExpiry = Grammar{shortStr(), optTrailing(9)}

	// gSingleKeyOptionalCount: [key, count:fixed(8) or absent] (SPOP)
	gSingleKeyOptionalCount = Grammar{shortStr(), optTrailing(8)}

	// gMultiKeyRead: [count_u16_then [key]] (MGET, DEL, EXISTS)
	gMultiKeyRead = Grammar{countThen(shortStr())}

	// gMultiPairWrite: [count_u16_then [key, value]] (MSET, MSETNX)
	gMultiPairWrite = Grammar{countThen(shortStr(), longStr())}

	// gListPush: [key, count_u16_then [elem]] (LPUSH, SADD, ...)
	gListPush = Grammar{shortStr(), countThen(shortStr())}

	// gHashWrite: [key, count_u16_then [field, value]] (HSET, HMSET)
	gHashWrite = Grammar{shortStr(), countThen(shortStr(), longStr())}

	// gRangeOp: [key, start:fixed(8), stop:fixed(8)] (LRANGE, GETRANGE, ZRANGEBYSCORE)
	gRangeOp = Grammar{shortStr(), fixed(8), fixed(8)}

	// gTwoKeyOp: [src, dst] (RENAME, COPY, RPOPLPUSH)
	gTwoKeyOp = Grammar{shortStr(), shortStr()}

	// gZAdd: [key, flags:fixed(1), count_u16_then [score:fixed(8), member]]
	// Full grammar per spec §9's correction of the reference's shortcut.
	gZAdd = Grammar{shortStr(), fixed(1), countThen(fixed(8), shortStr())}

	// gKeyRest: [key, rest:length-prefixed opaque] — nontrivial
	// option-flag commands (scripting, stream consumer-group and read
	// commands, AUTH, OBJECT, SORT, geo search, most module commands)
	// surface only the leading key/script-sha and carry everything else
	// as one length-prefixed opaque block.
	gKeyRest = Grammar{shortStr(), restOpaque()}

	// gNoArgs: [] — commands with no payload at all (PING, MULTI, EXEC...)
	gNoArgs = Grammar{}

	// gRestOnly: [rest:length-prefixed opaque] — commands whose entire
	// payload is treated as one opaque, length-prefixed blob (EVAL script
	// bodies, CLUSTER subcommands).
	gRestOnly = Grammar{restOpaque()}
)
