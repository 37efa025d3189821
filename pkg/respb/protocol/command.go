package protocol

// MaxInlineArgs is the number of arguments a ParsedCommand stores inline,
// without a heap allocation. A count_u16_then field whose count exceeds
// this spills the remainder into the overflow slice (see Args, appendArg).
// spec §9 flags the reference's 64-argument cap as "an implementation
// constant... should either raise the cap or spill"; RESPB does the latter
// so callers never observe truncation in the lenient (default) mode.
const MaxInlineArgs = 64

// MaxLongStringLen is the per-argument cap enforced on long_string fields,
// matching the Redis bulk-string limit referenced in spec §3.2 invariant 3.
const MaxLongStringLen = 512 * 1024 * 1024

// Argument is a borrowed byte slice into the buffer a ParsedCommand was
// parsed from. The parser never copies argument bytes; an Argument's
// validity ends when the backing buffer is reused or freed.
type Argument []byte

// TrailerSlot records one opaque, grammar-consumed-but-not-surfaced byte
// block (fixed_bytes, optional trailing fields, or a rest-opaque tail) in
// the order the grammar walk encountered it. Writer replays these verbatim
// so round-trip holds even for fields the reader does not interpret
// (spec §3.2 invariant 7, §4.5).
type TrailerSlot struct {
	Data    []byte
	Present bool
}

// ParsedCommand is the Frame Reader's output record (spec §3.1). It is
// immutable once returned and borrows from the buffer it was parsed out
// of; the buffer must outlive every ParsedCommand derived from it.
type ParsedCommand struct {
	Opcode Opcode
	MuxID  uint16

	// RawPayload is the full payload region this frame's grammar consumed
	// (everything after the header), for diagnostics. The Writer does not
	// read it: it reassembles every frame field by field.
	RawPayload []byte

	inline   [MaxInlineArgs]Argument
	overflow []Argument
	argc     int

	// counts records, in encounter order, the repeat count read for each
	// count_u16_then field this command's grammar contains. The Writer
	// replays these instead of recomputing them from argument boundaries.
	counts []uint16

	// trailers records, in encounter order, every fixed_bytes /
	// optional-trailing / rest-opaque block the grammar walked.
	trailers []TrailerSlot

	// Module-frame fields, set only when Opcode == OpcodeModule.
	ModuleID  uint16
	CommandID uint16

	// Passthrough-frame fields, set only when Opcode == OpcodePassthrough.
	RESPLength uint32
	RESPData   []byte
}

// Argc reports the number of arguments actually stored. In the default
// lenient mode this always equals the count_u16_then field's declared
// count, via heap-spill beyond MaxInlineArgs; in ReaderOptions.Strict mode
// the Reader instead fails with ErrTooManyArgs before storing anything.
func (pc *ParsedCommand) Argc() int { return pc.argc }

// Arg returns the i'th argument, or nil if i is out of range.
func (pc *ParsedCommand) Arg(i int) Argument {
	if i < 0 || i >= pc.argc {
		return nil
	}
	if i < MaxInlineArgs {
		return pc.inline[i]
	}
	return pc.overflow[i-MaxInlineArgs]
}

// Args returns every stored argument as a single slice. When no spill
// occurred this is backed by the inline array (copied once, to keep the
// returned slice independent of ParsedCommand's internal layout); when a
// spill occurred the inline and overflow portions are concatenated.
func (pc *ParsedCommand) Args() []Argument {
	out := make([]Argument, pc.argc)
	n := pc.argc
	if n > MaxInlineArgs {
		n = MaxInlineArgs
	}
	copy(out, pc.inline[:n])
	if pc.argc > MaxInlineArgs {
		copy(out[MaxInlineArgs:], pc.overflow)
	}
	return out
}

// appendArg stores one argument, spilling into the overflow slice once
// MaxInlineArgs is exceeded. Called only by the Reader while walking a
// grammar.
func (pc *ParsedCommand) appendArg(a Argument) {
	if pc.argc < MaxInlineArgs {
		pc.inline[pc.argc] = a
	} else {
		pc.overflow = append(pc.overflow, a)
	}
	pc.argc++
}

// appendCount records a count_u16_then repeat count in encounter order.
func (pc *ParsedCommand) appendCount(n uint16) {
	pc.counts = append(pc.counts, n)
}

// Counts returns the count_u16_then repeat counts in encounter order.
func (pc *ParsedCommand) Counts() []uint16 { return pc.counts }

// appendTrailer records one opaque byte block in encounter order.
func (pc *ParsedCommand) appendTrailer(data []byte, present bool) {
	pc.trailers = append(pc.trailers, TrailerSlot{Data: data, Present: present})
}

// Trailers returns every opaque byte block in encounter order.
func (pc *ParsedCommand) Trailers() []TrailerSlot { return pc.trailers }

// RawTrailer returns the i'th trailer's bytes, or nil if absent or out of
// range. Convenience wrapper for the common single-trailer case (SET,
// GETEX, SPOP, the module flags byte).
func (pc *ParsedCommand) RawTrailer(i int) []byte {
	if i < 0 || i >= len(pc.trailers) {
		return nil
	}
	if !pc.trailers[i].Present {
		return nil
	}
	return pc.trailers[i].Data
}
