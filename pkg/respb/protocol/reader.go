package protocol

import "encoding/binary"

// Outcome is the tri-state result of ParseOne (spec §4.1).
type Outcome uint8

const (
	// OutcomeComplete means a full frame was parsed; Offset advanced.
	OutcomeComplete Outcome = iota
	// OutcomeIncomplete means more bytes are needed; Offset is unchanged.
	OutcomeIncomplete
	// OutcomeError means the frame is malformed in a way more bytes cannot
	// fix; Offset is unchanged and Err describes why.
	OutcomeError
)

// ReaderOptions tunes Reader behavior for situations spec §4.1 and §9
// leave as an implementation choice. The zero value selects lenient mode,
// in which arguments beyond MaxInlineArgs spill to the heap.
type ReaderOptions struct {
	// Strict selects Error(TooManyArgs) instead of the default heap-spill
	// when a count_u16_then field's count would exceed MaxInlineArgs.
	Strict bool

	// MaxShortStringLen overrides the short_string cap (default 65535,
	// the field's own 2-byte-length-prefix ceiling).
	MaxShortStringLen int

	// MaxLongStringLen overrides the long_string cap (default
	// protocol.MaxLongStringLen).
	MaxLongStringLen int
}

func (o ReaderOptions) maxShort() int {
	if o.MaxShortStringLen > 0 {
		return o.MaxShortStringLen
	}
	return 65535
}

func (o ReaderOptions) maxLong() int {
	if o.MaxLongStringLen > 0 {
		return o.MaxLongStringLen
	}
	return MaxLongStringLen
}

// Reader holds no mutable state of its own beyond ReaderOptions: every
// ParseOne call is a pure function of (buffer, offset, opts), matching
// spec §4.1's "stateless across calls apart from the offset" contract.
type Reader struct {
	Opts ReaderOptions
}

// NewReader constructs a Reader with the given options.
func NewReader(opts ReaderOptions) *Reader {
	return &Reader{Opts: opts}
}

// Result is returned by ParseOne. Only the fields relevant to Outcome are
// meaningful: Command and NewOffset on OutcomeComplete, Err on
// OutcomeError.
type Result struct {
	Outcome   Outcome
	Command   *ParsedCommand
	NewOffset int
	Err       error
}

// ParseOne implements the Frame Reader (spec §4.1). It never mutates buf
// and never advances offset except on OutcomeComplete.
func (r *Reader) ParseOne(buf []byte, offset int) Result {
	start := offset
	if len(buf)-offset < 4 {
		return Result{Outcome: OutcomeIncomplete}
	}

	op := Opcode(binary.BigEndian.Uint16(buf[offset:]))
	muxID := binary.BigEndian.Uint16(buf[offset+2:])
	cur := offset + 4

	switch {
	case op == OpcodePassthrough:
		return r.parsePassthrough(buf, start, cur, op, muxID)
	case op == OpcodeModule:
		return r.parseModule(buf, start, cur, op, muxID)
	default:
		return r.parseCore(buf, start, cur, op, muxID)
	}
}

func (r *Reader) parseCore(buf []byte, start, cur int, op Opcode, muxID uint16) Result {
	g, ok := GrammarFor(op)
	if !ok {
		return Result{Outcome: OutcomeError, Err: newFrameError(ErrUnknownOpcode, op, start)}
	}

	pc := &ParsedCommand{Opcode: op, MuxID: muxID}
	end, outcome, err := r.walkGrammar(buf, cur, g, op, pc)
	if outcome != OutcomeComplete {
		return Result{Outcome: outcome, Err: err}
	}
	pc.RawPayload = buf[cur:end]
	return Result{Outcome: OutcomeComplete, Command: pc, NewOffset: end}
}

func (r *Reader) parseModule(buf []byte, start, cur int, op Opcode, muxID uint16) Result {
	if len(buf)-cur < 4 {
		return Result{Outcome: OutcomeIncomplete}
	}
	subcmd := binary.BigEndian.Uint32(buf[cur:])
	moduleID := uint16(subcmd >> 16)
	commandID := uint16(subcmd)
	cur += 4

	_, g := moduleGrammar(moduleID, commandID)

	pc := &ParsedCommand{Opcode: op, MuxID: muxID, ModuleID: moduleID, CommandID: commandID}
	end, outcome, err := r.walkGrammar(buf, cur, g, op, pc)
	if outcome != OutcomeComplete {
		return Result{Outcome: outcome, Err: err}
	}
	pc.RawPayload = buf[cur:end]
	return Result{Outcome: OutcomeComplete, Command: pc, NewOffset: end}
}

func (r *Reader) parsePassthrough(buf []byte, start, cur int, op Opcode, muxID uint16) Result {
	if len(buf)-cur < 4 {
		return Result{Outcome: OutcomeIncomplete}
	}
	respLen := binary.BigEndian.Uint32(buf[cur:])
	cur += 4
	if uint64(len(buf)-cur) < uint64(respLen) {
		return Result{Outcome: OutcomeIncomplete}
	}
	data := buf[cur : cur+int(respLen)]
	end := cur + int(respLen)

	pc := &ParsedCommand{
		Opcode:     op,
		MuxID:      muxID,
		RESPLength: respLen,
		RESPData:   data,
		RawPayload: buf[start+8 : end],
	}
	return Result{Outcome: OutcomeComplete, Command: pc, NewOffset: end}
}

// walkGrammar reads one Grammar's fields starting at cur, appending
// arguments/counts/trailers onto pc as it goes. It returns the offset
// immediately past the last field consumed.
func (r *Reader) walkGrammar(buf []byte, cur int, g Grammar, op Opcode, pc *ParsedCommand) (int, Outcome, error) {
	for _, f := range g {
		switch f.Kind {
		case KindShortString:
			n, newCur, outcome, err := r.readShort(buf, cur, op)
			if outcome != OutcomeComplete {
				return cur, outcome, err
			}
			pc.appendArg(Argument(buf[newCur : newCur+n]))
			cur = newCur + n

		case KindLongString:
			n, newCur, outcome, err := r.readLong(buf, cur, op)
			if outcome != OutcomeComplete {
				return cur, outcome, err
			}
			pc.appendArg(Argument(buf[newCur : newCur+n]))
			cur = newCur + n

		case KindFixed:
			if len(buf)-cur < f.Len {
				return cur, OutcomeIncomplete, nil
			}
			pc.appendTrailer(buf[cur:cur+f.Len], true)
			cur += f.Len

		case KindOptionalTrailing:
			// Presence is inferred by exact remaining-length match against
			// this field's size, per the resolution documented in
			// DESIGN.md for the ambiguity spec §9 flags. A field earlier
			// in the grammar always wins priority since it is read first;
			// this field only ever appears last in a grammar.
			remaining := len(buf) - cur
			if remaining == f.Len {
				pc.appendTrailer(buf[cur:cur+f.Len], true)
				cur += f.Len
			} else {
				pc.appendTrailer(nil, false)
			}

		case KindCountThen:
			if len(buf)-cur < 2 {
				return cur, OutcomeIncomplete, nil
			}
			count := binary.BigEndian.Uint16(buf[cur:])
			cur += 2

			if r.Opts.Strict && pc.argc+int(count)*subArgWidth(f.Sub) > MaxInlineArgs {
				return cur, OutcomeError, newFrameError(ErrTooManyArgs, op, cur)
			}
			pc.appendCount(count)

			for i := uint16(0); i < count; i++ {
				newCur, outcome, err := r.walkGrammar(buf, cur, f.Sub, op, pc)
				if outcome != OutcomeComplete {
					return cur, outcome, err
				}
				cur = newCur
			}

		case KindRestOpaque:
			n, newCur, outcome, err := r.readLong(buf, cur, op)
			if outcome != OutcomeComplete {
				return cur, outcome, err
			}
			pc.appendTrailer(buf[newCur:newCur+n], true)
			cur = newCur + n

		default:
			return cur, OutcomeError, newFrameError(ErrUnknownOpcode, op, cur)
		}
	}
	return cur, OutcomeComplete, nil
}

// subArgWidth reports how many arguments one repetition of a
// count_u16_then sub-grammar contributes, used only for the Strict
// pre-check so it can fail before doing any parsing work.
func subArgWidth(sub []Field) int {
	n := 0
	for _, f := range sub {
		if f.Kind == KindShortString || f.Kind == KindLongString {
			n++
		}
	}
	return n
}

func (r *Reader) readShort(buf []byte, cur int, op Opcode) (n, newCur int, outcome Outcome, err error) {
	if len(buf)-cur < 2 {
		return 0, cur, OutcomeIncomplete, nil
	}
	length := int(binary.BigEndian.Uint16(buf[cur:]))
	newCur = cur + 2
	if length > r.Opts.maxShort() {
		return 0, cur, OutcomeError, newFrameError(ErrOversizedString, op, cur)
	}
	if len(buf)-newCur < length {
		return 0, cur, OutcomeIncomplete, nil
	}
	return length, newCur, OutcomeComplete, nil
}

func (r *Reader) readLong(buf []byte, cur int, op Opcode) (n, newCur int, outcome Outcome, err error) {
	if len(buf)-cur < 4 {
		return 0, cur, OutcomeIncomplete, nil
	}
	length := int(binary.BigEndian.Uint32(buf[cur:]))
	newCur = cur + 4
	if length < 0 || length > r.Opts.maxLong() {
		return 0, cur, OutcomeError, newFrameError(ErrOversizedString, op, cur)
	}
	if len(buf)-newCur < length {
		return 0, cur, OutcomeIncomplete, nil
	}
	return length, newCur, OutcomeComplete, nil
}
