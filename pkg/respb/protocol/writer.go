package protocol

import "encoding/binary"

// Writer is the inverse of Reader (spec §4.5). It carries no state; every
// WriteOne call is a pure function of its arguments.
type Writer struct{}

// NewWriter constructs a Writer.
func NewWriter() *Writer { return &Writer{} }

// WriteOne serializes pc into dst, returning the number of bytes written.
// It fails with ErrInsufficientCapacity without partially committing any
// field the caller can observe through dst's length (dst itself may still
// contain partially written bytes past the returned count; the caller
// must discard dst on error per spec §4.5).
func (w *Writer) WriteOne(dst []byte, pc *ParsedCommand) (int, error) {
	switch pc.Opcode {
	case OpcodePassthrough:
		return w.writePassthrough(dst, pc)
	case OpcodeModule:
		return w.writeModule(dst, pc)
	default:
		return w.writeCore(dst, pc)
	}
}

func (w *Writer) writeCore(dst []byte, pc *ParsedCommand) (int, error) {
	if len(dst) < 4 {
		return 0, newFrameError(ErrInsufficientCapacity, pc.Opcode, 0)
	}
	binary.BigEndian.PutUint16(dst[0:], uint16(pc.Opcode))
	binary.BigEndian.PutUint16(dst[2:], pc.MuxID)
	cur := 4

	g, ok := GrammarFor(pc.Opcode)
	if !ok {
		return 0, newFrameError(ErrUnknownOpcode, pc.Opcode, cur)
	}

	cur, err := w.writeGrammar(dst, cur, g, pc, &cursorState{})
	if err != nil {
		return 0, err
	}
	return cur, nil
}

func (w *Writer) writeModule(dst []byte, pc *ParsedCommand) (int, error) {
	if len(dst) < 8 {
		return 0, newFrameError(ErrInsufficientCapacity, pc.Opcode, 0)
	}
	binary.BigEndian.PutUint16(dst[0:], uint16(pc.Opcode))
	binary.BigEndian.PutUint16(dst[2:], pc.MuxID)
	binary.BigEndian.PutUint32(dst[4:], uint32(pc.ModuleID)<<16|uint32(pc.CommandID))
	cur := 8

	_, g := moduleGrammar(pc.ModuleID, pc.CommandID)
	cur, err := w.writeGrammar(dst, cur, g, pc, &cursorState{})
	if err != nil {
		return 0, err
	}
	return cur, nil
}

func (w *Writer) writePassthrough(dst []byte, pc *ParsedCommand) (int, error) {
	need := 8 + len(pc.RESPData)
	if len(dst) < need {
		return 0, newFrameError(ErrInsufficientCapacity, pc.Opcode, 0)
	}
	binary.BigEndian.PutUint16(dst[0:], uint16(pc.Opcode))
	binary.BigEndian.PutUint16(dst[2:], pc.MuxID)
	binary.BigEndian.PutUint32(dst[4:], pc.RESPLength)
	copy(dst[8:], pc.RESPData)
	return need, nil
}

// cursorState tracks how far writeGrammar has progressed through pc's
// argument/counts/trailers bookkeeping arrays, so a count_u16_then field's
// sub-grammar consumes the right slice of each on every recursive call.
type cursorState struct {
	argIdx     int
	countIdx   int
	trailerIdx int
}

func (w *Writer) writeGrammar(dst []byte, cur int, g Grammar, pc *ParsedCommand, cs *cursorState) (int, error) {
	for _, f := range g {
		switch f.Kind {
		case KindShortString:
			arg := pc.Arg(cs.argIdx)
			cs.argIdx++
			if len(dst)-cur < 2+len(arg) {
				return 0, newFrameError(ErrInsufficientCapacity, pc.Opcode, cur)
			}
			binary.BigEndian.PutUint16(dst[cur:], uint16(len(arg)))
			cur += 2
			cur += copy(dst[cur:], arg)

		case KindLongString:
			arg := pc.Arg(cs.argIdx)
			cs.argIdx++
			if len(dst)-cur < 4+len(arg) {
				return 0, newFrameError(ErrInsufficientCapacity, pc.Opcode, cur)
			}
			binary.BigEndian.PutUint32(dst[cur:], uint32(len(arg)))
			cur += 4
			cur += copy(dst[cur:], arg)

		case KindFixed:
			data := trailerAt(pc, cs)
			if len(dst)-cur < f.Len {
				return 0, newFrameError(ErrInsufficientCapacity, pc.Opcode, cur)
			}
			cur += copy(dst[cur:], padOrTrim(data, f.Len))

		case KindOptionalTrailing:
			data, present := trailerPresenceAt(pc, cs)
			if !present {
				continue
			}
			if len(dst)-cur < f.Len {
				return 0, newFrameError(ErrInsufficientCapacity, pc.Opcode, cur)
			}
			cur += copy(dst[cur:], padOrTrim(data, f.Len))

		case KindCountThen:
			count := uint16(0)
			if cs.countIdx < len(pc.counts) {
				count = pc.counts[cs.countIdx]
			}
			cs.countIdx++
			if len(dst)-cur < 2 {
				return 0, newFrameError(ErrInsufficientCapacity, pc.Opcode, cur)
			}
			binary.BigEndian.PutUint16(dst[cur:], count)
			cur += 2
			for i := uint16(0); i < count; i++ {
				var err error
				cur, err = w.writeGrammar(dst, cur, f.Sub, pc, cs)
				if err != nil {
					return 0, err
				}
			}

		case KindRestOpaque:
			data := trailerAt(pc, cs)
			if len(dst)-cur < 4+len(data) {
				return 0, newFrameError(ErrInsufficientCapacity, pc.Opcode, cur)
			}
			binary.BigEndian.PutUint32(dst[cur:], uint32(len(data)))
			cur += 4
			cur += copy(dst[cur:], data)
		}
	}
	return cur, nil
}

// trailerAt returns the next trailer's bytes, synthesising zeros only when
// the caller built a ParsedCommand by hand without populating a trailer
// slot (fresh construction), never for a round-tripped frame where the
// slot is always populated by the Reader. This is the behavior spec §9
// calls out as wrong in the reference ("the serializer... emits zero
// bytes for the flags+expiry field") fixed here by always preferring the
// carried bytes.
func trailerAt(pc *ParsedCommand, cs *cursorState) []byte {
	if cs.trailerIdx < len(pc.trailers) {
		t := pc.trailers[cs.trailerIdx]
		cs.trailerIdx++
		return t.Data
	}
	cs.trailerIdx++
	return nil
}

func trailerPresenceAt(pc *ParsedCommand, cs *cursorState) ([]byte, bool) {
	if cs.trailerIdx < len(pc.trailers) {
		t := pc.trailers[cs.trailerIdx]
		cs.trailerIdx++
		return t.Data, t.Present
	}
	cs.trailerIdx++
	return nil, false
}

// padOrTrim returns data truncated or zero-extended to exactly n bytes, so
// a hand-built ParsedCommand whose trailer is shorter than the grammar's
// fixed length still serializes a well-formed frame.
func padOrTrim(data []byte, n int) []byte {
	if len(data) == n {
		return data
	}
	out := make([]byte, n)
	copy(out, data)
	return out
}
