package workload

import (
	"encoding/binary"
	"fmt"

	"github.com/yourusername/respb/pkg/respb/protocol"
)

// Generator synthesizes a stream of wire-format RESPB frames according to
// a Config. It emits raw bytes rather than going through protocol.Writer
// because a generator plays the role of a client encoding commands from
// scratch, the same role protocol.Writer's ParsedCommand normally comes
// from a prior protocol.Reader call instead.
type Generator struct {
	cfg     Config
	mux     uint16
	counter uint64
}

// NewGenerator constructs a Generator from cfg, filling in documented
// defaults for any zero fields.
func NewGenerator(cfg Config) *Generator {
	return &Generator{cfg: cfg.withDefaults()}
}

// commandKind enumerates which grammar family Next emits.
type commandKind int

const (
	kindGet commandKind = iota
	kindSet
	kindDel
	kindMGet
	kindHSet
	kindZAdd
	kindLPush
)

func (g *Generator) pick() commandKind {
	m := g.cfg.Mix
	total := m.Get + m.Set + m.Del + m.MGet + m.HSet + m.ZAdd + m.LPush
	if total <= 0 {
		return kindGet
	}
	n := int(g.counter % uint64(total))
	switch {
	case n < m.Get:
		return kindGet
	case n < m.Get+m.Set:
		return kindSet
	case n < m.Get+m.Set+m.Del:
		return kindDel
	case n < m.Get+m.Set+m.Del+m.MGet:
		return kindMGet
	case n < m.Get+m.Set+m.Del+m.MGet+m.HSet:
		return kindHSet
	case n < m.Get+m.Set+m.Del+m.MGet+m.HSet+m.ZAdd:
		return kindZAdd
	default:
		return kindLPush
	}
}

func (g *Generator) key() []byte {
	id := g.counter % uint64(g.cfg.KeyspaceSize)
	return []byte(fmt.Sprintf("key:%d", id))
}

func (g *Generator) value() []byte {
	v := make([]byte, g.cfg.ValueSize)
	for i := range v {
		v[i] = byte('a' + i%26)
	}
	return v
}

// Next produces one encoded frame and advances the generator's internal
// counter. The returned slice is owned by the caller; Next does not retain
// it.
func (g *Generator) Next() []byte {
	kind := g.pick()
	g.counter++

	switch kind {
	case kindSet:
		return g.encodeSet()
	case kindDel:
		return g.encodeMultiKey(protocol.OpDel, 1)
	case kindMGet:
		return g.encodeMultiKey(protocol.OpMGet, 3)
	case kindHSet:
		return g.encodeHSet()
	case kindZAdd:
		return g.encodeZAdd()
	case kindLPush:
		return g.encodeLPush()
	default:
		return g.encodeGet()
	}
}

func (g *Generator) encodeGet() []byte {
	key := g.key()
	buf := make([]byte, 4+2+len(key))
	binary.BigEndian.PutUint16(buf[0:], uint16(protocol.OpGet))
	binary.BigEndian.PutUint16(buf[2:], g.mux)
	binary.BigEndian.PutUint16(buf[4:], uint16(len(key)))
	copy(buf[6:], key)
	return buf
}

func (g *Generator) encodeSet() []byte {
	key := g.key()
	val := g.value()
	buf := make([]byte, 4+2+len(key)+4+len(val)+9)
	binary.BigEndian.PutUint16(buf[0:], uint16(protocol.OpSet))
	binary.BigEndian.PutUint16(buf[2:], g.mux)
	cur := 4
	binary.BigEndian.PutUint16(buf[cur:], uint16(len(key)))
	cur += 2
	cur += copy(buf[cur:], key)
	binary.BigEndian.PutUint32(buf[cur:], uint32(len(val)))
	cur += 4
	cur += copy(buf[cur:], val)
	// 9-byte flags+expiry trailer left zeroed: no TTL, no NX/XX flags.
	return buf
}

func (g *Generator) encodeMultiKey(op protocol.Opcode, n int) []byte {
	keys := make([][]byte, n)
	size := 4 + 2
	for i := range keys {
		g.counter++
		keys[i] = g.key()
		size += 2 + len(keys[i])
	}
	buf := make([]byte, size)
	binary.BigEndian.PutUint16(buf[0:], uint16(op))
	binary.BigEndian.PutUint16(buf[2:], g.mux)
	binary.BigEndian.PutUint16(buf[4:], uint16(n))
	cur := 6
	for _, k := range keys {
		binary.BigEndian.PutUint16(buf[cur:], uint16(len(k)))
		cur += 2
		cur += copy(buf[cur:], k)
	}
	return buf
}

func (g *Generator) encodeHSet() []byte {
	key := g.key()
	field := []byte("f1")
	val := g.value()
	size := 4 + 2 + len(key) + 2 + 2 + len(field) + 4 + len(val)
	buf := make([]byte, size)
	binary.BigEndian.PutUint16(buf[0:], uint16(protocol.OpHSet))
	binary.BigEndian.PutUint16(buf[2:], g.mux)
	cur := 4
	binary.BigEndian.PutUint16(buf[cur:], uint16(len(key)))
	cur += 2
	cur += copy(buf[cur:], key)
	binary.BigEndian.PutUint16(buf[cur:], 1) // one field/value pair
	cur += 2
	binary.BigEndian.PutUint16(buf[cur:], uint16(len(field)))
	cur += 2
	cur += copy(buf[cur:], field)
	binary.BigEndian.PutUint32(buf[cur:], uint32(len(val)))
	cur += 4
	cur += copy(buf[cur:], val)
	return buf
}

func (g *Generator) encodeZAdd() []byte {
	key := g.key()
	member := []byte("m1")
	size := 4 + 2 + len(key) + 1 + 2 + 8 + 2 + len(member)
	buf := make([]byte, size)
	binary.BigEndian.PutUint16(buf[0:], uint16(protocol.OpZAdd))
	binary.BigEndian.PutUint16(buf[2:], g.mux)
	cur := 4
	binary.BigEndian.PutUint16(buf[cur:], uint16(len(key)))
	cur += 2
	cur += copy(buf[cur:], key)
	buf[cur] = 0 // flags
	cur++
	binary.BigEndian.PutUint16(buf[cur:], 1) // one score/member pair
	cur += 2
	binary.BigEndian.PutUint64(buf[cur:], uint64(g.counter))
	cur += 8
	binary.BigEndian.PutUint16(buf[cur:], uint16(len(member)))
	cur += 2
	copy(buf[cur:], member)
	return buf
}

func (g *Generator) encodeLPush() []byte {
	key := g.key()
	elem := g.value()
	size := 4 + 2 + len(key) + 2 + 2 + len(elem)
	buf := make([]byte, size)
	binary.BigEndian.PutUint16(buf[0:], uint16(protocol.OpLPush))
	binary.BigEndian.PutUint16(buf[2:], g.mux)
	cur := 4
	binary.BigEndian.PutUint16(buf[cur:], uint16(len(key)))
	cur += 2
	cur += copy(buf[cur:], key)
	binary.BigEndian.PutUint16(buf[cur:], 1)
	cur += 2
	binary.BigEndian.PutUint16(buf[cur:], uint16(len(elem)))
	cur += 2
	copy(buf[cur:], elem)
	return buf
}

// Stream writes n frames into a single contiguous buffer and returns the
// concatenated result plus each frame's length, so a caller can walk
// frame boundaries without re-parsing.
func (g *Generator) Stream(n int) (data []byte, lengths []int) {
	lengths = make([]int, 0, n)
	for i := 0; i < n; i++ {
		frame := g.Next()
		lengths = append(lengths, len(frame))
		data = append(data, frame...)
	}
	return data, lengths
}
