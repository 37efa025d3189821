package workload

import (
	"testing"

	"github.com/yourusername/respb/pkg/respb/protocol"
)

func TestGeneratorProducesParseableFrames(t *testing.T) {
	g := NewGenerator(DefaultConfig())
	r := protocol.NewReader(protocol.ReaderOptions{})

	for i := 0; i < 200; i++ {
		frame := g.Next()
		res := r.ParseOne(frame, 0)
		if res.Outcome != protocol.OutcomeComplete {
			t.Fatalf("frame %d: outcome = %v, want Complete (err=%v)", i, res.Outcome, res.Err)
		}
		if res.NewOffset != len(frame) {
			t.Fatalf("frame %d: consumed %d of %d bytes", i, res.NewOffset, len(frame))
		}
	}
}

func TestGeneratorStreamBoundaries(t *testing.T) {
	g := NewGenerator(DefaultConfig())
	data, lengths := g.Stream(50)

	r := protocol.NewReader(protocol.ReaderOptions{})
	offset := 0
	for i, l := range lengths {
		res := r.ParseOne(data, offset)
		if res.Outcome != protocol.OutcomeComplete {
			t.Fatalf("frame %d at offset %d: outcome = %v (err=%v)", i, offset, res.Outcome, res.Err)
		}
		if res.NewOffset != offset+l {
			t.Fatalf("frame %d: new offset %d, want %d", i, res.NewOffset, offset+l)
		}
		offset = res.NewOffset
	}
	if offset != len(data) {
		t.Fatalf("consumed %d of %d total bytes", offset, len(data))
	}
}

func TestDefaultConfigFillsZeroFields(t *testing.T) {
	cfg := Config{}.withDefaults()
	if cfg.KeyspaceSize != 10000 || cfg.ValueSize != 64 {
		t.Fatalf("withDefaults produced %+v", cfg)
	}
	if cfg.Mix != DefaultMix {
		t.Fatalf("withDefaults mix = %+v, want DefaultMix", cfg.Mix)
	}
}
