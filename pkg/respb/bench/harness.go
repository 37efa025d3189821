package bench

import (
	"context"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yourusername/respb/pkg/respb/protocol"
	"github.com/yourusername/respb/pkg/respb/workload"
)

// Harness replays a frame stream through the protocol core across
// Config.Workers concurrent goroutines, fanned out with errgroup.Group —
// the same concurrent-worker pattern capacitor's multilayer DAL uses for
// fanning out layer lookups.
type Harness struct {
	cfg     Config
	metrics Metrics
}

// NewHarness constructs a Harness from cfg.
func NewHarness(cfg Config) *Harness {
	return &Harness{cfg: cfg.withDefaults()}
}

// Metrics returns the harness's live metrics. Safe to read concurrently
// with RunGenerated and RunCaptured.
func (h *Harness) Metrics() *Metrics { return &h.metrics }

// segment is one worker's disjoint slice of frame boundaries within a
// shared buffer.
type segment struct {
	data    []byte
	offsets []int
}

// RunGenerated replays a freshly generated workload of cfg.Frames frames,
// splitting them evenly across cfg.Workers goroutines.
func (h *Harness) RunGenerated(ctx context.Context, wcfg workload.Config) error {
	gen := workload.NewGenerator(wcfg)
	data, lengths := gen.Stream(h.cfg.Frames)
	return h.run(ctx, data, lengths)
}

// RunCaptured replays a previously captured, already-decompressed frame
// stream. The caller supplies frame boundary lengths alongside the data
// (the dataset format itself carries no index; callers that need one
// re-derive it by parsing once with a single worker).
func (h *Harness) RunCaptured(ctx context.Context, data []byte, lengths []int) error {
	return h.run(ctx, data, lengths)
}

func (h *Harness) run(ctx context.Context, data []byte, lengths []int) error {
	segments := h.partition(data, lengths)

	g, ctx := errgroup.WithContext(ctx)
	for _, seg := range segments {
		seg := seg
		g.Go(func() error {
			return h.replaySegment(ctx, seg)
		})
	}
	return g.Wait()
}

// partition splits (data, lengths) into h.cfg.Workers contiguous
// segments, each segment owning the sub-slice of data its frames live in.
func (h *Harness) partition(data []byte, lengths []int) []segment {
	n := h.cfg.Workers
	if n > len(lengths) {
		n = len(lengths)
	}
	if n == 0 {
		return nil
	}

	segments := make([]segment, 0, n)
	perWorker := (len(lengths) + n - 1) / n
	offset := 0
	idx := 0
	for idx < len(lengths) {
		end := idx + perWorker
		if end > len(lengths) {
			end = len(lengths)
		}
		start := offset
		segLen := 0
		for _, l := range lengths[idx:end] {
			segLen += l
		}
		segments = append(segments, segment{
			data:    data[start : start+segLen],
			offsets: lengths[idx:end],
		})
		offset += segLen
		idx = end
	}
	return segments
}

func (h *Harness) replaySegment(ctx context.Context, seg segment) error {
	r := protocol.NewReader(protocol.ReaderOptions{})
	w := protocol.NewWriter()
	scratch := make([]byte, 0, 4096)

	cursor := 0
	for _, l := range seg.offsets {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		// Bound the buffer at this frame's known end so an optional
		// trailing field (SET's flags+expiry) is detected even when more
		// frames follow in the segment.
		start := time.Now()
		res := r.ParseOne(seg.data[:cursor+l], cursor)
		h.metrics.RecordParse(res.NewOffset-cursor, time.Since(start), res.Outcome == protocol.OutcomeComplete)

		if res.Outcome != protocol.OutcomeComplete {
			return &ReplayError{Offset: cursor, Err: res.Err}
		}
		cursor = res.NewOffset

		if cap(scratch) < res.NewOffset {
			scratch = make([]byte, res.NewOffset)
		}
		if _, err := w.WriteOne(scratch[:cap(scratch)], res.Command); err == nil {
			h.metrics.RecordWrite()
		}
	}
	return nil
}

// ReplayError wraps a protocol error with the byte offset the harness was
// replaying when it occurred.
type ReplayError struct {
	Offset int
	Err    error
}

func (e *ReplayError) Error() string {
	return "bench: replay failed at offset " + strconv.Itoa(e.Offset) + ": " + e.Err.Error()
}

func (e *ReplayError) Unwrap() error { return e.Err }
