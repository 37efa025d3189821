package bench

import (
	"sync/atomic"
	"time"
)

// Metrics accumulates counters a Harness run produces. All fields are
// updated with atomic operations so concurrent replay workers can share
// one Metrics value without external locking, mirroring shockwave's
// atomic-counter BufferPool metrics.
type Metrics struct {
	FramesParsed    atomic.Uint64
	FramesWritten   atomic.Uint64
	ParseErrors     atomic.Uint64
	BytesProcessed  atomic.Uint64
	totalParseNanos atomic.Uint64
}

// RecordParse accounts for one parse call's outcome and latency.
func (m *Metrics) RecordParse(n int, d time.Duration, ok bool) {
	m.FramesParsed.Add(1)
	m.BytesProcessed.Add(uint64(n))
	m.totalParseNanos.Add(uint64(d.Nanoseconds()))
	if !ok {
		m.ParseErrors.Add(1)
	}
}

// RecordWrite accounts for one successful serialize call.
func (m *Metrics) RecordWrite() {
	m.FramesWritten.Add(1)
}

// Snapshot is a point-in-time, non-atomic copy of Metrics suitable for
// reporting or serializing.
type Snapshot struct {
	FramesParsed      uint64
	FramesWritten     uint64
	ParseErrors       uint64
	BytesProcessed    uint64
	AverageParseNanos float64
}

// Snapshot reads every counter once and computes derived rates.
func (m *Metrics) Snapshot() Snapshot {
	parsed := m.FramesParsed.Load()
	s := Snapshot{
		FramesParsed:   parsed,
		FramesWritten:  m.FramesWritten.Load(),
		ParseErrors:    m.ParseErrors.Load(),
		BytesProcessed: m.BytesProcessed.Load(),
	}
	if parsed > 0 {
		s.AverageParseNanos = float64(m.totalParseNanos.Load()) / float64(parsed)
	}
	return s
}
