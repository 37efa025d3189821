package bench

import (
	"fmt"

	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"
)

// Exporter serves a Harness's Metrics as a plain-text /metrics endpoint
// using fasthttp, the same HTTP engine shockwave's own competitor
// benchmarks compare against; here it plays the opposite role, serving
// rather than being benchmarked.
type Exporter struct {
	harness *Harness
	server  *fasthttp.Server
}

// NewExporter wires an Exporter to h. Call ListenAndServe to start it.
func NewExporter(h *Harness) *Exporter {
	e := &Exporter{harness: h}
	e.server = &fasthttp.Server{
		Handler: e.handle,
		Name:    "respb-bench",
	}
	return e
}

// ListenAndServe blocks serving /metrics on addr.
func (e *Exporter) ListenAndServe(addr string) error {
	return e.server.ListenAndServe(addr)
}

// Shutdown stops the exporter gracefully.
func (e *Exporter) Shutdown() error {
	return e.server.Shutdown()
}

func (e *Exporter) handle(ctx *fasthttp.RequestCtx) {
	if string(ctx.Path()) != "/metrics" {
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		return
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	s := e.harness.Metrics().Snapshot()
	fmt.Fprintf(buf, "respb_frames_parsed %d\n", s.FramesParsed)
	fmt.Fprintf(buf, "respb_frames_written %d\n", s.FramesWritten)
	fmt.Fprintf(buf, "respb_parse_errors %d\n", s.ParseErrors)
	fmt.Fprintf(buf, "respb_bytes_processed %d\n", s.BytesProcessed)
	fmt.Fprintf(buf, "respb_average_parse_nanoseconds %f\n", s.AverageParseNanos)

	ctx.SetContentType("text/plain; version=0.0.4")
	ctx.SetBody(buf.Bytes())
}
