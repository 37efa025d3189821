// Package bench drives the RESPB protocol core against a synthetic or
// captured workload and reports latency/throughput/allocation metrics —
// the benchmark harness and metrics collector spec.md places outside the
// protocol core's scope but names as required collaborators (§1, §6).
package bench

// Config shapes one benchmark run: how much work to generate, how many
// concurrent replay workers to use, and where to expose live metrics.
// Field-with-doc-comment-default layout follows shockwave's server.Config
// convention.
type Config struct {
	// Frames is the total number of synthetic frames to replay across all
	// workers. Default 100000.
	Frames int

	// Workers is the number of concurrent replay goroutines. Default 4.
	Workers int

	// MetricsAddr, if non-empty, is the listen address for the fasthttp
	// /metrics exporter (e.g. ":9090"). Empty disables the exporter.
	MetricsAddr string
}

func (c Config) withDefaults() Config {
	if c.Frames <= 0 {
		c.Frames = 100000
	}
	if c.Workers <= 0 {
		c.Workers = 4
	}
	return c
}
