package perfreport

import log "github.com/rs/zerolog"

type CollectorOption func(c *Collector)

// WithPerfBin sets the perf binary to invoke. Defaults to "perf".
func WithPerfBin(path string) CollectorOption {
	return func(c *Collector) {
		c.perfBin = path
	}
}

// WithCPU sets the pinned CPU the report is restricted to.
func WithCPU(cpu string) CollectorOption {
	return func(c *Collector) {
		c.cpu = cpu
	}
}

// WithInput sets a pre-captured report file to read instead of invoking perf.
func WithInput(path string) CollectorOption {
	return func(c *Collector) {
		c.input = path
	}
}

func WithLogger(logger log.Logger) CollectorOption {
	return func(c *Collector) {
		c.logger = logger
	}
}
