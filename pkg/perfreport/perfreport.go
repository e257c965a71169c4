// Package perfreport acquires the raw sampling report: it invokes
// `perf report` restricted to a single pinned CPU and streams its text
// output into a costmodel table. A pre-captured report file can be used
// instead of invoking perf.
package perfreport

import (
	"context"
	"io"
	"os"
	"os/exec"

	"golang.org/x/sys/unix"

	"github.com/pkg/errors"
	log "github.com/rs/zerolog"

	"github.com/farck/network-testing/pkg/costmodel"
)

type Collector struct {
	perfBin string
	cpu     string
	input   string
	logger  log.Logger
}

func NewCollector(opts ...CollectorOption) *Collector {
	c := &Collector{perfBin: "perf"}
	for _, f := range opts {
		f(c)
	}

	return c
}

// Args returns the perf invocation: no child accumulation, forced re-read of
// the data file, plain text output, restricted to the pinned CPU.
func (c *Collector) Args() []string {
	return []string{"report", "--no-children", "-f", "--stdio", "-C", c.cpu}
}

// Collect fills the table from the report source: the input file when one is
// configured, otherwise a one-shot perf invocation. The line stream is
// released on every exit path, so Collect can be re-entered.
func (c *Collector) Collect(ctx context.Context, table *costmodel.Table) error {
	if c.input != "" {
		f, err := os.Open(c.input)
		if err != nil {
			return errors.Wrap(err, "error opening the report file")
		}
		defer f.Close()

		return c.read(f, table)
	}

	if unix.Geteuid() != 0 {
		c.logger.Debug().Msg("not running as root, kernel symbols may stay unresolved")
	}

	cmd := exec.CommandContext(ctx, c.perfBin, c.Args()...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return errors.Wrap(err, "error opening the perf stdout pipe")
	}

	c.logger.Debug().Str("perf", c.perfBin).Strs("args", c.Args()).Msg("invoking perf")
	if err := cmd.Start(); err != nil {
		return errors.Wrap(err, "error starting perf")
	}

	readErr := c.read(stdout, table)

	// Wait closes the pipe regardless of how the read went.
	if err := cmd.Wait(); err != nil {
		return errors.Wrap(err, "error waiting for perf")
	}

	return readErr
}

func (c *Collector) read(r io.Reader, table *costmodel.Table) error {
	parsed, skipped, err := table.ReadReport(r)
	if err != nil {
		return err
	}

	c.logger.Debug().Int("parsed", parsed).Int("skipped", skipped).Msg("report collected")
	if parsed == 0 {
		c.logger.Warn().Msg("empty report, no symbol rows parsed")
	}

	return nil
}
