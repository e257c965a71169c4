package report

import (
	"github.com/pkg/errors"
	log "github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/farck/network-testing/internal/commands/options"
	"github.com/farck/network-testing/pkg/costmodel"
	"github.com/farck/network-testing/pkg/perfreport"
)

const nanosecPerSec = 1e9

type Options struct {
	pps     float64
	cpu     string
	limit   float64
	dump    bool
	input   string
	perfBin string
	*options.CommonOptions
}

func NewCommand(opts *options.CommonOptions) *cobra.Command {
	o := &Options{CommonOptions: opts}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "report converts perf report percentages into per-packet nanosecond costs",
		RunE:  o.Run,
	}
	cmd.Flags().Float64Var(&o.pps, "pps", 0, "the measured packets-per-second processing rate")
	cmd.Flags().StringVar(&o.cpu, "cpu", "", "the pinned CPU the samples are restricted to")
	cmd.Flags().Float64Var(&o.limit, "limit", 0.10, "cutoff percentage for the full report")
	cmd.Flags().BoolVar(&o.dump, "dump", false, "dump the raw symbol table after collection")
	cmd.Flags().StringVar(&o.input, "input", "", "read a saved perf report text file instead of invoking perf")
	cmd.Flags().StringVar(&o.perfBin, "perf", "perf", "the perf binary to invoke")
	cmd.MarkFlagRequired("pps")
	cmd.MarkFlagRequired("cpu")

	return cmd
}

func (o *Options) Run(_ *cobra.Command, _ []string) error {
	if o.Debug {
		o.Logger = o.Logger.Level(log.DebugLevel)
	}
	if o.pps <= 0 {
		return errors.New("the packet rate must be greater than zero")
	}

	table := costmodel.NewTable(nanosecPerSec/o.pps, o.Logger)

	collector := perfreport.NewCollector(
		perfreport.WithPerfBin(o.perfBin),
		perfreport.WithCPU(o.cpu),
		perfreport.WithInput(o.input),
		perfreport.WithLogger(o.Logger),
	)
	if err := collector.Collect(o.Ctx, table); err != nil {
		// A failed or interrupted perf run still leaves a usable partial
		// table; report whatever was collected.
		o.Logger.Warn().Err(err).Msg("report collection failed")
	}

	if o.dump {
		table.Dump(o.Output)
	}

	analyzer := costmodel.NewAnalyzer(
		costmodel.WithTable(table),
		costmodel.WithOutput(o.Output),
		costmodel.WithLogger(o.Logger),
		costmodel.WithLimit(o.limit),
	)
	analyzer.Run()

	return nil
}
