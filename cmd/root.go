package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/farck/network-testing/cmd/report"
	"github.com/farck/network-testing/internal/commands/options"
)

func NewRootCmd(opts *options.CommonOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ppscost",
		Short: "ppscost estimates per-packet time cost from perf report samples",
		Long: `ppscost converts the self-time percentages of a CPU-cycle perf report
into absolute per-packet nanosecond costs, derived from a known steady-state
packet processing rate on a single pinned core.`,
		DisableAutoGenTag: true,
	}
	cmd.AddCommand(report.NewCommand(opts))
	cmd.PersistentFlags().BoolVar(&opts.Debug, "debug", false, "Sets log level to debug")

	return cmd
}

// Execute adds all child commands to the root commands and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	logger := log.New(os.Stdout).Level(log.InfoLevel)

	go func() {
		<-ctx.Done()
		logger.Info().Msg("terminating...")
		cancel()
	}()

	opts := options.NewCommonOptions(
		options.WithContext(ctx),
		options.WithLogger(logger),
		options.WithOutput(os.Stdout),
	)

	if err := NewRootCmd(opts).Execute(); err != nil {
		os.Exit(1)
	}
}
