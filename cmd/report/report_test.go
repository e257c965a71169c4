package report_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	log "github.com/rs/zerolog"

	"github.com/farck/network-testing/cmd/report"
	"github.com/farck/network-testing/internal/commands/options"
)

func newTestOptions(out io.Writer) *options.CommonOptions {
	return options.NewCommonOptions(
		options.WithContext(context.Background()),
		options.WithLogger(log.Nop()),
		options.WithOutput(out),
	)
}

func TestReportCommand(t *testing.T) {
	reportText := `# Overhead  Command      Shared Object     Symbol
# ........  ...........  ................  ......

    60.00%  ksoftirqd/3  [kernel.vmlinux]  [k] fib_table_lookup
    30.00%  ksoftirqd/3  [kernel.vmlinux]  [k] mlx5e_skb_from_cqe
`
	path := filepath.Join(t.TempDir(), "report.txt")
	if err := os.WriteFile(path, []byte(reportText), 0o600); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	cmd := report.NewCommand(newTestOptions(&buf))
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--pps", "1000000", "--cpu", "3", "--input", path})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Report: ALL functions") {
		t.Errorf("full report header missing:\n%s", out)
	}
	// 1 Mpps means a 1000 ns budget, so 60% is 600 ns.
	if !strings.Contains(out, "60.00% ~=    600.0 ns <= fib_table_lookup") {
		t.Errorf("attributed cost line missing:\n%s", out)
	}
	if !strings.Contains(out, "Report: functions NOT included in group reports") {
		t.Errorf("negative report header missing:\n%s", out)
	}
}

func TestReportCommandRejectsNonPositiveRate(t *testing.T) {
	var buf bytes.Buffer
	cmd := report.NewCommand(newTestOptions(&buf))
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--pps", "0", "--cpu", "3"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an error for a zero packet rate")
	}
	if buf.Len() != 0 {
		t.Errorf("nothing must be rendered on a configuration error:\n%s", buf.String())
	}
}

func TestReportCommandRequiresFlags(t *testing.T) {
	cmd := report.NewCommand(newTestOptions(io.Discard))
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an error when pps and cpu are missing")
	}
}
