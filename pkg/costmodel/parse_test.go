package costmodel_test

import (
	"testing"

	"github.com/farck/network-testing/pkg/costmodel"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		percent float64
		symbol  string
		ok      bool
	}{
		{
			name:    "kernel symbol row",
			line:    "    12.34%  ksoftirqd/3  [kernel.vmlinux]  [k] fib_table_lookup",
			percent: 12.34,
			symbol:  "fib_table_lookup",
			ok:      true,
		},
		{
			name:    "integer percent",
			line:    "5%  swapper  [kernel.vmlinux]  [k] do_idle",
			percent: 5,
			symbol:  "do_idle",
			ok:      true,
		},
		{
			name:    "descriptor with internal whitespace",
			line:    "  0.50%  my command name  lib.so  [.] handler",
			percent: 0.5,
			symbol:  "handler",
			ok:      true,
		},
		{
			name: "single space after percent",
			line: "12.34% ksoftirqd/3  [kernel.vmlinux]  [k] fib_table_lookup",
		},
		{
			name: "no trailing symbol token",
			line: "12.34%  descriptoronly",
		},
		{
			name: "comment line",
			line: "# Overhead  Command  Shared Object  Symbol",
		},
		{
			name: "separator line",
			line: "# ........  .......  .............  ......",
		},
		{
			name: "empty line",
			line: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			percent, symbol, ok := costmodel.ParseLine(tt.line)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !tt.ok {
				return
			}
			if percent != tt.percent {
				t.Errorf("percent = %v, want %v", percent, tt.percent)
			}
			if symbol != tt.symbol {
				t.Errorf("symbol = %q, want %q", symbol, tt.symbol)
			}
		})
	}
}
