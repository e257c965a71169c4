package costmodel

import (
	"regexp"
	"strconv"
)

// reportLine matches one symbol row of `perf report --stdio` output, e.g.
//
//	12.34%  ksoftirqd/3  [kernel.vmlinux]  [k] fib_table_lookup
//
// The percentage must be followed directly by '%' and exactly two spaces.
// The middle columns (command, shared object, symbol type) are deliberately
// not modeled: the last whitespace-separated token on the line is taken as
// the symbol name and everything in between is discarded.
var reportLine = regexp.MustCompile(`^\s*([0-9]+(?:\.[0-9]+)?)%  (.+)\s+(\S+)$`)

// ParseLine extracts the sample percentage and symbol name from one line of
// a perf report. ok is false for header, comment and separator lines.
func ParseLine(line string) (percent float64, symbol string, ok bool) {
	m := reportLine.FindStringSubmatch(line)
	if m == nil {
		return 0, "", false
	}

	percent, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, "", false
	}

	return percent, m[3], true
}
