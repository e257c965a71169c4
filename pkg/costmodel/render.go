package costmodel

import (
	"fmt"
	"io"
	"sort"
)

// Render prints the given symbols sorted by descending percent, one line per
// symbol with its estimated per-packet nanosecond cost. Iteration stops at
// the first symbol below limit, with a notice naming it; a limit of 0 never
// truncates. The trailing summary reconciles the directly accumulated
// nanosecond sum against one recomputed from the percent sum, to expose
// rounding drift at low percentages.
//
// Symbols with equal percent are ordered by name ascending, so the output is
// deterministic across runs.
func (t *Table) Render(w io.Writer, header string, symbols []string, limit float64) {
	entries := make([]*Entry, 0, len(symbols))
	for _, symbol := range symbols {
		if e, ok := t.Get(symbol); ok {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Percent != entries[j].Percent {
			return entries[i].Percent > entries[j].Percent
		}

		return entries[i].Symbol < entries[j].Symbol
	})

	fmt.Fprintf(w, "\nReport: %s\n", header)

	var sumPercent, sumNanosec float64
	for _, e := range entries {
		if limit > 0 && e.Percent < limit {
			fmt.Fprintf(w, " (cut off at %s, below limit %.2f%%)\n", e.Symbol, limit)
			break
		}

		fmt.Fprintf(w, " %6.2f%% ~= %8.1f ns <= %s\n", e.Percent, e.Nanosec, e.Symbol)
		sumPercent += e.Percent
		sumNanosec += e.Nanosec
	}

	fmt.Fprintf(w, " Sum: %.2f%% => calc: %.1f ns (sum: %.1f ns) => Total: %.1f ns\n",
		sumPercent, t.nsPerEvent*sumPercent/100, sumNanosec, t.nsPerEvent)
}
