// Package costmodel converts the relative self-time percentages of a CPU
// sampling report into absolute per-packet nanosecond costs, and renders
// overlapping group views over the resulting symbol table.
package costmodel

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/pkg/errors"
	log "github.com/rs/zerolog"
)

// Entry is the accumulated cost of a single symbol.
type Entry struct {
	Symbol  string
	Percent float64 // cumulative sample percentage
	Nanosec float64 // estimated per-packet cost, always derived from Percent
}

// Table accumulates per-symbol sample percentages from one report run.
// It only grows during collection and is read-only afterwards.
type Table struct {
	entries    map[string]*Entry
	nsPerEvent float64
	sumPercent float64
	sumNanosec float64
	logger     log.Logger
}

func NewTable(nsPerEvent float64, logger log.Logger) *Table {
	return &Table{
		entries:    make(map[string]*Entry),
		nsPerEvent: nsPerEvent,
		logger:     logger,
	}
}

// Record merges one report row into the table. A symbol seen twice means the
// report split its samples across rows (e.g. by call context): the
// percentages are added up and the nanosecond estimate is recomputed from the
// merged percentage, so the running sums never double-count a symbol.
func (t *Table) Record(percent float64, symbol string) {
	e, ok := t.entries[symbol]
	if !ok {
		e = &Entry{Symbol: symbol, Percent: percent}
		e.Nanosec = t.nsPerEvent * e.Percent / 100
		t.entries[symbol] = e
		t.sumPercent += percent
		t.sumNanosec += e.Nanosec

		return
	}

	t.logger.Warn().
		Str("symbol", symbol).
		Float64("percent", percent).
		Msg("duplicate symbol row, merging samples")

	t.sumNanosec -= e.Nanosec
	e.Percent += percent
	e.Nanosec = t.nsPerEvent * e.Percent / 100
	t.sumPercent += percent
	t.sumNanosec += e.Nanosec
}

// ReadReport consumes a report line stream and records every row that parses.
// Rejected lines are counted and logged at debug level, never fatal.
func (t *Table) ReadReport(r io.Reader) (parsed, skipped int, err error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		percent, symbol, ok := ParseLine(line)
		if !ok {
			skipped++
			t.logger.Debug().Str("line", line).Msg("skipping unparsable report line")
			continue
		}

		t.Record(percent, symbol)
		parsed++
	}
	if err := scanner.Err(); err != nil {
		return parsed, skipped, errors.Wrap(err, "error reading the report stream")
	}

	return parsed, skipped, nil
}

// Get returns the entry for a symbol, if it was observed in the report.
func (t *Table) Get(symbol string) (*Entry, bool) {
	e, ok := t.entries[symbol]

	return e, ok
}

// Symbols returns every symbol name observed, in no particular order.
func (t *Table) Symbols() []string {
	symbols := make([]string, 0, len(t.entries))
	for symbol := range t.entries {
		symbols = append(symbols, symbol)
	}

	return symbols
}

func (t *Table) Len() int {
	return len(t.entries)
}

// NanosecPerEvent returns the cost of one full event interval, 10^9 divided
// by the processing rate the table was built for.
func (t *Table) NanosecPerEvent() float64 {
	return t.nsPerEvent
}

// Totals returns the running sums of attributed percent and nanoseconds
// across every entry recorded so far.
func (t *Table) Totals() (percent, nanosec float64) {
	return t.sumPercent, t.sumNanosec
}

// Dump writes the raw table state, one entry per line in symbol order.
func (t *Table) Dump(w io.Writer) {
	symbols := t.Symbols()
	sort.Strings(symbols)

	fmt.Fprintf(w, "table: ns_per_packet=%.1f sum_percent=%.2f sum_ns=%.1f\n",
		t.nsPerEvent, t.sumPercent, t.sumNanosec)
	for _, symbol := range symbols {
		e := t.entries[symbol]
		fmt.Fprintf(w, "  %-48s %6.2f%% %10.1f ns\n", e.Symbol, e.Percent, e.Nanosec)
	}
}
