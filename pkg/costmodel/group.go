package costmodel

import "regexp"

// Visited tracks, per symbol, how many detailed group views selected it
// during one analysis pass. It feeds the trailing negative report and the
// multi-group membership diagnostics.
type Visited map[string]int

// Group is one named view over the symbol table: an allowlist of symbols to
// include when present, plus case-insensitive patterns matched against every
// symbol in the table. Groups are data, not code: adding a view is a matter
// of appending to the built-in list.
type Group struct {
	Name     string
	Symbols  []string
	Patterns []string
	Limit    float64
}

// Select returns the deduplicated set of table symbols picked by the group's
// allowlist and patterns, in no particular order (the reporter sorts later).
// Each symbol entering the set bumps its visited count once. Allowlisted
// symbols absent from the table are skipped silently: a group may name
// functions that never showed up in a given run.
func (g *Group) Select(t *Table, visited Visited) []string {
	seen := make(map[string]bool, len(g.Symbols))
	selected := make([]string, 0, len(g.Symbols))

	add := func(symbol string) {
		if seen[symbol] {
			return
		}
		seen[symbol] = true
		visited[symbol]++
		selected = append(selected, symbol)
	}

	for _, symbol := range g.Symbols {
		if _, ok := t.Get(symbol); ok {
			add(symbol)
		}
	}

	for _, pattern := range g.Patterns {
		re := regexp.MustCompile(`(?i)` + pattern)
		for _, symbol := range t.Symbols() {
			if re.MatchString(symbol) {
				add(symbol)
			}
		}
	}

	return selected
}
