package costmodel

import (
	"fmt"
	"io"
	"os"
	"sort"

	log "github.com/rs/zerolog"
)

// builtinGroups is the fixed sequence of detailed views rendered after the
// full report. The explicit symbol lists cover functions whose names do not
// match the group's patterns; overlap between groups is allowed and reported
// as a diagnostic, not an error.
var builtinGroups = []Group{
	{
		Name:     "drivers",
		Patterns: []string{`eth_type_trans|mlx5|ixgbe|__iowrite64_copy`},
	},
	{
		Name: "DMA",
		Symbols: []string{
			"intel_alloc_iova",
			"intel_map_page",
			"intel_unmap_page",
			"iommu_no_mapping",
			"alloc_iova",
			"alloc_iova_fast",
			"free_iova_fast",
			"__free_iova",
			"find_iova",
			"fq_ring_free",
		},
		Patterns: []string{`dma`, `swiotlb`},
	},
	{
		Name: "page_frag",
		Symbols: []string{
			"get_page_from_freelist",
			"free_pcppages_bulk",
			"__alloc_pages_nodemask",
			"alloc_pages_current",
			"__free_pages_ok",
			"free_unref_page",
			"put_page",
			"__put_page",
			"policy_node",
			"policy_nodemask",
		},
		Patterns: []string{`page_frag`},
	},
	{
		Name: "slab",
		Symbols: []string{
			"kmalloc",
			"__kmalloc",
			"kfree",
			"ksize",
			"kmalloc_slab",
			"memcg_kmem_put_cache",
		},
		Patterns: []string{
			`kmem_cache`,
			`cmpxchg_double_slab`,
			`cmpxchg`,
			`slab`,
			`get_partial_node`,
			`unfreeze_partials`,
		},
	},
	{
		Name:     "skb",
		Patterns: []string{`skb`},
	},
	{
		Name: "network-stack",
		Symbols: []string{
			"__netif_receive_skb",
			"__netif_receive_skb_core",
			"netif_receive_skb_internal",
			"ip_rcv",
			"ip_rcv_finish",
			"udp_v4_early_demux",
			"__udp4_lib_rcv",
			"__udp4_lib_lookup",
			"dev_hard_start_xmit",
			"sch_direct_xmit",
			"validate_xmit_skb",
			"dst_release",
			"fib_table_lookup",
		},
		Patterns: []string{
			`ip_finish_output`,
			`_pick_tx`,
			`_gro_\W+$`,
			`ip_route_`,
			`net_.._action`,
			`softirq`,
		},
	},
	{
		Name:     "GRO",
		Patterns: []string{`^\w+_gro_\w+$`},
	},
	{
		Name:     "locking",
		Patterns: []string{`spin_.*lock`, `mutex`},
	},
}

// Analyzer runs the fixed sequence of views over one collected table: the
// full report with the user's cutoff, the detailed groups with no cutoff,
// and finally the negative report of symbols no group claimed.
type Analyzer struct {
	table  *Table
	out    io.Writer
	logger log.Logger
	limit  float64
	groups []Group
}

func NewAnalyzer(opts ...AnalyzerOption) *Analyzer {
	a := &Analyzer{
		out:    os.Stdout,
		groups: builtinGroups,
	}
	for _, f := range opts {
		f(a)
	}

	return a
}

// Run renders every view in order. The visited record is reset right after
// the full report so that only the detailed group views count towards group
// membership in the negative report.
func (a *Analyzer) Run() {
	visited := make(Visited)

	all := Group{Name: "ALL functions", Patterns: []string{`.*`}, Limit: a.limit}
	a.table.Render(a.out, all.Name, all.Select(a.table, visited), all.Limit)

	visited = make(Visited)

	for i := range a.groups {
		g := &a.groups[i]
		selected := g.Select(a.table, visited)
		a.table.Render(a.out, fmt.Sprintf("functions in group %s", g.Name), selected, g.Limit)
	}

	a.reportOverlaps(visited)

	var missed []string
	for _, symbol := range a.table.Symbols() {
		if _, ok := visited[symbol]; !ok {
			missed = append(missed, symbol)
		}
	}
	a.table.Render(a.out, "functions NOT included in group reports", missed, 0)
}

// reportOverlaps emits one informational diagnostic per symbol that was
// selected by more than one detailed group.
func (a *Analyzer) reportOverlaps(visited Visited) {
	symbols := make([]string, 0, len(visited))
	for symbol, count := range visited {
		if count > 1 {
			symbols = append(symbols, symbol)
		}
	}
	sort.Strings(symbols)

	for _, symbol := range symbols {
		a.logger.Info().
			Str("symbol", symbol).
			Int("groups", visited[symbol]).
			Msg("function selected by more than one group")
	}
}
