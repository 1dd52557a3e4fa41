package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kizuna-dev/teambuilder/internal/domain"
	"github.com/kizuna-dev/teambuilder/internal/gacha"
)

var (
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	styleHead  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	styleOK    = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))
	styleFail  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	styleMuted = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))

	rarityColours = map[domain.Rarity]lipgloss.Color{
		domain.RarityLegendary: lipgloss.Color("220"),
		domain.RarityEpic:      lipgloss.Color("135"),
		domain.RarityRare:      lipgloss.Color("39"),
		domain.RarityNormal:    lipgloss.Color("250"),
	}
)

type renderer struct {
	out   io.Writer
	plain bool
}

func newRenderer(out io.Writer, plain bool) *renderer {
	return &renderer{out: out, plain: plain}
}

func (r *renderer) style(s lipgloss.Style, text string) string {
	if r.plain {
		return text
	}
	return s.Render(text)
}

func (r *renderer) report(c *domain.Constellation, bonuses domain.PlatformBonuses, rep gacha.SimulationReport, ok bool) {
	fmt.Fprintln(r.out, r.style(styleTitle, fmt.Sprintf("%s (%s)", c.Name, c.ID)))
	fmt.Fprintln(r.out, r.style(styleMuted, fmt.Sprintf("%d draws, legendary bonus +%.1f pp", rep.Draws, gacha.PlatformBonus(bonuses))))

	fmt.Fprintln(r.out, r.style(styleHead, fmt.Sprintf("  %-10s %9s %9s %9s %8s", "tier", "base", "effective", "observed", "count")))
	for _, tier := range domain.Rarities {
		name := fmt.Sprintf("%-10s", tier)
		if !r.plain {
			name = lipgloss.NewStyle().Foreground(rarityColours[tier]).Render(name)
		}
		fmt.Fprintf(r.out, "  %s %8.3f%% %8.3f%% %8.3f%% %8d\n",
			name,
			c.BaseDropRates.Weight(tier),
			rep.Expected.Weight(tier),
			rep.Observed.Weight(tier),
			rep.Counts[tier])
	}

	if rep.EmptyDraws > 0 {
		fmt.Fprintln(r.out, r.style(styleMuted, fmt.Sprintf("  %d draws landed on an empty pool", rep.EmptyDraws)))
	}
	if top := topCharacters(rep.Characters, 3); top != "" {
		fmt.Fprintln(r.out, r.style(styleMuted, "  most drawn: "+top))
	}

	verdict := fmt.Sprintf("  max deviation %.3f pp", rep.MaxDeviation())
	if ok {
		fmt.Fprintln(r.out, r.style(styleOK, verdict+" OK"))
	} else {
		fmt.Fprintln(r.out, r.style(styleFail, verdict+" FAIL"))
	}
	fmt.Fprintln(r.out)
}

func topCharacters(counts map[string]int, n int) string {
	ids := make([]string, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if counts[ids[i]] != counts[ids[j]] {
			return counts[ids[i]] > counts[ids[j]]
		}
		return ids[i] < ids[j]
	})
	if len(ids) > n {
		ids = ids[:n]
	}
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, fmt.Sprintf("%s=%d", id, counts[id]))
	}
	return strings.Join(parts, ", ")
}
