package gacha

import "github.com/kizuna-dev/teambuilder/internal/domain"

// SimulationReport summarises many draws against one constellation
type SimulationReport struct {
	Draws      int
	Expected   domain.DropRates
	Observed   domain.DropRates
	Counts     map[domain.Rarity]int
	Characters map[string]int
	EmptyDraws int
}

// MaxDeviation returns the largest absolute gap, in percentage points,
// between observed and expected rates.
func (r SimulationReport) MaxDeviation() float64 {
	worst := 0.0
	for _, tier := range domain.Rarities {
		d := r.Observed.Weight(tier) - r.Expected.Weight(tier)
		if d < 0 {
			d = -d
		}
		if d > worst {
			worst = d
		}
	}
	return worst
}

// Simulate draws n times without any currency bookkeeping and reports the
// observed tier frequencies next to the effective rates.
func (e *Engine) Simulate(c *domain.Constellation, bonuses domain.PlatformBonuses, n int) SimulationReport {
	rates := ComputeEffectiveRates(c.BaseDropRates, bonuses)
	report := SimulationReport{
		Draws:      n,
		Expected:   rates,
		Counts:     make(map[domain.Rarity]int, len(domain.Rarities)),
		Characters: make(map[string]int),
	}
	if n <= 0 {
		return report
	}

	table := newRarityTable(rates)
	for i := 0; i < n; i++ {
		tier := table.pick(e.rng.Float64() * domain.DropRateTotal)
		report.Counts[tier]++

		pool := c.Pool(tier)
		if len(pool) == 0 {
			report.EmptyDraws++
			continue
		}
		report.Characters[pool[e.pickIndex(len(pool))]]++
	}

	pct := func(tier domain.Rarity) float64 {
		return float64(report.Counts[tier]) / float64(n) * domain.DropRateTotal
	}
	report.Observed = domain.DropRates{
		Legendary: pct(domain.RarityLegendary),
		Epic:      pct(domain.RarityEpic),
		Rare:      pct(domain.RarityRare),
		Normal:    pct(domain.RarityNormal),
	}
	return report
}
