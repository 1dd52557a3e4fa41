package gacha

import (
	"math"
	"sort"

	"github.com/kizuna-dev/teambuilder/internal/domain"
)

// rarityTable is a cumulative distribution over the rarity tiers.
// bounds[i] is the exclusive upper edge of tiers[i]; the last tier takes
// the remainder of [0, 100) so it is bounded by +Inf.
type rarityTable struct {
	tiers  []domain.Rarity
	bounds []float64
}

// newRarityTable lays tiers out rarest first: [0, legendary),
// [legendary, legendary+epic), [.., +rare), remainder normal.
func newRarityTable(rates domain.DropRates) rarityTable {
	t := rarityTable{
		tiers:  domain.Rarities,
		bounds: make([]float64, len(domain.Rarities)),
	}

	acc := 0.0
	last := len(t.tiers) - 1
	for i, tier := range t.tiers[:last] {
		acc += rates.Weight(tier)
		t.bounds[i] = acc
	}
	t.bounds[last] = math.Inf(1)
	return t
}

// pick returns the tier whose range contains roll. A roll sitting exactly
// on a boundary belongs to the less rare tier.
func (t rarityTable) pick(roll float64) domain.Rarity {
	i := sort.Search(len(t.bounds), func(i int) bool {
		return roll < t.bounds[i]
	})
	if i >= len(t.tiers) {
		i = len(t.tiers) - 1
	}
	return t.tiers[i]
}
