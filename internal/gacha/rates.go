package gacha

import "github.com/kizuna-dev/teambuilder/internal/domain"

// PlatformBonus returns the total legendary bonus granted by the flags:
// 0.2 percentage points per enabled platform. ComputeEffectiveRates may
// apply less when the normal rate is smaller than this.
func PlatformBonus(bonuses domain.PlatformBonuses) float64 {
	return domain.PlatformBonusStep * float64(bonuses.Count())
}

// ComputeEffectiveRates applies platform bonuses to a constellation's base
// rates. The bonus moves weight from normal to legendary; epic and rare are
// untouched. Normal is clamped at 0 and legendary only receives what normal
// could give up, so the total never rises above the base total.
func ComputeEffectiveRates(base domain.DropRates, bonuses domain.PlatformBonuses) domain.DropRates {
	transfer := PlatformBonus(bonuses)
	available := base.Normal
	if available < 0 {
		available = 0
	}
	if transfer > available {
		transfer = available
	}

	eff := base
	eff.Legendary = base.Legendary + transfer
	eff.Normal = available - transfer
	return eff
}
