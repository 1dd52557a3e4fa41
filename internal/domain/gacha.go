package domain

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// Rarity is a constellation drop tier
type Rarity string

const (
	RarityLegendary Rarity = "legendary"
	RarityEpic      Rarity = "epic"
	RarityRare      Rarity = "rare"
	RarityNormal    Rarity = "normal"
)

// Rarities lists every tier rarest first. Cumulative drop ranges are laid
// out in this order.
var Rarities = []Rarity{RarityLegendary, RarityEpic, RarityRare, RarityNormal}

// IsValid reports whether r is one of the four known tiers
func (r Rarity) IsValid() bool {
	switch r {
	case RarityLegendary, RarityEpic, RarityRare, RarityNormal:
		return true
	}
	return false
}

// DropRates holds per-tier percentage weights
type DropRates struct {
	Legendary float64 `json:"legendary"`
	Epic      float64 `json:"epic"`
	Rare      float64 `json:"rare"`
	Normal    float64 `json:"normal"`
}

// Weight returns the weight of a single tier
func (d DropRates) Weight(r Rarity) float64 {
	switch r {
	case RarityLegendary:
		return d.Legendary
	case RarityEpic:
		return d.Epic
	case RarityRare:
		return d.Rare
	case RarityNormal:
		return d.Normal
	}
	return 0
}

// Total sums the four weights
func (d DropRates) Total() float64 {
	return d.Legendary + d.Epic + d.Rare + d.Normal
}

// Validate checks that no weight is negative and the weights sum to 100.
func (d DropRates) Validate() error {
	for _, r := range Rarities {
		w := d.Weight(r)
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return fmt.Errorf("%w: %s weight %v", ErrInvalidDropRates, r, w)
		}
	}
	if math.Abs(d.Total()-DropRateTotal) > DropRateTolerance {
		return fmt.Errorf("%w: weights sum to %.3f, want %.1f", ErrInvalidDropRates, d.Total(), DropRateTotal)
	}
	return nil
}

// PlatformBonuses are the per-request platform flags
type PlatformBonuses struct {
	Nintendo    bool `json:"nintendo"`
	PlayStation bool `json:"playstation"`
	PC          bool `json:"pc"`
}

// Count returns how many flags are set
func (b PlatformBonuses) Count() int {
	n := 0
	for _, on := range []bool{b.Nintendo, b.PlayStation, b.PC} {
		if on {
			n++
		}
	}
	return n
}

// Character is a catalog entry that can appear in a constellation pool
type Character struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Element string `json:"element,omitempty"`
	Rarity  Rarity `json:"rarity"`
}

// Constellation is a themed, static pool of obtainable characters
type Constellation struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Element       string              `json:"element"`
	BaseDropRates DropRates           `json:"base_drop_rates"`
	CharacterPool map[Rarity][]string `json:"character_pool"`
}

// Pool returns the character ids eligible at tier r
func (c *Constellation) Pool(r Rarity) []string {
	if c.CharacterPool == nil {
		return nil
	}
	return c.CharacterPool[r]
}

// PullOutcome is one draw's audit record. CharacterID is nil when the
// drawn tier had an empty pool.
type PullOutcome struct {
	UserID           uuid.UUID `json:"user_id"`
	ConstellationID  string    `json:"constellation_id"`
	CharacterID      *string   `json:"character_id"`
	CharacterRarity  Rarity    `json:"character_rarity"`
	KizunaStarsSpent int       `json:"kizuna_stars_spent"`
}

// PullResult is the engine's answer to a pull request
type PullResult struct {
	Outcomes         []PullOutcome   `json:"outcomes"`
	TotalCost        int             `json:"total_cost"`
	RemainingBalance int             `json:"remaining_balance"`
	EffectiveRates   DropRates       `json:"effective_rates"`
	PlatformBonuses  PlatformBonuses `json:"platform_bonuses"`
}

// PullRecord is a persisted PullOutcome
type PullRecord struct {
	ID        uuid.UUID `json:"id"`
	BatchID   uuid.UUID `json:"batch_id"`
	CreatedAt time.Time `json:"created_at"`
	PullOutcome
}

// DrawnCharacter is one draw as shown to the player. ID and Name are nil
// for draws that landed on an empty pool.
type DrawnCharacter struct {
	ID     *string `json:"id"`
	Name   *string `json:"name"`
	Rarity Rarity  `json:"rarity"`
}

// SummonResult is a committed pull with character names resolved
type SummonResult struct {
	BatchID    uuid.UUID        `json:"batch_id"`
	Characters []DrawnCharacter `json:"characters"`
	*PullResult
}
