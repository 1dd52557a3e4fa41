package gacha

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/kizuna-dev/teambuilder/internal/domain"
	"github.com/kizuna-dev/teambuilder/internal/logger"
)

// Requester is the caller of a pull with the balance read by the caller.
// The engine never writes it back; the caller persists RemainingBalance.
type Requester struct {
	UserID      uuid.UUID
	KizunaStars int
}

// Engine computes gacha pulls. It holds no mutable state besides its
// random source and is safe to share when the source is.
type Engine struct {
	rng RandomSource
}

// NewEngine creates an engine. A nil source falls back to DefaultRNG.
func NewEngine(rng RandomSource) *Engine {
	if rng == nil {
		rng = DefaultRNG()
	}
	return &Engine{rng: rng}
}

// Cost returns the Kizuna Stars needed for count draws, or false when the
// product would overflow.
func Cost(count int) (int, bool) {
	if count > math.MaxInt/domain.KizunaStarsPerDraw {
		return 0, false
	}
	return count * domain.KizunaStarsPerDraw, true
}

// Pull performs count independent draws against the constellation.
// Either every draw happens and the full cost is accounted for once, or an
// error is returned and nothing should be persisted.
func (e *Engine) Pull(ctx context.Context, c *domain.Constellation, req Requester, count int, bonuses domain.PlatformBonuses) (*domain.PullResult, error) {
	if c == nil {
		return nil, domain.ErrConstellationNotFound
	}
	if count < 1 {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidPullCount, count)
	}

	cost, ok := Cost(count)
	if !ok || req.KizunaStars < cost {
		if !ok {
			cost = math.MaxInt
		}
		return nil, &domain.ShortfallError{Need: cost, Have: req.KizunaStars}
	}

	rates := ComputeEffectiveRates(c.BaseDropRates, bonuses)
	table := newRarityTable(rates)

	outcomes := make([]domain.PullOutcome, 0, count)
	for i := 0; i < count; i++ {
		tier := table.pick(e.rng.Float64() * domain.DropRateTotal)
		outcomes = append(outcomes, domain.PullOutcome{
			UserID:           req.UserID,
			ConstellationID:  c.ID,
			CharacterID:      e.drawCharacter(ctx, c, tier),
			CharacterRarity:  tier,
			KizunaStarsSpent: domain.KizunaStarsPerDraw,
		})
	}

	logger.FromContext(ctx).Debug(LogMsgPullComputed,
		LogFieldConstellation, c.ID,
		LogFieldUserID, req.UserID,
		LogFieldPullCount, count,
		LogFieldCost, cost)

	return &domain.PullResult{
		Outcomes:         outcomes,
		TotalCost:        cost,
		RemainingBalance: req.KizunaStars - cost,
		EffectiveRates:   rates,
		PlatformBonuses:  bonuses,
	}, nil
}

// drawCharacter samples uniformly from the tier's pool. An empty pool
// yields nil rather than failing the pull.
func (e *Engine) drawCharacter(ctx context.Context, c *domain.Constellation, tier domain.Rarity) *string {
	pool := c.Pool(tier)
	if len(pool) == 0 {
		logger.FromContext(ctx).Warn(LogMsgEmptyCharacterPool,
			LogFieldConstellation, c.ID,
			LogFieldRarity, tier)
		return nil
	}

	id := pool[e.pickIndex(len(pool))]
	return &id
}

// pickIndex returns a uniform index in [0, n)
func (e *Engine) pickIndex(n int) int {
	idx := int(e.rng.Float64() * float64(n))
	if idx >= n {
		idx = n - 1
	}
	return idx
}
