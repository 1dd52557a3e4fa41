package gacha

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kizuna-dev/teambuilder/internal/domain"
)

func testConstellation() *domain.Constellation {
	return &domain.Constellation{
		ID:            "orion",
		Name:          "Orion",
		Element:       "fire",
		BaseDropRates: domain.DropRates{Legendary: 1, Epic: 9, Rare: 30, Normal: 60},
		CharacterPool: map[domain.Rarity][]string{
			domain.RarityLegendary: {"rigel"},
			domain.RarityEpic:      {"betelgeuse", "bellatrix"},
			domain.RarityRare:      {"saiph", "alnitak", "alnilam"},
			domain.RarityNormal:    {"mintaka", "meissa", "hatysa", "tabit"},
		},
	}
}

func TestEngine_Pull_DebitsFiveStarsPerDraw(t *testing.T) {
	tests := []struct {
		name    string
		balance int
		count   int
	}{
		{"single pull", 5, 1},
		{"multi pull", 100, 10},
		{"odd count", 1000, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := NewEngine(NewSeededRNG(42))
			req := Requester{UserID: uuid.New(), KizunaStars: tt.balance}

			result, err := engine.Pull(context.Background(), testConstellation(), req, tt.count, domain.PlatformBonuses{})
			require.NoError(t, err)

			assert.Len(t, result.Outcomes, tt.count)
			assert.Equal(t, 5*tt.count, result.TotalCost)
			assert.Equal(t, tt.balance-5*tt.count, result.RemainingBalance)

			spent := 0
			for _, o := range result.Outcomes {
				spent += o.KizunaStarsSpent
				assert.Equal(t, req.UserID, o.UserID)
				assert.Equal(t, "orion", o.ConstellationID)
				assert.True(t, o.CharacterRarity.IsValid())
				require.NotNil(t, o.CharacterID)
			}
			assert.Equal(t, result.TotalCost, spent)
		})
	}
}

func TestEngine_Pull_ExactBalance(t *testing.T) {
	engine := NewEngine(NewSeededRNG(1))
	req := Requester{UserID: uuid.New(), KizunaStars: 50}

	result, err := engine.Pull(context.Background(), testConstellation(), req, 10, domain.PlatformBonuses{})
	require.NoError(t, err)

	assert.Len(t, result.Outcomes, 10)
	assert.Equal(t, 0, result.RemainingBalance)
}

func TestEngine_Pull_InsufficientCurrency(t *testing.T) {
	engine := NewEngine(NewSeededRNG(1))
	req := Requester{UserID: uuid.New(), KizunaStars: 50}

	result, err := engine.Pull(context.Background(), testConstellation(), req, 11, domain.PlatformBonuses{})

	require.ErrorIs(t, err, domain.ErrInsufficientCurrency)
	assert.Contains(t, err.Error(), "short by 5")
	var shortfall *domain.ShortfallError
	require.True(t, errors.As(err, &shortfall))
	assert.Equal(t, 55, shortfall.Need)
	assert.Equal(t, 5, shortfall.Shortfall())
	assert.Nil(t, result)
	assert.Equal(t, 50, req.KizunaStars)
}

func TestEngine_Pull_InvalidCount(t *testing.T) {
	engine := NewEngine(NewSeededRNG(1))
	req := Requester{UserID: uuid.New(), KizunaStars: 50}

	for _, count := range []int{0, -1, math.MinInt} {
		_, err := engine.Pull(context.Background(), testConstellation(), req, count, domain.PlatformBonuses{})
		assert.ErrorIs(t, err, domain.ErrInvalidPullCount, "count %d", count)
	}
}

func TestEngine_Pull_NilConstellation(t *testing.T) {
	engine := NewEngine(NewSeededRNG(1))

	_, err := engine.Pull(context.Background(), nil, Requester{KizunaStars: 50}, 1, domain.PlatformBonuses{})
	assert.ErrorIs(t, err, domain.ErrConstellationNotFound)
}

func TestEngine_Pull_CostOverflowIsInsufficient(t *testing.T) {
	engine := NewEngine(NewSeededRNG(1))
	req := Requester{KizunaStars: math.MaxInt}

	_, err := engine.Pull(context.Background(), testConstellation(), req, math.MaxInt, domain.PlatformBonuses{})
	assert.ErrorIs(t, err, domain.ErrInsufficientCurrency)
}

func TestEngine_Pull_EmptyPoolYieldsNilCharacter(t *testing.T) {
	c := testConstellation()
	c.CharacterPool[domain.RarityNormal] = nil

	// 0.99 * 100 = 99 lands in normal
	engine := NewEngine(&SequenceRNG{Values: []float64{0.99}})
	result, err := engine.Pull(context.Background(), c, Requester{KizunaStars: 5}, 1, domain.PlatformBonuses{})
	require.NoError(t, err)

	require.Len(t, result.Outcomes, 1)
	assert.Nil(t, result.Outcomes[0].CharacterID)
	assert.Equal(t, domain.RarityNormal, result.Outcomes[0].CharacterRarity)
	assert.Equal(t, 5, result.Outcomes[0].KizunaStarsSpent)
	assert.Equal(t, 0, result.RemainingBalance)
}

func TestEngine_Pull_PinnedRolls(t *testing.T) {
	// Each draw consumes one tier roll and one character roll.
	rng := &SequenceRNG{Values: []float64{
		0.005, 0.0, // legendary, rigel
		0.05, 0.6, // epic, bellatrix
		0.2, 0.99, // rare, alnilam
		0.7, 0.25, // normal, meissa
	}}
	engine := NewEngine(rng)

	result, err := engine.Pull(context.Background(), testConstellation(), Requester{KizunaStars: 20}, 4, domain.PlatformBonuses{})
	require.NoError(t, err)

	want := []struct {
		rarity domain.Rarity
		id     string
	}{
		{domain.RarityLegendary, "rigel"},
		{domain.RarityEpic, "bellatrix"},
		{domain.RarityRare, "alnilam"},
		{domain.RarityNormal, "meissa"},
	}
	require.Len(t, result.Outcomes, len(want))
	for i, w := range want {
		assert.Equal(t, w.rarity, result.Outcomes[i].CharacterRarity, "draw %d", i)
		require.NotNil(t, result.Outcomes[i].CharacterID)
		assert.Equal(t, w.id, *result.Outcomes[i].CharacterID, "draw %d", i)
	}
}

func TestEngine_Pull_ReportsEffectiveRates(t *testing.T) {
	engine := NewEngine(NewSeededRNG(7))
	bonuses := domain.PlatformBonuses{Nintendo: true, PlayStation: true, PC: true}

	result, err := engine.Pull(context.Background(), testConstellation(), Requester{KizunaStars: 5}, 1, bonuses)
	require.NoError(t, err)

	assert.InDelta(t, 1.6, result.EffectiveRates.Legendary, 1e-9)
	assert.InDelta(t, 59.4, result.EffectiveRates.Normal, 1e-9)
	assert.Equal(t, bonuses, result.PlatformBonuses)
}

func TestEngine_Pull_DoesNotMutateConstellation(t *testing.T) {
	c := testConstellation()
	before := c.BaseDropRates
	engine := NewEngine(NewSeededRNG(3))

	_, err := engine.Pull(context.Background(), c, Requester{KizunaStars: 50}, 10,
		domain.PlatformBonuses{Nintendo: true, PC: true})
	require.NoError(t, err)

	assert.Equal(t, before, c.BaseDropRates)
}

func TestNewEngine_NilSourceUsesDefault(t *testing.T) {
	engine := NewEngine(nil)

	result, err := engine.Pull(context.Background(), testConstellation(), Requester{KizunaStars: 10}, 2, domain.PlatformBonuses{})
	require.NoError(t, err)
	assert.Len(t, result.Outcomes, 2)
}

func TestCost(t *testing.T) {
	cost, ok := Cost(10)
	assert.True(t, ok)
	assert.Equal(t, 50, cost)

	_, ok = Cost(math.MaxInt)
	assert.False(t, ok)
}

func TestSequenceRNG_Wraps(t *testing.T) {
	rng := &SequenceRNG{Values: []float64{0.1, 0.2}}
	assert.Equal(t, 0.1, rng.Float64())
	assert.Equal(t, 0.2, rng.Float64())
	assert.Equal(t, 0.1, rng.Float64())

	assert.Equal(t, 0.0, (&SequenceRNG{}).Float64())
}

func TestDefaultRNG_Range(t *testing.T) {
	rng := DefaultRNG()
	for i := 0; i < 1000; i++ {
		v := rng.Float64()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}
