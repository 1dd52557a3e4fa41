package gacha

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kizuna-dev/teambuilder/internal/domain"
)

func TestSimulate_ConvergesToEffectiveRates(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping monte carlo run in short mode")
	}

	cases := []struct {
		name    string
		bonuses domain.PlatformBonuses
	}{
		{"no bonus", domain.PlatformBonuses{}},
		{"one bonus", domain.PlatformBonuses{PC: true}},
		{"all bonuses", domain.PlatformBonuses{Nintendo: true, PlayStation: true, PC: true}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			engine := NewEngine(NewSeededRNG(20240601))
			report := engine.Simulate(testConstellation(), tc.bonuses, 100_000)

			require.Equal(t, 100_000, report.Draws)
			assert.LessOrEqual(t, report.MaxDeviation(), 0.5,
				"observed %+v expected %+v", report.Observed, report.Expected)
			assert.Zero(t, report.EmptyDraws)
		})
	}
}

func TestSimulate_CharacterSamplingIsUniform(t *testing.T) {
	c := &domain.Constellation{
		ID:            "flat",
		BaseDropRates: domain.DropRates{Normal: 100},
		CharacterPool: map[domain.Rarity][]string{
			domain.RarityNormal: {"a", "b", "c", "d"},
		},
	}
	engine := NewEngine(NewSeededRNG(99))

	report := engine.Simulate(c, domain.PlatformBonuses{}, 40_000)

	require.Equal(t, 40_000, report.Counts[domain.RarityNormal])
	for _, id := range []string{"a", "b", "c", "d"} {
		assert.InDelta(t, 10_000, report.Characters[id], 400, "character %s", id)
	}
}

func TestSimulate_CountsEmptyDraws(t *testing.T) {
	c := &domain.Constellation{
		ID:            "hollow",
		BaseDropRates: domain.DropRates{Rare: 50, Normal: 50},
		CharacterPool: map[domain.Rarity][]string{
			domain.RarityRare: {"x"},
		},
	}
	engine := NewEngine(NewSeededRNG(5))

	report := engine.Simulate(c, domain.PlatformBonuses{}, 1000)

	assert.Equal(t, report.Counts[domain.RarityNormal], report.EmptyDraws)
	assert.Equal(t, report.Counts[domain.RarityRare], report.Characters["x"])
	assert.Zero(t, report.Counts[domain.RarityLegendary])
}

func TestSimulate_NonPositiveDraws(t *testing.T) {
	engine := NewEngine(NewSeededRNG(5))

	report := engine.Simulate(testConstellation(), domain.PlatformBonuses{}, 0)

	assert.Zero(t, report.Draws)
	assert.Empty(t, report.Counts)
	assert.Equal(t, 60.0, report.Expected.Normal)
}

func TestSimulationReport_MaxDeviation(t *testing.T) {
	r := SimulationReport{
		Expected: domain.DropRates{Legendary: 1, Epic: 9, Rare: 30, Normal: 60},
		Observed: domain.DropRates{Legendary: 1.2, Epic: 8.5, Rare: 30.1, Normal: 60.2},
	}
	assert.InDelta(t, 0.5, r.MaxDeviation(), 1e-9)
}
