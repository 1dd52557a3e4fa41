package main

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/kizuna-dev/teambuilder/internal/config"
	"github.com/kizuna-dev/teambuilder/internal/constellation"
	"github.com/kizuna-dev/teambuilder/internal/domain"
	"github.com/kizuna-dev/teambuilder/internal/gacha"
)

// Simulation defaults
const (
	defaultDraws     = 100_000
	defaultTolerance = 0.5
)

var errToleranceExceeded = errors.New("observed rates drifted past tolerance")

type simOptions struct {
	seedPath       string
	constellations []string
	draws          int
	rngSeed        uint64
	tolerance      float64
	bonuses        domain.PlatformBonuses
	plain          bool
}

func newRootCmd() *cobra.Command {
	opts := &simOptions{}

	cmd := &cobra.Command{
		Use:   "gachasim",
		Short: "Simulate constellation pulls against a seed file",
		Long: `gachasim runs many draws offline against the constellations in a seed
file and compares the observed tier frequencies with the effective rates.
No database or currency is involved.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSimulation(cmd.OutOrStdout(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.seedPath, "seed", config.ConfigPathConstellations, "constellation seed file")
	f.StringSliceVarP(&opts.constellations, "constellation", "c", nil, "constellation ids to simulate (default all)")
	f.IntVarP(&opts.draws, "draws", "n", defaultDraws, "draws per constellation")
	f.Uint64Var(&opts.rngSeed, "rng-seed", 0, "seed for a reproducible run (0 uses the crypto source)")
	f.Float64Var(&opts.tolerance, "tolerance", defaultTolerance, "fail when any tier drifts more than this many percentage points")
	f.BoolVar(&opts.bonuses.Nintendo, domain.PlatformNintendo, false, "apply the Nintendo bonus")
	f.BoolVar(&opts.bonuses.PlayStation, domain.PlatformPlayStation, false, "apply the PlayStation bonus")
	f.BoolVar(&opts.bonuses.PC, domain.PlatformPC, false, "apply the PC bonus")
	f.BoolVar(&opts.plain, "plain", false, "disable colour output")

	return cmd
}

func runSimulation(out io.Writer, opts *simOptions) error {
	if opts.draws < 1 {
		return fmt.Errorf("--draws must be positive, got %d", opts.draws)
	}

	loader := constellation.NewLoader()
	cfg, err := loader.Load(opts.seedPath)
	if err != nil {
		return err
	}
	if err := loader.Validate(cfg); err != nil {
		return err
	}
	_, all := cfg.ToDomain()

	selected, err := selectConstellations(all, opts.constellations)
	if err != nil {
		return err
	}

	rng := gacha.DefaultRNG()
	if opts.rngSeed != 0 {
		rng = gacha.NewSeededRNG(opts.rngSeed)
	}
	engine := gacha.NewEngine(rng)

	r := newRenderer(out, opts.plain)
	failed := false
	for i := range selected {
		report := engine.Simulate(&selected[i], opts.bonuses, opts.draws)
		ok := report.MaxDeviation() <= opts.tolerance
		failed = failed || !ok
		r.report(&selected[i], opts.bonuses, report, ok)
	}

	if failed {
		return fmt.Errorf("%w (%.2f pp)", errToleranceExceeded, opts.tolerance)
	}
	return nil
}

// selectConstellations keeps seed order and rejects unknown ids
func selectConstellations(all []domain.Constellation, ids []string) ([]domain.Constellation, error) {
	if len(ids) == 0 {
		return all, nil
	}
	var out []domain.Constellation
	for _, id := range ids {
		idx := slices.IndexFunc(all, func(c domain.Constellation) bool { return c.ID == id })
		if idx < 0 {
			return nil, fmt.Errorf("%w: %s", domain.ErrConstellationNotFound, id)
		}
		out = append(out, all[idx])
	}
	return out, nil
}
