package bootstrap

import (
	"fmt"

	"github.com/kizuna-dev/teambuilder/internal/auth"
	"github.com/kizuna-dev/teambuilder/internal/config"
	"github.com/kizuna-dev/teambuilder/internal/constellation"
	"github.com/kizuna-dev/teambuilder/internal/gacha"
	"github.com/kizuna-dev/teambuilder/internal/summon"
	"github.com/kizuna-dev/teambuilder/internal/user"
)

// Services holds the application services built from repositories
type Services struct {
	User          user.Service
	Constellation constellation.Service
	Summon        summon.Service
	Tokens        *auth.Issuer
}

// InitializeServices wires services over the repositories. rng may be nil
// for the crypto-backed default.
func InitializeServices(cfg *config.Config, repos *Repositories, rng gacha.RandomSource) (*Services, error) {
	tokens, err := auth.NewIssuer(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateIssuer, err)
	}

	constellations := constellation.NewService(repos.Constellation, repos.Seed, constellation.NewLoader(), constellation.ServiceConfig{
		SeedPath:  cfg.SeedPath,
		CacheSize: cfg.ConstellationCacheMax,
		CacheTTL:  cfg.ConstellationCacheTTL,
	})

	return &Services{
		User:          user.NewService(repos.User, cfg.StartingKizunaStars),
		Constellation: constellations,
		Summon:        summon.NewService(repos.Summon, constellations, gacha.NewEngine(rng)),
		Tokens:        tokens,
	}, nil
}
