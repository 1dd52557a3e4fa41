package constellation

import (
	"context"
	"fmt"
	"time"

	"github.com/kizuna-dev/teambuilder/internal/domain"
	"github.com/kizuna-dev/teambuilder/internal/gacha"
	"github.com/kizuna-dev/teambuilder/internal/logger"
	"github.com/kizuna-dev/teambuilder/internal/metrics"
	"github.com/kizuna-dev/teambuilder/internal/repository"
)

// RatesPreview is what a pull with the given bonuses would use
type RatesPreview struct {
	ConstellationID string                 `json:"constellation_id"`
	BaseRates       domain.DropRates       `json:"base_rates"`
	EffectiveRates  domain.DropRates       `json:"effective_rates"`
	PlatformBonuses domain.PlatformBonuses `json:"platform_bonuses"`
	LegendaryBonus  float64                `json:"legendary_bonus"`
	CostPerDraw     int                    `json:"cost_per_draw"`
}

// Service provides cached access to constellation reference data
type Service interface {
	Get(ctx context.Context, id string) (*domain.Constellation, error)
	List(ctx context.Context) ([]domain.Constellation, error)
	// Characters resolves catalog entries by id; unknown ids are absent from the map
	Characters(ctx context.Context, ids []string) (map[string]domain.Character, error)
	PreviewRates(ctx context.Context, id string, bonuses domain.PlatformBonuses) (*RatesPreview, error)
	// Sync loads the seed file, writes it and clears the cache. Without force
	// an unchanged file is skipped.
	Sync(ctx context.Context, force bool) (*SyncResult, error)
}

// ServiceConfig controls seed location and caching
type ServiceConfig struct {
	SeedPath  string
	CacheSize int
	CacheTTL  time.Duration
}

type service struct {
	repo     repository.Constellation
	seedRepo repository.Seed
	loader   Loader
	seedPath string
	cache    *constellationCache
}

// NewService creates a new constellation service
func NewService(repo repository.Constellation, seedRepo repository.Seed, loader Loader, cfg ServiceConfig) Service {
	size := cfg.CacheSize
	if size <= 0 {
		size = DefaultCacheSize
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &service{
		repo:     repo,
		seedRepo: seedRepo,
		loader:   loader,
		seedPath: cfg.SeedPath,
		cache:    newConstellationCache(size, ttl),
	}
}

func (s *service) Get(ctx context.Context, id string) (*domain.Constellation, error) {
	if c, ok := s.cache.Get(id); ok {
		metrics.ConstellationCacheHits.Inc()
		return c, nil
	}
	metrics.ConstellationCacheMisses.Inc()

	c, err := s.repo.GetConstellation(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.Set(c)
	return c, nil
}

func (s *service) List(ctx context.Context) ([]domain.Constellation, error) {
	if list, ok := s.cache.GetAll(); ok {
		metrics.ConstellationCacheHits.Inc()
		return list, nil
	}
	metrics.ConstellationCacheMisses.Inc()

	list, err := s.repo.ListConstellations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list constellations: %w", err)
	}
	s.cache.SetAll(list)
	return list, nil
}

func (s *service) Characters(ctx context.Context, ids []string) (map[string]domain.Character, error) {
	found := make(map[string]domain.Character, len(ids))
	seen := make(map[string]bool, len(ids))
	var missing []string
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if ch, ok := s.cache.GetCharacter(id); ok {
			found[id] = ch
			continue
		}
		missing = append(missing, id)
	}
	if len(missing) == 0 {
		return found, nil
	}

	chars, err := s.repo.GetCharactersByIDs(ctx, missing)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve characters: %w", err)
	}
	for _, ch := range chars {
		s.cache.SetCharacter(ch)
		found[ch.ID] = ch
	}
	return found, nil
}

func (s *service) PreviewRates(ctx context.Context, id string, bonuses domain.PlatformBonuses) (*RatesPreview, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &RatesPreview{
		ConstellationID: c.ID,
		BaseRates:       c.BaseDropRates,
		EffectiveRates:  gacha.ComputeEffectiveRates(c.BaseDropRates, bonuses),
		PlatformBonuses: bonuses,
		LegendaryBonus:  gacha.PlatformBonus(bonuses),
		CostPerDraw:     domain.KizunaStarsPerDraw,
	}, nil
}

func (s *service) Sync(ctx context.Context, force bool) (*SyncResult, error) {
	cfg, err := s.loader.Load(s.seedPath)
	if err != nil {
		return nil, err
	}
	if err := s.loader.Validate(cfg); err != nil {
		return nil, err
	}

	result, err := s.loader.SyncToDatabase(ctx, cfg, s.seedRepo, s.seedPath, force)
	if err != nil {
		return nil, err
	}

	s.cache.Clear()
	logger.FromContext(ctx).Info(LogMsgCacheCleared)
	return result, nil
}
