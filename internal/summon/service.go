package summon

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kizuna-dev/teambuilder/internal/domain"
	"github.com/kizuna-dev/teambuilder/internal/gacha"
	"github.com/kizuna-dev/teambuilder/internal/logger"
	"github.com/kizuna-dev/teambuilder/internal/metrics"
	"github.com/kizuna-dev/teambuilder/internal/repository"
)

// Request is a validated pull request from a user
type Request struct {
	ConstellationID string
	PullCount       int
	PlatformBonuses domain.PlatformBonuses
}

// ConstellationReader is the read side of the constellation service
type ConstellationReader interface {
	Get(ctx context.Context, id string) (*domain.Constellation, error)
	Characters(ctx context.Context, ids []string) (map[string]domain.Character, error)
}

// Service orchestrates pulls against the database
type Service interface {
	// Pull debits and records a pull atomically
	Pull(ctx context.Context, userID uuid.UUID, req Request) (*domain.SummonResult, error)
	History(ctx context.Context, userID uuid.UUID, limit int) ([]domain.PullRecord, error)
}

type service struct {
	repo           repository.Summon
	constellations ConstellationReader
	engine         *gacha.Engine
	now            func() time.Time
}

// NewService creates a new summon service
func NewService(repo repository.Summon, constellations ConstellationReader, engine *gacha.Engine) Service {
	return &service{
		repo:           repo,
		constellations: constellations,
		engine:         engine,
		now:            time.Now,
	}
}

// Pull loads the balance under a row lock, runs the engine, then debits and
// records every outcome before commit. A concurrent pull by the same user
// waits on the lock and sees the committed balance.
func (s *service) Pull(ctx context.Context, userID uuid.UUID, req Request) (*domain.SummonResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgPullCalled,
		"user_id", userID,
		"constellation", req.ConstellationID,
		"pull_count", req.PullCount)
	start := s.now()

	if req.PullCount < 1 {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidPullCount, req.PullCount)
	}

	c, err := s.constellations.Get(ctx, req.ConstellationID)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	balance, err := tx.GetBalanceForUpdate(ctx, userID)
	if err != nil {
		return nil, err
	}

	result, err := s.engine.Pull(ctx, c, gacha.Requester{UserID: userID, KizunaStars: balance}, req.PullCount, req.PlatformBonuses)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientCurrency) {
			metrics.InsufficientCurrency.Inc()
		}
		log.Info(LogMsgPullRejected, "user_id", userID, "reason", err)
		return nil, err
	}

	remaining, err := tx.DebitKizunaStars(ctx, userID, result.TotalCost)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientCurrency) {
			metrics.InsufficientCurrency.Inc()
		}
		return nil, err
	}
	result.RemainingBalance = remaining

	batchID := uuid.New()
	if err := tx.InsertPullRecords(ctx, batchID, result.Outcomes); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit pull: %w", err)
	}

	metrics.RecordPull(result, c.ID, s.now().Sub(start))
	log.Info(LogMsgPullCommitted,
		"user_id", userID,
		"batch_id", batchID,
		"cost", result.TotalCost,
		"remaining", remaining)

	return &domain.SummonResult{
		BatchID:    batchID,
		Characters: s.resolveCharacters(ctx, result.Outcomes),
		PullResult: result,
	}, nil
}

// resolveCharacters attaches display names. The pull is already committed,
// so a lookup failure degrades to ids only.
func (s *service) resolveCharacters(ctx context.Context, outcomes []domain.PullOutcome) []domain.DrawnCharacter {
	ids := make([]string, 0, len(outcomes))
	for _, o := range outcomes {
		if o.CharacterID != nil {
			ids = append(ids, *o.CharacterID)
		}
	}

	var names map[string]domain.Character
	if len(ids) > 0 {
		var err error
		names, err = s.constellations.Characters(ctx, ids)
		if err != nil {
			logger.FromContext(ctx).Warn(LogMsgNameResolutionFailed, "error", err)
		}
	}

	drawn := make([]domain.DrawnCharacter, 0, len(outcomes))
	for _, o := range outcomes {
		d := domain.DrawnCharacter{ID: o.CharacterID, Rarity: o.CharacterRarity}
		if o.CharacterID != nil {
			if ch, ok := names[*o.CharacterID]; ok {
				name := ch.Name
				d.Name = &name
			}
		}
		drawn = append(drawn, d)
	}
	return drawn
}

func (s *service) History(ctx context.Context, userID uuid.UUID, limit int) ([]domain.PullRecord, error) {
	switch {
	case limit <= 0:
		limit = DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}
	return s.repo.GetPullHistory(ctx, userID, limit)
}
