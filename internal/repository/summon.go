package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/kizuna-dev/teambuilder/internal/domain"
)

// Summon defines persistence for pulls
type Summon interface {
	BeginTx(ctx context.Context) (SummonTx, error)
	GetPullHistory(ctx context.Context, userID uuid.UUID, limit int) ([]domain.PullRecord, error)
}

// SummonTx is the unit of work for a single pull.
// GetBalanceForUpdate locks the user's row until Commit or Rollback.
type SummonTx interface {
	Tx
	GetBalanceForUpdate(ctx context.Context, userID uuid.UUID) (int, error)
	// DebitKizunaStars subtracts amount only if the balance covers it and
	// returns the new balance, or domain.ErrInsufficientCurrency.
	DebitKizunaStars(ctx context.Context, userID uuid.UUID, amount int) (int, error)
	InsertPullRecords(ctx context.Context, batchID uuid.UUID, outcomes []domain.PullOutcome) error
}
