package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kizuna-dev/teambuilder/internal/domain"
	"github.com/kizuna-dev/teambuilder/internal/repository"
)

// SummonRepository implements pull persistence for PostgreSQL
type SummonRepository struct {
	db *pgxpool.Pool
}

// NewSummonRepository creates a new SummonRepository
func NewSummonRepository(db *pgxpool.Pool) *SummonRepository {
	return &SummonRepository{db: db}
}

// BeginTx starts the unit of work for one pull
func (r *SummonRepository) BeginTx(ctx context.Context) (repository.SummonTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &summonTx{tx: tx}, nil
}

// GetPullHistory returns a user's most recent pulls, newest first
func (r *SummonRepository) GetPullHistory(ctx context.Context, userID uuid.UUID, limit int) ([]domain.PullRecord, error) {
	rows, err := r.db.Query(ctx, `
		SELECT pull_id, batch_id, user_id, constellation_id, character_id,
		       character_rarity, kizuna_stars_spent, created_at
		FROM pull_history
		WHERE user_id = $1
		ORDER BY created_at DESC, batch_id, draw_index
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryPullHistory, err)
	}
	defer rows.Close()

	records := make([]domain.PullRecord, 0, limit)
	for rows.Next() {
		var rec domain.PullRecord
		if err := rows.Scan(&rec.ID, &rec.BatchID, &rec.UserID, &rec.ConstellationID, &rec.CharacterID,
			&rec.CharacterRarity, &rec.KizunaStarsSpent, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryPullHistory, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryPullHistory, err)
	}
	return records, nil
}

type summonTx struct {
	tx pgx.Tx
}

// Commit commits the transaction
func (t *summonTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *summonTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// GetBalanceForUpdate reads the balance and holds the row lock
func (t *summonTx) GetBalanceForUpdate(ctx context.Context, userID uuid.UUID) (int, error) {
	var balance int
	err := t.tx.QueryRow(ctx,
		`SELECT kizuna_stars FROM users WHERE user_id = $1 FOR UPDATE`, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrUserNotFound
		}
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToLockBalance, err)
	}
	return balance, nil
}

// DebitKizunaStars subtracts amount only when the balance covers it
func (t *summonTx) DebitKizunaStars(ctx context.Context, userID uuid.UUID, amount int) (int, error) {
	var balance int
	err := t.tx.QueryRow(ctx, `
		UPDATE users
		SET kizuna_stars = kizuna_stars - $2, updated_at = NOW()
		WHERE user_id = $1 AND kizuna_stars >= $2
		RETURNING kizuna_stars
	`, userID, amount).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isPgError(err, PgErrorCodeCheckViolation) {
			return 0, domain.ErrInsufficientCurrency
		}
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToDebitStars, err)
	}
	return balance, nil
}

// InsertPullRecords appends one history row per outcome
func (t *summonTx) InsertPullRecords(ctx context.Context, batchID uuid.UUID, outcomes []domain.PullOutcome) error {
	if len(outcomes) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(outcomes))
	for i, o := range outcomes {
		rows = append(rows, []any{
			uuid.New(), batchID, i, o.UserID, o.ConstellationID, o.CharacterID,
			string(o.CharacterRarity), o.KizunaStarsSpent,
		})
	}

	_, err := t.tx.CopyFrom(ctx,
		pgx.Identifier{"pull_history"},
		[]string{"pull_id", "batch_id", "draw_index", "user_id", "constellation_id", "character_id", "character_rarity", "kizuna_stars_spent"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertPullRecords, err)
	}
	return nil
}
