package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kizuna-dev/teambuilder/internal/domain"
)

const userColumns = `user_id, username, kizuna_stars, created_at`

// UserRepository implements the user repository for PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser inserts a user with an opening balance
func (r *UserRepository) CreateUser(ctx context.Context, username string, startingStars int) (*domain.User, error) {
	query := `
		INSERT INTO users (username, kizuna_stars, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRow(ctx, query, username, startingStars))
	if err != nil {
		if isPgError(err, PgErrorCodeUniqueViolation) {
			return nil, domain.ErrUsernameTaken
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToInsertUser, err)
	}
	return user, nil
}

// GetUserByID finds a user by primary key
func (r *UserRepository) GetUserByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUser, err)
	}
	return user, nil
}

// GetUserByUsername finds a user by unique username
func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUserByUsername, err)
	}
	return user, nil
}

// AddKizunaStars credits a user's balance and returns the new value
func (r *UserRepository) AddKizunaStars(ctx context.Context, userID uuid.UUID, amount int) (int, error) {
	query := `
		UPDATE users
		SET kizuna_stars = kizuna_stars + $2, updated_at = NOW()
		WHERE user_id = $1
		RETURNING kizuna_stars
	`
	var balance int
	if err := r.db.QueryRow(ctx, query, userID, amount).Scan(&balance); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrUserNotFound
		}
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCreditStars, err)
	}
	return balance, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.KizunaStars, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}
