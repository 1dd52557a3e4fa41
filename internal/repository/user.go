package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/kizuna-dev/teambuilder/internal/domain"
)

// User defines the interface for user persistence
type User interface {
	CreateUser(ctx context.Context, username string, startingStars int) (*domain.User, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	// AddKizunaStars credits amount and returns the new balance
	AddKizunaStars(ctx context.Context, userID uuid.UUID, amount int) (int, error)
}
