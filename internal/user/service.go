package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/kizuna-dev/teambuilder/internal/domain"
	"github.com/kizuna-dev/teambuilder/internal/logger"
	"github.com/kizuna-dev/teambuilder/internal/metrics"
	"github.com/kizuna-dev/teambuilder/internal/repository"
)

// Service defines user account operations
type Service interface {
	// RegisterUser creates an account with the configured opening balance
	RegisterUser(ctx context.Context, username string) (*domain.User, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	// GrantKizunaStars credits a user and returns the new balance
	GrantKizunaStars(ctx context.Context, userID uuid.UUID, amount int) (int, error)
}

type service struct {
	repo          repository.User
	startingStars int
}

// NewService creates a new user service. A negative startingStars falls
// back to DefaultStartingKizunaStars.
func NewService(repo repository.User, startingStars int) Service {
	if startingStars < 0 {
		startingStars = DefaultStartingKizunaStars
	}
	return &service{repo: repo, startingStars: startingStars}
}

func (s *service) RegisterUser(ctx context.Context, username string) (*domain.User, error) {
	log := logger.FromContext(ctx)
	username = strings.TrimSpace(username)
	log.Info(LogMsgRegisterUserCalled, "username", username)

	if username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrInvalidInput)
	}

	user, err := s.repo.CreateUser(ctx, username, s.startingStars)
	if err != nil {
		log.Error(LogErrFailedToCreateUser, "error", err, "username", username)
		return nil, err
	}

	metrics.UsersRegistered.Inc()
	log.Info(LogMsgUserRegistered, "user_id", user.ID, "username", user.Username, "kizuna_stars", user.KizunaStars)
	return user, nil
}

func (s *service) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return s.repo.GetUserByID(ctx, userID)
}

func (s *service) GrantKizunaStars(ctx context.Context, userID uuid.UUID, amount int) (int, error) {
	if amount <= 0 {
		return 0, domain.ErrInvalidAmount
	}

	balance, err := s.repo.AddKizunaStars(ctx, userID, amount)
	if err != nil {
		return 0, fmt.Errorf("failed to grant kizuna stars: %w", err)
	}

	metrics.KizunaStarsGranted.Add(float64(amount))
	logger.FromContext(ctx).Info(LogMsgStarsGranted, "user_id", userID, "amount", amount, "balance", balance)
	return balance, nil
}
