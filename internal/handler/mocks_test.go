package handler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/kizuna-dev/teambuilder/internal/constellation"
	"github.com/kizuna-dev/teambuilder/internal/domain"
	"github.com/kizuna-dev/teambuilder/internal/summon"
)

// MockDBPool mocks the database.Pool interface
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) RegisterUser(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserService) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserService) GrantKizunaStars(ctx context.Context, userID uuid.UUID, amount int) (int, error) {
	args := m.Called(ctx, userID, amount)
	return args.Int(0), args.Error(1)
}

type mockTokenIssuer struct {
	mock.Mock
}

func (m *mockTokenIssuer) Issue(userID uuid.UUID, username string) (string, time.Time, error) {
	args := m.Called(userID, username)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

type mockConstellationService struct {
	mock.Mock
}

func (m *mockConstellationService) Get(ctx context.Context, id string) (*domain.Constellation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Constellation), args.Error(1)
}

func (m *mockConstellationService) List(ctx context.Context) ([]domain.Constellation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Constellation), args.Error(1)
}

func (m *mockConstellationService) Characters(ctx context.Context, ids []string) (map[string]domain.Character, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Character), args.Error(1)
}

func (m *mockConstellationService) PreviewRates(ctx context.Context, id string, bonuses domain.PlatformBonuses) (*constellation.RatesPreview, error) {
	args := m.Called(ctx, id, bonuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*constellation.RatesPreview), args.Error(1)
}

func (m *mockConstellationService) Sync(ctx context.Context, force bool) (*constellation.SyncResult, error) {
	args := m.Called(ctx, force)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*constellation.SyncResult), args.Error(1)
}

type mockSummonService struct {
	mock.Mock
}

func (m *mockSummonService) Pull(ctx context.Context, userID uuid.UUID, req summon.Request) (*domain.SummonResult, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SummonResult), args.Error(1)
}

func (m *mockSummonService) History(ctx context.Context, userID uuid.UUID, limit int) ([]domain.PullRecord, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PullRecord), args.Error(1)
}
