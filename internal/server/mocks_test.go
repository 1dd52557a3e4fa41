package server

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/kizuna-dev/teambuilder/internal/constellation"
	"github.com/kizuna-dev/teambuilder/internal/domain"
	"github.com/kizuna-dev/teambuilder/internal/summon"
)

type mockPool struct{ mock.Mock }

func (m *mockPool) Ping(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *mockPool) Close()                         { m.Called() }

type mockUsers struct{ mock.Mock }

func (m *mockUsers) RegisterUser(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUsers) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUsers) GrantKizunaStars(ctx context.Context, userID uuid.UUID, amount int) (int, error) {
	args := m.Called(ctx, userID, amount)
	return args.Int(0), args.Error(1)
}

type mockConstellations struct{ mock.Mock }

func (m *mockConstellations) Get(ctx context.Context, id string) (*domain.Constellation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Constellation), args.Error(1)
}

func (m *mockConstellations) List(ctx context.Context) ([]domain.Constellation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Constellation), args.Error(1)
}

func (m *mockConstellations) Characters(ctx context.Context, ids []string) (map[string]domain.Character, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Character), args.Error(1)
}

func (m *mockConstellations) PreviewRates(ctx context.Context, id string, bonuses domain.PlatformBonuses) (*constellation.RatesPreview, error) {
	args := m.Called(ctx, id, bonuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*constellation.RatesPreview), args.Error(1)
}

func (m *mockConstellations) Sync(ctx context.Context, force bool) (*constellation.SyncResult, error) {
	args := m.Called(ctx, force)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*constellation.SyncResult), args.Error(1)
}

type mockSummons struct{ mock.Mock }

func (m *mockSummons) Pull(ctx context.Context, userID uuid.UUID, req summon.Request) (*domain.SummonResult, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SummonResult), args.Error(1)
}

func (m *mockSummons) History(ctx context.Context, userID uuid.UUID, limit int) ([]domain.PullRecord, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PullRecord), args.Error(1)
}
