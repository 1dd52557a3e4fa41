package summon

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/kizuna-dev/teambuilder/internal/domain"
	"github.com/kizuna-dev/teambuilder/internal/repository"
)

type mockSummonRepo struct {
	mock.Mock
}

func (m *mockSummonRepo) BeginTx(ctx context.Context) (repository.SummonTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.SummonTx), args.Error(1)
}

func (m *mockSummonRepo) GetPullHistory(ctx context.Context, userID uuid.UUID, limit int) ([]domain.PullRecord, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PullRecord), args.Error(1)
}

type mockSummonTx struct {
	mock.Mock
}

func (m *mockSummonTx) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockSummonTx) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockSummonTx) GetBalanceForUpdate(ctx context.Context, userID uuid.UUID) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *mockSummonTx) DebitKizunaStars(ctx context.Context, userID uuid.UUID, amount int) (int, error) {
	args := m.Called(ctx, userID, amount)
	return args.Int(0), args.Error(1)
}

func (m *mockSummonTx) InsertPullRecords(ctx context.Context, batchID uuid.UUID, outcomes []domain.PullOutcome) error {
	return m.Called(ctx, batchID, outcomes).Error(0)
}

type mockConstellations struct {
	mock.Mock
}

func (m *mockConstellations) Get(ctx context.Context, id string) (*domain.Constellation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Constellation), args.Error(1)
}

func (m *mockConstellations) Characters(ctx context.Context, ids []string) (map[string]domain.Character, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Character), args.Error(1)
}
