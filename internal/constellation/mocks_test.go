package constellation

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/kizuna-dev/teambuilder/internal/domain"
)

type mockConstellationRepo struct {
	mock.Mock
}

func (m *mockConstellationRepo) GetConstellation(ctx context.Context, id string) (*domain.Constellation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Constellation), args.Error(1)
}

func (m *mockConstellationRepo) ListConstellations(ctx context.Context) ([]domain.Constellation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Constellation), args.Error(1)
}

func (m *mockConstellationRepo) GetCharactersByIDs(ctx context.Context, ids []string) ([]domain.Character, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Character), args.Error(1)
}

type mockSeedRepo struct {
	mock.Mock
}

func (m *mockSeedRepo) ReplaceSeed(ctx context.Context, characters []domain.Character, constellations []domain.Constellation) error {
	args := m.Called(ctx, characters, constellations)
	return args.Error(0)
}

func (m *mockSeedRepo) GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error) {
	args := m.Called(ctx, configName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SyncMetadata), args.Error(1)
}

func (m *mockSeedRepo) UpsertSyncMetadata(ctx context.Context, meta *domain.SyncMetadata) error {
	args := m.Called(ctx, meta)
	return args.Error(0)
}
