package repository

import (
	"context"

	"github.com/kizuna-dev/teambuilder/internal/domain"
)

// Constellation defines read access to constellation reference data
type Constellation interface {
	GetConstellation(ctx context.Context, id string) (*domain.Constellation, error)
	ListConstellations(ctx context.Context) ([]domain.Constellation, error)
	GetCharactersByIDs(ctx context.Context, ids []string) ([]domain.Character, error)
}

// Seed defines write access used when syncing the seed file
type Seed interface {
	// ReplaceSeed upserts every character and constellation and rewrites
	// each constellation's pool in a single transaction.
	ReplaceSeed(ctx context.Context, characters []domain.Character, constellations []domain.Constellation) error
	GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error)
	UpsertSyncMetadata(ctx context.Context, meta *domain.SyncMetadata) error
}
