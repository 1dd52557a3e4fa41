package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kizuna-dev/teambuilder/internal/database/postgres"
	"github.com/kizuna-dev/teambuilder/internal/repository"
)

// Repositories holds the repository implementations used by the application
type Repositories struct {
	User          repository.User
	Constellation repository.Constellation
	Seed          repository.Seed
	Summon        repository.Summon
}

// InitializeRepositories creates the postgres repositories over one pool
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	constellations := postgres.NewConstellationRepository(dbPool)
	return &Repositories{
		User:          postgres.NewUserRepository(dbPool),
		Constellation: constellations,
		Seed:          constellations,
		Summon:        postgres.NewSummonRepository(dbPool),
	}
}
