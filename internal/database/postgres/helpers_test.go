package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/kizuna-dev/teambuilder/internal/database"
	"github.com/kizuna-dev/teambuilder/internal/domain"
)

// setupIntegrationTest starts a throwaway postgres, applies migrations and
// returns a pool. Skips in -short mode or when docker is unavailable.
func setupIntegrationTest(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	var pgContainer *postgres.PostgresContainer
	var err error

	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("Skipping integration test due to panic (likely Docker issue): %v", r)
			}
		}()
		pgContainer, err = postgres.Run(ctx,
			"postgres:15-alpine",
			postgres.WithDatabase("testdb"),
			postgres.WithUsername("testuser"),
			postgres.WithPassword("testpass"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
	}()

	if pgContainer == nil {
		t.Skipf("Skipping test because container failed to start (likely no docker): %v", err)
		return nil
	}
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	pool, err := database.NewPool(connStr, 10, 30*time.Minute, time.Hour)
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}
	t.Cleanup(func() { pool.Close() })

	if _, err := database.Migrate(ctx, pool); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}

	return pool
}

func seedOrion(t *testing.T, ctx context.Context, repo *ConstellationRepository) {
	t.Helper()

	chars := []domain.Character{
		{ID: "rigel", Name: "Rigel", Element: "fire", Rarity: domain.RarityLegendary},
		{ID: "bellatrix", Name: "Bellatrix", Element: "fire", Rarity: domain.RarityEpic},
		{ID: "saiph", Name: "Saiph", Element: "fire", Rarity: domain.RarityRare},
		{ID: "mintaka", Name: "Mintaka", Element: "fire", Rarity: domain.RarityNormal},
		{ID: "meissa", Name: "Meissa", Element: "fire", Rarity: domain.RarityNormal},
	}
	cons := []domain.Constellation{{
		ID:            "orion",
		Name:          "Orion",
		Element:       "fire",
		BaseDropRates: domain.DropRates{Legendary: 1, Epic: 9, Rare: 30, Normal: 60},
		CharacterPool: map[domain.Rarity][]string{
			domain.RarityLegendary: {"rigel"},
			domain.RarityEpic:      {"bellatrix"},
			domain.RarityRare:      {"saiph"},
			domain.RarityNormal:    {"mintaka", "meissa"},
		},
	}}

	if err := repo.ReplaceSeed(ctx, chars, cons); err != nil {
		t.Fatalf("failed to seed: %v", err)
	}
}
