package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kizuna-dev/teambuilder/internal/domain"
)

const constellationColumns = `constellation_id, constellation_name, element,
	legendary_rate::float8, epic_rate::float8, rare_rate::float8, normal_rate::float8`

// ConstellationRepository implements constellation reads and seed writes for PostgreSQL
type ConstellationRepository struct {
	db *pgxpool.Pool
}

// NewConstellationRepository creates a new ConstellationRepository
func NewConstellationRepository(db *pgxpool.Pool) *ConstellationRepository {
	return &ConstellationRepository{db: db}
}

// GetConstellation loads a constellation and its pool
func (r *ConstellationRepository) GetConstellation(ctx context.Context, id string) (*domain.Constellation, error) {
	query := `SELECT ` + constellationColumns + ` FROM constellations WHERE constellation_id = $1`

	c, err := scanConstellation(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrConstellationNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetConstellation, err)
	}

	pools, err := r.loadPools(ctx, []string{c.ID})
	if err != nil {
		return nil, err
	}
	c.CharacterPool = pools[c.ID]
	return c, nil
}

// ListConstellations returns every constellation ordered by id
func (r *ConstellationRepository) ListConstellations(ctx context.Context) ([]domain.Constellation, error) {
	query := `SELECT ` + constellationColumns + ` FROM constellations ORDER BY constellation_id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryConstellations, err)
	}
	defer rows.Close()

	var list []domain.Constellation
	var ids []string
	for rows.Next() {
		c, err := scanConstellation(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryConstellations, err)
		}
		list = append(list, *c)
		ids = append(ids, c.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryConstellations, err)
	}

	pools, err := r.loadPools(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i].CharacterPool = pools[list[i].ID]
	}
	return list, nil
}

// GetCharactersByIDs returns the catalog entries for ids; unknown ids are skipped
func (r *ConstellationRepository) GetCharactersByIDs(ctx context.Context, ids []string) ([]domain.Character, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
		SELECT character_id, character_name, element, rarity
		FROM characters
		WHERE character_id = ANY($1)
		ORDER BY character_id
	`
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryCharacters, err)
	}
	defer rows.Close()

	var chars []domain.Character
	for rows.Next() {
		var ch domain.Character
		if err := rows.Scan(&ch.ID, &ch.Name, &ch.Element, &ch.Rarity); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryCharacters, err)
		}
		chars = append(chars, ch)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryCharacters, err)
	}
	return chars, nil
}

// ReplaceSeed upserts characters and constellations and rewrites their pools
func (r *ConstellationRepository) ReplaceSeed(ctx context.Context, characters []domain.Character, constellations []domain.Constellation) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	for _, ch := range characters {
		_, err := tx.Exec(ctx, `
			INSERT INTO characters (character_id, character_name, element, rarity)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (character_id) DO UPDATE
			SET character_name = EXCLUDED.character_name,
			    element = EXCLUDED.element,
			    rarity = EXCLUDED.rarity
		`, ch.ID, ch.Name, ch.Element, string(ch.Rarity))
		if err != nil {
			return fmt.Errorf("%s %s: %w", ErrMsgFailedToUpsertCharacter, ch.ID, err)
		}
	}

	for _, c := range constellations {
		rates := c.BaseDropRates
		_, err := tx.Exec(ctx, `
			INSERT INTO constellations (constellation_id, constellation_name, element,
				legendary_rate, epic_rate, rare_rate, normal_rate, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
			ON CONFLICT (constellation_id) DO UPDATE
			SET constellation_name = EXCLUDED.constellation_name,
			    element = EXCLUDED.element,
			    legendary_rate = EXCLUDED.legendary_rate,
			    epic_rate = EXCLUDED.epic_rate,
			    rare_rate = EXCLUDED.rare_rate,
			    normal_rate = EXCLUDED.normal_rate,
			    updated_at = NOW()
		`, c.ID, c.Name, c.Element, rates.Legendary, rates.Epic, rates.Rare, rates.Normal)
		if err != nil {
			return fmt.Errorf("%s %s: %w", ErrMsgFailedToUpsertConstellation, c.ID, err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM constellation_pool WHERE constellation_id = $1`, c.ID); err != nil {
			return fmt.Errorf("%s %s: %w", ErrMsgFailedToClearPool, c.ID, err)
		}

		batch := &pgx.Batch{}
		for _, tier := range domain.Rarities {
			for pos, charID := range c.Pool(tier) {
				batch.Queue(`
					INSERT INTO constellation_pool (constellation_id, character_id, rarity, position)
					VALUES ($1, $2, $3, $4)
				`, c.ID, charID, string(tier), pos)
			}
		}
		if batch.Len() > 0 {
			if err := tx.SendBatch(ctx, batch).Close(); err != nil {
				return fmt.Errorf("%s %s: %w", ErrMsgFailedToInsertPoolEntry, c.ID, err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func (r *ConstellationRepository) loadPools(ctx context.Context, ids []string) (map[string]map[domain.Rarity][]string, error) {
	pools := make(map[string]map[domain.Rarity][]string, len(ids))
	if len(ids) == 0 {
		return pools, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT constellation_id, rarity, character_id
		FROM constellation_pool
		WHERE constellation_id = ANY($1)
		ORDER BY constellation_id, rarity, position
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryPool, err)
	}
	defer rows.Close()

	for rows.Next() {
		var constellationID, charID string
		var tier domain.Rarity
		if err := rows.Scan(&constellationID, &tier, &charID); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryPool, err)
		}
		if pools[constellationID] == nil {
			pools[constellationID] = make(map[domain.Rarity][]string, len(domain.Rarities))
		}
		pools[constellationID][tier] = append(pools[constellationID][tier], charID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryPool, err)
	}
	return pools, nil
}

func scanConstellation(row pgx.Row) (*domain.Constellation, error) {
	var c domain.Constellation
	r := &c.BaseDropRates
	if err := row.Scan(&c.ID, &c.Name, &c.Element, &r.Legendary, &r.Epic, &r.Rare, &r.Normal); err != nil {
		return nil, err
	}
	return &c, nil
}

// GetSyncMetadata returns the last recorded sync of a seed file
func (r *ConstellationRepository) GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error) {
	var meta domain.SyncMetadata
	err := r.db.QueryRow(ctx, `
		SELECT config_name, last_sync_time, file_hash, file_mod_time
		FROM sync_metadata
		WHERE config_name = $1
	`, configName).Scan(&meta.ConfigName, &meta.LastSyncTime, &meta.FileHash, &meta.FileModTime)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", ErrMsgSyncMetadataNotFound, err)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSyncMetadata, err)
	}
	return &meta, nil
}

// UpsertSyncMetadata records a completed seed sync
func (r *ConstellationRepository) UpsertSyncMetadata(ctx context.Context, meta *domain.SyncMetadata) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO sync_metadata (config_name, last_sync_time, file_hash, file_mod_time)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (config_name) DO UPDATE
		SET last_sync_time = EXCLUDED.last_sync_time,
		    file_hash = EXCLUDED.file_hash,
		    file_mod_time = EXCLUDED.file_mod_time
	`, meta.ConfigName, meta.LastSyncTime, meta.FileHash, meta.FileModTime)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertSyncMetadata, err)
	}
	return nil
}
