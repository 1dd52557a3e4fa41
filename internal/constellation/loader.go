package constellation

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kizuna-dev/teambuilder/internal/domain"
	"github.com/kizuna-dev/teambuilder/internal/logger"
	"github.com/kizuna-dev/teambuilder/internal/repository"
)

// ErrInvalidConfig marks a seed file that fails validation
var ErrInvalidConfig = errors.New("invalid constellation seed")

// Config is the YAML seed file
type Config struct {
	Version        string             `yaml:"version"`
	Description    string             `yaml:"description"`
	Characters     []CharacterDef     `yaml:"characters"`
	Constellations []ConstellationDef `yaml:"constellations"`
}

// CharacterDef is one catalog entry in the seed
type CharacterDef struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Element string `yaml:"element"`
	Rarity  string `yaml:"rarity"`
}

// ConstellationDef is one constellation in the seed
type ConstellationDef struct {
	ID            string              `yaml:"id"`
	Name          string              `yaml:"name"`
	Element       string              `yaml:"element"`
	BaseDropRates RatesDef            `yaml:"base_drop_rates"`
	CharacterPool map[string][]string `yaml:"character_pool"`
}

// RatesDef mirrors domain.DropRates for YAML
type RatesDef struct {
	Legendary float64 `yaml:"legendary"`
	Epic      float64 `yaml:"epic"`
	Rare      float64 `yaml:"rare"`
	Normal    float64 `yaml:"normal"`
}

// Loader handles loading, validating and syncing the seed file
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
	SyncToDatabase(ctx context.Context, config *Config, repo repository.Seed, configPath string, force bool) (*SyncResult, error)
}

// SyncResult reports what a sync wrote
type SyncResult struct {
	Characters     int  `json:"characters"`
	Constellations int  `json:"constellations"`
	Skipped        bool `json:"skipped"`
}

type seedLoader struct{}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &seedLoader{}
}

// Load reads and parses a seed file
func (l *seedLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}
	return &config, nil
}

// Validate checks ids, rarities, rate sums and pool references
func (l *seedLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}
	if len(config.Constellations) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoConstellationsDefined)
	}

	chars := make(map[string]domain.Rarity, len(config.Characters))
	for i, c := range config.Characters {
		if c.ID == "" {
			return fmt.Errorf(ErrFmtCharacterAtIndexEmptyID, ErrInvalidConfig, i)
		}
		if _, dup := chars[c.ID]; dup {
			return fmt.Errorf(ErrFmtDuplicateCharacter, ErrInvalidConfig, c.ID)
		}
		if c.Name == "" {
			return fmt.Errorf(ErrFmtCharacterEmptyName, ErrInvalidConfig, c.ID)
		}
		rarity := domain.Rarity(c.Rarity)
		if !rarity.IsValid() {
			return fmt.Errorf(ErrFmtCharacterInvalidRarity, ErrInvalidConfig, c.ID, c.Rarity)
		}
		chars[c.ID] = rarity
	}

	seen := make(map[string]bool, len(config.Constellations))
	for i := range config.Constellations {
		if err := validateConstellationDef(i, &config.Constellations[i], chars, seen); err != nil {
			return err
		}
	}
	return nil
}

func validateConstellationDef(index int, def *ConstellationDef, chars map[string]domain.Rarity, seen map[string]bool) error {
	if def.ID == "" {
		return fmt.Errorf(ErrFmtConstellationAtIndexNoID, ErrInvalidConfig, index)
	}
	if seen[def.ID] {
		return fmt.Errorf(ErrFmtDuplicateConstellation, ErrInvalidConfig, def.ID)
	}
	seen[def.ID] = true

	if def.Name == "" {
		return fmt.Errorf(ErrFmtConstellationEmptyName, ErrInvalidConfig, def.ID)
	}
	if err := def.BaseDropRates.toDomain().Validate(); err != nil {
		return fmt.Errorf(ErrFmtConstellationRates, def.ID, err)
	}

	inPool := make(map[string]bool)
	for tier, ids := range def.CharacterPool {
		rarity := domain.Rarity(tier)
		if !rarity.IsValid() {
			return fmt.Errorf(ErrFmtUnknownPoolTier, ErrInvalidConfig, def.ID, tier)
		}
		for _, id := range ids {
			actual, ok := chars[id]
			if !ok {
				return fmt.Errorf(ErrFmtUnknownPoolCharacter, ErrInvalidConfig, def.ID, id)
			}
			if actual != rarity {
				return fmt.Errorf(ErrFmtPoolRarityMismatch, ErrInvalidConfig, def.ID, actual, id, rarity)
			}
			if inPool[id] {
				return fmt.Errorf(ErrFmtPoolDuplicateCharacter, ErrInvalidConfig, def.ID, id)
			}
			inPool[id] = true
		}
	}
	return nil
}

// SyncToDatabase writes the seed when the file changed since the last
// sync, or unconditionally when force is set.
func (l *seedLoader) SyncToDatabase(ctx context.Context, config *Config, repo repository.Seed, configPath string, force bool) (*SyncResult, error) {
	log := logger.FromContext(ctx)

	if !force {
		changed, err := hasFileChanged(ctx, repo, configPath)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgCheckFileChangeFailed, err)
		}
		if !changed {
			log.Info(LogMsgConfigUnchanged, "path", configPath)
			return &SyncResult{Skipped: true}, nil
		}
	}

	characters, constellations := config.ToDomain()
	for i := range constellations {
		warnEmptyTiers(ctx, &constellations[i])
	}

	if err := repo.ReplaceSeed(ctx, characters, constellations); err != nil {
		return nil, fmt.Errorf(ErrMsgReplaceSeedFailed, err)
	}

	if err := updateSyncMetadata(ctx, repo, configPath); err != nil {
		log.Warn(LogMsgUpdateMetadataFailed, "error", err)
	}

	result := &SyncResult{Characters: len(characters), Constellations: len(constellations)}
	log.Info(LogMsgSyncCompleted,
		"characters", result.Characters,
		"constellations", result.Constellations)
	return result, nil
}

// ToDomain converts the seed into domain values
func (c *Config) ToDomain() ([]domain.Character, []domain.Constellation) {
	characters := make([]domain.Character, 0, len(c.Characters))
	for _, def := range c.Characters {
		characters = append(characters, domain.Character{
			ID:      def.ID,
			Name:    def.Name,
			Element: def.Element,
			Rarity:  domain.Rarity(def.Rarity),
		})
	}

	constellations := make([]domain.Constellation, 0, len(c.Constellations))
	for _, def := range c.Constellations {
		pool := make(map[domain.Rarity][]string, len(def.CharacterPool))
		for tier, ids := range def.CharacterPool {
			pool[domain.Rarity(tier)] = append([]string(nil), ids...)
		}
		constellations = append(constellations, domain.Constellation{
			ID:            def.ID,
			Name:          def.Name,
			Element:       def.Element,
			BaseDropRates: def.BaseDropRates.toDomain(),
			CharacterPool: pool,
		})
	}
	return characters, constellations
}

func (r RatesDef) toDomain() domain.DropRates {
	return domain.DropRates{Legendary: r.Legendary, Epic: r.Epic, Rare: r.Rare, Normal: r.Normal}
}

// warnEmptyTiers flags tiers that can be drawn but hold no characters.
// Draws there still succeed with no character.
func warnEmptyTiers(ctx context.Context, c *domain.Constellation) {
	for _, tier := range domain.Rarities {
		if c.BaseDropRates.Weight(tier) > 0 && len(c.Pool(tier)) == 0 {
			logger.FromContext(ctx).Warn(LogMsgEmptyTier, "constellation", c.ID, "rarity", tier)
		}
	}
}

func fileFingerprint(configPath string) (string, time.Time, error) {
	fileInfo, err := os.Stat(configPath)
	if err != nil {
		return "", time.Time{}, fmt.Errorf(ErrMsgStatConfigFileFailed, err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return "", time.Time{}, fmt.Errorf(ErrMsgReadForHashFailed, err)
	}

	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:]), fileInfo.ModTime(), nil
}

// hasFileChanged checks if the seed file has changed since last sync
func hasFileChanged(ctx context.Context, repo repository.Seed, configPath string) (bool, error) {
	fileHash, modTime, err := fileFingerprint(configPath)
	if err != nil {
		return false, err
	}

	syncMeta, err := repo.GetSyncMetadata(ctx, ConfigFileName)
	if err != nil {
		// First sync - no metadata exists
		return true, nil
	}

	return syncMeta.FileHash != fileHash || !syncMeta.FileModTime.Equal(modTime), nil
}

// updateSyncMetadata updates the sync metadata after a successful sync
func updateSyncMetadata(ctx context.Context, repo repository.Seed, configPath string) error {
	fileHash, modTime, err := fileFingerprint(configPath)
	if err != nil {
		return err
	}

	return repo.UpsertSyncMetadata(ctx, &domain.SyncMetadata{
		ConfigName:   ConfigFileName,
		LastSyncTime: time.Now(),
		FileHash:     fileHash,
		FileModTime:  modTime,
	})
}
