package constellation

import "time"

// ==================== Configuration File Names ====================

const (
	// ConfigFileName keys the seed file's sync metadata row
	ConfigFileName = "constellations.yaml"
)

// ==================== Cache ====================

const (
	// DefaultCacheSize bounds cached constellations
	DefaultCacheSize = 64
	// DefaultCacheTTL bounds staleness after an out-of-band seed change
	DefaultCacheTTL = 10 * time.Minute

	cacheKeyAll = "*"
)

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read constellation seed file: %w"
	ErrMsgParseConfigFailed    = "failed to parse constellation seed: %w"
	ErrMsgStatConfigFileFailed = "failed to stat seed file: %w"
	ErrMsgReadForHashFailed    = "failed to read seed file: %w"
)

// Validation error messages
const (
	ErrMsgConfigNil                = "config is nil"
	ErrMsgNoConstellationsDefined  = "no constellations defined"
	ErrFmtCharacterAtIndexEmptyID  = "%w: character at index %d has empty id"
	ErrFmtDuplicateCharacter       = "%w: duplicate character id '%s'"
	ErrFmtCharacterEmptyName       = "%w: character '%s' has empty name"
	ErrFmtCharacterInvalidRarity   = "%w: character '%s' has invalid rarity '%s'"
	ErrFmtConstellationAtIndexNoID = "%w: constellation at index %d has empty id"
	ErrFmtDuplicateConstellation   = "%w: duplicate constellation id '%s'"
	ErrFmtConstellationEmptyName   = "%w: constellation '%s' has empty name"
	ErrFmtConstellationRates       = "constellation '%s': %w"
	ErrFmtUnknownPoolTier          = "%w: constellation '%s' has unknown pool tier '%s'"
	ErrFmtUnknownPoolCharacter     = "%w: constellation '%s' references unknown character '%s'"
	ErrFmtPoolRarityMismatch       = "%w: constellation '%s' lists %s character '%s' in the %s pool"
	ErrFmtPoolDuplicateCharacter   = "%w: constellation '%s' lists character '%s' more than once"
)

// Database operation error messages
const (
	ErrMsgCheckFileChangeFailed = "failed to check if seed file changed: %w"
	ErrMsgReplaceSeedFailed     = "failed to write seed: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgConfigUnchanged      = "Constellation seed unchanged, skipping sync"
	LogMsgSyncCompleted        = "Constellation seed synced"
	LogMsgUpdateMetadataFailed = "Failed to update seed sync metadata"
	LogMsgEmptyTier            = "Constellation has an empty tier with non-zero weight"
	LogMsgCacheCleared         = "Constellation cache cleared"
)
