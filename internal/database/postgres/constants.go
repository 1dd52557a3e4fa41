package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
	// PgErrorCodeCheckViolation is raised when kizuna_stars would go negative
	PgErrorCodeCheckViolation = "23514"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - User Operations
const (
	ErrMsgFailedToInsertUser        = "failed to insert user"
	ErrMsgFailedToGetUser           = "failed to get user"
	ErrMsgFailedToGetUserByUsername = "failed to get user by username"
	ErrMsgFailedToCreditStars       = "failed to credit kizuna stars"
	ErrMsgFailedToDebitStars        = "failed to debit kizuna stars"
	ErrMsgFailedToLockBalance       = "failed to lock balance"
)

// Error Messages - Constellation Operations
const (
	ErrMsgFailedToGetConstellation    = "failed to get constellation"
	ErrMsgFailedToQueryConstellations = "failed to query constellations"
	ErrMsgFailedToQueryPool           = "failed to query constellation pool"
	ErrMsgFailedToQueryCharacters     = "failed to query characters"
	ErrMsgFailedToUpsertCharacter     = "failed to upsert character"
	ErrMsgFailedToUpsertConstellation = "failed to upsert constellation"
	ErrMsgFailedToClearPool           = "failed to clear constellation pool"
	ErrMsgFailedToInsertPoolEntry     = "failed to insert pool entry"
)

// Error Messages - Sync Metadata Operations
const (
	ErrMsgFailedToGetSyncMetadata    = "failed to get sync metadata"
	ErrMsgFailedToUpsertSyncMetadata = "failed to upsert sync metadata"
	ErrMsgSyncMetadataNotFound       = "sync metadata not found"
)

// Error Messages - Pull History Operations
const (
	ErrMsgFailedToInsertPullRecords = "failed to insert pull records"
	ErrMsgFailedToQueryPullHistory  = "failed to query pull history"
)
