package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidUserID         = "Invalid user id"
	ErrMsgInvalidLimit          = "Invalid limit parameter"
	ErrMsgInvalidBonusParam     = "Invalid platform bonus parameter %q"
	ErrMsgUnauthenticated       = "Authentication required"
	ErrMsgReloadFailed          = "Failed to reload constellations"
	ErrMsgIssueTokenFailed      = "Failed to issue token"
)

// User-facing messages derived from domain errors
const (
	ErrMsgGenericServerError     = "Something went wrong"
	ErrMsgUnknownError           = "Unknown error"
	ErrMsgConstellationNotFound  = "Constellation not found"
	ErrMsgInsufficientStars      = "Insufficient Kizuna Stars"
	ErrMsgInsufficientStarsShort = "Insufficient Kizuna Stars: need %d more"
	ErrMsgInvalidPullCount       = "Pull count must be between 1 and %d"
	ErrMsgUserNotFoundError      = "User not found"
	ErrMsgUsernameTakenError     = "Username already taken"
	ErrMsgInvalidAmountError     = "Amount must be positive"
	ErrMsgInvalidInputError      = "Invalid request. Please check your inputs."
	ErrMsgInvalidSeedError       = "Constellation seed file is invalid"
	ErrMsgUnauthorizedError      = "Unauthorized"
)

// Success messages
const (
	MsgConstellationsReloaded = "Constellations reloaded"
	MsgSeedUnchanged          = "Seed file unchanged, nothing synced"
	MsgDatabaseUnavailable    = "database connection failed"
	MsgNoConstellations       = "no constellations loaded"
)

// Log messages
const (
	LogMsgDecodeFailed      = "Failed to decode request"
	LogMsgRequestDecoded    = "Request decoded"
	LogMsgServiceError      = "Service call failed"
	LogMsgEncodeFailed      = "Failed to encode JSON response"
	LogMsgWriteFailed       = "Failed to write response buffer"
	LogMsgReadinessFailed   = "Readiness check failed"
	LogMsgPullServed        = "Pull served"
	LogMsgUserRegistered    = "User registered"
	LogMsgStarsGranted      = "Kizuna Stars granted"
	LogMsgReloadRequested   = "Constellation reload requested"
	LogMsgMissingIdentity   = "Authenticated route reached without user id"
	LogMsgUnknownPoolMember = "Pool references unknown character"
)

// Query parameters
const (
	QueryParamLimit = "limit"
	QueryParamForce = "force"
)

// URL parameters
const (
	URLParamID = "id"
)
