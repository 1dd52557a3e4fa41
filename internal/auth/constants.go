package auth

// Signing
const (
	SigningMethod = "HS256"
	BearerPrefix  = "Bearer "
)

// Error messages
const (
	ErrMsgMissingToken = "missing bearer token"
	ErrMsgInvalidToken = "invalid token"
	ErrMsgTokenExpired = "token expired"
	ErrMsgBadSubject   = "token subject is not a user id"
	ErrMsgEmptySecret  = "jwt secret must not be empty"
)

// Log messages
const (
	LogMsgTokenRejected = "Bearer token rejected"
)
