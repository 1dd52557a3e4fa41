package summon

// DefaultHistoryLimit is used when the caller asks for no explicit limit
const DefaultHistoryLimit = 50

// MaxHistoryLimit caps a single history page
const MaxHistoryLimit = 200

// Log messages
const (
	LogMsgPullCalled           = "Pull called"
	LogMsgPullCommitted        = "Pull committed"
	LogMsgPullRejected         = "Pull rejected"
	LogMsgNameResolutionFailed = "Failed to resolve character names, returning ids only"
)
