package gacha

// Log messages
const (
	LogMsgEmptyCharacterPool = "Drawn tier has no characters, recording rarity only"
	LogMsgPullComputed       = "Pull computed"
)

// Log field keys
const (
	LogFieldConstellation = "constellation"
	LogFieldRarity        = "rarity"
	LogFieldPullCount     = "pull_count"
	LogFieldCost          = "cost"
	LogFieldUserID        = "user_id"
)
