package domain

// KizunaStarsPerDraw is the flat cost of a single gacha draw.
const KizunaStarsPerDraw = 5

// PlatformBonusStep is the legendary weight (in percentage points) granted
// per enabled platform bonus.
const PlatformBonusStep = 0.2

// DropRateTotal is the sum every constellation's base rates must reach.
const DropRateTotal = 100.0

// DropRateTolerance is the allowed deviation from DropRateTotal.
const DropRateTolerance = 0.1

// Pull count options exposed by the client. Any positive count is accepted.
const (
	PullCountSingle = 1
	PullCountMulti  = 10
)

// MaxPullCount caps a single request so one call cannot monopolise a
// database transaction.
const MaxPullCount = 100

// Platform bonus names as they appear on the wire.
const (
	PlatformNintendo    = "nintendo"
	PlatformPlayStation = "playstation"
	PlatformPC          = "pc"
)
