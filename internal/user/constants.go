package user

// DefaultStartingKizunaStars is credited on registration: enough for two
// multi-pulls.
const DefaultStartingKizunaStars = 100

// Log messages
const (
	LogMsgRegisterUserCalled = "RegisterUser called"
	LogMsgUserRegistered     = "User registered"
	LogErrFailedToCreateUser = "Failed to create user"
	LogMsgStarsGranted       = "Kizuna Stars granted"
)
