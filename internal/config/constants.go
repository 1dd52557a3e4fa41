package config

const (
	// ConfigPathConstellations is the default constellation seed file
	ConfigPathConstellations = "configs/constellations.yaml"
)

// Environments
const (
	EnvironmentDev        = "dev"
	EnvironmentStaging    = "staging"
	EnvironmentProduction = "prod"
)

// MinJWTSecretLength is the shortest HS256 secret accepted outside dev
const MinJWTSecretLength = 32
