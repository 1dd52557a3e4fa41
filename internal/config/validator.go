package config

import (
	"os"
)

// insecureExamples maps variables to the placeholder values shipped in .env.example
var insecureExamples = map[string]string{
	"DB_PASSWORD": "change_this_secure_password",
	"API_KEY":     "generate_with_openssl_rand_hex_32",
	"JWT_SECRET":  "generate_with_openssl_rand_hex_32",
}

// Warnings returns non-fatal configuration issues worth logging at startup
func (c *Config) Warnings() []string {
	var warnings []string

	for key, example := range insecureExamples {
		if os.Getenv(key) == example {
			warnings = append(warnings, key+" appears to be using the example value - generate a secure value with: openssl rand -hex 32")
		}
	}

	if c.Environment == EnvironmentProduction && c.DBSSLMode == "disable" {
		warnings = append(warnings, "DB_SSLMODE is disable in production")
	}
	if c.Environment != EnvironmentDev && c.LogFormat != "json" {
		warnings = append(warnings, "LOG_FORMAT is not json outside dev; log shippers expect json")
	}

	return warnings
}
