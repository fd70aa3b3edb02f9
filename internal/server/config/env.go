package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables. A .env file in
// the working directory is loaded first when present; real environment
// variables win over file values, which godotenv guarantees by not
// overriding existing ones.
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("PROMPTEASE_ADDRESS"); v != "" {
		config.EndpointAddrHTTP = v
	}
	if v := os.Getenv("PROMPTEASE_DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("PROMPTEASE_SECRET_KEY"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("PROMPTEASE_TOKEN_VALIDITY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}
	if v := os.Getenv("PROMPTEASE_COMPLETION_BASE_URL"); v != "" {
		config.CompletionBaseURL = v
	}
	if v := os.Getenv("PROMPTEASE_COMPLETION_REFERER"); v != "" {
		config.CompletionReferer = v
	}
	if v := os.Getenv("PROMPTEASE_COMPLETION_TITLE"); v != "" {
		config.CompletionTitle = v
	}
	if v := os.Getenv("OPENROUTER_API_KEY"); v != "" {
		config.StaticAPIKey = v
	}
}
