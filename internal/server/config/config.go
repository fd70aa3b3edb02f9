// Package config handles configuration for the PromptEase server, including
// defaults, an optional .env/environment overlay, a JSON overlay, and
// command-line flags.
package config

import "time"

// Config holds runtime settings for the server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the HTTP endpoint.
//   - DatabaseDSN: postgres:// DSN for the hosted store, or a sqlite file
//     path for the local variant.
//   - SecretKey: HMAC secret for signing session tokens (HS256).
//   - TokenValidityDuration: session token lifetime.
//   - CompletionBaseURL: base URL of the OpenAI-compatible aggregation API.
//   - CompletionReferer / CompletionTitle: attribution headers sent with
//     every completion request.
//   - StaticAPIKey: fallback key for the credential-less mode; used only
//     when a session carries no per-user key.
type Config struct {
	EndpointAddrHTTP      string
	DatabaseDSN           string
	SecretKey             string
	TokenValidityDuration time.Duration
	CompletionBaseURL     string
	CompletionReferer     string
	CompletionTitle       string
	StaticAPIKey          string
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8080"
	c.DatabaseDSN = "promptease.db"
	c.SecretKey = "secretKey"
	c.TokenValidityDuration = 12 * time.Hour
	c.CompletionBaseURL = "https://openrouter.ai/api/v1"
	c.CompletionReferer = "http://localhost"
	c.CompletionTitle = "PromptEase"
	c.StaticAPIKey = ""
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment (including an optional .env file), an optional JSON
// file, and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
