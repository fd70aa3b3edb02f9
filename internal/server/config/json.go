package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/mkravets/promptease/internal/flagx"
	"github.com/mkravets/promptease/internal/timex"
)

// JsonConfig is the DTO used only for reading JSON configuration files.
// Interval fields use timex.Duration so both "12h" and integer nanoseconds
// parse. After unmarshalling, values are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddrHTTP      string         `json:"endpoint_addr_http"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	CompletionBaseURL     string         `json:"completion_base_url"`
	CompletionReferer     string         `json:"completion_referer"`
	CompletionTitle       string         `json:"completion_title"`
	StaticAPIKey          string         `json:"static_api_key"`
}

// parseJson loads configuration from the file named by the -c/-config flags.
// When no flag is given nothing is loaded. An unreadable or invalid file
// panics: a bad explicit config is a startup fault, not something to limp
// past.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddrHTTP != "" {
		config.EndpointAddrHTTP = c.EndpointAddrHTTP
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidityDuration.Duration != 0 {
		config.TokenValidityDuration = time.Duration(c.TokenValidityDuration.Duration)
	}
	if c.CompletionBaseURL != "" {
		config.CompletionBaseURL = c.CompletionBaseURL
	}
	if c.CompletionReferer != "" {
		config.CompletionReferer = c.CompletionReferer
	}
	if c.CompletionTitle != "" {
		config.CompletionTitle = c.CompletionTitle
	}
	if c.StaticAPIKey != "" {
		config.StaticAPIKey = c.StaticAPIKey
	}
}
