package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd",
		"-a", "127.0.0.1:9090", "-d", "postgres://u:p@h/db", "-s", "secret",
		"-t", "90", "-u", "http://stub", "-k", "sk-static",
	}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, "127.0.0.1:9090", c.EndpointAddrHTTP)
	assert.Equal(t, "postgres://u:p@h/db", c.DatabaseDSN)
	assert.Equal(t, "secret", c.SecretKey)
	assert.Equal(t, 90*time.Minute, c.TokenValidityDuration)
	assert.Equal(t, "http://stub", c.CompletionBaseURL)
	assert.Equal(t, "sk-static", c.StaticAPIKey)
}

func TestParseFlags_UnknownFlagsIgnored(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-z", "whatever", "-a", ":6060"}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, ":6060", c.EndpointAddrHTTP)
}
