package recruit

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		Host:     DefaultHost,
		Port:     DefaultPort,
		Database: DefaultDatabase,
		Username: DefaultUser,
		Password: DefaultPassword,
		SSLMode:  DefaultSSLMode,
	}
}

func TestConnectionConfig_Validate_Valid(t *testing.T) {
	cfg := validConnectionConfig()
	assert.NoError(t, cfg.Validate())
}

func TestConnectionConfig_Validate_EmptyPasswordAllowed(t *testing.T) {
	cfg := validConnectionConfig()
	cfg.Password = ""
	assert.NoError(t, cfg.Validate())
}

func TestConnectionConfig_Validate_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ConnectionConfig)
	}{
		{"empty host", func(c *ConnectionConfig) { c.Host = "" }},
		{"zero port", func(c *ConnectionConfig) { c.Port = 0 }},
		{"port too large", func(c *ConnectionConfig) { c.Port = 70000 }},
		{"empty database", func(c *ConnectionConfig) { c.Database = "" }},
		{"empty username", func(c *ConnectionConfig) { c.Username = "" }},
		{"negative timeout", func(c *ConnectionConfig) { c.ConnectTimeout = -time.Second }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConnectionConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
		})
	}
}

func TestConnectionConfig_Validate_ReportsAllFailures(t *testing.T) {
	cfg := ConnectionConfig{}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "host is required")
	assert.Contains(t, err.Error(), "database is required")
	assert.Contains(t, err.Error(), "username is required")
}
