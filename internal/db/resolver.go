package db

import (
	"fmt"
	"os"
	"strconv"

	"github.com/talentdesk/recruitsync/internal/config"
	"github.com/talentdesk/recruitsync/pkg/recruit"
)

// EnvVars holds the POSTGRES_* environment variables recruitsync reads.
type EnvVars struct {
	POSTGRES_DB       string
	POSTGRES_USER     string
	POSTGRES_PASSWORD string
	POSTGRES_HOST     string
	POSTGRES_PORT     string
	POSTGRES_SSLMODE  string
}

// LoadFromEnvironment snapshots the POSTGRES_* variables.
// Call it once at process start, after .env has been loaded.
func LoadFromEnvironment() *EnvVars {
	return &EnvVars{
		POSTGRES_DB:       os.Getenv("POSTGRES_DB"),
		POSTGRES_USER:     os.Getenv("POSTGRES_USER"),
		POSTGRES_PASSWORD: os.Getenv("POSTGRES_PASSWORD"),
		POSTGRES_HOST:     os.Getenv("POSTGRES_HOST"),
		POSTGRES_PORT:     os.Getenv("POSTGRES_PORT"),
		POSTGRES_SSLMODE:  os.Getenv("POSTGRES_SSLMODE"),
	}
}

// ResolveConnectionParams builds a ConnectionConfig.
//
// Precedence for each parameter:
//  1. Environment variable (POSTGRES_HOST, POSTGRES_PORT, ...)
//  2. recruitsync.yaml connection block
//  3. Built-in default
//
// The password comes only from POSTGRES_PASSWORD or the default.
func ResolveConnectionParams(envVars *EnvVars, projectConfig *config.ProjectConfig) (*recruit.ConnectionConfig, error) {
	if envVars == nil {
		envVars = &EnvVars{}
	}

	var pc config.ConnectionConfig
	if projectConfig != nil {
		pc = projectConfig.Connection
	}

	cfg := &recruit.ConnectionConfig{
		Host:             firstNonEmpty(envVars.POSTGRES_HOST, pc.Host, recruit.DefaultHost),
		Database:         firstNonEmpty(envVars.POSTGRES_DB, pc.Database, recruit.DefaultDatabase),
		Username:         firstNonEmpty(envVars.POSTGRES_USER, pc.Username, recruit.DefaultUser),
		Password:         firstNonEmpty(envVars.POSTGRES_PASSWORD, recruit.DefaultPassword),
		SSLMode:          firstNonEmpty(envVars.POSTGRES_SSLMODE, pc.SSLMode, recruit.DefaultSSLMode),
		AppName:          recruit.ApplicationName,
		ConnectTimeout:   recruit.DefaultConnectTimeout,
		AdditionalParams: make(map[string]string),
	}

	switch {
	case envVars.POSTGRES_PORT != "":
		port, err := strconv.Atoi(envVars.POSTGRES_PORT)
		if err != nil {
			return nil, fmt.Errorf("invalid $POSTGRES_PORT value '%s': must be an integer: %w", envVars.POSTGRES_PORT, recruit.ErrInvalidConfig)
		}
		cfg.Port = port
	case pc.Port != 0:
		cfg.Port = pc.Port
	default:
		cfg.Port = recruit.DefaultPort
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
