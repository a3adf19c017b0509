package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_AllFields(t *testing.T) {
	dir := t.TempDir()
	content := `connection:
  host: db.internal
  port: 5433
  username: recruiter
  database: hiring
  sslmode: require

candidates_file: exports/candidates.csv
timeout: 2m
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "db.internal", cfg.Connection.Host)
	assert.Equal(t, 5433, cfg.Connection.Port)
	assert.Equal(t, "recruiter", cfg.Connection.Username)
	assert.Equal(t, "hiring", cfg.Connection.Database)
	assert.Equal(t, "require", cfg.Connection.SSLMode)
	assert.Equal(t, "exports/candidates.csv", cfg.CandidatesFile)
	assert.Equal(t, "2m", cfg.Timeout)
}

func TestLoad_MinimalYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("candidates_file: in.csv\n"), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "in.csv", cfg.CandidatesFile)
	assert.Empty(t, cfg.Connection.Host)
	assert.Zero(t, cfg.Connection.Port)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(t.TempDir())
	assert.Nil(t, cfg)
	assert.True(t, errors.Is(err, ErrConfigNotFound))
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("connection: [unclosed"), 0644))

	cfg, err := Load(dir)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrConfigNotFound))
}
