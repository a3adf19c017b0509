package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/talentdesk/recruitsync/internal/config"
	"github.com/talentdesk/recruitsync/internal/db"
	"github.com/talentdesk/recruitsync/pkg/recruit"
)

// loadProjectConfig loads .env and recruitsync.yaml from dir.
// Returns nil config if recruitsync.yaml does not exist (not an error).
func loadProjectConfig(dir string) (*config.ProjectConfig, error) {
	_ = godotenv.Load()

	projectCfg, err := config.Load(dir)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load %s: %v: %w", config.ConfigFileName, err, recruit.ErrInvalidConfig)
	}
	return projectCfg, nil
}

// resolveEnvironment builds the connection config shared by every command
// that talks to the database.
func resolveEnvironment(verbose bool) (*recruit.ConnectionConfig, *config.ProjectConfig, error) {
	projectCfg, err := loadProjectConfig(".")
	if err != nil {
		return nil, nil, err
	}

	connConfig, err := db.ResolveConnectionParams(db.LoadFromEnvironment(), projectCfg)
	if err != nil {
		return nil, nil, err
	}

	if verbose {
		logConnectionVerbose(connConfig)
	}
	return connConfig, projectCfg, nil
}

// logConnectionVerbose logs connection details when verbose mode is enabled.
func logConnectionVerbose(connConfig *recruit.ConnectionConfig) {
	fmt.Fprintf(os.Stderr, "[VERBOSE] Connection resolved:\n")
	fmt.Fprintf(os.Stderr, "  Host: %s\n", connConfig.Host)
	fmt.Fprintf(os.Stderr, "  Port: %d\n", connConfig.Port)
	fmt.Fprintf(os.Stderr, "  User: %s\n", connConfig.Username)
	fmt.Fprintf(os.Stderr, "  Database: %s\n", connConfig.Database)
	fmt.Fprintf(os.Stderr, "  SSL Mode: %s\n", connConfig.SSLMode)
}

// resolveTimeout applies the timeout from recruitsync.yaml unless --timeout
// was set explicitly.
func resolveTimeout(cmd *cobra.Command, flagTimeout time.Duration, projectCfg *config.ProjectConfig) (time.Duration, error) {
	if projectCfg != nil && projectCfg.Timeout != "" && !cmd.Flags().Changed("timeout") {
		parsed, err := time.ParseDuration(projectCfg.Timeout)
		if err != nil {
			return 0, fmt.Errorf("invalid timeout in %s: %v: %w", config.ConfigFileName, err, recruit.ErrInvalidConfig)
		}
		return parsed, nil
	}
	return flagTimeout, nil
}

// commandContext returns a context bounded by timeout that is also cancelled
// on Ctrl+C or SIGTERM. The returned cancel must be called.
func commandContext(timeout time.Duration, what string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case <-sigChan:
			fmt.Fprintf(os.Stderr, "\n[INTERRUPT] Received interrupt signal, cancelling %s...\n", what)
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(sigChan)
		cancel()
	}
}
