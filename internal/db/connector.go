package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/talentdesk/recruitsync/pkg/recruit"
)

// Connection pool configuration constants
const (
	// DefaultMaxConns is one: every command runs its unit of work on a single
	// connection.
	DefaultMaxConns = 1

	// DefaultMinConns keeps no idle connections around; pools live for one command.
	DefaultMinConns = 0
)

func configurePool(poolConfig *pgxpool.Config) {
	poolConfig.MaxConns = DefaultMaxConns
	poolConfig.MinConns = DefaultMinConns
}

// StandardConnector implements recruit.Connector for username/password
// authentication. It makes exactly one attempt.
type StandardConnector struct {
	config *recruit.ConnectionConfig
}

// NewStandardConnector creates a new StandardConnector with the given configuration.
func NewStandardConnector(config *recruit.ConnectionConfig) *StandardConnector {
	return &StandardConnector{config: config}
}

// Connect opens a pool and pings the server once.
// Failures wrap recruit.ErrConnectionFailed.
func (c *StandardConnector) Connect(ctx context.Context) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(BuildConnectionString(c.config))
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection config: %v: %w", err, recruit.ErrInvalidConfig)
	}

	configurePool(poolConfig)

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, wrapConnectionError(err, c.config.Host, c.config.Port, c.config.Database)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, wrapConnectionError(err, c.config.Host, c.config.Port, c.config.Database)
	}

	return pool, nil
}

// NewConnector is the default recruit.ConnectorFactory.
func NewConnector(config *recruit.ConnectionConfig) (recruit.Connector, error) {
	if config == nil {
		return nil, fmt.Errorf("connection config is nil: %w", recruit.ErrInvalidConfig)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return NewStandardConnector(config), nil
}

var _ recruit.ConnectorFactory = NewConnector

// wrapConnectionError wraps raw pgx connection errors with actionable guidance.
// The result always matches recruit.ErrConnectionFailed.
func wrapConnectionError(err error, host string, port int, database string) error {
	errStr := strings.ToLower(err.Error())
	addr := fmt.Sprintf("%s:%d", host, port)

	var msg string
	switch {
	case strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "actively refused"):
		msg = fmt.Sprintf(`connection refused to %s

Possible causes:
  - PostgreSQL is not running (check: pg_isready -h %s -p %d)
  - Wrong POSTGRES_HOST or POSTGRES_PORT
  - Firewall blocking the connection`, addr, host, port)

	case strings.Contains(errStr, "no such host") || strings.Contains(errStr, "no host"):
		msg = fmt.Sprintf(`cannot resolve host "%s"

Possible causes:
  - POSTGRES_HOST is misspelled
  - DNS is not configured or reachable`, host)

	case strings.Contains(errStr, "password authentication failed"):
		msg = fmt.Sprintf(`password authentication failed for database "%s"

Possible causes:
  - Wrong POSTGRES_PASSWORD
  - Wrong POSTGRES_USER
  - User does not have access to the database`, database)

	case strings.Contains(errStr, "does not exist"):
		msg = fmt.Sprintf(`database "%s" does not exist

Check POSTGRES_DB, or create it:
  createdb %s`, database, database)

	case strings.Contains(errStr, "timeout") || strings.Contains(errStr, "timed out"):
		msg = fmt.Sprintf(`connection timed out to %s

Possible causes:
  - Server is overloaded or unresponsive
  - Firewall silently dropping packets
  - Wrong host/port (server not listening)`, addr)

	case strings.Contains(errStr, "ssl") || strings.Contains(errStr, "tls"):
		msg = `SSL/TLS connection error

Possible causes:
  - Server requires SSL but POSTGRES_SSLMODE is "disable"
  - Server does not support SSL but POSTGRES_SSLMODE is "require"`

	default:
		return fmt.Errorf("failed to connect to database: %v: %w", err, recruit.ErrConnectionFailed)
	}

	return fmt.Errorf("%s\n\nOriginal error: %v: %w", msg, err, recruit.ErrConnectionFailed)
}
