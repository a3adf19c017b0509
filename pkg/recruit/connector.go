package recruit

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connector establishes database connections from a ConnectionConfig.
type Connector interface {
	// Connect establishes a connection pool to the database.
	// The returned pool should be closed by the caller when done.
	Connect(ctx context.Context) (*pgxpool.Pool, error)
}

// ConnectorFactory builds a Connector for a configuration.
// Services take a factory so tests can substitute their own.
type ConnectorFactory func(*ConnectionConfig) (Connector, error)
