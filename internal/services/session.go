package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/talentdesk/recruitsync/pkg/recruit"
)

// SessionManager opens the single connection a command works on.
type SessionManager struct {
	connectorFactory recruit.ConnectorFactory
	logger           recruit.Logger
}

// NewSessionManager creates a new SessionManager with all dependencies injected.
//
// Panics if any dependency is nil (programmer error).
func NewSessionManager(connectorFactory recruit.ConnectorFactory, logger recruit.Logger) *SessionManager {
	if connectorFactory == nil {
		panic("connectorFactory cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	return &SessionManager{
		connectorFactory: connectorFactory,
		logger:           logger,
	}
}

// Open connects to the configured database and acquires one connection.
// The caller must Close the returned session on every path.
func (sm *SessionManager) Open(ctx context.Context, connConfig *recruit.ConnectionConfig, id uuid.UUID) (*recruit.Session, error) {
	sm.logger.Verbose("Connecting to database '%s' on %s:%d as %s", connConfig.Database, connConfig.Host, connConfig.Port, connConfig.Username)

	connector, err := sm.connectorFactory(connConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connector: %w", err)
	}

	pool, err := connector.Connect(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database %q: %w", connConfig.Database, err)
	}

	conn, err := pool.Acquire(ctx)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to acquire connection: %v: %w", err, recruit.ErrConnectionFailed)
	}

	return recruit.NewSession(id, pool, conn), nil
}
