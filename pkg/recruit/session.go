package recruit

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Session encapsulates the pool and the single acquired connection used for
// one command invocation.
//
// Thread-Safety: NOT safe for concurrent use.
//
// Example usage:
//
//	session, err := sessions.Open(ctx, config, uuid.New())
//	if err != nil {
//	    return err
//	}
//	defer session.Close()
type Session struct {
	id   uuid.UUID
	pool *pgxpool.Pool
	conn *pgxpool.Conn
}

// NewSession creates a new Session instance.
//
// Panics if pool or conn is nil (programmer error).
func NewSession(id uuid.UUID, pool *pgxpool.Pool, conn *pgxpool.Conn) *Session {
	if pool == nil {
		panic("pool cannot be nil")
	}
	if conn == nil {
		panic("conn cannot be nil")
	}

	return &Session{
		id:   id,
		pool: pool,
		conn: conn,
	}
}

// ID identifies the invocation this session belongs to.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Conn returns the acquired connection. Valid until Close() is called.
func (s *Session) Conn() *pgxpool.Conn {
	return s.conn
}

// Close releases the connection and then closes the pool.
// Idempotent; after Close the Session should not be used.
func (s *Session) Close() error {
	if s.conn != nil {
		s.conn.Release()
		s.conn = nil
	}

	if s.pool != nil {
		s.pool.Close()
		s.pool = nil
	}

	return nil
}
