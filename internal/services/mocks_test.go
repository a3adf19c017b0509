package services

import (
	"context"
	"io"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/talentdesk/recruitsync/pkg/recruit"
)

type mockConnector struct {
	pool *pgxpool.Pool
	err  error
}

func (m *mockConnector) Connect(_ context.Context) (*pgxpool.Pool, error) {
	return m.pool, m.err
}

type mockSource struct {
	rows []recruit.Candidate
	err  error // returned once rows are exhausted, instead of io.EOF
	pos  int
}

func (m *mockSource) Next() (recruit.Candidate, error) {
	if m.pos < len(m.rows) {
		c := m.rows[m.pos]
		m.pos++
		return c, nil
	}
	if m.err != nil {
		return recruit.Candidate{}, m.err
	}
	return recruit.Candidate{}, io.EOF
}

// cancellingSource cancels the run once cancelAt rows have been handed out.
type cancellingSource struct {
	mockSource
	cancelAt int
	cancel   func()
}

func (c *cancellingSource) Next() (recruit.Candidate, error) {
	cand, err := c.mockSource.Next()
	if c.pos == c.cancelAt {
		c.cancel()
	}
	return cand, err
}

type mockStore struct {
	tx       *mockTx
	beginErr error
}

func (m *mockStore) Begin(_ context.Context) (recruit.CandidateTx, error) {
	if m.beginErr != nil {
		return nil, m.beginErr
	}
	return m.tx, nil
}

// mockTx mimics ON CONFLICT (email) DO NOTHING against an in-memory set.
type mockTx struct {
	existing    map[string]bool
	insertErrAt string
	insertErr   error
	commitErr   error
	rollbackErr error

	inserted   []recruit.Candidate
	committed  bool
	rolledBack bool
}

func newMockTx(existing ...string) *mockTx {
	set := make(map[string]bool, len(existing))
	for _, e := range existing {
		set[e] = true
	}
	return &mockTx{existing: set}
}

func (m *mockTx) InsertCandidate(_ context.Context, c recruit.Candidate) (bool, error) {
	if m.insertErr != nil && c.Email == m.insertErrAt {
		return false, m.insertErr
	}
	if m.existing[c.Email] {
		return false, nil
	}
	m.existing[c.Email] = true
	m.inserted = append(m.inserted, c)
	return true, nil
}

func (m *mockTx) Commit(_ context.Context) error {
	if m.commitErr != nil {
		return m.commitErr
	}
	m.committed = true
	return nil
}

func (m *mockTx) Rollback(_ context.Context) error {
	m.rolledBack = true
	return m.rollbackErr
}

type mockLogger struct{}

func (m *mockLogger) Verbose(_ string, _ ...interface{}) {}
func (m *mockLogger) Info(_ string, _ ...interface{})    {}
func (m *mockLogger) Error(_ string, _ ...interface{})   {}
