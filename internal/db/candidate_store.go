package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/talentdesk/recruitsync/pkg/recruit"
)

const queryInsertCandidate = `
	INSERT INTO candidates (first_name, last_name, email, phone, skills)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (email) DO NOTHING
`

// Beginner is the subset of *pgxpool.Conn, *pgx.Conn and *pgxpool.Pool that
// CandidateStore needs.
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// CandidateStore adapts a pgx connection to recruit.CandidateStore.
type CandidateStore struct {
	conn Beginner
}

// NewCandidateStore wraps conn. The caller keeps ownership of conn.
func NewCandidateStore(conn Beginner) *CandidateStore {
	return &CandidateStore{conn: conn}
}

// Begin starts a read-write transaction.
func (s *CandidateStore) Begin(ctx context.Context) (recruit.CandidateTx, error) {
	tx, err := s.conn.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %v: %w", err, recruit.ErrExecutionFailed)
	}
	return &candidateTx{tx: tx}, nil
}

// candidateTx adapts pgx.Tx to recruit.CandidateTx.
type candidateTx struct {
	tx pgx.Tx
}

// InsertCandidate relies on the unique constraint on candidates.email: a
// conflicting row affects zero rows and is reported as skipped.
func (t *candidateTx) InsertCandidate(ctx context.Context, c recruit.Candidate) (bool, error) {
	tag, err := t.tx.Exec(ctx, queryInsertCandidate, c.FirstName, c.LastName, c.Email, c.Phone, c.Skills)
	if err != nil {
		switch {
		case IsUndefinedTable(err):
			return false, fmt.Errorf("table candidates does not exist: %v: %w", err, recruit.ErrExecutionFailed)
		case IsMissingConflictTarget(err):
			return false, fmt.Errorf("candidates.email has no unique constraint: %v: %w", err, recruit.ErrExecutionFailed)
		}
		return false, fmt.Errorf("failed to insert candidate %q: %v: %w", c.Email, err, recruit.ErrExecutionFailed)
	}
	return tag.RowsAffected() == 1, nil
}

func (t *candidateTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit: %v: %w", err, recruit.ErrExecutionFailed)
	}
	return nil
}

func (t *candidateTx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("failed to roll back: %w", err)
	}
	return nil
}

// Verify CandidateStore implements recruit.CandidateStore at compile time
var _ recruit.CandidateStore = (*CandidateStore)(nil)
