package recruit

import "context"

// CandidateSource yields candidates one at a time.
// Next returns io.EOF after the last candidate.
type CandidateSource interface {
	Next() (Candidate, error)
}

// CandidateStore opens units of work against the candidates table.
type CandidateStore interface {
	Begin(ctx context.Context) (CandidateTx, error)
}

// CandidateTx is a single unit of work. Nothing written through it is visible
// to other sessions until Commit succeeds.
//
// Thread-Safety: NOT safe for concurrent use.
type CandidateTx interface {
	// InsertCandidate inserts c unless a candidate with the same email exists.
	// Returns false, nil when the row was skipped as a duplicate.
	InsertCandidate(ctx context.Context, c Candidate) (bool, error)

	Commit(ctx context.Context) error

	// Rollback is safe to call after Commit; it is then a no-op.
	Rollback(ctx context.Context) error
}
