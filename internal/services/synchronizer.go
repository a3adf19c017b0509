package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/talentdesk/recruitsync/internal/candidates"
	"github.com/talentdesk/recruitsync/internal/db"
	"github.com/talentdesk/recruitsync/pkg/recruit"
)

// CandidateSynchronizer loads a candidates CSV into the candidates table.
//
// A run is one transaction: either every new row from the file is committed,
// or nothing is. Rows whose email already exists, in the table or earlier in
// the same file, are skipped without error.
type CandidateSynchronizer struct {
	sessions *SessionManager
	logger   recruit.Logger
}

// NewCandidateSynchronizer creates a synchronizer.
//
// Panics if any dependency is nil (programmer error).
func NewCandidateSynchronizer(sessions *SessionManager, logger recruit.Logger) *CandidateSynchronizer {
	if sessions == nil {
		panic("sessions cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &CandidateSynchronizer{sessions: sessions, logger: logger}
}

// Sync reads path and inserts its candidates.
//
// The file is opened and its header validated before any connection is made,
// so input errors never touch the database.
func (s *CandidateSynchronizer) Sync(
	ctx context.Context,
	connConfig *recruit.ConnectionConfig,
	path string,
	opts recruit.SyncOptions,
) (*recruit.SyncResult, error) {
	start := time.Now()

	file, err := candidates.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	file.WithNormalization(opts.Normalize)

	session, err := s.sessions.Open(ctx, withRunName(connConfig, "sync"), uuid.New())
	if err != nil {
		return nil, err
	}
	defer session.Close()

	s.logger.Verbose("Sync run %s reading %s (normalize=%t)", session.ID(), path, opts.Normalize)

	result, err := s.syncRows(ctx, db.NewCandidateStore(session.Conn()), file)
	if err != nil {
		return nil, fmt.Errorf("sync of %s failed, no rows were committed: %w", path, err)
	}

	result.RunID = session.ID()
	result.Path = path
	result.Duration = time.Since(start)

	s.logger.Info("✓ Synced %s (run %s): %d rows read, %d inserted, %d skipped", path, result.RunID, result.RowsRead, result.Inserted, result.Skipped)
	return result, nil
}

// syncRows drains source into one transaction on store.
// Any error rolls the transaction back.
func (s *CandidateSynchronizer) syncRows(
	ctx context.Context,
	store recruit.CandidateStore,
	source recruit.CandidateSource,
) (result *recruit.SyncResult, err error) {
	tx, err := store.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err == nil {
			return
		}
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			err = errors.Join(err, rbErr)
		}
	}()

	result = &recruit.SyncResult{}
	for {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("sync interrupted after %d rows: %w: %w", result.RowsRead, ctxErr, recruit.ErrExecutionFailed)
		}

		candidate, nextErr := source.Next()
		if errors.Is(nextErr, io.EOF) {
			break
		}
		if nextErr != nil {
			return nil, nextErr
		}
		result.RowsRead++

		inserted, insertErr := tx.InsertCandidate(ctx, candidate)
		if insertErr != nil {
			return nil, insertErr
		}
		if inserted {
			result.Inserted++
		} else {
			result.Skipped++
			s.logger.Verbose("Skipped existing candidate %s", candidate.Email)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return result, nil
}

// withRunName returns a copy of connConfig whose application_name identifies
// the command, so runs are distinguishable in pg_stat_activity.
func withRunName(connConfig *recruit.ConnectionConfig, command string) *recruit.ConnectionConfig {
	cfg := *connConfig
	base := cfg.AppName
	if base == "" {
		base = recruit.ApplicationName
	}
	cfg.AppName = base + "-" + command
	return &cfg
}
