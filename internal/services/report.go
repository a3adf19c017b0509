package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/talentdesk/recruitsync/internal/db"
	"github.com/talentdesk/recruitsync/pkg/recruit"
)

// ReportService runs read-only aggregate reports.
type ReportService struct {
	sessions *SessionManager
	logger   recruit.Logger
}

// NewReportService creates a report service.
//
// Panics if any dependency is nil (programmer error).
func NewReportService(sessions *SessionManager, logger recruit.Logger) *ReportService {
	if sessions == nil {
		panic("sessions cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &ReportService{sessions: sessions, logger: logger}
}

// ApplicationsPerJob returns every job with its application count, including
// jobs that have none. The order of the result is unspecified.
func (r *ReportService) ApplicationsPerJob(ctx context.Context, connConfig *recruit.ConnectionConfig) ([]recruit.JobApplicationCount, error) {
	session, err := r.sessions.Open(ctx, withRunName(connConfig, "report"), uuid.New())
	if err != nil {
		return nil, err
	}
	defer session.Close()

	rows, err := session.Conn().Query(ctx, queryApplicationsPerJob)
	if err != nil {
		return nil, wrapReportError(err)
	}

	counts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (recruit.JobApplicationCount, error) {
		var c recruit.JobApplicationCount
		err := row.Scan(&c.JobID, &c.Title, &c.Applications)
		return c, err
	})
	if err != nil {
		return nil, wrapReportError(err)
	}

	r.logger.Verbose("Report returned %d jobs", len(counts))
	return counts, nil
}

func wrapReportError(err error) error {
	if db.IsUndefinedTable(err) {
		return fmt.Errorf("jobs or applications table does not exist: %v: %w", err, recruit.ErrExecutionFailed)
	}
	return fmt.Errorf("applications-per-job query failed: %v: %w", err, recruit.ErrExecutionFailed)
}
