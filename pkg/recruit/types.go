package recruit

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ConnectionConfig represents resolved connection parameters.
type ConnectionConfig struct {
	Host     string
	Port     int
	Database string
	Username string
	Password string
	SSLMode  string

	// Additional connection parameters
	AppName          string
	ConnectTimeout   time.Duration
	AdditionalParams map[string]string
}

// Validate checks that the ConnectionConfig can be turned into a connection string.
// It returns a multi-error if multiple validation failures occur.
func (c *ConnectionConfig) Validate() error {
	var errs []error

	if c.Host == "" {
		errs = append(errs, fmt.Errorf("host is required: %w", ErrInvalidConfig))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d is out of range: %w", c.Port, ErrInvalidConfig))
	}
	if c.Database == "" {
		errs = append(errs, fmt.Errorf("database is required: %w", ErrInvalidConfig))
	}
	if c.Username == "" {
		errs = append(errs, fmt.Errorf("username is required: %w", ErrInvalidConfig))
	}
	if c.ConnectTimeout < 0 {
		errs = append(errs, fmt.Errorf("connect timeout cannot be negative: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// Candidate is one row of the candidates table.
// Email is the natural key: the store holds at most one candidate per email.
type Candidate struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Skills    string
}

// SyncOptions tunes a synchronization run.
type SyncOptions struct {
	// Normalize applies NormalizeEmail and CleanPhone to every row before insert.
	// Off by default: rows are stored exactly as they appear in the file.
	Normalize bool
}

// SyncResult summarises one synchronization run.
type SyncResult struct {
	RunID    uuid.UUID
	Path     string
	RowsRead int
	Inserted int
	Skipped  int
	Duration time.Duration
}

// JobApplicationCount is one line of the applications-per-job report.
// JobID is the key rendered as text so any key type (serial, uuid, text) fits.
type JobApplicationCount struct {
	JobID        string
	Title        string
	Applications int64
}
