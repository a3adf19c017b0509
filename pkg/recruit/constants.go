package recruit

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Command completed successfully
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid configuration
	ExitConnectionError = 11 // Failed to connect to database
	ExitInputError      = 12 // Input file missing or malformed
	ExitExecutionFailed = 13 // SQL statement or commit failed
)

const (
	// DefaultCandidatesFile is the CSV path used by sync when no argument is given.
	DefaultCandidatesFile = "data/mock_candidates.csv"

	// DefaultConnectTimeout bounds the initial dial and ping.
	DefaultConnectTimeout = 10 * time.Second

	// DefaultCommandTimeout is the catastrophic-failure guard for a whole command.
	DefaultCommandTimeout = 5 * time.Minute

	// ApplicationName is reported to PostgreSQL as application_name.
	ApplicationName = "recruitsync"
)

// Defaults for the POSTGRES_* environment variables.
const (
	DefaultDatabase = "recruitment"
	DefaultUser     = "admin"
	DefaultPassword = "admin123"
	DefaultHost     = "localhost"
	DefaultPort     = 5432
	DefaultSSLMode  = "prefer"
)

// CandidateColumns is the exact header set a candidates CSV must carry.
var CandidateColumns = []string{"first_name", "last_name", "email", "phone", "skills"}
