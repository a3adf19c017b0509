package cli

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/talentdesk/recruitsync/internal/config"
	"github.com/talentdesk/recruitsync/internal/db"
	"github.com/talentdesk/recruitsync/internal/logging"
	"github.com/talentdesk/recruitsync/internal/services"
	"github.com/talentdesk/recruitsync/pkg/recruit"
)

var syncCmd = &cobra.Command{
	Use:   "sync [csv_path]",
	Short: "Load candidates from a CSV file",
	Long: `Sync reads a candidates CSV file and inserts every row into the candidates
table in a single transaction. Rows whose email already exists, in the table or
earlier in the same file, are skipped. If any row fails, nothing is committed.

The file must have exactly these header columns, in any order:
  first_name, last_name, email, phone, skills

Arguments:
  csv_path    Path to the candidates file
              Default: candidates_file from recruitsync.yaml, else data/mock_candidates.csv

Examples:
  # Load the default file
  recruitsync sync

  # Load a specific file, normalizing emails and phone numbers
  recruitsync sync ./exports/candidates.csv --normalize`,
	Args: usageArgs(cobra.MaximumNArgs(1)),
	RunE: runSync,
}

type syncFlagValues struct {
	normalize bool
	timeout   time.Duration
}

var syncFlags syncFlagValues

func init() {
	rootCmd.AddCommand(syncCmd)

	syncCmd.Flags().BoolVar(&syncFlags.normalize, "normalize", false,
		"Lower-case and trim emails and strip non-digits from phone numbers before insert")
	syncCmd.Flags().DurationVar(&syncFlags.timeout, "timeout", recruit.DefaultCommandTimeout,
		"Catastrophic failure protection timeout (default 5m)\n"+
			"Examples: 30s, 5m, 1h30m")
}

// resolveCandidatesPath picks the CSV path: argument > recruitsync.yaml > default.
func resolveCandidatesPath(args []string, projectCfg *config.ProjectConfig) string {
	if len(args) > 0 {
		return args[0]
	}
	if projectCfg != nil && projectCfg.CandidatesFile != "" {
		return projectCfg.CandidatesFile
	}
	return recruit.DefaultCandidatesFile
}

func runSync(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	connConfig, projectCfg, err := resolveEnvironment(verbose)
	if err != nil {
		return err
	}

	timeout, err := resolveTimeout(cmd, syncFlags.timeout, projectCfg)
	if err != nil {
		return err
	}

	logger := logging.NewConsoleLogger(verbose)
	sessions := services.NewSessionManager(db.NewConnector, logger)
	synchronizer := services.NewCandidateSynchronizer(sessions, logger)

	ctx, cancel := commandContext(timeout, "sync")
	defer cancel()

	_, err = synchronizer.Sync(ctx, connConfig, resolveCandidatesPath(args, projectCfg), recruit.SyncOptions{
		Normalize: syncFlags.normalize,
	})
	return err
}
