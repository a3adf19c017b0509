package cli

import (
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/talentdesk/recruitsync/internal/db"
	"github.com/talentdesk/recruitsync/internal/logging"
	"github.com/talentdesk/recruitsync/internal/report"
	"github.com/talentdesk/recruitsync/internal/services"
	"github.com/talentdesk/recruitsync/pkg/recruit"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the number of applications per job",
	Long: `Report prints one line per job with the number of applications it has
received, including jobs nobody has applied to:

  Engineer: 0 applications
  Designer: 2 applications

Lines are not sorted. Output is styled only when stdout is a terminal.`,
	Args: usageArgs(cobra.NoArgs),
	RunE: runReport,
}

var reportTimeout time.Duration

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().DurationVar(&reportTimeout, "timeout", recruit.DefaultCommandTimeout,
		"Catastrophic failure protection timeout (default 5m)")
}

func runReport(cmd *cobra.Command, _ []string) error {
	verbose := getVerboseFlag(cmd)

	connConfig, projectCfg, err := resolveEnvironment(verbose)
	if err != nil {
		return err
	}

	timeout, err := resolveTimeout(cmd, reportTimeout, projectCfg)
	if err != nil {
		return err
	}

	logger := logging.NewConsoleLogger(verbose)
	reports := services.NewReportService(services.NewSessionManager(db.NewConnector, logger), logger)

	ctx, cancel := commandContext(timeout, "report")
	defer cancel()

	counts, err := reports.ApplicationsPerJob(ctx, connConfig)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	return report.Write(out, counts, isStyledOutput(out))
}

func isStyledOutput(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && report.StyleEnabled(f)
}
