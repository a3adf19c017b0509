package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/talentdesk/recruitsync/internal/normalize"
	"github.com/talentdesk/recruitsync/pkg/recruit"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Show how a phone number or email would be normalized",
	Long: `Normalize applies the same field cleanup that "sync --normalize" uses and
prints the result, one value per line (phone first).

Examples:
  recruitsync normalize --phone "(555) 123-4567"
  recruitsync normalize --email "  John@Example.COM "`,
	Args: usageArgs(cobra.NoArgs),
	RunE: runNormalize,
}

var normalizeFlags struct {
	phone, email string
}

func init() {
	rootCmd.AddCommand(normalizeCmd)

	normalizeCmd.Flags().StringVar(&normalizeFlags.phone, "phone", "", "Phone number to clean")
	normalizeCmd.Flags().StringVar(&normalizeFlags.email, "email", "", "Email address to normalize")
}

func runNormalize(cmd *cobra.Command, _ []string) error {
	var phone, email *string
	if cmd.Flags().Changed("phone") {
		phone = &normalizeFlags.phone
	}
	if cmd.Flags().Changed("email") {
		email = &normalizeFlags.email
	}
	return writeNormalized(cmd.OutOrStdout(), phone, email)
}

// writeNormalized prints the cleaned form of each value that was given.
func writeNormalized(out io.Writer, phone, email *string) error {
	if phone == nil && email == nil {
		return fmt.Errorf("at least one of --phone or --email is required: %w", recruit.ErrUsage)
	}
	if phone != nil {
		fmt.Fprintln(out, normalize.CleanPhone(*phone))
	}
	if email != nil {
		fmt.Fprintln(out, normalize.NormalizeEmail(*email))
	}
	return nil
}
