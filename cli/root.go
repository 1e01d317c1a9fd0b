package cli

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
)

// New builds the root command.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "backoffice",
		Short:         "HUMANIKA backoffice service",
		SilenceUsage:  true,
		SilenceErrors: true,
		Long: heredoc.Doc(`
			Backoffice service for the HUMANIKA student organization:
			work programs, events, finances, documents, letters, and
			articles, all moving through a single approval workflow.`),
		Example: heredoc.Doc(`
			$ backoffice serve
			$ backoffice migrate
			$ backoffice job run pending_approvals_reminder
		`),
	}

	cmd.AddCommand(
		ServeCmd(),
		MigrateCmd(),
		JobCmd(),
	)

	return cmd
}

// Execute runs the CLI and returns the exit error, if any.
func Execute() error {
	return New().Execute()
}
