package cli

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/humanika/backoffice/internal/server"
	"github.com/humanika/backoffice/jobs"
	"github.com/humanika/backoffice/pkg/log"
)

func JobCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "job",
		Aliases: []string{"jobs"},
		Short:   "Manage jobs",
		Example: heredoc.Doc(`
			$ backoffice job run pending_approvals_reminder
		`),
	}

	cmd.AddCommand(
		runJobCmd(),
	)

	cmd.PersistentFlags().StringP("config", "c", "./config.yaml", "Config file path")
	cmd.MarkPersistentFlagFilename("config")

	return cmd
}

func runJobCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Fire a specific job",
		Example: heredoc.Doc(`
			$ backoffice job run pending_approvals_reminder
		`),
		Args: cobra.ExactArgs(1),
		ValidArgs: []string{
			string(jobs.PendingApprovalsReminder),
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile, err := cmd.Flags().GetString("config")
			if err != nil {
				return fmt.Errorf("getting config flag value: %w", err)
			}
			config, err := server.LoadConfig(configFile)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			logger := log.NewCtxLogger(config.LogLevel, nil)
			services, _, err := server.InitServices(server.ServiceDeps{
				Config:    &config,
				Logger:    logger,
				Validator: validator.New(),
			})
			if err != nil {
				return err
			}

			handler := jobs.NewHandler(logger, services.ApprovalService, services.UserService)

			jobType := jobs.Type(args[0])
			jobConfig := config.Jobs[jobType]

			return handler.Run(cmd.Context(), jobType, jobConfig)
		},
	}

	return cmd
}
