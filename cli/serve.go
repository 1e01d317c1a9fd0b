package cli

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/humanika/backoffice/internal/server"
)

func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the backoffice HTTP server",
		Example: heredoc.Doc(`
			$ backoffice serve
			$ backoffice serve -c config.yaml
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile, err := cmd.Flags().GetString("config")
			if err != nil {
				return fmt.Errorf("getting config flag value: %w", err)
			}
			config, err := server.LoadConfig(configFile)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			return server.RunServer(&config)
		},
	}

	cmd.Flags().StringP("config", "c", "./config.yaml", "Config file path")
	cmd.MarkFlagFilename("config")

	return cmd
}
