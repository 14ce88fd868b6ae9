package commands

import (
	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerview/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var opts globalOptions

	rootCmd := &cobra.Command{
		Use:     "ledgerview",
		Short:   "Financial reports from raw journal rows",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "ledgerview.yaml", "config file")
	rootCmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file loaded before environment overrides")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newReportCommand(&opts))
	rootCmd.AddCommand(newIngestCommand(&opts))
	rootCmd.AddCommand(newServeCommand(&opts))

	return rootCmd
}
