package main

import (
	"time"

	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath  string
	envFile     string
	verbose     bool
	searchURL   string
	tryonURL    string
	userID      string
	timeout     time.Duration
	logLevel    string
	logFile     string
	historyFile string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "luxe",
		Short:         "LUXE VISION: find clothes by photo and try them on virtually",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, launch the interactive client
			return runInteractive(cmd, flags)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Path to config file (default ~/.luxe/config.yaml)")
	pf.StringVar(&flags.envFile, "env-file", ".env", "Path to a .env file with LUXE_* variables")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	pf.StringVar(&flags.searchURL, "search-url", "", "Override the search endpoint")
	pf.StringVar(&flags.tryonURL, "tryon-url", "", "Override the try-on endpoint")
	pf.StringVar(&flags.userID, "user-id", "", "Override the caller identity sent as X-User-Id")
	pf.DurationVar(&flags.timeout, "timeout", 0, "Request timeout (0 waits indefinitely)")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	pf.StringVar(&flags.logFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flags.historyFile, "history-file", "", "Read history from this YAML file")

	cmd.AddCommand(newUICmd(flags))
	cmd.AddCommand(newSearchCmd(flags))
	cmd.AddCommand(newTryonCmd(flags))
	cmd.AddCommand(newHistoryCmd(flags))
	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newConfigCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
