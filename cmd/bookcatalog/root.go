package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	dataPath     string
	settingsPath string
	theme        string
	pageSize     int
	logLevel     string
	logFormat    string
	verbose      bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "bookcatalog",
		Short:         "Browse a catalog of books from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, open the browser
			return runBrowseCommand(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.dataPath, "data", "d", "", "Catalog dataset (YAML or JSON); defaults to the built-in sample")
	cmd.PersistentFlags().StringVar(&flags.settingsPath, "settings", "", "Settings file (default ~/.bookcatalog/settings.yaml)")
	cmd.PersistentFlags().StringVar(&flags.theme, "theme", "", "Theme: day, night or auto")
	cmd.PersistentFlags().IntVar(&flags.pageSize, "page-size", 0, "Books per page, overriding the dataset")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "console", "Log format: console or json")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newBrowseCmd(flags))
	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newShowCmd(flags))
	cmd.AddCommand(newOptionsCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
