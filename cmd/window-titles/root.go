package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	windowtitles "github.com/tance77/window-titles"
	"github.com/tance77/window-titles/internal/logging"
	"github.com/tance77/window-titles/internal/system"
)

// newProvider is replaced in tests.
var newProvider = windowtitles.NewWithConfig

type rootOptions struct {
	debug  bool
	logger *slog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "window-titles",
		Short:         "List the titles of all open windows",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logOpts := logging.OptionsFromEnv()
			logOpts.Debug = logOpts.Debug || opts.debug
			logOpts.Out = stderr
			opts.logger = logging.New(logOpts)
			for _, key := range system.AllEnvVars() {
				if v, ok := os.LookupEnv(key); ok {
					opts.logger.Debug("environment", "key", key, "value", v)
				}
			}
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging (or WINDOWTITLES_DEBUG=1)")

	list := listCmd(opts)
	root.AddCommand(list, checkCmd(opts))

	// Bare invocation lists windows.
	root.RunE = list.RunE
	root.Flags().AddFlagSet(list.Flags())
	return root
}
