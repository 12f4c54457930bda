package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	windowtitles "github.com/tance77/window-titles"
	"github.com/tance77/window-titles/internal/system"
)

type listOptions struct {
	json    bool
	raw     bool
	timeout time.Duration
}

func listCmd(root *rootOptions) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one window title per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.json && opts.raw {
				return fmt.Errorf("--json and --raw are mutually exclusive")
			}

			cfg := windowtitles.NewConfig().WithLogger(root.logger)
			p, err := newProvider(cfg)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if opts.timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, opts.timeout)
				defer cancel()
			}

			titles, err := p.WindowTitles(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case opts.json:
				enc := json.NewEncoder(out)
				enc.SetEscapeHTML(false)
				return enc.Encode(titles)
			case opts.raw:
				_, err := fmt.Fprintln(out, windowtitles.QuoteTitles(titles))
				return err
			default:
				for _, title := range titles {
					if _, err := fmt.Fprintln(out, title); err != nil {
						return err
					}
				}
				return nil
			}
		},
	}

	cmd.Flags().BoolVar(&opts.json, "json", false, "print titles as a JSON array")
	cmd.Flags().BoolVar(&opts.raw, "raw", false, `print titles as a list literal, e.g. {"a", "b"}`)
	cmd.Flags().DurationVar(&opts.timeout, "timeout", system.GetDuration(system.EnvTimeout, 0),
		"give up after this long (0 waits for the scripting tool indefinitely)")
	return cmd
}
