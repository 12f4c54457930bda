package main

import (
	"fmt"

	"github.com/spf13/cobra"

	windowtitles "github.com/tance77/window-titles"
	"github.com/tance77/window-titles/internal/accessibility"
	"github.com/tance77/window-titles/internal/system"
)

// Replaced in tests.
var (
	accessibilityTrusted = accessibility.Trusted
	openSettings         = accessibility.OpenSettings
	resetAccessibility   = accessibility.Reset
	macOSVersion         = system.GetMacOSVersion
)

func checkCmd(root *rootOptions) *cobra.Command {
	var (
		open     bool
		reset    bool
		bundleID string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report whether this process may query window titles",
		Long: `Report whether this process may query window titles.

Exits 0 when Accessibility access is granted and 2 when it is missing.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if reset {
				id, err := accessibility.ResolveClientBundleID(bundleID)
				if err != nil {
					return err
				}
				if err := resetAccessibility(cmd.Context(), id, root.logger); err != nil {
					return err
				}
				fmt.Fprintf(out, "accessibility: reset for %s\n", id)
			}

			trusted, err := accessibilityTrusted()
			if err != nil {
				return err
			}
			if trusted {
				fmt.Fprintln(out, "accessibility: granted")
				return nil
			}

			app, pane := "System Settings", "System Settings > Privacy & Security > Accessibility"
			if v, err := macOSVersion(cmd.Context()); err == nil {
				app, pane = v.SettingsApp(), v.AccessibilityPane()
			} else {
				root.logger.Debug("could not read macOS version", "error", err)
			}
			fmt.Fprintln(out, "accessibility: not granted")
			fmt.Fprintf(out, "grant access to this terminal in %s\n", pane)

			if open {
				if err := openSettings(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintf(out, "opened %s\n", app)
			}
			return &windowtitles.Error{
				Kind: windowtitles.NoAccessibilityPermission,
				Op:   "check",
				Help: accessibility.Help,
			}
		},
	}

	cmd.Flags().BoolVar(&open, "open", false, "open the Accessibility settings pane when access is missing")
	cmd.Flags().BoolVar(&reset, "reset", false, "clear the recorded Accessibility decision before checking")
	cmd.Flags().StringVar(&bundleID, "bundle-id", "", "bundle ID to reset (default: the terminal's __CFBundleIdentifier)")
	return cmd
}
