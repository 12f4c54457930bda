// Command window-titles prints the titles of all open windows.
//
// On macOS the terminal running it needs Accessibility permission; use
// "window-titles check --open" to jump to the right settings pane.
package main

import (
	"errors"
	"fmt"
	"os"

	windowtitles "github.com/tance77/window-titles"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the CLI and maps errors to exit codes: 2 for a missing
// Accessibility grant, 1 for everything else.
func run(args []string) int {
	cmd := newRootCmd(os.Stdout, os.Stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil {
		return 0
	}

	fmt.Fprintln(os.Stderr, err)
	if errors.Is(err, windowtitles.ErrNoAccessibilityPermission) {
		return 2
	}
	return 1
}
