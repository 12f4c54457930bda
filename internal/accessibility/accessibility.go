// Package accessibility reports and helps remediate the macOS Accessibility
// (UI automation) permission that System Events requires before it will
// answer window queries.
package accessibility

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
)

// ErrUnsupported is returned on platforms without a TCC Accessibility service.
var ErrUnsupported = errors.New("accessibility: only supported on macOS")

// Settings URLs, most specific first.
const (
	AccessibilityPaneURL = "x-apple.systempreferences:com.apple.preference.security?Privacy_Accessibility"
	SecurityPaneURL      = "x-apple.systempreferences:com.apple.preference.security"
)

// Help is the remediation hint attached to permission errors.
const Help = "grant Accessibility access to the app running this program in " +
	"System Settings > Privacy & Security > Accessibility " +
	"(System Preferences > Security & Privacy on macOS 12 and earlier), then retry"

// OpenSettings opens the Accessibility privacy pane, falling back to the
// general Privacy & Security pane.
func OpenSettings(ctx context.Context) error {
	if runtime.GOOS != "darwin" {
		return ErrUnsupported
	}

	if err := exec.CommandContext(ctx, "open", AccessibilityPaneURL).Run(); err != nil {
		if err := exec.CommandContext(ctx, "open", SecurityPaneURL).Run(); err != nil {
			return fmt.Errorf("open security settings: %w", err)
		}
	}
	return nil
}
