package accessibility

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// TCCService is the tccutil service name for UI automation access.
const TCCService = "Accessibility"

// ResolveClientBundleID returns the bundle ID whose Accessibility grant
// osascript runs under. An explicit id wins; otherwise the
// __CFBundleIdentifier that LaunchServices sets for GUI apps (and inherits
// into shells started by a terminal) is used.
func ResolveClientBundleID(explicit string) (string, error) {
	if id := strings.TrimSpace(explicit); id != "" {
		return id, nil
	}
	if id := strings.TrimSpace(os.Getenv("__CFBundleIdentifier")); id != "" {
		return id, nil
	}
	return "", errors.New("accessibility: could not determine client bundle ID; pass one explicitly")
}

// Reset clears the Accessibility decision recorded for bundleID, so the
// next query prompts again. This helps when a stale grant no longer
// matches an updated app.
func Reset(ctx context.Context, bundleID string, log *slog.Logger) error {
	if runtime.GOOS != "darwin" {
		return ErrUnsupported
	}
	if bundleID == "" {
		return fmt.Errorf("accessibility: bundle ID cannot be empty")
	}

	log.Debug("resetting TCC decision", "service", TCCService, "bundle_id", bundleID)
	output, err := exec.CommandContext(ctx, "tccutil", "reset", TCCService, bundleID).CombinedOutput()
	if err != nil {
		log.Debug("tccutil failed", "output", strings.TrimSpace(string(output)))
		return fmt.Errorf("tccutil reset %s %s: %w", TCCService, bundleID, err)
	}
	return nil
}
