package windowtitles

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/tance77/window-titles/internal/accessibility"
)

// OsascriptProvider lists window titles through osascript and System Events.
type OsascriptProvider struct {
	cfg *Config
}

// NewOsascriptProvider returns a provider that drives osascript regardless
// of GOOS. Most callers want New, which picks the provider for the running
// platform.
func NewOsascriptProvider(cfg *Config) *OsascriptProvider {
	if cfg == nil {
		cfg = NewConfig()
	}
	return &OsascriptProvider{cfg: cfg.withDefaults()}
}

// WindowTitles runs the System Events query and parses its reply.
//
// A command that cannot be started yields ExecuteFailed. If stderr carries
// the assistive-access signature the result is NoAccessibilityPermission,
// whatever the exit status. Otherwise stdout is parsed, and an empty list is
// a valid result. A non-zero exit without the signature is not an error.
//
// If ctx ends before the command finishes, the command is killed and the
// result is ExecuteFailed wrapping ctx.Err(); partial output is discarded.
func (p *OsascriptProvider) WindowTitles(ctx context.Context) ([]string, error) {
	log := p.cfg.Logger
	args := []string{"-ss", "-e", p.cfg.Script}

	log.Debug("running scripting tool", "command", p.cfg.Command, "args", args)
	stdout, stderr, err := p.cfg.Runner.Run(ctx, p.cfg.Command, args...)

	if err != nil && ctx != nil && ctx.Err() != nil {
		log.Debug("scripting tool interrupted", "error", err, "cause", ctx.Err())
		return nil, &Error{Kind: ExecuteFailed, Op: "run " + p.cfg.Command, Err: ctx.Err()}
	}

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		log.Debug("scripting tool failed to run", "error", err)
		return nil, &Error{Kind: ExecuteFailed, Op: "run " + p.cfg.Command, Err: err}
	}

	if strings.Contains(string(stderr), PermissionSignature) {
		log.Debug("scripting tool denied assistive access", "stderr_bytes", len(stderr))
		return nil, &Error{
			Kind: NoAccessibilityPermission,
			Op:   "run " + p.cfg.Command,
			Help: accessibility.Help,
		}
	}
	if exitErr != nil {
		log.Debug("scripting tool exited non-zero", "exit_code", exitErr.ExitCode(), "stderr", strings.TrimSpace(string(stderr)))
	}

	titles := ParseTitles(string(stdout))
	log.Debug("parsed window titles", "stdout_bytes", len(stdout), "count", len(titles))
	return titles, nil
}
