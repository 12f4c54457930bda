package windowtitles

import (
	"bytes"
	"context"
	"log/slog"
	"os/exec"
	"time"

	"github.com/tance77/window-titles/internal/logging"
	"github.com/tance77/window-titles/internal/system"
)

// Provider lists the titles of all open windows.
//
// WindowTitles spawns one external process per call and blocks until it
// exits. The library imposes no timeout; bound the call through ctx if
// needed. Implementations keep no state between calls and are safe for
// concurrent use.
type Provider interface {
	WindowTitles(ctx context.Context) ([]string, error)
}

// Runner runs an external command to completion and returns what it wrote
// to stdout and stderr. A non-nil error of type *exec.ExitError means the
// command ran and exited non-zero; any other error means it could not be
// run at all.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

// RunnerFunc adapts a function to the Runner interface.
type RunnerFunc func(ctx context.Context, name string, args ...string) ([]byte, []byte, error)

// Run calls f(ctx, name, args...).
func (f RunnerFunc) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	return f(ctx, name, args...)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// waitDelay bounds how long Run waits for the output pipes to close after
// ctx ends and the command is killed.
const waitDelay = 2 * time.Second

// Run implements Runner. A nil ctx never cancels.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// DefaultCommand is the scripting tool used on macOS.
const DefaultCommand = "osascript"

// DefaultScript asks System Events for the title of every window of every
// process. The reply is a nested list literal such as {{}, {"a"}, {"b", "c"}}.
const DefaultScript = `tell application "System Events" to get the title of every window of every process`

// PermissionSignature is the stderr fragment osascript prints when the
// responsible app lacks Accessibility permission.
const PermissionSignature = "osascript is not allowed assistive access"

// Config customizes a Provider. The zero value is usable; NewConfig fills it
// from the environment.
type Config struct {
	// Command is the scripting tool to execute (default: osascript)
	Command string

	// Script is the AppleScript passed with -e (default: DefaultScript)
	Script string

	// Runner executes Command (default: ExecRunner)
	Runner Runner

	// Logger receives debug records. Nil builds one from Debug.
	Logger *slog.Logger

	// Debug enables debug logging when Logger is nil
	Debug bool
}

// NewConfig creates a Config populated from WINDOWTITLES_* environment
// variables.
func NewConfig() *Config {
	return &Config{
		Command: system.GetString(system.EnvOsascript, DefaultCommand),
		Script:  DefaultScript,
		Debug:   system.IsDebugEnabled(),
	}
}

// WithCommand sets the scripting tool path.
func (c *Config) WithCommand(command string) *Config {
	c.Command = command
	return c
}

// WithRunner sets the command runner.
func (c *Config) WithRunner(r Runner) *Config {
	c.Runner = r
	return c
}

// WithLogger sets the logger.
func (c *Config) WithLogger(l *slog.Logger) *Config {
	c.Logger = l
	return c
}

// WithDebug enables debug logging.
func (c *Config) WithDebug() *Config {
	c.Debug = true
	return c
}

// New returns the Provider for the running platform, configured from the
// environment. It fails with PlatformUnsupported where no provider exists.
func New() (Provider, error) {
	return NewWithConfig(NewConfig())
}

// NewWithConfig is like New with an explicit configuration. A nil cfg is
// the same as NewConfig().
func NewWithConfig(cfg *Config) (Provider, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	return newPlatformProvider(cfg.withDefaults())
}

func (c *Config) withDefaults() *Config {
	out := *c
	if out.Command == "" {
		out.Command = DefaultCommand
	}
	if out.Script == "" {
		out.Script = DefaultScript
	}
	if out.Runner == nil {
		out.Runner = ExecRunner{}
	}
	if out.Logger == nil {
		if out.Debug {
			opts := logging.OptionsFromEnv()
			opts.Debug = true
			out.Logger = logging.New(opts)
		} else {
			out.Logger = logging.Discard()
		}
	}
	return &out
}
