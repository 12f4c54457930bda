// Package logging builds the slog.Logger used by window-titles.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/tance77/window-titles/internal/system"
)

// Options controls how New builds a logger. The zero value logs info and
// above to stderr as text.
type Options struct {
	Debug bool      // Log debug records
	JSON  bool      // Use the JSON handler instead of text
	Time  bool      // Keep the time attribute
	Dest  string    // "", "stderr", "file:<path>" or "both:<path>"
	Out   io.Writer // Overrides stderr; used by tests
}

// OptionsFromEnv reads Options from the WINDOWTITLES_* environment variables.
func OptionsFromEnv() Options {
	return Options{
		Debug: system.IsDebugEnabled(),
		JSON:  system.GetBool(system.EnvLogJSON),
		Time:  system.GetBool(system.EnvLogTime),
		Dest:  system.GetString(system.EnvLogDest, "stderr"),
	}
}

// New creates a configured logger.
func New(opts Options) *slog.Logger {
	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}

	stderr := opts.Out
	if stderr == nil {
		stderr = os.Stderr
	}

	var writers []io.Writer
	switch {
	case strings.HasPrefix(opts.Dest, "file:"):
		path := strings.TrimPrefix(opts.Dest, "file:")
		if f, err := openLogFile(path); err == nil {
			writers = append(writers, f)
		} else {
			fmt.Fprintf(stderr, "windowtitles: failed to open log file %s: %v\n", path, err)
			writers = append(writers, stderr)
		}
	case strings.HasPrefix(opts.Dest, "both:"):
		path := strings.TrimPrefix(opts.Dest, "both:")
		writers = append(writers, stderr)
		if f, err := openLogFile(path); err == nil {
			writers = append(writers, f)
		} else {
			fmt.Fprintf(stderr, "windowtitles: failed to open log file %s: %v\n", path, err)
		}
	default:
		writers = append(writers, stderr)
	}

	output := writers[0]
	if len(writers) > 1 {
		output = io.MultiWriter(writers...)
	}

	handlerOpts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && !opts.Time && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(output, handlerOpts)
	}

	return slog.New(handler).With("component", "windowtitles")
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

var (
	logFilesMu sync.Mutex
	logFiles   = map[string]*os.File{}
)

// openLogFile opens path for appending. Files stay open for the life of the
// process and are shared by every logger that names the same path.
func openLogFile(path string) (*os.File, error) {
	logFilesMu.Lock()
	defer logFilesMu.Unlock()

	if f, ok := logFiles[path]; ok {
		return f, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	logFiles[path] = f
	return f, nil
}
