package windowtitles

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/tance77/window-titles/internal/system"
)

// fakeRunner records invocations and replays a canned result.
type fakeRunner struct {
	mu     sync.Mutex
	calls  [][]string
	stdout string
	stderr string
	err    error
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.mu.Lock()
	f.calls = append(f.calls, append([]string{name}, args...))
	f.mu.Unlock()
	return []byte(f.stdout), []byte(f.stderr), f.err
}

// exitError produces a real *exec.ExitError with the given code.
func exitError(t *testing.T, code int) error {
	t.Helper()
	_, _, err := helperRunner(t, "", "", code).Run(context.Background(), "ignored")
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("helper process did not produce an ExitError: %v", err)
	}
	return err
}

// helperRunner runs this test binary as a stand-in for osascript.
func helperRunner(t *testing.T, stdout, stderr string, code int) Runner {
	t.Helper()
	return RunnerFunc(func(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
		cmdArgs := append([]string{"-test.run=TestHelperProcess", "--", name}, args...)
		cmd := exec.CommandContext(ctx, os.Args[0], cmdArgs...)
		cmd.Env = append(os.Environ(),
			"GO_WANT_HELPER_PROCESS=1",
			"HELPER_STDOUT="+stdout,
			"HELPER_STDERR="+stderr,
			"HELPER_EXIT="+strconv.Itoa(code),
		)
		var out, errOut bytes.Buffer
		cmd.Stdout = &out
		cmd.Stderr = &errOut
		err := cmd.Run()
		return out.Bytes(), errOut.Bytes(), err
	})
}

func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}
	fmt.Fprint(os.Stdout, os.Getenv("HELPER_STDOUT"))
	fmt.Fprint(os.Stderr, os.Getenv("HELPER_STDERR"))
	if d, err := time.ParseDuration(os.Getenv("HELPER_SLEEP")); err == nil {
		time.Sleep(d)
	}
	code, _ := strconv.Atoi(os.Getenv("HELPER_EXIT"))
	os.Exit(code)
}

func TestOsascriptProviderWindowTitles(t *testing.T) {
	const permissionStderr = "36:83: execution error: System Events got an error: osascript is not allowed assistive access. (-1719)\n"

	tests := []struct {
		name     string
		stdout   string
		stderr   string
		exitCode int // -1 means spawn failure
		want     []string
		wantKind Kind
	}{
		{
			name:   "nested reply",
			stdout: "{{}, {\"0\"}, {\"1\", \"2\"}}\n",
			want:   []string{"0", "1", "2"},
		},
		{
			name:   "escaped quote",
			stdout: `{"\" - Brave", "1", "2"}`,
			want:   []string{`" - Brave`, "1", "2"},
		},
		{
			name:   "no windows",
			stdout: "{}\n",
			want:   []string{},
		},
		{
			name:   "empty stdout",
			stdout: "",
			want:   []string{},
		},
		{
			name:     "permission denied",
			stdout:   `{"should", "be", "ignored"}`,
			stderr:   permissionStderr,
			exitCode: 1,
			wantKind: NoAccessibilityPermission,
		},
		{
			name:     "permission denied with zero exit",
			stderr:   permissionStderr,
			wantKind: NoAccessibilityPermission,
		},
		{
			name:     "non-zero exit without signature still parses",
			stdout:   `{"partial"}`,
			stderr:   "execution error: something else (-1728)\n",
			exitCode: 1,
			want:     []string{"partial"},
		},
		{
			name:     "spawn failure",
			exitCode: -1,
			wantKind: ExecuteFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{stdout: tt.stdout, stderr: tt.stderr}
			switch {
			case tt.exitCode < 0:
				runner.err = &os.PathError{Op: "fork/exec", Path: "/usr/bin/osascript", Err: os.ErrNotExist}
			case tt.exitCode > 0:
				runner.err = exitError(t, tt.exitCode)
			}

			p := NewOsascriptProvider(&Config{Runner: runner})
			got, err := p.WindowTitles(context.Background())

			if tt.wantKind != 0 {
				var wtErr *Error
				if !errors.As(err, &wtErr) {
					t.Fatalf("WindowTitles() error = %v, want *Error", err)
				}
				if wtErr.Kind != tt.wantKind {
					t.Errorf("Kind = %v, want %v", wtErr.Kind, tt.wantKind)
				}
				if got != nil {
					t.Errorf("WindowTitles() titles = %q, want nil on error", got)
				}
				return
			}

			if err != nil {
				t.Fatalf("WindowTitles() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("WindowTitles() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOsascriptProviderInvocation(t *testing.T) {
	runner := &fakeRunner{stdout: "{}"}
	p := NewOsascriptProvider(&Config{Runner: runner})

	if _, err := p.WindowTitles(context.Background()); err != nil {
		t.Fatal(err)
	}
	if _, err := p.WindowTitles(context.Background()); err != nil {
		t.Fatal(err)
	}

	if len(runner.calls) != 2 {
		t.Fatalf("runner called %d times, want one per WindowTitles call", len(runner.calls))
	}
	want := []string{"osascript", "-ss", "-e", DefaultScript}
	for i, call := range runner.calls {
		if !reflect.DeepEqual(call, want) {
			t.Errorf("call %d = %q, want %q", i, call, want)
		}
	}
	if !strings.Contains(DefaultScript, "title of every window of every process") {
		t.Errorf("DefaultScript = %q", DefaultScript)
	}
}

func TestOsascriptProviderPermissionHelp(t *testing.T) {
	runner := &fakeRunner{stderr: PermissionSignature}
	_, err := NewOsascriptProvider(&Config{Runner: runner}).WindowTitles(context.Background())

	if !errors.Is(err, ErrNoAccessibilityPermission) {
		t.Fatalf("error = %v, want ErrNoAccessibilityPermission", err)
	}
	if !strings.Contains(err.Error(), "hint:") {
		t.Errorf("permission error should carry a hint: %v", err)
	}
}

func TestOsascriptProviderExecuteFailedWrapsCause(t *testing.T) {
	p := NewOsascriptProvider(&Config{Command: "/nonexistent/osascript"})

	_, err := p.WindowTitles(context.Background())
	if !errors.Is(err, ErrExecuteFailed) {
		t.Fatalf("error = %v, want ErrExecuteFailed", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want it to wrap os.ErrNotExist", err)
	}
}

func TestOsascriptProviderHelperProcess(t *testing.T) {
	tests := []struct {
		name     string
		stdout   string
		stderr   string
		code     int
		want     []string
		wantKind Kind
	}{
		{name: "success", stdout: `{{"Inbox"}, {"👋"}}`, want: []string{"Inbox", "👋"}},
		{name: "exit 1 parses stdout", stdout: `{"a", "b`, code: 1, want: []string{"a"}},
		{name: "permission", stderr: PermissionSignature + ". (-1719)", code: 1, wantKind: NoAccessibilityPermission},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewOsascriptProvider(&Config{Runner: helperRunner(t, tt.stdout, tt.stderr, tt.code)})
			got, err := p.WindowTitles(context.Background())
			if tt.wantKind != 0 {
				var wtErr *Error
				if !errors.As(err, &wtErr) || wtErr.Kind != tt.wantKind {
					t.Fatalf("error = %v, want kind %v", err, tt.wantKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("WindowTitles() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("WindowTitles() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOsascriptProviderCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewOsascriptProvider(&Config{Runner: helperRunner(t, "{}", "", 0)})
	_, err := p.WindowTitles(ctx)
	if !errors.Is(err, ErrExecuteFailed) {
		t.Fatalf("error = %v, want ErrExecuteFailed", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want it to wrap context.Canceled", err)
	}
}

func TestOsascriptProviderDeadlineMidRun(t *testing.T) {
	t.Setenv("GO_WANT_HELPER_PROCESS", "1")
	t.Setenv("HELPER_STDOUT", `{"stale"}`)
	t.Setenv("HELPER_STDERR", "")
	t.Setenv("HELPER_EXIT", "0")
	t.Setenv("HELPER_SLEEP", "10s")

	runner := RunnerFunc(func(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
		cmdArgs := append([]string{"-test.run=TestHelperProcess", "--", name}, args...)
		return ExecRunner{}.Run(ctx, os.Args[0], cmdArgs...)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	start := time.Now()
	got, err := NewOsascriptProvider(&Config{Runner: runner}).WindowTitles(ctx)
	elapsed := time.Since(start)

	if !errors.Is(err, ErrExecuteFailed) {
		t.Fatalf("WindowTitles() = %q, %v; want ErrExecuteFailed", got, err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error = %v, want it to wrap context.DeadlineExceeded", err)
	}
	if got != nil {
		t.Errorf("titles = %q, want nil after deadline", got)
	}
	if elapsed > 5*time.Second {
		t.Errorf("WindowTitles() returned after %v, want it to stop at the deadline", elapsed)
	}
}

func TestOsascriptProviderCancelledDuringExit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	runner := RunnerFunc(func(context.Context, string, ...string) ([]byte, []byte, error) {
		cancel()
		return []byte(`{"a"}`), nil, exitError(t, 1)
	})

	_, err := NewOsascriptProvider(&Config{Runner: runner}).WindowTitles(ctx)
	if !errors.Is(err, ErrExecuteFailed) || !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want ExecuteFailed wrapping context.Canceled", err)
	}
}

func TestOsascriptProviderConcurrentCalls(t *testing.T) {
	runner := &fakeRunner{stdout: `{"a"}`}
	p := NewOsascriptProvider(&Config{Runner: runner})

	const n = 16
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := p.WindowTitles(context.Background())
			if err == nil && !reflect.DeepEqual(got, []string{"a"}) {
				err = fmt.Errorf("got %q", got)
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Error(err)
		}
	}
	if len(runner.calls) != n {
		t.Errorf("runner called %d times, want %d", len(runner.calls), n)
	}
}

func TestOsascriptProviderDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	p := NewOsascriptProvider(&Config{Runner: &fakeRunner{stdout: `{"a", "b"}`}, Logger: logger})
	if _, err := p.WindowTitles(context.Background()); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "running scripting tool") || !strings.Contains(out, "count=2") {
		t.Errorf("unexpected debug output: %s", out)
	}
}

func TestConfig(t *testing.T) {
	t.Setenv(system.EnvOsascript, "/opt/bin/osascript")
	t.Setenv(system.EnvDebug, "1")

	cfg := NewConfig()
	if cfg.Command != "/opt/bin/osascript" {
		t.Errorf("Command = %q", cfg.Command)
	}
	if !cfg.Debug {
		t.Error("Debug = false with WINDOWTITLES_DEBUG=1")
	}

	runner := &fakeRunner{}
	cfg = (&Config{}).WithCommand("osa").WithRunner(runner).WithDebug()
	if cfg.Command != "osa" || cfg.Runner != runner || !cfg.Debug {
		t.Errorf("builder produced %+v", cfg)
	}

	d := (&Config{}).withDefaults()
	if d.Command != DefaultCommand || d.Script != DefaultScript {
		t.Errorf("withDefaults() = %+v", d)
	}
	if _, ok := d.Runner.(ExecRunner); !ok {
		t.Errorf("default Runner = %T, want ExecRunner", d.Runner)
	}
	if d.Logger == nil {
		t.Error("default Logger is nil")
	}
}

func TestExecRunner(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	stdout, stderr, err := ExecRunner{}.Run(ctx, os.Args[0], "-test.run=TestHelperProcess")
	if err != nil {
		t.Fatalf("Run() error = %v (stderr %q)", err, stderr)
	}
	if len(stdout) == 0 {
		// Without GO_WANT_HELPER_PROCESS the helper returns immediately and
		// the test framework reports PASS on stdout.
		t.Errorf("expected test framework output on stdout")
	}
}
