package windowtitles

import "fmt"

// Kind classifies why window titles could not be listed.
type Kind int

const (
	// PlatformUnsupported means no provider exists for this GOOS.
	PlatformUnsupported Kind = iota + 1
	// ExecuteFailed means the scripting tool could not be started.
	ExecuteFailed
	// NoAccessibilityPermission means the scripting tool ran but the OS
	// refused it UI automation access. The user has to grant the permission
	// before retrying.
	NoAccessibilityPermission
)

func (k Kind) String() string {
	switch k {
	case PlatformUnsupported:
		return "platform not supported"
	case ExecuteFailed:
		return "Failed to execute the command"
	case NoAccessibilityPermission:
		return "Permission to use the accessibility API has not been granted"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Sentinel errors for use with errors.Is.
var (
	ErrPlatformUnsupported       = &Error{Kind: PlatformUnsupported}
	ErrExecuteFailed             = &Error{Kind: ExecuteFailed}
	ErrNoAccessibilityPermission = &Error{Kind: NoAccessibilityPermission}
)

// Error represents a window-titles error with additional context and actionable guidance.
type Error struct {
	Kind Kind   // Failure class
	Op   string // Operation that failed (e.g., "new provider", "run osascript")
	Err  error  // Underlying error, if any
	Help string // Actionable guidance for the user
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Help != "" {
		return fmt.Sprintf("windowtitles: %s\n  hint: %s", msg, e.Help)
	}
	return "windowtitles: " + msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same Kind, so that
// errors.Is(err, ErrExecuteFailed) works regardless of Op or cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}
