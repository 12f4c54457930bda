// Package windowtitles lists the titles of all open windows on the desktop.
//
// On macOS it asks System Events, through osascript, for the title of every
// window of every process, and parses the list literal that comes back.
// Other platforms have no provider and New reports PlatformUnsupported.
//
// # Basic Usage
//
//	p, err := windowtitles.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	titles, err := p.WindowTitles(ctx)
//	switch {
//	case errors.Is(err, windowtitles.ErrNoAccessibilityPermission):
//	    // ask the user to grant Accessibility access, then retry
//	case err != nil:
//	    log.Fatal(err)
//	}
//
// # Accessibility Permission
//
// System Events only answers UI queries for apps the user has trusted under
// Privacy & Security > Accessibility. The grant belongs to the responsible
// app, which is usually the terminal that started the program. When it is
// missing, osascript prints "osascript is not allowed assistive access" and
// WindowTitles returns an error of kind NoAccessibilityPermission.
//
// # Parsing
//
// ParseTitles can be used on its own. It picks the double-quoted strings out
// of a reply such as {{}, {"Inbox"}, {"main.go", "\" - Brave"}}, decodes \"
// and drops a segment left open at the end of input.
//
// # Environment Variables
//
//	WINDOWTITLES_DEBUG=1          enable debug logging
//	WINDOWTITLES_OSASCRIPT=path   use a different osascript binary
//	WINDOWTITLES_LOG_JSON=1       log as JSON
//	WINDOWTITLES_LOG_DEST=dest    stderr, file:<path> or both:<path>
//	WINDOWTITLES_LOG_TIME=1       include timestamps in log records
package windowtitles
