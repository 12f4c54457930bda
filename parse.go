package windowtitles

import "strings"

// ParseTitles extracts window titles from osascript list-literal output such
// as {{}, {"0"}, {"1", "2"}}.
//
// Only double-quoted segments contribute titles; braces, commas and anything
// else outside quotes are skipped. Inside a segment the sequence \" is an
// escaped quote and is decoded to ". A segment still open when the input ends
// is dropped. ParseTitles never fails: malformed input only yields fewer
// titles.
func ParseTitles(raw string) []string {
	titles := []string{}

	var (
		inTitle bool
		buf     []rune
	)
	for _, r := range raw {
		if !inTitle {
			if r == '"' {
				inTitle = true
				buf = buf[:0]
			}
			continue
		}

		// The lookbehind runs against the raw buffer, so a title can never
		// end in a literal backslash.
		if r == '"' && (len(buf) == 0 || buf[len(buf)-1] != '\\') {
			titles = append(titles, unescapeTitle(string(buf)))
			inTitle = false
			continue
		}
		buf = append(buf, r)
	}

	return titles
}

func unescapeTitle(s string) string {
	return strings.ReplaceAll(s, `\"`, `"`)
}

// QuoteTitles renders titles in the list-literal form understood by
// ParseTitles, escaping embedded quotes. ParseTitles(QuoteTitles(t)) == t
// for any t whose titles do not end in a backslash.
func QuoteTitles(titles []string) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, title := range titles {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(title, `"`, `\"`))
		b.WriteByte('"')
	}
	b.WriteByte('}')
	return b.String()
}
