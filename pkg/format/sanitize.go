package format

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Clean makes caller-supplied text safe to print on a terminal and in the log file.
// Invalid UTF-8 is replaced and control characters are stripped, except newline, tab and
// carriage return. This prevents ANSI escape injection into the trace output.
func Clean(s string) string {
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "�")
	}

	// Fast path: if no control chars, return as is.
	clean := true
	for _, r := range s {
		if unicode.IsControl(r) && !isSafeControl(r) {
			clean = false
			break
		}
	}
	if clean {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !unicode.IsControl(r) || isSafeControl(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isSafeControl(r rune) bool {
	return r == '\n' || r == '\t' || r == '\r'
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// Field is Clean for text rendered inside a single trace line: line breaks become spaces.
func Field(s string) string {
	return lineBreaks.Replace(Clean(s))
}
