package tui

import (
	"strings"

	"github.com/aretw0/nodetrace/pkg/format"
	"github.com/muesli/termenv"
)

var headerPrefixes = []string{
	"node start: ",
	"node complete: ",
	"model call: ",
	"tool call",
	"next node: ",
}

// Highlighter colors trace log lines for a terminal.
type Highlighter struct {
	profile termenv.Profile
}

// NewHighlighter returns a Highlighter for profile. termenv.Ascii leaves lines untouched.
func NewHighlighter(profile termenv.Profile) *Highlighter {
	return &Highlighter{profile: profile}
}

// Line colors a single trace line.
func (h *Highlighter) Line(line string) string {
	if h.profile == termenv.Ascii {
		return line
	}

	switch {
	case line == format.Separator:
		return termenv.String(line).Foreground(h.profile.Color("#6b7280")).String()
	case isHeader(line):
		return termenv.String(line).Foreground(h.profile.Color("#a78bfa")).Bold().String()
	case strings.HasPrefix(line, "["):
		end := strings.IndexByte(line, ']')
		if end < 0 {
			return line
		}
		ts := termenv.String(line[:end+1]).Foreground(h.profile.Color("#6b7280")).String()
		return ts + line[end+1:]
	default:
		return line
	}
}

func isHeader(line string) bool {
	for _, p := range headerPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}
