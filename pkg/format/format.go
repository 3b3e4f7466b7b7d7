package format

import (
	"fmt"
	"reflect"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aretw0/nodetrace/pkg/domain"
)

const (
	// SeparatorWidth is the number of marker characters in a separator line.
	SeparatorWidth = 70
	// TimeLayout is the layout of every rendered timestamp.
	TimeLayout = "2006-01-02 15:04:05"
	// MaxValueLen is the number of characters kept from long text values.
	MaxValueLen = 100
	// Ellipsis marks a truncated text value.
	Ellipsis = "..."
	// DefaultTitle is used by StateSummary when no title is given.
	DefaultTitle = "state summary"
)

// Separator frames multi-line events.
var Separator = strings.Repeat("=", SeparatorWidth)

var icons = map[domain.LogCategory]string{
	domain.LogInfo:    "ℹ️",
	domain.LogWarning: "⚠️",
	domain.LogError:   "❌",
	domain.LogSuccess: "✅",
	domain.LogDebug:   "🔍",
}

// Icon returns the glyph of a log category, falling back to the INFO glyph.
func Icon(c domain.LogCategory) string {
	if icon, ok := icons[c]; ok {
		return icon
	}
	return icons[domain.LogInfo]
}

// Timestamp renders t with TimeLayout.
func Timestamp(t time.Time) string {
	return t.Format(TimeLayout)
}

func idLine(id domain.CorrelationID) string {
	return "node id: " + Field(id.String())
}

func timeLine(now time.Time) string {
	return "timestamp: " + Timestamp(now)
}

// Start renders the event emitted before a node runs.
func Start(name string, id domain.CorrelationID, now time.Time) []string {
	return []string{
		Separator,
		"node start: " + Field(name),
		idLine(id),
		timeLine(now),
		Separator,
	}
}

// End renders the event emitted after a node returns. next is omitted when empty.
func End(name string, id domain.CorrelationID, now time.Time, next string) []string {
	lines := []string{
		Separator,
		"node complete: " + Field(name),
		idLine(id),
		timeLine(now),
	}
	if next != "" {
		lines = append(lines, "next node: "+Field(next))
	}
	return append(lines, Separator)
}

// Log renders a single-line leveled message.
func Log(message string, category domain.LogCategory, now time.Time) []string {
	if category == "" {
		category = domain.LogInfo
	}
	return []string{
		fmt.Sprintf("[%s] %s [%s] %s", Timestamp(now), Icon(category), Field(string(category)), Field(message)),
	}
}

// StateSummary renders one line per snapshot entry, in snapshot order.
func StateSummary(title string, state domain.Snapshot) []string {
	if title == "" {
		title = DefaultTitle
	}
	lines := make([]string, 0, len(state)+4)
	lines = append(lines, Separator, Field(title), Separator)
	for _, e := range state {
		lines = append(lines, fmt.Sprintf("  %s: %s", Field(e.Key), Field(Value(e.Value))))
	}
	return append(lines, Separator)
}

// Value renders one state value:
// sequences and mappings by their size, long text truncated, everything else via fmt.
func Value(v any) string {
	switch x := v.(type) {
	case nil:
		return fmt.Sprint(v)
	case string:
		return truncate(x)
	case domain.Snapshot:
		return fmt.Sprintf("mapping with %d keys", len(x))
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return fmt.Sprintf("sequence with %d items", rv.Len())
	case reflect.Map:
		return fmt.Sprintf("mapping with %d keys", rv.Len())
	case reflect.String:
		return truncate(rv.String())
	default:
		return fmt.Sprint(v)
	}
}

func truncate(s string) string {
	if utf8.RuneCountInString(s) <= MaxValueLen {
		return s
	}
	return string([]rune(s)[:MaxValueLen]) + Ellipsis
}

// ToolBatch renders a summary of the tool calls requested in one step.
// The node id line is only present when id is.
func ToolBatch(calls []domain.ToolInvocation, id domain.CorrelationID, now time.Time) []string {
	lines := []string{Separator, "tool call"}
	if id.Present() {
		lines = append(lines, idLine(id))
	}
	lines = append(lines,
		timeLine(now),
		fmt.Sprintf("#tools: %d", len(calls)),
		strings.Join(ToolNames(calls), " "),
		Separator,
	)
	return lines
}

// ModelCall renders a model invocation made by a node.
func ModelCall(model string, messages int, id domain.CorrelationID, now time.Time) []string {
	lines := []string{Separator, "model call: " + Field(model)}
	if id.Present() {
		lines = append(lines, idLine(id))
	}
	return append(lines,
		timeLine(now),
		fmt.Sprintf("#messages: %d", messages),
		Separator,
	)
}

// Transition renders a single-line state transition between two nodes.
func Transition(from, to string, id domain.CorrelationID, now time.Time) []string {
	line := fmt.Sprintf("[%s] transition: %s -> %s", Timestamp(now), Field(from), Field(to))
	if id.Present() {
		line += " (" + idLine(id) + ")"
	}
	return []string{line}
}
