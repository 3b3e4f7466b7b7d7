package format

import (
	"testing"

	"github.com/aretw0/nodetrace/pkg/domain"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Normal Text", "Hello World", "Hello World"},
		{"Safe Controls", "Line1\nLine2\tTabbed", "Line1\nLine2\tTabbed"},
		{"ANSI Code", "\x1b[31mRed\x1b[0m", "[31mRed[0m"},
		{"Null Byte", "Null\x00Byte", "NullByte"},
		{"Bell", "Ding\x07", "Ding"},
		{"Invalid UTF-8", "a\xffb", "a�b"},
		{"Emoji kept", "✅ done", "✅ done"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.input); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestLog_StripsEscapes(t *testing.T) {
	got := Log("\x1b[2Jwiped", "INFO", fixedNow)
	want := "[2024-03-09 14:05:07] ℹ️ [INFO] [2Jwiped"
	if got[0] != want {
		t.Errorf("Expected %q, got %q", want, got[0])
	}
}

func TestField(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Newline", "a\nb", "a b"},
		{"CRLF", "a\r\nb", "a b"},
		{"Carriage Return", "a\rb", "a b"},
		{"Tab kept", "a\tb", "a\tb"},
		{"ANSI stripped", "\x1b[31mx\ny", "[31mx y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Field(tt.input); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestRenderers_KeepFieldsOnOneLine(t *testing.T) {
	start := Start("x\ny", "", fixedNow)
	if len(start) != 5 || start[1] != "node start: x y" {
		t.Errorf("Expected a single node start line, got %q", start)
	}

	batch := ToolBatch([]domain.ToolInvocation{{domain.KeyName: "a\nb"}, {domain.KeyName: "c"}}, "", fixedNow)
	if got := batch[len(batch)-2]; got != "a b c" {
		t.Errorf("Expected tool names on one line, got %q", got)
	}

	summary := StateSummary("t", domain.Snapshot{{Key: "k", Value: "v1\nv2"}})
	if len(summary) != 5 || summary[3] != "  k: v1 v2" {
		t.Errorf("Expected one line per entry, got %q", summary)
	}
}
