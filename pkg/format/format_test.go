package format

import (
	"strings"
	"testing"
	"time"

	"github.com/aretw0/nodetrace/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 9, 14, 5, 7, 0, time.Local)

func TestSeparator(t *testing.T) {
	assert.Len(t, Separator, 70)
	assert.Equal(t, strings.Repeat("=", 70), Separator)
}

func TestStart(t *testing.T) {
	got := Start("planner", "r-1", fixedNow)
	assert.Equal(t, []string{
		Separator,
		"node start: planner",
		"node id: r-1",
		"timestamp: 2024-03-09 14:05:07",
		Separator,
	}, got)
}

func TestStart_AbsentID(t *testing.T) {
	got := Start("planner", "", fixedNow)
	assert.Equal(t, "node id: invalid", got[2])
}

func TestEnd(t *testing.T) {
	tests := []struct {
		name string
		next string
		want []string
	}{
		{
			name: "without successor",
			want: []string{Separator, "node complete: writer", "node id: invalid", "timestamp: 2024-03-09 14:05:07", Separator},
		},
		{
			name: "with successor",
			next: "B",
			want: []string{Separator, "node complete: writer", "node id: invalid", "timestamp: 2024-03-09 14:05:07", "next node: B", Separator},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, End("writer", "", fixedNow, tt.next))
		})
	}
}

func TestLog(t *testing.T) {
	tests := []struct {
		category domain.LogCategory
		want     string
	}{
		{domain.LogInfo, "[2024-03-09 14:05:07] ℹ️ [INFO] hello"},
		{domain.LogWarning, "[2024-03-09 14:05:07] ⚠️ [WARNING] hello"},
		{domain.LogError, "[2024-03-09 14:05:07] ❌ [ERROR] hello"},
		{domain.LogSuccess, "[2024-03-09 14:05:07] ✅ [SUCCESS] hello"},
		{domain.LogDebug, "[2024-03-09 14:05:07] 🔍 [DEBUG] hello"},
		{"CUSTOM", "[2024-03-09 14:05:07] ℹ️ [CUSTOM] hello"},
		{"", "[2024-03-09 14:05:07] ℹ️ [INFO] hello"},
	}
	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			assert.Equal(t, []string{tt.want}, Log("hello", tt.category, fixedNow))
		})
	}
}

func TestIcon_Distinct(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range []domain.LogCategory{domain.LogInfo, domain.LogWarning, domain.LogError, domain.LogSuccess, domain.LogDebug} {
		icon := Icon(c)
		assert.False(t, seen[icon], "duplicate icon for %s", c)
		seen[icon] = true
	}
	assert.Equal(t, Icon(domain.LogInfo), Icon("nope"))
}

func TestStateSummary(t *testing.T) {
	state := domain.Snapshot{
		{Key: "a", Value: []int{1, 2, 3}},
		{Key: "b", Value: strings.Repeat("x", 150)},
		{Key: "c", Value: map[string]int{"k": 1}},
	}

	got := StateSummary("", state)
	require.Len(t, got, 7)
	assert.Equal(t, []string{Separator, "state summary", Separator}, got[:3])
	assert.Equal(t, "  a: sequence with 3 items", got[3])
	assert.Equal(t, "  b: "+strings.Repeat("x", 100)+"...", got[4])
	assert.Equal(t, "  c: mapping with 1 keys", got[5])
	assert.Equal(t, Separator, got[6])
}

func TestStateSummary_KeepsOrder(t *testing.T) {
	state := domain.Snapshot{{Key: "z", Value: 1}, {Key: "a", Value: 2}}
	got := StateSummary("after research", state)
	assert.Equal(t, "after research", got[1])
	assert.Equal(t, "  z: 1", got[3])
	assert.Equal(t, "  a: 2", got[4])
}

type label string

func TestValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "<nil>"},
		{"int", 42, "42"},
		{"bool", true, "true"},
		{"short string", "hello", "hello"},
		{"exactly 100", strings.Repeat("y", 100), strings.Repeat("y", 100)},
		{"runes not bytes", strings.Repeat("é", 101), strings.Repeat("é", 100) + "..."},
		{"named string type", label(strings.Repeat("q", 120)), strings.Repeat("q", 100) + "..."},
		{"array", [2]string{"a", "b"}, "sequence with 2 items"},
		{"empty slice", []any{}, "sequence with 0 items"},
		{"nested snapshot", domain.Snapshot{{Key: "k", Value: 1}}, "mapping with 1 keys"},
		{"struct", struct{ A int }{A: 1}, "{1}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Value(tt.in))
		})
	}
}

func TestToolBatch(t *testing.T) {
	calls := []domain.ToolInvocation{{"name": "search"}, {"name": "fetch"}}

	got := ToolBatch(calls, "", fixedNow)
	assert.Equal(t, []string{
		Separator,
		"tool call",
		"timestamp: 2024-03-09 14:05:07",
		"#tools: 2",
		"search fetch",
		Separator,
	}, got)
}

func TestToolBatch_WithIDAndMissingNames(t *testing.T) {
	calls := []domain.ToolInvocation{{"id": "1"}, nil, {"name": "fetch", "args": map[string]any{"url": "x"}}}

	got := ToolBatch(calls, "r-7", fixedNow)
	assert.Contains(t, got, "node id: r-7")
	assert.Contains(t, got, "#tools: 3")
	assert.Contains(t, got, "unknown unknown fetch")
}

func TestToolNames_WeakTyping(t *testing.T) {
	assert.Equal(t, []string{"42"}, ToolNames([]domain.ToolInvocation{{"name": 42}}))
	assert.Equal(t, []string{"unknown"}, ToolNames([]domain.ToolInvocation{{"name": []int{1}}}))
}

func TestModelCall(t *testing.T) {
	got := ModelCall("gpt-4o", 3, "r-1", fixedNow)
	assert.Equal(t, []string{
		Separator,
		"model call: gpt-4o",
		"node id: r-1",
		"timestamp: 2024-03-09 14:05:07",
		"#messages: 3",
		Separator,
	}, got)
	assert.NotContains(t, ModelCall("m", 0, "", fixedNow), "node id: invalid")
}

func TestTransition(t *testing.T) {
	assert.Equal(t, []string{"[2024-03-09 14:05:07] transition: a -> b"}, Transition("a", "b", "", fixedNow))
	assert.Equal(t, []string{"[2024-03-09 14:05:07] transition: a -> b (node id: r-2)"}, Transition("a", "b", "r-2", fixedNow))
}
