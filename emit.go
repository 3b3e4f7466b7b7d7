package nodetrace

import (
	"github.com/aretw0/nodetrace/pkg/domain"
	"github.com/aretw0/nodetrace/pkg/format"
)

// Log emits a single-line message. An empty category means domain.LogInfo.
// It is a no-op while the master switch is off.
func (t *Tracer) Log(message string, category domain.LogCategory) {
	if !t.toggles.Master() {
		return
	}
	if category == "" {
		category = domain.LogInfo
	}
	now := t.now()
	t.emit(domain.Event{
		Kind:      domain.EventLog,
		Label:     string(category),
		Timestamp: now,
		Lines:     format.Log(message, category, now),
	})
}

// StateSummary emits one line per entry of state. An empty title means "state summary".
// It is a no-op while the master switch is off.
func (t *Tracer) StateSummary(state domain.Snapshot, title string) {
	if !t.toggles.Master() {
		return
	}
	if title == "" {
		title = format.DefaultTitle
	}
	t.emit(domain.Event{
		Kind:      domain.EventStateSummary,
		Label:     title,
		Timestamp: t.now(),
		Lines:     format.StateSummary(title, state),
	})
}

// StateSummaryMap is StateSummary over a plain map, with keys in lexical order.
func (t *Tracer) StateSummaryMap(state map[string]any, title string) {
	t.StateSummary(domain.SnapshotOf(state), title)
}

// ToolBatch emits a summary of the tool calls requested in one step.
// It is a no-op while the master switch is off or when calls is empty.
func (t *Tracer) ToolBatch(calls []domain.ToolInvocation, id domain.CorrelationID) {
	if !t.toggles.Master() || len(calls) == 0 {
		return
	}
	now := t.now()
	t.emit(domain.Event{
		Kind:      domain.EventToolBatch,
		Label:     "tool call",
		ID:        id,
		Timestamp: now,
		Lines:     format.ToolBatch(calls, id, now),
	})
}

// ModelCall emits a model invocation made by a node, when model calls are enabled.
func (t *Tracer) ModelCall(model string, messages int, id domain.CorrelationID) {
	if !t.toggles.IsEnabled(domain.CategoryModelCall) {
		return
	}
	now := t.now()
	t.emit(domain.Event{
		Kind:      domain.EventModelCall,
		Label:     model,
		ID:        id,
		Timestamp: now,
		Lines:     format.ModelCall(model, messages, id, now),
	})
}

// Transition emits a move between two nodes, when state transitions are enabled.
func (t *Tracer) Transition(from, to string, id domain.CorrelationID) {
	if !t.toggles.IsEnabled(domain.CategoryStateTransition) {
		return
	}
	now := t.now()
	t.emit(domain.Event{
		Kind:      domain.EventTransition,
		Label:     from + "->" + to,
		ID:        id,
		Timestamp: now,
		Lines:     format.Transition(from, to, id, now),
	})
}
