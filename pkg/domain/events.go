package domain

import "time"

// EventKind defines the shape of a trace event.
type EventKind string

const (
	EventStart        EventKind = "start"
	EventEnd          EventKind = "end"
	EventLog          EventKind = "log"
	EventStateSummary EventKind = "state_summary"
	EventToolBatch    EventKind = "tool_batch"
	EventModelCall    EventKind = "model_call"
	EventTransition   EventKind = "transition"
)

// Event is a rendered trace event. It only lives between rendering and writing.
type Event struct {
	Kind      EventKind
	Label     string // node name, log category or title
	ID        CorrelationID
	Timestamp time.Time
	Lines     []string
}
