package domain

// Keys of the invocation config path that carries the correlation id.
const (
	KeyConfigurable = "configurable"
	KeyResearcherID = "researcher_id"
)

// InvalidID is how an absent correlation id is displayed.
const InvalidID = "invalid"

// CorrelationID links the trace events of one logical run or sub-run.
// The zero value means absent.
type CorrelationID string

// Present reports whether the id carries a value.
func (id CorrelationID) Present() bool {
	return id != ""
}

// String returns the id, or InvalidID when absent.
func (id CorrelationID) String() string {
	if id == "" {
		return InvalidID
	}
	return string(id)
}

// InvocationConfig is the per-invocation configuration handed to a node by the host pipeline.
// Only configurable.researcher_id is read.
type InvocationConfig map[string]any
