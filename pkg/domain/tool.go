package domain

// KeyName is the field of a tool invocation record holding the tool name.
const KeyName = "name"

// UnknownTool is displayed for records without a name.
const UnknownTool = "unknown"

// ToolInvocation is one tool call requested by a model, as produced by the host pipeline.
// The "name" field is expected but not required.
type ToolInvocation map[string]any
