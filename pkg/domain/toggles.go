package domain

// ToggleSet holds the master switch and the per-category switches.
// Field tags match the YAML config file, the JSON admin API and the Redis hash.
type ToggleSet struct {
	Enabled         bool `json:"enabled" yaml:"enabled" mapstructure:"enabled"`
	NodeStart       bool `json:"node_start" yaml:"node_start" mapstructure:"node_start"`
	NodeEnd         bool `json:"node_end" yaml:"node_end" mapstructure:"node_end"`
	StateTransition bool `json:"state_transition" yaml:"state_transition" mapstructure:"state_transition"`
	ModelCall       bool `json:"model_call" yaml:"model_call" mapstructure:"model_call"`
	ToolCall        bool `json:"tool_call" yaml:"tool_call" mapstructure:"tool_call"`
}

// DefaultToggles returns the initial state: everything enabled.
func DefaultToggles() ToggleSet {
	return ToggleSet{
		Enabled:         true,
		NodeStart:       true,
		NodeEnd:         true,
		StateTransition: true,
		ModelCall:       true,
		ToolCall:        true,
	}
}

// Flag returns the raw switch of a category, ignoring the master switch.
// Unknown categories report false.
func (t ToggleSet) Flag(c Category) bool {
	switch c {
	case CategoryNodeStart:
		return t.NodeStart
	case CategoryNodeEnd:
		return t.NodeEnd
	case CategoryStateTransition:
		return t.StateTransition
	case CategoryModelCall:
		return t.ModelCall
	case CategoryToolCall:
		return t.ToolCall
	default:
		return false
	}
}

// IsEnabled reports the effective state of a category: master AND flag.
func (t ToggleSet) IsEnabled(c Category) bool {
	return t.Enabled && t.Flag(c)
}

// With returns a copy of t with the given category switched.
func (t ToggleSet) With(c Category, on bool) ToggleSet {
	switch c {
	case CategoryNodeStart:
		t.NodeStart = on
	case CategoryNodeEnd:
		t.NodeEnd = on
	case CategoryStateTransition:
		t.StateTransition = on
	case CategoryModelCall:
		t.ModelCall = on
	case CategoryToolCall:
		t.ToolCall = on
	}
	return t
}
