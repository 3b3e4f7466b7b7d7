package toggles

import (
	"strconv"
	"strings"

	"github.com/aretw0/nodetrace/pkg/domain"
)

// Environment variables overriding the switches.
const (
	EnvEnabled         = "DEBUG_ENABLED"
	EnvNodeStart       = "DEBUG_NODE_START"
	EnvNodeEnd         = "DEBUG_NODE_END"
	EnvStateTransition = "DEBUG_STATE_TRANSITION"
	EnvModelCall       = "DEBUG_LLM_CALLS"
	EnvToolCall        = "DEBUG_TOOL_CALLS"
)

var envCategories = map[string]domain.Category{
	EnvNodeStart:       domain.CategoryNodeStart,
	EnvNodeEnd:         domain.CategoryNodeEnd,
	EnvStateTransition: domain.CategoryStateTransition,
	EnvModelCall:       domain.CategoryModelCall,
	EnvToolCall:        domain.CategoryToolCall,
}

// ApplyEnv overrides ts with the DEBUG_* variables found through lookup (usually os.LookupEnv).
// Unset or unparsable values leave the switch untouched.
func ApplyEnv(ts domain.ToggleSet, lookup func(string) (string, bool)) domain.ToggleSet {
	if v, ok := parseEnv(lookup, EnvEnabled); ok {
		ts.Enabled = v
	}
	for name, c := range envCategories {
		if v, ok := parseEnv(lookup, name); ok {
			ts = ts.With(c, v)
		}
	}
	return ts
}

func parseEnv(lookup func(string) (string, bool), name string) (bool, bool) {
	raw, ok := lookup(name)
	if !ok {
		return false, false
	}
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, false
	}
	return v, true
}
