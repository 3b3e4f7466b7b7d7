package domain

import "fmt"

// Category is a class of trace output that can be switched on and off at runtime.
type Category string

const (
	CategoryNodeStart       Category = "node_start"
	CategoryNodeEnd         Category = "node_end"
	CategoryStateTransition Category = "state_transition"
	CategoryModelCall       Category = "model_call"
	CategoryToolCall        Category = "tool_call"
)

// Categories returns every known category in a stable order.
func Categories() []Category {
	return []Category{
		CategoryNodeStart,
		CategoryNodeEnd,
		CategoryStateTransition,
		CategoryModelCall,
		CategoryToolCall,
	}
}

// ParseCategory maps a name to a known Category.
func ParseCategory(name string) (Category, error) {
	for _, c := range Categories() {
		if string(c) == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

// LogCategory is the severity-like label of an ad-hoc log message.
type LogCategory string

const (
	LogInfo    LogCategory = "INFO"
	LogWarning LogCategory = "WARNING"
	LogError   LogCategory = "ERROR"
	LogSuccess LogCategory = "SUCCESS"
	LogDebug   LogCategory = "DEBUG"
)
