package format

import (
	"github.com/aretw0/nodetrace/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// toolRecord is the part of a tool invocation record that is rendered.
type toolRecord struct {
	Name string `mapstructure:"name"`
}

// ToolNames returns the "name" of every record in order.
// Records without a usable name yield domain.UnknownTool.
func ToolNames(calls []domain.ToolInvocation) []string {
	names := make([]string, 0, len(calls))
	for _, call := range calls {
		names = append(names, toolName(call))
	}
	return names
}

func toolName(call domain.ToolInvocation) string {
	if call == nil {
		return domain.UnknownTool
	}
	var rec toolRecord
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &rec,
	})
	if err != nil {
		return domain.UnknownTool
	}
	if err := dec.Decode(map[string]any(call)); err != nil || rec.Name == "" {
		return domain.UnknownTool
	}
	return Field(rec.Name)
}
