package nodetrace

import (
	"github.com/aretw0/nodetrace/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// CorrelationIDFrom reads cfg[domain.KeyConfigurable][domain.KeyResearcherID].
// Non-string ids are converted to text; any shape mismatch yields an absent id.
func CorrelationIDFrom(cfg domain.InvocationConfig) domain.CorrelationID {
	raw, ok := cfg[domain.KeyConfigurable]
	if !ok {
		return ""
	}

	var configurable map[string]any
	if err := mapstructure.Decode(raw, &configurable); err != nil {
		return ""
	}

	var id string
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &id,
	})
	if err != nil {
		return ""
	}
	if err := dec.Decode(configurable[domain.KeyResearcherID]); err != nil {
		return ""
	}
	return domain.CorrelationID(id)
}
