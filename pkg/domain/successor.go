package domain

// HasSuccessor is implemented by node results that name the node to run next.
// ok is false when the result carries no successor.
type HasSuccessor interface {
	Successor() (next string, ok bool)
}

// Command is a node result that routes the pipeline to another node and
// optionally updates the pipeline state.
type Command struct {
	Goto   string         `json:"goto,omitempty" mapstructure:"goto"`
	Update map[string]any `json:"update,omitempty" mapstructure:"update"`
}

// Successor implements HasSuccessor.
func (c Command) Successor() (string, bool) {
	return c.Goto, c.Goto != ""
}
