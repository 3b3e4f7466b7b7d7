package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/nodetrace/pkg/domain"
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)
	if err != nil {
		return func(markdown string) (string, error) {
			return markdown, err
		}
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// TogglesMarkdown renders ts as a markdown table, master switch first.
func TogglesMarkdown(ts domain.ToggleSet) string {
	var b strings.Builder
	b.WriteString("| switch | state |\n")
	b.WriteString("|---|---|\n")
	fmt.Fprintf(&b, "| master | %s |\n", onOff(ts.Enabled))
	for _, c := range domain.Categories() {
		state := onOff(ts.Flag(c))
		if ts.Flag(c) && !ts.Enabled {
			state += " (muted)"
		}
		fmt.Fprintf(&b, "| %s | %s |\n", c, state)
	}
	return b.String()
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
