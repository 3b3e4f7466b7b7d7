package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/nodetrace/internal/presentation/tui"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// RunShow prints a trace log to w. Lines are colorized when w is a terminal.
func RunShow(path string, w io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open trace log: %w", err)
	}
	defer f.Close()

	profile := termenv.Ascii
	if out, ok := w.(*os.File); ok && term.IsTerminal(int(out.Fd())) {
		profile = termenv.ColorProfile()
	}

	return printTrace(f, w, tui.NewHighlighter(profile))
}

func printTrace(r io.Reader, w io.Writer, h *tui.Highlighter) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if _, err := fmt.Fprintln(w, h.Line(scanner.Text())); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// RunToggles prints the effective toggles as a rendered markdown table.
// Plain markdown is printed when w is not a terminal.
func RunToggles(opts Options, w io.Writer) error {
	ts, _, err := ResolveToggles(opts)
	if err != nil {
		return err
	}

	md := tui.TogglesMarkdown(ts)
	if out, ok := w.(*os.File); ok && term.IsTerminal(int(out.Fd())) {
		if rendered, err := tui.NewRenderer()(md); err == nil {
			md = rendered
		}
	}
	_, err = io.WriteString(w, md)
	return err
}
