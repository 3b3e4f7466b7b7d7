package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the nodetrace banner to w.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	rows := []struct {
		text  string
		color string
	}{
		{"                 _      _                       ", "#818cf8"},
		{"  _ __   ___   __| | ___| |_ _ __ __ _  ___ ___ ", "#a78bfa"},
		{" | '_ \\ / _ \\ / _` |/ _ \\ __| '__/ _` |/ __/ _ \\", "#c084fc"},
		{" | | | | (_) | (_| |  __/ |_| | | (_| | (_|  __/", "#e879f9"},
		{" |_| |_|\\___/ \\__,_|\\___|\\__|_|  \\__,_|\\___\\___|", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, row := range rows {
		fmt.Fprintln(w, termenv.String(row.text).Foreground(p.Color(row.color)))
	}
	fmt.Fprintln(w)
}
