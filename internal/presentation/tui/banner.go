package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the proptree banner and version to w.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	lines := []struct {
		text, color string
	}{
		{"                         _                ", "#818cf8"},
		{"  _ __  _ __ ___  _ __ | |_ _ __ ___  ___ ", "#a78bfa"},
		{" | '_ \\| '__/ _ \\| '_ \\| __| '__/ _ \\/ _ \\", "#c084fc"},
		{" | |_) | | | (_) | |_) | |_| | |  __/  __/", "#e879f9"},
		{" | .__/|_|  \\___/| .__/ \\__|_|  \\___|\\___|", "#f472b6"},
		{" |_|             |_|                      ", "#fb7185"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w, out.String(" version "+version).Faint())
	fmt.Fprintln(w)
}
