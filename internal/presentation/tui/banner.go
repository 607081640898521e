package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the application banner with a gradient when colors are supported.
func PrintBanner(w io.Writer) {
	out := termenv.NewOutput(w)
	colors := []string{"#818cf8", "#a78bfa", "#c084fc", "#e879f9", "#f472b6"}
	lines := []string{
		" _____           _             ",
		"|_   _|   _ _ __(_)_ __   __ _ ",
		"  | || | | | '__| | '_ \\ / _` |",
		"  | || |_| | |  | | | | | (_| |",
		"  |_| \\__,_|_|  |_|_| |_|\\__, |",
	}

	fmt.Fprintln(w)
	for i, line := range lines {
		fmt.Fprintln(w, out.String(line).Foreground(out.Color(colors[i])))
	}
	fmt.Fprintln(w, out.String("                          |___/ ").Faint())
	fmt.Fprintln(w)
}
