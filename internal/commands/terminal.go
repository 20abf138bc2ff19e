package commands

import (
	"os"

	"golang.org/x/term"
)

// terminalWidth is the usable chart width of the terminal on stdout.
func terminalWidth() int {
	termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || termWidth <= ChartWidthPadding {
		return DefaultTerminalWidth
	}
	return termWidth - ChartWidthPadding
}
