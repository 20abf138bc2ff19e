package commands

import "time"

const (
	// DefaultTerminalWidth is the fallback terminal width when detection fails.
	DefaultTerminalWidth = 80

	// ChartWidthPadding is the horizontal padding subtracted from terminal width for chart rendering.
	ChartWidthPadding = 6

	// DefaultQueryStep is the default step interval for range queries.
	DefaultQueryStep = time.Minute

	// DefaultDemoSeed seeds the demo gallery's random data.
	DefaultDemoSeed = 42

	// watchDebounce collapses the burst of events editors emit on save.
	watchDebounce = 200 * time.Millisecond
)
