package main

import (
	"github.com/alecthomas/kong"

	"github.com/akasprzok/datastory/internal/commands"
)

func main() {
	ctx := kong.Parse(&commands.Cli,
		kong.Name("datastory"),
		kong.Description("Render publication-styled charts and maps from data files and Prometheus queries."),
		kong.UsageOnError(),
	)
	runCtx, err := commands.NewContext(commands.Cli.Style, commands.Cli.LogLevel, commands.Cli.LogHuman, commands.Cli.Timeout)
	ctx.FatalIfErrorf(err)
	// Call the Run() method of the selected parsed command.
	err = ctx.Run(runCtx)
	ctx.FatalIfErrorf(err)
}
