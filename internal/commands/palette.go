package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akasprzok/datastory/internal/tables"
)

type PaletteCmd struct {
	Interactive bool `name:"interactive" short:"i" help:"Browse the palette in a filterable table."`
}

func (p *PaletteCmd) Run(ctx *Context) error {
	m := tables.Palette(ctx.Style)
	if !p.Interactive {
		fmt.Fprintln(ctx.stdout(), m.Table())
		return nil
	}
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("running palette browser: %w", err)
	}
	return nil
}
