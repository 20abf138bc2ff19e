package commands

import (
	"fmt"

	"github.com/akasprzok/datastory/internal/prometheus"
)

type FormatQueryCmd struct {
	Query string `arg:"" name:"query" help:"Query to format." required:"true"`
}

func (f *FormatQueryCmd) Run(ctx *Context) error {
	if err := prometheus.ValidateQuery(f.Query); err != nil {
		return err
	}
	fmt.Fprintln(ctx.stdout(), prometheus.FormatQuery(f.Query))
	return nil
}
