package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	v1 "github.com/prometheus/client_golang/api/prometheus/v1"
	"github.com/prometheus/common/model"
	"gopkg.in/yaml.v2"

	"github.com/akasprzok/datastory/internal/charts"
	"github.com/akasprzok/datastory/internal/prometheus"
	"github.com/akasprzok/datastory/internal/tables"
)

type QueryCmd struct {
	PrometheusURL string `help:"URL of the Prometheus endpoint." env:"PROMETHEUS_URL" name:"prometheus-url" required:""`
	Query         string `arg:"" name:"query" help:"Query to run." required:"true"`
	Out           string `name:"out" help:"Chart file to write (png, svg, pdf, ...)." type:"path"`
	Output        string `name:"output" short:"o" help:"Output format." default:"chart" enum:"chart,json,yaml"`
	Title         string `name:"title" help:"Chart title. Defaults to the formatted query."`
	Highlight     int    `name:"highlight" help:"Index of the bar to emphasize." default:"-1"`
	Preview       bool   `name:"preview" short:"p" help:"Draw the chart in the terminal."`
	Table         bool   `name:"table" short:"t" help:"Print the samples as a table."`
}

func (q *QueryCmd) Run(ctx *Context) error {
	if err := prometheus.ValidateQuery(q.Query); err != nil {
		return err
	}
	client, err := ctx.client(q.PrometheusURL)
	if err != nil {
		return err
	}
	log := ctx.Log.With("query", q.Query)

	qctx, cancel := context.WithTimeout(context.Background(), ctx.Timeout)
	defer cancel()
	vector, warnings, err := client.Query(qctx, q.Query, time.Now())
	for _, w := range warnings {
		log.Warn(w)
	}
	out := ctx.stdout()
	if q.Output != "chart" {
		if werr := writeStructured(out, q.Output, formatVector(vector, warnings, err)); werr != nil {
			return werr
		}
	}
	if err != nil {
		return fmt.Errorf("querying prometheus: %w", err)
	}
	if q.Output != "chart" {
		return nil
	}
	if len(vector) == 0 {
		fmt.Fprintln(out, "No Data")
		return nil
	}

	categories, values := prometheus.VectorBars(vector)
	if q.Out != "" {
		opts := []charts.Option{charts.WithTitle(q.title()), charts.Horizontal()}
		if q.Highlight >= 0 {
			opts = append(opts, charts.WithHighlight(q.Highlight))
		}
		fig, err := ctx.charter().Bar(categories, values, opts...)
		if err != nil {
			return fmt.Errorf("building chart: %w", err)
		}
		if err := fig.Save(q.Out); err != nil {
			return err
		}
		log.WithFields(map[string]any{"series": len(values), "path": q.Out}).Info("chart written")
	}
	if q.Preview || (q.Out == "" && !q.Table) {
		fmt.Fprintln(out, charts.PreviewBars(ctx.Style, categories, values, terminalWidth(), q.Highlight))
	}
	if q.Table {
		fmt.Fprintln(out, tables.Samples(vector).Table())
	}
	return nil
}

func (q *QueryCmd) title() string {
	if q.Title != "" {
		return q.Title
	}
	return prometheus.FormatQuery(q.Query)
}

func formatVector(vector model.Vector, warnings v1.Warnings, err error) map[string]any {
	data := make([]map[string]any, 0)
	for _, sample := range vector {
		data = append(data, map[string]any{
			"metric":    sample.Metric,
			"value":     sample.Value,
			"timestamp": sample.Timestamp.Unix(),
		})
	}
	return envelope(data, warnings, err)
}

func envelope(data []map[string]any, warnings v1.Warnings, err error) map[string]any {
	var errMsg any
	if err != nil {
		errMsg = err.Error()
	}
	return map[string]any{
		"data":     data,
		"warnings": warnings,
		"error":    errMsg,
	}
}

// writeStructured writes v as json or yaml.
func writeStructured(w io.Writer, format string, v any) error {
	var (
		b   []byte
		err error
	)
	switch format {
	case "json":
		b, err = json.MarshalIndent(v, "", "  ")
	case "yaml":
		b, err = yaml.Marshal(v)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", format, err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
