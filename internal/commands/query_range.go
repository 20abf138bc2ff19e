package commands

import (
	"context"
	"fmt"
	"time"

	v1 "github.com/prometheus/client_golang/api/prometheus/v1"
	"github.com/prometheus/common/model"

	"github.com/akasprzok/datastory/internal/charts"
	"github.com/akasprzok/datastory/internal/prometheus"
)

type QueryRangeCmd struct {
	PrometheusURL string        `help:"URL of the Prometheus endpoint." env:"PROMETHEUS_URL" name:"prometheus-url" required:""`
	Query         string        `arg:"" name:"query" help:"Query to run." required:"true"`
	Range         time.Duration `name:"range" short:"r" help:"Range to query." default:"1h"`
	Step          time.Duration `name:"step" short:"s" help:"Query resolution." default:"1m"`
	Out           string        `name:"out" help:"Chart file to write (png, svg, pdf, ...)." type:"path"`
	Output        string        `name:"output" short:"o" help:"Output format." default:"chart" enum:"chart,json,yaml"`
	Title         string        `name:"title" help:"Chart title. Defaults to the formatted query."`
	Highlight     int           `name:"highlight" help:"Index of the series to emphasize." default:"-1"`
	Preview       bool          `name:"preview" short:"p" help:"Draw the chart in the terminal."`
}

func (q *QueryRangeCmd) Run(ctx *Context) error {
	if err := prometheus.ValidateQuery(q.Query); err != nil {
		return err
	}
	client, err := ctx.client(q.PrometheusURL)
	if err != nil {
		return err
	}
	step := q.Step
	if step <= 0 {
		step = DefaultQueryStep
	}
	log := ctx.Log.WithFields(map[string]any{"query": q.Query, "range": q.Range.String(), "step": step.String()})

	end := time.Now()
	qctx, cancel := context.WithTimeout(context.Background(), ctx.Timeout)
	defer cancel()
	matrix, warnings, err := client.QueryRange(qctx, q.Query, v1.Range{
		Start: end.Add(-q.Range),
		End:   end,
		Step:  step,
	})
	for _, w := range warnings {
		log.Warn(w)
	}
	out := ctx.stdout()
	if q.Output != "chart" {
		if werr := writeStructured(out, q.Output, formatMatrix(matrix, warnings, err)); werr != nil {
			return werr
		}
	}
	if err != nil {
		return fmt.Errorf("querying prometheus: %w", err)
	}
	if q.Output != "chart" {
		return nil
	}

	series := prometheus.MatrixSeries(matrix)
	if len(series) == 0 {
		fmt.Fprintln(out, "No Data")
		return nil
	}

	if q.Out != "" {
		opts := []charts.Option{charts.WithTitle(q.title())}
		if q.Highlight >= 0 {
			opts = append(opts, charts.WithHighlight(q.Highlight))
		}
		fig, err := ctx.charter().TimeLines(series, opts...)
		if err != nil {
			return fmt.Errorf("building chart: %w", err)
		}
		if err := fig.Save(q.Out); err != nil {
			return err
		}
		log.WithFields(map[string]any{"series": len(series), "path": q.Out}).Info("chart written")
	}
	if q.Preview || q.Out == "" {
		chart, legend := charts.PreviewTimeSeries(ctx.Style, series, terminalWidth())
		fmt.Fprintln(out, chart)
		fmt.Fprintln(out, charts.RenderLegend(legend))
	}
	return nil
}

func (q *QueryRangeCmd) title() string {
	if q.Title != "" {
		return q.Title
	}
	return prometheus.FormatQuery(q.Query)
}

func formatMatrix(matrix model.Matrix, warnings v1.Warnings, err error) map[string]any {
	data := make([]map[string]any, 0)
	for _, sample := range matrix {
		values := make([]map[string]any, 0)
		for _, value := range sample.Values {
			values = append(values, map[string]any{
				"timestamp": value.Timestamp.Unix(),
				"value":     value.Value,
			})
		}
		data = append(data, map[string]any{
			"metric": sample.Metric,
			"values": values,
		})
	}
	return envelope(data, warnings, err)
}
