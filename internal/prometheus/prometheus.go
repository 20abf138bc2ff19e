// Package prometheus fetches chart data from a Prometheus server.
package prometheus

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/api"
	v1 "github.com/prometheus/client_golang/api/prometheus/v1"
	"github.com/prometheus/common/model"

	"github.com/prometheus/prometheus/promql/parser"
)

type prometheusClient struct {
	v1api v1.API
}

// Client runs PromQL queries. Deadlines come from ctx.
type Client interface {
	Query(ctx context.Context, query string, at time.Time) (model.Vector, v1.Warnings, error)
	QueryRange(ctx context.Context, query string, r v1.Range) (model.Matrix, v1.Warnings, error)
}

func NewClient(url string) (Client, error) {
	client, err := api.NewClient(api.Config{
		Address: url,
	})
	if err != nil {
		return nil, fmt.Errorf("creating prometheus client: %w", err)
	}
	v1api := v1.NewAPI(client)
	return &prometheusClient{v1api: v1api}, nil
}

func (c *prometheusClient) Query(ctx context.Context, query string, at time.Time) (model.Vector, v1.Warnings, error) {
	result, warnings, err := c.v1api.Query(ctx, query, at, queryOpts(ctx)...)
	if err != nil {
		return nil, warnings, err
	}

	switch result.Type() {
	case model.ValVector:
		return result.(model.Vector), warnings, nil
	case model.ValScalar:
		s := result.(*model.Scalar)
		return model.Vector{{Metric: model.Metric{}, Value: s.Value, Timestamp: s.Timestamp}}, warnings, nil
	case model.ValNone, model.ValMatrix, model.ValString:
		return nil, warnings, fmt.Errorf("unexpected result type: %s", result.Type())
	default:
		return nil, warnings, fmt.Errorf("unknown result type: %s", result.Type())
	}
}

func (c *prometheusClient) QueryRange(ctx context.Context, query string, r v1.Range) (model.Matrix, v1.Warnings, error) {
	result, warnings, err := c.v1api.QueryRange(ctx, query, r, queryOpts(ctx)...)
	if err != nil {
		return nil, warnings, err
	}

	switch result.Type() {
	case model.ValMatrix:
		return result.(model.Matrix), warnings, nil
	case model.ValNone, model.ValScalar, model.ValVector, model.ValString:
		return nil, warnings, fmt.Errorf("unexpected result type: %s", result.Type())
	default:
		return nil, warnings, fmt.Errorf("unknown result type: %s", result.Type())
	}
}

// queryOpts passes the context deadline on as the server-side query timeout.
func queryOpts(ctx context.Context) []v1.Option {
	deadline, ok := ctx.Deadline()
	if !ok {
		return nil
	}
	return []v1.Option{v1.WithTimeout(time.Until(deadline))}
}

// ValidateQuery parses query as PromQL without sending it.
func ValidateQuery(query string) error {
	if _, err := parser.ParseExpr(query); err != nil {
		return fmt.Errorf("invalid query: %w", err)
	}
	return nil
}

func FormatQuery(query string) string {
	ast, err := parser.ParseExpr(query)
	if err != nil {
		return query
	}
	return ast.Pretty(0)
}
