package commands

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	v1 "github.com/prometheus/client_golang/api/prometheus/v1"
	"github.com/prometheus/common/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/akasprzok/datastory/internal/prometheus"
)

func TestFormatVector(t *testing.T) {
	tests := []struct {
		name     string
		vector   model.Vector
		warnings v1.Warnings
		err      error
		wantErr  bool
	}{
		{
			name:   "empty vector",
			vector: model.Vector{},
		},
		{
			name: "multiple samples",
			vector: model.Vector{
				&model.Sample{
					Metric:    model.Metric{"__name__": "up", "job": "prometheus"},
					Value:     1,
					Timestamp: 1234567890000,
				},
				&model.Sample{
					Metric:    model.Metric{"__name__": "up", "job": "node"},
					Value:     0,
					Timestamp: 1234567890000,
				},
			},
		},
		{
			name:     "with warnings",
			vector:   model.Vector{},
			warnings: v1.Warnings{"warning 1", "warning 2"},
		},
		{
			name:    "with error",
			vector:  model.Vector{},
			err:     errors.New("test error"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := formatVector(tt.vector, tt.warnings, tt.err)

			data, ok := result["data"].([]map[string]any)
			if !ok {
				t.Fatalf("formatVector() data field is not []map[string]any")
			}
			if len(data) != len(tt.vector) {
				t.Errorf("formatVector() data length = %d, want %d", len(data), len(tt.vector))
			}

			if tt.warnings != nil {
				warnings, ok := result["warnings"].(v1.Warnings)
				if !ok || len(warnings) != len(tt.warnings) {
					t.Errorf("formatVector() warnings = %v, want %v", result["warnings"], tt.warnings)
				}
			}

			if tt.wantErr {
				if result["error"] != tt.err.Error() {
					t.Errorf("formatVector() error = %v, want %v", result["error"], tt.err.Error())
				}
			} else if result["error"] != nil {
				t.Errorf("formatVector() error = %v, want nil", result["error"])
			}
		})
	}
}

func TestFormatMatrix(t *testing.T) {
	matrix := model.Matrix{
		{
			Metric: model.Metric{"job": "api"},
			Values: []model.SamplePair{{Timestamp: 1000, Value: 1}, {Timestamp: 61000, Value: 2}},
		},
	}

	result := formatMatrix(matrix, nil, nil)
	data := result["data"].([]map[string]any)
	require.Len(t, data, 1)
	values := data[0]["values"].([]map[string]any)
	require.Len(t, values, 2)
	assert.Equal(t, int64(61), values[1]["timestamp"])
	assert.Nil(t, result["error"])
}

func vectorClient(vector model.Vector, err error) *prometheus.MockClient {
	return &prometheus.MockClient{
		QueryFunc: func(ctx context.Context, query string, at time.Time) (model.Vector, v1.Warnings, error) {
			return vector, v1.Warnings{"partial response"}, err
		},
	}
}

var sampleVector = model.Vector{
	{Metric: model.Metric{"job": "api"}, Value: 7, Timestamp: 1700000000000},
	{Metric: model.Metric{"job": "web"}, Value: 3, Timestamp: 1700000000000},
}

func TestQueryCmdWritesChart(t *testing.T) {
	ctx, out := testContext(t, vectorClient(sampleVector, nil))
	path := filepath.Join(t.TempDir(), "up.svg")

	cmd := &QueryCmd{Query: "up", Out: path, Output: "chart", Highlight: 0, Table: true}
	require.NoError(t, cmd.Run(ctx))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
	assert.Contains(t, out.String(), `{job="api"}`)
}

func TestQueryCmdPreviewByDefault(t *testing.T) {
	ctx, out := testContext(t, vectorClient(sampleVector, nil))

	require.NoError(t, (&QueryCmd{Query: "up", Output: "chart", Highlight: -1}).Run(ctx))
	assert.NotEmpty(t, strings.TrimSpace(out.String()))
}

func TestQueryCmdStructuredOutput(t *testing.T) {
	ctx, out := testContext(t, vectorClient(sampleVector, nil))

	require.NoError(t, (&QueryCmd{Query: "up", Output: "json", Highlight: -1}).Run(ctx))
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Len(t, decoded["data"], 2)

	out.Reset()
	require.NoError(t, (&QueryCmd{Query: "up", Output: "yaml", Highlight: -1}).Run(ctx))
	var fromYAML map[string]any
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &fromYAML))
	assert.Len(t, fromYAML["data"], 2)
}

func TestQueryCmdNoData(t *testing.T) {
	ctx, out := testContext(t, vectorClient(nil, nil))

	require.NoError(t, (&QueryCmd{Query: "up", Output: "chart", Highlight: -1}).Run(ctx))
	assert.Equal(t, "No Data\n", out.String())
}

func TestQueryCmdErrors(t *testing.T) {
	called := false
	client := &prometheus.MockClient{
		QueryFunc: func(context.Context, string, time.Time) (model.Vector, v1.Warnings, error) {
			called = true
			return nil, nil, errors.New("connection refused")
		},
	}
	ctx, _ := testContext(t, client)

	err := (&QueryCmd{Query: "sum(", Output: "chart"}).Run(ctx)
	assert.ErrorContains(t, err, "invalid query")
	assert.False(t, called, "invalid queries must not be sent")

	err = (&QueryCmd{Query: "up", Output: "chart"}).Run(ctx)
	assert.ErrorContains(t, err, "connection refused")

	err = (&QueryCmd{Query: "up", Output: "json"}).Run(ctx)
	assert.ErrorContains(t, err, "connection refused")
}

func TestQueryRangeCmd(t *testing.T) {
	var got v1.Range
	client := &prometheus.MockClient{
		QueryRangeFunc: func(ctx context.Context, query string, r v1.Range) (model.Matrix, v1.Warnings, error) {
			got = r
			return model.Matrix{
				{
					Metric: model.Metric{"job": "api"},
					Values: []model.SamplePair{
						{Timestamp: model.TimeFromUnix(r.Start.Unix()), Value: 1},
						{Timestamp: model.TimeFromUnix(r.End.Unix()), Value: 2},
					},
				},
			}, nil, nil
		},
	}
	ctx, out := testContext(t, client)
	path := filepath.Join(t.TempDir(), "range.png")

	cmd := &QueryRangeCmd{Query: "rate(http_requests_total[5m])", Range: 2 * time.Hour, Step: 30 * time.Second, Out: path, Output: "chart", Highlight: -1, Preview: true}
	require.NoError(t, cmd.Run(ctx))

	assert.Equal(t, 2*time.Hour, got.End.Sub(got.Start))
	assert.Equal(t, 30*time.Second, got.Step)
	_, err := os.Stat(path)
	require.NoError(t, err)
	assert.Contains(t, out.String(), `{job="api"}`)
}

func TestQueryRangeCmdDefaultStep(t *testing.T) {
	var got v1.Range
	client := &prometheus.MockClient{
		QueryRangeFunc: func(ctx context.Context, query string, r v1.Range) (model.Matrix, v1.Warnings, error) {
			got = r
			return nil, nil, nil
		},
	}
	ctx, out := testContext(t, client)

	require.NoError(t, (&QueryRangeCmd{Query: "up", Range: time.Hour, Output: "chart", Highlight: -1}).Run(ctx))
	assert.Equal(t, DefaultQueryStep, got.Step)
	assert.Equal(t, "No Data\n", out.String())
}

func TestFormatQueryCmd(t *testing.T) {
	ctx, out := testContext(t, nil)

	require.NoError(t, (&FormatQueryCmd{Query: `sum(rate(x[5m]))`}).Run(ctx))
	assert.Equal(t, "sum(rate(x[5m]))\n", out.String())

	assert.Error(t, (&FormatQueryCmd{Query: "sum("}).Run(ctx))
}
