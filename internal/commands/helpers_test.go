package commands

import (
	"bytes"
	"testing"
	"time"

	"github.com/akasprzok/datastory/internal/logger"
	"github.com/akasprzok/datastory/internal/prometheus"
	"github.com/akasprzok/datastory/internal/style"
)

func testContext(t *testing.T, client prometheus.Client) (*Context, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	return &Context{
		Log:     logger.Nop(),
		Style:   style.Default(),
		Timeout: 5 * time.Second,
		Stdout:  out,
		NewClient: func(string) (prometheus.Client, error) {
			return client, nil
		},
	}, out
}
