package charts

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/akasprzok/datastory/internal/style"
)

func TestSeriesColorCycles(t *testing.T) {
	cfg := style.Default()
	n := len(cfg.Categorical)

	for i := 0; i < n; i++ {
		assert.Equal(t, lipgloss.Color(string(cfg.Categorical[i])), SeriesColor(cfg, i))
		assert.Equal(t, SeriesColor(cfg, i), SeriesColor(cfg, i+n), "index %d should wrap", i+n)
	}
}

func TestSeriesColorWithoutCategoricalUsesPrimary(t *testing.T) {
	cfg := style.Default()
	cfg.Categorical = nil

	assert.Equal(t, lipgloss.Color("#2E86AB"), SeriesColor(cfg, 3))
}

func TestSeriesStyleForeground(t *testing.T) {
	cfg := style.Default()
	assert.Equal(t, SeriesColor(cfg, 0), SeriesStyle(cfg, 0).GetForeground())
}

func TestRoleStyleForeground(t *testing.T) {
	cfg := style.Default()
	assert.Equal(t, lipgloss.Color("#F18F01"), RoleStyle(cfg, style.Accent).GetForeground())
}
