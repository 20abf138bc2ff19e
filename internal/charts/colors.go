package charts

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/akasprzok/datastory/internal/style"
)

// SeriesColor returns the terminal color for a given series index, cycling
// through the configured categorical palette.
func SeriesColor(cfg *style.Config, index int) lipgloss.Color {
	colors := cfg.Categorical
	if len(colors) == 0 {
		return lipgloss.Color(string(cfg.Color(style.Primary)))
	}
	return lipgloss.Color(string(colors[index%len(colors)]))
}

// SeriesStyle returns a lipgloss style with the foreground color for the given series index.
func SeriesStyle(cfg *style.Config, index int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(SeriesColor(cfg, index))
}

// RoleStyle returns a lipgloss style with the foreground color of a role.
func RoleStyle(cfg *style.Config, role style.Role) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(string(cfg.Color(role))))
}
