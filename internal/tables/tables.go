// Package tables renders palettes and query samples as terminal tables.
package tables

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/evertras/bubble-table/table"
	"github.com/prometheus/common/model"

	"github.com/akasprzok/datastory/internal/style"
)

const (
	colGroup  = "group"
	colName   = "name"
	colHex    = "hex"
	colSwatch = "swatch"

	swatchWidth = 8
	pageSize    = 20
)

// Model is a filterable table. It can be printed once through Table or run
// as a bubbletea program.
type Model struct {
	table           table.Model
	filterTextInput textinput.Model
}

// Palette lists the role colors and the categorical, sequential and diverging
// palettes of cfg, one color per row with a swatch.
func Palette(cfg *style.Config) Model {
	var rows []table.Row
	add := func(group, name string, c style.Color) {
		rows = append(rows, table.NewRow(table.RowData{
			colGroup:  group,
			colName:   name,
			colHex:    string(c),
			colSwatch: table.NewStyledCell("", lipgloss.NewStyle().Background(lipgloss.Color(string(c)))),
		}))
	}

	for _, role := range cfg.Colors.Roles() {
		add("role", string(role), cfg.Color(role))
	}
	for i, c := range cfg.Categorical {
		add("categorical", strconv.Itoa(i), c)
	}
	for i, c := range style.Sequential(style.DefaultSequentialSize) {
		add("sequential", strconv.Itoa(i), c)
	}
	for i, c := range style.Diverging(style.DefaultDivergingSize) {
		add("diverging", strconv.Itoa(i), c)
	}

	columns := []table.Column{
		table.NewColumn(colGroup, "Palette", 13).WithFiltered(true),
		table.NewColumn(colName, "Name", 12).WithFiltered(true),
		table.NewColumn(colHex, "Hex", 9).WithFiltered(true),
		table.NewColumn(colSwatch, "", swatchWidth),
	}
	return newModel(columns, rows)
}

// Samples lists the samples of an instant query result.
func Samples(vector model.Vector) Model {
	maxValue := 0
	longestMetric := 0
	rows := make([]table.Row, 0, len(vector))
	for _, sample := range vector {
		if int(sample.Value) > maxValue {
			maxValue = int(sample.Value)
		}
		timestamp := sample.Timestamp.Time().Format(time.RFC3339)
		if len(sample.Metric.String()) > longestMetric {
			longestMetric = len(sample.Metric.String())
		}
		rows = append(rows, table.NewRow(table.RowData{
			"metric":    sample.Metric.String(),
			"value":     sample.Value.String(),
			"timestamp": timestamp,
		}))
	}

	columns := []table.Column{
		table.NewColumn("metric", "Metric", max(longestMetric+1, 6)).WithFiltered(true),
		table.NewColumn("value", "Value", max(len(strconv.Itoa(maxValue))+1, 6)).WithFiltered(true),
		table.NewColumn("timestamp", "Timestamp", 26).WithFiltered(true),
	}
	return newModel(columns, rows)
}

func newModel(columns []table.Column, rows []table.Row) Model {
	return Model{
		table: table.
			New(columns).
			Filtered(true).
			Focused(true).
			WithFooterVisibility(true).
			WithPageSize(pageSize).
			WithRows(rows),
		filterTextInput: textinput.New(),
	}
}

// Rows is the number of rows matching the current filter.
func (m Model) Rows() int {
	return m.table.TotalRows()
}

// Table renders every matching row on one page, without the footer or the
// key help line.
func (m Model) Table() string {
	return m.table.
		WithPageSize(max(m.Rows(), 1)).
		WithFooterVisibility(false).
		View()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// global
		if msg.String() == "ctrl+c" {
			cmds = append(cmds, tea.Quit)

			return m, tea.Batch(cmds...)
		}
		// event to filter
		if m.filterTextInput.Focused() {
			if msg.String() == "enter" {
				m.filterTextInput.Blur()
			} else {
				m.filterTextInput, _ = m.filterTextInput.Update(msg)
			}
			m.table = m.table.WithFilterInput(m.filterTextInput)

			return m, tea.Batch(cmds...)
		}

		switch msg.String() {
		case "/":
			m.filterTextInput.Focus()
		case "q":
			cmds = append(cmds, tea.Quit)
			return m, tea.Batch(cmds...)
		default:
			m.table, cmd = m.table.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	body := strings.Builder{}

	body.WriteString(m.table.View())
	body.WriteString(fmt.Sprintf("\n%d rows. Press / + letters to start filtering, and q or ctrl+c to quit", m.Rows()))

	return body.String()
}
