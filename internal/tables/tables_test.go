package tables

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/common/model"

	"github.com/akasprzok/datastory/internal/style"
)

func TestSamples(t *testing.T) {
	t.Run("empty vector returns model with 0 rows", func(t *testing.T) {
		m := Samples(model.Vector{})

		if m.Rows() != 0 {
			t.Errorf("Rows() = %d, want 0", m.Rows())
		}
		if len(m.View()) == 0 {
			t.Error("View() returned empty string")
		}
	})

	t.Run("multiple samples with varying values", func(t *testing.T) {
		now := model.Now()
		vector := model.Vector{
			&model.Sample{
				Metric:    model.Metric{"__name__": "metric_a", "job": "test"},
				Value:     100,
				Timestamp: now,
			},
			&model.Sample{
				Metric:    model.Metric{"__name__": "metric_b", "job": "test"},
				Value:     999999.99,
				Timestamp: now,
			},
		}

		m := Samples(vector)
		if m.Rows() != 2 {
			t.Errorf("Rows() = %d, want 2", m.Rows())
		}
		if !strings.Contains(m.Table(), "metric_a") {
			t.Error("Table() should contain metric_a")
		}
	})

	t.Run("handles long metric names", func(t *testing.T) {
		longName := "this_is_a_very_long_metric_name_that_should_affect_column_width_calculation"
		vector := model.Vector{
			&model.Sample{
				Metric:    model.Metric{"__name__": model.LabelValue(longName)},
				Value:     1.0,
				Timestamp: model.Now(),
			},
		}

		m := Samples(vector)
		if !strings.Contains(m.Table(), longName) {
			t.Error("Table() should contain the full metric name")
		}
	})
}

func TestPalette(t *testing.T) {
	cfg := style.Default()
	m := Palette(cfg)

	want := len(cfg.Colors.Roles()) + len(cfg.Categorical) + style.DefaultSequentialSize + style.DefaultDivergingSize
	if m.Rows() != want {
		t.Errorf("Rows() = %d, want %d", m.Rows(), want)
	}

	view := m.Table()
	for _, s := range []string{"Palette", "primary", "#2E86AB", "categorical"} {
		if !strings.Contains(view, s) {
			t.Errorf("Table() missing %q", s)
		}
	}
}

func TestModelInit(t *testing.T) {
	m := Samples(model.Vector{})

	if cmd := m.Init(); cmd != nil {
		t.Error("Init() should return nil")
	}
}

func TestModelQuit(t *testing.T) {
	m := Palette(style.Default())

	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyRunes, Runes: []rune("q")},
	} {
		_, cmd := m.Update(key)
		if cmd == nil {
			t.Fatalf("Update(%q) returned nil cmd", key.String())
		}
		if !quits(cmd()) {
			t.Errorf("Update(%q) should quit", key.String())
		}
	}
}

func TestModelFilter(t *testing.T) {
	var m tea.Model = Palette(style.Default())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	for _, r := range "diverging" {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	view := m.(Model).Table()
	if !strings.Contains(view, "diverging") {
		t.Error("filtered table should keep diverging rows")
	}
	if strings.Contains(view, "sequential") {
		t.Error("filtered table should drop sequential rows")
	}
}

func quits(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case tea.QuitMsg:
		return true
	case tea.BatchMsg:
		for _, cmd := range msg {
			if cmd != nil && quits(cmd()) {
				return true
			}
		}
	}
	return false
}
