package geo

import (
	"github.com/akasprzok/datastory/internal/style"
)

// ColorMapper maps values linearly onto Palette over [Low, High]. The range
// is split into len(Palette) equal bins; High falls in the last one and values
// outside the range clamp to the end colors.
type ColorMapper struct {
	Palette []style.Color
	Low     float64
	High    float64
}

// Map returns the color for v.
func (m ColorMapper) Map(v float64) style.Color {
	n := len(m.Palette)
	if n == 0 {
		return ""
	}
	if m.High <= m.Low {
		return m.Palette[0]
	}
	i := int((v - m.Low) / (m.High - m.Low) * float64(n))
	return m.Palette[max(0, min(i, n-1))]
}
