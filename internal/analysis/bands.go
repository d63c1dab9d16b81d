package analysis

import (
	"fmt"

	"StrategyScope/internal/model"
)

// cmp is the comparison a band applies between the input and its bound.
type cmp int

const (
	atLeast cmp = iota // v >= bound
	above              // v > bound
	atMost             // v <= bound
	below              // v < bound
)

func (c cmp) holds(v, bound float64) bool {
	switch c {
	case atLeast:
		return v >= bound
	case above:
		return v > bound
	case atMost:
		return v <= bound
	case below:
		return v < bound
	default:
		return false
	}
}

// content is the static text of one band. Description takes the formatted value via %s.
type content struct {
	Rating          model.Rating
	Color           model.Color
	Title           string
	Description     string
	Implications    []string
	Recommendations []string
}

func (c content) build(value string) model.MetricAnalysis {
	return model.MetricAnalysis{
		Rating:          c.Rating,
		Color:           c.Color,
		Title:           c.Title,
		Description:     fmt.Sprintf(c.Description, value),
		Implications:    append([]string{}, c.Implications...),
		Recommendations: append([]string{}, c.Recommendations...),
	}
}

type band struct {
	Op    cmp
	Bound float64
	Text  content
}

// bandTable is evaluated top-down; the first band whose comparison holds wins.
// Fallback covers everything else, NaN included.
type bandTable struct {
	Bands    []band
	Fallback content
	Format   func(float64) string
}

func (t bandTable) pick(v float64) content {
	for _, b := range t.Bands {
		if b.Op.holds(v, b.Bound) {
			return b.Text
		}
	}
	return t.Fallback
}

func (t bandTable) classify(v float64) model.MetricAnalysis {
	return t.pick(v).build(t.Format(v))
}

func formatRatio(v float64) string   { return fmt.Sprintf("%.2f", v) }
func formatPercent(v float64) string { return fmt.Sprintf("%%%.1f", v) }

// formatHours renders a duration given in hours using the most readable unit.
func formatHours(h float64) string {
	switch {
	case h < 1:
		return fmt.Sprintf("%.0f dakika", h*60)
	case h < 48:
		return fmt.Sprintf("%.1f saat", h)
	default:
		return fmt.Sprintf("%.1f gün", h/24)
	}
}
