package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"StrategyScope/internal/analysis"
	"StrategyScope/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")).
			Padding(0, 1)

	boxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3B82F6")).
			Padding(0, 1).
			Width(80)

	labelStyle = lipgloss.NewStyle().Width(24)
	valueStyle = lipgloss.NewStyle().Width(14).Align(lipgloss.Right).MarginRight(2)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	boldStyle  = lipgloss.NewStyle().Bold(true)
)

var colorHex = map[model.Color]string{
	model.ColorGreen:  "#10B981",
	model.ColorBlue:   "#3B82F6",
	model.ColorYellow: "#EAB308",
	model.ColorOrange: "#F59E0B",
	model.ColorRed:    "#EF4444",
	model.ColorGray:   "#6B7280",
}

func ratingStyle(c model.Color) lipgloss.Style {
	hex, ok := colorHex[c]
	if !ok {
		hex = colorHex[model.ColorGray]
	}
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(hex))
}

// RenderReport renders a full evaluation for the terminal.
func RenderReport(r *model.StrategyReport) string {
	var b strings.Builder

	name := r.Name
	if name == "" {
		name = r.StrategyID
	}
	header := "Strateji Raporu"
	if name != "" {
		header += " · " + name
	}
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n")

	var rows []string
	for _, res := range r.Analyses {
		a := res.Analysis
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Render(analysis.MetricLabel(res.Metric)),
			valueStyle.Render(analysis.FormatValue(res.Metric, res.Value)),
			ratingStyle(a.Color).Render(analysis.RatingLabel(a.Rating)),
		)
		rows = append(rows, row, mutedStyle.Render("  "+a.Title))
	}
	b.WriteString(boxStyle.Render(strings.Join(rows, "\n")))
	b.WriteString("\n")

	b.WriteString(boxStyle.Render(renderProfile(r.Profile)))
	b.WriteString("\n")

	overall := ratingStyle(overallColor(r.OverallRating)).Render(analysis.RatingLabel(r.OverallRating))
	b.WriteString(fmt.Sprintf("%s %s\n", boldStyle.Render("Genel Değerlendirme:"), overall))
	return b.String()
}

func renderProfile(p model.StrategyProfile) string {
	var b strings.Builder
	b.WriteString(boldStyle.Render(string(p.Profile)))
	b.WriteString(mutedStyle.Render(" (" + string(p.TradingStyle) + ")"))
	b.WriteString("\n")
	writeList(&b, "Güçlü yönler", p.Strengths)
	writeList(&b, "Zayıf yönler", p.Weaknesses)
	if p.OverallAssessment != "" {
		b.WriteString("\n" + p.OverallAssessment)
	}
	return b.String()
}

func writeList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString(boldStyle.Render(title) + "\n")
	for _, it := range items {
		b.WriteString("  • " + it + "\n")
	}
}

// RenderAnalysis renders a single metric classification.
func RenderAnalysis(metric string, value float64, a model.MetricAnalysis) string {
	t, _ := model.ParseMetricType(metric)
	var b strings.Builder
	label := metric
	formatted := fmt.Sprintf("%g", value)
	if t != "" {
		label = analysis.MetricLabel(t)
		formatted = analysis.FormatValue(t, value)
	}
	b.WriteString(fmt.Sprintf("%s  %s  %s\n",
		titleStyle.Render(label),
		formatted,
		ratingStyle(a.Color).Render(analysis.RatingLabel(a.Rating))))
	b.WriteString(boldStyle.Render(a.Title) + "\n")
	b.WriteString(a.Description + "\n")
	writeList(&b, "Etkiler", a.Implications)
	writeList(&b, "Öneriler", a.Recommendations)
	return b.String()
}

func overallColor(r model.Rating) model.Color {
	switch r {
	case model.RatingExcellent:
		return model.ColorGreen
	case model.RatingGood:
		return model.ColorBlue
	case model.RatingAverage:
		return model.ColorYellow
	case model.RatingPoor:
		return model.ColorOrange
	case model.RatingCritical:
		return model.ColorRed
	default:
		return model.ColorGray
	}
}
