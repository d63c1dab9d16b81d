package notifier

import (
	"fmt"
	"html"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"StrategyScope/internal/analysis"
	"StrategyScope/internal/model"
)

var upperTR = cases.Upper(language.Turkish)

var colorIcons = map[model.Color]string{
	model.ColorGreen:  "🟢",
	model.ColorBlue:   "🔵",
	model.ColorYellow: "🟡",
	model.ColorOrange: "🟠",
	model.ColorRed:    "🔴",
	model.ColorGray:   "⚪",
}

func heading(s string) string {
	return "<b>" + html.EscapeString(upperTR.String(s)) + "</b>"
}

func icon(c model.Color) string {
	if i, ok := colorIcons[c]; ok {
		return i
	}
	return colorIcons[model.ColorGray]
}

func displayName(r *model.StrategyReport) string {
	if r.Name != "" {
		return r.Name
	}
	if r.StrategyID != "" {
		return r.StrategyID
	}
	return "strateji"
}

// FormatReport formats a full strategy evaluation into a Telegram HTML message.
func FormatReport(r *model.StrategyReport) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 %s | %s\n", heading("strateji raporu"), html.EscapeString(displayName(r))))
	if !r.CreatedAt.IsZero() {
		b.WriteString(r.CreatedAt.Format("2006-01-02 15:04") + "\n")
	}
	b.WriteString("\n")

	for _, res := range r.Analyses {
		a := res.Analysis
		b.WriteString(fmt.Sprintf("%s <b>%s</b>: %s · %s\n",
			icon(a.Color),
			html.EscapeString(analysis.MetricLabel(res.Metric)),
			html.EscapeString(analysis.FormatValue(res.Metric, res.Value)),
			html.EscapeString(analysis.RatingLabel(a.Rating))))
		b.WriteString(fmt.Sprintf("   <i>%s</i>\n", html.EscapeString(a.Title)))
	}

	b.WriteString(fmt.Sprintf("\n🧭 %s: %s (%s)\n",
		heading("profil"),
		html.EscapeString(string(r.Profile.Profile)),
		html.EscapeString(string(r.Profile.TradingStyle))))
	writeList(&b, "💪", "güçlü yönler", r.Profile.Strengths)
	writeList(&b, "⚠️", "zayıf yönler", r.Profile.Weaknesses)
	if r.Profile.OverallAssessment != "" {
		b.WriteString("\n" + html.EscapeString(r.Profile.OverallAssessment) + "\n")
	}

	b.WriteString(fmt.Sprintf("\n%s: %s\n", heading("genel değerlendirme"), html.EscapeString(analysis.RatingLabel(r.OverallRating))))
	if r.OverallRating == model.RatingCritical {
		b.WriteString("🚨 En az bir metrik kritik seviyede, canlıya almadan önce gözden geçirin.\n")
	}
	return b.String()
}

func writeList(b *strings.Builder, emoji, title string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString(fmt.Sprintf("%s %s:\n", emoji, heading(title)))
	for _, it := range items {
		b.WriteString("  • " + html.EscapeString(it) + "\n")
	}
}

// FormatProfileChange reports an archetype transition between two evaluations of one strategy.
func FormatProfileChange(prev, cur *model.StrategyReport) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🔄 %s | %s\n\n", heading("profil değişti"), html.EscapeString(displayName(cur))))
	b.WriteString(fmt.Sprintf("%s → <b>%s</b>\n",
		html.EscapeString(string(prev.Profile.Profile)),
		html.EscapeString(string(cur.Profile.Profile))))
	b.WriteString(fmt.Sprintf("Genel: %s → %s\n",
		html.EscapeString(analysis.RatingLabel(prev.OverallRating)),
		html.EscapeString(analysis.RatingLabel(cur.OverallRating))))

	for _, res := range cur.Analyses {
		old, ok := prev.Analysis(res.Metric)
		if !ok || old.Rating == res.Analysis.Rating {
			continue
		}
		arrow := "⬆️"
		if res.Analysis.Rating.Rank() < old.Rating.Rank() {
			arrow = "⬇️"
		}
		b.WriteString(fmt.Sprintf("%s %s: %s → %s\n", arrow,
			html.EscapeString(analysis.MetricLabel(res.Metric)),
			html.EscapeString(analysis.RatingLabel(old.Rating)),
			html.EscapeString(analysis.RatingLabel(res.Analysis.Rating))))
	}
	return b.String()
}
