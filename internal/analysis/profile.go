package analysis

import (
	"fmt"
	"math"

	"StrategyScope/internal/model"
)

// tradingStyles maps average holding time (hours) to a style. These cut-offs are
// independent of the duration rating bands.
var tradingStyles = []struct {
	Below float64
	Style model.TradingStyle
}{
	{1, model.StyleScalping},
	{4, model.StyleDayTrading},
	{24, model.StyleSwingTrading},
}

func tradingStyle(hours float64) model.TradingStyle {
	for _, s := range tradingStyles {
		if hours < s.Below {
			return s.Style
		}
	}
	return model.StylePositionTrading
}

type profileContent struct {
	Strengths  []string
	Weaknesses []string
	Assessment string // %s receives the trading style
}

// profileRules is a first-match cascade. The conditions overlap, so the order is
// part of the behavior: e.g. a 72% win rate with PF 1.3 and a 35% drawdown is a
// grinder, not a gambler.
var profileRules = []struct {
	Name  model.ProfileName
	Match func(m *model.StrategyMetrics) bool
}{
	{model.ProfileElitePerformer, func(m *model.StrategyMetrics) bool {
		return m.WinRate > 65 && m.ProfitFactor > 2 && m.SharpeRatio > 2
	}},
	{model.ProfileSolidPerformer, func(m *model.StrategyMetrics) bool {
		return m.WinRate > 55 && m.ProfitFactor > 1.5 && math.Abs(m.MaxDrawdown) < 20
	}},
	{model.ProfileHighRRSpecialist, func(m *model.StrategyMetrics) bool {
		return m.WinRate < 45 && m.ProfitFactor > 2
	}},
	{model.ProfileHighFrequencyGrinder, func(m *model.StrategyMetrics) bool {
		return m.WinRate > 70 && m.ProfitFactor < 1.5
	}},
	{model.ProfileHighRiskGambler, func(m *model.StrategyMetrics) bool {
		return math.Abs(m.MaxDrawdown) > 30
	}},
}

var profiles = map[model.ProfileName]profileContent{
	model.ProfileElitePerformer: {
		Strengths: []string{
			"Yüksek kazanma oranı",
			"Güçlü kâr faktörü",
			"Mükemmel risk ayarlı getiri",
			"Tutarlı performans",
		},
		Weaknesses: []string{
			"Aşırı optimizasyon riski",
			"Piyasa rejimi değişikliklerine karşı hassasiyet olabilir",
			"Bu kadar yüksek performansın sürdürülmesi zor olabilir",
		},
		Assessment: "%s tarzındaki bu strateji tüm temel metriklerde üst düzey performans sergiliyor. " +
			"Yüksek kazanma oranı, güçlü kâr faktörü ve mükemmel Sharpe oranının birleşimi nadir görülen bir avantaja işaret ediyor. " +
			"Sonuçların örnek dışı verilerle doğrulanması ve canlı işlemlere kontrollü geçilmesi önerilir.",
	},
	model.ProfileSolidPerformer: {
		Strengths: []string{
			"İstikrarlı kazanma oranı",
			"Sağlıklı kâr faktörü",
			"Kontrollü düşüş",
			"Sürdürülebilir risk profili",
		},
		Weaknesses: []string{
			"Getiri potansiyeli elit stratejilere göre sınırlı",
			"Risk ayarlı getiri iyileştirilebilir",
			"Yüksek volatilite dönemlerinde performans düşebilir",
		},
		Assessment: "%s tarzındaki bu strateji dengeli ve güvenilir bir performans sunuyor. " +
			"Kazanma oranı ve kâr faktörü sağlıklı seviyelerde, düşüş ise kontrol altında. " +
			"Risk yönetimi korunarak pozisyon büyüklüğü kademeli artırılabilir.",
	},
	model.ProfileHighRRSpecialist: {
		Strengths: []string{
			"Yüksek risk/ödül oranı",
			"Kazanan işlemler kayıpları fazlasıyla telafi ediyor",
			"Trend hareketlerinden güçlü şekilde faydalanıyor",
		},
		Weaknesses: []string{
			"Düşük kazanma oranı",
			"Uzun kayıp serileri",
			"Psikolojik olarak takip etmesi zor",
			"Disiplin eksikliği sonuçları hızla bozar",
		},
		Assessment: "%s tarzındaki bu strateji az sayıda büyük kazançla kâr eden bir yapıya sahip. " +
			"İşlemlerin çoğu zararla kapansa da kazanan işlemlerin büyüklüğü sistemi kârlı kılıyor. " +
			"Kayıp serilerine dayanacak sermaye ve disiplin planı şart.",
	},
	model.ProfileHighFrequencyGrinder: {
		Strengths: []string{
			"Çok yüksek kazanma oranı",
			"Sık ve küçük kazançlar",
			"Psikolojik olarak rahat bir işlem deneyimi",
		},
		Weaknesses: []string{
			"Düşük kâr faktörü",
			"Tek bir büyük kayıp birçok kazancı silebilir",
			"İşlem maliyetlerine karşı çok hassas",
			"Risk/ödül oranı zayıf",
		},
		Assessment: "%s tarzındaki bu strateji çok sayıda küçük kazançla ilerliyor ancak kayıpların büyüklüğü kârlılığı sınırlıyor. " +
			"Kazanma oranı yüksek görünse de avantaj ince. " +
			"Ortalama kaybı küçültmek ve maliyetleri düşürmek öncelikli olmalı.",
	},
	model.ProfileHighRiskGambler: {
		Strengths: []string{
			"Yüksek getiri potansiyeli",
			"Büyük fiyat hareketlerini yakalayabilir",
			"Agresif piyasa koşullarında hızlı büyüme",
		},
		Weaknesses: []string{
			"Çok yüksek maksimum düşüş",
			"Sermaye kaybı riski ciddi",
			"Risk yönetimi yetersiz",
			"Sürdürülebilirlik şüpheli",
		},
		Assessment: "%s tarzındaki bu strateji kabul edilemez düzeyde risk alıyor. " +
			"Yüksek maksimum düşüş, kötü bir dönemde hesabın ciddi zarar görebileceğini gösteriyor. " +
			"Canlı kullanımdan önce pozisyon büyüklüğü ve zararı durdur kuralları yeniden tasarlanmalı.",
	},
	model.ProfileDevelopingStrategy: {
		Strengths: []string{
			"Geliştirmeye açık bir temel",
			"Belirli piyasa koşullarında potansiyel",
			"Optimizasyon için veri sağlıyor",
		},
		Weaknesses: []string{
			"Net bir istatistiksel avantaj yok",
			"Metrikler tutarsız",
			"Risk/getiri dengesi iyileştirilmeli",
		},
		Assessment: "%s tarzındaki bu strateji henüz belirgin bir profile sahip değil. " +
			"Bazı metrikler umut verici olsa da genel tablo tutarlı bir avantaj ortaya koymuyor. " +
			"Giriş ve çıkış kuralları ile risk yönetimi üzerinde çalışılarak daha fazla test yapılması önerilir.",
	},
}

func matchProfile(m *model.StrategyMetrics) model.ProfileName {
	for _, r := range profileRules {
		if r.Match(m) {
			return r.Name
		}
	}
	return model.ProfileDevelopingStrategy
}

// AnalyzeStrategyProfile assigns an archetype and a trading style. The two are
// computed independently: duration only ever affects the style.
func AnalyzeStrategyProfile(m model.StrategyMetrics) model.StrategyProfile {
	style := tradingStyle(m.AvgTradeDuration)
	name := matchProfile(&m)
	c := profiles[name]
	return model.StrategyProfile{
		Profile:           name,
		Strengths:         append([]string{}, c.Strengths...),
		Weaknesses:        append([]string{}, c.Weaknesses...),
		OverallAssessment: fmt.Sprintf(c.Assessment, style),
		TradingStyle:      style,
	}
}
