package analysis

import (
	"math"

	"StrategyScope/internal/model"
)

var sharpeBands = bandTable{
	Format: formatRatio,
	Bands: []band{
		{atLeast, 3.0, content{
			Rating:      model.RatingExcellent,
			Color:       model.ColorGreen,
			Title:       "Mükemmel Risk-Getiri Oranı",
			Description: "%s Sharpe oranı, stratejinin aldığı her birim risk için olağanüstü yüksek getiri sağladığını gösteriyor.",
			Implications: []string{
				"Getiriler volatiliteye göre son derece istikrarlı",
				"Profesyonel fon standartlarının çok üzerinde bir performans",
				"Bu seviye nadirdir; aşırı optimizasyon ihtimali kontrol edilmeli",
			},
			Recommendations: []string{
				"Sonuçları farklı piyasa koşullarında ve örnek dışı verilerle doğrulayın",
				"Canlı işlemlere küçük pozisyonlarla başlayın",
				"Performansı düzenli olarak izleyin",
			},
		}},
		{atLeast, 2.0, content{
			Rating:      model.RatingExcellent,
			Color:       model.ColorGreen,
			Title:       "Çok İyi Risk-Getiri Oranı",
			Description: "%s Sharpe oranı, hedge fon seviyesinde risk ayarlı getiriye işaret ediyor.",
			Implications: []string{
				"Risk başına getiri kurumsal standartlarda",
				"Strateji tutarlı şekilde pozitif getiri üretiyor",
				"Volatilite kontrol altında",
			},
			Recommendations: []string{
				"Mevcut risk yönetimi kurallarını koruyun",
				"Pozisyon büyüklüğünü kademeli artırmayı değerlendirin",
				"Farklı enstrümanlarda test edin",
			},
		}},
		{atLeast, 1.5, content{
			Rating:      model.RatingGood,
			Color:       model.ColorBlue,
			Title:       "İyi Risk-Getiri Oranı",
			Description: "%s Sharpe oranı, alınan riske göre tatmin edici bir getiri sağlandığını gösteriyor.",
			Implications: []string{
				"Strateji piyasa ortalamasının üzerinde performans gösteriyor",
				"Getiriler makul düzeyde istikrarlı",
				"İyileştirme için hâlâ alan var",
			},
			Recommendations: []string{
				"Zararı durdur seviyelerini optimize ederek volatiliteyi azaltın",
				"Kaybeden işlemlerin ortak özelliklerini inceleyin",
				"Giriş filtrelerini sıkılaştırmayı deneyin",
			},
		}},
		{atLeast, 1.0, content{
			Rating:      model.RatingAverage,
			Color:       model.ColorYellow,
			Title:       "Ortalama Risk-Getiri Oranı",
			Description: "%s Sharpe oranı, getirinin alınan riski ancak karşıladığını gösteriyor.",
			Implications: []string{
				"Getiriler volatiliteye göre sınırlı",
				"Piyasa koşulları değiştiğinde performans kolayca bozulabilir",
				"Pasif yatırım alternatiflerine göre belirgin bir üstünlük yok",
			},
			Recommendations: []string{
				"Risk yönetimi kurallarını gözden geçirin",
				"İşlem sayısını azaltıp kaliteli kurulumlara odaklanın",
				"Farklı zaman dilimlerinde test edin",
			},
		}},
		{atLeast, 0.5, content{
			Rating:      model.RatingPoor,
			Color:       model.ColorOrange,
			Title:       "Zayıf Risk-Getiri Oranı",
			Description: "%s Sharpe oranı, alınan riskin getiriyle yeterince ödüllendirilmediğini gösteriyor.",
			Implications: []string{
				"Getiriler yüksek volatiliteyle birlikte geliyor",
				"Uzun süreli düşüş dönemleri yaşanabilir",
				"Strateji risksiz getiriyi zar zor geçiyor",
			},
			Recommendations: []string{
				"Strateji mantığını temelden gözden geçirin",
				"Pozisyon büyüklüğünü küçültün",
				"Canlı hesapta kullanmadan önce iyileştirin",
			},
		}},
	},
	Fallback: content{
		Rating:      model.RatingCritical,
		Color:       model.ColorRed,
		Title:       "Kritik Risk-Getiri Oranı",
		Description: "%s Sharpe oranı, stratejinin aldığı riske değecek bir getiri üretmediğini gösteriyor.",
		Implications: []string{
			"Risk, getiriden çok daha yüksek",
			"Strateji sermayeyi korumakta başarısız olabilir",
			"Negatif değerler risksiz getirinin bile altında kalındığını gösterir",
		},
		Recommendations: []string{
			"Stratejiyi canlı hesapta kullanmayın",
			"Giriş ve çıkış kurallarını yeniden tasarlayın",
			"Farklı bir yaklaşım değerlendirin",
		},
	},
}

var winRateBands = bandTable{
	Format: formatPercent,
	Bands: []band{
		{atLeast, 70, content{
			Rating:      model.RatingExcellent,
			Color:       model.ColorGreen,
			Title:       "Mükemmel Kazanma Oranı",
			Description: "%s kazanma oranı ile işlemlerin büyük çoğunluğu kârla kapanıyor.",
			Implications: []string{
				"İşlemlerin büyük çoğunluğu kârla sonuçlanıyor",
				"Psikolojik olarak takip etmesi kolay bir strateji",
				"Yüksek kazanma oranı, ortalama kazancın küçük olmasıyla birlikte gelebilir",
			},
			Recommendations: []string{
				"Ortalama kazanç/kayıp oranını da kontrol edin",
				"Büyük kayıpları sınırlayan zararı durdur kuralları kullanın",
				"Tutarlılığı korumak için kuralların dışına çıkmayın",
			},
		}},
		{atLeast, 60, content{
			Rating:      model.RatingGood,
			Color:       model.ColorBlue,
			Title:       "İyi Kazanma Oranı",
			Description: "%s kazanma oranı, stratejinin istikrarlı şekilde kârlı işlemler ürettiğini gösteriyor.",
			Implications: []string{
				"Kazanan işlemler kaybedenlerden belirgin şekilde fazla",
				"Ardışık kayıp serileri nispeten kısa olur",
				"Sağlam bir istatistiksel avantaj var",
			},
			Recommendations: []string{
				"Kâr hedeflerini genişletmeyi test edin",
				"Kazanma oranını düşürmeden risk/ödül oranını iyileştirin",
				"Performansı farklı piyasa rejimlerinde izleyin",
			},
		}},
		{atLeast, 50, content{
			Rating:      model.RatingAverage,
			Color:       model.ColorYellow,
			Title:       "Ortalama Kazanma Oranı",
			Description: "%s kazanma oranı, işlemlerin yaklaşık yarısının kârla kapandığını gösteriyor.",
			Implications: []string{
				"Kârlılık büyük ölçüde risk/ödül oranına bağlı",
				"Ardışık kayıp serileri yaşanabilir",
				"Küçük değişiklikler sonucu önemli ölçüde etkileyebilir",
			},
			Recommendations: []string{
				"Ortalama kazancın ortalama kayıptan büyük olduğundan emin olun",
				"Giriş sinyallerini ek filtrelerle güçlendirin",
				"Düşük olasılıklı kurulumları eleyin",
			},
		}},
		{atLeast, 40, content{
			Rating:      model.RatingPoor,
			Color:       model.ColorOrange,
			Title:       "Düşük Kazanma Oranı",
			Description: "%s kazanma oranı ile işlemlerin çoğu zararla kapanıyor.",
			Implications: []string{
				"Strateji ancak yüksek risk/ödül oranıyla kârlı olabilir",
				"Uzun kayıp serileri psikolojik baskı yaratır",
				"Disiplini korumak zorlaşır",
			},
			Recommendations: []string{
				"Risk/ödül oranının en az 1:2 olduğundan emin olun",
				"Giriş zamanlamasını iyileştirin",
				"Kayıp serilerine karşı pozisyon büyüklüğünü küçültün",
			},
		}},
	},
	Fallback: content{
		Rating:      model.RatingCritical,
		Color:       model.ColorRed,
		Title:       "Kritik Kazanma Oranı",
		Description: "%s kazanma oranı, işlemlerin büyük çoğunluğunun zararla sonuçlandığını gösteriyor.",
		Implications: []string{
			"Çok uzun kayıp serileri kaçınılmaz",
			"Kârlılık için olağanüstü yüksek risk/ödül oranı gerekir",
			"Stratejinin giriş mantığı sorgulanmalı",
		},
		Recommendations: []string{
			"Giriş kriterlerini temelden gözden geçirin",
			"Stratejiyi canlı hesapta kullanmadan önce yeniden test edin",
			"Trend yönünde işlem filtresi eklemeyi düşünün",
		},
	},
}

// Drawdown bands are upper bounds on the magnitude, smallest first.
var drawdownBands = bandTable{
	Format: formatPercent,
	Bands: []band{
		{atMost, 5, content{
			Rating:      model.RatingExcellent,
			Color:       model.ColorGreen,
			Title:       "Mükemmel Sermaye Koruma",
			Description: "%s maksimum düşüş, sermayenin çok iyi korunduğunu gösteriyor.",
			Implications: []string{
				"Hesap değeri zirveden çok az geriledi",
				"Risk yönetimi son derece etkili",
				"Psikolojik baskı minimum düzeyde",
			},
			Recommendations: []string{
				"Mevcut risk kurallarını koruyun",
				"Getiriyi artırmak için pozisyon büyüklüğünü kontrollü artırabilirsiniz",
				"Düşük düşüşün yeterli sayıda işlemle doğrulandığından emin olun",
			},
		}},
		{atMost, 10, content{
			Rating:      model.RatingGood,
			Color:       model.ColorBlue,
			Title:       "İyi Sermaye Koruma",
			Description: "%s maksimum düşüş, kabul edilebilir ve kontrollü bir risk seviyesine işaret ediyor.",
			Implications: []string{
				"Kayıp dönemleri sınırlı kalıyor",
				"Toparlanma için gereken getiri makul",
				"Çoğu yatırımcı için tolere edilebilir seviye",
			},
			Recommendations: []string{
				"Düşüş dönemlerinin süresini de takip edin",
				"Korelasyonlu pozisyonları sınırlayın",
				"Risk kurallarını tutarlı uygulayın",
			},
		}},
		{atMost, 20, content{
			Rating:      model.RatingAverage,
			Color:       model.ColorYellow,
			Title:       "Orta Düzey Düşüş",
			Description: "%s maksimum düşüş, dikkat gerektiren bir risk seviyesine işaret ediyor.",
			Implications: []string{
				"Toparlanmak için belirgin bir getiri gerekir",
				"Düşüş dönemlerinde stratejiye bağlı kalmak zorlaşabilir",
				"Kaldıraç kullanımında risk hızla büyür",
			},
			Recommendations: []string{
				"İşlem başına riski azaltın",
				"Maksimum günlük ve haftalık zarar limiti belirleyin",
				"Zararı durdur seviyelerini gözden geçirin",
			},
		}},
		{atMost, 30, content{
			Rating:      model.RatingPoor,
			Color:       model.ColorOrange,
			Title:       "Yüksek Düşüş",
			Description: "%s maksimum düşüş, sermayenin ciddi bir bölümünün riske girdiğini gösteriyor.",
			Implications: []string{
				"Toparlanma uzun sürebilir",
				"Yatırımcı psikolojisi üzerinde ağır baskı oluşur",
				"Kötü bir dönemde hesap kritik seviyelere inebilir",
			},
			Recommendations: []string{
				"Pozisyon büyüklüğünü önemli ölçüde küçültün",
				"Sermaye koruma kuralları ekleyin",
				"Stratejiyi yüksek volatilite dönemlerinde durdurmayı düşünün",
			},
		}},
	},
	Fallback: content{
		Rating:      model.RatingCritical,
		Color:       model.ColorRed,
		Title:       "Kritik Düşüş",
		Description: "%s maksimum düşüş, kabul edilemez bir sermaye kaybı riskine işaret ediyor.",
		Implications: []string{
			"Başa dönmek için çok yüksek getiri gerekir",
			"Hesabın tamamen kaybedilme riski ciddi",
			"Risk yönetimi yetersiz",
		},
		Recommendations: []string{
			"Stratejiyi canlı hesapta kullanmayın",
			"Risk yönetimini baştan tasarlayın",
			"Kaldıracı azaltın veya tamamen kaldırın",
		},
	},
}

var profitFactorBands = bandTable{
	Format: formatRatio,
	Bands: []band{
		{atLeast, 3.0, content{
			Rating:      model.RatingExcellent,
			Color:       model.ColorGreen,
			Title:       "Mükemmel Kâr Faktörü",
			Description: "%s kâr faktörü, brüt kârın brüt zararın üç katını aştığını gösteriyor.",
			Implications: []string{
				"Strateji çok güçlü bir avantaja sahip",
				"Kayıplar kazançlarla kolayca telafi ediliyor",
				"Bu seviye aşırı optimizasyon belirtisi de olabilir",
			},
			Recommendations: []string{
				"Örnek dışı verilerle doğrulayın",
				"İşlem sayısının istatistiksel olarak yeterli olduğundan emin olun",
				"Mevcut kuralları koruyun",
			},
		}},
		{atLeast, 2.0, content{
			Rating:      model.RatingGood,
			Color:       model.ColorBlue,
			Title:       "İyi Kâr Faktörü",
			Description: "%s kâr faktörü, her birim zarara karşı iki birimden fazla kâr elde edildiğini gösteriyor.",
			Implications: []string{
				"Sağlam ve sürdürülebilir bir kârlılık",
				"İşlem maliyetlerine karşı yeterli tampon var",
				"Strateji piyasa dalgalanmalarına dayanıklı",
			},
			Recommendations: []string{
				"Kâr hedeflerini optimize etmeyi değerlendirin",
				"Pozisyon büyüklüğünü kademeli artırabilirsiniz",
				"Performansı düzenli izleyin",
			},
		}},
		{atLeast, 1.5, content{
			Rating:      model.RatingAverage,
			Color:       model.ColorYellow,
			Title:       "Ortalama Kâr Faktörü",
			Description: "%s kâr faktörü, stratejinin kârlı ama sınırlı bir avantaja sahip olduğunu gösteriyor.",
			Implications: []string{
				"Komisyon ve kayma kârlılığı belirgin şekilde azaltabilir",
				"Kötü dönemlerde strateji başa baş noktasına yaklaşabilir",
				"İyileştirme potansiyeli var",
			},
			Recommendations: []string{
				"İşlem maliyetlerini hesaba katarak yeniden test edin",
				"Kaybeden işlemleri erken kesmeyi deneyin",
				"Kazanan işlemleri daha uzun taşıyın",
			},
		}},
		{atLeast, 1.2, content{
			Rating:      model.RatingPoor,
			Color:       model.ColorOrange,
			Title:       "Zayıf Kâr Faktörü",
			Description: "%s kâr faktörü, kazançların kayıpları ancak karşıladığını gösteriyor.",
			Implications: []string{
				"Gerçek işlem maliyetleriyle strateji zarara geçebilir",
				"Avantaj çok ince",
				"Küçük performans düşüşleri bile sonucu değiştirir",
			},
			Recommendations: []string{
				"Giriş ve çıkış kurallarını iyileştirin",
				"Düşük kaliteli işlemleri filtreleyin",
				"Risk/ödül oranını artırın",
			},
		}},
	},
	Fallback: content{
		Rating:      model.RatingCritical,
		Color:       model.ColorRed,
		Title:       "Kritik Kâr Faktörü",
		Description: "%s kâr faktörü ile sistem pratikte zarar eden bir sistem olarak değerlendirilmeli.",
		Implications: []string{
			"Maliyetlerden sonra strateji büyük olasılıkla zarar ediyor",
			"1'in altındaki değerler kayıpların kazançları aştığını gösterir",
			"Mevcut haliyle sürdürülebilir değil",
		},
		Recommendations: []string{
			"Stratejiyi canlı hesapta kullanmayın",
			"Strateji mantığını temelden yeniden değerlendirin",
			"Farklı piyasa veya zaman dilimlerinde test edin",
		},
	},
}

// Trade duration is not a "higher is better" metric: the 2-8h band is the optimum
// and both shorter and longer holding times rate lower.
var durationBands = bandTable{
	Format: formatHours,
	Bands: []band{
		{below, 0.5, content{
			Rating:      model.RatingAverage,
			Color:       model.ColorYellow,
			Title:       "Scalping Süresi",
			Description: "Ortalama %s işlem süresi, çok kısa vadeli (scalping) bir yaklaşıma işaret ediyor.",
			Implications: []string{
				"İşlem maliyetleri kârlılığı ciddi şekilde etkiler",
				"Hızlı karar verme ve sürekli takip gerektirir",
				"Piyasa gürültüsüne karşı hassastır",
			},
			Recommendations: []string{
				"Düşük spread'li aracı kurum ve enstrümanlar tercih edin",
				"Maliyetleri dahil ederek yeniden test edin",
				"Otomasyon kullanmayı değerlendirin",
			},
		}},
		{below, 2, content{
			Rating:      model.RatingGood,
			Color:       model.ColorBlue,
			Title:       "Kısa Vadeli İşlem Süresi",
			Description: "Ortalama %s işlem süresi, gün içi hızlı fırsatları değerlendiren bir yapı gösteriyor.",
			Implications: []string{
				"Gecelik pozisyon riski yok",
				"İşlem maliyetleri hâlâ önemli bir faktör",
				"Gün içi volatiliteden faydalanıyor",
			},
			Recommendations: []string{
				"Yoğun işlem saatlerine odaklanın",
				"Haber saatlerinde dikkatli olun",
				"Maliyet/kâr oranını takip edin",
			},
		}},
		{below, 8, content{
			Rating:      model.RatingExcellent,
			Color:       model.ColorGreen,
			Title:       "İdeal İşlem Süresi",
			Description: "Ortalama %s işlem süresi, maliyet ile fırsat arasında ideal bir denge sunuyor.",
			Implications: []string{
				"İşlem maliyetlerinin kâra etkisi sınırlı",
				"Hareketlerin gelişmesine yeterli zaman tanınıyor",
				"Gecelik risk genellikle alınmıyor",
			},
			Recommendations: []string{
				"Mevcut zamanlamayı koruyun",
				"Çıkış kurallarını hareket büyüklüğüne göre ince ayarlayın",
				"Seans geçişlerindeki volatiliteyi izleyin",
			},
		}},
		{below, 24, content{
			Rating:      model.RatingGood,
			Color:       model.ColorBlue,
			Title:       "Gün İçi / Kısa Swing Süresi",
			Description: "Ortalama %s işlem süresi, gün içinden birkaç güne uzanan bir yaklaşım gösteriyor.",
			Implications: []string{
				"Pozisyonlar zaman zaman gece taşınabilir",
				"Daha büyük fiyat hareketleri yakalanabilir",
				"Açılış boşluklarına maruz kalınabilir",
			},
			Recommendations: []string{
				"Gecelik pozisyonlar için risk limitleri belirleyin",
				"Swap ve finansman maliyetlerini hesaba katın",
				"Önemli haber takvimini takip edin",
			},
		}},
	},
	Fallback: content{
		Rating:      model.RatingAverage,
		Color:       model.ColorYellow,
		Title:       "Uzun Vadeli İşlem Süresi",
		Description: "Ortalama %s işlem süresi, pozisyonların günlerce taşındığını gösteriyor.",
		Implications: []string{
			"Gecelik ve hafta sonu riskleri artar",
			"Sermaye uzun süre bağlı kalır",
			"Daha az işlem fırsatı değerlendirilir",
		},
		Recommendations: []string{
			"Swap maliyetlerini ve gap riskini hesaba katın",
			"Daha geniş zararı durdur seviyeleriyle pozisyonu küçültün",
			"Temel analiz faktörlerini de izleyin",
		},
	},
}

var kellyBands = bandTable{
	Format: formatPercent,
	Bands: []band{
		{atLeast, 20, content{
			Rating:      model.RatingExcellent,
			Color:       model.ColorGreen,
			Title:       "Güçlü İstatistiksel Avantaj",
			Description: "%s Kelly oranı, stratejinin çok güçlü bir matematiksel avantaja sahip olduğunu gösteriyor.",
			Implications: []string{
				"Beklenen değer belirgin şekilde pozitif",
				"Teorik optimal pozisyon büyüklüğü yüksek",
				"Tam Kelly ile işlem yapmak yüksek volatilite yaratır",
			},
			Recommendations: []string{
				"Tam Kelly yerine yarım veya çeyrek Kelly kullanın",
				"Avantajın kalıcılığını örnek dışı verilerle doğrulayın",
				"İşlem başına riski yine de sınırlayın",
			},
		}},
		{atLeast, 10, content{
			Rating:      model.RatingGood,
			Color:       model.ColorBlue,
			Title:       "İyi İstatistiksel Avantaj",
			Description: "%s Kelly oranı, stratejinin sağlam bir avantaja sahip olduğunu gösteriyor.",
			Implications: []string{
				"Pozitif beklenen değer mevcut",
				"Makul pozisyon büyüklükleriyle büyüme sağlanabilir",
				"Avantaj, maliyetlere karşı yeterli tampon sunuyor",
			},
			Recommendations: []string{
				"Kesirli Kelly ile pozisyon belirleyin",
				"Avantajdaki değişimleri düzenli izleyin",
				"Risk limitlerini koruyun",
			},
		}},
		{atLeast, 5, content{
			Rating:      model.RatingAverage,
			Color:       model.ColorYellow,
			Title:       "Orta Düzey Avantaj",
			Description: "%s Kelly oranı, stratejinin mütevazı bir avantaja sahip olduğunu gösteriyor.",
			Implications: []string{
				"Beklenen değer pozitif ama sınırlı",
				"Maliyetler avantajın önemli kısmını tüketebilir",
				"Büyük pozisyonlar riski orantısız artırır",
			},
			Recommendations: []string{
				"Küçük pozisyon büyüklükleri kullanın",
				"Maliyetleri düşürmenin yollarını arayın",
				"Avantajı artıracak filtreler ekleyin",
			},
		}},
		{above, 0, content{
			Rating:      model.RatingPoor,
			Color:       model.ColorOrange,
			Title:       "Zayıf Avantaj",
			Description: "%s Kelly oranı, avantajın çok zayıf olduğunu gösteriyor.",
			Implications: []string{
				"Beklenen değer sıfıra yakın",
				"Küçük sapmalar stratejiyi zarara geçirebilir",
				"Önerilen pozisyon büyüklüğü çok küçük",
			},
			Recommendations: []string{
				"Pozisyon büyüklüğünü minimumda tutun",
				"Stratejinin avantajını artırmaya odaklanın",
				"Daha fazla veriyle yeniden test edin",
			},
		}},
	},
	Fallback: content{
		Rating:      model.RatingCritical,
		Color:       model.ColorRed,
		Title:       "Avantaj Yok",
		Description: "%s Kelly oranı, stratejinin istatistiksel bir avantajı olmadığını gösteriyor.",
		Implications: []string{
			"Beklenen değer sıfır veya negatif",
			"Kelly kriterine göre bu stratejiyle işlem yapılmamalı",
			"Uzun vadede sermaye kaybı beklenir",
		},
		Recommendations: []string{
			"Bu stratejiyle işlem yapmayın",
			"Kazanma oranı ve risk/ödül oranını birlikte iyileştirin",
			"Stratejiyi yeniden tasarlayın",
		},
	},
}

// AnalyzeSharpeRatio rates a Sharpe ratio.
func AnalyzeSharpeRatio(v float64) model.MetricAnalysis { return sharpeBands.classify(v) }

// AnalyzeWinRate rates a win rate given in percent (0-100).
func AnalyzeWinRate(v float64) model.MetricAnalysis { return winRateBands.classify(v) }

// AnalyzeMaxDrawdown rates the magnitude of a drawdown; the sign of v is ignored.
func AnalyzeMaxDrawdown(v float64) model.MetricAnalysis {
	return drawdownBands.classify(math.Abs(v))
}

// AnalyzeProfitFactor rates gross profit / gross loss.
func AnalyzeProfitFactor(v float64) model.MetricAnalysis { return profitFactorBands.classify(v) }

// AnalyzeTradeDuration rates an average holding time given in hours.
func AnalyzeTradeDuration(v float64) model.MetricAnalysis { return durationBands.classify(v) }

// AnalyzeKellyPercentage rates a Kelly fraction given in percent.
func AnalyzeKellyPercentage(v float64) model.MetricAnalysis { return kellyBands.classify(v) }
