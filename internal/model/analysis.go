package model

// Rating is the quality band assigned to a metric.
type Rating string

const (
	RatingExcellent Rating = "excellent"
	RatingGood      Rating = "good"
	RatingAverage   Rating = "average"
	RatingPoor      Rating = "poor"
	RatingCritical  Rating = "critical"
)

// Rank orders ratings from critical (0) to excellent (4). Unknown ratings rank -1.
func (r Rating) Rank() int {
	switch r {
	case RatingCritical:
		return 0
	case RatingPoor:
		return 1
	case RatingAverage:
		return 2
	case RatingGood:
		return 3
	case RatingExcellent:
		return 4
	default:
		return -1
	}
}

func (r Rating) Valid() bool { return r.Rank() >= 0 }

// Color is a presentation hint for the UI layer.
type Color string

const (
	ColorGreen  Color = "green"
	ColorBlue   Color = "blue"
	ColorYellow Color = "yellow"
	ColorOrange Color = "orange"
	ColorRed    Color = "red"
	ColorGray   Color = "gray"
)

// MetricAnalysis is the assessment of a single metric value.
type MetricAnalysis struct {
	Rating          Rating   `json:"rating"`
	Color           Color    `json:"color"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Implications    []string `json:"implications"`
	Recommendations []string `json:"recommendations"`
}

// ProfileName is the archetype assigned by the profile classifier.
type ProfileName string

const (
	ProfileElitePerformer       ProfileName = "Elite Performer"
	ProfileSolidPerformer       ProfileName = "Solid Performer"
	ProfileHighRRSpecialist     ProfileName = "High RR Specialist"
	ProfileHighFrequencyGrinder ProfileName = "High Frequency Grinder"
	ProfileHighRiskGambler      ProfileName = "High Risk Gambler"
	ProfileDevelopingStrategy   ProfileName = "Developing Strategy"
)

// TradingStyle is derived from the average holding time.
type TradingStyle string

const (
	StyleScalping        TradingStyle = "Scalping"
	StyleDayTrading      TradingStyle = "Day Trading"
	StyleSwingTrading    TradingStyle = "Swing Trading"
	StylePositionTrading TradingStyle = "Position Trading"
)

// StrategyProfile summarizes a strategy across several metrics.
type StrategyProfile struct {
	Profile           ProfileName  `json:"profile"`
	Strengths         []string     `json:"strengths"`
	Weaknesses        []string     `json:"weaknesses"`
	OverallAssessment string       `json:"overallAssessment"`
	TradingStyle      TradingStyle `json:"tradingStyle"`
}
