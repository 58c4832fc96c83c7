package agronomy

import "github.com/agrisense/agrisense/internal/weather"

// Advisory label sets. Each advisory field draws from a closed set of labels.
const (
	LevelLow      = "Low"
	LevelModerate = "Moderate"
	LevelHigh     = "High"

	RatingPoor      = "Poor"
	RatingFair      = "Fair"
	RatingGood      = "Good"
	RatingExcellent = "Excellent"

	HarvestNotSuitable = "Not suitable"

	IrrigationIncrease = "Increase irrigation frequency"
	IrrigationReduce   = "Reduce irrigation, ensure drainage"
	IrrigationMaintain = "Maintain current irrigation schedule"
	IrrigationMonitor  = "Monitor soil moisture"

	// IrrigationNeutral is the advice carried by synthesized fallback data.
	IrrigationNeutral = "Monitor soil conditions"
)

// Advisory is the six-field categorical farming guidance derived from
// aggregated forecast metrics and current conditions.
type Advisory struct {
	SoilMoisture       string
	GrowingConditions  string
	IrrigationAdvice   string
	PestRisk           string
	HarvestSuitability string
	FieldWorkability   string
}

// Classify maps summary metrics and current conditions to an Advisory.
// Each field is evaluated independently; rules are checked top to bottom
// and the first match wins.
func Classify(m Metrics, current weather.CurrentConditions) Advisory {
	return Advisory{
		SoilMoisture:       classifySoilMoisture(m),
		GrowingConditions:  classifyGrowingConditions(m),
		IrrigationAdvice:   classifyIrrigation(m),
		PestRisk:           classifyPestRisk(m),
		HarvestSuitability: classifyHarvest(m),
		FieldWorkability:   classifyWorkability(m, current),
	}
}

// NeutralAdvisory is the fixed advisory returned alongside synthesized
// fallback weather, when no genuine metrics exist to classify.
func NeutralAdvisory() Advisory {
	return Advisory{
		SoilMoisture:       LevelModerate,
		GrowingConditions:  RatingFair,
		IrrigationAdvice:   IrrigationNeutral,
		PestRisk:           LevelLow,
		HarvestSuitability: RatingFair,
		FieldWorkability:   LevelModerate,
	}
}

func classifySoilMoisture(m Metrics) string {
	switch {
	case m.TotalRain > 50:
		return LevelHigh
	case m.TotalRain < 10:
		return LevelLow
	default:
		return LevelModerate
	}
}

func classifyGrowingConditions(m Metrics) string {
	switch {
	case m.AvgTemp >= 20 && m.AvgTemp <= 30 && m.TotalRain >= 20 && m.TotalRain <= 100:
		return RatingExcellent
	case m.AvgTemp >= 15 && m.AvgTemp <= 35 && m.TotalRain >= 10:
		return RatingGood
	case m.AvgTemp < 10 || m.AvgTemp > 40 || m.TotalRain > 150:
		return RatingPoor
	default:
		return RatingFair
	}
}

func classifyIrrigation(m Metrics) string {
	switch {
	case m.TotalRain < 10:
		return IrrigationIncrease
	case m.TotalRain > 100:
		return IrrigationReduce
	case m.TotalRain >= 20 && m.TotalRain <= 50:
		return IrrigationMaintain
	default:
		return IrrigationMonitor
	}
}

func classifyPestRisk(m Metrics) string {
	switch {
	case m.AvgHumidity > 80 && m.AvgTemp >= 25:
		return LevelHigh
	case m.AvgHumidity > 60 && m.AvgTemp >= 20:
		return LevelModerate
	default:
		return LevelLow
	}
}

func classifyHarvest(m Metrics) string {
	switch {
	case m.RainyDays <= 2 && m.AvgHumidity < 70:
		return RatingExcellent
	case m.RainyDays <= 3 && m.AvgHumidity < 80:
		return RatingGood
	case m.RainyDays <= 4:
		return RatingFair
	default:
		return HarvestNotSuitable
	}
}

func classifyWorkability(m Metrics, current weather.CurrentConditions) string {
	switch {
	case m.RainyDays <= 1 && current.WindSpeed < 20:
		return RatingExcellent
	case m.RainyDays <= 3 && current.WindSpeed < 30:
		return RatingGood
	case m.RainyDays > 5 || current.WindSpeed > 40:
		return RatingPoor
	default:
		return LevelModerate
	}
}
