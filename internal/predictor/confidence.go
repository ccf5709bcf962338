package predictor

import "github.com/givihq/deliverytime/internal/models"

// Confidence scores how much to trust an estimate, as a percentage. Starts
// at 90 and subtracts fixed penalties for bad weather, heavy traffic, long
// distance and peak-hour orders, with a floor of 60. Deterministic.
func Confidence(roadKm float64, weather, traffic string, orderHour int) int {
	confidence := 90

	switch weather {
	case models.WeatherHeavyRain:
		confidence -= 15
	case models.WeatherRain:
		confidence -= 8
	}

	switch traffic {
	case models.TrafficVeryHigh:
		confidence -= 10
	case models.TrafficHigh:
		confidence -= 5
	}

	if roadKm > 10 {
		confidence -= 8
	} else if roadKm > 7 {
		confidence -= 4
	}

	if models.IsPeakHour(orderHour) {
		confidence -= 3
	}

	if confidence < 60 {
		confidence = 60
	}
	return confidence
}
